package speech

import "context"

// Utterance is one text-to-speech request.
type Utterance struct {
	Text     string
	Language string
	Rate     float64
}

// Synthesizer is the injected text-to-speech capability. Speak is
// fire-and-forget from the caller's point of view; Cancel aborts whatever
// utterance is in flight so at most one voice output is ever active.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
	Cancel()
}

// TranscriptEvent is one event from a recognition run: a transcript, an
// error, or the end-of-stream marker.
type TranscriptEvent struct {
	Transcript string
	Err        error
	End        bool
}

// Recognizer is the injected speech-to-text capability. Start begins a
// single-shot (non-continuous) recognition: the channel yields at most one
// transcript, then an End event, and is closed. Stop aborts early.
type Recognizer interface {
	Start(ctx context.Context, language string) (<-chan TranscriptEvent, error)
	Stop()
}
