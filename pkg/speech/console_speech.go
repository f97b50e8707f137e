package speech

import (
	"context"
	"sync"

	"konusturk-be/internal/pkg/logger"
)

// ConsoleSynthesizer is the default capability for local runs: it logs the
// utterance instead of producing audio, but keeps the real contract (one
// active utterance, Cancel drops it).
type ConsoleSynthesizer struct {
	logger logger.ILogger

	mu      sync.Mutex
	current *Utterance
}

func NewConsoleSynthesizer(log logger.ILogger) *ConsoleSynthesizer {
	return &ConsoleSynthesizer{logger: log}
}

func (s *ConsoleSynthesizer) Speak(ctx context.Context, u Utterance) error {
	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()

	s.logger.Info("Speech", "Speaking utterance", map[string]interface{}{
		"text":     u.Text,
		"language": u.Language,
		"rate":     u.Rate,
	})
	return nil
}

func (s *ConsoleSynthesizer) Cancel() {
	s.mu.Lock()
	cancelled := s.current
	s.current = nil
	s.mu.Unlock()

	if cancelled != nil {
		s.logger.Debug("Speech", "Cancelled in-flight utterance", map[string]interface{}{
			"text": cancelled.Text,
		})
	}
}

// ScriptedRecognizer replays a fixed list of transcripts, one per Start call.
// It stands in for a real speech-to-text service in tests and the simulation.
type ScriptedRecognizer struct {
	mu          sync.Mutex
	transcripts []string
	next        int
	stopped     bool
}

func NewScriptedRecognizer(transcripts ...string) *ScriptedRecognizer {
	return &ScriptedRecognizer{transcripts: transcripts}
}

func (r *ScriptedRecognizer) Start(ctx context.Context, language string) (<-chan TranscriptEvent, error) {
	r.mu.Lock()
	r.stopped = false
	var transcript string
	if r.next < len(r.transcripts) {
		transcript = r.transcripts[r.next]
		r.next++
	}
	r.mu.Unlock()

	events := make(chan TranscriptEvent, 2)
	if transcript != "" {
		events <- TranscriptEvent{Transcript: transcript}
	}
	events <- TranscriptEvent{End: true}
	close(events)
	return events, nil
}

func (r *ScriptedRecognizer) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}
