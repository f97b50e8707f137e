package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"konusturk-be/internal/dto"
	"konusturk-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	mu        sync.Mutex
	spoken    []speech.Utterance
	cancelled int
}

func (s *fakeSynthesizer) Speak(ctx context.Context, u speech.Utterance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, u)
	return nil
}

func (s *fakeSynthesizer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled++
}

func (s *fakeSynthesizer) snapshot() ([]speech.Utterance, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]speech.Utterance(nil), s.spoken...), s.cancelled
}

func TestSpeakerVoicesPublishedRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	synth := &fakeSynthesizer{}

	speaker := NewSpeakerService(pubSub, synth, nopLogger{})
	require.NoError(t, speaker.Listen(ctx))

	publisher := NewPublisherService(pubSub, nopLogger{})
	require.NoError(t, publisher.PublishSpeakRequest(ctx, &dto.SpeakRequestMessage{
		Text:     "Merhaba Ayşe!",
		Language: "tr-TR",
		Rate:     0.9,
	}))
	require.NoError(t, publisher.PublishSpeakRequest(ctx, &dto.SpeakRequestMessage{
		Text:     "Harika!",
		Language: "tr-TR",
		Rate:     0.9,
	}))

	require.Eventually(t, func() bool {
		spoken, _ := synth.snapshot()
		return len(spoken) == 2
	}, 2*time.Second, 10*time.Millisecond)

	spoken, cancelled := synth.snapshot()
	require.Equal(t, "Merhaba Ayşe!", spoken[0].Text)
	require.Equal(t, "Harika!", spoken[1].Text)
	require.Equal(t, "tr-TR", spoken[0].Language)
	require.Equal(t, 0.9, spoken[0].Rate)

	// Each request cancels whatever was still playing first.
	require.Equal(t, 2, cancelled)
}

func TestSpeakerDropsMalformedPayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	synth := &fakeSynthesizer{}

	speaker := NewSpeakerService(pubSub, synth, nopLogger{})
	require.NoError(t, speaker.Listen(ctx))

	require.NoError(t, pubSub.Publish(SpeakRequestTopic,
		message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	publisher := NewPublisherService(pubSub, nopLogger{})
	require.NoError(t, publisher.PublishSpeakRequest(ctx, &dto.SpeakRequestMessage{Text: "Merhaba"}))

	require.Eventually(t, func() bool {
		spoken, _ := synth.snapshot()
		return len(spoken) == 1
	}, 2*time.Second, 10*time.Millisecond)

	spoken, _ := synth.snapshot()
	require.Equal(t, "Merhaba", spoken[0].Text)
}
