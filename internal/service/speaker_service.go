package service

import (
	"context"
	"encoding/json"

	"konusturk-be/internal/dto"
	"konusturk-be/internal/pkg/logger"
	"konusturk-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ISpeakerService drains the speak-request topic and voices each message.
type ISpeakerService interface {
	Listen(ctx context.Context) error
}

type speakerService struct {
	subscriber  message.Subscriber
	synthesizer speech.Synthesizer
	logger      logger.ILogger
}

func NewSpeakerService(subscriber message.Subscriber, synthesizer speech.Synthesizer, log logger.ILogger) ISpeakerService {
	return &speakerService{
		subscriber:  subscriber,
		synthesizer: synthesizer,
		logger:      log,
	}
}

// Listen blocks until the subscription fails to open, then consumes in a
// goroutine until ctx is done. A new request cancels whatever is still being
// voiced, matching how the chat screen cuts off the previous utterance.
func (s *speakerService) Listen(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, SpeakRequestTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(ctx, msg)
		}
	}()

	s.logger.Info("Speaker", "Listening for speak requests", map[string]interface{}{
		"topic": SpeakRequestTopic,
	})
	return nil
}

func (s *speakerService) handle(ctx context.Context, msg *message.Message) {
	var req dto.SpeakRequestMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		s.logger.Warn("Speaker", "Dropping malformed speak request", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	s.synthesizer.Cancel()

	err := s.synthesizer.Speak(ctx, speech.Utterance{
		Text:     req.Text,
		Language: req.Language,
		Rate:     req.Rate,
	})
	if err != nil {
		s.logger.Warn("Speaker", "Speech synthesis failed", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
	}

	msg.Ack()
}
