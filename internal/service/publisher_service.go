package service

import (
	"context"
	"encoding/json"
	"fmt"

	"konusturk-be/internal/dto"
	"konusturk-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const SpeakRequestTopic = "speak.requests"

// IPublisherService puts speak requests on the in-process bus so synthesis
// never blocks the chat exchange.
type IPublisherService interface {
	PublishSpeakRequest(ctx context.Context, req *dto.SpeakRequestMessage) error
}

type publisherService struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{publisher: publisher, logger: log}
}

func (s *publisherService) PublishSpeakRequest(ctx context.Context, req *dto.SpeakRequestMessage) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal speak request: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := s.publisher.Publish(SpeakRequestTopic, msg); err != nil {
		return fmt.Errorf("publish speak request: %w", err)
	}

	s.logger.Debug("Publisher", "Speak request published", map[string]interface{}{
		"message_id": msg.UUID,
	})
	return nil
}
