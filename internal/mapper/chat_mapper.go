package mapper

import (
	"konusturk-be/internal/entity"
	"konusturk-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		TargetLanguage: s.TargetLanguage,
		Teacher:        s.Teacher,
		LearningGoal:   s.LearningGoal,
		Level:          s.Level,
		Messages:       m.ChatMessagesToEntities(s.Messages),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		TargetLanguage: s.TargetLanguage,
		Teacher:        s.Teacher,
		LearningGoal:   s.LearningGoal,
		Level:          s.Level,
		Messages:       m.ChatMessagesToModels(s.Messages),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionsToEntities(sessions []model.ChatSession) []entity.ChatSession {
	out := make([]entity.ChatSession, 0, len(sessions))
	for i := range sessions {
		out = append(out, *m.ChatSessionToEntity(&sessions[i]))
	}
	return out
}

func (m *ChatMapper) ChatSessionsToModels(sessions []entity.ChatSession) []model.ChatSession {
	out := make([]model.ChatSession, 0, len(sessions))
	for i := range sessions {
		out = append(out, *m.ChatSessionToModel(&sessions[i]))
	}
	return out
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:          msg.Id,
		Text:        msg.Text,
		Sender:      msg.Sender,
		Timestamp:   msg.Timestamp,
		Translation: msg.Translation,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:          msg.Id,
		Text:        msg.Text,
		Sender:      msg.Sender,
		Timestamp:   msg.Timestamp,
		Translation: msg.Translation,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(msgs []model.ChatMessage) []entity.ChatMessage {
	out := make([]entity.ChatMessage, 0, len(msgs))
	for i := range msgs {
		out = append(out, *m.ChatMessageToEntity(&msgs[i]))
	}
	return out
}

func (m *ChatMapper) ChatMessagesToModels(msgs []entity.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(msgs))
	for i := range msgs {
		out = append(out, *m.ChatMessageToModel(&msgs[i]))
	}
	return out
}
