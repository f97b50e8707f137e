package mapper

import (
	"konusturk-be/internal/dto"
	"konusturk-be/internal/entity"
)

// API response mapping. Kept separate from the storage-model mappers so the
// wire shapes and the persisted shapes can drift independently.

func UserToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Id:           u.Id,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		TurkishLevel: u.TurkishLevel,
		CreatedAt:    u.CreatedAt,
	}
}

func MessageToResponse(msg *entity.ChatMessage) *dto.MessageResponse {
	if msg == nil {
		return nil
	}
	return &dto.MessageResponse{
		Id:          msg.Id,
		Text:        msg.Text,
		Sender:      msg.Sender,
		Timestamp:   msg.Timestamp,
		Translation: msg.Translation,
	}
}

func SessionToResponse(s *entity.ChatSession) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	messages := make([]dto.MessageResponse, 0, len(s.Messages))
	for i := range s.Messages {
		messages = append(messages, *MessageToResponse(&s.Messages[i]))
	}
	return &dto.SessionResponse{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		TargetLanguage: s.TargetLanguage,
		Teacher:        s.Teacher,
		LearningGoal:   s.LearningGoal,
		Level:          s.Level,
		Messages:       messages,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func SessionToSummary(s *entity.ChatSession) *dto.SessionSummaryResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionSummaryResponse{
		Id:             s.Id,
		Title:          s.Title,
		TargetLanguage: s.TargetLanguage,
		Teacher:        s.Teacher,
		LearningGoal:   s.LearningGoal,
		Level:          s.Level,
		MessageCount:   len(s.Messages),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func SessionsToSummaries(sessions []entity.ChatSession) []*dto.SessionSummaryResponse {
	out := make([]*dto.SessionSummaryResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, SessionToSummary(&sessions[i]))
	}
	return out
}
