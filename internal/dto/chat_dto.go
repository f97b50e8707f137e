package dto

import "time"

// StartConversationRequest is the wizard's final payload.
type StartConversationRequest struct {
	TargetLanguage string `json:"target_language" validate:"required"`
	Teacher        string `json:"teacher" validate:"required"`
	LearningGoal   string `json:"learning_goal" validate:"required"`
	Level          string `json:"level" validate:"required"`
}

// UpdateSessionRequest is a partial update; omitted fields keep their value.
type UpdateSessionRequest struct {
	Title          *string `json:"title"`
	TargetLanguage *string `json:"target_language"`
	Teacher        *string `json:"teacher"`
	LearningGoal   *string `json:"learning_goal"`
	Level          *string `json:"level"`
}

type SendChatRequest struct {
	ChatSessionId string `json:"chat_session_id" validate:"required"`
	Text          string `json:"text" validate:"required"`
}

// SendVoiceRequest carries the transcript when the client did the
// recognition itself; left empty, the server-side recognizer runs instead.
type SendVoiceRequest struct {
	ChatSessionId string `json:"chat_session_id" validate:"required"`
	Transcript    string `json:"transcript"`
}

type MessageResponse struct {
	Id          int       `json:"id"`
	Text        string    `json:"text"`
	Sender      string    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
	Translation string    `json:"translation,omitempty"`
}

type SessionSummaryResponse struct {
	Id             string    `json:"id"`
	Title          string    `json:"title"`
	TargetLanguage string    `json:"target_language"`
	Teacher        string    `json:"teacher"`
	LearningGoal   string    `json:"learning_goal"`
	Level          string    `json:"level"`
	MessageCount   int       `json:"message_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SessionResponse struct {
	Id             string            `json:"id"`
	UserId         string            `json:"user_id"`
	Title          string            `json:"title"`
	TargetLanguage string            `json:"target_language"`
	Teacher        string            `json:"teacher"`
	LearningGoal   string            `json:"learning_goal"`
	Level          string            `json:"level"`
	Messages       []MessageResponse `json:"messages"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type SendChatResponse struct {
	ChatSessionId    string           `json:"chat_session_id"`
	ChatSessionTitle string           `json:"title"`
	Sent             *MessageResponse `json:"sent"`
	Reply            *MessageResponse `json:"reply"`
}

// SpeakRequestMessage travels over the in-process bus to the speaker worker.
type SpeakRequestMessage struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Rate     float64 `json:"rate"`
}

// MessageEvent is pushed to the user's connected chat screens.
type MessageEvent struct {
	Type          string           `json:"type"`
	ChatSessionId string           `json:"chat_session_id"`
	Message       *MessageResponse `json:"message"`
}

const MessageEventAppended = "MESSAGE_APPENDED"
