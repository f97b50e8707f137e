package entity

import "time"

// ChatSession owns an ordered message history plus the preference snapshot the
// wizard collected. UserId is a soft reference into the user directory; no
// referential integrity is enforced on write or delete.
type ChatSession struct {
	Id             string
	UserId         string
	Title          string
	TargetLanguage string
	Teacher        string
	LearningGoal   string
	Level          string
	Messages       []ChatMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserPreferences is the wizard's output: the four fields copied onto a fresh
// session.
type UserPreferences struct {
	TargetLanguage string
	Teacher        string
	LearningGoal   string
	Level          string
}

// ChatSessionPatch carries a partial session update. Nil fields are left
// untouched. Messages replaces the whole list; appends go through it too,
// there is no incremental message write.
type ChatSessionPatch struct {
	Title          *string
	TargetLanguage *string
	Teacher        *string
	LearningGoal   *string
	Level          *string
	Messages       *[]ChatMessage
}

func (p ChatSessionPatch) Apply(s *ChatSession) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.TargetLanguage != nil {
		s.TargetLanguage = *p.TargetLanguage
	}
	if p.Teacher != nil {
		s.Teacher = *p.Teacher
	}
	if p.LearningGoal != nil {
		s.LearningGoal = *p.LearningGoal
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.Messages != nil {
		s.Messages = *p.Messages
	}
}
