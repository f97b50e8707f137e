package model

import "time"

// ChatSession is the stored JSON shape inside the sessions collection. All
// users' sessions interleave in a single array; messages are embedded in
// insertion order.
type ChatSession struct {
	Id             string        `json:"id"`
	UserId         string        `json:"userId"`
	Title          string        `json:"title"`
	TargetLanguage string        `json:"targetLanguage"`
	Teacher        string        `json:"teacher"`
	LearningGoal   string        `json:"learningGoal"`
	Level          string        `json:"level"`
	Messages       []ChatMessage `json:"messages"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type ChatMessage struct {
	Id          int       `json:"id"`
	Text        string    `json:"text"`
	Sender      string    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
	Translation string    `json:"translation,omitempty"`
}
