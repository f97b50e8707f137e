package entity

import "time"

// ChatMessage never exists outside its session's ordered list and is immutable
// once appended. Id is a 1-based sequence number within the session, assigned
// by the caller; the store does not renumber or validate it.
type ChatMessage struct {
	Id          int
	Text        string
	Sender      string
	Timestamp   time.Time
	Translation string
}
