package store

// TutorState is the in-memory conversation state the scripted tutor keeps per
// chat session. It is throwaway: losing it only resets the encouragement
// rotation, the persisted message history is untouched.
type TutorState struct {
	SessionID  string `json:"id"`
	UserID     string `json:"user_id"`
	Exchanges  int    `json:"exchanges"`
	LastPrompt string `json:"last_prompt"`
}
