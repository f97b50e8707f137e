package tutor

import "context"

// Reply is a tutor utterance in a provider-agnostic format.
type Reply struct {
	Text        string
	Translation string
}

// WelcomeContext carries what the tutor needs to greet a learner at the start
// of a conversation.
type WelcomeContext struct {
	FirstName  string
	TeacherId  string
	LanguageId string
}

// ReplyContext carries one learner utterance. Voice marks transcripts coming
// from speech recognition rather than typed input.
type ReplyContext struct {
	SessionId string
	UserId    string
	Prompt    string
	Voice     bool
}

// Provider defines the contract for any tutor backend.
type Provider interface {
	// Welcome produces the opening message of a fresh conversation.
	Welcome(ctx context.Context, wc WelcomeContext) (Reply, error)

	// Reply produces the tutor's answer to one learner utterance.
	Reply(ctx context.Context, rc ReplyContext) (Reply, error)
}
