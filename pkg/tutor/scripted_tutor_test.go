package tutor

import (
	"context"
	"strings"
	"testing"

	"konusturk-be/internal/repository/memory"
)

func TestWelcome(t *testing.T) {
	tut := NewScriptedTutor(memory.NewSessionRepository())

	tests := []struct {
		name       string
		wc         WelcomeContext
		wantErr    bool
		wantSubstr []string
	}{
		{
			name:       "known teacher and language",
			wc:         WelcomeContext{FirstName: "Ayşe", TeacherId: "mehmet", LanguageId: "turkish"},
			wantSubstr: []string{"Merhaba Ayşe!", "Mehmet", "Türkçe"},
		},
		{
			name:    "unknown teacher",
			wc:      WelcomeContext{FirstName: "Ali", TeacherId: "nobody", LanguageId: "turkish"},
			wantErr: true,
		},
		{
			name:    "unknown language",
			wc:      WelcomeContext{FirstName: "Ali", TeacherId: "ayse", LanguageId: "klingon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := tut.Welcome(context.Background(), tt.wc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Welcome() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Welcome() error = %v", err)
			}
			for _, sub := range tt.wantSubstr {
				if !strings.Contains(reply.Text, sub) {
					t.Errorf("Welcome() = %q, missing %q", reply.Text, sub)
				}
			}
		})
	}
}

func TestReplyRotatesEncouragements(t *testing.T) {
	tut := NewScriptedTutor(memory.NewSessionRepository())
	ctx := context.Background()

	rc := ReplyContext{SessionId: "s1", UserId: "u1", Prompt: "merhaba"}

	first, err := tut.Reply(ctx, rc)
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(first.Text, "Harika!") {
		t.Errorf("first reply = %q, want Harika!", first.Text)
	}
	if first.Translation == "" {
		t.Errorf("text reply should carry a translation")
	}

	second, err := tut.Reply(ctx, rc)
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(second.Text, "Mükemmel!") {
		t.Errorf("second reply = %q, want Mükemmel!", second.Text)
	}

	third, err := tut.Reply(ctx, rc)
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(third.Text, "Harika!") {
		t.Errorf("third reply = %q, rotation should wrap back to Harika!", third.Text)
	}
}

func TestReplyRotationIsPerSession(t *testing.T) {
	tut := NewScriptedTutor(memory.NewSessionRepository())
	ctx := context.Background()

	if _, err := tut.Reply(ctx, ReplyContext{SessionId: "s1", UserId: "u1", Prompt: "bir"}); err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	other, err := tut.Reply(ctx, ReplyContext{SessionId: "s2", UserId: "u1", Prompt: "iki"})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(other.Text, "Harika!") {
		t.Errorf("fresh session reply = %q, want rotation to start at Harika!", other.Text)
	}
}

func TestReplyVoice(t *testing.T) {
	tut := NewScriptedTutor(memory.NewSessionRepository())

	reply, err := tut.Reply(context.Background(), ReplyContext{
		SessionId: "s1",
		UserId:    "u1",
		Prompt:    "günaydın",
		Voice:     true,
	})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(reply.Text, `"günaydın"`) {
		t.Errorf("voice reply = %q, should quote the prompt", reply.Text)
	}
	if !strings.Contains(reply.Text, "Mükemmel!") {
		t.Errorf("voice reply = %q, want the fixed Mükemmel! echo", reply.Text)
	}
	if reply.Translation != "" {
		t.Errorf("voice reply carries no translation, got %q", reply.Translation)
	}
}
