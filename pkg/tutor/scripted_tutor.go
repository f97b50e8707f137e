package tutor

import (
	"context"
	"fmt"

	"konusturk-be/internal/constant"
	"konusturk-be/internal/repository/memory"
	"konusturk-be/pkg/store"
)

// ScriptedTutor is the canned responder: string templating over the wizard
// catalog, no model inference. It quotes the learner back and rotates through
// a fixed set of encouragements per session.
type ScriptedTutor struct {
	sessionRepo *memory.SessionRepository
}

func NewScriptedTutor(sessionRepo *memory.SessionRepository) *ScriptedTutor {
	return &ScriptedTutor{sessionRepo: sessionRepo}
}

func (t *ScriptedTutor) Welcome(ctx context.Context, wc WelcomeContext) (Reply, error) {
	teacher := constant.FindTeacher(wc.TeacherId)
	if teacher == nil {
		return Reply{}, fmt.Errorf("unknown teacher: %s", wc.TeacherId)
	}
	language := constant.FindLanguage(wc.LanguageId)
	if language == nil {
		return Reply{}, fmt.Errorf("unknown language: %s", wc.LanguageId)
	}

	text := fmt.Sprintf(constant.WelcomeMessageTemplate, wc.FirstName, teacher.Name, language.Name)
	return Reply{Text: text}, nil
}

func (t *ScriptedTutor) Reply(ctx context.Context, rc ReplyContext) (Reply, error) {
	state, found := t.sessionRepo.Get(rc.SessionId)
	if !found {
		state = &store.TutorState{SessionID: rc.SessionId, UserID: rc.UserId}
	}

	var reply Reply
	if rc.Voice {
		reply.Text = fmt.Sprintf(constant.VoiceReplyTemplate, rc.Prompt)
	} else {
		encouragement := constant.Encouragements[state.Exchanges%len(constant.Encouragements)]
		reply.Text = fmt.Sprintf(constant.TextReplyTemplate, rc.Prompt, encouragement)
		reply.Translation = constant.TextReplyTranslation
	}

	state.Exchanges++
	state.LastPrompt = rc.Prompt
	t.sessionRepo.Save(state)

	return reply, nil
}
