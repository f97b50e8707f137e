package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"konusturk-be/internal/config"
	"konusturk-be/internal/constant"
	"konusturk-be/internal/dto"
	"konusturk-be/internal/entity"
	"konusturk-be/internal/mapper"
	"konusturk-be/internal/pkg/logger"
	"konusturk-be/internal/repository/contract"
	"konusturk-be/pkg/speech"
	"konusturk-be/pkg/tutor"

	"github.com/google/uuid"
)

// IChatService is the chat session store plus the conversation flows built on
// top of it.
type IChatService interface {
	CreateSession(ctx context.Context, prefs entity.UserPreferences) (*entity.ChatSession, error)
	// ListSessions resolves userId, or the current user when userId is empty;
	// empty result when neither resolves.
	ListSessions(ctx context.Context, userId string) ([]entity.ChatSession, error)
	// GetSession resolves the id within the current user's sessions only.
	GetSession(ctx context.Context, id string) (*entity.ChatSession, error)
	// UpdateSession looks the id up in the global collection, unscoped.
	UpdateSession(ctx context.Context, id string, patch entity.ChatSessionPatch) (*entity.ChatSession, error)
	AppendMessage(ctx context.Context, sessionId string, msg entity.ChatMessage) (*entity.ChatSession, error)
	DeleteSession(ctx context.Context, id string) error

	StartConversation(ctx context.Context, req *dto.StartConversationRequest) (*entity.ChatSession, error)
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	SendVoice(ctx context.Context, req *dto.SendVoiceRequest) (*dto.SendChatResponse, error)
}

// SessionNotifier pushes raw event payloads to a user's connected clients.
// The websocket hub implements it.
type SessionNotifier interface {
	SendToUser(userId string, payload []byte)
}

type chatService struct {
	mu          sync.Mutex
	sessionRepo contract.ChatSessionRepository
	authService IAuthService
	tutor       tutor.Provider
	publisher   IPublisherService
	notifier    SessionNotifier
	recognizer  speech.Recognizer
	speechCfg   config.SpeechConfig
	logger      logger.ILogger
}

func NewChatService(
	sessionRepo contract.ChatSessionRepository,
	authService IAuthService,
	tutorProvider tutor.Provider,
	publisher IPublisherService,
	notifier SessionNotifier,
	recognizer speech.Recognizer,
	speechCfg config.SpeechConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		authService: authService,
		tutor:       tutorProvider,
		publisher:   publisher,
		notifier:    notifier,
		recognizer:  recognizer,
		speechCfg:   speechCfg,
		logger:      log,
	}
}

// Store operations. Public methods take the lock; the lowercase variants
// assume it's held so flows compose without re-locking.

func (s *chatService) CreateSession(ctx context.Context, prefs entity.UserPreferences) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createSession(ctx, prefs)
}

func (s *chatService) createSession(ctx context.Context, prefs entity.UserPreferences) (*entity.ChatSession, error) {
	current, err := s.authService.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, entity.ErrNoActiveSession
	}

	now := time.Now()
	session := &entity.ChatSession{
		Id:             uuid.NewString(),
		UserId:         current.Id,
		Title:          constant.PlaceholderSessionTitle,
		TargetLanguage: prefs.TargetLanguage,
		Teacher:        prefs.Teacher,
		LearningGoal:   prefs.LearningGoal,
		Level:          prefs.Level,
		Messages:       []entity.ChatMessage{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Chat", "Session created", map[string]interface{}{
		"session_id": session.Id,
		"user_id":    session.UserId,
	})
	return session, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId string) ([]entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSessions(ctx, userId)
}

func (s *chatService) listSessions(ctx context.Context, userId string) ([]entity.ChatSession, error) {
	if userId == "" {
		current, err := s.authService.GetCurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return []entity.ChatSession{}, nil
		}
		userId = current.Id
	}
	return s.sessionRepo.FindAllByUser(ctx, userId)
}

func (s *chatService) GetSession(ctx context.Context, id string) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getSession(ctx, id)
}

// getSession goes through the current user's session list, so another user's
// id does not resolve here even though ids are globally unique. UpdateSession
// and DeleteSession deliberately stay unscoped; see DESIGN.md.
func (s *chatService) getSession(ctx context.Context, id string) (*entity.ChatSession, error) {
	sessions, err := s.listSessions(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].Id == id {
			return &sessions[i], nil
		}
	}
	return nil, nil
}

func (s *chatService) UpdateSession(ctx context.Context, id string, patch entity.ChatSessionPatch) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateSession(ctx, id, patch)
}

func (s *chatService) updateSession(ctx context.Context, id string, patch entity.ChatSessionPatch) (*entity.ChatSession, error) {
	session, err := s.sessionRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	patch.Apply(session)
	session.UpdatedAt = time.Now()

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *chatService) AppendMessage(ctx context.Context, sessionId string, msg entity.ChatMessage) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendMessage(ctx, sessionId, msg)
}

// appendMessage appends verbatim; the caller owns the sequence numbering.
// After the append it runs the one-shot title derivation and delegates
// persistence to updateSession.
func (s *chatService) appendMessage(ctx context.Context, sessionId string, msg entity.ChatMessage) (*entity.ChatSession, error) {
	session, err := s.getSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	messages := append(session.Messages, msg)
	title := session.Title

	// Auto-derive the title from the first user message: fires on the second
	// message of a still-untitled session (welcome + first reply), then never
	// again. Skipped silently when no user message exists yet.
	if len(messages) == 2 && title == constant.PlaceholderSessionTitle {
		for i := range messages {
			if messages[i].Sender == constant.MessageSenderUser {
				title = deriveTitle(messages[i].Text)
				break
			}
		}
	}

	return s.updateSession(ctx, sessionId, entity.ChatSessionPatch{
		Title:    &title,
		Messages: &messages,
	})
}

func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= constant.SessionTitleRuneLimit {
		return text
	}
	return string(runes[:constant.SessionTitleRuneLimit]) + constant.TitleEllipsis
}

// DeleteSession removes the session from the global collection without
// ownership or existence checks; unknown ids are a silent no-op. The user
// directory is never touched.
func (s *chatService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionRepo.Delete(ctx, id)
}

// Conversation flows.

func (s *chatService) StartConversation(ctx context.Context, req *dto.StartConversationRequest) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.authService.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, entity.ErrNoActiveSession
	}

	session, err := s.createSession(ctx, entity.UserPreferences{
		TargetLanguage: req.TargetLanguage,
		Teacher:        req.Teacher,
		LearningGoal:   req.LearningGoal,
		Level:          req.Level,
	})
	if err != nil {
		return nil, err
	}

	welcome, err := s.tutor.Welcome(ctx, tutor.WelcomeContext{
		FirstName:  current.FirstName,
		TeacherId:  req.Teacher,
		LanguageId: req.TargetLanguage,
	})
	if err != nil {
		return nil, err
	}

	welcomeMsg := entity.ChatMessage{
		Id:        1,
		Text:      welcome.Text,
		Sender:    constant.MessageSenderAI,
		Timestamp: time.Now(),
	}
	session, err = s.appendMessage(ctx, session.Id, welcomeMsg)
	if err != nil {
		return nil, err
	}

	s.speak(ctx, welcome.Text)
	s.notify(session.UserId, session.Id, &welcomeMsg)

	return session, nil
}

func (s *chatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exchange(ctx, req.ChatSessionId, req.Text, false)
}

// SendVoice feeds a transcript through the voice reply path. A client that
// recognized the speech itself sends the transcript along; otherwise one
// recognition pass runs here.
func (s *chatService) SendVoice(ctx context.Context, req *dto.SendVoiceRequest) (*dto.SendChatResponse, error) {
	transcript := req.Transcript
	if transcript == "" {
		recognized, err := s.recognize(ctx)
		if err != nil {
			return nil, err
		}
		transcript = recognized
	}
	if transcript == "" {
		return nil, fmt.Errorf("no speech recognized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exchange(ctx, req.ChatSessionId, transcript, true)
}

func (s *chatService) recognize(ctx context.Context) (string, error) {
	events, err := s.recognizer.Start(ctx, s.speechCfg.Language)
	if err != nil {
		return "", fmt.Errorf("speech recognition unavailable: %w", err)
	}
	defer s.recognizer.Stop()

	var transcript string
	for ev := range events {
		if ev.Err != nil {
			return "", fmt.Errorf("speech recognition failed: %w", ev.Err)
		}
		if ev.End {
			break
		}
		if ev.Transcript != "" {
			transcript = ev.Transcript
		}
	}
	return transcript, nil
}

// exchange appends the learner's message, generates the scripted reply,
// appends that too, and fans the pair out to speech and websocket listeners.
func (s *chatService) exchange(ctx context.Context, sessionId, text string, voice bool) (*dto.SendChatResponse, error) {
	session, err := s.getSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	userMsg := entity.ChatMessage{
		Id:        len(session.Messages) + 1,
		Text:      text,
		Sender:    constant.MessageSenderUser,
		Timestamp: time.Now(),
	}
	session, err = s.appendMessage(ctx, sessionId, userMsg)
	if err != nil {
		return nil, err
	}

	reply, err := s.tutor.Reply(ctx, tutor.ReplyContext{
		SessionId: sessionId,
		UserId:    session.UserId,
		Prompt:    text,
		Voice:     voice,
	})
	if err != nil {
		return nil, err
	}

	aiMsg := entity.ChatMessage{
		Id:          len(session.Messages) + 1,
		Text:        reply.Text,
		Sender:      constant.MessageSenderAI,
		Timestamp:   time.Now(),
		Translation: reply.Translation,
	}
	session, err = s.appendMessage(ctx, sessionId, aiMsg)
	if err != nil {
		return nil, err
	}

	s.speak(ctx, reply.Text)
	s.notify(session.UserId, session.Id, &userMsg)
	s.notify(session.UserId, session.Id, &aiMsg)

	return &dto.SendChatResponse{
		ChatSessionId:    session.Id,
		ChatSessionTitle: session.Title,
		Sent:             mapper.MessageToResponse(&userMsg),
		Reply:            mapper.MessageToResponse(&aiMsg),
	}, nil
}

// speak is fire-and-forget: a lost utterance never fails the exchange.
func (s *chatService) speak(ctx context.Context, text string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishSpeakRequest(ctx, &dto.SpeakRequestMessage{
		Text:     text,
		Language: s.speechCfg.Language,
		Rate:     s.speechCfg.Rate,
	})
	if err != nil {
		s.logger.Warn("Chat", "Failed to publish speak request", map[string]interface{}{"error": err.Error()})
	}
}

func (s *chatService) notify(userId, sessionId string, msg *entity.ChatMessage) {
	if s.notifier == nil {
		return
	}
	payload, err := json.Marshal(dto.MessageEvent{
		Type:          dto.MessageEventAppended,
		ChatSessionId: sessionId,
		Message:       mapper.MessageToResponse(msg),
	})
	if err != nil {
		s.logger.Warn("Chat", "Failed to marshal message event", map[string]interface{}{"error": err.Error()})
		return
	}
	s.notifier.SendToUser(userId, payload)
}
