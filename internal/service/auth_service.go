package service

import (
	"context"
	"sync"
	"time"

	"konusturk-be/internal/dto"
	"konusturk-be/internal/entity"
	"konusturk-be/internal/pkg/logger"
	"konusturk-be/internal/repository/contract"

	"github.com/google/uuid"
)

// IAuthService is the user directory: registration, credential checks, the
// current-user pointer, and profile updates. All five operations of the
// directory live here so one mutex serializes every read-modify-write of the
// users collection.
type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
	GetCurrentUser(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*entity.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	mu       sync.Mutex
	userRepo contract.UserRepository
	logger   logger.ILogger
}

func NewAuthService(userRepo contract.UserRepository, log logger.ILogger) IAuthService {
	return &authService{
		userRepo: userRepo,
		logger:   log,
	}
}

// Register adds the user to the directory. It does NOT log the user in; the
// caller chains Login when it wants that (the signup page does).
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Case-sensitive, exactly as stored.
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateEmail
	}

	user := &entity.User{
		Id:        uuid.NewString(),
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Auth", "User registered", map[string]interface{}{"user_id": user.Id})
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepo.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrInvalidCredentials
	}

	// The pointer holds the full record, not a reference.
	if err := s.userRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Auth", "User logged in", map[string]interface{}{"user_id": user.Id})
	return user, nil
}

// GetCurrentUser returns the pointer verbatim, without validating it against
// the directory.
func (s *authService) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	return s.userRepo.CurrentUser(ctx)
}

// UpdateProfile merges the patch onto both the directory entry and the
// current-user pointer.
func (s *authService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.userRepo.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, entity.ErrNoActiveSession
	}

	patch := entity.UserPatch{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		TurkishLevel: req.TurkishLevel,
	}
	patch.Apply(current)

	// ErrUserNotFound here means the pointer went stale; not reachable through
	// the exposed operations since users are never deleted.
	if err := s.userRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetCurrentUser(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// Logout clears the pointer. Idempotent: logging out with nobody logged in is
// a no-op.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userRepo.ClearCurrentUser(ctx)
}
