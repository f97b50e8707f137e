package entity

import "errors"

// Domain error kinds. Messages are the user-facing Turkish strings the UI
// shows verbatim.
var (
	ErrDuplicateEmail     = errors.New("bu e-posta adresi zaten kayıtlı")
	ErrInvalidCredentials = errors.New("e-posta veya şifre hatalı")
	ErrNoActiveSession    = errors.New("kullanıcı oturumu bulunamadı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrSessionNotFound    = errors.New("konuşma bulunamadı")
)
