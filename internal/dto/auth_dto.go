package dto

import "time"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is a partial update; omitted fields keep their value.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1"`
	TurkishLevel *string `json:"turkish_level" validate:"omitempty,oneof=beginner elementary intermediate advanced"`
}

// UserResponse never echoes the password back out.
type UserResponse struct {
	Id           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	TurkishLevel string    `json:"turkish_level"`
	CreatedAt    time.Time `json:"created_at"`
}
