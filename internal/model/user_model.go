package model

import "time"

// User is the stored JSON shape inside the users collection. Field names match
// the persisted camelCase layout; timestamps serialize as RFC 3339.
type User struct {
	Id           string    `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	TurkishLevel string    `json:"turkishLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}
