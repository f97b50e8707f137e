package entity

import "time"

type TurkishLevel string

const (
	TurkishLevelBeginner     TurkishLevel = "beginner"
	TurkishLevelElementary   TurkishLevel = "elementary"
	TurkishLevelIntermediate TurkishLevel = "intermediate"
	TurkishLevelAdvanced     TurkishLevel = "advanced"
)

// User is a directory entry. Email is unique (case-sensitive, as stored).
// The password stays plaintext: that is the demo contract of the original
// client-side store. Do not reuse for real credentials.
type User struct {
	Id           string
	Email        string
	Password     string
	FirstName    string
	LastName     string
	TurkishLevel string
	CreatedAt    time.Time
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	TurkishLevel *string
}

// Apply merges the patch onto the user, field by field.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.TurkishLevel != nil {
		u.TurkishLevel = *p.TurkishLevel
	}
}
