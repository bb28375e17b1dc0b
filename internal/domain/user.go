package domain

import "time"

// User is an authentication account. Its UID doubles as the profile key.
type User struct {
	UID          string    `json:"uid" db:"uid"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
