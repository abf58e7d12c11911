package domain

import "time"

// User models a registered account. Email is the login key; email and
// username are each unique across the store. PasswordHash is a salted bcrypt
// digest; the plaintext password is never persisted or logged.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
