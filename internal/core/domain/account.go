package domain

import "time"

// Account models a registered user. PasswordHash never leaves the service layer.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Identity is the verified caller carried by a bearer token.
type Identity struct {
	AccountID int64
	Email     string
}
