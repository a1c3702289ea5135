package user

import (
	"time"

	"inventory-tracker/pkg/scope"
)

// --- User Domain Model ---

// User is an account created through signup. PasswordHash never leaves the
// service.
type User struct {
	ID           uint64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	DateJoined   time.Time
}

// --- UseCase Inputs ---

// SignupInput is the raw signup payload. Nil pointers mean the key was absent.
type SignupInput struct {
	Username        *string
	Email           string
	Password        *string
	PasswordConfirm *string
	FirstName       string
	LastName        string
}

type VerifyTokenInput struct {
	Token string
}

type RefreshTokenInput struct {
	Refresh string
}

// --- UseCase Outputs ---

type SignupOutput struct {
	User   User
	Tokens scope.TokenPair
}

type RefreshTokenOutput struct {
	Access string
}
