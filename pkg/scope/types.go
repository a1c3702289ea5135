package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the JWT payload issued by Manager.
type Claims struct {
	TokenType TokenType `json:"token_type"`
	UserID    uint64    `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenPair is the credential pair returned on signup.
type TokenPair struct {
	Access  string
	Refresh string
}

// Config configures the token Manager.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}
