package scope

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 5 * time.Minute
	defaultRefreshTTL = 24 * time.Hour
)

// Manager issues and verifies HS256 JWTs.
type Manager interface {
	// IssuePair creates a fresh refresh token and an access token for userID.
	IssuePair(userID uint64) (TokenPair, error)
	// Verify validates signature and expiry of a token of any type.
	Verify(token string) (Claims, error)
	// VerifyAccess is Verify restricted to access tokens.
	VerifyAccess(token string) (Claims, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(refreshToken string) (string, error)
}

type manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// New creates a Manager. Zero TTLs fall back to 5m access / 24h refresh.
func New(cfg Config) (Manager, error) {
	return newManager(cfg, time.Now)
}

func newManager(cfg Config, now func() time.Time) (*manager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	m := &manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        now,
	}
	if m.accessTTL <= 0 {
		m.accessTTL = defaultAccessTTL
	}
	if m.refreshTTL <= 0 {
		m.refreshTTL = defaultRefreshTTL
	}
	return m, nil
}

func (m *manager) IssuePair(userID uint64) (TokenPair, error) {
	refresh, err := m.sign(userID, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	access, err := m.sign(userID, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *manager) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != TokenTypeAccess && claims.TokenType != TokenTypeRefresh {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func (m *manager) VerifyAccess(token string) (Claims, error) {
	return m.verifyType(token, TokenTypeAccess)
}

func (m *manager) Refresh(refreshToken string) (string, error) {
	claims, err := m.verifyType(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return m.sign(claims.UserID, TokenTypeAccess, m.accessTTL)
}

func (m *manager) verifyType(token string, want TokenType) (Claims, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != want {
		return Claims{}, errors.Join(ErrInvalidToken, ErrWrongTokenType)
	}
	return claims, nil
}

func (m *manager) sign(userID uint64, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		TokenType: typ,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope: sign %s token: %w", typ, err)
	}
	return signed, nil
}
