package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inventory-tracker/internal/user"
	"inventory-tracker/internal/user/repository"
	"inventory-tracker/internal/user/usecase"
	pkgErrors "inventory-tracker/pkg/errors"
	"inventory-tracker/pkg/log"
	"inventory-tracker/pkg/password"
	"inventory-tracker/pkg/scope"
)

type mockRepo struct {
	users []user.User
	// raceOnCreate simulates a concurrent signup that wins between the
	// existence check and the insert.
	raceOnCreate *user.User
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (user.User, error) {
	if m.raceOnCreate != nil {
		m.users = append(m.users, *m.raceOnCreate)
		m.raceOnCreate = nil
		return user.User{}, repository.ErrDuplicateKey
	}
	u := user.User{
		ID:           uint64(len(m.users) + 1),
		Username:     opt.Username,
		Email:        opt.Email,
		FirstName:    opt.FirstName,
		LastName:     opt.LastName,
		PasswordHash: opt.PasswordHash,
		DateJoined:   time.Now(),
	}
	m.users = append(m.users, u)
	return u, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error) {
	for _, u := range m.users {
		if u.ID == opt.ID {
			return u, nil
		}
	}
	return user.User{}, nil
}

func (m *mockRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if email != "" && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func newUseCase(t *testing.T, r *mockRepo) (user.UseCase, scope.Manager) {
	t.Helper()
	tokens, err := scope.New(scope.Config{Secret: "test-secret"})
	require.NoError(t, err)
	uc := usecase.New(r, log.NewNop(), password.NewBcryptHasher(bcrypt.MinCost), nil, tokens)
	return uc, tokens
}

func str(s string) *string { return &s }

func signupInput(username, email, pw, confirm string) user.SignupInput {
	return user.SignupInput{
		Username:        str(username),
		Email:           email,
		Password:        str(pw),
		PasswordConfirm: str(confirm),
	}
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var v *pkgErrors.ValidationError
	require.True(t, errors.As(err, &v), "expected ValidationError, got %v", err)
	return v.Fields
}

const strongPassword = "Violet-Harbor-91"

var longPassword = strongPassword + "-" + strings.Repeat("q", 60)

func TestSignup(t *testing.T) {
	r := &mockRepo{}
	uc, tokens := newUseCase(t, r)

	out, err := uc.Signup(context.Background(), signupInput("newbie", "new@example.com", strongPassword, strongPassword))
	require.NoError(t, err)

	assert.Equal(t, "newbie", out.User.Username)
	assert.NotEmpty(t, out.Tokens.Access)
	assert.NotEmpty(t, out.Tokens.Refresh)
	require.Len(t, r.users, 1)
	assert.NotEqual(t, strongPassword, r.users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(r.users[0].PasswordHash), []byte(strongPassword)))

	claims, err := tokens.VerifyAccess(out.Tokens.Access)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
}

func TestSignupRejections(t *testing.T) {
	tests := []struct {
		name  string
		input user.SignupInput
		key   string
		msg   string
	}{
		{
			name:  "passwords differ",
			input: signupInput("newbie", "new@example.com", strongPassword, strongPassword+"x"),
			key:   user.KeyPasswordConfirm,
			msg:   user.MsgPasswordMismatch,
		},
		{
			name: "confirm missing",
			input: user.SignupInput{
				Username: str("newbie"),
				Password: str(strongPassword),
			},
			key: pkgErrors.NonFieldErrorsKey,
			msg: user.MsgPasswordConfirmMissing,
		},
		{
			name:  "username missing",
			input: user.SignupInput{Password: str(strongPassword), PasswordConfirm: str(strongPassword)},
			key:   "username",
			msg:   user.MsgRequired,
		},
		{
			name:  "username with spaces",
			input: signupInput("new bie", "", strongPassword, strongPassword),
			key:   "username",
			msg:   user.MsgUsernameInvalid,
		},
		{
			name:  "bad email",
			input: signupInput("newbie", "not-an-email", strongPassword, strongPassword),
			key:   "email",
			msg:   user.MsgEmailInvalid,
		},
		{
			name:  "short password",
			input: signupInput("newbie", "", "Xy7!q", "Xy7!q"),
			key:   "password",
			msg:   "This password is too short. It must contain at least 8 characters.",
		},
		{
			name:  "password longer than bcrypt accepts",
			input: signupInput("newbie", "", longPassword, longPassword),
			key:   "password",
			msg:   "This password is too long. It must contain at most 72 bytes.",
		},
		{
			name:  "numeric password",
			input: signupInput("newbie", "", "90817263544", "90817263544"),
			key:   "password",
			msg:   "This password is entirely numeric.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRepo{}
			uc, _ := newUseCase(t, r)

			_, err := uc.Signup(context.Background(), tt.input)
			fields := fieldsOf(t, err)
			assert.Contains(t, fields[tt.key], tt.msg)
			assert.Empty(t, r.users, "no user may be created")
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := &mockRepo{users: []user.User{{ID: 1, Username: "old", Email: "taken@example.com"}}}
	uc, _ := newUseCase(t, r)

	_, err := uc.Signup(context.Background(), signupInput("brandnew", "taken@example.com", strongPassword, strongPassword))
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{user.MsgEmailTaken}, fields[user.KeyEmail])
	assert.NotContains(t, fields, user.KeyUsername)
	assert.Len(t, r.users, 1)
}

func TestSignupDuplicateUsername(t *testing.T) {
	r := &mockRepo{users: []user.User{{ID: 1, Username: "old"}}}
	uc, _ := newUseCase(t, r)

	_, err := uc.Signup(context.Background(), signupInput("old", "", strongPassword, strongPassword))
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{user.MsgUsernameTaken}, fields[user.KeyUsername])
}

func TestSignupDuplicateEmailAndUsername(t *testing.T) {
	r := &mockRepo{users: []user.User{{ID: 1, Username: "old", Email: "taken@example.com"}}}
	uc, _ := newUseCase(t, r)

	_, err := uc.Signup(context.Background(), signupInput("old", "taken@example.com", strongPassword, strongPassword))
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{user.MsgEmailTaken}, fields[user.KeyEmail])
	assert.Equal(t, []string{user.MsgUsernameTaken}, fields[user.KeyUsername])
	assert.Len(t, fields, 2)
	assert.Len(t, r.users, 1)
}

func TestSignupRaceMapsToValidationError(t *testing.T) {
	r := &mockRepo{raceOnCreate: &user.User{ID: 99, Username: "other", Email: "race@example.com"}}
	uc, _ := newUseCase(t, r)

	_, err := uc.Signup(context.Background(), signupInput("racer", "race@example.com", strongPassword, strongPassword))
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{user.MsgEmailTaken}, fields[user.KeyEmail])
}

func TestVerifyAndRefresh(t *testing.T) {
	uc, tokens := newUseCase(t, &mockRepo{users: []user.User{{ID: 5, Username: "keeper"}}})
	ctx := context.Background()

	pair, err := tokens.IssuePair(5)
	require.NoError(t, err)

	assert.NoError(t, uc.VerifyToken(ctx, user.VerifyTokenInput{Token: pair.Access}))
	assert.NoError(t, uc.VerifyToken(ctx, user.VerifyTokenInput{Token: pair.Refresh}))
	assert.ErrorIs(t, uc.VerifyToken(ctx, user.VerifyTokenInput{Token: "garbage"}), user.ErrInvalidToken)

	out, err := uc.RefreshToken(ctx, user.RefreshTokenInput{Refresh: pair.Refresh})
	require.NoError(t, err)
	claims, err := tokens.VerifyAccess(out.Access)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), claims.UserID)

	_, err = uc.RefreshToken(ctx, user.RefreshTokenInput{Refresh: pair.Access})
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestRefreshForMissingUser(t *testing.T) {
	uc, tokens := newUseCase(t, &mockRepo{})

	pair, err := tokens.IssuePair(42)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), user.RefreshTokenInput{Refresh: pair.Refresh})
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
