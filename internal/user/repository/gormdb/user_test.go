package gormdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	repo "inventory-tracker/internal/user/repository"
	"inventory-tracker/internal/user/repository/gormdb"
	"inventory-tracker/pkg/database"
	"inventory-tracker/pkg/log"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestCreateUser(t *testing.T) {
	r := gormdb.New(newTestDB(t), log.NewNop())
	ctx := context.Background()

	u, err := r.CreateUser(ctx, repo.CreateUserOptions{
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		PasswordHash: "$2a$04$hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.False(t, u.DateJoined.IsZero())

	got, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "$2a$04$hash", got.PasswordHash)

	missing, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: u.ID + 100})
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestCreateUserDuplicates(t *testing.T) {
	r := gormdb.New(newTestDB(t), log.NewNop())
	ctx := context.Background()

	_, err := r.CreateUser(ctx, repo.CreateUserOptions{Username: "alice", Email: "a@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, repo.CreateUserOptions{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repo.ErrDuplicateKey)

	_, err = r.CreateUser(ctx, repo.CreateUserOptions{Username: "bob", Email: "a@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repo.ErrDuplicateKey)
}

func TestEmptyEmailIsNotUnique(t *testing.T) {
	r := gormdb.New(newTestDB(t), log.NewNop())
	ctx := context.Background()

	for _, name := range []string{"carol", "dave"} {
		u, err := r.CreateUser(ctx, repo.CreateUserOptions{Username: name, PasswordHash: "x"})
		require.NoError(t, err)
		assert.Empty(t, u.Email)
	}

	exists, err := r.ExistsByEmail(ctx, "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists(t *testing.T) {
	r := gormdb.New(newTestDB(t), log.NewNop())
	ctx := context.Background()

	_, err := r.CreateUser(ctx, repo.CreateUserOptions{Username: "erin", Email: "erin@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	ok, err := r.ExistsByEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ExistsByUsername(ctx, "erin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ExistsByUsername(ctx, "frank")
	require.NoError(t, err)
	assert.False(t, ok)
}
