package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-tracker/pkg/database"
)

func TestOpenSQLiteAndPing(t *testing.T) {
	db, err := database.Open(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestPingAfterClose(t *testing.T) {
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, DSN: "file::memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Close(db))

	assert.Error(t, database.Ping(context.Background(), db))
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := database.Open(database.Config{Driver: "mysql", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported driver")

	_, err = database.Open(database.Config{Driver: database.DriverPostgres})
	assert.ErrorContains(t, err, "dsn is required")
}
