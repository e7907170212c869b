package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/database"
)

// newMockPool creates a sqlmock-backed pool for repository tests
func newMockPool(t *testing.T) (*database.Pool, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return &database.Pool{DB: db}, mock
}
