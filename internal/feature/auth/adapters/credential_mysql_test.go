package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"employee_backend/internal/feature/auth/domain/entity"
	"employee_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Credential{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewCredentialMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewCredentialMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestCredentialMySQL_Create(t *testing.T) {
	t.Run("successful credential creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCredentialMySQL(db)

		cred := &entity.Credential{
			Username:     "admin",
			PasswordHash: "hashed_password",
		}

		err := repo.Create(context.Background(), cred)

		assert.NoError(t, err, "failed to create credential")
		assert.NotZero(t, cred.ID, "ID is not set")
		assert.False(t, cred.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate usernames are allowed", func(t *testing.T) {
		// The registration path is a bootstrap/testing flow with no
		// uniqueness constraint on usernames.
		db := setupTestDB(t)
		repo := NewCredentialMySQL(db)

		err := repo.Create(context.Background(), &entity.Credential{Username: "admin", PasswordHash: "h1"})
		require.NoError(t, err)
		err = repo.Create(context.Background(), &entity.Credential{Username: "admin", PasswordHash: "h2"})
		assert.NoError(t, err, "duplicate username should not fail")
	})
}

func TestCredentialMySQL_FindByUsername(t *testing.T) {
	t.Run("existing credential", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCredentialMySQL(db)

		seed := &entity.Credential{Username: "admin", PasswordHash: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), seed))

		got, err := repo.FindByUsername(context.Background(), "admin")

		require.NoError(t, err)
		assert.Equal(t, seed.ID, got.ID)
		assert.Equal(t, "hashed_password", got.PasswordHash)
	})

	t.Run("missing credential returns ErrCredentialNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCredentialMySQL(db)

		got, err := repo.FindByUsername(context.Background(), "nobody")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, usecase.ErrCredentialNotFound)
	})
}
