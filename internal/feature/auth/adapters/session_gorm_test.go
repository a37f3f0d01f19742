package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes_app/internal/feature/auth/domain/entity"
	"notes_app/internal/feature/auth/usecase"
)

// createTestSession builds a session entity for testing.
func createTestSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		Username:  "johndoe",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionGorm_CreateAndFindByID(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		session := createTestSession("a1b2c3", 7, 24*time.Hour)
		err := repo.Create(context.Background(), session)
		require.NoError(t, err, "failed to create session")

		found, err := repo.FindByID(context.Background(), "a1b2c3")

		assert.NoError(t, err, "failed to find session")
		assert.Equal(t, session.UserID, found.UserID, "user id does not match")
		assert.Equal(t, session.Username, found.Username, "username does not match")
		assert.True(t, found.IsValid(), "fresh session should be valid")
	})

	t.Run("unknown token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		found, err := repo.FindByID(context.Background(), "missing")

		assert.Nil(t, found, "session should be nil")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "should return ErrSessionNotFound")
	})
}

func TestSessionGorm_Revoke(t *testing.T) {
	t.Run("revoked session becomes invalid", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		session := createTestSession("revoke-me", 7, 24*time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		err := repo.Revoke(context.Background(), "revoke-me")
		require.NoError(t, err, "failed to revoke session")

		found, err := repo.FindByID(context.Background(), "revoke-me")
		require.NoError(t, err)
		assert.True(t, found.IsRevoked(), "session should be revoked")
		assert.False(t, found.IsValid(), "revoked session must not be valid")
	})

	t.Run("revoking unknown token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		err := repo.Revoke(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "should return ErrSessionNotFound")
	})
}

func TestSessionGorm_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionGorm(db)

	require.NoError(t, repo.Create(context.Background(), createTestSession("fresh", 1, 24*time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestSession("stale", 2, -time.Hour)))

	deleted, err := repo.DeleteExpired(context.Background())

	assert.NoError(t, err, "cleanup failed")
	assert.Equal(t, int64(1), deleted, "exactly one expired session should go")

	_, err = repo.FindByID(context.Background(), "fresh")
	assert.NoError(t, err, "fresh session must survive cleanup")

	_, err = repo.FindByID(context.Background(), "stale")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "stale session must be gone")
}
