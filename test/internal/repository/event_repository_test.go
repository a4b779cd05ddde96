package repository

import (
	"context"
	"testing"
	"time"

	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/repository"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		now := time.Now().UTC()
		event := &model.Event{
			ID:           "vibe-party-2026",
			Organizer:    "org-alice",
			Capacity:     100,
			CreatedAt:    now,
			BurnDeadline: now.Add(model.BurnWindow),
		}

		created, err := repo.Create(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, "vibe-party-2026", created.ID)
		assert.Equal(t, "org-alice", created.Organizer)
		assert.Equal(t, 100, created.Capacity)
		assert.Equal(t, 0, created.TotalMinted)
		assert.Equal(t, 0, created.TotalClaimed)
		assert.Equal(t, 0, created.TotalBurned)
	})

	t.Run("DuplicateEventID", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "dup-event", "org-alice", 10)

		now := time.Now().UTC()
		event := &model.Event{
			ID:           "dup-event",
			Organizer:    "org-bob",
			Capacity:     20,
			CreatedAt:    now,
			BurnDeadline: now.Add(model.BurnWindow),
		}

		_, err := repo.Create(ctx, event)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventExists)
	})
}

func TestEventRepository_FindByID(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "find-me", "org-alice", 50)

		found, err := repo.FindByID(ctx, "find-me")

		require.NoError(t, err)
		assert.Equal(t, "find-me", found.ID)
		assert.Equal(t, "org-alice", found.Organizer)
		assert.Equal(t, 50, found.Capacity)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindByID(ctx, "no-such-event")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_List(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		events, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("ReturnsAll", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "event-a", "org-a", 10)
		createTestEvent(t, "event-b", "org-b", 20)
		createTestEvent(t, "event-c", "org-c", 30)

		events, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, events, 3)
	})
}

func TestEventRepository_ReserveIssuance(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("MonotonicFromOne", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "mono", "org-a", 3)

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		// 第一張是 1，之後嚴格遞增
		for want := int64(1); want <= 3; want++ {
			got, err := repo.ReserveIssuance(ctx, tx, "mono")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("SoldOut", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "tiny", "org-a", 1)

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		_, err := repo.ReserveIssuance(ctx, tx, "tiny")
		require.NoError(t, err)

		_, err = repo.ReserveIssuance(ctx, tx, "tiny")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSoldOut)
	})

	t.Run("EventNotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		_, err := repo.ReserveIssuance(ctx, tx, "ghost")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_IncrementClaimed(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "claim-count", "org-a", 10)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.IncrementClaimed(ctx, tx, "claim-count"))
		require.NoError(t, repo.IncrementClaimed(ctx, tx, "claim-count"))
		require.NoError(t, tx.Commit(ctx))

		event, err := repo.FindByID(ctx, "claim-count")
		require.NoError(t, err)
		assert.Equal(t, 2, event.TotalClaimed)
	})
}

func TestEventRepository_AddBurned(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "burn-count", "org-a", 10)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.AddBurned(ctx, tx, "burn-count", 3))
		require.NoError(t, tx.Commit(ctx))

		event, err := repo.FindByID(ctx, "burn-count")
		require.NoError(t, err)
		assert.Equal(t, 3, event.TotalBurned)
	})

	t.Run("ZeroIsNoop", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "burn-zero", "org-a", 10)

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		require.NoError(t, repo.AddBurned(ctx, tx, "burn-zero", 0))
	})

	t.Run("NegativeIsInvalid", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEvent(t, "burn-neg", "org-a", 10)

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		err := repo.AddBurned(ctx, tx, "burn-neg", -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
