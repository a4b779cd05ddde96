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

func TestTokenRepository_Create(t *testing.T) {
	repo := repository.NewTokenRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		ledger := &model.TokenLedger{
			EventID:   "vibe-party",
			Symbol:    "VIBEPARTY2026",
			Name:      "Vibe Party 2026 Token",
			CreatedAt: time.Now().UTC(),
		}

		created, err := repo.Create(ctx, ledger)

		require.NoError(t, err)
		assert.Equal(t, "vibe-party", created.EventID)
		assert.Equal(t, "VIBEPARTY2026", created.Symbol)
		assert.Equal(t, int64(0), created.TotalMinted)
		assert.Equal(t, int64(0), created.TotalBurned)
	})

	t.Run("DuplicateEventID", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "dup", "DUP", "Dup Token")

		ledger := &model.TokenLedger{
			EventID:   "dup",
			Symbol:    "DUP2",
			Name:      "Dup Token 2",
			CreatedAt: time.Now().UTC(),
		}

		_, err := repo.Create(ctx, ledger)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrTokenExists)
	})
}

func TestTokenRepository_FindByEventID(t *testing.T) {
	repo := repository.NewTokenRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev", "EV", "Ev Token")

		found, err := repo.FindByEventID(ctx, "ev")

		require.NoError(t, err)
		assert.Equal(t, "EV", found.Symbol)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindByEventID(ctx, "ghost")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})
}

func TestTokenRepository_InsertAllocation(t *testing.T) {
	repo := repository.NewTokenRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev", "EV", "Ev Token")

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)

		allocation := &model.TokenAllocation{
			EventID:   "ev",
			Owner:     "alice",
			Amount:    100,
			Claimed:   true,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.InsertAllocation(ctx, tx, allocation))
		require.NoError(t, tx.Commit(ctx))

		found, err := repo.FindAllocation(ctx, "ev", "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(100), found.Amount)
		assert.True(t, found.Claimed)
		assert.True(t, found.Alive)
	})

	t.Run("DuplicateOwner", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev", "EV", "Ev Token")

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)
		allocation := &model.TokenAllocation{
			EventID: "ev", Owner: "alice", Amount: 100, Claimed: true,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.InsertAllocation(ctx, tx, allocation))
		require.NoError(t, tx.Commit(ctx))

		tx2, rollback := setupTestWithTransaction(t)
		defer rollback()

		again := &model.TokenAllocation{
			EventID: "ev", Owner: "alice", Amount: 50, Claimed: true,
			CreatedAt: time.Now().UTC(),
		}
		err = repo.InsertAllocation(ctx, tx2, again)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyClaimed)
	})
}

func TestTokenRepository_AddMinted(t *testing.T) {
	repo := repository.NewTokenRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev", "EV", "Ev Token")

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.AddMinted(ctx, tx, "ev", 100))
		require.NoError(t, tx.Commit(ctx))

		ledger, err := repo.FindByEventID(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(100), ledger.TotalMinted)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev", "EV", "Ev Token")

		tx, rollback := setupTestWithTransaction(t)
		defer rollback()

		err := repo.AddMinted(ctx, tx, "ev", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTokenRepository_BurnUnclaimedAllocations(t *testing.T) {
	repo := repository.NewTokenRepository(getTestDB())
	ctx := context.Background()

	t.Run("SumsUnclaimedAmounts", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev", "EV", "Ev Token")

		// 兩筆未 claim 的配額，一筆已 claim
		_, err := testDB.Exec(ctx, `
			INSERT INTO token_allocations (event_id, owner, amount, claimed)
			VALUES ('ev', 'alice', 30, FALSE), ('ev', 'bob', 20, FALSE), ('ev', 'carol', 50, TRUE)
		`)
		require.NoError(t, err)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)
		burned, err := repo.BurnUnclaimedAllocations(ctx, tx, "ev")
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		assert.Equal(t, int64(50), burned)

		// 重複呼叫不再找到任何未 claim 的配額
		tx2, rollback := setupTestWithTransaction(t)
		defer rollback()
		burned, err = repo.BurnUnclaimedAllocations(ctx, tx2, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(0), burned)
	})
}

func TestTokenRepository_Count(t *testing.T) {
	repo := repository.NewTokenRepository(getTestDB())
	ctx := context.Background()

	t.Run("CountsLedgers", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestTokenLedger(t, "ev-a", "A", "A Token")
		createTestTokenLedger(t, "ev-b", "B", "B Token")

		count, err := repo.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
