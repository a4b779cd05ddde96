package service

import (
	"context"
	"testing"
	"time"

	"go-doormint-ledger/internal/clock"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/service"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_CreateEventToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SymbolDerivedFromName", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "vibe-party", "org-a", 100, baseTime)
		svc := newTestTokenService(clock.NewFixed(baseTime))

		created, err := svc.CreateEventToken(ctx, model.CreateTokenRequest{
			EventID:   "vibe-party",
			EventName: "Vibe Party 2026",
		}, "org-a")

		require.NoError(t, err)
		assert.Equal(t, "VIBEPARTY2026", created.Symbol)
		assert.Equal(t, "Vibe Party 2026 Token", created.Name)
		assert.Equal(t, int64(0), created.TotalMinted)
	})

	t.Run("Failed_Duplicate", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		svc := newTestTokenService(clock.NewFixed(baseTime))

		req := model.CreateTokenRequest{EventID: "ev", EventName: "Ev"}
		_, err := svc.CreateEventToken(ctx, req, "org-a")
		require.NoError(t, err)

		_, err = svc.CreateEventToken(ctx, req, "org-a")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrTokenExists)
	})

	t.Run("Failed_NotAuthorized", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		svc := newTestTokenService(clock.NewFixed(baseTime))

		_, err := svc.CreateEventToken(ctx, model.CreateTokenRequest{
			EventID: "ev", EventName: "Ev",
		}, "stranger")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	})
}

func TestTokenService_MintTokens(t *testing.T) {
	ctx := context.Background()

	setupLedger := func(t *testing.T, svc service.TokenService) {
		t.Helper()
		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		_, err := svc.CreateEventToken(ctx, model.CreateTokenRequest{EventID: "ev", EventName: "Ev Fest"}, "org-a")
		require.NoError(t, err)
	}

	t.Run("Success_ClaimedAtMint", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		svc := newTestTokenService(clock.NewFixed(baseTime))
		setupLedger(t, svc)

		allocation, err := svc.MintTokens(ctx, "ev", "alice", 100, "org-a")

		require.NoError(t, err)
		assert.Equal(t, int64(100), allocation.Amount)
		// 代幣配額在鑄造當下即 claim（防重標記）
		assert.True(t, allocation.Claimed)

		ledger, err := svc.GetEventToken(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(100), ledger.TotalMinted)
	})

	t.Run("Failed_SecondMintForSameAttendee", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		svc := newTestTokenService(clock.NewFixed(baseTime))
		setupLedger(t, svc)

		_, err := svc.MintTokens(ctx, "ev", "alice", 100, "org-a")
		require.NoError(t, err)

		_, err = svc.MintTokens(ctx, "ev", "alice", 50, "org-a")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyClaimed)

		// 失敗的呼叫不得改變計數
		ledger, err := svc.GetEventToken(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(100), ledger.TotalMinted)
	})

	t.Run("Failed_TokenNotCreated", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		svc := newTestTokenService(clock.NewFixed(baseTime))

		_, err := svc.MintTokens(ctx, "ev", "alice", 100, "org-a")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("Failed_InvalidAmount", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		svc := newTestTokenService(clock.NewFixed(baseTime))
		setupLedger(t, svc)

		_, err := svc.MintTokens(ctx, "ev", "alice", 0, "org-a")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTokenService_BurnUnclaimed(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed_BeforeDeadline", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		clk := clock.NewFixed(baseTime)
		svc := newTestTokenService(clk)

		_, err := svc.CreateEventToken(ctx, model.CreateTokenRequest{EventID: "ev", EventName: "Ev"}, "org-a")
		require.NoError(t, err)

		_, err = svc.BurnUnclaimed(ctx, "ev", "org-a")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrBurnNotOpen)
	})

	t.Run("Success_MintedAllocationsAreProtected", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		clk := clock.NewFixed(baseTime)
		svc := newTestTokenService(clk)

		_, err := svc.CreateEventToken(ctx, model.CreateTokenRequest{EventID: "ev", EventName: "Ev"}, "org-a")
		require.NoError(t, err)
		_, err = svc.MintTokens(ctx, "ev", "alice", 100, "org-a")
		require.NoError(t, err)

		// 所有配額在鑄造時即 claim：泛用掃除找不到可燒的東西
		clk.Advance(24 * time.Hour)
		burned, err := svc.BurnUnclaimed(ctx, "ev", "org-a")
		require.NoError(t, err)
		assert.Equal(t, int64(0), burned)

		ledger, err := svc.GetEventToken(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(0), ledger.TotalBurned)
	})
}

func TestTokenService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("ScarcityRatio", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		createTestEventAt(t, "ev", "org-a", 100, baseTime)
		svc := newTestTokenService(clock.NewFixed(baseTime))

		_, err := svc.CreateEventToken(ctx, model.CreateTokenRequest{EventID: "ev", EventName: "Ev Fest"}, "org-a")
		require.NoError(t, err)

		// minted=0：ratio 為 0，不除以零
		stats, err := svc.GetStats(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.ScarcityRatio)

		_, err = svc.MintTokens(ctx, "ev", "alice", 200, "org-a")
		require.NoError(t, err)

		stats, err = svc.GetStats(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, int64(200), stats.CurrentSupply)
		assert.Equal(t, int64(100), stats.ScarcityRatio)
	})
}
