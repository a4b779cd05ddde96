package repository

import (
	"context"

	"go-doormint-ledger/internal/model"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenRepository interface {
	Create(ctx context.Context, ledger *model.TokenLedger) (*model.TokenLedger, error)
	FindByEventID(ctx context.Context, eventID string) (*model.TokenLedger, error)
	List(ctx context.Context) ([]*model.TokenLedger, error)
	Count(ctx context.Context) (int, error)
	FindAllocation(ctx context.Context, eventID string, owner string) (*model.TokenAllocation, error)

	// Transaction methods
	// InsertAllocation 每位 attendee 每活動至多一筆；
	// 重複插入回傳 ErrAlreadyClaimed（代幣變體的 claimed 是鑄造時防重標記）
	InsertAllocation(ctx context.Context, tx pgx.Tx, allocation *model.TokenAllocation) error
	AddMinted(ctx context.Context, tx pgx.Tx, eventID string, amount int64) error
	// BurnUnclaimedAllocations 銷毀仍 alive 且未 claim 的配額，回傳銷毀的單位總量
	BurnUnclaimedAllocations(ctx context.Context, tx pgx.Tx, eventID string) (int64, error)
	AddBurned(ctx context.Context, tx pgx.Tx, eventID string, amount int64) error
}

type TokenRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) TokenRepository {
	return &TokenRepositoryImpl{
		pool: pool,
	}
}

func (r *TokenRepositoryImpl) Create(ctx context.Context, ledger *model.TokenLedger) (*model.TokenLedger, error) {
	query := `
		INSERT INTO token_ledgers (event_id, symbol, name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING event_id, symbol, name, total_minted, total_burned, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		ledger.EventID, ledger.Symbol, ledger.Name, ledger.CreatedAt,
	).Scan(
		&ledger.EventID,
		&ledger.Symbol,
		&ledger.Name,
		&ledger.TotalMinted,
		&ledger.TotalBurned,
		&ledger.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTokenExists
		}
		return nil, err
	}
	return ledger, nil
}

func (r *TokenRepositoryImpl) FindByEventID(ctx context.Context, eventID string) (*model.TokenLedger, error) {
	query := `
		SELECT event_id, symbol, name, total_minted, total_burned, created_at
		FROM token_ledgers
		WHERE event_id = $1
	`

	var ledger model.TokenLedger
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&ledger.EventID,
		&ledger.Symbol,
		&ledger.Name,
		&ledger.TotalMinted,
		&ledger.TotalBurned,
		&ledger.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, err
	}

	return &ledger, nil
}

func (r *TokenRepositoryImpl) List(ctx context.Context) ([]*model.TokenLedger, error) {
	query := `
		SELECT event_id, symbol, name, total_minted, total_burned, created_at
		FROM token_ledgers
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledgers := make([]*model.TokenLedger, 0)
	for rows.Next() {
		var ledger model.TokenLedger
		err := rows.Scan(
			&ledger.EventID,
			&ledger.Symbol,
			&ledger.Name,
			&ledger.TotalMinted,
			&ledger.TotalBurned,
			&ledger.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, &ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (r *TokenRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM token_ledgers`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TokenRepositoryImpl) FindAllocation(ctx context.Context, eventID string, owner string) (*model.TokenAllocation, error) {
	query := `
		SELECT event_id, owner, amount, claimed, alive, created_at
		FROM token_allocations
		WHERE event_id = $1 AND owner = $2
	`

	var allocation model.TokenAllocation
	err := r.pool.QueryRow(ctx, query, eventID, owner).Scan(
		&allocation.EventID,
		&allocation.Owner,
		&allocation.Amount,
		&allocation.Claimed,
		&allocation.Alive,
		&allocation.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrIssuanceNotFound
		}
		return nil, err
	}

	return &allocation, nil
}

func (r *TokenRepositoryImpl) InsertAllocation(ctx context.Context, tx pgx.Tx, allocation *model.TokenAllocation) error {
	query := `
		INSERT INTO token_allocations (event_id, owner, amount, claimed, alive, created_at)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		ON CONFLICT (event_id, owner) DO NOTHING
		RETURNING alive
	`
	err := tx.QueryRow(ctx, query,
		allocation.EventID, allocation.Owner, allocation.Amount, allocation.Claimed, allocation.CreatedAt,
	).Scan(&allocation.Alive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrAlreadyClaimed
		}
		return err
	}
	return nil
}

func (r *TokenRepositoryImpl) AddMinted(ctx context.Context, tx pgx.Tx, eventID string, amount int64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidInput
	}

	query := `
		UPDATE token_ledgers
		SET total_minted = total_minted + $1
		WHERE event_id = $2
	`

	result, err := tx.Exec(ctx, query, amount, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

func (r *TokenRepositoryImpl) BurnUnclaimedAllocations(ctx context.Context, tx pgx.Tx, eventID string) (int64, error) {
	query := `
		UPDATE token_allocations
		SET alive = FALSE
		WHERE event_id = $1 AND alive AND NOT claimed
		RETURNING amount
	`

	rows, err := tx.Query(ctx, query, eventID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var total int64
	for rows.Next() {
		var amount int64
		if err := rows.Scan(&amount); err != nil {
			return 0, err
		}
		total += amount
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TokenRepositoryImpl) AddBurned(ctx context.Context, tx pgx.Tx, eventID string, amount int64) error {
	if amount < 0 {
		return apperrors.ErrInvalidInput
	}
	if amount == 0 {
		return nil
	}

	query := `
		UPDATE token_ledgers
		SET total_burned = total_burned + $1
		WHERE event_id = $2
	`

	result, err := tx.Exec(ctx, query, amount, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}
