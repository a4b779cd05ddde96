package repository

import (
	"context"

	"go-doormint-ledger/internal/model"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IssuanceRepository interface {
	FindByID(ctx context.Context, eventID string, issuanceID int64) (*model.Issuance, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Issuance, error)
	// ListUnclaimedIDs 回傳 afterID 之後、存活且未 claim 的發行 id（升冪、最多 limit 筆）；
	// sweep worker 以此分頁，核心不做無界迭代
	ListUnclaimedIDs(ctx context.Context, eventID string, afterID int64, limit int) ([]int64, error)
	CountAlive(ctx context.Context, eventID string) (int, error)

	// Transaction methods
	Insert(ctx context.Context, tx pgx.Tx, issuance *model.Issuance) error
	// Claim 寫一次 claimed=true；條件式 UPDATE 帶齊所有前置條件
	Claim(ctx context.Context, tx pgx.Tx, eventID string, issuanceID int64) error
	// BurnBatch 銷毀候選批次中仍 alive 且未 claim 的單位，回傳實際銷毀數；
	// 已銷毀或已 claim 的 id 是 no-op，重複/重疊批次因此安全
	BurnBatch(ctx context.Context, tx pgx.Tx, eventID string, issuanceIDs []int64) (int, error)
	// BurnAll 掃除整個活動的未 claim 發行清單（單一 set-based 語句）
	BurnAll(ctx context.Context, tx pgx.Tx, eventID string) (int, error)
}

type IssuanceRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewIssuanceRepository(pool *pgxpool.Pool) IssuanceRepository {
	return &IssuanceRepositoryImpl{
		pool: pool,
	}
}

func (r *IssuanceRepositoryImpl) Insert(ctx context.Context, tx pgx.Tx, issuance *model.Issuance) error {
	query := `
		INSERT INTO issuances (event_id, issuance_id, owner, claimed, alive, created_at)
		VALUES ($1, $2, $3, FALSE, TRUE, $4)
		RETURNING claimed, alive
	`
	return tx.QueryRow(ctx, query,
		issuance.EventID, issuance.IssuanceID, issuance.Owner, issuance.CreatedAt,
	).Scan(&issuance.Claimed, &issuance.Alive)
}

func (r *IssuanceRepositoryImpl) FindByID(ctx context.Context, eventID string, issuanceID int64) (*model.Issuance, error) {
	query := `
		SELECT event_id, issuance_id, owner, claimed, alive, created_at
		FROM issuances
		WHERE event_id = $1 AND issuance_id = $2
	`

	var issuance model.Issuance
	err := r.pool.QueryRow(ctx, query, eventID, issuanceID).Scan(
		&issuance.EventID,
		&issuance.IssuanceID,
		&issuance.Owner,
		&issuance.Claimed,
		&issuance.Alive,
		&issuance.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrIssuanceNotFound
		}
		return nil, err
	}

	return &issuance, nil
}

func (r *IssuanceRepositoryImpl) ListByEvent(ctx context.Context, eventID string) ([]*model.Issuance, error) {
	query := `
		SELECT event_id, issuance_id, owner, claimed, alive, created_at
		FROM issuances
		WHERE event_id = $1
		ORDER BY issuance_id
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issuances := make([]*model.Issuance, 0)
	for rows.Next() {
		var issuance model.Issuance
		err := rows.Scan(
			&issuance.EventID,
			&issuance.IssuanceID,
			&issuance.Owner,
			&issuance.Claimed,
			&issuance.Alive,
			&issuance.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		issuances = append(issuances, &issuance)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return issuances, nil
}

func (r *IssuanceRepositoryImpl) ListUnclaimedIDs(ctx context.Context, eventID string, afterID int64, limit int) ([]int64, error) {
	if limit <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	query := `
		SELECT issuance_id
		FROM issuances
		WHERE event_id = $1 AND issuance_id > $2 AND alive AND NOT claimed
		ORDER BY issuance_id
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, eventID, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *IssuanceRepositoryImpl) CountAlive(ctx context.Context, eventID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM issuances
		WHERE event_id = $1 AND alive
	`

	var count int
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *IssuanceRepositoryImpl) Claim(ctx context.Context, tx pgx.Tx, eventID string, issuanceID int64) error {
	query := `
		UPDATE issuances
		SET claimed = TRUE
		WHERE event_id = $1 AND issuance_id = $2 AND NOT claimed AND alive
	`

	result, err := tx.Exec(ctx, query, eventID, issuanceID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		// 區分不存在 / 已 claim / 已銷毀
		var claimed, alive bool
		checkErr := tx.QueryRow(ctx,
			`SELECT claimed, alive FROM issuances WHERE event_id = $1 AND issuance_id = $2`,
			eventID, issuanceID,
		).Scan(&claimed, &alive)
		if checkErr != nil {
			if checkErr == pgx.ErrNoRows {
				return apperrors.ErrIssuanceNotFound
			}
			return checkErr
		}
		if claimed {
			return apperrors.ErrAlreadyClaimed
		}
		return apperrors.ErrAlreadyBurned
	}

	return nil
}

func (r *IssuanceRepositoryImpl) BurnBatch(ctx context.Context, tx pgx.Tx, eventID string, issuanceIDs []int64) (int, error) {
	if len(issuanceIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE issuances
		SET alive = FALSE
		WHERE event_id = $1 AND issuance_id = ANY($2) AND alive AND NOT claimed
	`

	result, err := tx.Exec(ctx, query, eventID, issuanceIDs)
	if err != nil {
		return 0, err
	}

	return int(result.RowsAffected()), nil
}

func (r *IssuanceRepositoryImpl) BurnAll(ctx context.Context, tx pgx.Tx, eventID string) (int, error) {
	query := `
		UPDATE issuances
		SET alive = FALSE
		WHERE event_id = $1 AND alive AND NOT claimed
	`

	result, err := tx.Exec(ctx, query, eventID)
	if err != nil {
		return 0, err
	}

	return int(result.RowsAffected()), nil
}
