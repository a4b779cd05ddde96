package repository

import (
	"context"

	"go-doormint-ledger/internal/model"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, eventID string) (*model.Event, error)

	// Transaction methods
	// ReserveIssuance 原子地遞增 total_minted 並回傳新值作為 issuance id；
	// 條件式 UPDATE 同時完成容量檢查與單一活動序列化，不存在 check-then-act 空窗
	ReserveIssuance(ctx context.Context, tx pgx.Tx, eventID string) (int64, error)
	IncrementClaimed(ctx context.Context, tx pgx.Tx, eventID string) error
	AddBurned(ctx context.Context, tx pgx.Tx, eventID string, n int) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (event_id, organizer, capacity, created_at, burn_deadline)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING event_id, organizer, capacity, total_minted, total_claimed, total_burned,
			created_at, burn_deadline
	`
	err := r.pool.QueryRow(ctx, query,
		event.ID, event.Organizer, event.Capacity, event.CreatedAt, event.BurnDeadline,
	).Scan(
		&event.ID,
		&event.Organizer,
		&event.Capacity,
		&event.TotalMinted,
		&event.TotalClaimed,
		&event.TotalBurned,
		&event.CreatedAt,
		&event.BurnDeadline,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// ON CONFLICT DO NOTHING 沒有回傳列 = eventId 已存在
			return nil, apperrors.ErrEventExists
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT event_id, organizer, capacity, total_minted, total_claimed, total_burned,
			created_at, burn_deadline
		FROM events
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		err := rows.Scan(
			&event.ID,
			&event.Organizer,
			&event.Capacity,
			&event.TotalMinted,
			&event.TotalClaimed,
			&event.TotalBurned,
			&event.CreatedAt,
			&event.BurnDeadline,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, eventID string) (*model.Event, error) {
	query := `
		SELECT event_id, organizer, capacity, total_minted, total_claimed, total_burned,
			created_at, burn_deadline
		FROM events
		WHERE event_id = $1
	`

	var event model.Event
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&event.ID,
		&event.Organizer,
		&event.Capacity,
		&event.TotalMinted,
		&event.TotalClaimed,
		&event.TotalBurned,
		&event.CreatedAt,
		&event.BurnDeadline,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) ReserveIssuance(ctx context.Context, tx pgx.Tx, eventID string) (int64, error) {
	query := `
		UPDATE events
		SET total_minted = total_minted + 1
		WHERE event_id = $1 AND total_minted < capacity
		RETURNING total_minted
	`

	var issuanceID int64
	err := tx.QueryRow(ctx, query, eventID).Scan(&issuanceID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// 沒更新到列：區分活動不存在與容量耗盡
			var exists bool
			checkErr := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)`, eventID,
			).Scan(&exists)
			if checkErr != nil {
				return 0, checkErr
			}
			if !exists {
				return 0, apperrors.ErrEventNotFound
			}
			return 0, apperrors.ErrSoldOut
		}
		return 0, err
	}

	return issuanceID, nil
}

func (r *EventRepositoryImpl) IncrementClaimed(ctx context.Context, tx pgx.Tx, eventID string) error {
	query := `
		UPDATE events
		SET total_claimed = total_claimed + 1
		WHERE event_id = $1
	`

	result, err := tx.Exec(ctx, query, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) AddBurned(ctx context.Context, tx pgx.Tx, eventID string, n int) error {
	if n < 0 {
		return apperrors.ErrInvalidInput
	}
	if n == 0 {
		return nil
	}

	query := `
		UPDATE events
		SET total_burned = total_burned + $1
		WHERE event_id = $2
	`

	result, err := tx.Exec(ctx, query, n, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
