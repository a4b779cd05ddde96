package service

import (
	"context"

	"go-doormint-ledger/internal/auth"
	"go-doormint-ledger/internal/clock"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/queue"
	"go-doormint-ledger/internal/repository"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryService 入場憑證帳本：mint → claim 或 mint → burn，終局狀態互斥。
// 單一活動內的操作以 event 資料列的列鎖序列化；不同活動可平行
type EntryService interface {
	// 鑄造一張入場憑證；issuance id 依呼叫順序嚴格遞增
	MintEntry(ctx context.Context, eventID string, attendee string, caller string) (*model.Issuance, error)
	// 核銷；claimed 寫一次之後永久受銷毀保護
	MarkAsClaimed(ctx context.Context, eventID string, issuanceID int64, caller string) error
	// 銷毀候選批次中未核銷的單位；deadline 未到回傳 ErrBurnNotOpen。
	// candidateIDs 為 nil 時掃除整個活動；對同一 id 重複呼叫是 no-op
	BurnUnclaimed(ctx context.Context, eventID string, candidateIDs []int64, caller string) (*model.BurnResult, error)
	// 發佈 sweep 請求，由 ledger worker 分批執行；時窗開啟不會自動觸發掃除
	RequestSweep(ctx context.Context, eventID string, caller string) error

	GetIssuance(ctx context.Context, eventID string, issuanceID int64) (*model.Issuance, error)
	ListIssuances(ctx context.Context, eventID string) ([]*model.Issuance, error)
	ListUnclaimedIDs(ctx context.Context, eventID string, afterID int64, limit int) ([]int64, error)
	// GetTotalSupply 計算目前存活的發行數
	GetTotalSupply(ctx context.Context, eventID string) (int, error)
	GetStats(ctx context.Context, eventID string) (*model.EventStats, error)
}

type EntryServiceImpl struct {
	pool      *pgxpool.Pool
	events    repository.EventRepository
	issuances repository.IssuanceRepository
	policy    auth.Policy
	queue     queue.LedgerEventQueue
	clock     clock.Clock
}

func NewEntryService(
	pool *pgxpool.Pool,
	eventRepository repository.EventRepository,
	issuanceRepository repository.IssuanceRepository,
	policy auth.Policy,
	ledgerQueue queue.LedgerEventQueue,
	clk clock.Clock,
) EntryService {
	return &EntryServiceImpl{
		pool:      pool,
		events:    eventRepository,
		issuances: issuanceRepository,
		policy:    policy,
		queue:     ledgerQueue,
		clock:     clk,
	}
}

func (s *EntryServiceImpl) MintEntry(ctx context.Context, eventID string, attendee string, caller string) (*model.Issuance, error) {
	if attendee == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if err := s.policy.Allow(ctx, eventID, caller); err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 1. 第一個碰 event 列的人拿到列鎖：容量檢查與 id 配號在同一原子步驟完成
	issuanceID, err := s.events.ReserveIssuance(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	issuance := &model.Issuance{
		EventID:    eventID,
		IssuanceID: issuanceID,
		Owner:      attendee,
		CreatedAt:  s.clock.Now(),
	}

	// 2. 寫入發行資料列
	if err := s.issuances.Insert(ctx, tx, issuance); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	publishLedgerEvent(s.queue, &model.LedgerEvent{
		Type:       model.LedgerEntryMinted,
		EventID:    eventID,
		IssuanceID: issuanceID,
		Owner:      attendee,
		Count:      1,
		OccurredAt: issuance.CreatedAt,
	})

	return issuance, nil
}

func (s *EntryServiceImpl) MarkAsClaimed(ctx context.Context, eventID string, issuanceID int64, caller string) error {
	if err := s.policy.Allow(ctx, eventID, caller); err != nil {
		return err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// claimed 與 total_claimed 在同一交易內變動；失敗即整筆回滾
	if err := s.issuances.Claim(ctx, tx, eventID, issuanceID); err != nil {
		return err
	}
	if err := s.events.IncrementClaimed(ctx, tx, eventID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	publishLedgerEvent(s.queue, &model.LedgerEvent{
		Type:       model.LedgerEntryClaimed,
		EventID:    eventID,
		IssuanceID: issuanceID,
		Count:      1,
		OccurredAt: s.clock.Now(),
	})

	return nil
}

func (s *EntryServiceImpl) BurnUnclaimed(ctx context.Context, eventID string, candidateIDs []int64, caller string) (*model.BurnResult, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.BurnOpen(s.clock.Now()) {
		return nil, apperrors.ErrBurnNotOpen
	}
	if err := s.policy.Allow(ctx, eventID, caller); err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var burned int
	if candidateIDs == nil {
		burned, err = s.issuances.BurnAll(ctx, tx, eventID)
	} else {
		burned, err = s.issuances.BurnBatch(ctx, tx, eventID, candidateIDs)
	}
	if err != nil {
		return nil, err
	}

	if err := s.events.AddBurned(ctx, tx, eventID, burned); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if burned > 0 {
		publishLedgerEvent(s.queue, &model.LedgerEvent{
			Type:       model.LedgerBurnCompleted,
			EventID:    eventID,
			Count:      int64(burned),
			OccurredAt: s.clock.Now(),
		})
	}

	return &model.BurnResult{EventID: eventID, Burned: burned}, nil
}

func (s *EntryServiceImpl) RequestSweep(ctx context.Context, eventID string, caller string) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !event.BurnOpen(s.clock.Now()) {
		return apperrors.ErrBurnNotOpen
	}
	if err := s.policy.Allow(ctx, eventID, caller); err != nil {
		return err
	}

	// 請求者身分隨消息傳遞；worker 以該身分執行分批銷毀
	return s.queue.PublishLedgerEvent(ctx, &model.LedgerEvent{
		Type:       model.LedgerSweepRequested,
		EventID:    eventID,
		Caller:     caller,
		OccurredAt: s.clock.Now(),
	})
}

func (s *EntryServiceImpl) GetIssuance(ctx context.Context, eventID string, issuanceID int64) (*model.Issuance, error) {
	return s.issuances.FindByID(ctx, eventID, issuanceID)
}

func (s *EntryServiceImpl) ListIssuances(ctx context.Context, eventID string) ([]*model.Issuance, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.issuances.ListByEvent(ctx, eventID)
}

func (s *EntryServiceImpl) ListUnclaimedIDs(ctx context.Context, eventID string, afterID int64, limit int) ([]int64, error) {
	return s.issuances.ListUnclaimedIDs(ctx, eventID, afterID, limit)
}

func (s *EntryServiceImpl) GetTotalSupply(ctx context.Context, eventID string) (int, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return 0, err
	}
	return s.issuances.CountAlive(ctx, eventID)
}

func (s *EntryServiceImpl) GetStats(ctx context.Context, eventID string) (*model.EventStats, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &model.EventStats{
		EventID:      event.ID,
		Capacity:     event.Capacity,
		TotalMinted:  event.TotalMinted,
		TotalClaimed: event.TotalClaimed,
		TotalBurned:  event.TotalBurned,
		LiveSupply:   event.LiveSupply(),
	}, nil
}
