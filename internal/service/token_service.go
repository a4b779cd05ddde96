package service

import (
	"context"

	"go-doormint-ledger/internal/auth"
	"go-doormint-ledger/internal/clock"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/queue"
	"go-doormint-ledger/internal/repository"
	"go-doormint-ledger/internal/ticker"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenService 每活動一檔的代幣命名空間。
// 此變體的 claimed 在鑄造當下即寫定（每位 attendee 只能領一次配額），
// 與入場憑證的事後核銷是兩種不同語意，刻意不統一
type TokenService interface {
	// 以 TickerGenerator 推導 symbol 並建立隔離的代幣帳本；每個 eventId 至多一檔
	CreateEventToken(ctx context.Context, req model.CreateTokenRequest, caller string) (*model.TokenLedger, error)
	// 鑄造 amount 單位給 attendee；同一 (event, attendee) 第二次呼叫回傳 ErrAlreadyClaimed
	MintTokens(ctx context.Context, eventID string, attendee string, amount int64, caller string) (*model.TokenAllocation, error)
	// 銷毀未 claim 的配額（與入場變體同一套泛用演算法）；deadline 前回傳 ErrBurnNotOpen
	BurnUnclaimed(ctx context.Context, eventID string, caller string) (int64, error)

	GetEventToken(ctx context.Context, eventID string) (*model.TokenLedger, error)
	ListEventTokens(ctx context.Context) ([]*model.TokenLedger, error)
	GetTotalTokens(ctx context.Context) (int, error)
	GetStats(ctx context.Context, eventID string) (*model.TokenStats, error)
}

type TokenServiceImpl struct {
	pool   *pgxpool.Pool
	tokens repository.TokenRepository
	events repository.EventRepository
	policy auth.Policy
	queue  queue.LedgerEventQueue
	clock  clock.Clock
}

func NewTokenService(
	pool *pgxpool.Pool,
	tokenRepository repository.TokenRepository,
	eventRepository repository.EventRepository,
	policy auth.Policy,
	ledgerQueue queue.LedgerEventQueue,
	clk clock.Clock,
) TokenService {
	return &TokenServiceImpl{
		pool:   pool,
		tokens: tokenRepository,
		events: eventRepository,
		policy: policy,
		queue:  ledgerQueue,
		clock:  clk,
	}
}

func (s *TokenServiceImpl) CreateEventToken(ctx context.Context, req model.CreateTokenRequest, caller string) (*model.TokenLedger, error) {
	if req.EventID == "" || req.EventName == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if err := s.policy.Allow(ctx, req.EventID, caller); err != nil {
		return nil, err
	}

	ledger := &model.TokenLedger{
		EventID:   req.EventID,
		Symbol:    ticker.GenerateSymbol(req.EventName),
		Name:      req.EventName + " Token",
		CreatedAt: s.clock.Now(),
	}

	created, err := s.tokens.Create(ctx, ledger)
	if err != nil {
		return nil, err
	}

	publishLedgerEvent(s.queue, &model.LedgerEvent{
		Type:       model.LedgerTokenCreated,
		EventID:    created.EventID,
		Symbol:     created.Symbol,
		OccurredAt: created.CreatedAt,
	})

	return created, nil
}

func (s *TokenServiceImpl) MintTokens(ctx context.Context, eventID string, attendee string, amount int64, caller string) (*model.TokenAllocation, error) {
	if attendee == "" || amount <= 0 {
		return nil, apperrors.ErrInvalidInput
	}
	if err := s.policy.Allow(ctx, eventID, caller); err != nil {
		return nil, err
	}
	if _, err := s.tokens.FindByEventID(ctx, eventID); err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	allocation := &model.TokenAllocation{
		EventID:   eventID,
		Owner:     attendee,
		Amount:    amount,
		Claimed:   true, // 鑄造即 claim：防止同一 attendee 重複領取
		CreatedAt: s.clock.Now(),
	}

	if err := s.tokens.InsertAllocation(ctx, tx, allocation); err != nil {
		return nil, err
	}
	if err := s.tokens.AddMinted(ctx, tx, eventID, amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	publishLedgerEvent(s.queue, &model.LedgerEvent{
		Type:       model.LedgerTokensMinted,
		EventID:    eventID,
		Owner:      attendee,
		Count:      amount,
		OccurredAt: allocation.CreatedAt,
	})

	return allocation, nil
}

func (s *TokenServiceImpl) BurnUnclaimed(ctx context.Context, eventID string, caller string) (int64, error) {
	if _, err := s.tokens.FindByEventID(ctx, eventID); err != nil {
		return 0, err
	}
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if !event.BurnOpen(s.clock.Now()) {
		return 0, apperrors.ErrBurnNotOpen
	}
	if err := s.policy.Allow(ctx, eventID, caller); err != nil {
		return 0, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	burned, err := s.tokens.BurnUnclaimedAllocations(ctx, tx, eventID)
	if err != nil {
		return 0, err
	}
	if err := s.tokens.AddBurned(ctx, tx, eventID, burned); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	if burned > 0 {
		publishLedgerEvent(s.queue, &model.LedgerEvent{
			Type:       model.LedgerTokensBurned,
			EventID:    eventID,
			Count:      burned,
			OccurredAt: s.clock.Now(),
		})
	}

	return burned, nil
}

func (s *TokenServiceImpl) GetEventToken(ctx context.Context, eventID string) (*model.TokenLedger, error) {
	return s.tokens.FindByEventID(ctx, eventID)
}

func (s *TokenServiceImpl) ListEventTokens(ctx context.Context) ([]*model.TokenLedger, error) {
	return s.tokens.List(ctx)
}

func (s *TokenServiceImpl) GetTotalTokens(ctx context.Context) (int, error) {
	return s.tokens.Count(ctx)
}

func (s *TokenServiceImpl) GetStats(ctx context.Context, eventID string) (*model.TokenStats, error) {
	ledger, err := s.tokens.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return model.NewTokenStats(ledger), nil
}
