package service

import (
	"context"

	"go-doormint-ledger/internal/clock"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/queue"
	"go-doormint-ledger/internal/repository"
	apperrors "go-doormint-ledger/pkg/app_errors"
	"go-doormint-ledger/pkg/logger"

	"go.uber.org/zap"
)

// EventService 活動註冊表：建立後只有計數器變動，活動永不刪除
type EventService interface {
	CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
}

type EventServiceImpl struct {
	repo  repository.EventRepository
	queue queue.LedgerEventQueue
	clock clock.Clock
}

func NewEventService(
	repo repository.EventRepository,
	ledgerQueue queue.LedgerEventQueue,
	clk clock.Clock,
) EventService {
	return &EventServiceImpl{
		repo:  repo,
		queue: ledgerQueue,
		clock: clk,
	}
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	if req.EventID == "" || req.Organizer == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if req.Capacity <= 0 {
		return nil, apperrors.ErrInvalidCapacity
	}

	now := s.clock.Now()
	event := &model.Event{
		ID:           req.EventID,
		Organizer:    req.Organizer,
		Capacity:     req.Capacity,
		CreatedAt:    now,
		BurnDeadline: now.Add(model.BurnWindow),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	publishLedgerEvent(s.queue, &model.LedgerEvent{
		Type:       model.LedgerEventCreated,
		EventID:    created.ID,
		Owner:      created.Organizer,
		Count:      int64(created.Capacity),
		OccurredAt: now,
	})

	return created, nil
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	return s.repo.FindByID(ctx, eventID)
}

func (s *EventServiceImpl) ListEvents(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

// publishLedgerEvent 通知在狀態轉移提交後發佈，屬於可觀測副作用而非交易的一部分：
// 發佈失敗只記 log，不讓已提交的操作失敗。
// 使用 context.Background() 確保請求取消後通知仍會送出
func publishLedgerEvent(q queue.LedgerEventQueue, event *model.LedgerEvent) {
	if err := q.PublishLedgerEvent(context.Background(), event); err != nil {
		logger.WithComponent("service").Warn("publish ledger event failed",
			zap.String("type", string(event.Type)),
			zap.String("event_id", event.EventID),
			zap.Error(err))
	}
}
