package queue

import (
	"context"

	"go-doormint-ledger/internal/model"
)

type Delivery struct {
	Data *model.LedgerEvent
	Ack  func()
	Nack func(requeue bool)
}

// LedgerEventQueue 帳本狀態轉移通知佇列。
// 每次成功的狀態轉移（建立活動、鑄造、核銷、銷毀）發佈一筆，
// 由 ledger worker 消費：更新供給鏡像、執行 sweep 請求
type LedgerEventQueue interface {
	// 發佈帳本通知
	PublishLedgerEvent(ctx context.Context, event *model.LedgerEvent) error
	// 訂閱帳本通知
	SubscribeLedgerEvents(ctx context.Context) (<-chan Delivery, error)
}

type MemoryLedgerEventQueueImpl struct {
	// 使用 Go channel 模擬 MQ，供測試與單機部署
	ch chan *model.LedgerEvent
}

func NewMemoryLedgerEventQueue(bufferSize int) LedgerEventQueue {
	return &MemoryLedgerEventQueueImpl{
		ch: make(chan *model.LedgerEvent, bufferSize),
	}
}

func (q *MemoryLedgerEventQueueImpl) PublishLedgerEvent(ctx context.Context, event *model.LedgerEvent) error {
	q.ch <- event
	return nil
}

func (q *MemoryLedgerEventQueueImpl) SubscribeLedgerEvents(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: event,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- event // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
