package worker

import (
	"context"
	"testing"
	"time"

	cachemocks "go-doormint-ledger/internal/cache/mocks"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/queue"
	servicemocks "go-doormint-ledger/internal/service/mocks"
	"go-doormint-ledger/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLedgerWorker_MirrorsSupplyCounters(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// 1. 準備：自製 Memory Queue + Mock 供給鏡像
	q := queue.NewMemoryLedgerEventQueue(10)
	mockSupply := cachemocks.NewMockRedisSupplyCache(t)
	mockEntries := servicemocks.NewMockEntryService(t)

	applied := make(chan model.LedgerEventType, 3)
	mockSupply.EXPECT().WarmUp(mock.Anything, "ev", 100).Run(func(ctx context.Context, eventID string, capacity int) {
		applied <- model.LedgerEventCreated
	}).Return(nil).Once()
	mockSupply.EXPECT().Apply(mock.Anything, "ev", int64(1), int64(0), int64(0)).Run(func(ctx context.Context, eventID string, minted, claimed, burned int64) {
		applied <- model.LedgerEntryMinted
	}).Return(nil).Once()
	mockSupply.EXPECT().Apply(mock.Anything, "ev", int64(0), int64(0), int64(4)).Run(func(ctx context.Context, eventID string, minted, claimed, burned int64) {
		applied <- model.LedgerBurnCompleted
	}).Return(nil).Once()

	// 2. 啟動 Worker
	w := worker.NewLedgerWorker(mockEntries, mockSupply, q)
	assert.NoError(t, w.Start(ctx))

	// 3. 執行：依序丟入三種入場變體的通知
	events := []*model.LedgerEvent{
		{Type: model.LedgerEventCreated, EventID: "ev", Count: 100},
		{Type: model.LedgerEntryMinted, EventID: "ev", Count: 1, Owner: "alice"},
		{Type: model.LedgerBurnCompleted, EventID: "ev", Count: 4, Caller: "org-a"},
	}
	for _, e := range events {
		assert.NoError(t, q.PublishLedgerEvent(ctx, e))
	}

	// 4. 驗證：三筆都在時間內套用到鏡像
	for i := 0; i < len(events); i++ {
		select {
		case <-applied:
		case <-time.After(1 * time.Second):
			t.Fatal("超時！Worker 沒有在時間內套用供給鏡像")
		}
	}
}

func TestLedgerWorker_SweepPagesUntilExhausted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := queue.NewMemoryLedgerEventQueue(10)
	mockSupply := cachemocks.NewMockRedisSupplyCache(t)
	mockEntries := servicemocks.NewMockEntryService(t)

	// 第一頁回滿批（50 筆），第二頁從最後一筆 ID 之後接續並回空
	firstPage := make([]int64, worker.SweepBatchSize)
	for i := range firstPage {
		firstPage[i] = int64(i + 1)
	}
	lastID := firstPage[len(firstPage)-1]

	done := make(chan struct{}, 1)
	mockEntries.EXPECT().ListUnclaimedIDs(mock.Anything, "ev", int64(0), worker.SweepBatchSize).Return(firstPage, nil).Once()
	mockEntries.EXPECT().BurnUnclaimed(mock.Anything, "ev", firstPage, "admin").
		Return(&model.BurnResult{EventID: "ev", Burned: len(firstPage)}, nil).Once()
	mockEntries.EXPECT().ListUnclaimedIDs(mock.Anything, "ev", lastID, worker.SweepBatchSize).Run(func(ctx context.Context, eventID string, afterID int64, limit int) {
		done <- struct{}{}
	}).Return([]int64{}, nil).Once()

	w := worker.NewLedgerWorker(mockEntries, mockSupply, q)
	assert.NoError(t, w.Start(ctx))

	assert.NoError(t, q.PublishLedgerEvent(ctx, &model.LedgerEvent{
		Type:    model.LedgerSweepRequested,
		EventID: "ev",
		Caller:  "admin",
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("超時！sweep 沒有在時間內掃完分頁")
	}
}

func TestLedgerWorker_TokenEventsAreIgnored(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryLedgerEventQueue(10)
	mockSupply := cachemocks.NewMockRedisSupplyCache(t)
	mockEntries := servicemocks.NewMockEntryService(t)

	w := worker.NewLedgerWorker(mockEntries, mockSupply, q)
	assert.NoError(t, w.Start(ctx))

	// 代幣通知不應觸碰供給鏡像；後面接一筆入場通知當同步點
	synced := make(chan struct{}, 1)
	mockSupply.EXPECT().Apply(mock.Anything, "ev", int64(1), int64(0), int64(0)).Run(func(ctx context.Context, eventID string, minted, claimed, burned int64) {
		synced <- struct{}{}
	}).Return(nil).Once()

	assert.NoError(t, q.PublishLedgerEvent(ctx, &model.LedgerEvent{Type: model.LedgerTokensMinted, EventID: "ev", Count: 100}))
	assert.NoError(t, q.PublishLedgerEvent(ctx, &model.LedgerEvent{Type: model.LedgerEntryMinted, EventID: "ev", Count: 1}))

	select {
	case <-synced:
	case <-time.After(1 * time.Second):
		t.Fatal("超時！Worker 沒有消費到同步點通知")
	}
}
