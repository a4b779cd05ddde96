package worker

import (
	"context"

	"go-doormint-ledger/internal/cache"
	"go-doormint-ledger/internal/model"
	"go-doormint-ledger/internal/queue"
	"go-doormint-ledger/internal/service"
	"go-doormint-ledger/pkg/logger"

	"go.uber.org/zap"
)

// SweepBatchSize sweep worker 每次 BurnUnclaimed 呼叫的候選批次上限；
// 分頁由呼叫端（worker）負責，核心不做無界迭代
const SweepBatchSize = 50

// LedgerWorker 消費帳本通知：維護 Redis 供給鏡像、執行 sweep 請求
type LedgerWorker interface {
	Start(ctx context.Context) error
}

type LedgerWorkerImpl struct {
	entries service.EntryService
	supply  cache.RedisSupplyCache
	queue   queue.LedgerEventQueue
}

func NewLedgerWorker(
	entries service.EntryService,
	supply cache.RedisSupplyCache,
	ledgerQueue queue.LedgerEventQueue,
) LedgerWorker {
	return &LedgerWorkerImpl{
		entries: entries,
		supply:  supply,
		queue:   ledgerQueue,
	}
}

func (w *LedgerWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeLedgerEvents(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.handle(ctx, msg.Data); err != nil {
				// 暫時性失敗（Redis/DB 連不上）交給佇列延遲重試
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}

func (w *LedgerWorkerImpl) handle(ctx context.Context, event *model.LedgerEvent) error {
	log := logger.WithComponent("worker").With(
		zap.String("type", string(event.Type)),
		zap.String("event_id", event.EventID),
	)

	switch event.Type {
	case model.LedgerEventCreated:
		return w.supply.WarmUp(ctx, event.EventID, int(event.Count))
	case model.LedgerEntryMinted:
		return w.supply.Apply(ctx, event.EventID, event.Count, 0, 0)
	case model.LedgerEntryClaimed:
		return w.supply.Apply(ctx, event.EventID, 0, event.Count, 0)
	case model.LedgerBurnCompleted:
		return w.supply.Apply(ctx, event.EventID, 0, 0, event.Count)
	case model.LedgerSweepRequested:
		return w.runSweep(ctx, event.EventID, event.Caller)
	case model.LedgerTokenCreated, model.LedgerTokensMinted, model.LedgerTokensBurned:
		// 代幣通知由外部 indexer 自行消費；供給鏡像只追蹤入場變體
		return nil
	default:
		log.Warn("unknown ledger event type, discarding")
		return nil
	}
}

// runSweep 以請求者身分分批掃除：重疊或重送的批次因銷毀冪等而安全
func (w *LedgerWorkerImpl) runSweep(ctx context.Context, eventID string, caller string) error {
	log := logger.WithEvent("worker", eventID)

	var afterID int64
	totalBurned := 0
	for {
		ids, err := w.entries.ListUnclaimedIDs(ctx, eventID, afterID, SweepBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}

		result, err := w.entries.BurnUnclaimed(ctx, eventID, ids, caller)
		if err != nil {
			return err
		}
		totalBurned += result.Burned
		afterID = ids[len(ids)-1]
	}

	log.Info("sweep completed", zap.Int("burned", totalBurned))
	return nil
}
