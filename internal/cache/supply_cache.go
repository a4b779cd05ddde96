package cache

import (
	"context"
	"fmt"
	"strconv"

	"go-doormint-ledger/internal/model"
	apperrors "go-doormint-ledger/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// RedisSupplyCache 每活動供給計數器的分析鏡像。
// 權威數據在 Postgres；此鏡像由 indexer worker 依帳本通知維護，
// 提供 analytics 讀取路徑，可能落後一個佇列延遲
type RedisSupplyCache interface {
	// 預熱：活動建立時寫入初始計數器
	WarmUp(ctx context.Context, eventID string, capacity int) error
	// 套用：原子地累加 minted / claimed / burned (使用Lua腳本確保原子性)
	Apply(ctx context.Context, eventID string, minted, claimed, burned int64) error
	// 讀取：取得目前鏡像計數器
	GetCounters(ctx context.Context, eventID string) (model.SupplyCounters, error)
}

type RedisSupplyCacheImpl struct {
	client *redis.Client
}

func NewRedisSupplyCache(client *redis.Client) RedisSupplyCache {
	return &RedisSupplyCacheImpl{
		client: client,
	}
}

// 計數器 key
func (c *RedisSupplyCacheImpl) getSupplyKey(eventID string) string {
	return fmt.Sprintf("event:%s:supply", eventID)
}

func (c *RedisSupplyCacheImpl) WarmUp(ctx context.Context, eventID string, capacity int) error {
	key := c.getSupplyKey(eventID)
	return c.client.HSet(ctx, key, map[string]interface{}{
		"capacity": capacity,
		"minted":   0,
		"claimed":  0,
		"burned":   0,
	}).Err()
}

func (c *RedisSupplyCacheImpl) Apply(ctx context.Context, eventID string, minted, claimed, burned int64) error {
	key := c.getSupplyKey(eventID)

	// 三個欄位一次套用；鍵未預熱時不憑空建立殘缺的 hash
	script := `
		local supply_key = KEYS[1]
		local minted = tonumber(ARGV[1])
		local claimed = tonumber(ARGV[2])
		local burned = tonumber(ARGV[3])

		if redis.call('EXISTS', supply_key) == 0 then
			return -1
		end

		if minted ~= 0 then
			redis.call('HINCRBY', supply_key, 'minted', minted)
		end
		if claimed ~= 0 then
			redis.call('HINCRBY', supply_key, 'claimed', claimed)
		end
		if burned ~= 0 then
			redis.call('HINCRBY', supply_key, 'burned', burned)
		end

		return 1
	`

	result, err := c.client.Eval(ctx, script, []string{key}, minted, claimed, burned).Result()
	if err != nil {
		return err
	}

	if code, ok := result.(int64); ok && code == -1 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (c *RedisSupplyCacheImpl) GetCounters(ctx context.Context, eventID string) (model.SupplyCounters, error) {
	key := c.getSupplyKey(eventID)
	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return model.SupplyCounters{}, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return model.SupplyCounters{}, apperrors.ErrEventNotFound
	}

	counters := model.SupplyCounters{}
	fields := map[string]*int64{
		"capacity": &counters.Capacity,
		"minted":   &counters.Minted,
		"claimed":  &counters.Claimed,
		"burned":   &counters.Burned,
	}
	for field, dst := range fields {
		raw, ok := result[field]
		if !ok {
			return model.SupplyCounters{}, fmt.Errorf("missing field %q", field)
		}
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.SupplyCounters{}, fmt.Errorf("invalid %s: %v", field, err)
		}
		*dst = val
	}

	return counters, nil
}
