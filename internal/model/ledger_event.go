package model

import "time"

// LedgerEventType 帳本狀態轉移通知類型
type LedgerEventType string

const (
	LedgerEventCreated   LedgerEventType = "event_created"
	LedgerEntryMinted    LedgerEventType = "entry_minted"
	LedgerEntryClaimed   LedgerEventType = "entry_claimed"
	LedgerBurnCompleted  LedgerEventType = "burn_completed"
	LedgerTokenCreated   LedgerEventType = "token_created"
	LedgerTokensMinted   LedgerEventType = "tokens_minted"
	LedgerTokensBurned   LedgerEventType = "tokens_burned"
	LedgerSweepRequested LedgerEventType = "sweep_requested"
)

// LedgerEvent 每次狀態轉移發佈一筆，供外部 indexer / 分析端消費。
// Caller 只在 sweep_requested 上有意義：sweep worker 以請求者身分執行銷毀
type LedgerEvent struct {
	ID         string          `json:"id"`
	Type       LedgerEventType `json:"type"`
	EventID    string          `json:"event_id"`
	IssuanceID int64           `json:"issuance_id,omitempty"`
	Owner      string          `json:"owner,omitempty"`
	Symbol     string          `json:"symbol,omitempty"`
	Count      int64           `json:"count,omitempty"`
	Caller     string          `json:"caller,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// SupplyCounters 供 Redis 分析鏡像使用的每活動計數器
type SupplyCounters struct {
	Capacity int64 `json:"capacity"`
	Minted   int64 `json:"minted"`
	Claimed  int64 `json:"claimed"`
	Burned   int64 `json:"burned"`
}
