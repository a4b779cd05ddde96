package model

import "time"

// IssuanceState 發行單位狀態
type IssuanceState string

const (
	IssuanceStateIssued  IssuanceState = "issued"
	IssuanceStateClaimed IssuanceState = "claimed"
	IssuanceStateBurned  IssuanceState = "burned"
)

// Issuance 單一發行單位（入場憑證）。
// 終局狀態互斥：claimed=true 與 alive=false 至多成立其一；
// claimed 只能寫一次 true，alive 只能寫一次 false，資料列永不實體刪除。
type Issuance struct {
	EventID    string    `json:"event_id" db:"event_id"`
	IssuanceID int64     `json:"issuance_id" db:"issuance_id"`
	Owner      string    `json:"owner" db:"owner"`
	Claimed    bool      `json:"claimed" db:"claimed"`
	Alive      bool      `json:"alive" db:"alive"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// State 回傳目前狀態：issued / claimed / burned
func (i *Issuance) State() IssuanceState {
	switch {
	case i.Claimed:
		return IssuanceStateClaimed
	case !i.Alive:
		return IssuanceStateBurned
	default:
		return IssuanceStateIssued
	}
}

// Burnable 只有 issued（存活且未 claim）的單位可被銷毀
func (i *Issuance) Burnable() bool {
	return i.Alive && !i.Claimed
}

// MintEntryRequest 鑄造入場憑證請求
type MintEntryRequest struct {
	Attendee string `json:"attendee" binding:"required"`
}

// BurnRequest 銷毀請求；IssuanceIDs 為呼叫端負責分頁的候選批次，
// 省略時掃除整個活動的發行清單
type BurnRequest struct {
	IssuanceIDs []int64 `json:"issuance_ids"`
}

// BurnResult 單次銷毀呼叫的結果
type BurnResult struct {
	EventID string `json:"event_id"`
	Burned  int    `json:"burned"`
}
