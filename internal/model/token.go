package model

import "time"

// TokenLedger 每活動一檔的代幣帳本，與 Event 以 eventId 一對一
type TokenLedger struct {
	EventID     string    `json:"event_id" db:"event_id"`
	Symbol      string    `json:"symbol" db:"symbol"`
	Name        string    `json:"name" db:"name"`
	TotalMinted int64     `json:"total_minted" db:"total_minted"`
	TotalBurned int64     `json:"total_burned" db:"total_burned"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TokenAllocation 代幣配額。
// 注意：此處 claimed 的語意與入場憑證不同：代幣在鑄造當下即標記 claimed，
// 作為「每位參加者只能領一次」的防重標記，而非事後核銷
type TokenAllocation struct {
	EventID   string    `json:"event_id" db:"event_id"`
	Owner     string    `json:"owner" db:"owner"`
	Amount    int64     `json:"amount" db:"amount"`
	Claimed   bool      `json:"claimed" db:"claimed"`
	Alive     bool      `json:"alive" db:"alive"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateTokenRequest 建立活動代幣請求
type CreateTokenRequest struct {
	EventID   string `json:"event_id" binding:"required"`
	EventName string `json:"event_name" binding:"required"`
}

// MintTokensRequest 鑄造代幣請求
type MintTokensRequest struct {
	Attendee string `json:"attendee" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,min=1"`
}

// TokenStats 代幣帳本統計；ScarcityRatio = (minted-burned)*100/minted，minted=0 時為 0
type TokenStats struct {
	EventID       string `json:"event_id"`
	Symbol        string `json:"symbol"`
	CurrentSupply int64  `json:"current_supply"`
	TotalMinted   int64  `json:"total_minted"`
	TotalBurned   int64  `json:"total_burned"`
	ScarcityRatio int64  `json:"scarcity_ratio"`
}

// NewTokenStats 由帳本計數器推導統計
func NewTokenStats(l *TokenLedger) *TokenStats {
	s := &TokenStats{
		EventID:       l.EventID,
		Symbol:        l.Symbol,
		CurrentSupply: l.TotalMinted - l.TotalBurned,
		TotalMinted:   l.TotalMinted,
		TotalBurned:   l.TotalBurned,
	}
	if l.TotalMinted > 0 {
		s.ScarcityRatio = (l.TotalMinted - l.TotalBurned) * 100 / l.TotalMinted
	}
	return s
}
