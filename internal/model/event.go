package model

import "time"

// BurnWindow 固定 24 小時銷毀時窗：createdAt + BurnWindow 之前禁止 burn
const BurnWindow = 24 * time.Hour

// Event 活動帳本的註冊資料：建立後僅計數器欄位會變動，永不刪除
type Event struct {
	ID           string    `json:"event_id" db:"event_id"`
	Organizer    string    `json:"organizer" db:"organizer"`
	Capacity     int       `json:"capacity" db:"capacity"`
	TotalMinted  int       `json:"total_minted" db:"total_minted"`
	TotalClaimed int       `json:"total_claimed" db:"total_claimed"`
	TotalBurned  int       `json:"total_burned" db:"total_burned"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	BurnDeadline time.Time `json:"burn_deadline" db:"burn_deadline"`
}

// BurnOpen 檢查銷毀時窗是否已開啟
func (e *Event) BurnOpen(now time.Time) bool {
	return !now.Before(e.BurnDeadline)
}

// LiveSupply 目前存活的發行數（掃除完成後恆等於 TotalClaimed）
func (e *Event) LiveSupply() int {
	return e.TotalMinted - e.TotalBurned
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	EventID   string `json:"event_id" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required"`
	Organizer string `json:"organizer" binding:"required"`
}

// EventStats 活動帳本統計（讀取自 Postgres，為權威數據）
type EventStats struct {
	EventID      string `json:"event_id"`
	Capacity     int    `json:"capacity"`
	TotalMinted  int    `json:"total_minted"`
	TotalClaimed int    `json:"total_claimed"`
	TotalBurned  int    `json:"total_burned"`
	LiveSupply   int    `json:"live_supply"`
}
