package apperrors

import "errors"

// 驗證類錯誤：呼叫端邏輯錯誤，不可自動重試
var (
	ErrEventExists     = errors.New("event already exists")
	ErrTokenExists     = errors.New("event token already exists")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidInput    = errors.New("invalid input")
)

// 授權類錯誤
var (
	ErrNotAuthorized = errors.New("caller is not organizer or admin")
)

// 狀態類錯誤：操作與帳本當前狀態衝突
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrIssuanceNotFound = errors.New("issuance not found")
	ErrTokenNotFound    = errors.New("event token not found")
	ErrAlreadyClaimed   = errors.New("already claimed")
	ErrAlreadyBurned    = errors.New("issuance already burned")
	ErrBurnNotOpen      = errors.New("burn window not open yet")
)

// 容量類錯誤
var (
	ErrSoldOut = errors.New("event capacity exhausted")
)

var (
	ErrInternalServerError = errors.New("internal server error")
)
