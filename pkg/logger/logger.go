package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// WithComponent 回傳帶有 component 欄位的 logger，供 handler、service、worker、MQ 使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// WithEvent 回傳帶有 event_id 欄位的 logger，帳本操作皆以 event 為範圍
func WithEvent(component string, eventID string) *zap.Logger {
	return L.With(zap.String("component", component), zap.String("event_id", eventID))
}
