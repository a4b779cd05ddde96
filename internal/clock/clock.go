package clock

import "time"

// Clock 注入式時鐘；burn deadline 的比較一律經由此介面取得 now
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem 回傳以 time.Now 為準的時鐘
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock 固定時刻的時鐘，測試用；可用 Advance 推進時間
type FixedClock struct {
	now time.Time
}

func NewFixed(t time.Time) *FixedClock {
	return &FixedClock{now: t.UTC()}
}

func (f *FixedClock) Now() time.Time {
	return f.now
}

// Advance 將時鐘往後推進 d
func (f *FixedClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
