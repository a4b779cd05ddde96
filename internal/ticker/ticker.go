package ticker

import "strings"

// GenerateSymbol 由活動名稱推導代幣符號：純函式、確定性。
// a-z 轉大寫、A-Z 與 0-9 保留、其他字元捨棄，維持原順序。
// 不設長度上限、不做碰撞檢查；不同名稱可能產生相同符號，
// 命名空間的唯一鍵是 eventId 而非符號。
func GenerateSymbol(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
