package ticker

import (
	"testing"

	"go-doormint-ledger/internal/ticker"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSymbol(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		want      string
	}{
		{"MixedCaseWithSpaces", "Vibe Party 2026", "VIBEPARTY2026"},
		{"AllLowercase", "eth denver", "ETHDENVER"},
		{"Punctuation", "NFT.NYC 2026!", "NFTNYC2026"},
		{"AlphanumericWord", "Web3 Summit 2026", "WEB3SUMMIT2026"},
		{"Empty", "", ""},
		{"OnlySymbols", "!!! ...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ticker.GenerateSymbol(tt.eventName))
		})
	}
}

// 相同輸入永遠產生相同 symbol
func TestGenerateSymbol_Deterministic(t *testing.T) {
	first := ticker.GenerateSymbol("Vibe Party 2026")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ticker.GenerateSymbol("Vibe Party 2026"))
	}
}
