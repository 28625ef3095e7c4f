package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duitbot/duitbot/internal/model"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name         string
		text         string
		intent       model.Intent
		wantAmount   string
		wantCategory string
		wantDate     string
	}{
		{
			name:         "full expense sentence",
			text:         "catat pengeluaran 50000 untuk makan",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "50000",
			wantCategory: "makan",
		},
		{
			name:         "expense with separators and currency",
			text:         "bayar Rp 50.000 untuk listrik",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "Rp 50.000",
			wantCategory: "listrik",
		},
		{
			name:         "shorthand expense",
			text:         "p50k makan",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "50k",
			wantCategory: "makan",
		},
		{
			name:         "shorthand income",
			text:         "i500k bonus",
			intent:       model.IntentIncomeSingle,
			wantAmount:   "500k",
			wantCategory: "bonus",
		},
		{
			name:         "income with dari",
			text:         "terima uang 2 juta dari gaji",
			intent:       model.IntentIncomeSingle,
			wantAmount:   "2 juta",
			wantCategory: "gaji",
		},
		{
			name:         "word-form amount",
			text:         "lima puluh ribu untuk makan",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "lima puluh ribu",
			wantCategory: "makan",
		},
		{
			name:         "verb form without keyword",
			text:         "beli bakso 20k",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "20k",
			wantCategory: "bakso",
		},
		{
			name:         "date word stripped from clause",
			text:         "bayar 20000 buat parkir kemarin",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "20000",
			wantCategory: "parkir",
			wantDate:     "kemarin",
		},
		{
			name:         "numeric date",
			text:         "catat pengeluaran 75000 untuk pulsa 12-03-2024",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "75000",
			wantCategory: "pulsa",
			wantDate:     "12-03-2024",
		},
		{
			name:   "no entities",
			text:   "halo apa kabar",
			intent: model.IntentUnrecognized,
		},
		{
			name:         "multi-word category",
			text:         "bayar 100000 untuk makan siang",
			intent:       model.IntentExpenseSingle,
			wantAmount:   "100000",
			wantCategory: "makan siang",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.text, tt.intent)

			assert.Equal(t, tt.wantAmount, got.AmountText, "amount")
			assert.Equal(t, tt.wantCategory, got.CategoryText, "category")
			assert.Equal(t, tt.wantDate, got.DateText, "date")
		})
	}
}
