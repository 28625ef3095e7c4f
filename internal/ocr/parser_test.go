package ocr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitbot/duitbot/internal/common"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestParseReceiptText(t *testing.T) {
	raw := `WARUNG SEDAP JAYA
Jl. Sudirman No. 12
12-03-2024

Bakso Spesial Rp 15.000
2 x Es Teh Rp 10.000

TOTAL Rp 25.000
TUNAI Rp 30.000
KEMBALI Rp 5.000`

	got := ParseReceiptText(raw, fixedClock)

	assert.Equal(t, []int64{15000, 10000, 25000, 30000, 5000}, got.Amounts)
	assert.Equal(t, []time.Time{time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)}, got.Dates)
	assert.Equal(t, []string{"WARUNG SEDAP JAYA"}, got.Merchants)
	// Summary lines carry amounts but must not become items.
	assert.Equal(t, []string{"Bakso Spesial", "Es Teh"}, got.Items)
	assert.Equal(t, int64(30000), got.MaxAmount())
	assert.False(t, got.Empty())
}

func TestParseReceiptText_AmountDecorations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{name: "dash decoration", raw: "TOTAL Rp 25.000,-", want: []int64{25000}},
		{name: "zero cents", raw: "TOTAL Rp 10.000,00", want: []int64{10000}},
		{name: "idr prefix", raw: "IDR 150.000", want: []int64{150000}},
		{name: "grouped without prefix", raw: "JUMLAH 1.250.000", want: []int64{1250000}},
		{name: "bare small number ignored", raw: "Jl. Sudirman No. 12", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReceiptText(tt.raw, fixedClock)
			assert.Equal(t, tt.want, got.Amounts)
		})
	}
}

func TestParseReceiptText_Empty(t *testing.T) {
	got := ParseReceiptText("", fixedClock)

	assert.True(t, got.Empty())
	assert.Zero(t, got.MaxAmount())
}

func TestValidateExtract(t *testing.T) {
	valid := Extract{
		Amounts:   []int64{15000, 25000},
		Dates:     []time.Time{time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		Merchants: []string{"WARUNG SEDAP"},
		Items:     []string{"Bakso"},
	}
	require.NoError(t, ValidateExtract(valid))
	require.NoError(t, ValidateExtract(Extract{}))

	tests := []struct {
		name    string
		extract Extract
	}{
		{name: "negative amount", extract: Extract{Amounts: []int64{-1}}},
		{name: "zero date", extract: Extract{Dates: []time.Time{{}}}},
		{name: "blank merchant", extract: Extract{Merchants: []string{"  "}}},
		{name: "blank item", extract: Extract{Items: []string{""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtract(tt.extract)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedExtract)
		})
	}
}
