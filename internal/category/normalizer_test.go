package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitbot/duitbot/internal/model"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewDefaultNormalizer()
	require.NoError(t, err)
	return n
}

func TestNormalizer_NormalizeText(t *testing.T) {
	normalizer := newTestNormalizer(t)

	tests := []struct {
		name           string
		input          string
		wantCategory   string
		wantProvenance model.Provenance
	}{
		{name: "exact synonym", input: "makan", wantCategory: Makanan, wantProvenance: model.ProvenanceText},
		{name: "exact uppercase", input: "MAKAN", wantCategory: Makanan, wantProvenance: model.ProvenanceText},
		{name: "exact with whitespace", input: "  pulsa  ", wantCategory: Komunikasi, wantProvenance: model.ProvenanceText},
		{name: "fuzzy one edit", input: "makann", wantCategory: Makanan, wantProvenance: model.ProvenanceText},
		{name: "fuzzy two edits", input: "gojke", wantCategory: Transportasi, wantProvenance: model.ProvenanceText},
		{name: "fuzzy deletion", input: "pusa", wantCategory: Komunikasi, wantProvenance: model.ProvenanceText},
		{name: "income synonym", input: "gaji", wantCategory: Pendapatan, wantProvenance: model.ProvenanceText},
		{name: "unknown passes through lowercased", input: "Arisan", wantCategory: "arisan", wantProvenance: model.ProvenancePassthrough},
		{name: "garbage passes through", input: "xyz123", wantCategory: "xyz123", wantProvenance: model.ProvenancePassthrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.NormalizeText(tt.input)

			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantProvenance, got.Provenance)
		})
	}
}

func TestNormalizer_NormalizeText_Empty(t *testing.T) {
	normalizer := newTestNormalizer(t)

	got := normalizer.NormalizeText("   ")
	assert.Empty(t, got.Category)
	assert.Empty(t, got.Provenance)
}

func TestNormalizer_InferFromMerchant(t *testing.T) {
	normalizer := newTestNormalizer(t)

	tests := []struct {
		name     string
		merchant string
		want     string
	}{
		{name: "warung", merchant: "WARUNG SEDAP", want: Makanan},
		{name: "cafe", merchant: "Kopi Kenangan Cafe", want: Makanan},
		{name: "fuel station", merchant: "SPBU PERTAMINA 34-123", want: Transportasi},
		{name: "telco", merchant: "TELKOMSEL GRAPARI", want: Komunikasi},
		{name: "electricity", merchant: "PLN PRABAYAR", want: Utilitas},
		{name: "minimart", merchant: "INDOMARET CABANG 12", want: Shopping},
		{name: "pharmacy", merchant: "APOTEK KIMIA FARMA", want: Kesehatan},
		{name: "unmatched falls back", merchant: "UNKNOWN CO", want: Lainnya},
		{name: "empty falls back", merchant: "", want: Lainnya},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.InferFromMerchant(tt.merchant)

			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, model.ProvenanceMerchant, got.Provenance)
		})
	}
}

func TestNormalizer_Canonical(t *testing.T) {
	normalizer := newTestNormalizer(t)

	canonical := normalizer.Canonical()
	assert.Equal(t, []string{
		Makanan, Transportasi, Komunikasi, Utilitas, Shopping, Kesehatan, Pendapatan,
	}, canonical)

	for _, c := range canonical {
		assert.Positive(t, normalizer.SynonymCount(c), c)
	}
}

func TestNewNormalizer_BadPattern(t *testing.T) {
	_, err := NewNormalizer(DefaultSynonyms(), []MerchantPattern{
		{Name: "broken", Regex: `\b(unclosed`, Category: Makanan},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
