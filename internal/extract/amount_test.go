package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitbot/duitbot/internal/common"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "plain digits", input: "50000", want: 50000},
		{name: "thousand separators", input: "50.000", want: 50000},
		{name: "currency prefix", input: "Rp 50.000", want: 50000},
		{name: "currency prefix with dot", input: "Rp.50.000", want: 50000},
		{name: "idr prefix", input: "IDR 25.000", want: 25000},
		{name: "shorthand k", input: "50k", want: 50000},
		{name: "shorthand m", input: "2m", want: 2000000},
		{name: "shorthand b", input: "1b", want: 1000000000},
		{name: "shorthand uppercase", input: "50K", want: 50000},
		{name: "shorthand decimal mantissa", input: "1.5k", want: 1500},
		{name: "shorthand comma mantissa", input: "1,5m", want: 1500000},
		{name: "shorthand with currency", input: "Rp 50k", want: 50000},
		{name: "word form fifty thousand", input: "lima puluh ribu", want: 50000},
		{name: "word form joined tens", input: "limapuluh ribu", want: 50000},
		{name: "word form hundred fifty thousand", input: "seratus lima puluh ribu", want: 150000},
		{name: "word form millions", input: "dua juta lima ratus ribu", want: 2500000},
		{name: "word form bare seribu", input: "seribu", want: 1000},
		{name: "word form teens", input: "sebelas ribu", want: 11000},
		{name: "word form spelled teen", input: "lima belas ribu", want: 15000},
		{name: "mixed digits and multiplier word", input: "100 ribu", want: 100000},
		{name: "mixed with currency", input: "rp 2 juta", want: 2000000},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "no numeric content", input: "makan siang", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrUnparsableAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAmount_EquivalentForms(t *testing.T) {
	// The same value written three ways must normalize identically.
	forms := []string{"50000", "50k", "lima puluh ribu"}
	for _, form := range forms {
		got, err := NormalizeAmount(form)
		require.NoError(t, err, form)
		assert.Equal(t, int64(50000), got, form)
	}
}

func TestNormalizeAmount_Deterministic(t *testing.T) {
	inputs := []string{"50k", "seratus lima puluh ribu", "Rp 1.250.000"}
	for _, input := range inputs {
		first, err1 := NormalizeAmount(input)
		second, err2 := NormalizeAmount(input)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second, input)
	}
}
