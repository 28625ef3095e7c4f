package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "hari ini", input: "hari ini", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "kemarin", input: "kemarin", want: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "besok", input: "besok", want: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
		{name: "dashed day first", input: "12-03-2024", want: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{name: "slashed day first", input: "2/3/2024", want: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{name: "iso", input: "2024-03-12", want: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{name: "named month", input: "12 Mar 2024", want: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{name: "indonesian month", input: "5 Ags 2024", want: time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)},
		{name: "mei", input: "1 Mei 2024", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "unrecognized", input: "lusa kemarin dulu", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input, now)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
