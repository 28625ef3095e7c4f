package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "makan", b: "makan", want: 0},
		{name: "single substitution", a: "makan", b: "makin", want: 1},
		{name: "single insertion", a: "makan", b: "makann", want: 1},
		{name: "single deletion", a: "pulsa", b: "pusa", want: 1},
		{name: "transposition costs two", a: "gojek", b: "gojke", want: 2},
		{name: "empty against word", a: "", b: "makan", want: 5},
		{name: "word against empty", a: "makan", b: "", want: 5},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "unrelated", a: "abc", b: "xyz", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}
