package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedia_IsImage(t *testing.T) {
	tests := []struct {
		name  string
		media *Media
		want  bool
	}{
		{name: "jpeg", media: &Media{Mimetype: "image/jpeg"}, want: true},
		{name: "png", media: &Media{Mimetype: "image/png"}, want: true},
		{name: "pdf", media: &Media{Mimetype: "application/pdf"}, want: false},
		{name: "audio", media: &Media{Mimetype: "audio/ogg"}, want: false},
		{name: "empty mimetype", media: &Media{}, want: false},
		{name: "nil media", media: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.media.IsImage())
		})
	}
}
