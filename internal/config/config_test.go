package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duitbot/duitbot/internal/common"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ClassifierRules, cfg.Classifier)
	assert.NotEmpty(t, cfg.Synonyms)
	assert.NotEmpty(t, cfg.MerchantPatterns)
	assert.NotEmpty(t, cfg.Rules)
	assert.NotEmpty(t, cfg.Corpus)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "threshold above one", mutate: func(c *Config) { c.IntentThreshold = 1.5 }},
		{name: "negative threshold", mutate: func(c *Config) { c.IntentThreshold = -0.1 }},
		{name: "unknown classifier", mutate: func(c *Config) { c.Classifier = "oracle" }},
		{name: "empty synonyms", mutate: func(c *Config) { c.Synonyms = nil }},
		{name: "nil clock", mutate: func(c *Config) { c.Clock = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}
