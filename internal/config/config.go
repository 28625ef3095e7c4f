// Package config holds the immutable pipeline configuration.
package config

import (
	"fmt"
	"time"

	"github.com/duitbot/duitbot/internal/category"
	"github.com/duitbot/duitbot/internal/common"
	"github.com/duitbot/duitbot/internal/intent"
)

// Classifier kinds selectable at startup.
const (
	ClassifierRules = "rules"
	ClassifierBayes = "bayes"
)

// Config is the single configuration object for the extraction pipeline. It
// is constructed once at process start, never mutated afterwards, and passed
// by reference into every pipeline call; concurrent read-only use is safe.
type Config struct {
	Clock            func() time.Time
	Classifier       string
	Synonyms         []category.SynonymEntry
	MerchantPatterns []category.MerchantPattern
	Rules            []intent.Rule
	Corpus           []intent.TrainingDocument
	OCRRetry         common.RetryOptions
	IntentThreshold  float64
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Clock:            time.Now,
		Classifier:       ClassifierRules,
		Synonyms:         category.DefaultSynonyms(),
		MerchantPatterns: category.DefaultMerchantPatterns(),
		Rules:            intent.DefaultRules(),
		Corpus:           intent.DefaultCorpus(),
		IntentThreshold:  intent.DefaultThreshold,
		OCRRetry: common.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Validate checks the configuration for startup-fatal mistakes.
func (c *Config) Validate() error {
	if c.IntentThreshold < 0 || c.IntentThreshold > 1 {
		return fmt.Errorf("%w: intent threshold %.2f outside [0,1]", common.ErrInvalidConfig, c.IntentThreshold)
	}
	if c.Classifier != ClassifierRules && c.Classifier != ClassifierBayes {
		return fmt.Errorf("%w: unknown classifier %q", common.ErrInvalidConfig, c.Classifier)
	}
	if len(c.Synonyms) == 0 {
		return fmt.Errorf("%w: empty synonym table", common.ErrInvalidConfig)
	}
	if c.Clock == nil {
		return fmt.Errorf("%w: nil clock", common.ErrInvalidConfig)
	}
	return nil
}
