package intent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/duitbot/duitbot/internal/model"
)

// Rule maps a surface-form pattern to an intent.
type Rule struct {
	Name       string
	Intent     model.Intent
	Regex      string
	Priority   int     // Higher priority rules are checked first
	Confidence float64 // Confidence reported when the rule matches (0.0-1.0)
}

type compiledRule struct {
	regex *regexp.Regexp
	Rule
}

// RuleClassifier is the deterministic rule-table classifier. It is built
// once at process start and is immutable afterwards.
type RuleClassifier struct {
	rules     []compiledRule
	threshold float64
}

// NewRuleClassifier compiles the rule table. Rules are evaluated highest
// priority first; equal priorities keep table order.
func NewRuleClassifier(rules []Rule, threshold float64) (*RuleClassifier, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		regexStr := r.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}
		re, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{Rule: r, regex: re})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &RuleClassifier{rules: compiled, threshold: threshold}, nil
}

// NewDefaultRuleClassifier builds a classifier from the built-in rule table.
func NewDefaultRuleClassifier(threshold float64) (*RuleClassifier, error) {
	return NewRuleClassifier(DefaultRules(), threshold)
}

// Classify resolves the intent of a message. Multi-transaction messages win
// over single-clause matches only when the conjunction split yields two or
// more independently-classifiable clauses.
func (c *RuleClassifier) Classify(text string) model.ClassifiedIntent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.ClassifiedIntent{Intent: model.IntentUnrecognized}
	}

	thresholdedClause := func(clause string) model.ClassifiedIntent {
		return c.applyThreshold(c.classifyClause(clause))
	}
	if result, ok := classifyMultiple(trimmed, thresholdedClause); ok {
		return result
	}

	return c.applyThreshold(c.classifyClause(trimmed))
}

// classifyClause runs the rule table against a single clause.
func (c *RuleClassifier) classifyClause(clause string) model.ClassifiedIntent {
	for _, rule := range c.rules {
		if rule.regex.MatchString(clause) {
			return model.ClassifiedIntent{Intent: rule.Intent, Confidence: rule.Confidence}
		}
	}
	return model.ClassifiedIntent{Intent: model.IntentUnrecognized}
}

func (c *RuleClassifier) applyThreshold(result model.ClassifiedIntent) model.ClassifiedIntent {
	if result.Confidence < c.threshold {
		return model.ClassifiedIntent{Intent: model.IntentUnrecognized, Confidence: result.Confidence}
	}
	return result
}

// RuleCount returns the number of loaded rules.
func (c *RuleClassifier) RuleCount() int {
	return len(c.rules)
}

// DefaultRules returns the built-in intent rule table.
func DefaultRules() []Rule {
	return []Rule{
		// Maintenance commands - highest priority
		{
			Name:       "Edit Last Transaction",
			Intent:     model.IntentEditLast,
			Regex:      `^edit\s+transaksi(\s+terakhir)?$`,
			Priority:   100,
			Confidence: 0.98,
		},
		{
			Name:       "Delete Last Transaction",
			Intent:     model.IntentDeleteLast,
			Regex:      `^hapus\s+transaksi(\s+terakhir)?$`,
			Priority:   100,
			Confidence: 0.98,
		},

		// Queries
		{
			Name:       "Transaction History",
			Intent:     model.IntentQueryHistory,
			Regex:      `^(lihat|riwayat)\s+transaksi\b|^transaksi\s+(hari|minggu|bulan)\s+ini$`,
			Priority:   90,
			Confidence: 0.92,
		},
		{
			Name:       "Help",
			Intent:     model.IntentHelp,
			Regex:      `^(bantuan|menu|cara\s+pakai|status)$`,
			Priority:   90,
			Confidence: 0.92,
		},

		// Shorthand forms: single letter glued to the amount
		{
			Name:       "Expense Shorthand",
			Intent:     model.IntentExpenseSingle,
			Regex:      `^[pk]\d`,
			Priority:   85,
			Confidence: 0.80,
		},
		{
			Name:       "Income Shorthand",
			Intent:     model.IntentIncomeSingle,
			Regex:      `^[mi]\d`,
			Priority:   85,
			Confidence: 0.80,
		},

		// Full sentences
		{
			Name:       "Income Sentence",
			Intent:     model.IntentIncomeSingle,
			Regex:      `^(catat\s+pemasukan|terima(\s+uang)?|dapat|masuk)\b`,
			Priority:   80,
			Confidence: 0.88,
		},
		{
			Name:       "Income Flow Word",
			Intent:     model.IntentIncomeSingle,
			Regex:      `\bpemasukan\b`,
			Priority:   72,
			Confidence: 0.75,
		},
		{
			Name:       "Expense Sentence",
			Intent:     model.IntentExpenseSingle,
			Regex:      `^(catat\s+pengeluaran|bayar|beli|keluar)\b`,
			Priority:   78,
			Confidence: 0.88,
		},
		{
			Name:       "Expense Flow Word",
			Intent:     model.IntentExpenseSingle,
			Regex:      `\bpengeluaran\b`,
			Priority:   70,
			Confidence: 0.75,
		},

		// Bare "<amount> untuk <category>" defaults to expense
		{
			Name:       "Bare Amount For Category",
			Intent:     model.IntentExpenseSingle,
			Regex:      `^(rp\.?\s*)?\d[\d.,]*[kmb]?\s.*\b(untuk|buat)\b`,
			Priority:   60,
			Confidence: 0.70,
		},
		{
			Name:       "Word Amount For Category",
			Intent:     model.IntentExpenseSingle,
			Regex:      `^(nol|satu|dua|tiga|empat|lima|enam|tujuh|delapan|sembilan|sepuluh|sebelas|seratus|seribu)\b.*\buntuk\b`,
			Priority:   58,
			Confidence: 0.70,
		},
	}
}
