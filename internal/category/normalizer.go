// Package category normalizes raw category text toward a fixed canonical set.
//
// Two resolution paths exist with different fallback policies: typed text
// falls through a synonym table with fuzzy matching and passes unknown input
// through unchanged, while merchant names from receipts are matched against
// keyword patterns and fall back to the catch-all category.
package category

import (
	"fmt"
	"strings"

	"github.com/duitbot/duitbot/internal/model"
)

// maxEditDistance is the largest Levenshtein distance still accepted as a
// synonym-table match on the text path.
const maxEditDistance = 2

// Normalized is a canonical category name together with the source that
// supplied it.
type Normalized struct {
	Category   string
	Provenance model.Provenance
}

// Normalizer resolves raw category text. It is built once at process start
// and is immutable afterwards, safe for unlimited concurrent use.
type Normalizer struct {
	synonyms []SynonymEntry
	merchant []compiledMerchantPattern
}

// NewNormalizer builds a normalizer from a synonym table and merchant
// patterns. Pattern regexes are compiled up front so a bad table fails at
// startup, not per message.
func NewNormalizer(synonyms []SynonymEntry, patterns []MerchantPattern) (*Normalizer, error) {
	compiled, err := compileMerchantPatterns(patterns)
	if err != nil {
		return nil, err
	}
	return &Normalizer{
		synonyms: synonyms,
		merchant: compiled,
	}, nil
}

// NewDefaultNormalizer builds a normalizer from the built-in tables.
func NewDefaultNormalizer() (*Normalizer, error) {
	return NewNormalizer(DefaultSynonyms(), DefaultMerchantPatterns())
}

// NormalizeText resolves a category token from a typed message. Exact
// synonym lookup wins; otherwise the closest synonym within maxEditDistance
// is used, ties broken by table order. Unknown input is passed through
// lowercased rather than forced into a fallback category.
func (n *Normalizer) NormalizeText(raw string) Normalized {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return Normalized{}
	}

	for _, entry := range n.synonyms {
		if entry.Synonym == token {
			return Normalized{Category: entry.Canonical, Provenance: model.ProvenanceText}
		}
	}

	best := SynonymEntry{}
	bestDistance := maxEditDistance + 1
	for _, entry := range n.synonyms {
		if d := Levenshtein(token, entry.Synonym); d < bestDistance {
			best = entry
			bestDistance = d
		}
	}
	if bestDistance <= maxEditDistance {
		return Normalized{Category: best.Canonical, Provenance: model.ProvenanceText}
	}

	return Normalized{Category: token, Provenance: model.ProvenancePassthrough}
}

// InferFromMerchant resolves a category from an OCR merchant name. The first
// matching pattern wins; unmatched merchants land in the catch-all category.
func (n *Normalizer) InferFromMerchant(name string) Normalized {
	lowered := strings.ToLower(name)
	for _, p := range n.merchant {
		if p.regex.MatchString(lowered) {
			return Normalized{Category: p.Category, Provenance: model.ProvenanceMerchant}
		}
	}
	return Normalized{Category: Lainnya, Provenance: model.ProvenanceMerchant}
}

// Canonical returns the distinct canonical categories in table order.
func (n *Normalizer) Canonical() []string {
	seen := make(map[string]bool, len(n.synonyms))
	var out []string
	for _, entry := range n.synonyms {
		if !seen[entry.Canonical] {
			seen[entry.Canonical] = true
			out = append(out, entry.Canonical)
		}
	}
	return out
}

// SynonymCount returns how many synonyms map to the given canonical category.
func (n *Normalizer) SynonymCount(canonical string) int {
	count := 0
	for _, entry := range n.synonyms {
		if entry.Canonical == canonical {
			count++
		}
	}
	return count
}

func (n *Normalizer) String() string {
	return fmt.Sprintf("category.Normalizer(%d synonyms, %d merchant patterns)", len(n.synonyms), len(n.merchant))
}
