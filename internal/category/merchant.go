package category

import (
	"fmt"
	"regexp"
	"strings"
)

// MerchantPattern maps merchant-name keywords to a canonical category.
// Patterns are evaluated in slice order; the first match wins.
type MerchantPattern struct {
	Name     string
	Regex    string
	Category string
}

type compiledMerchantPattern struct {
	regex *regexp.Regexp
	MerchantPattern
}

func compileMerchantPatterns(patterns []MerchantPattern) ([]compiledMerchantPattern, error) {
	compiled := make([]compiledMerchantPattern, 0, len(patterns))
	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}
		re, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile merchant pattern %s: %w", p.Name, err)
		}
		compiled = append(compiled, compiledMerchantPattern{
			MerchantPattern: p,
			regex:           re,
		})
	}
	return compiled, nil
}

// DefaultMerchantPatterns returns the default merchant-inference table.
func DefaultMerchantPatterns() []MerchantPattern {
	return []MerchantPattern{
		{
			Name:     "Food & Beverage",
			Regex:    `\b(resto|restaurant|warung|cafe|kedai|bakery|bakso|sate|ayam|kopi|coffee|mcd|kfc|pizza)\b`,
			Category: Makanan,
		},
		{
			Name:     "Transportation",
			Regex:    `\b(grab|gojek|gocar|bluebird|taxi|taksi|parkir|tol|spbu|pertamina|shell|bensin)\b`,
			Category: Transportasi,
		},
		{
			Name:     "Communication",
			Regex:    `\b(telkomsel|indosat|xl\s*axiata|smartfren|indihome|biznet|pulsa|kuota)\b`,
			Category: Komunikasi,
		},
		{
			Name:     "Utilities",
			Regex:    `\b(pln|pdam|token\s*listrik|gas\s*negara|pgn)\b`,
			Category: Utilitas,
		},
		{
			Name:     "Shopping",
			Regex:    `\b(indomaret|alfamart|toko|mall|supermarket|minimarket|tokopedia|shopee|lazada)\b`,
			Category: Shopping,
		},
		{
			Name:     "Health",
			Regex:    `\b(apotek|apotik|kimia\s*farma|klinik|rumah\s*sakit|rs\.)\b`,
			Category: Kesehatan,
		},
	}
}
