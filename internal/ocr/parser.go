package ocr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/duitbot/duitbot/internal/extract"
)

var (
	receiptAmountRe = regexp.MustCompile(`(?i)(?:rp\.?\s*|idr\s*)\d+[\d.,]*|\b\d{1,3}(?:[.,]\d{3})+(?:,-|,00)?`)
	receiptDateRe   = regexp.MustCompile(`(?i)\b(?:\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{1,2}\s+(?:jan|feb|mar|apr|mei|jun|jul|ags|agu|sep|okt|nov|des)[a-z]*\s+\d{2,4})\b`)
	merchantRe      = regexp.MustCompile(`(?i)\b(?:TOKO|RESTO|RESTAURANT|WARUNG|CAFE|KEDAI|PT\.|CV\.)\s+[A-Z][A-Z .]+`)
	itemLineRe      = regexp.MustCompile(`(?i)\d+\s*x\s*[\d.,]+|rp\.?\s*\d+[\d.,]*`)
	qtyPrefixRe     = regexp.MustCompile(`^\d+\s*x\s*`)
	priceRe         = regexp.MustCompile(`(?i)(?:rp\.?\s*)?\d+[\d.,]*(?:,-)?\s*$`)
	summaryLineRe   = regexp.MustCompile(`(?i)\b(?:sub\s*total|total|tunai|cash|kembali(?:an)?|change|ppn|pajak|diskon)\b`)
)

// ParseReceiptText turns raw recognized receipt text into structured
// candidate lists. The clock is used only when the text contains relative
// date words.
func ParseReceiptText(raw string, clock func() time.Time) Extract {
	var e Extract

	for _, match := range receiptAmountRe.FindAllString(raw, -1) {
		if amount, ok := parseReceiptAmount(match); ok {
			e.Amounts = append(e.Amounts, amount)
		}
	}

	for _, match := range receiptDateRe.FindAllString(raw, -1) {
		if date, err := extract.NormalizeDate(match, clock()); err == nil {
			e.Dates = append(e.Dates, date)
		}
	}

	for _, match := range merchantRe.FindAllString(raw, -1) {
		e.Merchants = append(e.Merchants, strings.TrimSpace(match))
	}

	for _, line := range strings.Split(raw, "\n") {
		// Summary lines carry amounts but are not purchased items.
		if !itemLineRe.MatchString(line) || summaryLineRe.MatchString(line) {
			continue
		}
		item := strings.TrimSpace(line)
		item = qtyPrefixRe.ReplaceAllString(item, "")
		item = priceRe.ReplaceAllString(item, "")
		item = strings.TrimSpace(item)
		if len(item) > 2 {
			e.Items = append(e.Items, item)
		}
	}

	return e
}

// parseReceiptAmount normalizes one printed amount. Trailing ",-" and ",00"
// decoration is dropped before separators are stripped.
func parseReceiptAmount(s string) (int64, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	for _, marker := range []string{"rp.", "rp", "idr"} {
		cleaned = strings.TrimPrefix(cleaned, marker)
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, ",-")
	cleaned = strings.TrimSuffix(cleaned, ",00")
	cleaned = strings.TrimSuffix(cleaned, ".00")
	cleaned = strings.NewReplacer(".", "", ",", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
