package extract

import (
	"regexp"
	"strings"

	"github.com/duitbot/duitbot/internal/model"
)

// numberWordRun lists every recognized number and multiplier word, longest
// first so runs are matched greedily.
const numberWordRun = `sembilanbelas|delapanbelas|sembilanpuluh|delapanpuluh|empatbelas|tujuhbelas|limabelas|enambelas|tigabelas|duabelas|empatpuluh|tujuhpuluh|limapuluh|enampuluh|tigapuluh|duapuluh|sembilan|delapan|sepuluh|sebelas|seratus|seribu|sejuta|milyar|miliar|empat|tujuh|satu|lima|enam|tiga|ribu|juta|dua|nol|puluh|ratus|belas`

// Extractor locates amount, category and date substrings in one clause of
// text. It only finds substrings; normalization happens elsewhere.
type Extractor struct {
	amountRe    *regexp.Regexp
	wordRunRe   *regexp.Regexp
	dateRe      *regexp.Regexp
	shorthandRe *regexp.Regexp
	keywordRe   *regexp.Regexp
	verbRe      *regexp.Regexp
}

// NewExtractor compiles the extraction patterns once. The returned value is
// immutable and safe for concurrent use.
func NewExtractor() *Extractor {
	return &Extractor{
		// Digits with optional currency marker, grouping separators,
		// decimal mantissa and single-letter multiplier: "Rp 50.000",
		// "50k", "1,5m".
		amountRe: regexp.MustCompile(`(?i)\b(?:rp\.?\s*|idr\s*)?\d+(?:[.,]\d{3})*(?:[.,]\d{1,2})?(?:\s*[kmb]\b|(?:\s+(?:ribu|juta|milyar|miliar))+|\b)`),
		// Maximal run of recognized Indonesian number words.
		wordRunRe: regexp.MustCompile(`(?i)\b(?:` + numberWordRun + `)(?:\s+(?:` + numberWordRun + `))*\b`),
		dateRe: regexp.MustCompile(`(?i)\b(?:\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}\s+(?:jan|feb|mar|apr|mei|jun|jul|ags|agu|sep|okt|nov|des)[a-z]*\s+\d{2,4}|hari\s+ini|kemarin|besok)\b`),
		// Single-letter prefix glued to an amount: "p50k makan".
		shorthandRe: regexp.MustCompile(`(?i)^\s*([pkmi])(\d+(?:[.,]\d+)?[kmb]?)\s+(.+)$`),
		keywordRe:   regexp.MustCompile(`(?i)\b(?:untuk|buat|dari)\b`),
		verbRe:      regexp.MustCompile(`(?i)\b(?:beli|bayar)\b`),
	}
}

// Extract locates the entity substrings of one classified clause.
func (e *Extractor) Extract(text string, _ model.Intent) model.RawEntitySet {
	var entities model.RawEntitySet

	working := text
	if loc := e.dateRe.FindStringIndex(working); loc != nil {
		entities.DateText = strings.TrimSpace(working[loc[0]:loc[1]])
		working = working[:loc[0]] + strings.Repeat(" ", loc[1]-loc[0]) + working[loc[1]:]
	}

	if m := e.shorthandRe.FindStringSubmatch(working); m != nil {
		entities.AmountText = m[2]
		entities.CategoryText = firstWord(m[3])
		return entities
	}

	amountLoc := e.amountRe.FindStringIndex(working)
	if amountLoc == nil {
		amountLoc = e.wordRunRe.FindStringIndex(working)
	}
	if amountLoc != nil {
		entities.AmountText = strings.TrimSpace(working[amountLoc[0]:amountLoc[1]])
	}

	entities.CategoryText = e.categoryToken(working, amountLoc)
	return entities
}

// categoryToken finds the category substring: text following a directional
// keyword up to the next amount token or end of clause, or for verb forms
// ("beli bakso 20k") the words between verb and amount.
func (e *Extractor) categoryToken(text string, amountLoc []int) string {
	if loc := e.keywordRe.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if next := e.amountRe.FindStringIndex(rest); next != nil {
			rest = rest[:next[0]]
		} else if next := e.wordRunRe.FindStringIndex(rest); next != nil {
			rest = rest[:next[0]]
		}
		return cleanToken(rest)
	}

	if loc := e.verbRe.FindStringIndex(text); loc != nil && amountLoc != nil && amountLoc[0] > loc[1] {
		return cleanToken(text[loc[1]:amountLoc[0]])
	}

	return ""
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return cleanToken(fields[0])
}

func cleanToken(s string) string {
	return strings.Trim(strings.Join(strings.Fields(s), " "), ".,;:!?")
}
