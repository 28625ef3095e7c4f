// Package extract locates and normalizes entities in Indonesian chat text.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/duitbot/duitbot/internal/common"
)

// Shorthand multipliers: 50k = 50.000, 2m = 2.000.000, 1b = 1.000.000.000.
var shorthandMultipliers = map[string]int64{
	"k": 1_000,
	"m": 1_000_000,
	"b": 1_000_000_000,
}

var (
	shorthandRe = regexp.MustCompile(`(?i)^(?:rp\.?\s*)?(\d+(?:[.,]\d+)?)\s*([kmb])$`)
	digitsRe    = regexp.MustCompile(`^\d+$`)
)

// Base number words. Joined tens and teens are listed explicitly because the
// shorthand grammar writes them both ways ("limapuluh" and "lima puluh").
var baseWords = map[string]int64{
	"nol": 0, "satu": 1, "dua": 2, "tiga": 3, "empat": 4, "lima": 5,
	"enam": 6, "tujuh": 7, "delapan": 8, "sembilan": 9, "sepuluh": 10,
	"sebelas": 11, "duabelas": 12, "tigabelas": 13, "empatbelas": 14,
	"limabelas": 15, "enambelas": 16, "tujuhbelas": 17, "delapanbelas": 18,
	"sembilanbelas": 19, "duapuluh": 20, "tigapuluh": 30, "empatpuluh": 40,
	"limapuluh": 50, "enampuluh": 60, "tujuhpuluh": 70, "delapanpuluh": 80,
	"sembilanpuluh": 90, "seratus": 100,
}

// Large multiplier words close out the accumulator and add to the running
// total.
var multiplierWords = map[string]int64{
	"seribu": 1_000, "ribu": 1_000,
	"juta": 1_000_000, "sejuta": 1_000_000,
	"milyar": 1_000_000_000, "miliar": 1_000_000_000,
}

// NormalizeAmount converts a raw amount substring into a whole rupiah value.
// Resolution order: shorthand multiplier, plain numeric, word form. The
// first applicable rule wins; identical input always yields the identical
// integer.
func NormalizeAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", common.ErrUnparsableAmount)
	}

	if m := shorthandRe.FindStringSubmatch(s); m != nil {
		mantissa, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", common.ErrUnparsableAmount, raw)
		}
		return int64(mantissa * float64(shorthandMultipliers[strings.ToLower(m[2])])), nil
	}

	if v, ok := parsePlainNumeric(s); ok {
		return v, nil
	}

	if v, ok := parseWordForm(s); ok {
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q", common.ErrUnparsableAmount, raw)
}

// parsePlainNumeric strips currency markers and grouping separators and
// parses what remains as an integer.
func parsePlainNumeric(s string) (int64, bool) {
	cleaned := strings.ToLower(s)
	for _, marker := range []string{"rp.", "rp", "idr"} {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.NewReplacer(".", "", ",", "", " ", "", "-", "").Replace(cleaned)
	if cleaned == "" || !digitsRe.MatchString(cleaned) {
		return 0, false
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseWordForm resolves spelled-out Indonesian numbers. Base words add into
// an accumulator; "puluh"/"ratus"/"belas" scale the digit just added; large
// multiplier words flush the accumulator into the running total.
func parseWordForm(s string) (int64, bool) {
	var total, acc, lastDigit int64
	matched := false

	for _, word := range strings.Fields(strings.ToLower(s)) {
		switch {
		case word == "puluh":
			acc += lastDigit * 9
			lastDigit *= 10
			matched = true
		case word == "ratus":
			acc += lastDigit * 99
			lastDigit *= 100
			matched = true
		case word == "belas":
			acc += 10
			lastDigit += 10
			matched = true
		default:
			if v, ok := baseWords[word]; ok {
				acc += v
				lastDigit = v
				matched = true
				continue
			}
			// Mixed forms like "100 ribu" carry the digits as a token.
			if digitsRe.MatchString(word) {
				v, err := strconv.ParseInt(word, 10, 64)
				if err == nil {
					acc += v
					lastDigit = v
					matched = true
				}
				continue
			}
			if mult, ok := multiplierWords[word]; ok {
				if acc == 0 {
					acc = 1
				}
				total += acc * mult
				acc = 0
				lastDigit = 0
				matched = true
			}
			// Unrecognized words are skipped, matching the shorthand
			// grammar's tolerance for filler words.
		}
	}

	if !matched {
		return 0, false
	}
	return total + acc, true
}
