package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Relative date words resolved against the pipeline clock.
const (
	wordToday     = "hari ini"
	wordYesterday = "kemarin"
	wordTomorrow  = "besok"
)

var numericDateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2006-1-2",
	"2006/1/2",
	"2-1-06",
	"2/1/06",
}

// Indonesian month abbreviations as they appear on receipts.
var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "mei": time.May, "jun": time.June,
	"jul": time.July, "ags": time.August, "agu": time.August,
	"sep": time.September, "okt": time.October, "nov": time.November,
	"des": time.December,
}

var namedDateRe = regexp.MustCompile(`(?i)^(\d{1,2})\s+([a-z]+)\s+(\d{2,4})$`)

// NormalizeDate resolves a date token to a calendar day. Relative words are
// resolved against now; numeric forms follow the Indonesian day-first
// convention.
func NormalizeDate(raw string, now time.Time) (time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(raw))

	switch token {
	case wordToday:
		return truncateToDay(now), nil
	case wordYesterday:
		return truncateToDay(now.AddDate(0, 0, -1)), nil
	case wordTomorrow:
		return truncateToDay(now.AddDate(0, 0, 1)), nil
	}

	for _, layout := range numericDateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, nil
		}
	}

	if m := namedDateRe.FindStringSubmatch(token); m != nil {
		if month, ok := monthNames[prefix3(m[2])]; ok {
			layout := "2 1 2006"
			if len(m[3]) == 2 {
				layout = "2 1 06"
			}
			t, err := time.Parse(layout, fmt.Sprintf("%s %d %s", m[1], int(month), m[3]))
			if err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date token %q", raw)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func prefix3(s string) string {
	if len(s) < 3 {
		return s
	}
	return s[:3]
}
