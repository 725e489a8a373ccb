package utils

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatCount groups thousands: 12500 -> "12,500".
func FormatCount(n int) string {
	return englishPrinter.Sprintf("%d", n)
}

// FormatNumber renders a backend number without a trailing ".0", grouping
// thousands when it is whole.
func FormatNumber(n float64) string {
	if n == float64(int64(n)) {
		return englishPrinter.Sprintf("%d", int64(n))
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func FormatXP(xp float64) string {
	return FormatNumber(xp)
}

// FormatShortDate renders a timestamp as day and short month ("5 Dec"). An
// empty or unparseable value yields fallback.
func FormatShortDate(raw, fallback string) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return fallback
	}
	return t.Format("2 Jan")
}

// ParseTimestamp reads ISO 8601 values with or without a zone; zone-less
// values are taken as UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
