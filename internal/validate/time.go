package validate

import (
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts the scrapers have been observed to emit, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses a scraped ISO-8601-ish timestamp. The second return
// value is false when no known layout matches; callers decide whether that is
// fatal (validator invariants) or not (window alignment leniency).
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate parses a bare YYYY-MM-DD date, accepting a full timestamp too.
func ParseDate(s string) (time.Time, bool) {
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, true
		}
	}
	return ParseTimestamp(s)
}

// ParseLocalHour extracts the hour from a local HH:MM time string.
func ParseLocalHour(s string) (int, bool) {
	head, _, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(head)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
