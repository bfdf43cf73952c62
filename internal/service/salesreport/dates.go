package salesreport

import (
	"strconv"
	"strings"
	"time"
)

// Layouts tried when a date is not in the M/D/Y slash form.
var fallbackLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseOrderDate normalizes the date strings found in sheet exports.
// The time-of-day part (if any) is discarded. M/D/Y with a two-digit year
// uses a fixed pivot: <50 means 20xx, >=50 means 19xx. Returns ok=false for
// anything unparseable; never errors.
func ParseOrderDate(raw string) (time.Time, bool) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return time.Time{}, false
	}
	if fields := strings.Fields(token); len(fields) > 0 {
		token = fields[0]
	}

	if parts := strings.Split(token, "/"); len(parts) == 3 {
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		year, errY := strconv.Atoi(parts[2])
		if errM == nil && errD == nil && errY == nil {
			if year < 100 {
				if year < 50 {
					year += 2000
				} else {
					year += 1900
				}
			}
			if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
				return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
			}
		}
		return time.Time{}, false
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// DayKey is the trend bucket key: calendar day, no time component.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// EndOfDay pushes an inclusive end-date filter to the last instant of that
// calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
