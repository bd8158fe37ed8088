// Package dateutils provides the date layouts and conversions used by the ledger.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts understood by the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutLegacyCSV = "02-01-2006" // DD-MM-YYYY, written by the first release
)

// ParseISODate parses a YYYY-MM-DD date as entered at the prompt.
// The result is a UTC calendar date.
func ParseISODate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
}

// ParseWithLayouts tries each layout in order and returns the first match
// together with the layout that matched.
func ParseWithLayouts(dateStr string, layouts ...string) (time.Time, string, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date %q with layouts %v", dateStr, layouts)
}

// FormatDate formats a date with layout, defaulting to DateLayoutISO.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthLabel renders the month and year of date as "JANUARY 2024".
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", strings.ToUpper(date.Month().String()), date.Year())
}
