package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOk bool
		wantY  int
		wantM  time.Month
		wantD  int
	}{
		{"valid", "2024-01-15", true, 2024, time.January, 15},
		{"surrounding spaces", "  2024-12-31 ", true, 2024, time.December, 31},
		{"leap day", "2024-02-29", true, 2024, time.February, 29},
		{"not a leap year", "2023-02-29", false, 0, 0, 0},
		{"legacy layout", "15-01-2024", false, 0, 0, 0},
		{"missing zero padding", "2024-1-5", false, 0, 0, 0},
		{"empty", "", false, 0, 0, 0},
		{"garbage", "yesterday", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseISODate(tc.input)
			if !tc.wantOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Date(tc.wantY, tc.wantM, tc.wantD, 0, 0, 0, 0, time.UTC), got)
		})
	}
}

func TestParseWithLayouts(t *testing.T) {
	layouts := []string{DateLayoutISO, DateLayoutLegacyCSV}

	got, layout, err := ParseWithLayouts("2024-03-07", layouts...)
	require.NoError(t, err)
	assert.Equal(t, DateLayoutISO, layout)
	assert.Equal(t, time.March, got.Month())

	got, layout, err = ParseWithLayouts("07-03-2024", layouts...)
	require.NoError(t, err)
	assert.Equal(t, DateLayoutLegacyCSV, layout)
	assert.Equal(t, 7, got.Day())
	assert.Equal(t, time.March, got.Month())

	_, _, err = ParseWithLayouts("03/07/2024", layouts...)
	assert.Error(t, err)

	_, _, err = ParseWithLayouts("2024-03-07")
	assert.Error(t, err, "no layouts never matches")
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2023-01-05", FormatDate(date, ""))
	assert.Equal(t, "2023-01-05", FormatDate(date, DateLayoutISO))
	assert.Equal(t, "05-01-2023", FormatDate(date, DateLayoutLegacyCSV))
}

func TestStartOfMonth(t *testing.T) {
	date := time.Date(2023, time.July, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "JANUARY 2024", MonthLabel(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "SEPTEMBER 1999", MonthLabel(time.Date(1999, time.September, 1, 0, 0, 0, 0, time.UTC)))
}
