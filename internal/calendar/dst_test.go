package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// nthSunday returns the day of month of the nth Sunday (n=-1 for the last).
func nthSunday(year int, month time.Month, n int) int {
	if n < 0 {
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		return last.Day() - int(last.Weekday())
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return 1 + (7-int(first.Weekday()))%7 + 7*(n-1)
}

func standardInstant(year int, month time.Month, day, hour int) float64 {
	return float64(time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix())
}

func TestIsDaylightSaving_Boundaries(t *testing.T) {
	for _, year := range []int{2007, 2008, 2020, 2032, 2100} {
		t.Run(fmt.Sprintf("since 2007/%d", year), func(t *testing.T) {
			start := standardInstant(year, time.March, nthSunday(year, time.March, 2), 2)
			end := standardInstant(year, time.November, nthSunday(year, time.November, 1), 1)

			assert.False(t, IsDaylightSaving(start-1, 0), "01:59:59 before the March switch")
			assert.True(t, IsDaylightSaving(start, 0), "02:00:00 at the March switch")
			assert.True(t, IsDaylightSaving(end-1, 0))
			assert.True(t, IsDaylightSaving(end, 0))
			assert.False(t, IsDaylightSaving(end+1, 0), "after the November switch")
		})
	}

	for _, year := range []int{1980, 1996, 2004, 2006} {
		t.Run(fmt.Sprintf("before 2007/%d", year), func(t *testing.T) {
			start := standardInstant(year, time.April, nthSunday(year, time.April, 1), 2)
			end := standardInstant(year, time.October, nthSunday(year, time.October, -1), 1)

			assert.False(t, IsDaylightSaving(start-1, 0))
			assert.True(t, IsDaylightSaving(start, 0))
			assert.True(t, IsDaylightSaving(end, 0))
			assert.False(t, IsDaylightSaving(end+1, 0))
		})
	}
}

func TestIsDaylightSaving_ShiftsByZone(t *testing.T) {
	// 2023-03-12 02:00 EST is 07:00 UTC.
	switchUTC := standardInstant(2023, time.March, 12, 7)
	assert.False(t, IsDaylightSaving(switchUTC-1, 5))
	assert.True(t, IsDaylightSaving(switchUTC, 5))

	assert.False(t, IsDaylightSaving(standardInstant(2023, time.January, 15, 12), 5))
	assert.True(t, IsDaylightSaving(standardInstant(2023, time.July, 15, 12), 5))
}
