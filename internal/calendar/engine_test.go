package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScan(t *testing.T, year, month, day int) float64 {
	t.Helper()
	instant, err := ScanDate(year, month, day)
	require.NoError(t, err)
	return instant
}

func TestEngine_FormatInstant(t *testing.T) {
	e := NewEngine(FixedZone(5), clockwork.NewFakeClock())
	summerNoon := mustScan(t, 2023, 7, 15) + 12*3600
	winterNoon := mustScan(t, 2023, 1, 15) + 12*3600

	tests := []struct {
		name    string
		instant float64
		mode    DisplayMode
		want    string
	}{
		{"utc summer", summerNoon, DisplayUTC, "2023-07-15 12:00"},
		{"daylight summer", summerNoon, DisplayLocalDaylight, "2023-07-15 08:00"},
		{"standard summer", summerNoon, DisplayLocalStandard, "2023-07-15 07:00"},
		{"daylight winter", winterNoon, DisplayLocalDaylight, "2023-01-15 07:00"},
		{"standard before midnight", mustScan(t, 2023, 1, 15) + 3*3600, DisplayLocalStandard, "2023-01-14 22:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.FormatInstant(tt.instant, "%Y-%m-%d %H:%M", tt.mode))
		})
	}
}

func TestEngine_IsDaylightSaving(t *testing.T) {
	e := NewEngine(FixedZone(8), nil)
	assert.True(t, e.IsDaylightSaving(mustScan(t, 2023, 7, 4)))
	assert.False(t, e.IsDaylightSaving(mustScan(t, 2023, 12, 4)))
}

func TestEngine_Now(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 6, 0, 0, 500_000_000, time.UTC))
	e := NewEngine(FixedZone(0), fc)

	assert.InDelta(t, 1714111200.5, e.Now(), 1e-6)
	fc.Advance(90 * time.Second)
	assert.InDelta(t, 1714111290.5, e.Now(), 1e-6)
}

func TestFormatWithOffset(t *testing.T) {
	instant := mustScan(t, 2023, 7, 4) + 18*3600
	assert.Equal(t, "14:00", FormatWithOffset(instant, "%R", 5, true))
	assert.Equal(t, "13:00", FormatWithOffset(instant, "%R", 5, false))
	assert.Equal(t, "19:00", FormatWithOffset(instant, "%R", -1, false))
}

func TestParseDisplayMode(t *testing.T) {
	for _, m := range []DisplayMode{DisplayUTC, DisplayLocalDaylight, DisplayLocalStandard} {
		got, err := ParseDisplayMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseDisplayMode("martian")
	assert.Error(t, err)
}

func TestAddMonthsYears(t *testing.T) {
	tests := []struct {
		name          string
		from          [3]int
		months, years int
		wantY, wantM  int
		wantD         int
	}{
		{"clamps to february", [3]int{2023, 1, 31}, 1, 0, 2023, 2, 28},
		{"clamps to leap february", [3]int{2024, 1, 31}, 1, 0, 2024, 2, 29},
		{"thirteen months", [3]int{2023, 5, 15}, 13, 0, 2024, 6, 15},
		{"december rolls to january", [3]int{2023, 12, 15}, 1, 0, 2024, 1, 15},
		{"backwards", [3]int{2023, 3, 31}, -1, 0, 2023, 2, 28},
		{"backwards a year and a month", [3]int{2023, 3, 31}, -13, 0, 2022, 2, 28},
		{"backwards to december", [3]int{2023, 1, 10}, -1, 0, 2022, 12, 10},
		{"twelve back is a year", [3]int{2023, 6, 1}, -12, 0, 2022, 6, 1},
		{"years only", [3]int{2024, 2, 29}, 0, 1, 2025, 2, 28},
		{"months and years", [3]int{1999, 11, 30}, 3, 10, 2010, 2, 28},
		{"before epoch", [3]int{1900, 1, 31}, 1, 0, 1900, 2, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := mustScan(t, tt.from[0], tt.from[1], tt.from[2]) + 3723.5
			got, err := AddMonthsYears(from, tt.months, tt.years)
			require.NoError(t, err)

			d := DecomposeDate(got)
			assert.Equal(t, Date{Year: tt.wantY, Month: tt.wantM, Day: tt.wantD, Hour: 1, Minute: 2, Second: 3.5}, d)
		})
	}
}

func TestAddMonthsYears_ThirteenMonthsFromEveryMonth(t *testing.T) {
	for month := 1; month <= 11; month++ {
		got, err := AddMonthsYears(mustScan(t, 2023, month, 10), 13, 0)
		require.NoError(t, err)
		d := DecomposeDate(got)
		assert.Equal(t, 2024, d.Year)
		assert.Equal(t, month+1, d.Month)
	}
}

func TestAddMonthsYears_Errors(t *testing.T) {
	tests := []struct {
		name    string
		instant float64
		months  int
		years   int
		want    error
	}{
		{"absurd instant", 1e20, 1, 0, ErrOutOfRange},
		{"nan instant", math.NaN(), 1, 0, ErrOutOfRange},
		{"month overflow", 0, math.MaxInt32, 0, ErrOverflow},
		{"month underflow", 0, math.MinInt32, 0, ErrOverflow},
		{"year overflow", 0, 0, math.MaxInt32, ErrOverflow},
		{"year beyond calendar", 0, 0, 20000, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddMonthsYears(tt.instant, tt.months, tt.years)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, got)
		})
	}
}
