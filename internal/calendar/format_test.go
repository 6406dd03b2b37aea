package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 2023-11-14 22:13:20.25 UTC, a Tuesday.
const tuesdayEvening = 1700000000.25

func TestFormat_Directives(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"%Y-%m-%d %H:%M:%S", "2023-11-14 22:13:20"},
		{"%a %A %b %B %h", "Tue Tuesday Nov November Nov"},
		{"%j", "318"},
		{"%y|%e|%E|%G", "23|14|11|22"},
		{"%I %p", "10 PM"},
		{"%r", "10:13:20 PM"},
		{"%D %T %R", "11/14/2023 22:13:20 22:13"},
		{"%w", "2"},
		{"%f", "20.25"},
		{"%W %U", "46 46"},
		{"%v", "Tuesday"},
		{"%q", "unknown q"},
		{"100%%", "100%"},
		{"trailing %", "trailing "},
		{"%n%t", "\n\t"},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tuesdayEvening, tt.layout))
		})
	}
}

func TestFormat_Midnight(t *testing.T) {
	assert.Equal(t, "12 AM", Format(1699920000, "%I %p"))
	assert.Equal(t, "00:00:00", Format(1699920000, "%T"))
}

func TestFormat_BeforeEpoch(t *testing.T) {
	// 1969-12-25 was a Thursday.
	assert.Equal(t, "Thursday 1969-12-25", Format(-604800, "%A %Y-%m-%d"))
	assert.Equal(t, "Christmas Day", Format(-604800, "%v"))
}

func TestFormat_LongOutputIsNotTruncated(t *testing.T) {
	layout := ""
	want := ""
	for range 40 {
		layout += "%B "
		want += "November "
	}
	assert.Equal(t, want, Format(tuesdayEvening, layout))
}

func TestFormatDirective(t *testing.T) {
	f := FieldsOf(tuesdayEvening)
	assert.Equal(t, "2023", FormatDirective(f, 'Y'))
	assert.Equal(t, "11/14/2023", FormatDirective(f, 'D'))
}

func TestHoliday_ViaFormat(t *testing.T) {
	tests := []struct {
		date    string
		instant float64
		want    string
	}{
		{"2023-01-01", 1672531200, "New Years Day"},
		{"2023-01-16", 1673827200, "Martin Luther King Jr Day"},
		{"2023-02-20", 1676851200, "Presidents Day"},
		{"2023-05-29", 1685318400, "Memorial Day"},
		{"2018-05-28", 1527465600, "Memorial Day"},
		{"2024-05-27", 1716768000, "Memorial Day"},
		{"2023-07-04", 1688428800, "Independence Day"},
		{"2023-09-04", 1693785600, "Labor Day"},
		{"2023-10-09", 1696809600, "Columbus Day"},
		{"2023-11-11", 1699660800, "Veterans Day"},
		{"2023-11-23", 1700697600, "Thanksgiving Day"},
		{"1960-11-24", -287280000, "Thanksgiving Day"},
		{"2023-12-25", 1703462400, "Christmas Day"},
		{"2023-11-24", 1700784000, "Friday"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.instant+3600, "%v"))
		})
	}
}

func TestFederalHoliday_NoMatch(t *testing.T) {
	assert.Empty(t, FederalHoliday(11, 24, 3))
	assert.Empty(t, FederalHoliday(3, 17, 0))
	assert.Equal(t, "Thanksgiving Day", FederalHoliday(11, 23, 3))
	assert.Equal(t, "Labor Day", FederalHoliday(9, 1, 1))
	assert.Equal(t, "Columbus Day", FederalHoliday(10, 9, 0))
}
