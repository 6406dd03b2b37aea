package calendar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Fields is an instant decomposed the way format directives consume it.
type Fields struct {
	Seconds   int     // whole seconds since midnight
	Fraction  float32 // sub-second remainder
	TotalDays int     // days since 1970-01-01
	Year      int
	Month     int // 1-12
	DayOfYear int // 0-based
}

// FieldsOf decomposes an instant without any zone shift.
func FieldsOf(instant float64) Fields {
	totDay := int(math.Floor(instant / SecondsPerDay))
	day, year := EpochToYearDay(totDay)
	secs := instant - float64(totDay)*SecondsPerDay
	whole := int(secs)
	return Fields{
		Seconds:   whole,
		Fraction:  float32(secs - float64(whole)),
		TotalDays: totDay,
		Year:      year,
		Month:     MonthFromDayOfYear(day, year),
		DayOfYear: day,
	}
}

// dayOfMonth is 1-based.
func (f Fields) dayOfMonth() int {
	return f.DayOfYear - (NumDay(f.Month, 1, f.Year, true) - 1)
}

func (f Fields) hour() int {
	return (f.Seconds % SecondsPerDay) / 3600
}

// Format expands layout against an instant taken as is, with no zone shift.
func Format(instant float64, layout string) string {
	return formatFields(FieldsOf(instant), layout)
}

func formatFields(f Fields, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) * 2)
	pending := false
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		switch {
		case pending:
			writeDirective(&b, f, c)
			pending = false
		case c == '%':
			pending = true
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatDirective expands a single directive character.
func FormatDirective(f Fields, directive byte) string {
	var b strings.Builder
	writeDirective(&b, f, directive)
	return b.String()
}

func writeDirective(b *strings.Builder, f Fields, c byte) {
	switch c {
	case 'd':
		fmt.Fprintf(b, "%02d", f.dayOfMonth())
	case 'm':
		fmt.Fprintf(b, "%02d", f.Month)
	case 'E':
		fmt.Fprintf(b, "%2d", f.Month)
	case 'Y':
		fmt.Fprintf(b, "%04d", f.Year)
	case 'H':
		fmt.Fprintf(b, "%02d", f.hour())
	case 'G':
		fmt.Fprintf(b, "%2d", f.hour())
	case 'M':
		fmt.Fprintf(b, "%02d", (f.Seconds%3600)/60)
	case 'S':
		fmt.Fprintf(b, "%02d", f.Seconds%60)
	case 'f':
		fmt.Fprintf(b, "%05.2f", float64(f.Seconds%60)+float64(f.Fraction))
	case 'n':
		b.WriteByte('\n')
	case '%':
		b.WriteByte('%')
	case 't':
		b.WriteByte('\t')
	case 'y':
		fmt.Fprintf(b, "%02d", f.Year%100)
	case 'I':
		if h := (f.Seconds % 43200) / 3600; h != 0 {
			fmt.Fprintf(b, "%02d", h)
		} else {
			b.WriteString("12")
		}
	case 'p':
		if f.hour() >= 12 {
			b.WriteString("PM")
		} else {
			b.WriteString("AM")
		}
	case 'B':
		b.WriteString(monthNames[f.Month-1])
	case 'A':
		b.WriteString(dayNames[weekday(f.TotalDays)])
	case 'b', 'h':
		b.WriteString(monthNames[f.Month-1][:3])
	case 'a':
		b.WriteString(dayNames[weekday(f.TotalDays)][:3])
	case 'w':
		b.WriteString(strconv.Itoa(weekday(f.TotalDays)))
	case 'j':
		fmt.Fprintf(b, "%03d", f.DayOfYear+1)
	case 'e':
		b.WriteString(strconv.Itoa(f.dayOfMonth()))
	case 'W':
		writeWeekOfYear(b, f, (1-((4+f.TotalDays-f.DayOfYear)%7))%7)
	case 'U':
		writeWeekOfYear(b, f, (-((4 + f.TotalDays - f.DayOfYear) % 7))%7)
	case 'D':
		writeDirective(b, f, 'm')
		b.WriteByte('/')
		writeDirective(b, f, 'd')
		b.WriteByte('/')
		writeDirective(b, f, 'Y')
	case 'T':
		writeDirective(b, f, 'H')
		b.WriteByte(':')
		writeDirective(b, f, 'M')
		b.WriteByte(':')
		writeDirective(b, f, 'S')
	case 'r':
		writeDirective(b, f, 'I')
		b.WriteByte(':')
		writeDirective(b, f, 'M')
		b.WriteByte(':')
		writeDirective(b, f, 'S')
		b.WriteByte(' ')
		writeDirective(b, f, 'p')
	case 'R':
		writeDirective(b, f, 'H')
		b.WriteByte(':')
		writeDirective(b, f, 'M')
	case 'v':
		if name := Holiday(f); name != "" {
			b.WriteString(name)
			return
		}
		writeDirective(b, f, 'A')
	default:
		fmt.Fprintf(b, "unknown %c", c)
	}
}

// writeWeekOfYear writes the week number given the day of year on which the
// first full week starts.
func writeWeekOfYear(b *strings.Builder, f Fields, start int) {
	if f.DayOfYear < start {
		b.WriteString("00")
		return
	}
	fmt.Fprintf(b, "%02d", (f.DayOfYear-start)/7+1)
}

// Holiday returns the federal holiday on the day f falls in, or "".
func Holiday(f Fields) string {
	dom := f.dayOfMonth()
	dow := weekday(f.TotalDays)

	monthStart := dow
	if dom%7 != 1 {
		monthStart = (dow - (dom%7 - 1) + 7) % 7
	}
	return FederalHoliday(f.Month, dom, monthStart)
}
