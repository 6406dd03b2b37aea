package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange reports a date field or instant outside the supported range.
	ErrOutOfRange = errors.New("calendar: value out of range")
	// ErrOverflow reports month or year arithmetic that would overflow.
	ErrOverflow = errors.New("calendar: arithmetic overflow")
)

// ScanDate returns the instant of 00:00 UTC on (year, month, day). Day 0 is
// accepted and means the last day of the previous month.
func ScanDate(year, month, day int) (float64, error) {
	if month < 1 || month > 12 || day < 0 || day > 31 {
		return 0, fmt.Errorf("scan date %04d-%02d-%02d: %w", year, month, day, ErrOutOfRange)
	}
	if year < -maxYear || year > maxYear {
		return 0, fmt.Errorf("scan date year %d: %w", year, ErrOutOfRange)
	}
	if day > NumDay(month, day, year, false) {
		return 0, fmt.Errorf("scan date %04d-%02d-%02d: %w", year, month, day, ErrOutOfRange)
	}

	totDay := NumDay(month, day, year, true)
	temp := 1970
	if delta := year - temp; delta >= 400 || delta <= -400 {
		periods := delta / 400
		temp += 400 * periods
		totDay += daysPer400Years * periods
	}

	for temp < year {
		if !IsLeapYear(temp) {
			totDay += 365
			temp++
			continue
		}
		switch {
		case temp+4 < year:
			totDay += 1461
			temp += 4
		case temp+3 < year:
			totDay += 1096
			temp += 3
		case temp+2 < year:
			totDay += 731
			temp += 2
		default:
			totDay += 366
			temp++
		}
	}
	for temp > year {
		temp--
		if !IsLeapYear(temp) {
			totDay -= 365
			continue
		}
		switch {
		case year < temp-3:
			totDay -= 1461
			temp -= 3
		case year < temp-2:
			totDay -= 1096
			temp -= 2
		case year < temp-1:
			totDay -= 731
			temp--
		default:
			totDay -= 366
		}
	}
	return float64(totDay) * SecondsPerDay, nil
}

// ScanDateNumber parses YYYY, YYYYMM, YYYYMMDD, YYYYMMDDHH, YYYYMMDDHHMM or
// YYYYMMDDHHMMSS as a UTC instant.
func ScanDateNumber(s string) (float64, error) {
	switch len(s) {
	case 4, 6, 8, 10, 12, 14:
	default:
		return 0, fmt.Errorf("scan date number %q: length %d: %w", s, len(s), ErrOutOfRange)
	}

	fields := [6]int{0, 1, 1, 0, 0, 0}
	for i, pos := 0, 0; pos < len(s); i++ {
		width := 2
		if i == 0 {
			width = 4
		}
		n, err := strconv.Atoi(s[pos : pos+width])
		if err != nil {
			return 0, fmt.Errorf("scan date number %q: %w", s, err)
		}
		fields[i] = n
		pos += width
	}

	instant, err := ScanDate(fields[0], fields[1], fields[2])
	if err != nil {
		return 0, err
	}
	return instant + float64(fields[3]*3600+fields[4]*60+fields[5]), nil
}

// PrintDateNumber renders an instant as YYYYMMDDHHMMSS.
func PrintDateNumber(instant float64) string {
	d := DecomposeDate(instant)
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, int(d.Second))
}

// ScanMonth parses an upper-case month name or its three letter abbreviation.
// May has only the one spelling.
func ScanMonth(name string) (int, bool) {
	for i, full := range monthNames {
		upper := strings.ToUpper(full)
		if name == upper || name == upper[:3] {
			return i + 1, true
		}
	}
	return 0, false
}

// PrintMonth returns the full month name, e.g. "January".
func PrintMonth(month int) (string, bool) {
	if month < 1 || month > 12 {
		return "", false
	}
	return monthNames[month-1], true
}

// PrintMonth3 returns the upper-case abbreviation, e.g. "JAN".
func PrintMonth3(month int) (string, bool) {
	if month < 1 || month > 12 {
		return "", false
	}
	return strings.ToUpper(monthNames[month-1][:3]), true
}
