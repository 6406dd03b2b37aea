package calendar

import "math"

const (
	// SecondsPerDay is the length of a civil day in seconds.
	SecondsPerDay = 86400

	// daysPer400Years is one full Gregorian leap cycle.
	daysPer400Years = 146097

	// maxYear bounds the years ScanDate accepts in either direction.
	maxYear = 10000
)

// IsLeapYear reports whether year is a leap year on the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// EpochToYearDay splits a count of days since 1970-01-01 into a year and the
// 0-based day within that year. totDay may be negative.
func EpochToYearDay(totDay int) (day, year int) {
	year = 1970
	if totDay <= -daysPer400Years || totDay >= daysPer400Years {
		periods := totDay / daysPer400Years
		year += 400 * periods
		totDay -= daysPer400Years * periods
	}

	if totDay >= 0 {
		for totDay >= 366 {
			if !IsLeapYear(year) {
				year++
				totDay -= 365
				continue
			}
			switch {
			case totDay >= 1461:
				year += 4
				totDay -= 1461
			case totDay >= 1096:
				year += 3
				totDay -= 1096
			case totDay >= 731:
				year += 2
				totDay -= 731
			default:
				year++
				totDay -= 366
			}
		}
		if totDay == 365 && !IsLeapYear(year) {
			year++
			totDay -= 365
		}
		return totDay, year
	}

	for totDay <= -366 {
		year--
		if !IsLeapYear(year) {
			totDay += 365
			continue
		}
		switch {
		case totDay <= -1461:
			year -= 3
			totDay += 1461
		case totDay <= -1096:
			year -= 2
			totDay += 1096
		case totDay <= -731:
			year--
			totDay += 731
		default:
			totDay += 366
		}
	}
	if totDay < 0 {
		year--
		if IsLeapYear(year) {
			totDay += 366
		} else {
			totDay += 365
		}
	}
	return totDay, year
}

// MonthFromDayOfYear returns the month (1-12) containing the 0-based day of
// year. It uses a closed form that agrees with NumDay at every month boundary.
func MonthFromDayOfYear(day, year int) int {
	if day < 31 {
		return 1
	}
	if IsLeapYear(year) {
		day--
	}
	if day < 59 {
		return 2
	}
	if day <= 89 {
		return 3
	}
	// The closed form below is off by one on the last day of August.
	if day == 242 {
		return 8
	}
	return ((day+64)*5)/153 - 1
}

// NumDay has two modes. With wantTotal it returns the 0-based day of year of
// (month, day). Without it, the number of days in month.
func NumDay(month, day, year int, wantTotal bool) int {
	if wantTotal {
		if month > 2 {
			if IsLeapYear(year) {
				return ((month+1)*153)/5 - 63 + day
			}
			return ((month+1)*153)/5 - 64 + day
		}
		return (month-1)*31 + day - 1
	}

	switch {
	case month == 1:
		return 31
	case month != 2:
		if ((month-3)%5)%2 == 1 {
			return 30
		}
		return 31
	case IsLeapYear(year):
		return 29
	default:
		return 28
	}
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(month, year int) int {
	return NumDay(month, 1, year, false)
}

// Date is an instant broken into civil fields. Month and Day are 1-based.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// DecomposeDate splits an instant into civil fields without any zone shift.
func DecomposeDate(instant float64) Date {
	totDay := int(math.Floor(instant / SecondsPerDay))
	day, year := EpochToYearDay(totDay)
	month := MonthFromDayOfYear(day, year)

	secs := instant - float64(totDay)*SecondsPerDay
	whole := int(secs)
	return Date{
		Year:   year,
		Month:  month,
		Day:    day - NumDay(month, 1, year, true) + 1,
		Hour:   whole / 3600,
		Minute: (whole % 3600) / 60,
		Second: float64(whole%60) + (secs - float64(whole)),
	}
}

// weekday returns 0 (Sunday) through 6 for a day count since the epoch.
// 1970-01-01 was a Thursday.
func weekday(totDay int) int {
	w := (4 + totDay) % 7
	if w < 0 {
		w += 7
	}
	return w
}
