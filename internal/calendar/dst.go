package calendar

import "math"

const secondsPerWeek = 604800

// Daylight time start and end, in seconds from January 1 local standard
// time, indexed by the weekday of January 1 in a non-leap year.
var (
	dstStartPre2007 = [7]float64{7869600, 7783200, 8301600, 8215200, 8128800, 8042400, 7956000}
	dstEndPre2007   = [7]float64{26010000, 25923600, 25837200, 25750800, 25664400, 26182800, 26096400}
	dstStart2007    = [7]float64{6055200, 5968800, 5882400, 5796000, 5709600, 6228000, 6141600}
	dstEnd2007      = [7]float64{26614800, 26528400, 26442000, 26355600, 26269200, 26787600, 26701200}
)

// IsDaylightSaving reports whether the UTC instant falls in US daylight time
// for a zone zoneHours behind UTC. The instant is shifted to local standard
// time here; callers must not shift it themselves.
func IsDaylightSaving(instant float64, zoneHours int) bool {
	return isDaylightStandard(instant - float64(zoneHours)*3600)
}

// isDaylightStandard takes an instant already in local standard time.
func isDaylightStandard(local float64) bool {
	totDay := int(math.Floor(local / SecondsPerDay))
	day, year := EpochToYearDay(totDay)
	yearStart := totDay - day
	secs := local - float64(yearStart)*SecondsPerDay
	first := weekday(yearStart)

	var start, end float64
	if year >= 2007 {
		start, end = dstStart2007[first], dstEnd2007[first]
		if IsLeapYear(year) && first == 4 {
			start += secondsPerWeek
			end += secondsPerWeek
		}
	} else {
		start, end = dstStartPre2007[first], dstEndPre2007[first]
		if IsLeapYear(year) {
			if first == 1 {
				start += secondsPerWeek
			}
			if first == 4 {
				end += secondsPerWeek
			}
		}
	}
	return secs >= start && secs <= end
}
