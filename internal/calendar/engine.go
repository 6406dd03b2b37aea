package calendar

import (
	"fmt"
	"math"

	"github.com/jonboulle/clockwork"
)

// DisplayMode selects how FormatInstant renders an instant.
type DisplayMode int

const (
	// DisplayUTC formats the instant unchanged.
	DisplayUTC DisplayMode = iota
	// DisplayLocalDaylight formats in the engine zone, adding an hour when
	// daylight time is in effect.
	DisplayLocalDaylight
	// DisplayLocalStandard formats in the engine zone's standard time all year.
	DisplayLocalStandard
)

var displayModeNames = map[DisplayMode]string{
	DisplayUTC:           "utc",
	DisplayLocalDaylight: "local-daylight",
	DisplayLocalStandard: "local-standard",
}

func (m DisplayMode) String() string {
	if s, ok := displayModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// ParseDisplayMode accepts the String form of a DisplayMode.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for m, name := range displayModeNames {
		if name == s {
			return m, nil
		}
	}
	return DisplayUTC, fmt.Errorf("unknown display mode %q", s)
}

// Engine formats instants against an injected zone and clock.
// It is safe for concurrent use.
type Engine struct {
	zone  ZoneProvider
	clock clockwork.Clock
}

// NewEngine builds an Engine. A nil zone means the host zone; a nil clock
// means the real clock.
func NewEngine(zone ZoneProvider, clock clockwork.Clock) *Engine {
	if zone == nil {
		zone = HostZone()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{zone: zone, clock: clock}
}

// Zone returns the engine zone.
func (e *Engine) Zone() ZoneProvider {
	return e.zone
}

// Now returns the current instant in epoch seconds.
func (e *Engine) Now() float64 {
	return float64(e.clock.Now().UnixNano()) / 1e9
}

// FormatInstant renders a UTC instant with layout. The local modes shift by
// the engine zone; DisplayLocalDaylight also applies US daylight time.
func (e *Engine) FormatInstant(instant float64, layout string, mode DisplayMode) string {
	if mode == DisplayUTC {
		return Format(instant, layout)
	}
	return FormatWithOffset(instant, layout, e.zone.UTCOffset(), mode == DisplayLocalDaylight)
}

// IsDaylightSaving reports whether a UTC instant is in daylight time in the
// engine zone.
func (e *Engine) IsDaylightSaving(instant float64) bool {
	return IsDaylightSaving(instant, e.zone.UTCOffset())
}

// FormatWithOffset renders a UTC instant in a zone zoneHours behind UTC.
// With dayCheck, an hour is added while US daylight time is in effect.
func FormatWithOffset(instant float64, layout string, zoneHours int, dayCheck bool) string {
	local := instant - float64(zoneHours)*3600
	if dayCheck && isDaylightStandard(local) {
		local += 3600
	}
	return Format(local, layout)
}

// AddMonthsYears moves an instant by whole months and years, keeping the
// time of day. The day of month is clamped to the target month, so Jan 31
// plus one month is the last day of February. On failure the zero instant is
// returned with ErrOutOfRange or ErrOverflow.
func AddMonthsYears(instant float64, months, years int) (float64, error) {
	if !(math.Abs(instant) < float64(SecondsPerDay)*365*maxYear) {
		return 0, fmt.Errorf("add months to %g: %w", instant, ErrOutOfRange)
	}

	totDay := int(math.Floor(instant / SecondsPerDay))
	day, year := EpochToYearDay(totDay)
	month := MonthFromDayOfYear(day, year)
	day = day - NumDay(month, 1, year, true) + 1
	remain := instant - float64(totDay)*SecondsPerDay

	if months != 0 {
		if months > 0 && month > math.MaxInt32-months {
			return 0, fmt.Errorf("add %d months: %w", months, ErrOverflow)
		}
		if months < 0 && month < math.MinInt32+12-months {
			return 0, fmt.Errorf("add %d months: %w", months, ErrOverflow)
		}
		month += months
		if month > 12 {
			carry := (month - 1) / 12
			year += carry
			month -= 12 * carry
		} else if month <= 0 {
			carry := (month - 12) / 12
			year += carry
			month -= 12 * carry
		}
	}
	if years != 0 {
		if years > 0 && year > math.MaxInt32-years {
			return 0, fmt.Errorf("add %d years: %w", years, ErrOverflow)
		}
		if years < 0 && year < math.MinInt32-years {
			return 0, fmt.Errorf("add %d years: %w", years, ErrOverflow)
		}
		year += years
	}

	if n := DaysInMonth(month, year); day > n {
		day = n
	}
	start, err := ScanDate(year, month, day)
	if err != nil {
		return 0, err
	}
	return start + remain, nil
}
