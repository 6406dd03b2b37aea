package calendar

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host zoneinfo

	"github.com/zsefvlol/timezonemapper"
)

// ZoneProvider supplies a zone offset in hours to add to local time to get UTC.
type ZoneProvider interface {
	UTCOffset() int
}

// FixedZone is a constant offset, e.g. FixedZone(5) for US Eastern standard.
type FixedZone int

// UTCOffset implements ZoneProvider.
func (z FixedZone) UTCOffset() int { return int(z) }

// LocationZone derives the offset from a time.Location once and caches it.
// Offsets are whole hours; a half-hour zone reports the hour UTC reads at
// local midnight, so Asia/Kolkata is -6.
type LocationZone struct {
	loc        *time.Location
	once       sync.Once
	offset     int
	usDaylight bool
}

// NewLocationZone wraps loc. A nil loc means the host zone, time.Local.
func NewLocationZone(loc *time.Location) *LocationZone {
	if loc == nil {
		loc = time.Local
	}
	return &LocationZone{loc: loc}
}

// HostZone returns the zone of the process environment.
func HostZone() *LocationZone {
	return NewLocationZone(nil)
}

// UTCOffset renders 1970-01-02 00:00 local in UTC. The offset is the UTC hour,
// less a day when the UTC date has already rolled back to the first.
func (z *LocationZone) UTCOffset() int {
	z.once.Do(z.derive)
	return z.offset
}

// FollowsUSDaylight reports whether the zone is a North American zone that
// moves its clocks forward in the northern summer, the only schedule the
// daylight rules implement.
func (z *LocationZone) FollowsUSDaylight() bool {
	z.once.Do(z.derive)
	return z.usDaylight
}

func (z *LocationZone) derive() {
	gm := time.Date(1970, time.January, 2, 0, 0, 0, 0, z.loc).UTC()
	z.offset = gm.Hour()
	if gm.Day() != 2 {
		z.offset -= 24
	}

	name := z.loc.String()
	if strings.HasPrefix(name, "America/") || strings.HasPrefix(name, "US/") {
		_, winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, z.loc).Zone()
		_, summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, z.loc).Zone()
		z.usDaylight = summer > winter
	}
}

// Name returns the IANA name of the underlying location.
func (z *LocationZone) Name() string {
	return z.loc.String()
}

// loadedZones caches LoadZone results by IANA name.
var loadedZones sync.Map

// LoadZone resolves an IANA zone name. Zones are loaded once per process.
func LoadZone(name string) (*LocationZone, error) {
	if z, ok := loadedZones.Load(name); ok {
		return z.(*LocationZone), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", name, err)
	}
	z, _ := loadedZones.LoadOrStore(name, NewLocationZone(loc))
	return z.(*LocationZone), nil
}

// ZoneForCoordinates resolves the zone covering a latitude/longitude.
func ZoneForCoordinates(lat, lon float64) (*LocationZone, error) {
	name := timezonemapper.LatLngToTimezoneString(lat, lon)
	if name == "" {
		return nil, fmt.Errorf("no zone for %.4f,%.4f", lat, lon)
	}
	return LoadZone(name)
}

type namedZone struct {
	offset   int
	daylight bool
}

var zoneAbbreviations = map[string]namedZone{
	"GMT": {0, false}, "UTC": {0, false}, "Z": {0, false},
	"EST": {5, false}, "EDT": {5, true},
	"CST": {6, false}, "CDT": {6, true},
	"MST": {7, false}, "MDT": {7, true},
	"PST": {8, false}, "PDT": {8, true},
	"YST": {9, false}, "YDT": {9, true},
}

var zoneNames = map[int][2]string{
	5: {"EST", "EDT"},
	6: {"CST", "CDT"},
	7: {"MST", "MDT"},
	8: {"PST", "PDT"},
	9: {"YST", "YDT"},
}

// PrintZone names a US zone offset. ok is false for offsets without a name.
func PrintZone(zoneHours int, daylight bool) (name string, ok bool) {
	if zoneHours == 0 {
		return "UTC", true
	}
	names, ok := zoneNames[zoneHours]
	if !ok {
		return "", false
	}
	if daylight {
		return names[1], true
	}
	return names[0], true
}

// ScanZone parses an upper-case zone abbreviation.
func ScanZone(name string) (zoneHours int, daylight, ok bool) {
	z, ok := zoneAbbreviations[name]
	return z.offset, z.daylight, ok
}
