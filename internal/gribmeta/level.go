package gribmeta

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolveSurfaceLevel looks up a fixed surface type (code table 4.5).
// reserved is true when the code has no definition of its own.
func (r *Resolver) ResolveSurfaceLevel(code, center, subCenter int) (s Surface, reserved bool) {
	return r.tables.Surface(code, center, subCenter)
}

// LevelName builds the short and long level descriptions, e.g. "500-ISBL"
// and `500[Pa] ISBL="Isobaric surface"`. second is the other end of a layer
// and may be nil. Reserved codes carry the numeric code instead of quoting
// the description.
func (r *Resolver) LevelName(center, subCenter, surfaceType int, value float64, second *float64) (short, long string) {
	s, reserved := r.tables.Surface(surfaceType, center, subCenter)
	v := levelValue(value)

	if second != nil {
		v2 := levelValue(*second)
		if reserved {
			return fmt.Sprintf("%s-%s-%s(%d)", v, v2, s.ShortName, surfaceType),
				fmt.Sprintf("%s-%s[%s] %s(%d) (%s)", v, v2, s.Unit, s.ShortName, surfaceType, s.Name)
		}
		return fmt.Sprintf("%s-%s-%s", v, v2, s.ShortName),
			fmt.Sprintf("%s-%s[%s] %s=\"%s\"", v, v2, s.Unit, s.ShortName, s.Name)
	}

	if reserved {
		return fmt.Sprintf("%s-%s(%d)", v, s.ShortName, surfaceType),
			fmt.Sprintf("%s[%s] %s(%d) (%s)", v, s.Unit, s.ShortName, surfaceType, s.Name)
	}
	return fmt.Sprintf("%s-%s", v, s.ShortName),
		fmt.Sprintf("%s[%s] %s=\"%s\"", v, s.Unit, s.ShortName, s.Name)
}

// levelValue prints six decimals and drops trailing zeros and a bare
// decimal point: 500 -> "500", 0.5 -> "0.5".
func levelValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
