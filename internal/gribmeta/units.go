package gribmeta

import (
	"fmt"
	"math"
	"strings"
)

// UnitSystem selects display units.
type UnitSystem int

const (
	UnitsGRIB    UnitSystem = 0
	UnitsEnglish UnitSystem = 1
	UnitsMetric  UnitSystem = 2
)

// ParseUnitSystem accepts "grib", "english" or "metric".
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grib":
		return UnitsGRIB, nil
	case "english":
		return UnitsEnglish, nil
	case "metric":
		return UnitsMetric, nil
	}
	return 0, fmt.Errorf("unknown unit system %q", s)
}

func (u UnitSystem) String() string {
	switch u {
	case UnitsGRIB:
		return "grib"
	case UnitsEnglish:
		return "english"
	case UnitsMetric:
		return "metric"
	}
	return fmt.Sprintf("UnitSystem(%d)", int(u))
}

// Log10Multiplier in Equation.M means "display 10^x" rather than a scale.
const Log10Multiplier = -10

// Equation converts a stored value x to display units as M*x + B.
type Equation struct {
	M     float64 `json:"m"`
	B     float64 `json:"b"`
	Label string  `json:"label"`
}

// Apply evaluates the equation, honoring the log10 sentinel.
func (e Equation) Apply(x float64) float64 {
	if e.M == Log10Multiplier {
		return math.Pow(10, x)
	}
	return e.M*x + e.B
}

var gribUnitEquation = Equation{M: 1, B: 0, Label: "[GRIB2 unit]"}

// ComputeUnit returns the display equation for a conversion. unit is the
// bracketed label the resolver produced; log10 conversions derive their
// label from it. Only English units convert anything other than
// temperature; the rest report ok=false and the identity equation labelled
// "[GRIB2 unit]".
func ComputeUnit(conv UnitConversion, unit string, system UnitSystem) (eq Equation, ok bool) {
	switch conv {
	case ConvertK2F:
		switch system {
		case UnitsEnglish:
			return Equation{M: 9. / 5., B: -459.67, Label: "[F]"}, true
		case UnitsMetric:
			return Equation{M: 1, B: -273.15, Label: "[C]"}, true
		}
	case ConvertInchWater:
		if system == UnitsEnglish {
			return Equation{M: 1. / 25.4, Label: "[inch]"}, true
		}
	case ConvertM2Feet:
		if system == UnitsEnglish {
			return Equation{M: 100. / 30.48, Label: "[feet]"}, true
		}
	case ConvertM2Inch:
		if system == UnitsEnglish {
			return Equation{M: 100. / 2.54, Label: "[inch]"}, true
		}
	case ConvertM2StatuteMile:
		if system == UnitsEnglish {
			return Equation{M: 1. / 1609.344, Label: "[statute mile]"}, true
		}
	case ConvertMS2Knots:
		// 1 nautical mile = 1852 m.
		if system == UnitsEnglish {
			return Equation{M: 3600. / 1852., Label: "[knots]"}, true
		}
	case ConvertUVIndex:
		if system == UnitsEnglish {
			return Equation{M: 40, Label: "[UVI]"}, true
		}
	case ConvertLog10:
		if system == UnitsEnglish || system == UnitsMetric {
			return Equation{M: Log10Multiplier, Label: log10Label(unit)}, true
		}
	}
	return gribUnitEquation, false
}

// log10Label turns "[log10(X)]" into "[X]". The label keeps at most 14
// bytes and X at most 14 bytes of the original.
func log10Label(unit string) string {
	if len(unit) < 2 {
		return "[]"
	}
	inner := unit[:len(unit)-2]
	if len(inner) > 21 {
		inner = inner[:21]
	}
	if len(inner) > 7 {
		inner = inner[7:]
	} else {
		inner = ""
	}
	label := "[" + inner + "]"
	if len(label) > 14 {
		label = label[:14]
	}
	return label
}
