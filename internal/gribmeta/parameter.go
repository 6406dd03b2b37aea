package gribmeta

import "fmt"

// UnitConversion selects the display-unit equation for a parameter.
type UnitConversion int

const (
	ConvertNone UnitConversion = iota
	ConvertK2F
	ConvertInchWater
	ConvertM2Feet
	ConvertM2Inch
	ConvertMS2Knots
	ConvertLog10
	ConvertUVIndex
	ConvertM2StatuteMile
)

var unitConversionNames = [...]string{
	ConvertNone:          "UC_NONE",
	ConvertK2F:           "UC_K2F",
	ConvertInchWater:     "UC_InchWater",
	ConvertM2Feet:        "UC_M2Feet",
	ConvertM2Inch:        "UC_M2Inch",
	ConvertMS2Knots:      "UC_MS2Knots",
	ConvertLog10:         "UC_LOG10",
	ConvertUVIndex:       "UC_UVIndex",
	ConvertM2StatuteMile: "UC_M2StatuteMile",
}

// String returns the table spelling of the conversion, e.g. "UC_K2F".
func (c UnitConversion) String() string {
	if c < 0 || int(c) >= len(unitConversionNames) {
		return fmt.Sprintf("UnitConversion(%d)", int(c))
	}
	return unitConversionNames[c]
}

// MarshalText encodes the conversion by its table spelling.
func (c UnitConversion) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts the table spelling produced by MarshalText.
func (c *UnitConversion) UnmarshalText(text []byte) error {
	v, ok := ParseUnitConversion(string(text))
	if !ok {
		return fmt.Errorf("unknown unit conversion %q", text)
	}
	*c = v
	return nil
}

// ParseUnitConversion maps a unit_conv column value to a UnitConversion.
// Unrecognized values report false and ConvertNone.
func ParseUnitConversion(s string) (UnitConversion, bool) {
	for i, name := range unitConversionNames {
		if name == s {
			return UnitConversion(i), true
		}
	}
	return ConvertNone, false
}

// Parameter is one row of code table 4.2.
type Parameter struct {
	ShortName string         `json:"short_name"`
	Name      string         `json:"name"`
	Unit      string         `json:"unit"`
	Convert   UnitConversion `json:"unit_conversion"`
}

// LocalParameter is a parameter defined by an originating center in the
// local-use range, addressed by its full discipline/category/number triple.
type LocalParameter struct {
	Discipline  int
	Category    int
	Subcategory int
	Parameter
}

// Surface is one row of code table 4.5 (fixed surface types).
type Surface struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
}

type tableKey struct {
	Discipline int
	Category   int
}

// Well-known originating centers and sub-centers.
const (
	CenterNCEP  = 7
	CenterNWSTG = 8
	CenterOAR   = 161 // NOAA OAR, producer of MRMS

	SubCenterHPC     = 5
	SubCenterMOS     = 14
	SubCenterMissing = 65535
)

// IsNDFD reports whether the center pair identifies National Digital
// Forecast Database output.
func IsNDFD(center, subCenter int) bool {
	return center == CenterNWSTG && (subCenter == SubCenterMissing || subCenter == 0)
}

// IsMOS reports whether the center pair identifies Model Output Statistics.
func IsMOS(center, subCenter int) bool {
	return center == CenterNCEP && subCenter == SubCenterMOS
}

// ndfdAbbreviations renames generic short names to the NDFD spelling.
var ndfdAbbreviations = []struct{ grib2, ndfd string }{
	{"TMP", "T"},
	{"TMAX", "MaxT"},
	{"TMIN", "MinT"},
	{"DPT", "Td"},
	{"APCP", "QPF"},
	{"WDIR", "WindDir"},
	{"WIND", "WindSpd"},
	{"TCDC", "Sky"},
	{"WVHGT", "WaveHeight"},
	{"ASNOW", "SnowAmt"},
	{"GUST", "WindGust"},
	{"MAXRH", "MaxRH"},
	{"HTSGW", "WaveHeight"},
}

func ndfdAbbreviation(shortName string) (string, bool) {
	for _, o := range ndfdAbbreviations {
		if o.grib2 == shortName {
			return o.ndfd, true
		}
	}
	return "", false
}
