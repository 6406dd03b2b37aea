package gribmeta

// surfaces holds code table 4.5. Single rows stand in for whole reserved
// ranges; surfaceIndex maps a code onto a row.
var surfaces = [32]Surface{
	{"RESERVED", "Reserved", "-"},
	{"SFC", "Ground or water surface", "-"},
	{"CBL", "Cloud base level", "-"},
	{"CTL", "Level of cloud tops", "-"},
	{"0DEG", "Level of 0 degree C isotherm", "-"},
	{"ADCL", "Level of adiabatic condensation lifted from the surface", "-"},
	{"MWSL", "Maximum wind level", "-"},
	{"TRO", "Tropopause", "-"},
	{"NTAT", "Nominal top of atmosphere", "-"},
	{"SEAB", "Sea bottom", "-"},
	{"RESERVED", "Reserved", "-"},                           // 10-19
	{"TMPL", "Isothermal level", "K"},                       // 20
	{"RESERVED", "Reserved", "-"},                           // 21-99
	{"ISBL", "Isobaric surface", "Pa"},                      // 100
	{"MSL", "Mean sea level", "-"},                          // 101
	{"GPML", "Specific altitude above mean sea level", "m"}, // 102
	{"HTGL", "Specified height level above ground", "m"},    // 103
	{"SIGL", "Sigma level", "'sigma' value"},                // 104
	{"HYBL", "Hybrid level", "-"},                           // 105
	{"DBLL", "Depth below land surface", "m"},               // 106
	{"THEL", "Isentropic (theta) level", "K"},               // 107
	{"SPDL", "Level at specified pressure difference from ground to level", "Pa"},
	{"PVL", "Potential vorticity surface", "(K m^2)/(kg s)"}, // 109
	{"RESERVED", "Reserved", "-"},                            // 110
	{"EtaL", "Eta* level", "-"},                              // 111
	{"RESERVED", "Reserved", "-"},                            // 112-116
	{"unknown", "Mixed layer depth", "m"},                    // 117
	{"RESERVED", "Reserved", "-"},                            // 118-159
	{"DBSL", "Depth below sea level", "m"},                   // 160
	{"RESERVED", "Reserved", "-"},                            // 161-191
	{"RESERVED", "Reserved Local use", "-"},                  // 192-254
	{"MISSING", "Missing", "-"},                              // 255
}

// ncepSurfaces are NCEP's definitions in the 192-254 local range.
var ncepSurfaces = map[int]Surface{
	200: {"EATM", "Entire atmosphere (considerd as a single layer)", "-"},
	201: {"EOCN", "Entire ocean (considered as a single layer)", "-"},
	204: {"HTFL", "Highest tropospheric freezing level", "-"},
	206: {"GCBL", "Grid scale cloud bottom level", "-"},
	207: {"GCTL", "Grid scale cloud top level", "-"},
	209: {"BCBL", "Boundary layer cloud bottom level", "-"},
	210: {"BCTL", "Boundary layer cloud top level", "-"},
	211: {"BCY", "Boundary layer cloud level", "-"},
	212: {"LCBL", "Low cloud bottom level", "-"},
	213: {"LCTL", "Low cloud top level", "-"},
	214: {"LCY", "Low cloud level", "-"},
	215: {"CEIL", "Cloud ceiling", "-"},
	222: {"MCBL", "Middle cloud bottom level", "-"},
	223: {"MCTL", "Middle cloud top level", "-"},
	224: {"MCY", "Middle cloud level", "-"},
	232: {"HCBL", "High cloud bottom level", "-"},
	233: {"HCTL", "High cloud top level", "-"},
	234: {"HCY", "High cloud level", "-"},
	235: {"OITL", "Ocean Isotherm Level (1/10 deg C)", "-"},
	236: {"OLYR", "Layer between two depths below ocean surface", "-"},
	237: {"OBML", "Bottom of Ocean Mixed Layer (m)", "-"},
	238: {"OBIL", "Bottom of Ocean Isothermal Layer (m)", "-"},
	242: {"CCBL", "Convective cloud bottom level", "-"},
	243: {"CCTL", "Convective cloud top level", "-"},
	244: {"CCY", "Convective cloud level", "-"},
	245: {"LLTW", "Lowest level of the wet bulb zero", "-"},
	246: {"MTHE", "Maximum equivalent potential temperature level", "-"},
	247: {"EHLT", "Equilibrium level", "-"},
	248: {"SCBL", "Shallow convective cloud bottom level", "-"},
	249: {"SCTL", "Shallow convective cloud top level", "-"},
	251: {"DCBL", "Deep convective cloud bottom level", "-"},
	252: {"DCTL", "Deep convective cloud top level", "-"},
	253: {"LBLSW", "Lowest bottom level of supercooled liquid water layer", "-"},
	254: {"HTLSW", "Highest top level of supercooled liquid water layer", "-"},
}

// surfaceIndex resolves a table 4.5 code. reserved is true for codes that
// fall in a reserved block, for 0, for anything outside 0..255 and for 255.
func surfaceIndex(code, center int) (s Surface, reserved bool) {
	switch {
	case code < 0 || code > 255:
		return surfaces[0], true
	case code == 255:
		return surfaces[31], true
	case code > 191:
		if center == CenterNCEP {
			if s, ok := ncepSurfaces[code]; ok {
				return s, false
			}
		}
		return surfaces[30], true
	case code > 160:
		return surfaces[29], true
	case code == 160:
		return surfaces[28], false
	case code > 117:
		return surfaces[27], true
	case code == 117:
		return surfaces[26], false
	case code > 111:
		return surfaces[25], true
	case code == 110:
		return surfaces[23], true
	case code > 99:
		return surfaces[code-87], false
	case code > 20:
		return surfaces[12], true
	case code == 20:
		return surfaces[11], false
	case code > 9:
		return surfaces[10], true
	case code > 0:
		return surfaces[code], false
	}
	return surfaces[0], true
}
