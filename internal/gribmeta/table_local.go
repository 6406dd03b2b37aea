package gribmeta

// ndfdLocal holds parameters the NWS telecommunications gateway (NDFD) defines
// in the local-use range.
var ndfdLocal = []LocalParameter{
	{0, 1, 192, Parameter{"Wx", "Weather string", "-", ConvertNone}},
	{0, 0, 193, Parameter{"ApparentT", "Apparent Temperature", "K", ConvertK2F}},
	{0, 14, 192, Parameter{"O3MR", "Ozone Mixing Ratio", "kg/kg", ConvertNone}},
	{0, 14, 193, Parameter{"OZCON", "Ozone Concentration", "PPB", ConvertNone}},
	{0, 10, 8, Parameter{"PoP12", "Prob of 0.01 In. of Precip", "%", ConvertNone}},
	{0, 13, 194, Parameter{"smokes", "Surface level smoke from fires", "log10(µg/m^3)", ConvertLog10}},
	{0, 13, 195, Parameter{"smokec", "Average vertical column smoke from fires", "log10(µg/m^3)", ConvertLog10}},
	{10, 3, 192, Parameter{"Surge", "Hurricane Storm Surge", "m", ConvertM2Feet}},
	{10, 3, 193, Parameter{"ETSurge", "Extra Tropical Storm Surge", "m", ConvertM2Feet}},
}

// hpcLocal holds the Hydrometeorological Prediction Center local parameters.
var hpcLocal = []LocalParameter{
	{0, 1, 192, Parameter{"HPC-Wx", "HPC Code", "-", ConvertNone}},
}

// mrmsLocal holds the Multi-Radar Multi-Sensor products NSSL encodes under
// local discipline 209.
var mrmsLocal = []LocalParameter{
	{209, 2, 0, Parameter{"NLDN_CG_001min_AvgDensity", "CG Average Lightning Density 1-min - NLDN", "flashes/km^2/min", ConvertNone}},
	{209, 2, 1, Parameter{"NLDN_CG_005min_AvgDensity", "CG Average Lightning Density 5-min - NLDN", "flashes/km^2/min", ConvertNone}},
	{209, 2, 2, Parameter{"NLDN_CG_015min_AvgDensity", "CG Average Lightning Density 15-min - NLDN", "flashes/km^2/min", ConvertNone}},
	{209, 2, 3, Parameter{"NLDN_CG_030min_AvgDensity", "CG Average Lightning Density 30-min - NLDN", "flashes/km^2/min", ConvertNone}},
	{209, 2, 4, Parameter{"LightningProbabilityNext30min", "Lightning Probability 0-30 minutes - NLDN", "%", ConvertNone}},
	{209, 3, 0, Parameter{"MergedAzShear0to2kmAGL", "Azimuth Shear 0-2km AGL", "0.001/s", ConvertNone}},
	{209, 3, 1, Parameter{"MergedAzShear3to6kmAGL", "Azimuth Shear 3-6km AGL", "0.001/s", ConvertNone}},
	{209, 3, 2, Parameter{"RotationTrack30min", "Rotation Track 0-2km AGL 30-min", "0.001/s", ConvertNone}},
	{209, 3, 3, Parameter{"RotationTrack60min", "Rotation Track 0-2km AGL 60-min", "0.001/s", ConvertNone}},
	{209, 3, 4, Parameter{"RotationTrack120min", "Rotation Track 0-2km AGL 120-min", "0.001/s", ConvertNone}},
	{209, 3, 5, Parameter{"RotationTrack240min", "Rotation Track 0-2km AGL 240-min", "0.001/s", ConvertNone}},
	{209, 3, 6, Parameter{"RotationTrack360min", "Rotation Track 0-2km AGL 360-min", "0.001/s", ConvertNone}},
	{209, 3, 7, Parameter{"RotationTrack1440min", "Rotation Track 0-2km AGL 1440-min", "0.001/s", ConvertNone}},
	{209, 6, 0, Parameter{"PrecipFlag", "Surface Precipitation Type (Convective, Stratiform, Tropical, Hail, Snow)", "flag", ConvertNone}},
	{209, 6, 1, Parameter{"PrecipRate", "Radar Precipitation Rate", "mm/hr", ConvertNone}},
	{209, 6, 2, Parameter{"RadarOnly_QPE_01H", "Radar Precipitation Accumulation 1-hour", "mm", ConvertNone}},
	{209, 6, 3, Parameter{"RadarOnly_QPE_03H", "Radar Precipitation Accumulation 3-hour", "mm", ConvertNone}},
	{209, 6, 4, Parameter{"RadarOnly_QPE_06H", "Radar Precipitation Accumulation 6-hour", "mm", ConvertNone}},
	{209, 6, 5, Parameter{"RadarOnly_QPE_12H", "Radar Precipitation Accumulation 12-hour", "mm", ConvertNone}},
	{209, 6, 6, Parameter{"RadarOnly_QPE_24H", "Radar Precipitation Accumulation 24-hour", "mm", ConvertNone}},
	{209, 6, 7, Parameter{"RadarOnly_QPE_48H", "Radar Precipitation Accumulation 48-hour", "mm", ConvertNone}},
	{209, 6, 8, Parameter{"RadarOnly_QPE_72H", "Radar Precipitation Accumulation 72-hour", "mm", ConvertNone}},
	{209, 9, 0, Parameter{"MergedReflectivityQC", "3D Reflectivity Mosaic - 33 CAPPIS (500-19000m)", "dBZ", ConvertNone}},
	{209, 10, 0, Parameter{"MergedReflectivityQCComposite", "Composite Reflectivity Mosaic (optimal method)", "dBZ", ConvertNone}},
	{209, 10, 1, Parameter{"HeightCompositeReflectivity", "Height of Composite Reflectivity Mosaic (optimal method)", "m MSL", ConvertNone}},
}

// ncepLocal holds the NCEP local-use parameters. Lookups are a linear scan.
var ncepLocal = []LocalParameter{
	{0, 0, 192, Parameter{"SNOHF", "Snow Phase Change Heat Flux", "W/(m^2)", ConvertNone}},
	{0, 0, 193, Parameter{"TTRAD", "Temperature tendency by all radiation", "K/s", ConvertNone}},
	{0, 1, 192, Parameter{"CRAIN", "Categorical Rain", "(0 no; 1 yes)", ConvertNone}},
	{0, 1, 193, Parameter{"CFRZR", "Categorical Freezing Rain", "(0 no; 1 yes)", ConvertNone}},
	{0, 1, 194, Parameter{"CICEP", "Categorical Ice Pellets", "(0 no; 1 yes)", ConvertNone}},
	{0, 1, 195, Parameter{"CSNOW", "Categorical Snow", "(0 no; 1 yes)", ConvertNone}},
	{0, 1, 196, Parameter{"CPRAT", "Convective Precipitation Rate", "kg/(m^2*s)", ConvertNone}},
	{0, 1, 197, Parameter{"MCONV", "Horizontal Moisture Divergence", "kg/(kg*s)", ConvertNone}},
	{0, 1, 198, Parameter{"CPOFP", "Percent Frozen Precipitation", "%", ConvertNone}},
	{0, 1, 199, Parameter{"PEVAP", "Potential Evaporation", "kg/(m^2)", ConvertNone}},
	{0, 1, 200, Parameter{"PEVPR", "Potential Evaporation Rate", "W/(m^2)", ConvertNone}},
	{0, 1, 201, Parameter{"SNOWC", "Snow Cover", "%", ConvertNone}},
	{0, 1, 202, Parameter{"FRAIN", "Rain Fraction of Total Liquid Water", "-", ConvertNone}},
	{0, 1, 203, Parameter{"RIME", "Rime Factor", "-", ConvertNone}},
	{0, 1, 204, Parameter{"TCOLR", "Total Column Integrated Rain", "kg/(m^2)", ConvertNone}},
	{0, 1, 205, Parameter{"TCOLS", "Total Column Integrated Snow", "kg/(m^2)", ConvertNone}},
	{0, 1, 206, Parameter{"TIPD", "Total Icing Potential Diagnostic", "-", ConvertNone}},
	{0, 1, 207, Parameter{"NCIP", "Number concentration for ice particles", "-", ConvertNone}},
	{0, 1, 208, Parameter{"SNOT", "Snow temperature", "K", ConvertNone}},
	{0, 2, 192, Parameter{"VWSH", "Vertical speed sheer", "1/s", ConvertNone}},
	{0, 2, 193, Parameter{"MFLX", "Horizontal Momentum Flux", "N/(m^2)", ConvertNone}},
	{0, 2, 194, Parameter{"USTM", "U-Component Storm Motion", "m/s", ConvertNone}},
	{0, 2, 195, Parameter{"VSTM", "V-Component Storm Motion", "m/s", ConvertNone}},
	{0, 2, 196, Parameter{"CD", "Drag Coefficient", "-", ConvertNone}},
	{0, 2, 197, Parameter{"FRICV", "Frictional Velocity", "m/s", ConvertNone}},
	{0, 3, 192, Parameter{"MSLET", "Mean Sea Level Pressure (Eta Reduction)", "Pa", ConvertNone}},
	{0, 3, 193, Parameter{"5WAVH", "5-Wave Geopotential Height", "gpm", ConvertNone}},
	{0, 3, 194, Parameter{"U-GWD", "Zonal Flux of Gravity Wave Stress", "N/(m^2)", ConvertNone}},
	{0, 3, 195, Parameter{"V-GWD", "Meridional Flux of Gravity Wave Stress", "N/(m^2)", ConvertNone}},
	{0, 3, 196, Parameter{"HPBL", "Planetary Boundary Layer Height", "m", ConvertNone}},
	{0, 3, 197, Parameter{"5WAVA", "5-Wave Geopotential Height Anomaly", "gpm", ConvertNone}},
	{0, 3, 198, Parameter{"MSLMA", "Mean Sea Level Pressure (MAPS System Reduction)", "Pa", ConvertNone}},
	{0, 3, 199, Parameter{"TSLSA", "3-hr pressure tendency (Std. Atmos. Reduction)", "Pa/s", ConvertNone}},
	{0, 3, 200, Parameter{"PLPL", "Pressure of level from which parcel was lifted", "Pa", ConvertNone}},
	{0, 4, 192, Parameter{"DSWRF", "Downward Short-Wave Rad. Flux", "W/(m^2)", ConvertNone}},
	{0, 4, 193, Parameter{"USWRF", "Upward Short-Wave Rad. Flux", "W/(m^2)", ConvertNone}},
	{0, 4, 194, Parameter{"DUVB", "UV-B downward solar flux", "W/(m^2)", ConvertNone}},
	{0, 4, 195, Parameter{"CDUVB", "Clear sky UV-B downward solar flux", "W/(m^2)", ConvertNone}},
	{0, 5, 192, Parameter{"DLWRF", "Downward Long-Wave Rad. Flux", "W/(m^2)", ConvertNone}},
	{0, 5, 193, Parameter{"ULWRF", "Upward Long-Wave Rad. Flux", "W/(m^2)", ConvertNone}},
	{0, 6, 192, Parameter{"CDLYR", "Non-Convective Cloud Cover", "%", ConvertNone}},
	{0, 6, 193, Parameter{"CWORK", "Cloud Work Function", "J/kg", ConvertNone}},
	{0, 6, 194, Parameter{"CUEFI", "Convective Cloud Efficiency", "-", ConvertNone}},
	{0, 6, 195, Parameter{"TCOND", "Total Condensate", "kg/kg", ConvertNone}},
	{0, 6, 196, Parameter{"TCOLW", "Total Column-Integrated Cloud Water", "kg/(m^2)", ConvertNone}},
	{0, 6, 197, Parameter{"TCOLI", "Total Column-Integrated Cloud Ice", "kg/(m^2)", ConvertNone}},
	{0, 6, 198, Parameter{"TCOLC", "Total Column-Integrated Condensate", "kg/(m^2)", ConvertNone}},
	{0, 6, 199, Parameter{"FICE", "Ice fraction of total condensate", "-", ConvertNone}},
	{0, 7, 192, Parameter{"LFTX", "Surface Lifted Index", "K", ConvertNone}},
	{0, 7, 193, Parameter{"4LFTX", "Best (4 layer) Lifted Index", "K", ConvertNone}},
	{0, 7, 194, Parameter{"RI", "Richardson Number", "-", ConvertNone}},
	{0, 13, 192, Parameter{"PMTC", "Particulate matter (coarse)", "µg/m^3", ConvertNone}},
	{0, 13, 193, Parameter{"PMTF", "Particulate matter (fine)", "µg/m^3", ConvertNone}},
	{0, 13, 194, Parameter{"LPMTF", "Particulate matter (fine)", "log10(µg/m^3)", ConvertLog10}},
	{0, 13, 195, Parameter{"LIPMF", "Integrated column particulate matter (fine)", "log10(µg/m^3)", ConvertLog10}},
	{0, 14, 192, Parameter{"O3MR", "Ozone Mixing Ratio", "kg/kg", ConvertNone}},
	{0, 14, 193, Parameter{"OZCON", "Ozone Concentration", "PPB", ConvertNone}},
	{0, 14, 194, Parameter{"OZCAT", "Categorical Ozone Concentration", "-", ConvertNone}},
	{0, 16, 192, Parameter{"REFZR", "Derived radar reflectivity backscatter from rain", "mm^6/m^3", ConvertNone}},
	{0, 16, 193, Parameter{"REFZI", "Derived radar reflectivity backscatter from ice", "mm^6/m^3", ConvertNone}},
	{0, 16, 194, Parameter{"REFZC", "Derived radar reflectivity backscatter from parameterized convection", "mm^6/m^3", ConvertNone}},
	{0, 16, 195, Parameter{"REFD", "Derived radar reflectivity", "dB", ConvertNone}},
	{0, 16, 196, Parameter{"REFC", "Maximum / Composite radar reflectivity", "dB", ConvertNone}},
	{0, 17, 192, Parameter{"LTNG", "Lightning", "-", ConvertNone}},
	{0, 19, 192, Parameter{"MXSALB", "Maximum Snow Albedo", "%", ConvertNone}},
	{0, 19, 193, Parameter{"SNFALB", "Snow-Free Albedo", "%", ConvertNone}},
	{0, 19, 194, Parameter{"", "Slight risk convective outlook", "categorical", ConvertNone}},
	{0, 19, 195, Parameter{"", "Moderate risk convective outlook", "categorical", ConvertNone}},
	{0, 19, 196, Parameter{"", "High risk convective outlook", "categorical", ConvertNone}},
	{0, 19, 197, Parameter{"", "Tornado probability", "%", ConvertNone}},
	{0, 19, 198, Parameter{"", "Hail probability", "%", ConvertNone}},
	{0, 19, 199, Parameter{"", "Wind probability", "%", ConvertNone}},
	{0, 19, 200, Parameter{"", "Significant Tornado probability", "%", ConvertNone}},
	{0, 19, 201, Parameter{"", "Significant Hail probability", "%", ConvertNone}},
	{0, 19, 202, Parameter{"", "Significant Wind probability", "%", ConvertNone}},
	{0, 19, 203, Parameter{"TSTMC", "Categorical Thunderstorm", "0=no, 1=yes", ConvertNone}},
	{0, 19, 204, Parameter{"MIXLY", "Number of mixed layers next to surface", "integer", ConvertNone}},
	{0, 191, 192, Parameter{"NLAT", "Latitude (-90 to 90)", "deg", ConvertNone}},
	{0, 191, 193, Parameter{"ELON", "East Longitude (0 to 360)", "deg", ConvertNone}},
	{0, 191, 194, Parameter{"TSEC", "Seconds prior to initial reference time", "s", ConvertNone}},
	{1, 0, 192, Parameter{"BGRUN", "Baseflow-Groundwater Runoff", "kg/(m^2)", ConvertNone}},
	{1, 0, 193, Parameter{"SSRUN", "Storm Surface Runoff", "kg/(m^2)", ConvertNone}},
	{1, 1, 192, Parameter{"CPOZP", "Probability of Freezing Precipitation", "%", ConvertNone}},
	{1, 1, 193, Parameter{"CPOFP", "Probability of Frozen Precipitation", "%", ConvertNone}},
	{1, 1, 194, Parameter{"PPFFG", "Probability of precipitation exceeding flash flood guidance values", "%", ConvertNone}},
	{2, 0, 192, Parameter{"SOILW", "Volumetric Soil Moisture Content", "Fraction", ConvertNone}},
	{2, 0, 193, Parameter{"GFLUX", "Ground Heat Flux", "W/(m^2)", ConvertNone}},
	{2, 0, 194, Parameter{"MSTAV", "Moisture Availability", "%", ConvertNone}},
	{2, 0, 195, Parameter{"SFEXC", "Exchange Coefficient", "(kg/(m^3))(m/s)", ConvertNone}},
	{2, 0, 196, Parameter{"CNWAT", "Plant Canopy Surface Water", "kg/(m^2)", ConvertNone}},
	{2, 0, 197, Parameter{"BMIXL", "Blackadar's Mixing Length Scale", "m", ConvertNone}},
	{2, 0, 198, Parameter{"VGTYP", "Vegetation Type", "0..13", ConvertNone}},
	{2, 0, 199, Parameter{"CCOND", "Canopy Conductance", "m/s", ConvertNone}},
	{2, 0, 200, Parameter{"RSMIN", "Minimal Stomatal Resistance", "s/m", ConvertNone}},
	{2, 0, 201, Parameter{"WILT", "Wilting Point", "Fraction", ConvertNone}},
	{2, 0, 202, Parameter{"RCS", "Solar parameter in canopy conductance", "Fraction", ConvertNone}},
	{2, 0, 203, Parameter{"RCT", "Temperature parameter in canopy conductance", "Fraction", ConvertNone}},
	{2, 0, 204, Parameter{"RCQ", "Humidity parameter in canopy conductance", "Fraction", ConvertNone}},
	{2, 0, 205, Parameter{"RCSOL", "Soil moisture parameter in canopy conductance", "Fraction", ConvertNone}},
	{2, 0, 206, Parameter{"RDRIP", "Rate of water dropping from canopy to ground", "unknown", ConvertNone}},
	{2, 0, 207, Parameter{"ICWAT", "Ice-free water surface", "%", ConvertNone}},
	{2, 3, 192, Parameter{"SOILL", "Liquid Volumetric Soil Moisture (non Frozen)", "Proportion", ConvertNone}},
	{2, 3, 193, Parameter{"RLYRS", "Number of Soil Layers in Root Zone", "-", ConvertNone}},
	{2, 3, 194, Parameter{"SLTYP", "Surface Slope Type", "Index", ConvertNone}},
	{2, 3, 195, Parameter{"SMREF", "Transpiration Stress-onset (soil moisture)", "Proportion", ConvertNone}},
	{2, 3, 196, Parameter{"SMDRY", "Direct Evaporation Cease (soil moisture)", "Proportion", ConvertNone}},
	{2, 3, 197, Parameter{"POROS", "Soil Porosity", "Proportion", ConvertNone}},
	{3, 1, 192, Parameter{"USCT", "Scatterometer Estimated U Wind", "m/s", ConvertNone}},
	{3, 1, 193, Parameter{"VSCT", "Scatterometer Estimated V Wind", "m/s", ConvertNone}},
	{10, 3, 192, Parameter{"SURGE", "Hurricane Storm Surge", "m", ConvertM2Feet}},
	{10, 3, 193, Parameter{"ETSRG", "Extra Tropical Storm Surge", "m", ConvertM2Feet}},
}
