package gribmeta

// Code table 4.2 parameters keyed by discipline and category. The slice
// index is the parameter number.
var wmoParameters = map[tableKey][]Parameter{
	// 0.0 Temperature
	{Discipline: 0, Category: 0}: {
		{"TMP", "Temperature", "K", ConvertK2F},
		{"VTMP", "Virtual temperature", "K", ConvertK2F},
		{"POT", "Potential temperature", "K", ConvertK2F},
		{"EPOT", "Pseudo-adiabatic potential temperature", "K", ConvertK2F},
		{"TMAX", "Maximum Temperature", "K", ConvertK2F},
		{"TMIN", "Minimum Temperature", "K", ConvertK2F},
		{"DPT", "Dew point temperature", "K", ConvertK2F},
		{"DEPR", "Dew point depression", "K", ConvertK2F},
		{"LAPR", "Lapse rate", "K/m", ConvertNone},
		{"TMPA", "Temperature anomaly", "K", ConvertK2F},
		{"LHTFL", "Latent heat net flux", "W/(m^2)", ConvertNone},
		{"SHTFL", "Sensible heat net flux", "W/(m^2)", ConvertNone},
		{"HeatIndex", "Heat index", "K", ConvertK2F},
		{"WCI", "Wind chill factor", "K", ConvertK2F},
		{"", "Minimum dew point depression", "K", ConvertK2F},
		{"VPTMP", "Virtual potential temperature", "K", ConvertK2F},
		{"SNOHF", "Snow phase change heat flux", "W/m^2", ConvertNone},
	},
	// 0.1 Moisture
	{Discipline: 0, Category: 1}: {
		{"SPFH", "Specific humidity", "kg/kg", ConvertNone},
		{"RH", "Relative Humidity", "%", ConvertNone},
		{"MIXR", "Humidity mixing ratio", "kg/kg", ConvertNone},
		{"PWAT", "Precipitable water", "kg/(m^2)", ConvertNone},
		{"VAPP", "Vapor Pressure", "Pa", ConvertNone},
		{"SATD", "Saturation deficit", "Pa", ConvertNone},
		{"EVP", "Evaporation", "kg/(m^2)", ConvertNone},
		{"PRATE", "Precipitation rate", "kg/(m^2 s)", ConvertNone},
		{"APCP", "Total precipitation", "kg/(m^2)", ConvertInchWater},
		{"NCPCP", "Large scale precipitation", "kg/(m^2)", ConvertNone},
		{"ACPCP", "Convective precipitation", "kg/(m^2)", ConvertNone},
		{"SNOD", "Snow depth", "m", ConvertM2Inch},
		{"SRWEQ", "Snowfall rate water equivalent", "kg/(m^2 s)", ConvertNone},
		{"WEASD", "Water equivalent of accumulated snow depth", "kg/(m^2)", ConvertNone},
		{"SNOC", "Convective snow", "kg/(m^2)", ConvertNone},
		{"SNOL", "Large scale snow", "kg/(m^2)", ConvertNone},
		{"SNOM", "Snow melt", "kg/(m^2)", ConvertNone},
		{"SNOAG", "Snow age", "day", ConvertNone},
		{"", "Absolute humidity", "kg/(m^3)", ConvertNone},
		{"", "Precipitation type", "(1 Rain, 2 Thunderstorm, 3 Freezing Rain, 4 Mixed/ice, 5 snow, 255 missing)", ConvertNone},
		{"", "Integrated liquid water", "kg/(m^2)", ConvertNone},
		{"TCOND", "Condensate", "kg/kg", ConvertNone},
		{"CLWMR", "Cloud Water Mixing Ratio", "kg/kg", ConvertNone},
		{"ICMR", "Ice water mixing ratio", "kg/kg", ConvertNone},
		{"RWMR", "Rain Water Mixing Ratio", "kg/kg", ConvertNone},
		{"SNMR", "Snow Water Mixing Ratio", "kg/kg", ConvertNone},
		{"MCONV", "Horizontal moisture convergence", "kg/(kg s)", ConvertNone},
		{"MAXRH", "Maximum relative humidity", "%", ConvertNone},
		{"", "Maximum absolute humidity", "kg/(m^3)", ConvertNone},
		{"ASNOW", "Total snowfall", "m", ConvertM2Inch},
		{"", "Precipitable water category", "(undefined)", ConvertNone},
		{"", "Hail", "m", ConvertNone},
		{"", "Graupel (snow pellets)", "kg/kg", ConvertNone},
		{"CRAIN", "Categorical rain", "0=no, 1=yes", ConvertNone},
		{"CFRZR", "Categorical freezing rain", "0=no, 1=yes", ConvertNone},
		{"CICEP", "Categorical ice pellets", "0=no, 1=yes", ConvertNone},
		{"CSNOW", "Categorical snow", "0=no, 1=yes", ConvertNone},
		{"CPRAT", "Convective precipitation rate", "kg/(m^2*s)", ConvertNone},
		{"MCONV", "Horizontal moisture divergence", "kg/(kg*s)", ConvertNone},
		{"CPOFP", "Percent frozen precipitation", "%", ConvertNone},
		{"PEVAP", "Potential evaporation", "kg/m^2", ConvertNone},
		{"PEVPR", "Potential evaporation rate", "W/m^2", ConvertNone},
		{"SNOWC", "Snow Cover", "%", ConvertNone},
		{"FRAIN", "Rain fraction of total cloud water", "-", ConvertNone},
		{"RIME", "Rime factor", "-", ConvertNone},
		{"TCOLR", "Total column integrated rain", "kg/m^2", ConvertNone},
		{"TCOLS", "Total column integrated snow", "kg/m^2", ConvertNone},
	},
	// 0.2 Momentum
	{Discipline: 0, Category: 2}: {
		{"WDIR", "Wind direction (from which blowing)", "deg true", ConvertNone},
		{"WIND", "Wind speed", "m/s", ConvertMS2Knots},
		{"UGRD", "u-component of wind", "m/s", ConvertNone},
		{"VGRD", "v-component of wind", "m/s", ConvertNone},
		{"STRM", "Stream function", "(m^2)/s", ConvertNone},
		{"VPOT", "Velocity potential", "(m^2)/s", ConvertNone},
		{"MNTSF", "Montgomery stream function", "(m^2)/(s^2)", ConvertNone},
		{"SGCVV", "Sigma coordinate vertical velocity", "1/s", ConvertNone},
		{"VVEL", "Vertical velocity (pressure)", "Pa/s", ConvertNone},
		{"DZDT", "Verical velocity (geometric)", "m/s", ConvertNone},
		{"ABSV", "Absolute vorticity", "1/s", ConvertNone},
		{"ABSD", "Absolute divergence", "1/s", ConvertNone},
		{"RELV", "Relative vorticity", "1/s", ConvertNone},
		{"RELD", "Relative divergence", "1/s", ConvertNone},
		{"PV", "Potential vorticity", "K(m^2)/(kg s)", ConvertNone},
		{"VUCSH", "Vertical u-component shear", "1/s", ConvertNone},
		{"VVCSH", "Vertical v-component shear", "1/s", ConvertNone},
		{"UFLX", "Momentum flux; u component", "N/(m^2)", ConvertNone},
		{"VFLX", "Momentum flux; v component", "N/(m^2)", ConvertNone},
		{"WMIXE", "Wind mixing energy", "J", ConvertNone},
		{"BLYDP", "Boundary layer dissipation", "W/(m^2)", ConvertNone},
		{"", "Maximum wind speed", "m/s", ConvertNone},
		{"GUST", "Wind speed (gust)", "m/s", ConvertMS2Knots},
		{"", "u-component of wind (gust)", "m/s", ConvertNone},
		{"", "v-component of wind (gust)", "m/s", ConvertNone},
		{"VWSH", "Vertical speed shear", "1/s", ConvertNone},
		{"MFLX", "Horizontal momentum flux", "N/(m^2)", ConvertNone},
		{"USTM", "U-component storm motion", "m/s", ConvertNone},
		{"VSTM", "V-component storm motion", "m/s", ConvertNone},
		{"CD", "Drag coefficient", "-", ConvertNone},
		{"FRICV", "Frictional velocity", "m/s", ConvertNone},
	},
	// 0.3 Mass
	{Discipline: 0, Category: 3}: {
		{"PRES", "Pressure", "Pa", ConvertNone},
		{"PRMSL", "Pressure reduced to MSL", "Pa", ConvertNone},
		{"PTEND", "Pressure tendency", "Pa/s", ConvertNone},
		{"ICAHT", "ICAO Standard Atmosphere Reference Height", "m", ConvertNone},
		{"GP", "Geopotential", "(m^2)/(s^2)", ConvertNone},
		{"HGT", "Geopotential height", "gpm", ConvertNone},
		{"DIST", "Geometric Height", "m", ConvertNone},
		{"HSTDV", "Standard deviation of height", "m", ConvertNone},
		{"PRESA", "Pressure anomaly", "Pa", ConvertNone},
		{"GPA", "Geopotential height anomally", "gpm", ConvertNone},
		{"DEN", "Density", "kg/(m^3)", ConvertNone},
		{"", "Altimeter setting", "Pa", ConvertNone},
		{"", "Thickness", "m", ConvertNone},
		{"", "Pressure altitude", "m", ConvertNone},
		{"", "Density altitude", "m", ConvertNone},
		{"5WAVH", "5-wave geopotential height", "gpm", ConvertNone},
		{"U-GWD", "Zonal flux of gravity wave stress", "N/(m^2)", ConvertNone},
		{"V-GWD", "Meridional flux of gravity wave stress", "N/(m^2)", ConvertNone},
		{"HPBL", "Planetary boundary layer height", "m", ConvertNone},
		{"5WAVA", "5-Wave geopotential height anomaly", "gpm", ConvertNone},
	},
	// 0.4 Short-wave radiation
	{Discipline: 0, Category: 4}: {
		{"NSWRS", "Net short-wave radiation flux (surface)", "W/(m^2)", ConvertNone},
		{"NSWRT", "Net short-wave radiation flux (top of atmosphere)", "W/(m^2)", ConvertNone},
		{"SWAVR", "Short wave radiation flux", "W/(m^2)", ConvertNone},
		{"GRAD", "Global radiation flux", "W/(m^2)", ConvertNone},
		{"BRTMP", "Brightness temperature", "K", ConvertNone},
		{"LWRAD", "Radiance (with respect to wave number)", "W/(m sr)", ConvertNone},
		{"SWRAD", "Radiance (with respect to wave length)", "W/(m^3 sr)", ConvertNone},
		{"DSWRF", "Downward short-wave radiation flux", "W/(m^2)", ConvertNone},
		{"USWRF", "Upward short-wave radiation flux", "W/(m^2)", ConvertNone},
	},
	// 0.5 Long-wave radiation
	{Discipline: 0, Category: 5}: {
		{"NLWRS", "Net long wave radiation flux (surface)", "W/(m^2)", ConvertNone},
		{"NLWRT", "Net long wave radiation flux (top of atmosphere)", "W/(m^2)", ConvertNone},
		{"LWAVR", "Long wave radiation flux", "W/(m^2)", ConvertNone},
		{"DLWRF", "Downward Long-Wave Rad. Flux", "W/(m^2)", ConvertNone},
		{"ULWRF", "Upward Long-Wave Rad. Flux", "W/(m^2)", ConvertNone},
	},
	// 0.6 Cloud
	{Discipline: 0, Category: 6}: {
		{"CICE", "Cloud Ice", "kg/(m^2)", ConvertNone},
		{"TCDC", "Total cloud cover", "%", ConvertNone},
		{"CDCON", "Convective cloud cover", "%", ConvertNone},
		{"LCDC", "Low cloud cover", "%", ConvertNone},
		{"MCDC", "Medium cloud cover", "%", ConvertNone},
		{"HCDC", "High cloud cover", "%", ConvertNone},
		{"CWAT", "Cloud water", "kg/(m^2)", ConvertNone},
		{"", "Cloud amount", "%", ConvertNone},
		{"", "Cloud type", "(0 clear, 1 Cumulonimbus, 2 Stratus, 3 Stratocumulus, 4 Cumulus, 5 Altostratus, 6 Nimbostratus, 7 Altocumulus, 8 Cirrostratus, 9 Cirrocumulus, 10 Cirrus, 11 Cumulonimbus (fog), 12 Stratus (fog), 13 Stratocumulus (fog), 14 Cumulus (fog), 15 Altostratus (fog), 16 Nimbostratus (fog), 17 Altocumulus (fog), 18 Cirrostratus (fog), 19 Cirrocumulus (fog), 20 Cirrus (fog), 191 unknown, 255 missing)", ConvertNone},
		{"", "Thunderstorm maximum tops", "m", ConvertNone},
		{"", "Thunderstorm coverage", "(0 none, 1 isolated (1%-2%), 2 few (3%-15%), 3 scattered (16%-45%), 4 numerous (> 45%), 255 missing)", ConvertNone},
		{"", "Cloud base", "m", ConvertNone},
		{"", "Cloud top", "m", ConvertNone},
		{"", "Ceiling", "m", ConvertNone},
		{"CDLYR", "Non-convective cloud cover", "%", ConvertNone},
		{"CWORK", "Cloud work function", "J/kg", ConvertNone},
		{"CUEFI", "Convective cloud efficiency", "-", ConvertNone},
		{"TCOND", "Total condensate", "kg/kg", ConvertNone},
		{"TCOLW", "Total column-integrated cloud water", "kg/(m^2)", ConvertNone},
		{"TCOLI", "Total column-integrated cloud ice", "kg/(m^2)", ConvertNone},
		{"TCOLC", "Total column-integrated condensate", "kg/(m^2)", ConvertNone},
		{"FICE", "Ice fraction of total condensate", "-", ConvertNone},
	},
	// 0.7 Thermodynamic stability indices
	{Discipline: 0, Category: 7}: {
		{"PLI", "Parcel lifted index (to 500 hPa)", "K", ConvertNone},
		{"BLI", "Best lifted index (to 500 hPa)", "K", ConvertNone},
		{"KX", "K index", "K", ConvertNone},
		{"", "KO index", "K", ConvertNone},
		{"", "Total totals index", "K", ConvertNone},
		{"SX", "Sweat index", "numeric", ConvertNone},
		{"CAPE", "Convective available potential energy", "J/kg", ConvertNone},
		{"CIN", "Convective inhibition", "J/kg", ConvertNone},
		{"HLCY", "Storm relative helicity", "J/kg", ConvertNone},
		{"", "Energy helicity index", "numeric", ConvertNone},
		{"LFTX", "Surface fifted index", "K", ConvertNone},
		{"4LFTX", "Best (4-layer) lifted index", "K", ConvertNone},
		{"RI", "Richardson number", "-", ConvertNone},
	},
	// 0.13 Aerosols
	{Discipline: 0, Category: 13}: {
		{"", "Aerosol type", "(0 Aerosol not present, 1 Aerosol present, 255 missing)", ConvertNone},
	},
	// 0.14 Trace gases
	{Discipline: 0, Category: 14}: {
		{"TOZNE", "Total ozone", "Dobson", ConvertNone},
		{"O3MR", "Ozone Mixing Ratio", "kg/kg", ConvertNone},
	},
	// 0.15 Radar
	{Discipline: 0, Category: 15}: {
		{"", "Base spectrum width", "m/s", ConvertNone},
		{"", "Base reflectivity", "dB", ConvertNone},
		{"", "Base radial velocity", "m/s", ConvertNone},
		{"", "Vertically-integrated liquid", "kg/m", ConvertNone},
		{"", "Layer-maximum base reflectivity", "dB", ConvertNone},
		{"", "Precipitation", "kg/(m^2)", ConvertNone},
		{"RDSP1", "Radar spectra (1)", "-", ConvertNone},
		{"RDSP2", "Radar spectra (2)", "-", ConvertNone},
		{"RDSP3", "Radar spectra (3)", "-", ConvertNone},
	},
	// 0.16 Forecast radar imagery
	{Discipline: 0, Category: 16}: {
		{"REFZR", "Equivalent radar reflectivity factor for rain", "m m^6/m^3", ConvertNone},
		{"REFZI", "Equivalent radar reflectivity factor for snow", "m m^6/m^3", ConvertNone},
		{"REFZC", "Equivalent radar reflectivity factor for parameterized convection", "m m^6/m^3", ConvertNone},
		{"RETOP", "Echo Top", "m", ConvertNone},
		{"REFD", "Reflectivity", "dB", ConvertNone},
		{"REFC", "Composite reflectivity", "dB", ConvertNone},
	},
	// 0.17 Electrodynamics
	{Discipline: 0, Category: 17}: {
		{"LTNGSD", "Lightning strike density", "m^-2 s^-1", ConvertNone},
		{"LTPINX", "Lightning potential index", "J/kg", ConvertNone},
	},
	// 0.18 Nuclear/radiology
	{Discipline: 0, Category: 18}: {
		{"", "Air concentration of Caesium 137", "Bq/(m^3)", ConvertNone},
		{"", "Air concentration of Iodine 131", "Bq/(m^3)", ConvertNone},
		{"", "Air concentration of radioactive pollutant", "Bq/(m^3)", ConvertNone},
		{"", "Ground deposition of Caesium 137", "Bq/(m^2)", ConvertNone},
		{"", "Ground deposition of Iodine 131", "Bq/(m^2)", ConvertNone},
		{"", "Ground deposition of radioactive pollutant", "Bq/(m^2)", ConvertNone},
		{"", "Time-integrated air concentration of caesium pollutant", "(Bq s)/(m^3)", ConvertNone},
		{"", "Time-integrated air concentration of iodine pollutant", "(Bq s)/(m^3)", ConvertNone},
		{"", "Time-integrated air concentration of radioactive pollutant", "(Bq s)/(m^3)", ConvertNone},
	},
	// 0.19 Physical atmospheric properties
	{Discipline: 0, Category: 19}: {
		{"VIS", "Visibility", "m", ConvertNone},
		{"ALBDO", "Albedo", "%", ConvertNone},
		{"TSTM", "Thunderstorm probability", "%", ConvertNone},
		{"MIXHT", "mixed layer depth", "m", ConvertNone},
		{"", "Volcanic ash", "(0 not present, 1 present, 255 missing)", ConvertNone},
		{"", "Icing top", "m", ConvertNone},
		{"", "Icing base", "m", ConvertNone},
		{"", "Icing", "(0 None, 1 Light, 2 Moderate, 3 Severe, 255 missing)", ConvertNone},
		{"", "Turbulance top", "m", ConvertNone},
		{"", "Turbulence base", "m", ConvertNone},
		{"", "Turbulance", "(0 None(smooth), 1 Light, 2 Moderate, 3 Severe, 4 Extreme, 255 missing)", ConvertNone},
		{"TKE", "Turbulent Kinetic Energy", "J/kg", ConvertNone},
		{"", "Planetary boundary layer regime", "(0 Reserved, 1 Stable, 2 Mechanically driven turbulence, 3 Forced convection, 4 Free convection, 255 missing)", ConvertNone},
		{"", "Contrail intensity", "(0 Contrail not present, 1 Contrail present, 255 missing)", ConvertNone},
		{"", "Contrail engine type", "(0 Low bypass, 1 High bypass, 2 Non bypass, 255 missing)", ConvertNone},
		{"", "Contrail top", "m", ConvertNone},
		{"", "Contrail base", "m", ConvertNone},
		{"MXSALB", "Maximum snow albedo", "%", ConvertNone},
		{"SNFALB", "Snow free albedo", "%", ConvertNone},
	},
	// 0.20 Atmospheric chemical constituents
	{Discipline: 0, Category: 20}: {
		{"MASSDEN", "Mass density (concentration)", "kg/(m^3)", ConvertNone},
		{"COLMD", "Column-integrated mass density", "kg/(m^2)", ConvertNone},
		{"MASSMR", "Mass mixing ratio (mass fraction in air)", "kg/kg", ConvertNone},
		{"AEMFLX", "Atmosphere emission mass flux", "kg/(m^2*s)", ConvertNone},
		{"ANPMFLX", "Atmosphere net production mass flux", "kg/(m^2*s)", ConvertNone},
		{"ANPEMFLX", "Atmosphere net production and emission mass flux", "kg/(m^2*s)", ConvertNone},
		{"SDDMFLX", "Surface dry deposition mass flux", "kg/(m^2*s)", ConvertNone},
		{"SWDMFLX", "Surface wet deposition mass flux", "kg/(m^2*s)", ConvertNone},
		{"AREMFLX", "Atmosphere re-emission mass flux", "kg/(m^2*s)", ConvertNone},
		{"WLSMFLX", "Wet deposition by large-scale precipitation mass flux", "kg/(m^2*s)", ConvertNone},
		{"WDCPMFLX", "Wet deposition by convective precipitation mass flux", "kg/(m^2*s)", ConvertNone},
		{"SEDMFLX", "Sedimentation mass flux", "kg/(m^2*s)", ConvertNone},
		{"DDMFLX", "Dry deposition mass flux", "kg/(m^2*s)", ConvertNone},
	},
	// 0.190 CCITT IA5 string
	{Discipline: 0, Category: 190}: {
		{"", "Arbitrary text string", "CCITTIA5", ConvertNone},
	},
	// 0.253 CCITT IA5 string
	{Discipline: 0, Category: 253}: {
		{"", "Arbitrary text string", "CCITTIA5", ConvertNone},
	},
	// 0.191 Miscellaneous
	{Discipline: 0, Category: 191}: {
		{"TSEC", "Seconds prior to initial reference time (defined in Section 1)", "s", ConvertNone},
	},
	// 1.0 Hydrology basic products
	{Discipline: 1, Category: 0}: {
		{"", "Flash flood guidance", "kg/(m^2)", ConvertNone},
		{"", "Flash flood runoff", "kg/(m^2)", ConvertNone},
		{"", "Remotely sensed snow cover", "(50 no-snow/no-cloud, 100 Clouds, 250 Snow, 255 missing)", ConvertNone},
		{"", "Elevation of snow covered terrain", "(0-90 elevation in increments of 100m, 254 clouds, 255 missing)", ConvertNone},
		{"", "Snow water equivalent percent of normal", "%", ConvertNone},
		{"BGRUN", "Baseflow-groundwater runoff", "kg/(m^2)", ConvertNone},
		{"SSRUN", "Storm surface runoff", "kg/(m^2)", ConvertNone},
	},
	// 1.1 Hydrology probabilities
	{Discipline: 1, Category: 1}: {
		{"", "Conditional percent precipitation amount fractile for an overall period", "kg/(m^2)", ConvertNone},
		{"", "Percent precipitation in a sub-period of an overall period", "%", ConvertNone},
		{"PoP", "Probability of 0.01 inch of precipitation", "%", ConvertNone},
	},
	// 2.0 Vegetation/biomass
	{Discipline: 2, Category: 0}: {
		{"LAND", "Land cover (1=land; 2=sea)", "Proportion", ConvertNone},
		{"SFCR", "Surface roughness", "m", ConvertNone},
		{"TSOIL", "Soil temperature", "K", ConvertNone},
		{"SOILM", "Soil moisture content", "kg/(m^2)", ConvertNone},
		{"VEG", "Vegetation", "%", ConvertNone},
		{"WATR", "Water runoff", "kg/(m^2)", ConvertNone},
		{"", "Evapotranspiration", "1/(kg^2 s)", ConvertNone},
		{"", "Model terrain height", "m", ConvertNone},
		{"", "Land use", "(1 Urban land, 2 agriculture, 3 Range Land, 4 Deciduous forest, 5 Coniferous forest, 6 Forest/wetland, 7 Water, 8 Wetlands, 9 Desert, 10 Tundra, 11 Ice, 12 Tropical forest, 13 Savannah)", ConvertNone},
		{"SOILW", "Volumetric soil moisture content", "fraction", ConvertNone},
		{"GFLUX", "Ground heat flux", "W/(m^2)", ConvertNone},
		{"MSTAV", "Moisture availability", "%", ConvertNone},
		{"SFEXC", "Exchange coefficient", "(kg/(m^3))(m/s)", ConvertNone},
		{"CNWAT", "Plant canopy surface water", "kg/(m^2)", ConvertNone},
		{"BMIXL", "Blackadar's mixing length scale", "m", ConvertNone},
		{"CCOND", "Canopy conductance", "m/s", ConvertNone},
		{"RSMIN", "Minimal stomatal resistance", "s/m", ConvertNone},
		{"WILT", "Wilting point", "fraction", ConvertNone},
		{"RCS", "Solar parameter in canopy conductance", "fraction", ConvertNone},
		{"RCT", "Temperature parameter in canopy conductance", "fraction", ConvertNone},
		{"RCSOL", "Soil moisture parameter in canopy conductance", "fraction", ConvertNone},
		{"RCQ", "Humidity parameter in canopy conductance", "fraction", ConvertNone},
	},
	// 2.3 Soil products
	{Discipline: 2, Category: 3}: {
		{"SOTYP", "Soil type", "(1 Sand, 2 Loamy sand, 3 Sandy loam, 4 Silt loam, 5 Organic (redefined), 6 Sandy clay loam, 7 Silt clay loam, 8 Clay loam, 9 Sandy clay, 10 Silty clay, 11 Clay)", ConvertNone},
		{"", "Upper layer soil temperature", "K", ConvertNone},
		{"", "Upper layer soil moisture", "kg/(m^3)", ConvertNone},
		{"", "Lower layer soil moisture", "kg/(m^3)", ConvertNone},
		{"", "Bottom layer soil temperature", "K", ConvertNone},
		{"SOILL", "Liquid volumetric soil moisture (non-frozen)", "fraction", ConvertNone},
		{"RLYRS", "Number of soil layers in root zone", "-", ConvertNone},
		{"SMREF", "Transpiration stress-onset (soil moisture)", "fraction", ConvertNone},
		{"SMDRY", "Direct evaporation cease (soil moisture)", "fraction", ConvertNone},
		{"POROS", "Soil porosity", "fraction", ConvertNone},
	},
	// 3.0 Image format products
	{Discipline: 3, Category: 0}: {
		{"", "Scaled radiance", "numeric", ConvertNone},
		{"", "Scaled albedo", "numeric", ConvertNone},
		{"", "Scaled brightness temperature", "numeric", ConvertNone},
		{"", "Scaled precipitable water", "numeric", ConvertNone},
		{"", "Scaled lifted index", "numeric", ConvertNone},
		{"", "Scaled cloud top pressure", "numeric", ConvertNone},
		{"", "Scaled skin temperature", "numeric", ConvertNone},
		{"", "Cloud mask", "(0 clear over water, 1 clear over land, 2 cloud)", ConvertNone},
		{"", "Pixel scene type", "(0 No scene, 1 needle, 2 broad-leafed, 3 Deciduous needle, 4 Deciduous broad-leafed, 5 Deciduous mixed, 6 Closed shrub, 7 Open shrub, 8 Woody savannah, 9 Savannah, 10 Grassland, 11 wetland, 12 Cropland, 13 Urban, 14 crops, 15 snow, 16 Desert, 17 Water, 18 Tundra, 97 Snow on land, 98 Snow on water, 99 Sun-glint, 100 General cloud, 101 (fog, Stratus), 102 Stratocumulus, 103 Low cloud, 104 Nimbotratus, 105 Altostratus, 106 Medium cloud, 107 Cumulus, 108 Cirrus, 109 High cloud, 110 Unknown cloud)", ConvertNone},
	},
	// 3.1 Quantitative products
	{Discipline: 3, Category: 1}: {
		{"", "Estimated precipitation", "kg/(m^2)", ConvertNone},
		{"", "Instantaneous rain rate", "kg/(m^2*s)", ConvertNone},
		{"", "Cloud top height", "kg/(m^2*s)", ConvertNone},
		{"", "Cloud top height quality indicator", "(0 Nominal cloud top height quality, 1 Fog in segment, 2 Poor quality height estimation 3 Fog in segment and poor quality height estimation)", ConvertNone},
		{"", "Estimated u component of wind", "m/s", ConvertNone},
		{"", "Estimated v component of wind", "m/s", ConvertNone},
	},
	// 10.0 Waves
	{Discipline: 10, Category: 0}: {
		{"WVSP1", "Wave spectra (1)", "-", ConvertNone},
		{"WVSP2", "Wave spectra (2)", "-", ConvertNone},
		{"WVSP3", "Wave spectra (3)", "-", ConvertNone},
		{"HTSGW", "Significant height of combined wind waves and swell", "m", ConvertNone},
		{"WVDIR", "Direction of wind waves", "Degree true", ConvertNone},
		{"WVHGT", "Significant height of wind waves", "m", ConvertM2Feet},
		{"WVPER", "Mean period of wind waves", "s", ConvertNone},
		{"SWDIR", "Direction of swell waves", "Degree true", ConvertNone},
		{"SWELL", "Significant height of swell waves", "m", ConvertNone},
		{"SWPER", "Mean period of swell waves", "s", ConvertNone},
		{"DIRPW", "Primary wave direction", "Degree true", ConvertNone},
		{"PERPW", "Primary wave mean period", "s", ConvertNone},
		{"DIRSW", "Secondary wave direction", "Degree true", ConvertNone},
		{"PERSW", "Secondary wave mean period", "s", ConvertNone},
	},
	// 10.1 Currents
	{Discipline: 10, Category: 1}: {
		{"DIRC", "Current direction", "Degree true", ConvertNone},
		{"SPC", "Current speed", "m/s", ConvertNone},
		{"UOGRD", "u-component of current", "m/s", ConvertNone},
		{"VOGRD", "v-component of current", "m/s", ConvertNone},
	},
	// 10.2 Ice
	{Discipline: 10, Category: 2}: {
		{"ICEC", "Ice cover", "Proportion", ConvertNone},
		{"ICETK", "Ice thinkness", "m", ConvertNone},
		{"DICED", "Direction of ice drift", "Degree true", ConvertNone},
		{"SICED", "Speed of ice drift", "m/s", ConvertNone},
		{"UICE", "u-component of ice drift", "m/s", ConvertNone},
		{"VICE", "v-component of ice drift", "m/s", ConvertNone},
		{"ICEG", "Ice growth rate", "m/s", ConvertNone},
		{"ICED", "Ice divergence", "1/s", ConvertNone},
	},
	// 10.3 Surface properties
	{Discipline: 10, Category: 3}: {
		{"WTMP", "Water temperature", "K", ConvertNone},
		{"DSLM", "Deviation of sea level from mean", "m", ConvertNone},
	},
	// 10.4 Sub-surface properties
	{Discipline: 10, Category: 4}: {
		{"MTHD", "Main thermocline depth", "m", ConvertNone},
		{"MTHA", "Main thermocline anomaly", "m", ConvertNone},
		{"TTHDP", "Transient thermocline depth", "m", ConvertNone},
		{"SALTY", "Salinity", "kg/kg", ConvertNone},
	},
	// 10.191 Miscellaneous
	{Discipline: 10, Category: 191}: {
		{"TSEC", "Seconds prior to initial reference time (defined in Section 1)", "s", ConvertNone},
		{"MOSF", "Meridional overturning stream function", "m^3/s", ConvertNone},
	},
}
