package gribmeta

// centerNames is WMO common code table C-11 (originating centres).
var centerNames = map[int]string{
	0:   "WMO Secretariat",
	1:   "Melbourne",
	2:   "Melbourne",
	3:   "Melbourne",
	4:   "Moscow",
	5:   "Moscow",
	6:   "Moscow",
	7:   "US-NCEP",
	8:   "US-NWSTG",
	9:   "US-Other",
	10:  "Cairo",
	11:  "Cairo",
	12:  "Dakar",
	13:  "Dakar",
	14:  "Nairobi",
	15:  "Nairobi",
	16:  "Casablanca",
	17:  "Tunis",
	18:  "Tunis Casablanca",
	19:  "Tunis Casablanca",
	20:  "Las Palmas",
	21:  "Algiers",
	22:  "ACMAD",
	23:  "Mozambique",
	24:  "Pretoria",
	25:  "La Réunion",
	26:  "Khabarovsk",
	27:  "Khabarovsk",
	28:  "New Delhi",
	29:  "New Delhi",
	30:  "Novosibirsk",
	31:  "Novosibirsk",
	32:  "Tashkent",
	33:  "Jeddah",
	34:  "Tokyo",
	35:  "Tokyo",
	36:  "Bangkok",
	37:  "Ulan Bator",
	38:  "Beijing",
	39:  "Beijing",
	40:  "Seoul",
	41:  "Buenos Aires",
	42:  "Buenos Aires",
	43:  "Brasilia",
	44:  "Brasilia",
	45:  "Santiago",
	46:  "Brazilian Space Agency",
	47:  "Colombia",
	48:  "Ecuador",
	49:  "Peru",
	50:  "Venezuela",
	51:  "Miami",
	52:  "Miami-NHC",
	53:  "Montreal",
	54:  "Montreal",
	55:  "San Francisco",
	56:  "ARINC Centre",
	57:  "US-Air Force Weather",
	58:  "US-Fleet Meteorology and Oceanography",
	59:  "US-FSL",
	60:  "US-NCAR",
	61:  "US-Service ARGOS",
	62:  "US-Naval Oceanographic Office",
	64:  "Honolulu",
	65:  "Darwin",
	66:  "Darwin",
	67:  "Melbourne",
	69:  "Wellington",
	70:  "Wellington",
	71:  "Nadi",
	72:  "Singapore",
	73:  "Malaysia",
	74:  "UK-Met-Exeter",
	75:  "UK-Met-Exeter",
	76:  "Moscow",
	78:  "Offenbach",
	79:  "Offenbach",
	80:  "Rome",
	81:  "Rome",
	82:  "Norrköping",
	83:  "Norrköping",
	84:  "Toulouse",
	85:  "Toulouse",
	86:  "Helsinki",
	87:  "Belgrade",
	88:  "Oslo",
	89:  "Prague",
	90:  "Episkopi",
	91:  "Ankara",
	92:  "Frankfurt/Main",
	93:  "London",
	94:  "Copenhagen",
	95:  "Rota",
	96:  "Athens",
	97:  "ESA-European Space Agency",
	98:  "ECMWF",
	99:  "DeBilt",
	100: "Brazzaville",
	101: "Abidjan",
	102: "Libyan Arab Jamahiriya",
	103: "Madagascar",
	104: "Mauritius",
	105: "Niger",
	106: "Seychelles",
	107: "Uganda",
	108: "Tanzania",
	109: "Zimbabwe",
	110: "Hong-Kong, China",
	111: "Afghanistan",
	112: "Bahrain",
	113: "Bangladesh",
	114: "Bhutan",
	115: "Cambodia",
	116: "Democratic People's Republic of Korea",
	117: "Islamic Republic of Iran",
	118: "Iraq",
	119: "Kazakhstan",
	120: "Kuwait",
	121: "Kyrgyz Republic",
	122: "Lao People's Democratic Republic",
	123: "Macao, China",
	124: "Maldives",
	125: "Myanmar",
	126: "Nepal",
	127: "Oman",
	128: "Pakistan",
	129: "Qatar",
	130: "Republic of Yemen",
	131: "Sri Lanka",
	132: "Tajikistan",
	133: "Turkmenistan",
	134: "United Arab Emirates",
	135: "Uzbekistan",
	136: "Socialist Republic of Viet Nam",
	140: "Bolivia",
	141: "Guyana",
	142: "Paraguay",
	143: "Suriname",
	144: "Uruguay",
	145: "French Guyana",
	146: "Brazilian Navy Hydrographic Centre",
	150: "Antigua and Barbuda",
	151: "Bahamas",
	152: "Barbados",
	153: "Belize",
	154: "British Caribbean Territories",
	155: "San Jose",
	156: "Cuba",
	157: "Dominica",
	158: "Dominican Republic",
	159: "El Salvador",
	160: "US-NESDIS",
	161: "US-OAR",
	162: "Guatemala",
	163: "Haiti",
	164: "Honduras",
	165: "Jamaica",
	166: "Mexico",
	167: "Netherlands Antilles and Aruba",
	168: "Nicaragua",
	169: "Panama",
	170: "Saint Lucia NMC",
	171: "Trinidad and Tobago",
	172: "French Departments",
	190: "Cook Islands",
	191: "French Polynesia",
	192: "Tonga",
	193: "Vanuatu",
	194: "Brunei",
	195: "Indonesia",
	196: "Kiribati",
	197: "Federated States of Micronesia",
	198: "New Caledonia",
	199: "Niue",
	200: "Papua New Guinea",
	201: "Philippines",
	202: "Samoa",
	203: "Solomon Islands",
	210: "Frascati (ESA/ESRIN)",
	211: "Lanion",
	212: "Lisboa",
	213: "Reykiavik",
	214: "Madrid",
	215: "Zürich",
	216: "Service ARGOS Toulouse",
	217: "Bratislava",
	218: "Budapest",
	219: "Ljubljana",
	220: "Warsaw",
	221: "Zagreb",
	222: "Albania",
	223: "Armenia",
	224: "Austria",
	225: "Azerbaijan",
	226: "Belarus",
	227: "Belgium",
	228: "Bosnia and Herzegovina",
	229: "Bulgaria",
	230: "Cyprus",
	231: "Estonia",
	232: "Georgia",
	233: "Dublin",
	234: "Israel",
	235: "Jordan",
	236: "Latvia",
	237: "Lebanon",
	238: "Lithuania",
	239: "Luxembourg",
	240: "Malta",
	241: "Monaco",
	242: "Romania",
	243: "Syrian Arab Republic",
	244: "The former Yugoslav Republic of Macedonia",
	245: "Ukraine",
	246: "Republic of Moldova",
	254: "EUMETSAT Operation Centre",
	256: "Angola",
	257: "Benin",
	258: "Botswana",
	259: "Burkina Faso",
	260: "Burundi",
	261: "Cameroon",
	262: "Cape Verde",
	263: "Central African republic",
	264: "Chad",
	265: "Comoros",
	266: "Democratic Republic of the Congo",
	267: "Djibouti",
	268: "Eritrea",
	269: "Ethiopia",
	270: "Gabon",
	271: "Gambia",
	272: "Ghana",
	273: "Guinea",
	274: "Guinea Bissau",
	275: "Lesotho",
	276: "Liberia",
	277: "Malawi",
	278: "Mali",
	279: "Mauritania",
	280: "Namibia",
	281: "Nigeria",
	282: "Rwanda",
	283: "Sao Tome and Principe",
	284: "Sierra Leone",
	285: "Somalia",
	286: "Sudan",
	287: "Swaziland",
	288: "Togo",
	289: "Zambia",
}

// subCenterNames is keyed by originating centre then sub-centre.
var subCenterNames = map[[2]int]string{
	{7, 1}:     "NCEP Re-Analysis Project",
	{7, 2}:     "NCEP Ensemble Products",
	{7, 3}:     "NCEP Central Operations",
	{7, 4}:     "Environmental Modeling Center",
	{7, 5}:     "Hydrometeorological Prediction Center",
	{7, 6}:     "Ocean Prediction Center",
	{7, 7}:     "Climate Prediction Center",
	{7, 8}:     "Aviation Weather Center",
	{7, 9}:     "Storm Prediction Center",
	{7, 10}:    "Tropical Prediction Center",
	{7, 11}:    "Techniques Development Laboratory",
	{7, 12}:    "NESDIS Office of Research and Applications",
	{7, 13}:    "FAA",
	{7, 14}:    "Meteorological Development Laboratory (MDL)",
	{7, 15}:    "North American Regional Reanalysis (NARR) Project",
	{7, 16}:    "Space Environment Center",
	{8, 0}:     "National Digital Forecast Database",
	{161, 1}:   "Great Lakes Environmental Research Laboratory",
	{161, 2}:   "Forecast Systems Laboratory",
	{74, 1}:    "Shanwick Oceanic Area Control Centre",
	{74, 2}:    "Fucino",
	{74, 3}:    "Gatineau",
	{74, 4}:    "Maspalomas",
	{74, 5}:    "ESA ERS Central Facility",
	{74, 6}:    "Prince Albert",
	{74, 7}:    "West Freugh",
	{74, 13}:   "Tromso",
	{74, 21}:   "Agenzia Spaziale Italiana (Italy)",
	{74, 22}:   "Centre National de la Recherche Scientifique (France)",
	{74, 23}:   "GeoForschungsZentrum (Germany)",
	{74, 24}:   "Geodetic Observatory Pecny (Czech Republic)",
	{74, 25}:   "Institut d'Estudis Espacials de Catalunya (Spain)",
	{74, 26}:   "Swiss Federal Office of Topography",
	{74, 27}:   "Nordic Commission of Geodesy (Norway)",
	{74, 28}:   "Nordic Commission of Geodesy (Sweden)",
	{74, 29}:   "Institute de Geodesie National (France)",
	{74, 30}:   "Bundesamt für Kartographie und Geodäsie (Germany)",
	{74, 31}:   "Institute of Engineering Satellite Surveying and Geodesy (U.K.)",
	{254, 10}:  "Tromso (Norway)",
	{254, 30}:  "Kangerlussuaq (Greenland)",
	{254, 40}:  "Edmonton (Canada)",
	{254, 50}:  "Bedford (Canada)",
	{254, 60}:  "Gander (Canada)",
	{254, 70}:  "Monterey (USA)",
	{254, 80}:  "Wallops Island (USA)",
	{254, 90}:  "Gilmor Creek (USA)",
	{254, 100}: "Athens (Greece)",
	{98, 231}:  "CNRM, Meteo France Climate Centre (HIRETYCS)",
	{98, 232}:  "MPI, Max Planck Institute Climate Centre (HIRETYCS)",
	{98, 233}:  "UKMO Climate Centre (HIRETYCS)",
	{98, 234}:  "ECMWF (DEMETER)",
	{98, 235}:  "INGV-CNR (Bologna, Italy)(DEMETER)",
	{98, 236}:  "LODYC (Paris, France)(DEMETER)",
	{98, 237}:  "DMI (Copenhagen, Denmark)(DEMETER)",
	{98, 238}:  "INM (Madrid, Spain)(DEMETER)",
	{98, 239}:  "CERFACS (Toulouse, France)(DEMETER)",
	{98, 240}:  "ECMWF (PROVOST)",
	{98, 241}:  "Meteo France (PROVOST)",
	{98, 242}:  "EDF (PROVOST)",
	{98, 243}:  "UKMO (PROVOST)",
	{98, 244}:  "Biometeorology group, University of Veterinary Medicine, Vienna (ELDAS)",
}

// processNames is keyed by originating centre then generating process.
var processNames = map[[2]int]string{
	{7, 2}:   "Ultra Violet Index Model",
	{7, 3}:   "NCEP/ARL Transport and Dispersion Model",
	{7, 4}:   "NCEP/ARL Smoke Model",
	{7, 5}:   "Satellite Derived Precipitation and temperatures, from IR",
	{7, 10}:  "Global Wind-Wave Forecast Model",
	{7, 19}:  "Limited-area Fine Mesh (LFM) analysis",
	{7, 25}:  "Snow Cover Analysis",
	{7, 30}:  "Forecaster generated field",
	{7, 31}:  "Value added post processed field",
	{7, 39}:  "Nested Grid forecast Model (NGM)",
	{7, 42}:  "Global Optimum Interpolation Analysis (GOI) from GFS model",
	{7, 43}:  "Global Optimum Interpolation Analysis (GOI) from 'Final' run",
	{7, 44}:  "Sea Surface Temperature Analysis",
	{7, 45}:  "Coastal Ocean Circulation Model",
	{7, 46}:  "HYCOM - Global",
	{7, 47}:  "HYCOM - North Pacific basin",
	{7, 48}:  "HYCOM - North Atlantic basin",
	{7, 49}:  "Ozone Analysis from TIROS Observations",
	{7, 52}:  "Ozone Analysis from Nimbus 7 Observations",
	{7, 53}:  "LFM-Fourth Order Forecast Model",
	{7, 64}:  "Regional Optimum Interpolation Analysis (ROI)",
	{7, 68}:  "80 wave triangular, 18-layer Spectral model from GFS model",
	{7, 69}:  "80 wave triangular, 18 layer Spectral model from 'Medium Range Forecast' run",
	{7, 70}:  "Quasi-Lagrangian Hurricane Model (QLM)",
	{7, 73}:  "Fog Forecast model - Ocean Prod. Center",
	{7, 74}:  "Gulf of Mexico Wind/Wave",
	{7, 75}:  "Gulf of Alaska Wind/Wave",
	{7, 76}:  "Bias corrected Medium Range Forecast",
	{7, 77}:  "126 wave triangular, 28 layer Spectral model from GFS model",
	{7, 78}:  "126 wave triangular, 28 layer Spectral model from 'Medium Range Forecast' run",
	{7, 79}:  "Backup from the previous run",
	{7, 80}:  "62 wave triangular, 28 layer Spectral model from 'Medium Range Forecast' run",
	{7, 81}:  "Spectral Statistical Interpolation (SSI) analysis from GFS model",
	{7, 82}:  "Spectral Statistical Interpolation (SSI) analysis from 'Final' run.",
	{7, 84}:  "MESO ETA Model (currently 12 km)",
	{7, 86}:  "RUC Model from FSL (isentropic; scale: 60km at 40N)",
	{7, 87}:  "CAC Ensemble Forecasts from Spectral (ENSMB)",
	{7, 88}:  "NOAA Wave Watch III (NWW3) Ocean Wave Model",
	{7, 89}:  "Non-hydrostatic Meso Model (NMM) Currently 8 km)",
	{7, 90}:  "62 wave triangular, 28 layer spectral model extension of the 'Medium Range Forecast' run",
	{7, 91}:  "62 wave triangular, 28 layer spectral model extension of the GFS model",
	{7, 92}:  "62 wave triangular, 28 layer spectral model run from the 'Medium Range Forecast' final analysis",
	{7, 93}:  "62 wave triangular, 28 layer spectral model run from the T62 GDAS analysis of the 'Medium Range Forecast' run",
	{7, 94}:  "T170/L42 Global Spectral Model from MRF run",
	{7, 95}:  "T126/L42 Global Spectral Model from MRF run",
	{7, 96}:  "Global Forecast System Model",
	{7, 98}:  "Climate Forecast System Model",
	{7, 100}: "RUC Surface Analysis (scale: 60km at 40N)",
	{7, 101}: "RUC Surface Analysis (scale: 40km at 40N)",
	{7, 105}: "RUC Model from FSL (isentropic; scale: 20km at 40N)",
	{7, 110}: "ETA Model - 15km version",
	{7, 111}: "Eta model, generic resolution",
	{7, 112}: "WRF-NMM (Nondydrostatic Mesoscale Model) model, generic resolution",
	{7, 113}: "Products from NCEP SREF processing",
	{7, 115}: "Downscaled GFS from Eta eXtension",
	{7, 116}: "WRF-EM (Eulerian Mass-core) model, generic resolution ",
	{7, 120}: "Ice Concentration Analysis",
	{7, 121}: "Western North Atlantic Regional Wave Model",
	{7, 122}: "Alaska Waters Regional Wave Model",
	{7, 123}: "North Atlantic Hurricane Wave Model",
	{7, 124}: "Eastern North Pacific Regional Wave Model",
	{7, 125}: "North Pacific Hurricane Wave Model",
	{7, 126}: "Sea Ice Forecast Model",
	{7, 127}: "Lake Ice Forecast Model",
	{7, 128}: "Global Ocean Forecast Model",
	{7, 129}: "Global Ocean Data Analysis System (GODAS)",
	{7, 130}: "Merge of fields from the RUC, Eta, and Spectral Model",
	{7, 131}: "Great Lakes Wave Model",
	{7, 140}: "North American Regional Reanalysis (NARR)",
	{7, 141}: "Land Data Assimilation and Forecast System",
	{7, 150}: "NWS River Forecast System (NWSRFS)",
	{7, 151}: "NWS Flash Flood Guidance System (NWSFFGS)",
	{7, 152}: "WSR-88D Stage II Precipitation Analysis",
	{7, 153}: "WSR-88D Stage III Precipitation Analysis",
	{7, 180}: "Quantitative Precipitation Forecast",
	{7, 181}: "River Forecast Center Quantitative Precipitation Forecast mosaic",
	{7, 182}: "River Forecast Center Quantitative Precipitation estimate mosaic",
	{7, 183}: "NDFD product generated by NCEP/HPC",
	{7, 190}: "National Convective Weather Diagnostic",
	{7, 191}: "Current Icing Potential automated product",
	{7, 192}: "Analysis product from NCEP/AWC",
	{7, 193}: "Forecast product from NCEP/AWC",
	{7, 195}: "Climate Data Assimilation System 2 (CDAS2)",
	{7, 196}: "Climate Data Assimilation System 2 (CDAS2)",
	{7, 197}: "Climate Data Assimilation System (CDAS)",
	{7, 198}: "Climate Data Assimilation System (CDAS)",
	{7, 200}: "CPC Manual Forecast Product",
	{7, 201}: "CPC Automated Product",
	{7, 210}: "EPA Air Quality Forecast",
	{7, 211}: "EPA Air Quality Forecast",
	{7, 220}: "NCEP/OPC automated product",
}
