package gribmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestResolveNormal(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name string
		req  Request
		want Label
	}{
		{
			name: "NDFD temperature uses NDFD abbreviation",
			req:  Request{Center: 8, SubCenter: 0, Discipline: 0, Category: 0, Subcategory: 0},
			want: Label{Name: "T", Comment: "Temperature", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "NDFD with missing sub-center",
			req:  Request{Center: 8, SubCenter: 65535, Discipline: 0, Category: 2, Subcategory: 1},
			want: Label{Name: "WindSpd", Comment: "Wind speed", Unit: "[m/s]", Convert: ConvertMS2Knots},
		},
		{
			name: "MOS precipitation without period keeps the zero suffix",
			req:  Request{Center: 7, SubCenter: 14, Discipline: 0, Category: 1, Subcategory: 8},
			want: Label{Name: "QPF00", Comment: "00 hr Total precipitation", Unit: "[kg/(m^2)]", Convert: ConvertInchWater},
		},
		{
			name: "MOS precipitation with period",
			req:  Request{Center: 7, SubCenter: 14, Discipline: 0, Category: 1, Subcategory: 8, LengthOfTime: 6},
			want: Label{Name: "QPF06", Comment: "06 hr Total precipitation", Unit: "[kg/(m^2)]", Convert: ConvertInchWater},
		},
		{
			name: "MOS snow over months",
			req:  Request{Center: 7, SubCenter: 14, Discipline: 0, Category: 1, Subcategory: 29, LengthOfTime: 3, TimeRangeUnit: 3},
			want: Label{Name: "SnowAmt03m", Comment: "03 mon Total snowfall", Unit: "[m]", Convert: ConvertM2Inch},
		},
		{
			name: "NDFD evapotranspiration departure",
			req:  Request{Center: 8, Discipline: 0, Category: 1, Subcategory: 6, LengthOfTime: 24, StatProcess: 10},
			want: Label{Name: "EvpDep24", Comment: "24 hr Evapo-Transpiration departure from normal", Unit: "[kg/(m^2)]"},
		},
		{
			name: "NDFD evapotranspiration",
			req:  Request{Center: 8, Discipline: 0, Category: 1, Subcategory: 6, LengthOfTime: 24, StatProcess: 1},
			want: Label{Name: "Evp24", Comment: "24 hr Evapo-Transpiration", Unit: "[kg/(m^2)]"},
		},
		{
			name: "generic temperature from NCEP",
			req:  Request{Center: 7, SubCenter: 0, Discipline: 0, Category: 0, Subcategory: 0},
			want: Label{Name: "TMP", Comment: "Temperature", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "accumulated precipitation hours",
			req:  Request{Center: 7, SubCenter: 2, Discipline: 0, Category: 1, Subcategory: 8, LengthOfTime: 12},
			want: Label{Name: "APCP12", Comment: "12 hr Total precipitation", Unit: "[kg/(m^2)]", Convert: ConvertInchWater},
		},
		{
			name: "accumulated precipitation years",
			req:  Request{Center: 7, SubCenter: 2, Discipline: 0, Category: 1, Subcategory: 8, LengthOfTime: 1, TimeRangeUnit: 4},
			want: Label{Name: "APCP01y", Comment: "01 yr Total precipitation", Unit: "[kg/(m^2)]", Convert: ConvertInchWater},
		},
		{
			name: "thunderstorm probability is accumulated",
			req:  Request{Center: 7, Discipline: 0, Category: 19, Subcategory: 2, LengthOfTime: 3, TimeRangeUnit: 3},
			want: Label{Name: "TSTM03m", Comment: "03 mon Thunderstorm probability", Unit: "[%]"},
		},
		{
			name: "no period suffix outside the accumulated list",
			req:  Request{Center: 7, Discipline: 0, Category: 0, Subcategory: 4, LengthOfTime: 12},
			want: Label{Name: "TMAX", Comment: "Maximum Temperature", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "short name falls back to long name",
			req:  Request{Center: 7, Discipline: 0, Category: 0, Subcategory: 14},
			want: Label{Name: "Minimum dew point depression", Comment: "Minimum dew point depression", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "NCEP local table",
			req:  Request{Center: 7, SubCenter: 0, Discipline: 0, Category: 1, Subcategory: 192},
			want: Label{Name: "CRAIN", Comment: "Categorical Rain", Unit: "[(0 no; 1 yes)]"},
		},
		{
			name: "HPC local table",
			req:  Request{Center: 7, SubCenter: 5, Discipline: 0, Category: 1, Subcategory: 192},
			want: Label{Name: "HPC-Wx", Comment: "HPC Code", Unit: "[-]"},
		},
		{
			name: "NDFD local table",
			req:  Request{Center: 8, Discipline: 0, Category: 1, Subcategory: 192},
			want: Label{Name: "Wx", Comment: "Weather string", Unit: "[-]"},
		},
		{
			name: "master version 255 skips generic tables",
			req:  Request{Center: 7, MasterVersion: 255, Discipline: 0, Category: 0, Subcategory: 0},
			want: Label{Name: "unknown", Comment: "(prodType 0, cat 0, subcat 0)", Unit: "[-]"},
		},
		{
			name: "unknown discipline",
			req:  Request{Center: 7, Discipline: 99, Category: 1, Subcategory: 2},
			want: Label{Name: "unknown", Comment: "(prodType 99, cat 1, subcat 2)", Unit: "[-]"},
		},
		{
			name: "unknown center has no local table",
			req:  Request{Center: 98, Discipline: 0, Category: 1, Subcategory: 192},
			want: Label{Name: "unknown", Comment: "(prodType 0, cat 1, subcat 192)", Unit: "[-]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveNormal(tt.req))
		})
	}
}

func TestResolveNormal_MRMSLocal(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name      string
		subCenter int
		cat, sub  int
		want      Label
	}{
		{"precipitation rate", 0, 6, 1, Label{Name: "PrecipRate", Comment: "Radar Precipitation Rate", Unit: "[mm/hr]", Convert: ConvertNone}},
		{"composite reflectivity", 0, 10, 0, Label{Name: "MergedReflectivityQCComposite", Comment: "Composite Reflectivity Mosaic (optimal method)", Unit: "[dBZ]", Convert: ConvertNone}},
		{"any sub-center", 2, 3, 2, Label{Name: "RotationTrack30min", Comment: "Rotation Track 0-2km AGL 30-min", Unit: "[0.001/s]", Convert: ConvertNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Center: CenterOAR, SubCenter: tt.subCenter, Discipline: 209, Category: tt.cat, Subcategory: tt.sub}
			assert.Equal(t, tt.want, r.ResolveNormal(req))
		})
	}

	got := r.ResolveNormal(Request{Center: CenterNCEP, Discipline: 209, Category: 6, Subcategory: 1})
	assert.Equal(t, "unknown", got.Name, "MRMS rows are scoped to their center")
}

func TestResolveNormal_Ozone(t *testing.T) {
	r := NewResolver(nil)
	req := Request{Center: 8, Template: 8, Discipline: 0, Category: 14, Subcategory: 193}

	assert.Equal(t, Label{Name: "AVGOZCON", Comment: "Average Ozone Concentration", Unit: "[PPB]"}, r.ResolveNormal(req))

	req.LengthOfTime = 8
	assert.Equal(t, Label{Name: "Ozone08", Comment: "8 hr Average Ozone Concentration", Unit: "[PPB]"}, r.ResolveNormal(req))

	req.TimeRangeUnit = 3
	assert.Equal(t, "Ozone08m", r.ResolveNormal(req).Name)
	assert.Equal(t, "8 mon Average Ozone Concentration", r.ResolveNormal(req).Comment)
}

func TestResolveNormal_DustAndSmoke(t *testing.T) {
	r := NewResolver(nil)
	base := Request{Center: 7, Discipline: 0, Category: 13, Subcategory: 195}

	tests := []struct {
		name          string
		genID         int
		first, second *float64
		wantName      string
		wantConvert   UnitConversion
	}{
		{"surface dust", 6, ptr(10), ptr(0), "dusts", ConvertLog10},
		{"column dust", 6, ptr(0), ptr(5000), "dustc", ConvertLog10},
		{"surface smoke", 2, ptr(100), ptr(0), "smokes", ConvertLog10},
		{"column smoke", 2, ptr(3000), ptr(0), "smokec", ConvertLog10},
		{"too deep uses local table", 2, ptr(6000), ptr(0), "LIPMF", ConvertLog10},
		{"missing second surface uses local table", 6, ptr(0), nil, "LIPMF", ConvertLog10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.GenID = tt.genID
			req.FirstSurface, req.SecondSurface = tt.first, tt.second

			got := r.ResolveNormal(req)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantConvert, got.Convert)
		})
	}

	got := r.ResolveNormal(Request{Center: 7, Discipline: 0, Category: 13, Subcategory: 195, GenID: 6, FirstSurface: ptr(50), SecondSurface: ptr(0)})
	assert.Equal(t, "Surface level dust", got.Comment)
	assert.Equal(t, "[log10(10^-6g/m^3)]", got.Unit)
}
