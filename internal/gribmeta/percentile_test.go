package gribmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePercentile(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name string
		req  Request
		want Label
	}{
		{
			name: "NDFD temperature",
			req:  Request{Center: 8, Template: 10, Discipline: 0, Category: 0, Subcategory: 0, Percentile: 90},
			want: Label{Name: "T90", Comment: "Temperature Percentile(90)", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "NDFD temperature over a period",
			req:  Request{Center: 8, Template: 10, Discipline: 0, Category: 0, Subcategory: 0, Percentile: 5, LengthOfTime: 6},
			want: Label{Name: "T05", Comment: "06 hr Temperature Percentile(5)", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "MOS snow exceedance",
			req:  Request{Center: 7, SubCenter: 14, Discipline: 0, Category: 1, Subcategory: 29, Percentile: 50, LengthOfTime: 24},
			want: Label{Name: "Snow24e50", Comment: "24 hr Total snowfall Percentile(50)", Unit: "[m]", Convert: ConvertM2Inch},
		},
		{
			name: "NDFD monthly snow exceedance",
			req:  Request{Center: 8, Discipline: 0, Category: 1, Subcategory: 29, Percentile: 10, LengthOfTime: 2, TimeRangeUnit: 3},
			want: Label{Name: "Snow02me10m", Comment: "02 mon Total snowfall Percentile(10)", Unit: "[m]", Convert: ConvertM2Inch},
		},
		{
			name: "generic short name",
			req:  Request{Center: 7, Discipline: 0, Category: 0, Subcategory: 0, Percentile: 25, LengthOfTime: 1, TimeRangeUnit: 4},
			want: Label{Name: "TMP25", Comment: "01 yr Temperature Percentile(25)", Unit: "[K]", Convert: ConvertK2F},
		},
		{
			name: "storm surge uses exceedance",
			req:  Request{Center: 8, Discipline: 10, Category: 3, Subcategory: 192, Percentile: 10},
			want: Label{Name: "Surge90", Comment: "Hurricane Storm Surge Percentile(10)", Unit: "[m]", Convert: ConvertM2Feet},
		},
		{
			name: "NCEP storm surge uses exceedance",
			req:  Request{Center: 7, Discipline: 10, Category: 3, Subcategory: 192, Percentile: 30},
			want: Label{Name: "SURGE70", Comment: "Hurricane Storm Surge Percentile(30)", Unit: "[m]", Convert: ConvertM2Feet},
		},
		{
			name: "local name already ending in digits",
			req:  Request{Center: 8, Discipline: 0, Category: 10, Subcategory: 8, Percentile: 50},
			want: Label{Name: "PoP12", Comment: "Prob of 0.01 In. of Precip Percentile(50)", Unit: "[%]"},
		},
		{
			name: "local table",
			req:  Request{Center: 7, Discipline: 0, Category: 1, Subcategory: 192, Percentile: 75},
			want: Label{Name: "CRAIN75", Comment: "Categorical Rain Percentile(75)", Unit: "[(0 no; 1 yes)]"},
		},
		{
			name: "unknown",
			req:  Request{Center: 7, Discipline: 42, Category: 1, Subcategory: 1, Percentile: 50},
			want: Label{Name: "unknown", Comment: "(prodType 42, cat 1, subcat 1)", Unit: "[-]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolvePercentile(tt.req))
		})
	}
}

func TestEndsInTwoDigits(t *testing.T) {
	assert.True(t, endsInTwoDigits("PoP12"))
	assert.True(t, endsInTwoDigits("12"))
	assert.False(t, endsInTwoDigits("T1"))
	assert.False(t, endsInTwoDigits("7"))
	assert.False(t, endsInTwoDigits(""))
}
