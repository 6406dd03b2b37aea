// Package fixtures holds deterministic GRIB records shared by the mock data
// generator and the integration tests.
package fixtures

import (
	"time"

	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

var (
	// Reference is the model run all fixtures share.
	Reference = time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)

	// ProcessedAt is the frozen labeling time used when generating output.
	ProcessedAt = time.Date(2024, time.July, 4, 1, 30, 0, 0, time.UTC)
)

// Case is a record and the element name it must resolve to.
type Case struct {
	Name    string
	Record  domain.GribRecord
	Element string
	Class   gribmeta.Class
}

func hoursAfter(h int) float64 {
	return float64(Reference.Add(time.Duration(h) * time.Hour).Unix())
}

// Cases returns one record per naming path plus an unresolvable one. The
// slice is freshly allocated on each call.
func Cases() []Case {
	ref := float64(Reference.Unix())
	lat, lon := 38.9, -77.0
	layerTop := 0.4

	return []Case{
		{
			Name: "ndfd 2m temperature",
			Record: domain.GribRecord{
				Center: gribmeta.CenterNWSTG, SurfaceType: 103, SurfaceValue: 2,
				ReferenceTime: ref, ValidTime: hoursAfter(12),
				Lat: &lat, Lon: &lon,
				Source: "ds.temp.bin", MessageIndex: 1,
			},
			Element: "T",
			Class:   gribmeta.ClassNormal,
		},
		{
			Name: "ndfd 12 hour pop",
			Record: domain.GribRecord{
				Center: gribmeta.CenterNWSTG, Template: gribmeta.TemplateProbabilityTime,
				Category: 1, Subcategory: 8, LengthOfTime: 12, TimeRangeUnit: 1,
				ProbabilityType: 1, UpperLimit: .254, SurfaceType: 1,
				ReferenceTime: ref, ValidTime: hoursAfter(24),
				Source: "ds.pop12.bin", MessageIndex: 1,
			},
			Element: "PoP12",
			Class:   gribmeta.ClassProbability,
		},
		{
			Name: "gfs 500mb temperature",
			Record: domain.GribRecord{
				Center: gribmeta.CenterNCEP, GenID: 96, SurfaceType: 100, SurfaceValue: 50000,
				ReferenceTime: ref, ValidTime: hoursAfter(6),
				Source: "gfs.t00z.pgrb2.0p25.f006", MessageIndex: 4,
			},
			Element: "TMP",
			Class:   gribmeta.ClassNormal,
		},
		{
			Name: "ndfd 90th percentile temperature",
			Record: domain.GribRecord{
				Center: gribmeta.CenterNWSTG, Template: gribmeta.TemplatePercentileTime,
				Percentile: 90, SurfaceType: 103, SurfaceValue: 2,
				ReferenceTime: ref, ValidTime: hoursAfter(48),
				Source: "ds.temp90.bin", MessageIndex: 1,
			},
			Element: "T90",
			Class:   gribmeta.ClassPercentile,
		},
		{
			Name: "gfs soil layer",
			Record: domain.GribRecord{
				Center: gribmeta.CenterNCEP, Discipline: 2, Category: 0, Subcategory: 192,
				GenID: 96, SurfaceType: 106, SurfaceValue: 0.1,
				SecondSurfaceType: 106, SecondSurfaceValue: &layerTop,
				ReferenceTime: ref, ValidTime: hoursAfter(6),
				Source: "gfs.t00z.pgrb2.0p25.f006", MessageIndex: 9,
			},
			Element: "SOILW",
			Class:   gribmeta.ClassNormal,
		},
		{
			Name: "unknown discipline",
			Record: domain.GribRecord{
				Center: 98, Discipline: 99, SurfaceType: 1,
				ReferenceTime: ref, ValidTime: hoursAfter(3),
				Source: "ecmwf.bin", MessageIndex: 2,
			},
			Element: "unknown",
			Class:   gribmeta.ClassNormal,
		},
	}
}

// Records returns just the records of Cases.
func Records() []domain.GribRecord {
	cases := Cases()
	recs := make([]domain.GribRecord, len(cases))
	for i, c := range cases {
		recs[i] = c.Record
	}
	return recs
}
