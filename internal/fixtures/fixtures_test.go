package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/fixtures"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

func TestCases_ResolveToExpectedElement(t *testing.T) {
	l := domain.NewLabeler(nil, calendar.NewEngine(calendar.FixedZone(0), nil),
		domain.LabelOptions{Units: gribmeta.UnitsEnglish})

	for _, c := range fixtures.Cases() {
		t.Run(c.Name, func(t *testing.T) {
			got := l.Label(c.Record)
			assert.Equal(t, c.Element, got.Element)
			assert.Equal(t, c.Class, got.Class)
			assert.Equal(t, c.Element == "unknown", got.Unresolved)
		})
	}
}

func TestRecords_FreshCopies(t *testing.T) {
	a := fixtures.Records()
	a[0].Center = 255
	assert.Equal(t, gribmeta.CenterNWSTG, fixtures.Records()[0].Center)
}
