package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"testing/fstest"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/fixtures"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

func writeCSV(t *testing.T, rows [][]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.WriteAll(rows))
	return buf.Bytes()
}

// centerFile renders the compiled-in center names, with overrides applied.
func centerFile(t *testing.T, overrides map[int]string) []byte {
	t.Helper()
	rows := [][]string{{"code", "name"}}
	for code := 0; code <= maxCode; code++ {
		name, ok := gribmeta.BuiltinTables{}.CenterName(code)
		if o, has := overrides[code]; has {
			name, ok = o, true
		}
		if ok {
			rows = append(rows, []string{strconv.Itoa(code), name})
		}
	}
	return writeCSV(t, rows)
}

func temperatureFile(t *testing.T, overrideRow int, shortName string) []byte {
	t.Helper()
	rows := [][]string{{"subcat", "short_name", "name", "unit", "unit_conv"}}
	for _, table := range (gribmeta.BuiltinTables{}).ParameterTables() {
		if table.Discipline != 0 || table.Category != 0 {
			continue
		}
		for i, p := range table.Rows {
			name := p.ShortName
			if i == overrideRow {
				name = shortName
			}
			rows = append(rows, []string{strconv.Itoa(i), name, p.Name, p.Unit, p.Convert.String()})
		}
	}
	return writeCSV(t, rows)
}

func tables(fsys fstest.MapFS) (gribmeta.TableProvider, gribmeta.TableProvider) {
	return gribmeta.NewCSVProvider(fsys, nil, nil), gribmeta.BuiltinTables{}
}

func TestValidateNames(t *testing.T) {
	t.Run("matching", func(t *testing.T) {
		fsys := fstest.MapFS{gribmeta.FileCenters: {Data: centerFile(t, nil)}}
		csvTables, builtin := tables(fsys)
		p := validateNames(fsys, csvTables, builtin)
		assert.True(t, p.passed(), p.errors)
		assert.Empty(t, p.skipped)
	})

	t.Run("renamed center", func(t *testing.T) {
		fsys := fstest.MapFS{gribmeta.FileCenters: {Data: centerFile(t, map[int]string{7: "NCEP"})}}
		csvTables, builtin := tables(fsys)
		p := validateNames(fsys, csvTables, builtin)
		require.Len(t, p.errors, 1)
		assert.Contains(t, p.errors[0], `compiled="US-NCEP" csv="NCEP"`)
	})

	t.Run("no files", func(t *testing.T) {
		fsys := fstest.MapFS{}
		csvTables, builtin := tables(fsys)
		p := validateNames(fsys, csvTables, builtin)
		assert.True(t, p.passed())
		assert.Equal(t, "no name files", p.skipped)
	})
}

func TestValidateParameters(t *testing.T) {
	file := gribmeta.ParameterFile(0, 0)

	t.Run("matching", func(t *testing.T) {
		fsys := fstest.MapFS{file: {Data: temperatureFile(t, -1, "")}}
		csvTables, builtin := tables(fsys)
		p := validateParameters(fsys, csvTables, builtin)
		assert.True(t, p.passed(), p.errors)
	})

	t.Run("renamed row", func(t *testing.T) {
		fsys := fstest.MapFS{file: {Data: temperatureFile(t, 6, "DEWPT")}}
		csvTables, builtin := tables(fsys)
		p := validateParameters(fsys, csvTables, builtin)
		require.Len(t, p.errors, 1)
		assert.Contains(t, p.errors[0], "0.0.6")
	})
}

func TestValidateSurfaces_Absent(t *testing.T) {
	fsys := fstest.MapFS{}
	csvTables, builtin := tables(fsys)
	p := validateSurfaces(fsys, csvTables, builtin)
	assert.True(t, p.passed())
	assert.Contains(t, p.skipped, gribmeta.FileSurfaces)
}

func labeledFixtures(t *testing.T) ([]domain.GribRecord, []domain.LabeledRecord) {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(fixtures.ProcessedAt))
	t.Cleanup(func() { domain.SetClock(nil) })

	raw := fixtures.Records()
	l := domain.NewLabeler(nil, calendar.NewEngine(calendar.FixedZone(0), nil), domain.LabelOptions{Units: gribmeta.UnitsEnglish})
	labeled := make([]domain.LabeledRecord, len(raw))
	for i, rec := range raw {
		labeled[i] = l.Label(rec)
	}

	// Round-trip through JSON as the fixture files do.
	data, err := json.Marshal(labeled)
	require.NoError(t, err)
	var decoded []domain.LabeledRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	return raw, decoded
}

func TestValidateFixtures(t *testing.T) {
	t.Run("matching", func(t *testing.T) {
		raw, labeled := labeledFixtures(t)
		p := validateFixtures(raw, labeled, gribmeta.UnitsEnglish)
		assert.True(t, p.passed(), p.errors)
	})

	t.Run("tampered element", func(t *testing.T) {
		raw, labeled := labeledFixtures(t)
		labeled[2].Element = "TEMP"
		p := validateFixtures(raw, labeled, gribmeta.UnitsEnglish)
		require.Len(t, p.errors, 1)
		assert.Contains(t, p.errors[0], "record 2")
	})

	t.Run("count mismatch", func(t *testing.T) {
		raw, labeled := labeledFixtures(t)
		p := validateFixtures(raw, labeled[1:], gribmeta.UnitsEnglish)
		require.Len(t, p.errors, 1)
		assert.Contains(t, p.errors[0], "count mismatch")
	})
}

func TestRun_Report(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, gribmeta.FileCenters), centerFile(t, map[int]string{8: "NWS"}), 0o600))

	var out bytes.Buffer
	code := run(&out, dir, "", "", "english")
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Phase 3: Center and process names")
	assert.Contains(t, out.String(), "SKIP (no parameter files)")
	assert.Contains(t, out.String(), "Validation FAILED.")
}
