// Command validate checks a directory of CSV code tables against the tables
// compiled into the service, and checks generated mock fixtures against a
// fresh run of the labeler. It reports per-phase pass/fail with details.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -tables /srv/grib2/tables \
//	  -raw-json data/mock/grib_records.json \
//	  -labeled-json data/mock/grib_records_labeled.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/fixtures"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

// maxCode is the largest one-octet table code.
const maxCode = 255

// phase tracks pass/fail for a validation phase.
type phase struct {
	name    string
	skipped string
	errors  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	tablesDir := flag.String("tables", "", "directory of CSV code tables to compare with the compiled-in tables")
	rawJSON := flag.String("raw-json", "", "path to raw record JSON fixture")
	labeledJSON := flag.String("labeled-json", "", "path to labeled record JSON fixture")
	units := flag.String("units", "english", "unit system the labeled fixture was generated with")
	flag.Parse()

	if *tablesDir == "" && (*rawJSON == "" || *labeledJSON == "") {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *tablesDir, *rawJSON, *labeledJSON, *units); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, tablesDir, rawPath, labeledPath, units string) int {
	fmt.Fprintln(out, "=== GRIB2 Table Validation ===")
	fmt.Fprintln(out)

	var phases []*phase

	if tablesDir != "" {
		fsys := os.DirFS(tablesDir)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		csvTables := gribmeta.NewCSVProvider(fsys, nil, logger)
		builtin := gribmeta.BuiltinTables{}

		phases = append(phases,
			validateParameters(fsys, csvTables, builtin),
			validateSurfaces(fsys, csvTables, builtin),
			validateNames(fsys, csvTables, builtin),
		)
	}

	if rawPath != "" && labeledPath != "" {
		system, err := gribmeta.ParseUnitSystem(units)
		if err != nil {
			fmt.Fprintf(out, "FATAL: %v\n", err)
			return 1
		}
		raw, err := loadJSON[domain.GribRecord](rawPath)
		if err != nil {
			fmt.Fprintf(out, "FATAL: load raw JSON: %v\n", err)
			return 1
		}
		labeled, err := loadJSON[domain.LabeledRecord](labeledPath)
		if err != nil {
			fmt.Fprintf(out, "FATAL: load labeled JSON: %v\n", err)
			return 1
		}
		phases = append(phases, validateFixtures(raw, labeled, system))
	}

	return report(out, phases)
}

func report(out io.Writer, phases []*phase) int {
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		switch {
		case p.skipped != "":
			status = "SKIP (" + p.skipped + ")"
		case !p.passed():
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// present reports whether the table file or one of its compressed variants
// exists.
func present(fsys fs.FS, name string) bool {
	for _, candidate := range []string{name, name + ".gz", name + ".zst"} {
		if _, err := fs.Stat(fsys, candidate); err == nil {
			return true
		}
	}
	return false
}

// ── Phase 1: Parameter tables ──
// Every compiled-in table 4.2 row must match the CSV row of the same number.
// Absent files are not errors; the service falls back to compiled-in rows.

func validateParameters(fsys fs.FS, csvTables, builtin gribmeta.TableProvider) *phase {
	p := &phase{name: "Phase 1: Parameter tables (4.2)"}

	var checked int
	for _, table := range (gribmeta.BuiltinTables{}).ParameterTables() {
		if !present(fsys, gribmeta.ParameterFile(table.Discipline, table.Category)) {
			continue
		}
		checked++
		for sub := range table.Rows {
			want, _ := builtin.Parameter(table.Discipline, table.Category, sub)
			got, ok := csvTables.Parameter(table.Discipline, table.Category, sub)
			if !ok {
				p.errorf("%d.%d.%d %s: missing from CSV", table.Discipline, table.Category, sub, want.ShortName)
				continue
			}
			if diff := cmp.Diff(want, got); diff != "" {
				p.errorf("%d.%d.%d: (-compiled +csv)\n%s", table.Discipline, table.Category, sub, diff)
			}
		}
	}
	if checked == 0 {
		p.skipped = "no parameter files"
	}
	return p
}

// ── Phase 2: Surfaces ──

func validateSurfaces(fsys fs.FS, csvTables, builtin gribmeta.TableProvider) *phase {
	p := &phase{name: "Phase 2: Fixed surfaces (4.5)"}
	if !present(fsys, gribmeta.FileSurfaces) {
		p.skipped = gribmeta.FileSurfaces + " absent"
		return p
	}

	for _, center := range []int{0, gribmeta.CenterNCEP} {
		for code := 0; code <= maxCode; code++ {
			want, wantReserved := builtin.Surface(code, center, 0)
			got, gotReserved := csvTables.Surface(code, center, 0)
			if wantReserved != gotReserved {
				p.errorf("surface %d (center %d): reserved compiled=%v csv=%v", code, center, wantReserved, gotReserved)
				continue
			}
			if diff := cmp.Diff(want, got); diff != "" {
				p.errorf("surface %d (center %d): (-compiled +csv)\n%s", code, center, diff)
			}
		}
	}
	return p
}

// ── Phase 3: Center, sub-center and process names ──

func validateNames(fsys fs.FS, csvTables, builtin gribmeta.TableProvider) *phase {
	p := &phase{name: "Phase 3: Center and process names"}

	checks := []struct {
		file   string
		label  string
		lookup func(gribmeta.TableProvider, int, int) (string, bool)
		outer  []int
	}{
		{gribmeta.FileCenters, "center", func(t gribmeta.TableProvider, _, code int) (string, bool) { return t.CenterName(code) }, []int{0}},
		{gribmeta.FileSubCenters, "sub-center", gribmeta.TableProvider.SubCenterName, []int{gribmeta.CenterNCEP, gribmeta.CenterNWSTG}},
		{gribmeta.FileProcesses, "process", gribmeta.TableProvider.ProcessName, []int{gribmeta.CenterNCEP}},
	}

	var checked int
	for _, c := range checks {
		if !present(fsys, c.file) {
			continue
		}
		checked++
		for _, outer := range c.outer {
			for code := 0; code <= maxCode; code++ {
				want, ok := c.lookup(builtin, outer, code)
				if !ok {
					continue
				}
				got, ok := c.lookup(csvTables, outer, code)
				switch {
				case !ok:
					p.errorf("%s %d/%d %q: missing from CSV", c.label, outer, code, want)
				case got != want:
					p.errorf("%s %d/%d: compiled=%q csv=%q", c.label, outer, code, want, got)
				}
			}
		}
	}
	if checked == 0 {
		p.skipped = "no name files"
	}
	return p
}

// ── Phase 4: Fixture integrity ──
// Relabels the raw fixture with the same frozen clock as genmock and
// compares each record to the stored labeled fixture.

func validateFixtures(raw []domain.GribRecord, labeled []domain.LabeledRecord, units gribmeta.UnitSystem) *phase {
	p := &phase{name: "Phase 4: Labeled fixture integrity"}

	if len(raw) != len(labeled) {
		p.errorf("count mismatch: raw=%d labeled=%d", len(raw), len(labeled))
		return p
	}

	domain.SetClock(clockwork.NewFakeClockAt(fixtures.ProcessedAt))
	defer domain.SetClock(nil)

	labeler := domain.NewLabeler(nil, calendar.NewEngine(calendar.FixedZone(0), nil), domain.LabelOptions{Units: units})
	seen := make(map[string]int, len(raw))
	for i, rec := range raw {
		want := labeler.Label(rec)
		got := labeled[i]
		if prev, dup := seen[got.ID]; dup {
			p.errorf("record %d: duplicate id %s (first at %d)", i, got.ID, prev)
		}
		seen[got.ID] = i
		if diff := cmp.Diff(want, got); diff != "" {
			p.errorf("record %d (%s): (-relabeled +fixture)\n%s", i, rec.Source, diff)
		}
	}
	return p
}
