// Command genmock generates mock data fixtures for the ETL and downstream
// test suites. It runs records through the actual domain package so the
// labeled output matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -raw-out data/mock/grib_records.json \
//	  -labeled-out data/mock/grib_records_labeled.json
//
// With -records, records are read from a JSON array instead of the built-in
// fixtures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/fixtures"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	recordsIn := flag.String("records", "", "optional JSON array of GRIB records (default: built-in fixtures)")
	rawOut := flag.String("raw-out", "", "output path for raw record JSON fixture")
	labeledOut := flag.String("labeled-out", "", "output path for labeled record JSON fixture")
	units := flag.String("units", "english", "display unit system: english or metric")
	flag.Parse()

	if *rawOut == "" || *labeledOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -raw-out, -labeled-out")
	}

	system, err := gribmeta.ParseUnitSystem(*units)
	if err != nil {
		return err
	}

	records := fixtures.Records()
	if *recordsIn != "" {
		if records, err = readRecords(*recordsIn); err != nil {
			return fmt.Errorf("reading %s: %w", *recordsIn, err)
		}
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(fixtures.ProcessedAt))
	defer domain.SetClock(nil)

	labeled, err := label(records, system)
	if err != nil {
		return err
	}
	log.Printf("total: %d records", len(records))

	if err := writeJSON(*rawOut, records); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*labeledOut, labeled); err != nil {
		return fmt.Errorf("writing labeled fixture: %w", err)
	}
	log.Printf("wrote labeled fixture: %s", *labeledOut)

	printStats(labeled)
	return nil
}

func readRecords(path string) ([]domain.GribRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.GribRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// label pushes each record through the same parse and label path as the
// pipeline transformer.
func label(records []domain.GribRecord, units gribmeta.UnitSystem) ([]domain.LabeledRecord, error) {
	labeler := domain.NewLabeler(nil, calendar.NewEngine(calendar.FixedZone(0), nil), domain.LabelOptions{Units: units})

	out := make([]domain.LabeledRecord, 0, len(records))
	for i, rec := range records {
		rawJSON, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshal record %d: %w", i, err)
		}
		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: rawJSON})
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, labeler.Label(parsed))
	}
	return out, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated counts for printStats reporting.
type statsResult struct {
	classCounts   map[string]int
	elementCounts map[string]int
	centerCounts  map[string]int
	unresolved    int
	unitDefault   int
}

func collectStats(records []domain.LabeledRecord) statsResult {
	s := statsResult{
		classCounts:   map[string]int{},
		elementCounts: map[string]int{},
		centerCounts:  map[string]int{},
	}
	for i := range records {
		r := &records[i]
		s.classCounts[string(r.Class)]++
		s.elementCounts[r.Element]++
		center := r.CenterName
		if center == "" {
			center = "(unnamed)"
		}
		s.centerCounts[center]++
		if r.Unresolved {
			s.unresolved++
		}
		if r.UnitDefault {
			s.unitDefault++
		}
	}
	return s
}

type nameCount struct {
	name  string
	count int
}

func sortedCounts(m map[string]int) []nameCount {
	out := make([]nameCount, 0, len(m))
	for k, v := range m {
		out = append(out, nameCount{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

func printStats(records []domain.LabeledRecord) {
	stats := collectStats(records)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(records))
	fmt.Printf("By class: normal=%d, probability=%d, percentile=%d\n",
		stats.classCounts[string(gribmeta.ClassNormal)],
		stats.classCounts[string(gribmeta.ClassProbability)],
		stats.classCounts[string(gribmeta.ClassPercentile)])
	fmt.Printf("Unresolved: %d\n", stats.unresolved)
	fmt.Printf("Default units: %d\n", stats.unitDefault)

	fmt.Printf("Elements (%d):", len(stats.elementCounts))
	for _, e := range sortedCounts(stats.elementCounts) {
		fmt.Printf(" %s=%d", e.name, e.count)
	}
	fmt.Println()

	fmt.Printf("Centers (%d):", len(stats.centerCounts))
	for _, c := range sortedCounts(stats.centerCounts) {
		fmt.Printf(" %q=%d", c.name, c.count)
	}
	fmt.Println()

	printRecordDetails(records)
}

func printRecordDetails(records []domain.LabeledRecord) {
	if len(records) == 0 {
		return
	}
	r := &records[0]
	fmt.Printf("\nFirst record:\n")
	fmt.Printf("  ID: %s\n", r.ID)
	fmt.Printf("  Element: %s (%s)\n", r.Element, r.Comment)
	fmt.Printf("  Display: %s = %g*x + %g\n", r.DisplayUnit, r.UnitM, r.UnitB)
	fmt.Printf("  Level: %s\n", r.LevelShort)
	fmt.Printf("  Valid: %s (%s)\n", r.ValidTime, r.ValidDay)
	fmt.Printf("  Forecast hours: %g\n", r.ForecastHours)
}
