package gribmeta

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/singleflight"
)

// Table file names, relative to the provider's file system root.
const (
	FileLocalIndex = "grib2_table_4_2_local_index.csv"
	FileSurfaces   = "grib2_table_4_5.csv"
	FileCenters    = "grib2_center.csv"
	FileSubCenters = "grib2_subcenter.csv"
	FileProcesses  = "grib2_process.csv"
)

// ParameterFile returns the generic table 4.2 file for a discipline and category.
func ParameterFile(discipline, category int) string {
	return fmt.Sprintf("grib2_table_4_2_%d_%d.csv", discipline, category)
}

// compressed variants tried after the plain name, in order.
var compressedSuffixes = []string{".gz", ".zst"}

// loadRetryInterval is how long a table that failed to load is answered by
// the fallback before the provider reads it again.
const loadRetryInterval = 30 * time.Second

// errBadStructure marks a table file that lacks a required column.
var errBadStructure = errors.New("bad table structure")

// csvTable is a parsed table file with its header resolved to column indexes.
type csvTable struct {
	name    string
	columns map[string]int
	rows    [][]string
}

func (t *csvTable) field(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *csvTable) require(columns ...string) error {
	for _, c := range columns {
		if _, ok := t.columns[c]; !ok {
			return fmt.Errorf("%s: missing column %q: %w", t.name, c, errBadStructure)
		}
	}
	return nil
}

// CSVProvider reads the tables from CSV files in a file system. A file that
// is absent defers to the fallback provider; a file that is present is
// authoritative. Files may be stored gzip (.gz) or zstd (.zst) compressed.
//
// Parsed and absent files are kept for the life of the provider. A file that
// fails to load is answered by the fallback and read again after
// loadRetryInterval.
type CSVProvider struct {
	fsys     fs.FS
	fallback TableProvider
	logger   *slog.Logger
	clock    clockwork.Clock

	loads  singleflight.Group
	mu     sync.RWMutex
	tables map[string]tableEntry
}

type tableEntry struct {
	table   *csvTable
	present bool
	retryAt time.Time // set for failed loads
}

func (e tableEntry) failed() bool { return !e.retryAt.IsZero() }

var _ TableProvider = (*CSVProvider)(nil)

// NewCSVProvider creates a provider over fsys. fallback may be nil, in which
// case absent files resolve as not found.
func NewCSVProvider(fsys fs.FS, fallback TableProvider, logger *slog.Logger) *CSVProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVProvider{
		fsys:     fsys,
		fallback: fallback,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
		tables:   make(map[string]tableEntry),
	}
}

// table returns the parsed file, or nil with present=false when no variant
// of the file exists or the last load failed. Concurrent misses for the same
// file share one load; the lock is never held during I/O.
func (p *CSVProvider) table(name string) (t *csvTable, present bool) {
	if e, ok := p.cached(name); ok {
		return e.table, e.present
	}

	v, _, _ := p.loads.Do(name, func() (any, error) {
		if e, ok := p.cached(name); ok {
			return e, nil
		}
		loaded, err := p.load(name)
		var entry tableEntry
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			p.logger.Warn("table file unusable, using fallback", "file", name, "error", err, "retry_in", loadRetryInterval)
			entry.retryAt = p.clock.Now().Add(loadRetryInterval)
		default:
			entry = tableEntry{table: loaded, present: true}
		}
		p.mu.Lock()
		p.tables[name] = entry
		p.mu.Unlock()
		return entry, nil
	})
	e := v.(tableEntry)
	return e.table, e.present
}

// cached returns the stored entry unless there is none or it is a failed
// load whose retry time has come.
func (p *CSVProvider) cached(name string) (tableEntry, bool) {
	p.mu.RLock()
	e, ok := p.tables[name]
	p.mu.RUnlock()
	if !ok || (e.failed() && !p.clock.Now().Before(e.retryAt)) {
		return tableEntry{}, false
	}
	return e, true
}

func (p *CSVProvider) load(name string) (*csvTable, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if err == nil {
		return parseTable(name, bytes.NewReader(data))
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	for _, suffix := range compressedSuffixes {
		data, err := fs.ReadFile(p.fsys, name+suffix)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s%s: %w", name, suffix, err)
		}
		r, err := decompress(suffix, data)
		if err != nil {
			return nil, fmt.Errorf("decompress %s%s: %w", name, suffix, err)
		}
		return parseTable(name, r)
	}
	return nil, fs.ErrNotExist
}

func decompress(suffix string, data []byte) (io.Reader, error) {
	switch suffix {
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(out), nil
	case ".zst":
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer d.Close()
		out, err := d.DecodeAll(data, nil)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(out), nil
	}
	return nil, fmt.Errorf("unsupported suffix %q", suffix)
}

func parseTable(name string, r io.Reader) (*csvTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	t := &csvTable{name: name, columns: make(map[string]int, len(header))}
	for i, h := range header {
		t.columns[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// atoi reads a leading integer the way table codes are written; anything
// unparseable is zero.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func (p *CSVProvider) convert(file, value string) UnitConversion {
	c, ok := ParseUnitConversion(value)
	if !ok {
		p.logger.Warn("unhandled unit conversion", "file", file, "unit_conv", value)
	}
	return c
}

func (p *CSVProvider) Parameter(discipline, category, subcategory int) (Parameter, bool) {
	name := ParameterFile(discipline, category)
	t, present := p.table(name)
	if !present {
		if p.fallback != nil {
			return p.fallback.Parameter(discipline, category, subcategory)
		}
		return Parameter{}, false
	}
	if err := t.require("subcat", "short_name", "name", "unit", "unit_conv"); err != nil {
		p.logger.Error("table file unusable", "file", name, "error", err)
		return Parameter{}, false
	}

	for _, row := range t.rows {
		if atoi(t.field(row, "subcat")) != subcategory {
			continue
		}
		param := Parameter{
			ShortName: t.field(row, "short_name"),
			Name:      t.field(row, "name"),
			Unit:      t.field(row, "unit"),
			Convert:   p.convert(name, t.field(row, "unit_conv")),
		}
		if param.ShortName == "" {
			param.ShortName = param.Name
		}
		return param, true
	}
	return Parameter{}, false
}

// localFile finds the local table file for a center pair. An empty
// subcenter_code matches every sub-center.
func (p *CSVProvider) localFile(center, subCenter int) (file string, present bool) {
	t, present := p.table(FileLocalIndex)
	if t == nil {
		return "", present
	}
	if err := t.require("center_code", "subcenter_code", "filename"); err != nil {
		p.logger.Error("table file unusable", "file", FileLocalIndex, "error", err)
		return "", true
	}
	for _, row := range t.rows {
		if atoi(t.field(row, "center_code")) != center {
			continue
		}
		sub := t.field(row, "subcenter_code")
		if sub == "" || atoi(sub) == subCenter {
			return t.field(row, "filename"), true
		}
	}
	return "", true
}

func (p *CSVProvider) LocalParameter(center, subCenter, discipline, category, subcategory int) (Parameter, bool) {
	file, present := p.localFile(center, subCenter)
	if !present {
		if p.fallback != nil {
			return p.fallback.LocalParameter(center, subCenter, discipline, category, subcategory)
		}
		return Parameter{}, false
	}
	if file == "" {
		return Parameter{}, false
	}

	t, _ := p.table(file)
	if t == nil {
		return Parameter{}, false
	}
	if err := t.require("prod", "cat", "subcat", "short_name", "name", "unit", "unit_conv"); err != nil {
		p.logger.Error("table file unusable", "file", file, "error", err)
		return Parameter{}, false
	}
	for _, row := range t.rows {
		if atoi(t.field(row, "prod")) == discipline &&
			atoi(t.field(row, "cat")) == category &&
			atoi(t.field(row, "subcat")) == subcategory {
			return Parameter{
				ShortName: t.field(row, "short_name"),
				Name:      t.field(row, "name"),
				Unit:      t.field(row, "unit"),
				Convert:   p.convert(file, t.field(row, "unit_conv")),
			}, true
		}
	}
	return Parameter{}, false
}

var (
	reservedSurface      = Surface{ShortName: "RESERVED", Name: "Reserved", Unit: "-"}
	reservedLocalSurface = Surface{ShortName: "RESERVED", Name: "Reserved Local use", Unit: "-"}
)

// Surface looks a code up in grib2_table_4_5.csv. The file carries NCEP's
// local-use rows, so codes 192..254 from any other center are reserved
// without consulting it. Codes missing from the file are reserved.
func (p *CSVProvider) Surface(code, center, subCenter int) (Surface, bool) {
	if code < 0 || code > 255 {
		return reservedSurface, true
	}
	if code > 191 && code < 255 && center != CenterNCEP {
		return reservedLocalSurface, true
	}

	t, present := p.table(FileSurfaces)
	if !present {
		if p.fallback != nil {
			return p.fallback.Surface(code, center, subCenter)
		}
		return reservedSurface, true
	}
	if err := t.require("code", "short_name", "name", "unit"); err != nil {
		p.logger.Error("table file unusable", "file", FileSurfaces, "error", err)
		return reservedSurface, true
	}
	for _, row := range t.rows {
		if atoi(t.field(row, "code")) != code {
			continue
		}
		s := Surface{
			ShortName: t.field(row, "short_name"),
			Name:      t.field(row, "name"),
			Unit:      t.field(row, "unit"),
		}
		if code > 191 && code < 255 && s.Name == reservedLocalName {
			s.ShortName = "RESERVED"
			return s, true
		}
		return s, false
	}
	return reservedSurface, true
}

// lookupName scans file for the row whose key columns equal keys and returns
// its name column.
func (p *CSVProvider) lookupName(file string, keyColumns []string, keys []int, fallback func() (string, bool)) (string, bool) {
	t, present := p.table(file)
	if !present {
		if fallback != nil {
			return fallback()
		}
		return "", false
	}
	if err := t.require(append(keyColumns, "name")...); err != nil {
		p.logger.Error("table file unusable", "file", file, "error", err)
		return "", false
	}
rows:
	for _, row := range t.rows {
		for i, c := range keyColumns {
			if atoi(t.field(row, c)) != keys[i] {
				continue rows
			}
		}
		return t.field(row, "name"), true
	}
	return "", false
}

func (p *CSVProvider) fallbackFunc(f func(TableProvider) (string, bool)) func() (string, bool) {
	if p.fallback == nil {
		return nil
	}
	return func() (string, bool) { return f(p.fallback) }
}

func (p *CSVProvider) CenterName(center int) (string, bool) {
	return p.lookupName(FileCenters, []string{"code"}, []int{center},
		p.fallbackFunc(func(tp TableProvider) (string, bool) { return tp.CenterName(center) }))
}

func (p *CSVProvider) SubCenterName(center, subCenter int) (string, bool) {
	return p.lookupName(FileSubCenters, []string{"center_code", "subcenter_code"}, []int{center, subCenter},
		p.fallbackFunc(func(tp TableProvider) (string, bool) { return tp.SubCenterName(center, subCenter) }))
}

func (p *CSVProvider) ProcessName(center, process int) (string, bool) {
	return p.lookupName(FileProcesses, []string{"center_code", "process_code"}, []int{center, process},
		p.fallbackFunc(func(tp TableProvider) (string, bool) { return tp.ProcessName(center, process) }))
}
