package gribmeta

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstdCompressed(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func tableFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"grib2_table_4_2_0_0.csv": {Data: []byte(
			"subcat,short_name,name,unit,unit_conv\n" +
				"0,TMP,Temperature,K,UC_K2F\n" +
				"14,,Minimum dew point depression,K,UC_BOGUS\n" +
				"192,,Reserved for local use,-,UC_NONE\n")},
		"grib2_table_4_2_0_2.csv.gz": {Data: gzipped(t,
			"subcat,short_name,name,unit,unit_conv\n"+
				"1,WIND,Wind speed,m/s,UC_MS2Knots\n")},
		"grib2_table_4_2_10_0.csv.zst": {Data: zstdCompressed(t,
			"subcat,short_name,name,unit,unit_conv\n"+
				"3,HTSGW,Significant height of combined wind waves and swell,m,UC_M2Feet\n")},
		"grib2_table_4_2_0_19.csv": {Data: []byte("subcat,name\n2,Thunderstorm probability\n")},
		"grib2_table_4_2_local_index.csv": {Data: []byte(
			"center_code,subcenter_code,filename\n" +
				"7,,grib2_table_4_2_local_NCEP.csv\n" +
				"8,0,grib2_table_4_2_local_NDFD.csv\n")},
		"grib2_table_4_2_local_NCEP.csv": {Data: []byte(
			"prod,cat,subcat,short_name,name,unit,unit_conv\n" +
				"0,0,192,SNOHF,Snow Phase Change Heat Flux,W/(m^2),UC_NONE\n" +
				"0,13,195,LIPMF,Integrated column particulate matter (fine),log10(10^-6g/m^3),UC_LOG10\n")},
		"grib2_table_4_5.csv": {Data: []byte(
			"code,short_name,name,unit\n" +
				"1,SFC,Ground or water surface,-\n" +
				"100,ISBL,Isobaric surface,Pa\n" +
				"200,EATM,Entire atmosphere,-\n" +
				"201,EOCN,Reserved for local use,-\n" +
				"255,MISSING,Missing,-\n")},
		"grib2_center.csv":    {Data: []byte("code,name\n7,US National Weather Service - NCEP (WMC)\n")},
		"grib2_subcenter.csv": {Data: []byte("center_code,subcenter_code,name\n7,14,MDL\n")},
	}
}

func TestCSVProvider_Parameter(t *testing.T) {
	p := NewCSVProvider(tableFS(t), nil, discardLogger())

	tests := []struct {
		name      string
		disc, cat int
		subcat    int
		want      Parameter
		wantFound bool
	}{
		{"plain file", 0, 0, 0, Parameter{"TMP", "Temperature", "K", ConvertK2F}, true},
		{"empty short name and unknown conversion", 0, 0, 14, Parameter{"Minimum dew point depression", "Minimum dew point depression", "K", ConvertNone}, true},
		{"gzip file", 0, 2, 1, Parameter{"WIND", "Wind speed", "m/s", ConvertMS2Knots}, true},
		{"zstd file", 10, 0, 3, Parameter{"HTSGW", "Significant height of combined wind waves and swell", "m", ConvertM2Feet}, true},
		{"row missing from present file", 0, 0, 5, Parameter{}, false},
		{"file missing without fallback", 0, 1, 8, Parameter{}, false},
		{"file lacking columns", 0, 19, 2, Parameter{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parameter(tt.disc, tt.cat, tt.subcat)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVProvider_Fallback(t *testing.T) {
	p := NewCSVProvider(tableFS(t), BuiltinTables{}, discardLogger())

	got, ok := p.Parameter(0, 1, 8)
	require.True(t, ok, "absent file falls back")
	assert.Equal(t, "APCP", got.ShortName)

	_, ok = p.Parameter(0, 0, 4)
	assert.False(t, ok, "present file is authoritative")

	name, ok := p.ProcessName(7, 4)
	require.True(t, ok)
	assert.Equal(t, "NCEP/ARL Smoke Model", name)
}

// flakyFS fails the first failures opens with a server error, optionally
// holding every open until release is closed.
type flakyFS struct {
	files    fstest.MapFS
	failures int
	release  chan struct{}

	mu    sync.Mutex
	opens int
}

func (f *flakyFS) Open(name string) (fs.File, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	f.opens++
	fail := f.opens <= f.failures
	f.mu.Unlock()
	if fail {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.New("503 Service Unavailable")}
	}
	return f.files.Open(name)
}

func (f *flakyFS) openCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens
}

const airTemperatureTable = "subcat,short_name,name,unit,unit_conv\n0,AIRT,Air temperature,K,UC_K2F\n"

func TestCSVProvider_FailedLoadFallsBackAndRetries(t *testing.T) {
	fsys := &flakyFS{
		files:    fstest.MapFS{"grib2_table_4_2_0_0.csv": {Data: []byte(airTemperatureTable)}},
		failures: 1,
	}
	clock := clockwork.NewFakeClock()
	p := NewCSVProvider(fsys, BuiltinTables{}, discardLogger())
	p.clock = clock

	got, ok := p.Parameter(0, 0, 0)
	require.True(t, ok, "fallback answers while the table cannot be read")
	assert.Equal(t, "TMP", got.ShortName)

	got, _ = p.Parameter(0, 0, 0)
	assert.Equal(t, "TMP", got.ShortName)
	assert.Equal(t, 1, fsys.openCount(), "no reread before the retry interval")

	clock.Advance(loadRetryInterval)
	got, ok = p.Parameter(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, "AIRT", got.ShortName)

	got, _ = p.Parameter(0, 0, 0)
	assert.Equal(t, "AIRT", got.ShortName)
	assert.Equal(t, 2, fsys.openCount(), "a loaded table is kept")

	r := NewResolver(p)
	assert.Equal(t, "AIRT", r.ResolveNormal(Request{Center: 7, Discipline: 0, Category: 0, Subcategory: 0}).Name)
}

func TestCSVProvider_FailedLoadWithoutFallback(t *testing.T) {
	fsys := &flakyFS{
		files:    fstest.MapFS{"grib2_table_4_2_0_0.csv": {Data: []byte(airTemperatureTable)}},
		failures: 1,
	}
	clock := clockwork.NewFakeClock()
	p := NewCSVProvider(fsys, nil, discardLogger())
	p.clock = clock

	_, ok := p.Parameter(0, 0, 0)
	assert.False(t, ok)

	clock.Advance(loadRetryInterval)
	got, ok := p.Parameter(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, "AIRT", got.ShortName)
}

func TestCSVProvider_ConcurrentMissesShareOneLoad(t *testing.T) {
	fsys := &flakyFS{
		files:   fstest.MapFS{"grib2_table_4_2_0_0.csv": {Data: []byte(airTemperatureTable)}},
		release: make(chan struct{}),
	}
	p := NewCSVProvider(fsys, nil, discardLogger())

	const callers = 8
	names := make([]string, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _ := p.Parameter(0, 0, 0)
			names[i] = got.ShortName
		}()
	}

	close(fsys.release)
	wg.Wait()

	assert.Equal(t, 1, fsys.openCount())
	for _, name := range names {
		assert.Equal(t, "AIRT", name)
	}
}

func TestCSVProvider_LocalParameter(t *testing.T) {
	p := NewCSVProvider(tableFS(t), BuiltinTables{}, discardLogger())

	got, ok := p.LocalParameter(7, 2, 0, 13, 195)
	require.True(t, ok, "empty sub-center matches any")
	assert.Equal(t, Parameter{"LIPMF", "Integrated column particulate matter (fine)", "log10(10^-6g/m^3)", ConvertLog10}, got)

	_, ok = p.LocalParameter(8, 0, 0, 1, 192)
	assert.False(t, ok, "indexed file that does not exist")

	_, ok = p.LocalParameter(98, 0, 0, 0, 192)
	assert.False(t, ok, "center not in index")
}

func TestCSVProvider_Surface(t *testing.T) {
	p := NewCSVProvider(tableFS(t), nil, discardLogger())

	tests := []struct {
		name         string
		code, center int
		wantShort    string
		wantReserved bool
	}{
		{"defined", 100, 7, "ISBL", false},
		{"NCEP local from file", 200, 7, "EATM", false},
		{"other center local is reserved", 200, 8, "RESERVED", true},
		{"local placeholder row", 201, 7, "RESERVED", true},
		{"missing", 255, 8, "MISSING", false},
		{"absent from file", 50, 7, "RESERVED", true},
		{"out of range", 300, 7, "RESERVED", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, reserved := p.Surface(tt.code, tt.center, 0)
			assert.Equal(t, tt.wantShort, s.ShortName)
			assert.Equal(t, tt.wantReserved, reserved)
		})
	}

	r := NewResolver(p)
	short, long := r.LevelName(7, 0, 100, 85000, nil)
	assert.Equal(t, "85000-ISBL", short)
	assert.Equal(t, `85000[Pa] ISBL="Isobaric surface"`, long)
}

func TestCSVProvider_Names(t *testing.T) {
	p := NewCSVProvider(tableFS(t), nil, discardLogger())

	name, ok := p.CenterName(7)
	require.True(t, ok)
	assert.Equal(t, "US National Weather Service - NCEP (WMC)", name)

	name, ok = p.SubCenterName(7, 14)
	require.True(t, ok)
	assert.Equal(t, "MDL", name)

	_, ok = p.SubCenterName(7, 5)
	assert.False(t, ok)

	_, ok = p.ProcessName(7, 4)
	assert.False(t, ok, "no process file and no fallback")
}

func TestCSVProvider_ResolverUsesTables(t *testing.T) {
	r := NewResolver(NewCSVProvider(tableFS(t), BuiltinTables{}, discardLogger()))

	assert.Equal(t, "T", r.ResolveNormal(Request{Center: 8, Discipline: 0, Category: 0, Subcategory: 0}).Name)

	// The placeholder row hides the generic entry so the local table answers.
	got := r.ResolveNormal(Request{Center: 7, Discipline: 0, Category: 0, Subcategory: 192})
	assert.Equal(t, "SNOHF", got.Name)
}

func TestAtoi(t *testing.T) {
	tests := map[string]int{
		"42":    42,
		" 7 ":   7,
		"-3":    -3,
		"12abc": 12,
		"":      0,
		"abc":   0,
		"-":     0,
	}
	for in, want := range tests {
		assert.Equal(t, want, atoi(in), "%q", in)
	}
}
