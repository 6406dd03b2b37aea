package httpadapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

const defaultFormat = "%Y-%m-%dT%H:%M:%SZ"

// Lookup serves ad hoc parameter, level and calendar queries against the
// same resolver and engine the pipeline labels with.
type Lookup struct {
	Resolver *gribmeta.Resolver
	Engine   *calendar.Engine
	Units    gribmeta.UnitSystem
}

type parameterResponse struct {
	Class       gribmeta.Class    `json:"class"`
	Label       gribmeta.Label    `json:"label"`
	Unknown     bool              `json:"unknown"`
	Display     gribmeta.Equation `json:"display"`
	UnitDefault bool              `json:"unit_default"`
}

type levelResponse struct {
	Code       int              `json:"code"`
	Surface    gribmeta.Surface `json:"surface"`
	Reserved   bool             `json:"reserved"`
	LevelShort string           `json:"level_short"`
	LevelLong  string           `json:"level_long"`
}

type formatResponse struct {
	Instant   float64 `json:"instant"`
	Formatted string  `json:"formatted"`
	Holiday   string  `json:"holiday,omitempty"`
	Daylight  bool    `json:"daylight"`
}

func (l *Lookup) handleParameter(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r.URL.Query())
	req := gribmeta.Request{
		Center:          q.requiredInt("center"),
		SubCenter:       q.optionalInt("sub_center", 0),
		MasterVersion:   q.optionalInt("master_table_version", 0),
		Discipline:      q.requiredInt("discipline"),
		Template:        q.optionalInt("template", 0),
		Category:        q.requiredInt("category"),
		Subcategory:     q.requiredInt("subcategory"),
		LengthOfTime:    q.optionalInt("length_of_time", 0),
		TimeRangeUnit:   q.optionalInt("time_range_unit", 0),
		StatProcess:     q.optionalInt("stat_process", 0),
		TimeIncrement:   q.optionalInt("time_increment", 0),
		GenID:           q.optionalInt("generating_process_id", 0),
		GenProcess:      q.optionalInt("generating_process_type", 0),
		ProbabilityType: q.optionalInt("probability_type", 0),
		LowerLimit:      q.optionalFloat("lower_limit", 0),
		UpperLimit:      q.optionalFloat("upper_limit", 0),
		Percentile:      q.optionalInt("percentile", 0),
		DerivedForecast: q.optionalInt("derived_forecast", 0),
		FirstSurface:    q.floatPtr("surface_value"),
		SecondSurface:   q.floatPtr("second_surface_value"),
	}
	units := l.Units
	if s := r.URL.Query().Get("units"); s != "" {
		u, err := gribmeta.ParseUnitSystem(s)
		if err != nil {
			q.fail(err)
		}
		units = u
	}
	if q.err != nil {
		writeError(w, q.err)
		return
	}

	label := l.Resolver.Resolve(req)
	eq, ok := gribmeta.ComputeUnit(label.Convert, label.Unit, units)
	sharedobs.WriteJSON(w, http.StatusOK, parameterResponse{
		Class:       gribmeta.Classify(req),
		Label:       label,
		Unknown:     label.Unknown(),
		Display:     eq,
		UnitDefault: !ok,
	})
}

func (l *Lookup) handleLevel(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r.URL.Query())
	code := q.requiredInt("code")
	center := q.optionalInt("center", 0)
	subCenter := q.optionalInt("sub_center", 0)
	value := q.optionalFloat("value", 0)
	second := q.floatPtr("second_value")
	if q.err != nil {
		writeError(w, q.err)
		return
	}

	surface, reserved := l.Resolver.ResolveSurfaceLevel(code, center, subCenter)
	short, long := l.Resolver.LevelName(center, subCenter, code, value, second)
	sharedobs.WriteJSON(w, http.StatusOK, levelResponse{
		Code:       code,
		Surface:    surface,
		Reserved:   reserved,
		LevelShort: short,
		LevelLong:  long,
	})
}

// handleFormat formats t (epoch seconds) or date (YYYY[MM[DD[HH[MM[SS]]]]]).
// With neither, the engine clock supplies the instant.
func (l *Lookup) handleFormat(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := newQuery(values)

	var instant float64
	switch {
	case values.Get("t") != "":
		instant = q.optionalFloat("t", 0)
	case values.Get("date") != "":
		v, err := calendar.ScanDateNumber(values.Get("date"))
		if err != nil {
			q.fail(fmt.Errorf("date: %w", err))
		}
		instant = v
	default:
		instant = l.Engine.Now()
	}

	mode := calendar.DisplayUTC
	if s := values.Get("mode"); s != "" {
		m, err := calendar.ParseDisplayMode(s)
		if err != nil {
			q.fail(err)
		}
		mode = m
	}
	layout := values.Get("format")
	if layout == "" {
		layout = defaultFormat
	}
	if q.err != nil {
		writeError(w, q.err)
		return
	}

	sharedobs.WriteJSON(w, http.StatusOK, formatResponse{
		Instant:   instant,
		Formatted: l.Engine.FormatInstant(instant, layout, mode),
		Holiday:   calendar.Holiday(calendar.FieldsOf(instant)),
		Daylight:  l.Engine.IsDaylightSaving(instant),
	})
}

func writeError(w http.ResponseWriter, err error) {
	sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// query parses URL parameters, keeping the first error.
type query struct {
	values url.Values
	err    error
}

func newQuery(values url.Values) *query {
	return &query{values: values}
}

func (q *query) fail(err error) {
	if q.err == nil {
		q.err = err
	}
}

func (q *query) requiredInt(name string) int {
	s := q.values.Get(name)
	if s == "" {
		q.fail(fmt.Errorf("missing required parameter %q", name))
		return 0
	}
	return q.parseInt(name, s)
}

func (q *query) optionalInt(name string, fallback int) int {
	s := q.values.Get(name)
	if s == "" {
		return fallback
	}
	return q.parseInt(name, s)
}

func (q *query) parseInt(name, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		q.fail(fmt.Errorf("parameter %q: not an integer: %q", name, s))
	}
	return n
}

func (q *query) optionalFloat(name string, fallback float64) float64 {
	if p := q.floatPtr(name); p != nil {
		return *p
	}
	return fallback
}

func (q *query) floatPtr(name string) *float64 {
	s := q.values.Get(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.fail(fmt.Errorf("parameter %q: not a number: %q", name, s))
		return nil
	}
	return &v
}
