package gribmeta

import (
	"fmt"
	"strconv"
	"strings"
)

// Product definition templates that select the probability and percentile
// naming paths.
const (
	TemplateProbabilityPoint = 5
	TemplatePercentilePoint  = 6
	TemplateProbabilityTime  = 9
	TemplatePercentileTime   = 10
)

// Time range units that change the length suffix.
const (
	timeUnitMonth = 3
	timeUnitYear  = 4
)

// MasterVersionLocal is the master table version that means only local
// tables apply.
const MasterVersionLocal = 255

const reservedLocalName = "Reserved for local use"

// Class is the naming path a request takes.
type Class string

const (
	ClassNormal      Class = "normal"
	ClassProbability Class = "probability"
	ClassPercentile  Class = "percentile"
)

// Request carries the Section 1 and Section 4 fields that decide a
// parameter's name.
type Request struct {
	Center          int `json:"center"`
	SubCenter       int `json:"sub_center"`
	MasterVersion   int `json:"master_table_version"`
	Discipline      int `json:"discipline"`
	Template        int `json:"template"`
	Category        int `json:"category"`
	Subcategory     int `json:"subcategory"`
	LengthOfTime    int `json:"length_of_time"`
	TimeRangeUnit   int `json:"time_range_unit"`
	StatProcess     int `json:"stat_process"`
	TimeIncrement   int `json:"time_increment"`
	GenID           int `json:"generating_process_id"`
	GenProcess      int `json:"generating_process_type"`
	ProbabilityType int `json:"probability_type"`

	LowerLimit float64 `json:"lower_limit"`
	UpperLimit float64 `json:"upper_limit"`
	Percentile int     `json:"percentile"`

	DerivedForecast int `json:"derived_forecast"`

	// Surface values, used by the NCEP dust and smoke split.
	FirstSurface  *float64 `json:"surface_value,omitempty"`
	SecondSurface *float64 `json:"second_surface_value,omitempty"`
}

// Label is a resolved parameter name. Unit is bracketed, e.g. "[K]".
type Label struct {
	Name    string         `json:"name"`
	Comment string         `json:"comment"`
	Unit    string         `json:"unit"`
	Convert UnitConversion `json:"unit_conversion"`
}

// Unknown reports whether the label is one of the fallback names, with or
// without the forecast error suffix.
func (l Label) Unknown() bool {
	return strings.HasPrefix(l.Name, "unknown") || strings.HasPrefix(l.Name, "ProbUnknown")
}

// Resolver names GRIB2 parameters and levels from a TableProvider. It holds
// no mutable state and is safe for concurrent use.
type Resolver struct {
	tables TableProvider
}

// NewResolver returns a resolver over tables. A nil provider means the
// compiled-in tables.
func NewResolver(tables TableProvider) *Resolver {
	if tables == nil {
		tables = BuiltinTables{}
	}
	return &Resolver{tables: tables}
}

// Tables returns the provider the resolver reads.
func (r *Resolver) Tables() TableProvider { return r.tables }

// Classify picks the naming path for a request. NDFD category 19 fields are
// encoded with probability templates but named as plain parameters.
func Classify(req Request) Class {
	switch req.Template {
	case TemplateProbabilityTime, TemplateProbabilityPoint:
		if IsNDFD(req.Center, req.SubCenter) && req.Discipline == 0 && req.Category == 19 {
			return ClassNormal
		}
		return ClassProbability
	case TemplatePercentileTime, TemplatePercentilePoint:
		return ClassPercentile
	}
	return ClassNormal
}

// Resolve names a parameter. The unit is appended to the comment, derived
// forecasts that measure spread replace the unit, and forecast error
// products get an "ERR" suffix.
func (r *Resolver) Resolve(req Request) Label {
	var l Label
	switch Classify(req) {
	case ClassProbability:
		l = r.ResolveProbability(req)
	case ClassPercentile:
		l = r.ResolvePercentile(req)
	default:
		l = r.ResolveNormal(req)
	}

	if unit, ok := derivedForecastUnits[req.DerivedForecast]; ok {
		l.Unit = unit
		l.Convert = ConvertNone
	}

	if req.GenProcess == 6 || req.GenProcess == 7 {
		l.Convert = ConvertNone
		l.Name += "ERR"
		l.Comment += " error " + l.Unit
	} else {
		l.Comment += " " + l.Unit
	}
	return l
}

// Code table 4.7 values whose output is not in the parameter's unit.
var derivedForecastUnits = map[int]string{
	2: "[stddev]",
	3: "[stddev normalized]",
	4: "[spread]",
	5: "[large anomaly index]",
	7: "[interquantile range]",
}

// generic returns the generic table row unless the master version skips
// those tables or the row is a local-use placeholder.
func (r *Resolver) generic(req Request) (Parameter, bool) {
	if req.MasterVersion == MasterVersionLocal {
		return Parameter{}, false
	}
	p, ok := r.tables.Parameter(req.Discipline, req.Category, req.Subcategory)
	if !ok || p.Name == reservedLocalName {
		return Parameter{}, false
	}
	return p, true
}

func (r *Resolver) local(req Request) (Parameter, bool) {
	return r.tables.LocalParameter(req.Center, req.SubCenter, req.Discipline, req.Category, req.Subcategory)
}

func bracket(unit string) string { return "[" + unit + "]" }

// span describes a statistics period for names and comments.
type span struct {
	length int
	unit   int
}

func spanOf(req Request) span { return span{length: req.LengthOfTime, unit: req.TimeRangeUnit} }

// suffix is the name suffix: "06", "03m" or "01y".
func (s span) suffix() string {
	switch s.unit {
	case timeUnitMonth:
		return fmt.Sprintf("%02dm", s.length)
	case timeUnitYear:
		return fmt.Sprintf("%02dy", s.length)
	}
	return fmt.Sprintf("%02d", s.length)
}

// prefix is the comment prefix: "06 hr", "03 mon" or "01 yr".
func (s span) prefix() string {
	switch s.unit {
	case timeUnitMonth:
		return fmt.Sprintf("%02d mon", s.length)
	case timeUnitYear:
		return fmt.Sprintf("%02d yr", s.length)
	}
	return fmt.Sprintf("%02d hr", s.length)
}

// fmtG formats a threshold the way printf's %g does.
func fmtG(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
