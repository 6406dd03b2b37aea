package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// GribRecord is the decoded Section 1 and Section 4 metadata of one GRIB2
// message, as published by the upstream decoder.
type GribRecord struct {
	Center        int `json:"center"`
	SubCenter     int `json:"sub_center"`
	MasterVersion int `json:"master_table_version"`

	Discipline  int `json:"discipline"`
	Template    int `json:"template"`
	Category    int `json:"category"`
	Subcategory int `json:"subcategory"`

	LengthOfTime  int `json:"length_of_time"`
	TimeRangeUnit int `json:"time_range_unit"`
	StatProcess   int `json:"stat_process"`
	TimeIncrement int `json:"time_increment"`

	GenID      int `json:"generating_process_id"`
	GenProcess int `json:"generating_process_type"`

	ProbabilityType int     `json:"probability_type"`
	LowerLimit      float64 `json:"lower_limit"`
	UpperLimit      float64 `json:"upper_limit"`
	Percentile      int     `json:"percentile"`
	DerivedForecast int     `json:"derived_forecast"`

	SurfaceType        int      `json:"surface_type"`
	SurfaceValue       float64  `json:"surface_value"`
	SecondSurfaceType  int      `json:"second_surface_type"`
	SecondSurfaceValue *float64 `json:"second_surface_value"`

	// Epoch seconds, UTC.
	ReferenceTime float64 `json:"reference_time"`
	ValidTime     float64 `json:"valid_time"`

	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	Source       string `json:"source,omitempty"`
	MessageIndex int    `json:"message_index,omitempty"`
}

// Request maps the record onto a parameter resolution request.
func (r GribRecord) Request() gribmeta.Request {
	first := r.SurfaceValue
	return gribmeta.Request{
		Center:          r.Center,
		SubCenter:       r.SubCenter,
		MasterVersion:   r.MasterVersion,
		Discipline:      r.Discipline,
		Template:        r.Template,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		LengthOfTime:    r.LengthOfTime,
		TimeRangeUnit:   r.TimeRangeUnit,
		StatProcess:     r.StatProcess,
		TimeIncrement:   r.TimeIncrement,
		GenID:           r.GenID,
		GenProcess:      r.GenProcess,
		ProbabilityType: r.ProbabilityType,
		LowerLimit:      r.LowerLimit,
		UpperLimit:      r.UpperLimit,
		Percentile:      r.Percentile,
		DerivedForecast: r.DerivedForecast,
		FirstSurface:    &first,
		SecondSurface:   r.SecondSurfaceValue,
	}
}

// LabeledRecord is the record after parameter, level and time labeling.
type LabeledRecord struct {
	ID string `json:"id"`

	Element        string                  `json:"element"`
	Comment        string                  `json:"comment"`
	Unit           string                  `json:"unit"`
	UnitConversion gribmeta.UnitConversion `json:"unit_conversion"`
	Class          gribmeta.Class          `json:"class"`
	Unresolved     bool                    `json:"unresolved,omitempty"`

	// Display unit equation: display = UnitM*value + UnitB, or 10^value
	// when UnitM is gribmeta.Log10Multiplier.
	DisplayUnit string  `json:"display_unit"`
	UnitM       float64 `json:"unit_m"`
	UnitB       float64 `json:"unit_b"`
	UnitDefault bool    `json:"unit_default"`

	LevelShort string `json:"level_short"`
	LevelLong  string `json:"level_long"`

	CenterName    string `json:"center_name,omitempty"`
	SubCenterName string `json:"sub_center_name,omitempty"`
	ProcessName   string `json:"process_name,omitempty"`

	ReferenceTime string  `json:"reference_time"`
	ValidTime     string  `json:"valid_time"`
	ValidLocal    string  `json:"valid_local"`
	ValidDay      string  `json:"valid_day"`
	ForecastHours float64 `json:"forecast_hours"`

	Source       string `json:"source,omitempty"`
	MessageIndex int    `json:"message_index,omitempty"`

	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
