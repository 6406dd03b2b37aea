package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

// DefaultTimeFormat renders reference and valid times.
const DefaultTimeFormat = "%Y-%m-%dT%H:%M:%SZ"

// ErrInvalidRecord marks a record that cannot be labeled.
var ErrInvalidRecord = errors.New("invalid grib record")

// ParseRawEvent deserializes a RawEvent's value into a GribRecord and rejects
// negative table codes.
func ParseRawEvent(raw RawEvent) (GribRecord, error) {
	var rec GribRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return GribRecord{}, fmt.Errorf("parse raw event: %w", err)
	}
	if err := validateRecord(rec); err != nil {
		return GribRecord{}, err
	}
	return rec, nil
}

func validateRecord(rec GribRecord) error {
	fields := []struct {
		name  string
		value int
	}{
		{"center", rec.Center},
		{"discipline", rec.Discipline},
		{"category", rec.Category},
		{"subcategory", rec.Subcategory},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s %d: %w", f.name, f.value, ErrInvalidRecord)
		}
	}
	return nil
}

// LabelOptions controls how a Labeler renders units and times.
type LabelOptions struct {
	Units       gribmeta.UnitSystem
	TimeFormat  string
	DisplayMode calendar.DisplayMode
}

// Labeler turns GribRecords into LabeledRecords. It is safe for concurrent use.
type Labeler struct {
	resolver *gribmeta.Resolver
	engine   *calendar.Engine
	opts     LabelOptions
	zoneFor  func(lat, lon float64) (calendar.ZoneProvider, error)
}

// NewLabeler creates a Labeler. A nil resolver uses the compiled-in tables
// and a nil engine formats local times in the host zone.
func NewLabeler(resolver *gribmeta.Resolver, engine *calendar.Engine, opts LabelOptions) *Labeler {
	if resolver == nil {
		resolver = gribmeta.NewResolver(nil)
	}
	if engine == nil {
		engine = calendar.NewEngine(nil, nil)
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	return &Labeler{
		resolver: resolver,
		engine:   engine,
		opts:     opts,
		zoneFor: func(lat, lon float64) (calendar.ZoneProvider, error) {
			return calendar.ZoneForCoordinates(lat, lon)
		},
	}
}

// Resolver returns the parameter resolver the labeler uses.
func (l *Labeler) Resolver() *gribmeta.Resolver { return l.resolver }

// Label resolves the parameter, level, display unit and times of a record.
func (l *Labeler) Label(rec GribRecord) LabeledRecord {
	req := rec.Request()
	label := l.resolver.Resolve(req)
	eq, converted := gribmeta.ComputeUnit(label.Convert, label.Unit, l.opts.Units)
	levelShort, levelLong := l.resolver.LevelName(rec.Center, rec.SubCenter, rec.SurfaceType, rec.SurfaceValue, rec.SecondSurfaceValue)

	out := LabeledRecord{
		ID:             generateID(rec),
		Element:        label.Name,
		Comment:        label.Comment,
		Unit:           label.Unit,
		UnitConversion: label.Convert,
		Class:          gribmeta.Classify(req),
		Unresolved:     label.Unknown(),
		DisplayUnit:    eq.Label,
		UnitM:          eq.M,
		UnitB:          eq.B,
		UnitDefault:    !converted,
		LevelShort:     levelShort,
		LevelLong:      levelLong,
		ReferenceTime:  calendar.Format(rec.ReferenceTime, l.opts.TimeFormat),
		ValidTime:      calendar.Format(rec.ValidTime, l.opts.TimeFormat),
		ValidLocal:     l.formatLocal(rec),
		ValidDay:       calendar.Format(rec.ValidTime, "%v"),
		ForecastHours:  (rec.ValidTime - rec.ReferenceTime) / 3600,
		Source:         rec.Source,
		MessageIndex:   rec.MessageIndex,
		ProcessedAt:    clock.Now().UTC(),
	}
	out.CenterName, _ = l.resolver.CenterName(rec.Center)
	out.SubCenterName, _ = l.resolver.SubCenterName(rec.Center, rec.SubCenter)
	out.ProcessName, _ = l.resolver.ProcessName(rec.Center, rec.GenID)
	return out
}

// formatLocal renders the valid time in the record's own zone when it carries
// a position the zone map covers, and in the engine zone otherwise. Daylight
// time is only applied to record zones that keep the US schedule.
func (l *Labeler) formatLocal(rec GribRecord) string {
	mode := l.opts.DisplayMode
	if mode == calendar.DisplayUTC || rec.Lat == nil || rec.Lon == nil {
		return l.engine.FormatInstant(rec.ValidTime, l.opts.TimeFormat, mode)
	}
	zone, err := l.zoneFor(*rec.Lat, *rec.Lon)
	if err != nil {
		return l.engine.FormatInstant(rec.ValidTime, l.opts.TimeFormat, mode)
	}
	daylight := mode == calendar.DisplayLocalDaylight
	if z, ok := zone.(interface{ FollowsUSDaylight() bool }); ok && !z.FollowsUSDaylight() {
		daylight = false
	}
	return calendar.FormatWithOffset(rec.ValidTime, l.opts.TimeFormat, zone.UTCOffset(), daylight)
}

// generateID produces a deterministic ID from the fields that identify a
// message, so replays of the same file yield the same keys downstream.
func generateID(rec GribRecord) string {
	second := "-"
	if rec.SecondSurfaceValue != nil {
		second = fmt.Sprintf("%g", *rec.SecondSurfaceValue)
	}
	input := fmt.Sprintf("%d|%d|%d|%d|%d|%d|%d|%d|%d|%g|%s|%.0f|%.0f|%d|%g|%g|%d|%d|%s|%d",
		rec.Center, rec.SubCenter, rec.Discipline, rec.Template, rec.Category, rec.Subcategory,
		rec.LengthOfTime, rec.StatProcess, rec.SurfaceType, rec.SurfaceValue, second,
		rec.ReferenceTime, rec.ValidTime, rec.ProbabilityType, rec.LowerLimit, rec.UpperLimit,
		rec.Percentile, rec.DerivedForecast, rec.Source, rec.MessageIndex)
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}

// SerializeLabeledRecord marshals a labeled record into an output event keyed
// by its ID.
func SerializeLabeledRecord(rec LabeledRecord) (OutputEvent, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize labeled record: %w", err)
	}
	return OutputEvent{
		Key:   []byte(rec.ID),
		Value: data,
		Headers: map[string]string{
			"element":      rec.Element,
			"processed_at": rec.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
