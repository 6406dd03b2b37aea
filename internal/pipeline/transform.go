package pipeline

import (
	"context"

	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/observability"
)

// Outcome label values for ParametersResolved.
const (
	outcomeResolved = "resolved"
	outcomeUnknown  = "unknown"
)

// GribTransformer implements Transformer by labeling decoded GRIB records.
type GribTransformer struct {
	labeler *domain.Labeler
	metrics *observability.Metrics
}

// NewTransformer creates a GribTransformer. metrics may be nil.
func NewTransformer(labeler *domain.Labeler, metrics *observability.Metrics) *GribTransformer {
	return &GribTransformer{labeler: labeler, metrics: metrics}
}

func (t *GribTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	rec, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	labeled := t.labeler.Label(rec)
	if t.metrics != nil {
		outcome := outcomeResolved
		if labeled.Unresolved {
			outcome = outcomeUnknown
		}
		t.metrics.ParametersResolved.WithLabelValues(string(labeled.Class), outcome).Inc()
	}

	return domain.SerializeLabeledRecord(labeled)
}
