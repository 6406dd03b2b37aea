package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"

	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/observability"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw event into an output event ready for the sink.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes multiple output events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Retry delays after a failed extract or load; doubled per failure.
const (
	initialBackoff  = 200 * time.Millisecond
	maxBackoffDelay = 5 * time.Second
)

// Pipeline orchestrates the extract-label-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once a batch has been loaded.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not loaded any records yet")
	}
	return nil
}

// Ready reports whether a batch has been loaded.
func (p *Pipeline) Ready() bool {
	return p.ready.Load()
}

// labeledBatch pairs the events bound for the sink with the messages they
// were labeled from. Skipped messages are already committed.
type labeledBatch struct {
	events []domain.OutputEvent
	source []domain.RawEvent
}

// Run executes the batch ETL loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	delay := initialBackoff
	for ctx.Err() == nil {
		rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			p.logger.Error("extract batch failed", "error", err, "retry_in", delay)
			if !retry.SleepWithContext(ctx, delay) {
				break
			}
			delay = retry.NextBackoff(delay, maxBackoffDelay)
			continue
		}
		delay = initialBackoff

		if len(rawBatch) > 0 && !p.processBatch(ctx, rawBatch) {
			break
		}
	}

	p.logger.Info("pipeline stopping", "reason", ctx.Err())
	return nil
}

// processBatch labels, delivers and commits one extracted batch. It returns
// false when ctx ended before the sink accepted the batch.
func (p *Pipeline) processBatch(ctx context.Context, rawBatch []domain.RawEvent) bool {
	start := time.Now()
	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))

	batch := p.label(ctx, rawBatch)
	if len(batch.events) == 0 {
		return true
	}

	if !p.deliver(ctx, batch.events) {
		return false
	}
	p.metrics.MessagesProduced.Add(float64(len(batch.events)))
	for _, raw := range batch.source {
		p.commitOffset(ctx, raw)
	}

	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	return true
}

// label transforms every message. A message that cannot be labeled is
// committed and dropped so it is never fetched again.
func (p *Pipeline) label(ctx context.Context, rawBatch []domain.RawEvent) labeledBatch {
	batch := labeledBatch{
		events: make([]domain.OutputEvent, 0, len(rawBatch)),
		source: make([]domain.RawEvent, 0, len(rawBatch)),
	}
	for _, raw := range rawBatch {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("transform failed, skipping message",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			p.commitOffset(ctx, raw)
			continue
		}
		batch.events = append(batch.events, out)
		batch.source = append(batch.source, raw)
	}
	return batch
}

// deliver writes events to the sink, resending the same batch with growing
// delays until the sink accepts it or ctx ends. The reader does not fetch
// uncommitted messages a second time, so a batch given up here would be lost.
func (p *Pipeline) deliver(ctx context.Context, events []domain.OutputEvent) bool {
	delay := initialBackoff
	for attempt := 1; ; attempt++ {
		err := p.loader.LoadBatch(ctx, events)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		p.metrics.LoadRetries.Inc()
		p.logger.Error("load batch failed",
			"error", err,
			"batch_size", len(events),
			"attempt", attempt,
			"retry_in", delay,
		)
		if !retry.SleepWithContext(ctx, delay) {
			return false
		}
		delay = retry.NextBackoff(delay, maxBackoffDelay)
	}
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}
