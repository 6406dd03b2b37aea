package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grib_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the labeling pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	LoadRetries      prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Parameter resolution.
	ParametersResolved *prometheus.CounterVec // labels: class={normal,probability,percentile}, outcome={resolved,unknown}

	// Remote table mirror.
	TableCache         *prometheus.CounterVec   // labels: result={hit,miss}
	TableFetchRequests *prometheus.CounterVec   // labels: status={ok,not_found,error,open}
	TableFetchDuration *prometheus.HistogramVec // labels: status
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total labeled records written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total messages skipped because they could not be labeled.",
		}),
		LoadRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_retries_total",
			Help:      "Total failed sink writes that were retried with the same batch.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100, 250},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-label-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ParametersResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parameters_resolved_total",
			Help:      "Parameter name resolutions by template class and outcome.",
		}, []string{"class", "outcome"}),
		TableCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_cache_total",
			Help:      "Table file cache lookups by result.",
		}, []string{"result"}),
		TableFetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_fetch_requests_total",
			Help:      "Table mirror requests by status.",
		}, []string{"status"}),
		TableFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "table_fetch_duration_seconds",
			Help:      "Table mirror request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"status"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.LoadRetries,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ParametersResolved,
		m.TableCache,
		m.TableFetchRequests,
		m.TableFetchDuration,
	}
}
