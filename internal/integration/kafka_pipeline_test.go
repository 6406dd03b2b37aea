//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/grib-metadata-etl/internal/adapter/kafka"
	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/config"
	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/fixtures"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
	"github.com/couchcryptid/grib-metadata-etl/internal/observability"
	"github.com/couchcryptid/grib-metadata-etl/internal/pipeline"
)

const (
	testSourceTopic = "test-source"
	testSinkTopic   = "test-sink"
	kafkaImage      = "confluentinc/confluent-local:7.5.0"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node broker for the test and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, kafkaImage, tckafka.WithClusterID("grib-metadata-test"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start kafka container")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

func testConfig(broker, group string) *config.Config {
	return &config.Config{
		KafkaBrokers:       []string{broker},
		KafkaSourceTopic:   testSourceTopic,
		KafkaSinkTopic:     testSinkTopic,
		KafkaGroupID:       fmt.Sprintf("%s-%d", group, time.Now().UnixNano()),
		BatchSize:          50,
		BatchFlushInterval: 5 * time.Second,
	}
}

func newTransformer(metrics *observability.Metrics) *pipeline.GribTransformer {
	labeler := domain.NewLabeler(nil, calendar.NewEngine(calendar.FixedZone(0), nil),
		domain.LabelOptions{Units: gribmeta.UnitsEnglish})
	return pipeline.NewTransformer(labeler, metrics)
}

func publish(ctx context.Context, t *testing.T, broker string, msgs ...kafkago.Message) {
	t.Helper()
	producer := &kafkago.Writer{
		Addr:  kafkago.TCP(broker),
		Topic: testSourceTopic,
	}
	t.Cleanup(func() { _ = producer.Close() })
	require.NoError(t, producer.WriteMessages(ctx, msgs...))
}

func recordMessage(t *testing.T, key string, rec domain.GribRecord) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(rec)
	require.NoError(t, err)
	return kafkago.Message{Key: []byte(key), Value: payload, Time: fixtures.Reference}
}

func sinkConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

// labeledMessage holds a deserialized message read from the sink topic.
type labeledMessage struct {
	Record  domain.LabeledRecord
	Key     string
	Headers map[string]string
}

// readLabeled reads a single message from the sink consumer and deserializes it.
func readLabeled(ctx context.Context, t *testing.T, consumer *kafkago.Reader) labeledMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var rec domain.LabeledRecord
	require.NoError(t, json.Unmarshal(msg.Value, &rec), "unmarshal sink message")

	return labeledMessage{Record: rec, Key: string(msg.Key), Headers: headers}
}

func runPipeline(ctx context.Context, t *testing.T, cfg *config.Config, metrics *observability.Metrics) (stop func()) {
	t.Helper()
	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(reader, newTransformer(metrics), writer, discardLogger(), metrics, cfg.BatchSize)

	pipelineCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	return func() {
		cancel()
		require.NoError(t, <-errCh)
	}
}

// TestKafkaReaderWriter verifies the adapter layer: kafka.Reader (Extractor)
// and kafka.Writer (Loader) round-trip a record through Kafka.
func TestKafkaReaderWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-reader")

	record := fixtures.Records()[0] // NDFD 2 m temperature
	msg := recordMessage(t, "test-key", record)
	publish(ctx, t, broker, msg)

	// Retry because the consumer group may need time to rebalance before
	// partitions are assigned.
	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	var batch []domain.RawEvent
	for len(batch) == 0 {
		var err error
		batch, err = reader.ExtractBatch(ctx, 1)
		require.NoError(t, err)
		if ctx.Err() != nil {
			t.Fatal("timed out waiting for message from source topic")
		}
	}
	require.Len(t, batch, 1)
	raw := batch[0]
	assert.Equal(t, []byte("test-key"), raw.Key)
	assert.Equal(t, msg.Value, raw.Value)
	assert.Equal(t, testSourceTopic, raw.Topic)
	require.NotNil(t, raw.Commit, "commit callback should be set")
	require.NoError(t, raw.Commit(ctx))

	out, err := newTransformer(nil).Transform(ctx, raw)
	require.NoError(t, err)

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })
	require.NoError(t, writer.LoadBatch(ctx, []domain.OutputEvent{out}))

	lm := readLabeled(ctx, t, sinkConsumer(t, broker))
	assert.Equal(t, "T", lm.Headers["element"])
	_, err = time.Parse(time.RFC3339, lm.Headers["processed_at"])
	assert.NoError(t, err, "processed_at should be valid RFC3339")

	assert.Equal(t, lm.Record.ID, lm.Key)
	assert.Equal(t, "T", lm.Record.Element)
	assert.Equal(t, "[F]", lm.Record.DisplayUnit)
	assert.Equal(t, "2-HTGL", lm.Record.LevelShort)
	assert.Equal(t, "US-NWSTG", lm.Record.CenterName)
	assert.Equal(t, "Independence Day", lm.Record.ValidDay)
	assert.InDelta(t, 12, lm.Record.ForecastHours, 1e-9)
}

// TestPipelineEndToEnd wires Reader, Transformer and Writer with real Kafka
// and verifies every fixture is labeled.
func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-pipeline")

	cases := fixtures.Cases()
	msgs := make([]kafkago.Message, 0, len(cases))
	for i, c := range cases {
		msgs = append(msgs, recordMessage(t, fmt.Sprintf("record-%d", i), c.Record))
	}
	publish(ctx, t, broker, msgs...)

	metrics := observability.NewMetricsForTesting()
	stop := runPipeline(ctx, t, cfg, metrics)

	consumer := sinkConsumer(t, broker)
	bySource := make(map[string]labeledMessage, len(cases))
	for range cases {
		lm := readLabeled(ctx, t, consumer)
		bySource[lm.Record.Source+"#"+strconv.Itoa(lm.Record.MessageIndex)] = lm
	}
	stop()

	require.Len(t, bySource, len(cases))
	for _, c := range cases {
		lm, ok := bySource[c.Record.Source+"#"+strconv.Itoa(c.Record.MessageIndex)]
		require.True(t, ok, "missing %s", c.Name)
		assert.Equal(t, c.Element, lm.Record.Element, c.Name)
		assert.Equal(t, c.Class, lm.Record.Class, c.Name)
		assert.Equal(t, c.Element, lm.Headers["element"], c.Name)
		assert.Len(t, lm.Record.ID, 16, c.Name)
	}
}

// TestPipelineTransformError verifies that an invalid message (poison pill)
// is skipped and the pipeline continues with valid messages.
func TestPipelineTransformError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-poison")

	publish(ctx, t, broker,
		kafkago.Message{Key: []byte("bad"), Value: []byte("not-json{{{"), Time: fixtures.Reference},
		kafkago.Message{Key: []byte("negative"), Value: []byte(`{"center":-7}`), Time: fixtures.Reference},
		recordMessage(t, "good", fixtures.Records()[2]),
	)

	metrics := observability.NewMetricsForTesting()
	stop := runPipeline(ctx, t, cfg, metrics)

	consumer := sinkConsumer(t, broker)
	lm := readLabeled(ctx, t, consumer)
	assert.Equal(t, "TMP", lm.Record.Element)
	assert.Equal(t, "50000-ISBL", lm.Record.LevelShort)

	// Verify no second message arrives.
	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	_, err := consumer.ReadMessage(readCtx)
	readCancel()
	assert.Error(t, err, "expected no second message on sink topic")

	stop()
}
