//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/kafka"
	"github.com/couchcryptid/temperature-heatmap/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testTopic = "test-observations"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node broker and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("heatmap-test"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start kafka container")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

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

// writeDataset stores two years of observations as a local source file.
func writeDataset(t *testing.T) string {
	t.Helper()
	raw := domain.RawDataset{BaseTemperature: 8.66}
	for year := 1753; year <= 1754; year++ {
		for month := 1; month <= 12; month++ {
			raw.MonthlyVariance = append(raw.MonthlyVariance, domain.RawObservation{
				Year:     year,
				Month:    month,
				Variance: float64(month-6)*0.5 + float64(year-1753)*0.1,
			})
		}
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "global-temperature.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

type publishedObservation struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"month_name"`
	Temp      float64   `json:"temp"`
	Bucket    int       `json:"bucket"`
	Color     string    `json:"color"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// TestPipelineExport loads a dataset from disk, builds the chart, and exports
// every observation through a real broker.
func TestPipelineExport(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{
		KafkaBrokers: []string{broker},
		KafkaTopic:   testTopic,
	}

	metrics := observability.NewMetricsForTesting()
	client := source.NewClient(10*time.Second, metrics, discardLogger())
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(client, writer, pipeline.DefaultOptions(writeDataset(t)), discardLogger(), metrics)

	n, err := p.Export(ctx)
	require.NoError(t, err)
	require.Equal(t, 24, n)
	require.NoError(t, p.CheckReadiness(ctx))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	seen := make(map[string]publishedObservation, n)
	for len(seen) < n {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from topic")

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		_, err = time.Parse(time.RFC3339, headers["loaded_at"])
		assert.NoError(t, err, "loaded_at should be valid RFC3339")

		var obs publishedObservation
		require.NoError(t, json.Unmarshal(msg.Value, &obs))
		assert.Equal(t, obs.Color, headers["bucket_color"])
		seen[string(msg.Key)] = obs
	}

	first, ok := seen["1753-01"]
	require.True(t, ok, "missing 1753-01")
	assert.Equal(t, 0, first.Month)
	assert.Equal(t, "January", first.MonthName)
	assert.InDelta(t, 6.16, first.Temp, 1e-9)
	assert.Equal(t, 0, first.Bucket)
	assert.Equal(t, "#5e4fa2", first.Color)

	last, ok := seen["1754-12"]
	require.True(t, ok, "missing 1754-12")
	assert.Equal(t, "December", last.MonthName)
	assert.InDelta(t, 11.76, last.Temp, 1e-9)
	assert.Equal(t, 9, last.Bucket)
}
