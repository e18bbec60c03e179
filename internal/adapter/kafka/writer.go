package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces observation messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// observationMessage is the JSON value of a published observation.
type observationMessage struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"` // 0-11
	MonthName string    `json:"month_name"`
	Variance  float64   `json:"variance"`
	Temp      float64   `json:"temp"`
	Bucket    int       `json:"bucket"`
	Color     string    `json:"color,omitempty"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// LoadBatch publishes every cell of a chart in a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, chart domain.Chart) error {
	if len(chart.Cells) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(chart.Cells))
	for i := range chart.Cells {
		msg, err := serializeToMessage(chart.Cells[i], chart.LoadedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write observations: %w", err)
	}
	w.logger.Debug("observations published", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// messageKey is "YYYY-MM" with a 1-based month, so messages for the same
// month always hash to the same partition.
func messageKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month+1)
}

// serializeToMessage marshals a chart cell into a Kafka message.
func serializeToMessage(cell domain.Cell, loadedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(observationMessage{
		Year:      cell.Year,
		Month:     cell.Month,
		MonthName: domain.MonthName(cell.Month),
		Variance:  cell.Variance,
		Temp:      cell.Temp,
		Bucket:    cell.Bucket,
		Color:     cell.Fill,
		LoadedAt:  loadedAt,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(messageKey(cell.Year, cell.Month)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "bucket_color", Value: []byte(cell.Fill)},
			{Key: "loaded_at", Value: []byte(loadedAt.Format(time.RFC3339))},
		},
	}, nil
}
