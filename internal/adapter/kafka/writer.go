package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/aquaculture-sites-service/internal/config"
	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

// Writer publishes normalized site snapshots to a Kafka topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sites topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSitesTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSites writes one message per site in a single WriteMessages call.
// Messages are keyed by region and site so a compacted topic keeps the
// latest snapshot of each site.
func (w *Writer) PublishSites(ctx context.Context, region string, sites []domain.Site, publishedAt time.Time) error {
	if len(sites) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(sites))
	for i := range sites {
		msg, err := serializeToMessage(region, i, sites[i], publishedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %s sites: %w", region, err)
	}
	w.logger.Debug("published sites", "region", region, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// messageKey identifies a site within a region, falling back to its row
// position when the source has no identifier.
func messageKey(region string, index int, site domain.Site) string {
	id := site.ID
	if id == "" {
		id = "row-" + strconv.Itoa(index)
	}
	return region + ":" + id
}

// serializeToMessage marshals a Site into a Kafka message.
func serializeToMessage(region string, index int, site domain.Site, publishedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(site)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize site: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(messageKey(region, index, site)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "region", Value: []byte(region)},
			{Key: "published_at", Value: []byte(publishedAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}
