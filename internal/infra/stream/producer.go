// Package stream publishes moderation outcomes to Kafka for downstream
// consumers (notification workers, audit trail).
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
)

type ModerationEvent struct {
	Action     string    `json:"action"`
	ItemKind   string    `json:"item_kind"`
	ItemID     uuid.UUID `json:"item_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Outcome    string    `json:"outcome"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Producer{writer: writer, logger: logger}
}

// Publish keys messages by item ID so outcomes for one item stay ordered
// within a partition.
func (p *Producer) Publish(ctx context.Context, ev ModerationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode moderation event")
	}

	msg := kafka.Message{
		Key:   []byte(ev.ItemID.String()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish moderation event")
	}

	p.logger.Info("moderation event published",
		slog.String("action", ev.Action),
		slog.String("item_id", ev.ItemID.String()),
		slog.String("outcome", ev.Outcome),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
