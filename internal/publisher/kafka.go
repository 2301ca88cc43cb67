package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
)

var _ port.MatchPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher emits discovered matches as JSON events keyed by symbol,
// for the transaction-building layer to consume.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) *KafkaPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &KafkaPublisher{writer: writer, log: log}
}

func (p *KafkaPublisher) PublishMatches(ctx context.Context, symbol string, matches []domain.Match) error {
	if len(matches) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(matches))
	for _, m := range matches {
		value, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("publisher: encode match %s: %w", m.ID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(symbol),
			Value: value,
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.log.Error("writing match events failed",
			zap.String("symbol", symbol),
			zap.Int("count", len(msgs)),
			zap.Error(err),
		)
		return fmt.Errorf("publisher: write match events: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
