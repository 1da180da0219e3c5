package kafka

import (
	"context"
	"encoding/json"

	"restaurant/internal/core/domain/model/product"

	kafkago "github.com/segmentio/kafka-go"
)

// PriceChangePublisher publishes product price change events to Kafka.
type PriceChangePublisher struct {
	writer *kafkago.Writer
}

// NewPriceChangePublisher creates a publisher on top of a configured writer.
func NewPriceChangePublisher(writer *kafkago.Writer) *PriceChangePublisher {
	return &PriceChangePublisher{writer: writer}
}

// Publish writes the price change event to the topic.
func (p *PriceChangePublisher) Publish(ctx context.Context, event product.PriceChanged) error {
	payload, err := json.Marshal(priceChangedMessage{
		ProductID:  event.ProductID.String(),
		NewPrice:   event.NewPrice.Amount(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.ProductID.String()),
		Value: payload,
	})
}

// Close releases the underlying writer.
func (p *PriceChangePublisher) Close() error {
	return p.writer.Close()
}
