package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"restaurant/internal/core/domain/model/kernel"

	kafkago "github.com/segmentio/kafka-go"
)

// PriceChangeHandler processes one decoded price change notification.
// The handler is expected to re-read the product's stored price rather
// than trust the event payload, so duplicates and reordering are safe.
type PriceChangeHandler func(ctx context.Context, productID kernel.UUID) error

// PriceChangeConsumer reads price change events from Kafka and feeds them to
// a handler. Malformed messages are logged and skipped; handler failures are
// logged and do not stop the loop.
type PriceChangeConsumer struct {
	reader  *kafkago.Reader
	handler PriceChangeHandler
	logger  *slog.Logger
}

// NewPriceChangeConsumer creates a consumer on top of a configured reader.
func NewPriceChangeConsumer(
	reader *kafkago.Reader,
	handler PriceChangeHandler,
	logger *slog.Logger,
) *PriceChangeConsumer {
	return &PriceChangeConsumer{
		reader:  reader,
		handler: handler,
		logger:  logger.With("component", "price_change_consumer"),
	}
}

// Run consumes messages until the context is cancelled.
func (c *PriceChangeConsumer) Run(ctx context.Context) {
	c.logger.InfoContext(ctx, "Price change consumer started")

	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.InfoContext(ctx, "Price change consumer stopped")
				return
			}
			c.logger.ErrorContext(ctx, "Failed to read price change message", "error", err)
			continue
		}

		var msg priceChangedMessage
		if err = json.Unmarshal(message.Value, &msg); err != nil {
			c.logger.ErrorContext(ctx, "Failed to decode price change message",
				"error", err, "offset", message.Offset)
			continue
		}

		productID, err := kernel.UUIDFromString(msg.ProductID)
		if err != nil {
			c.logger.ErrorContext(ctx, "Price change message carries an invalid product id",
				"error", err, "product_id", msg.ProductID)
			continue
		}

		if err = c.handler(ctx, productID); err != nil {
			c.logger.ErrorContext(ctx, "Failed to process price change",
				"error", err, "product_id", msg.ProductID)
		}
	}
}

// Close releases the underlying reader.
func (c *PriceChangeConsumer) Close() error {
	return c.reader.Close()
}
