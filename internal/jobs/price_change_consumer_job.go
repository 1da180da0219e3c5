package jobs

import (
	"context"
	"log/slog"
	"sync"

	"restaurant/internal/adapters/out/kafka"
)

// PriceChangeConsumerJob runs the Kafka price change consumer as a managed
// background worker.
type PriceChangeConsumerJob struct {
	consumer *kafka.PriceChangeConsumer
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewPriceChangeConsumerJob creates a job wrapping the given consumer.
func NewPriceChangeConsumerJob(consumer *kafka.PriceChangeConsumer, logger *slog.Logger) *PriceChangeConsumerJob {
	return &PriceChangeConsumerJob{
		consumer: consumer,
		logger:   logger.With("component", "price_change_consumer_job"),
	}
}

// Start launches the consumer loop in a background goroutine.
func (j *PriceChangeConsumerJob) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go func() {
		defer close(j.done)
		j.consumer.Run(ctx)
	}()

	j.logger.InfoContext(ctx, "Price change consumer job started")
	return nil
}

// Stop cancels the consumer loop and waits for it to drain.
func (j *PriceChangeConsumerJob) Stop() {
	j.once.Do(func() {
		if j.cancel == nil {
			return
		}

		j.cancel()
		<-j.done

		if err := j.consumer.Close(); err != nil {
			j.logger.Error("Failed to close price change consumer", "error", err)
		}
		j.logger.Info("Price change consumer job stopped")
	})
}
