package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// MenuRevalidationJob periodically re-propagates the stored price of every
// product through the menus referencing it. The sweep is the safety net for
// price change events the consumer never saw; propagation is idempotent, so
// a sweep over already consistent menus changes nothing.
type MenuRevalidationJob struct {
	productsHandler  queries.GetProductsQueryHandler
	propagateHandler commands.PropagateProductPriceCommandHandler
	cron             *cron.Cron
	schedule         string
	logger           *slog.Logger
}

// NewMenuRevalidationJob creates a job sweeping all menus on the given cron schedule.
func NewMenuRevalidationJob(
	productsHandler queries.GetProductsQueryHandler,
	propagateHandler commands.PropagateProductPriceCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MenuRevalidationJob {
	return &MenuRevalidationJob{
		productsHandler:  productsHandler,
		propagateHandler: propagateHandler,
		cron:             cron.New(),
		schedule:         schedule,
		logger:           logger.With("component", "menu_revalidation_job"),
	}
}

// Start schedules the revalidation sweep.
func (j *MenuRevalidationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runSweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu revalidation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the revalidation sweep.
func (j *MenuRevalidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Menu revalidation job stopped")
}

func (j *MenuRevalidationJob) runSweep() {
	ctx := context.Background()

	products, err := j.productsHandler.Handle(ctx, queries.NewGetProductsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Menu revalidation sweep failed to list products", "error", err)
		return
	}

	for _, p := range products {
		productID, idErr := kernel.UUIDFromString(p.ID)
		if idErr != nil {
			j.logger.ErrorContext(ctx, "Menu revalidation sweep skipped a product",
				"error", idErr, "product_id", p.ID)
			continue
		}

		cmd, cmdErr := commands.NewPropagateProductPriceCommand(productID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Menu revalidation sweep skipped a product",
				"error", cmdErr, "product_id", p.ID)
			continue
		}

		if handleErr := j.propagateHandler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Menu revalidation sweep failed for product",
				"error", handleErr, "product_id", p.ID)
		}
	}
}
