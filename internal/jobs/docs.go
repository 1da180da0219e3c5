// Package jobs provides background workers for the restaurant system.
//
// This package implements the asynchronous half of the menu price-consistency
// engine using github.com/robfig/cron/v3 and a Kafka consumer loop.
//
// # Available Jobs
//
// 1. PriceChangeConsumerJob - Consumes product price change events from Kafka
// and propagates each change through every menu referencing the product
// 2. MenuRevalidationJob - Runs on a cron schedule to re-propagate the current
// price of every product, catching any events the consumer missed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required jobs
//	jobManager := jobs.NewJobManager(consumerJob, revalidationJob, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The consumer logs and skips malformed messages; propagation is idempotent,
// so redelivered events are safe
// - The revalidation sweep logs per-product failures and continues with the
// remaining products
// - Failed job starts will stop any already running jobs
package jobs
