package jobs

import (
	"fmt"
)

// JobManager coordinates all background jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	priceChangeConsumerJob *PriceChangeConsumerJob
	menuRevalidationJob    *MenuRevalidationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	priceChangeConsumerJob *PriceChangeConsumerJob,
	menuRevalidationJob *MenuRevalidationJob,
) *JobManager {
	return &JobManager{
		priceChangeConsumerJob: priceChangeConsumerJob,
		menuRevalidationJob:    menuRevalidationJob,
	}
}

// StartAll starts all background jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.priceChangeConsumerJob.Start(); err != nil {
		return fmt.Errorf("failed to start price change consumer job: %w", err)
	}

	if err := jm.menuRevalidationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.priceChangeConsumerJob.Stop()
		return fmt.Errorf("failed to start menu revalidation job: %w", err)
	}

	return nil
}

// StopAll stops all background jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.menuRevalidationJob.Stop()
	jm.priceChangeConsumerJob.Stop()
}
