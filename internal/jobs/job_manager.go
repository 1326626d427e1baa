package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatusJob *OrderStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orderStatusJob *OrderStatusJob) *JobManager {
	return &JobManager{
		orderStatusJob: orderStatusJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, waiting for running ones.
func (jm *JobManager) StopAll() {
	jm.orderStatusJob.Stop()
}
