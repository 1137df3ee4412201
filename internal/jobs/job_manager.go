package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotSyncJob *SnapshotSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(snapshotSyncJob *SnapshotSyncJob) *JobManager {
	return &JobManager{
		snapshotSyncJob: snapshotSyncJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot sync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully and performs a last snapshot sync, so
// state that failed to mirror is retried once more before exit.
func (jm *JobManager) StopAll(ctx context.Context) error {
	jm.snapshotSyncJob.Stop()
	return jm.snapshotSyncJob.RunOnce(ctx)
}
