package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSnapshotSyncSchedule runs the sync every 30 seconds.
const DefaultSnapshotSyncSchedule = "*/30 * * * * *"

// SyncableStore is a store that mirrors its state and can re-push it after a failed save.
// identitystore.Store and orderstore.Store implement it.
type SyncableStore interface {
	Name() string
	Dirty() bool
	Sync(ctx context.Context) error
}

// SnapshotSyncJob periodically pushes the snapshot of every dirty store to its mirror.
type SnapshotSyncJob struct {
	stores   []SyncableStore
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotSyncJob creates the job. An empty schedule means DefaultSnapshotSyncSchedule;
// the schedule uses the six-field cron format with seconds.
func NewSnapshotSyncJob(stores []SyncableStore, schedule string, logger *slog.Logger) *SnapshotSyncJob {
	if schedule == "" {
		schedule = DefaultSnapshotSyncSchedule
	}
	return &SnapshotSyncJob{
		stores:   stores,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_sync_job"),
	}
}

// Start schedules the job.
func (j *SnapshotSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot sync job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot sync job started", "schedule", j.schedule)
	return nil
}

// RunOnce syncs every dirty store. A failing store does not prevent the others from
// being synced; all failures are returned joined.
func (j *SnapshotSyncJob) RunOnce(ctx context.Context) error {
	var failures []error
	for _, store := range j.stores {
		if !store.Dirty() {
			continue
		}
		if err := store.Sync(ctx); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", store.Name(), err))
			continue
		}
		j.logger.InfoContext(ctx, "Snapshot synced", "store", store.Name())
	}
	return errors.Join(failures...)
}

// Stop stops the scheduler and waits for a running sync to finish.
func (j *SnapshotSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot sync job stopped")
}
