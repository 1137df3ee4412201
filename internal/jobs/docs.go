// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SnapshotSyncJob - re-pushes the snapshot of every store whose last mirror save failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	syncJob := jobs.NewSnapshotSyncJob(
//		[]jobs.SyncableStore{identities, orders},
//		config.SnapshotSyncSchedule,
//		logger,
//	)
//	jobManager := jobs.NewJobManager(syncJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll(ctx)
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. The default "*/30 * * * * *"
// runs the sync every 30 seconds. Clean stores are skipped, so an idle tick costs nothing.
//
// # Error Handling
//
// Mirror failures never undo in-memory mutations; stores stay dirty until a sync
// succeeds. Failed syncs are logged and retried on the next tick.
package jobs
