/**
 * @description
 * Cron-driven background synchronization. When enabled, every account held
 * at a connected institution gets a periodic SYNC_ACCOUNT refresh. Disabled
 * by default: the dashboard is a single-actor system and the scheduler is
 * the only optional background source of audit entries.
 */
package app

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SyncJobs holds the periodic jobs run by the scheduler.
type SyncJobs struct {
	service *DesignationService
	logger  *slog.Logger
}

// NewSyncJobs creates the job set.
func NewSyncJobs(service *DesignationService, logger *slog.Logger) *SyncJobs {
	return &SyncJobs{service: service, logger: logger}
}

// SyncConnectedAccounts refreshes every account whose institution has API
// connectivity. Accounts at disconnected institutions are skipped.
func (j *SyncJobs) SyncConnectedAccounts() {
	ctx := context.Background()

	accounts, err := j.service.ListAccounts(ctx)
	if err != nil {
		j.logger.Error("failed to list accounts for sync", "error", err)
		return
	}

	for _, account := range accounts {
		if !j.service.Institution(account.Institution).Connected {
			continue
		}
		if err := j.service.SyncAccount(ctx, account.ID); err != nil {
			j.logger.Error("account sync failed", "account_id", account.ID, "error", err)
		}
	}
}

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron     *cron.Cron
	jobs     *SyncJobs
	logger   *slog.Logger
	schedule string
}

// NewScheduler creates a scheduler running the sync job on the given cron
// schedule.
func NewScheduler(jobs *SyncJobs, logger *slog.Logger, schedule string) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:     c,
		jobs:     jobs,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(s.schedule, s.jobs.SyncConnectedAccounts); err != nil {
		s.logger.Error("failed to schedule institution sync job", "error", err)
	} else {
		s.logger.Info("scheduled institution sync job", "schedule", s.schedule)
	}

	s.cron.Start()
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
