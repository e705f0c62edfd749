package scheduler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/robfig/cron/v3"

	"homefinder/internal/cleanup"
	"homefinder/internal/config"
	"homefinder/internal/snapshot"
)

// Scheduler runs the nightly maintenance jobs: the stats snapshot and the
// archived enquiry purge.
type Scheduler struct {
	cron      *cron.Cron
	snapshot  *snapshot.Service
	cleanup   *cleanup.Service
	config    *config.Config
	logger    *slog.Logger
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(snap *snapshot.Service, clean *cleanup.Service, cfg *config.Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		snapshot: snap,
		cleanup:  clean,
		config:   cfg,
		logger:   logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Retention.SnapshotEnabled {
		s.logger.Info("scheduler disabled in configuration")
		return nil
	}

	cronSpec := parseDailyRunTime(s.config.Retention.SnapshotTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		if err := s.snapshot.CaptureDaily(); err != nil {
			s.logger.Error("stats snapshot failed", "error", err)
		}
		if _, err := s.cleanup.Run(cleanup.Config{RetentionDays: s.config.Retention.ArchivedEnquiryDays}); err != nil {
			s.logger.Error("enquiry cleanup failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler started", "daily_run", s.config.Retention.SnapshotTime, "cron", cronSpec)
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		s.logger.Info("scheduler stopped")
	}
}

// parseDailyRunTime converts "HH:MM" to a cron spec. Malformed values fall
// back to 02:00.
func parseDailyRunTime(t string) string {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) == 2 {
		var hour, minute int
		if _, err := fmt.Sscanf(t, "%d:%d", &hour, &minute); err == nil &&
			hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
			return fmt.Sprintf("%d %d * * *", minute, hour)
		}
	}
	return "0 2 * * *"
}
