package snapshot

import (
	"log/slog"
	"time"

	"homefinder/internal/database"
	"homefinder/internal/models"
)

// Service captures daily platform statistics so the admin dashboard can
// chart growth over time.
type Service struct {
	store  database.Store
	logger *slog.Logger
}

// NewService creates a new snapshot service
func NewService(store database.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CaptureDaily records today's platform counters. Running it twice on the
// same day overwrites the earlier capture.
func (s *Service) CaptureDaily() error {
	stats, err := s.store.PlatformStats()
	if err != nil {
		return err
	}

	snap := &models.StatsSnapshot{
		SnapshotAt:     time.Now().UTC().Truncate(24 * time.Hour),
		TotalUsers:     stats.TotalUsers,
		TotalListings:  stats.TotalListings,
		ActiveListings: stats.ActiveListings,
		TotalEnquiries: stats.TotalEnquiries,
	}
	if err := s.store.SaveStatsSnapshot(snap); err != nil {
		return err
	}

	s.logger.Info("stats snapshot captured",
		"snapshot_at", snap.SnapshotAt.Format("2006-01-02"),
		"total_users", snap.TotalUsers,
		"total_listings", snap.TotalListings,
		"active_listings", snap.ActiveListings,
		"total_enquiries", snap.TotalEnquiries)
	return nil
}

// Recent returns the most recent snapshots, newest first.
func (s *Service) Recent(limit int) ([]models.StatsSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.store.RecentStatsSnapshots(limit)
}
