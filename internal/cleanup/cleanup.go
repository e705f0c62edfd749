package cleanup

import (
	"log/slog"
	"time"

	"homefinder/internal/database"
)

// Service handles physical deletion of old archived enquiries
type Service struct {
	store  database.Store
	logger *slog.Logger
}

// NewService creates a new cleanup service
func NewService(store database.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Config holds configuration for cleanup operations
type Config struct {
	// Days to keep archived enquiries before physical deletion
	RetentionDays int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{RetentionDays: 90}
}

// Result holds the result of a cleanup operation
type Result struct {
	PurgedCount int64     `json:"purged_count"`
	CutoffDate  time.Time `json:"cutoff_date"`
	ExecutedAt  time.Time `json:"executed_at"`
}

// Run deletes archived enquiries whose last update is older than the
// retention window. Enquiries in any other status are never touched.
func (s *Service) Run(cfg Config) (*Result, error) {
	if cfg.RetentionDays <= 0 {
		cfg = DefaultConfig()
	}
	cutoff := time.Now().AddDate(0, 0, -cfg.RetentionDays)

	purged, err := s.store.PurgeArchivedEnquiries(cutoff)
	if err != nil {
		return nil, err
	}

	result := &Result{
		PurgedCount: purged,
		CutoffDate:  cutoff,
		ExecutedAt:  time.Now(),
	}
	s.logger.Info("archived enquiry cleanup finished",
		"purged", purged,
		"cutoff", cutoff.Format("2006-01-02"),
		"retention_days", cfg.RetentionDays)
	return result, nil
}
