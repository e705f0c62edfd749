package models

import "time"

// StatsSnapshot is a once-per-day capture of platform totals, written by the
// scheduler so the admin dashboard can show trends.
type StatsSnapshot struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SnapshotAt     time.Time `gorm:"not null;uniqueIndex" json:"snapshot_at"`
	TotalUsers     int64     `gorm:"not null" json:"total_users"`
	TotalListings  int64     `gorm:"not null" json:"total_listings"`
	ActiveListings int64     `gorm:"not null" json:"active_listings"`
	TotalEnquiries int64     `gorm:"not null" json:"total_enquiries"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}

// PlatformStats are the live totals served by the admin stats endpoint.
type PlatformStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalListings  int64 `json:"totalListings"`
	ActiveListings int64 `json:"activeListings"`
	TotalEnquiries int64 `json:"totalEnquiries"`
}
