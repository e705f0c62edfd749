// Package database provides the persistence layer behind the API. Two
// implementations exist: a GORM-backed store for MySQL (and SQLite in
// tests), and a raw database/sql store for PostgreSQL. Which one runs is a
// deployment choice made in configuration.
package database

import (
	"errors"
	"time"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness rule,
	// such as saving the same property twice.
	ErrDuplicate = errors.New("duplicate record")
	// ErrTooManyImages is returned when an image append would push a
	// listing past MaxImagesPerProperty.
	ErrTooManyImages = errors.New("image limit reached")
)

// MaxImagesPerProperty caps the total images a single listing may carry.
const MaxImagesPerProperty = 10

// Store is the full persistence surface. All listing reads return
// properties with amenities and images hydrated.
type Store interface {
	InitSchema() error
	Close() error

	// SearchProperties returns one page of active listings matching the
	// filters plus the total match count before pagination.
	SearchProperties(f search.Filters) ([]models.Property, int64, error)
	// FeaturedProperties returns the n most recently created active
	// listings, ignoring all filters.
	FeaturedProperties(n int) ([]models.Property, error)
	// OwnerProperties returns one owner's listings in any status, narrowed
	// by the same filter dimensions as the public search.
	OwnerProperties(ownerID string, f search.Filters) ([]models.Property, error)
	// AllProperties returns listings in any status, newest first, with
	// owner profiles attached. Admin use only.
	AllProperties(limit, offset int) ([]models.Property, int64, error)
	GetProperty(id string) (*models.Property, error)
	CreateProperty(p *models.Property) error
	// UpdateProperty applies the given column updates. A non-nil amenities
	// or images slice replaces the respective set atomically; nil leaves
	// it untouched.
	UpdateProperty(id string, fields map[string]interface{}, amenities, images []string) (*models.Property, error)
	DeleteProperty(id string) error
	// BulkInsertProperties inserts seed listings with their amenities in
	// one transaction.
	BulkInsertProperties(props []models.Property) error

	// AppendPropertyImages adds image URLs after the listing's current
	// ones. Exceeding MaxImagesPerProperty returns ErrTooManyImages.
	AppendPropertyImages(propertyID string, urls []string) error
	RemovePropertyImage(propertyID, url string) error

	CreateEnquiry(e *models.Enquiry) error
	// ListEnquiries scopes results by role: buyers see what they sent,
	// owners see what their listings received, admins see everything.
	ListEnquiries(v models.Viewer) ([]models.Enquiry, error)
	GetEnquiry(id string) (*models.Enquiry, error)
	UpdateEnquiryStatus(id string, status models.EnquiryStatus) error
	// PurgeArchivedEnquiries removes archived enquiries last touched
	// before the cutoff and reports how many were deleted.
	PurgeArchivedEnquiries(before time.Time) (int64, error)

	// SaveListing records a bookmark; saving twice returns ErrDuplicate.
	SaveListing(userID, propertyID string) error
	// UnsaveListing is idempotent: removing a bookmark that does not exist
	// is not an error.
	UnsaveListing(userID, propertyID string) error
	ListSaved(userID string) ([]models.SavedProperty, error)

	GetProfile(userID string) (*models.Profile, error)
	UpsertProfile(p *models.Profile) error
	UpdateProfile(userID string, fields map[string]interface{}) (*models.Profile, error)
	SetRole(userID string, role models.Role) error

	PlatformStats() (*models.PlatformStats, error)
	SaveStatsSnapshot(s *models.StatsSnapshot) error
	RecentStatsSnapshots(limit int) ([]models.StatsSnapshot, error)
}
