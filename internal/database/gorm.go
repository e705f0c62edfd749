package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(host, port, user, password, dbname string) (*GormStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

// NewGormStoreFromDB wraps an existing gorm.DB instance. Tests use this with
// the SQLite driver.
func NewGormStoreFromDB(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) InitSchema() error {
	return s.db.AutoMigrate(
		&models.Property{},
		&models.PropertyImage{},
		&models.PropertyAmenity{},
		&models.Enquiry{},
		&models.SavedProperty{},
		&models.Profile{},
		&models.StatsSnapshot{},
	)
}

func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// orderClause maps a sort key to SQL. The id tie-break keeps pages stable
// when many rows share a created_at timestamp.
func orderClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC, id ASC"
	case "price_asc":
		return "price ASC, id ASC"
	case "price_desc":
		return "price DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// applyFilters narrows the query to active listings matching every filter
// dimension.
func (s *GormStore) applyFilters(q *gorm.DB, f search.Filters) *gorm.DB {
	return s.filterDimensions(q.Where("status = ?", models.PropertyStatusActive), f)
}

// filterDimensions applies every filter except the status constraint, so
// owner views can reuse the machinery across drafts and closed listings.
func (s *GormStore) filterDimensions(q *gorm.DB, f search.Filters) *gorm.DB {
	if f.Query != "" {
		pattern := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if f.ListingType != "" {
		q = q.Where("listing_type = ?", f.ListingType)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		q = q.Where("bedrooms >= ?", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		q = q.Where("bathrooms >= ?", *f.Bathrooms)
	}
	if f.MinSqft != nil {
		q = q.Where("sqft >= ?", *f.MinSqft)
	}
	if f.MaxSqft != nil {
		q = q.Where("sqft <= ?", *f.MaxSqft)
	}
	if f.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(f.City)+"%")
	}
	if f.State != "" {
		q = q.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(f.State)+"%")
	}
	if len(f.Amenities) > 0 {
		// Superset match: the listing must carry every requested amenity.
		q = q.Where(
			"id IN (SELECT property_id FROM property_amenities WHERE amenity IN ? GROUP BY property_id HAVING COUNT(DISTINCT amenity) = ?)",
			f.Amenities, len(f.Amenities),
		)
	}
	if f.Bounds != nil {
		q = q.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Where("latitude >= ? AND latitude <= ?", f.Bounds.South, f.Bounds.North).
			Where("longitude >= ? AND longitude <= ?", f.Bounds.West, f.Bounds.East)
	}
	return q
}

func (s *GormStore) SearchProperties(f search.Filters) ([]models.Property, int64, error) {
	var total int64
	if err := s.applyFilters(s.db.Model(&models.Property{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := s.applyFilters(s.db.Model(&models.Property{}), f).
		Order(orderClause(f.Sort)).
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	if err := s.hydrate(properties); err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (s *GormStore) FeaturedProperties(n int) ([]models.Property, error) {
	var properties []models.Property
	err := s.db.Where("status = ?", models.PropertyStatusActive).
		Order("created_at DESC, id ASC").
		Limit(n).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *GormStore) OwnerProperties(ownerID string, f search.Filters) ([]models.Property, error) {
	var properties []models.Property
	err := s.filterDimensions(s.db.Where("owner_id = ?", ownerID), f).
		Order("created_at DESC, id ASC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *GormStore) AllProperties(limit, offset int) ([]models.Property, int64, error) {
	var total int64
	if err := s.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := s.db.Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	if err := s.hydrate(properties); err != nil {
		return nil, 0, err
	}
	for i := range properties {
		var owner models.Profile
		if err := s.db.Where("user_id = ?", properties[i].OwnerID).First(&owner).Error; err == nil {
			properties[i].Owner = &owner
		}
	}
	return properties, total, nil
}

func (s *GormStore) GetProperty(id string) (*models.Property, error) {
	var property models.Property
	if err := s.db.Where("id = ?", id).First(&property).Error; err != nil {
		return nil, translateGormError(err)
	}
	if err := s.hydrateOne(&property); err != nil {
		return nil, err
	}
	var owner models.Profile
	if err := s.db.Where("user_id = ?", property.OwnerID).First(&owner).Error; err == nil {
		property.Owner = &owner
	}
	return &property, nil
}

func (s *GormStore) CreateProperty(p *models.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.PropertyStatusDraft
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return translateGormError(err)
		}
		if err := replaceAmenities(tx, p.ID, p.Amenities); err != nil {
			return err
		}
		return replaceImages(tx, p.ID, p.Images)
	})
}

func (s *GormStore) UpdateProperty(id string, fields map[string]interface{}, amenities, images []string) (*models.Property, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Model(&models.Property{}).Where("id = ?", id).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		} else {
			var count int64
			if err := tx.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
		}
		if amenities != nil {
			if err := replaceAmenities(tx, id, amenities); err != nil {
				return err
			}
		}
		if images != nil {
			if err := replaceImages(tx, id, images); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProperty(id)
}

func (s *GormStore) DeleteProperty(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Property{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyAmenity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Where("property_id = ?", id).Delete(&models.SavedProperty{}).Error
	})
}

func (s *GormStore) BulkInsertProperties(props []models.Property) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range props {
			if props[i].ID == "" {
				props[i].ID = uuid.NewString()
			}
			if err := tx.Create(&props[i]).Error; err != nil {
				return translateGormError(err)
			}
			if err := replaceAmenities(tx, props[i].ID, props[i].Amenities); err != nil {
				return err
			}
			if err := replaceImages(tx, props[i].ID, props[i].Images); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceAmenities(tx *gorm.DB, propertyID string, amenities []string) error {
	if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyAmenity{}).Error; err != nil {
		return err
	}
	for _, a := range amenities {
		if err := tx.Create(&models.PropertyAmenity{PropertyID: propertyID, Amenity: a}).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceImages(tx *gorm.DB, propertyID string, urls []string) error {
	if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyImage{}).Error; err != nil {
		return err
	}
	for i, u := range urls {
		if err := tx.Create(&models.PropertyImage{PropertyID: propertyID, URL: u, SortOrder: i}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStore) AppendPropertyImages(propertyID string, urls []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Property{}).Where("id = ?", propertyID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		var existing int64
		if err := tx.Model(&models.PropertyImage{}).Where("property_id = ?", propertyID).Count(&existing).Error; err != nil {
			return err
		}
		if existing+int64(len(urls)) > MaxImagesPerProperty {
			return ErrTooManyImages
		}
		var maxOrder int
		tx.Model(&models.PropertyImage{}).
			Where("property_id = ?", propertyID).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder)
		for i, u := range urls {
			img := models.PropertyImage{PropertyID: propertyID, URL: u, SortOrder: maxOrder + 1 + i}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) RemovePropertyImage(propertyID, url string) error {
	res := s.db.Where("property_id = ? AND url = ?", propertyID, url).Delete(&models.PropertyImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// hydrate attaches amenities and images to a batch of properties with two
// grouped queries instead of 2N lookups.
func (s *GormStore) hydrate(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	ids := make([]string, len(properties))
	index := make(map[string]*models.Property, len(properties))
	for i := range properties {
		ids[i] = properties[i].ID
		properties[i].Amenities = []string{}
		properties[i].Images = []string{}
		index[properties[i].ID] = &properties[i]
	}

	var amenities []models.PropertyAmenity
	if err := s.db.Where("property_id IN ?", ids).Order("id ASC").Find(&amenities).Error; err != nil {
		return err
	}
	for _, a := range amenities {
		p := index[a.PropertyID]
		p.Amenities = append(p.Amenities, a.Amenity)
	}

	var images []models.PropertyImage
	if err := s.db.Where("property_id IN ?", ids).Order("sort_order ASC, id ASC").Find(&images).Error; err != nil {
		return err
	}
	for _, img := range images {
		p := index[img.PropertyID]
		p.Images = append(p.Images, img.URL)
	}
	return nil
}

func (s *GormStore) hydrateOne(p *models.Property) error {
	batch := []models.Property{*p}
	if err := s.hydrate(batch); err != nil {
		return err
	}
	*p = batch[0]
	return nil
}

func (s *GormStore) CreateEnquiry(e *models.Enquiry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = models.EnquiryStatusUnread
	}
	return translateGormError(s.db.Create(e).Error)
}

func (s *GormStore) ListEnquiries(v models.Viewer) ([]models.Enquiry, error) {
	q := s.db.Model(&models.Enquiry{})
	switch v.Role {
	case models.RoleAdmin:
		// Full inbox.
	case models.RoleOwner:
		q = q.Where("owner_id = ?", v.UserID)
	default:
		q = q.Where("sender_id = ?", v.UserID)
	}

	var enquiries []models.Enquiry
	if err := q.Order("created_at DESC, id ASC").Find(&enquiries).Error; err != nil {
		return nil, err
	}

	for i := range enquiries {
		var property models.Property
		if err := s.db.Where("id = ?", enquiries[i].PropertyID).First(&property).Error; err == nil {
			if err := s.hydrateOne(&property); err != nil {
				return nil, err
			}
			enquiries[i].Property = &property
		}
		var sender models.Profile
		if err := s.db.Where("user_id = ?", enquiries[i].SenderID).First(&sender).Error; err == nil {
			enquiries[i].Sender = &sender
		}
	}
	return enquiries, nil
}

func (s *GormStore) GetEnquiry(id string) (*models.Enquiry, error) {
	var e models.Enquiry
	if err := s.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &e, nil
}

func (s *GormStore) UpdateEnquiryStatus(id string, status models.EnquiryStatus) error {
	res := s.db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) PurgeArchivedEnquiries(before time.Time) (int64, error) {
	res := s.db.Where("status = ? AND updated_at < ?", models.EnquiryStatusArchived, before).
		Delete(&models.Enquiry{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) SaveListing(userID, propertyID string) error {
	var count int64
	if err := s.db.Model(&models.SavedProperty{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	saved := models.SavedProperty{UserID: userID, PropertyID: propertyID}
	return translateGormError(s.db.Create(&saved).Error)
}

func (s *GormStore) UnsaveListing(userID, propertyID string) error {
	return s.db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.SavedProperty{}).Error
}

func (s *GormStore) ListSaved(userID string) ([]models.SavedProperty, error) {
	var saved []models.SavedProperty
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, property_id ASC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	for i := range saved {
		var property models.Property
		if err := s.db.Where("id = ?", saved[i].PropertyID).First(&property).Error; err == nil {
			if err := s.hydrateOne(&property); err != nil {
				return nil, err
			}
			saved[i].Property = &property
		}
	}
	return saved, nil
}

func (s *GormStore) GetProfile(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &profile, nil
}

func (s *GormStore) UpsertProfile(p *models.Profile) error {
	if p.Role == "" {
		p.Role = models.RoleBuyer
	}
	var existing models.Profile
	err := s.db.Where("user_id = ?", p.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(p).Error
	}
	if err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	return s.db.Save(p).Error
}

func (s *GormStore) UpdateProfile(userID string, fields map[string]interface{}) (*models.Profile, error) {
	res := s.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProfile(userID)
}

func (s *GormStore) SetRole(userID string, role models.Role) error {
	res := s.db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) PlatformStats() (*models.PlatformStats, error) {
	var stats models.PlatformStats
	if err := s.db.Model(&models.Profile{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Property{}).Count(&stats.TotalListings).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Property{}).
		Where("status = ?", models.PropertyStatusActive).
		Count(&stats.ActiveListings).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enquiry{}).Count(&stats.TotalEnquiries).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *GormStore) SaveStatsSnapshot(snap *models.StatsSnapshot) error {
	var existing models.StatsSnapshot
	err := s.db.Where("snapshot_at = ?", snap.SnapshotAt).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(snap).Error
	}
	if err != nil {
		return err
	}
	snap.ID = existing.ID
	snap.CreatedAt = existing.CreatedAt
	return s.db.Save(snap).Error
}

func (s *GormStore) RecentStatsSnapshots(limit int) ([]models.StatsSnapshot, error) {
	var snaps []models.StatsSnapshot
	err := s.db.Order("snapshot_at DESC").Limit(limit).Find(&snaps).Error
	return snaps, err
}
