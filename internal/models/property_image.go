package models

import "time"

// PropertyImage is one image URL attached to a property. Image order is
// significant: the lowest sort_order is the cover image.
type PropertyImage struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	SortOrder  int       `gorm:"not null;default:0;index" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

// PropertyAmenity is one amenity tag attached to a property. The amenity
// filter's superset semantics are implemented as a grouped join over this
// table.
type PropertyAmenity struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_property_amenity" json:"property_id"`
	Amenity    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_property_amenity;index" json:"amenity"`
}

func (PropertyAmenity) TableName() string {
	return "property_amenities"
}
