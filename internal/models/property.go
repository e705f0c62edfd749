package models

import "time"

type Property struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OwnerID     string `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	PropertyType PropertyType   `gorm:"type:varchar(20);not null;index" json:"property_type"`
	ListingType  ListingType    `gorm:"type:varchar(10);not null;index" json:"listing_type"`
	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`

	Price float64 `gorm:"type:decimal(14,2);not null;index" json:"price"`

	Address string `gorm:"type:text;not null" json:"address"`
	City    string `gorm:"type:varchar(100);not null;index" json:"city"`
	State   string `gorm:"type:varchar(100);not null" json:"state"`
	ZipCode string `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	Country string `gorm:"type:varchar(2)" json:"country,omitempty"`

	// Map placement. Properties without coordinates are excluded from map search.
	Latitude  *float64 `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`

	Bedrooms      *int     `gorm:"type:int;index" json:"bedrooms,omitempty"`
	Bathrooms     *float64 `gorm:"type:decimal(3,1)" json:"bathrooms,omitempty"`
	Sqft          *int     `gorm:"type:int;index" json:"sqft,omitempty"`
	LotSize       *int     `gorm:"type:int" json:"lot_size,omitempty"`
	YearBuilt     *int     `gorm:"type:int" json:"year_built,omitempty"`
	ParkingSpaces *int     `gorm:"type:int" json:"parking_spaces,omitempty"`

	// Stored in side tables, hydrated by the store on reads.
	Amenities []string `gorm:"-" json:"amenities"`
	Images    []string `gorm:"-" json:"images"`

	// Owner profile, hydrated on single-property reads.
	Owner *Profile `gorm:"-" json:"owner,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_properties_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// IsActive reports whether the property is publicly searchable.
func (p *Property) IsActive() bool {
	return p.Status == PropertyStatusActive
}

// HasCoordinates reports whether the property can appear on the map.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeCondo      PropertyType = "condo"
	PropertyTypeTownhouse  PropertyType = "townhouse"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// ValidPropertyType reports whether s is a known property type.
func ValidPropertyType(s string) bool {
	switch PropertyType(s) {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo,
		PropertyTypeTownhouse, PropertyTypeLand, PropertyTypeCommercial:
		return true
	}
	return false
}

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// ValidListingType reports whether s is a known listing type.
func ValidListingType(s string) bool {
	return ListingType(s) == ListingTypeSale || ListingType(s) == ListingTypeRent
}

type PropertyStatus string

const (
	PropertyStatusDraft         PropertyStatus = "draft"
	PropertyStatusActive        PropertyStatus = "active"
	PropertyStatusUnderContract PropertyStatus = "under_contract"
	PropertyStatusSold          PropertyStatus = "sold"
	PropertyStatusRented        PropertyStatus = "rented"
)

// ValidPropertyStatus reports whether s is a known property status.
func ValidPropertyStatus(s string) bool {
	switch PropertyStatus(s) {
	case PropertyStatusDraft, PropertyStatusActive, PropertyStatusUnderContract,
		PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}
