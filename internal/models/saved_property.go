package models

import "time"

// SavedProperty marks a property as saved by a user. The (user, property)
// pair is unique: saving twice is a conflict, unsaving is idempotent.
type SavedProperty struct {
	UserID     string    `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	PropertyID string    `gorm:"type:varchar(36);primaryKey" json:"property_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// Hydrated on list reads.
	Property *Property `gorm:"-" json:"property,omitempty"`
}

func (SavedProperty) TableName() string {
	return "saved_properties"
}
