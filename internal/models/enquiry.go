package models

import "time"

type Enquiry struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string `gorm:"type:varchar(36);not null;index" json:"property_id"`
	SenderID   string `gorm:"type:varchar(36);not null;index" json:"sender_id"`
	// Denormalized from the property at creation time so owner inboxes
	// survive property deletion.
	OwnerID string `gorm:"type:varchar(36);not null;index" json:"owner_id"`

	Message       string  `gorm:"type:text;not null" json:"message"`
	Phone         *string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	PreferredDate *string `gorm:"type:varchar(10)" json:"preferred_date,omitempty"`

	Status EnquiryStatus `gorm:"type:varchar(10);not null;default:'unread';index" json:"status"`

	// Hydrated on list reads.
	Property *Property `gorm:"-" json:"property,omitempty"`
	Sender   *Profile  `gorm:"-" json:"sender,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

type EnquiryStatus string

const (
	EnquiryStatusUnread   EnquiryStatus = "unread"
	EnquiryStatusRead     EnquiryStatus = "read"
	EnquiryStatusReplied  EnquiryStatus = "replied"
	EnquiryStatusArchived EnquiryStatus = "archived"
)

// ValidEnquiryStatus reports whether s is a known enquiry status.
func ValidEnquiryStatus(s string) bool {
	switch EnquiryStatus(s) {
	case EnquiryStatusUnread, EnquiryStatusRead, EnquiryStatusReplied, EnquiryStatusArchived:
		return true
	}
	return false
}
