package models

import "time"

// Profile holds per-user account data. Authentication itself is external;
// the profile row carries the role the request handlers authorize against.
type Profile struct {
	UserID string `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	Role   Role   `gorm:"type:varchar(10);not null;default:'buyer'" json:"role"`
	// Email mirrors the identity provider claim so enquiry notifications
	// can reach the owner without a round trip to the auth service.
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	FullName  string    `gorm:"type:varchar(200)" json:"full_name"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Bio       *string   `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

type Role string

const (
	RoleBuyer Role = "buyer"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleBuyer, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// CanList reports whether the role may create listings.
func (r Role) CanList() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Viewer identifies the authenticated caller for role-scoped queries.
type Viewer struct {
	UserID string
	Role   Role
}
