package auth

import "github.com/lib/pq"

// Role is the closed set of account roles. A Principal's role is always one
// of these values; anything else fails Valid() and is rejected at resolution.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return true
	}
	return false
}

type User struct {
	UserID         string         `gorm:"primaryKey" json:"user_id"`
	Username       string         `gorm:"not null;unique" json:"username"`
	Email          *string        `gorm:"unique" json:"email,omitempty"`
	Password       string         `json:"password" gorm:"-"`
	HashedPassword string         `json:"-"`
	Role           Role           `gorm:"default:'buyer'" json:"role"`
	DisplayName    string         `json:"display_name"`
	AvatarURL      string         `json:"avatar_url"`
	Wishlist       pq.StringArray `gorm:"type:text[]" json:"wishlist"`
}

func (User) TableName() string { return "app_auth.users" }

// Principal is the resolved identity used for every authorization decision.
// It is produced only by ResolvePrincipal, never constructed ad hoc, and
// never carries the password hash.
type Principal struct {
	UserID      string `json:"user_id"`
	Role        Role   `json:"role"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}
