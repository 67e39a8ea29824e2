package models

import "time"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	AuthProviderPassword AuthProvider = "password"
	AuthProviderGoogle   AuthProvider = "google"
)

// User represents the user model in the database.
// Password is empty for users created via Google sign-in.
type User struct {
	Base
	Email            string       `gorm:"uniqueIndex;not null" json:"email"`
	Password         string       `gorm:"" json:"-"`
	DisplayName      string       `json:"display_name"`
	Provider         AuthProvider `gorm:"not null;default:password" json:"provider"`
	RefreshTokenHash string       `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time   `json:"last_login_at,omitempty"`

	Periods      []Period      `gorm:"foreignKey:UserID" json:"periods,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
