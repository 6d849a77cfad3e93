package domain

import "time"

// User represents a registered user of the application.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
	RefreshTokenHash       string     `json:"-" db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `json:"-" db:"refresh_token_expiry_time"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// GetUserID returns the user's ID. Used by DTO mapping.
func (u *User) GetUserID() string { return u.UserID }

// GetUsername returns the user's login name.
func (u *User) GetUsername() string { return u.Username }

// GetName returns the user's display name.
func (u *User) GetName() string { return u.Name }
