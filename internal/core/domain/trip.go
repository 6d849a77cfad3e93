package domain

import "time"

// Trip represents a group travel event owning expenses and activities.
type Trip struct {
	TripID       string     `json:"tripID"` // Primary Key (UUID)
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Destination  string     `json:"destination"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	CurrencyCode string     `json:"currencyCode"` // ISO 4217 code all amounts are denominated in
	IsActive     bool       `json:"isActive"`
	AuditFields
}

// TripMemberRole defines the possible roles a user can have within a trip.
type TripMemberRole string

const (
	RoleOwner  TripMemberRole = "OWNER"
	RoleMember TripMemberRole = "MEMBER"
)

// TripMemberStatus tracks the lifecycle of a trip membership.
// Only APPROVED members may read or write trip data.
type TripMemberStatus string

const (
	StatusPending  TripMemberStatus = "PENDING"
	StatusApproved TripMemberStatus = "APPROVED"
	StatusRejected TripMemberStatus = "REJECTED"
	StatusRemoved  TripMemberStatus = "REMOVED"
)

// TripMember represents the membership of a User in a Trip.
type TripMember struct {
	UserID   string           `json:"userID"`   // FK -> users.user_id
	UserName string           `json:"userName"` // Name of the user, joined in for listings
	TripID   string           `json:"tripID"`   // FK -> trips.trip_id
	Role     TripMemberRole   `json:"role"`
	Status   TripMemberStatus `json:"status"`
	JoinedAt time.Time        `json:"joinedAt"` // When the membership row was created
}
