package dto

import (
	"time"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// --- Trip DTOs ---

// CreateTripRequest defines data for creating a new trip.
type CreateTripRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Destination  string     `json:"destination" binding:"required"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
	CurrencyCode string     `json:"currencyCode" binding:"required,iso4217"`
}

// UpdateTripRequest defines the data allowed for updating a trip.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateTripRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Destination *string    `json:"destination"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// TripResponse defines data returned for a trip.
type TripResponse struct {
	TripID        string     `json:"tripID"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Destination   string     `json:"destination"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	CurrencyCode  string     `json:"currencyCode"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	CreatedBy     string     `json:"createdBy"` // UserID
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy string     `json:"lastUpdatedBy"` // UserID
}

// ToTripResponse converts domain.Trip to DTO.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:        t.TripID,
		Name:          t.Name,
		Description:   t.Description,
		Destination:   t.Destination,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		CurrencyCode:  t.CurrencyCode,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ListTripsResponse wraps a list of trips.
type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToListTripsResponse converts a slice of domain.Trip to DTO.
func ToListTripsResponse(ts []domain.Trip) ListTripsResponse {
	list := make([]TripResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTripResponse(&t)
	}
	return ListTripsResponse{Trips: list}
}

// --- Trip Membership DTOs ---

// ReviewJoinRequestRequest defines data for approving or rejecting a join request.
type ReviewJoinRequestRequest struct {
	Approve bool `json:"approve"`
}

// ListTripMembersParams defines query parameters for listing trip members.
type ListTripMembersParams struct {
	Status *domain.TripMemberStatus `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED REMOVED"`
}

// TripMemberResponse defines data returned about a trip membership.
type TripMemberResponse struct {
	UserID   string                  `json:"userID"`
	UserName string                  `json:"userName,omitempty"`
	TripID   string                  `json:"tripID"`
	Role     domain.TripMemberRole   `json:"role"`
	Status   domain.TripMemberStatus `json:"status"`
	JoinedAt time.Time               `json:"joinedAt"`
}

// ToTripMemberResponse converts domain.TripMember to DTO.
func ToTripMemberResponse(m *domain.TripMember) TripMemberResponse {
	return TripMemberResponse{
		UserID:   m.UserID,
		UserName: m.UserName,
		TripID:   m.TripID,
		Role:     m.Role,
		Status:   m.Status,
		JoinedAt: m.JoinedAt,
	}
}

// ListTripMembersResponse wraps a list of trip memberships.
type ListTripMembersResponse struct {
	Members []TripMemberResponse `json:"members"`
}

// ToListTripMembersResponse converts a slice of domain.TripMember to DTO.
func ToListTripMembersResponse(ms []domain.TripMember) ListTripMembersResponse {
	list := make([]TripMemberResponse, len(ms))
	for i, m := range ms {
		list[i] = ToTripMemberResponse(&m)
	}
	return ListTripMembersResponse{Members: list}
}
