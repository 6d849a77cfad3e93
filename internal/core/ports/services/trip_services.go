package services

import (
	"context"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
	"github.com/tripmates/trip_planner_app/internal/dto"
)

// TripReaderSvc defines read operations for trip data
type TripReaderSvc interface {
	// GetTripByID retrieves a specific trip. The requesting user must be an
	// approved member.
	GetTripByID(ctx context.Context, tripID string, requestingUserID string) (*domain.Trip, error)

	// ListUserTrips retrieves trips the user is an approved member of.
	// If includeInactive is true, deactivated trips are included.
	ListUserTrips(ctx context.Context, userID string, includeInactive bool) ([]domain.Trip, error)

	// ListTripMembers retrieves memberships for a trip, optionally filtered by
	// status. Pending and rejected rows are visible to the trip owner only.
	ListTripMembers(ctx context.Context, tripID string, requestingUserID string, statusFilter *domain.TripMemberStatus) ([]domain.TripMember, error)
}

// TripWriterSvc defines write operations for trip data
type TripWriterSvc interface {
	// CreateTrip persists a new trip with the creator as its approved owner.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error)

	// UpdateTrip updates a trip's details. Owner only.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error)

	// DeactivateTrip marks a trip as inactive. Owner only.
	DeactivateTrip(ctx context.Context, tripID string, requestingUserID string) error

	// ActivateTrip marks a trip as active again. Owner only.
	ActivateTrip(ctx context.Context, tripID string, requestingUserID string) error
}

// TripMembershipSvc defines operations for managing trip membership
type TripMembershipSvc interface {
	// RequestToJoinTrip creates a pending membership for the requesting user.
	RequestToJoinTrip(ctx context.Context, tripID string, requestingUserID string) (*domain.TripMember, error)

	// ReviewJoinRequest approves or rejects a pending membership. Owner only.
	ReviewJoinRequest(ctx context.Context, tripID string, targetUserID string, approve bool, requestingUserID string) error

	// RemoveTripMember removes an approved member from a trip. Owners can remove
	// anyone but themselves; members can remove only themselves.
	RemoveTripMember(ctx context.Context, tripID string, targetUserID string, requestingUserID string) error
}

// TripAuthorizerSvc defines operations for trip authorization
type TripAuthorizerSvc interface {
	// AuthorizeUserAction checks that a user is an approved member of a trip
	// holding at least the required role.
	AuthorizeUserAction(ctx context.Context, userID, tripID string, requiredRole domain.TripMemberRole) error
}

// TripSvcFacade combines all trip-related service interfaces
// This is a facade for clients that need access to all operations
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
	TripMembershipSvc
	TripAuthorizerSvc
}
