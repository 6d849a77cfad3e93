package repositories

import (
	"context"
	"time"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a specific trip by its ID.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTripsByUserID retrieves all trips a user is an approved member of.
	// If includeInactive is true, deactivated trips are included.
	ListTripsByUserID(ctx context.Context, userID string, includeInactive bool) ([]domain.Trip, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip updates an existing trip's details.
	UpdateTrip(ctx context.Context, trip domain.Trip) error
}

// TripMembershipManager defines operations for managing trip memberships
type TripMembershipManager interface {
	// AddTripMember persists a new trip membership row.
	AddTripMember(ctx context.Context, membership domain.TripMember) error

	// FindTripMember retrieves the membership of a user in a trip, regardless of status.
	FindTripMember(ctx context.Context, userID, tripID string) (*domain.TripMember, error)

	// UpdateTripMemberStatus transitions a membership to a new status.
	UpdateTripMemberStatus(ctx context.Context, userID, tripID string, status domain.TripMemberStatus, updatedBy string, updatedAt time.Time) error

	// ListTripMembers retrieves all memberships for a trip, optionally filtered by status.
	ListTripMembers(ctx context.Context, tripID string, statusFilter *domain.TripMemberStatus) ([]domain.TripMember, error)
}

// TripRepositoryFacade combines all trip-related repository interfaces
// This is a facade for clients that need access to all operations
type TripRepositoryFacade interface {
	TripReader
	TripWriter
	TripMembershipManager
}

// TripRepositoryWithTx extends TripRepositoryFacade with transaction capabilities
type TripRepositoryWithTx interface {
	TripRepositoryFacade
	TransactionManager
}
