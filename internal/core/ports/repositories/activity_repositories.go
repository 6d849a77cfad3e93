package repositories

import (
	"context"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// ActivityReader defines read operations for activity data
type ActivityReader interface {
	// FindActivityByID retrieves a specific activity by its ID.
	FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error)

	// ListActivitiesByTrip retrieves all activities for a trip with participant counts.
	ListActivitiesByTrip(ctx context.Context, tripID string) ([]domain.Activity, error)
}

// ActivityWriter defines write operations for activity data
type ActivityWriter interface {
	// SaveActivity persists a new activity.
	SaveActivity(ctx context.Context, activity domain.Activity) error

	// UpdateActivity updates an existing activity's details.
	UpdateActivity(ctx context.Context, activity domain.Activity) error

	// DeleteActivity removes an activity and its participant rows.
	DeleteActivity(ctx context.Context, activityID string) error
}

// ActivityParticipationManager defines operations for managing activity sign-ups
type ActivityParticipationManager interface {
	// AddParticipant records a user joining an activity. Adding an existing
	// participant is a no-op.
	AddParticipant(ctx context.Context, participant domain.ActivityParticipant) error

	// RemoveParticipant records a user leaving an activity.
	RemoveParticipant(ctx context.Context, activityID, userID string) error

	// ListParticipants retrieves all participants of an activity.
	ListParticipants(ctx context.Context, activityID string) ([]domain.ActivityParticipant, error)
}

// ActivityRepositoryFacade combines all activity-related repository interfaces
// This is a facade for clients that need access to all operations
type ActivityRepositoryFacade interface {
	ActivityReader
	ActivityWriter
	ActivityParticipationManager
}
