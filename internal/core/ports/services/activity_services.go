package services

import (
	"context"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
	"github.com/tripmates/trip_planner_app/internal/dto"
)

// ActivityReaderSvc defines read operations for activity data
type ActivityReaderSvc interface {
	// GetActivityByID retrieves a specific activity. The requesting user must be
	// an approved member of the activity's trip.
	GetActivityByID(ctx context.Context, tripID, activityID string, requestingUserID string) (*domain.Activity, error)

	// ListTripActivities retrieves all activities for a trip with participant counts.
	ListTripActivities(ctx context.Context, tripID string, requestingUserID string) ([]domain.Activity, error)

	// GetTripItinerary groups a trip's activities into a day-by-day schedule.
	GetTripItinerary(ctx context.Context, tripID string, requestingUserID string) ([]domain.ItineraryDay, error)
}

// ActivityWriterSvc defines write operations for activity data
type ActivityWriterSvc interface {
	// CreateActivity persists a new activity.
	CreateActivity(ctx context.Context, tripID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error)

	// UpdateActivity updates an existing activity. Creator or trip owner only.
	UpdateActivity(ctx context.Context, tripID, activityID string, req dto.UpdateActivityRequest, requestingUserID string) (*domain.Activity, error)

	// DeleteActivity removes an activity. Creator or trip owner only.
	DeleteActivity(ctx context.Context, tripID, activityID string, requestingUserID string) error
}

// ActivityParticipationSvc defines operations for activity sign-ups
type ActivityParticipationSvc interface {
	// JoinActivity signs the requesting user up for an activity.
	JoinActivity(ctx context.Context, tripID, activityID string, requestingUserID string) error

	// LeaveActivity removes the requesting user's sign-up.
	LeaveActivity(ctx context.Context, tripID, activityID string, requestingUserID string) error

	// ListActivityParticipants retrieves all participants of an activity.
	ListActivityParticipants(ctx context.Context, tripID, activityID string, requestingUserID string) ([]domain.ActivityParticipant, error)
}

// ActivitySvcFacade combines all activity-related service interfaces
// This is a facade for clients that need access to all operations
type ActivitySvcFacade interface {
	ActivityReaderSvc
	ActivityWriterSvc
	ActivityParticipationSvc
}
