package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
	"github.com/tripmates/trip_planner_app/internal/utils/splitmath"
)

// activityService implements the ActivitySvcFacade interface
type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
	tripRepo     portsrepo.TripRepositoryFacade
}

// NewActivityService creates a new activity service with the provided dependencies
func NewActivityService(
	activityRepo portsrepo.ActivityRepositoryFacade,
	tripRepo portsrepo.TripRepositoryFacade,
	tripAuthorizer portssvc.TripAuthorizerSvc,
) portssvc.ActivitySvcFacade {
	return &activityService{
		BaseService:  BaseService{TripAuthorizer: tripAuthorizer},
		activityRepo: activityRepo,
		tripRepo:     tripRepo,
	}
}

// Ensure activityService implements the ActivitySvcFacade interface
var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// CreateActivity adds an activity to a trip's itinerary. The creator is signed
// up for it automatically.
func (s *activityService) CreateActivity(ctx context.Context, tripID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := s.requireActiveTrip(ctx, tripID); err != nil {
		return nil, err
	}
	if req.CostPerPerson.IsNegative() {
		return nil, apperrors.NewValidationFailedError("cost per person cannot be negative")
	}

	now := time.Now()
	activity := domain.Activity{
		ActivityID:    uuid.NewString(),
		TripID:        tripID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		StartDate:     req.StartDate,
		StartTime:     req.StartTime,
		CostPerPerson: req.CostPerPerson,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		s.LogError(ctx, err, "Failed to save activity",
			slog.String("activity_id", activity.ActivityID),
			slog.String("trip_id", tripID))
		return nil, err
	}

	if err := s.activityRepo.AddParticipant(ctx, domain.ActivityParticipant{
		ActivityID: activity.ActivityID,
		UserID:     creatorUserID,
		JoinedAt:   now,
	}); err != nil {
		s.LogError(ctx, err, "Failed to sign creator up for activity",
			slog.String("activity_id", activity.ActivityID))
		return nil, err
	}
	activity.ParticipantCount = 1

	s.LogInfo(ctx, "Activity created successfully",
		slog.String("activity_id", activity.ActivityID),
		slog.String("trip_id", tripID))
	return &activity, nil
}

// UpdateActivity merges the provided fields into an activity. Creator or trip
// owner only.
func (s *activityService) UpdateActivity(ctx context.Context, tripID, activityID string, req dto.UpdateActivityRequest, requestingUserID string) (*domain.Activity, error) {
	activity, err := s.getTripActivity(ctx, tripID, activityID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCreatorOrOwner(ctx, activity, requestingUserID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.StartDate != nil {
		activity.StartDate = *req.StartDate
	}
	if req.StartTime != nil {
		activity.StartTime = *req.StartTime
	}
	if req.CostPerPerson != nil {
		if req.CostPerPerson.IsNegative() {
			return nil, apperrors.NewValidationFailedError("cost per person cannot be negative")
		}
		activity.CostPerPerson = *req.CostPerPerson
	}
	activity.LastUpdatedAt = time.Now()
	activity.LastUpdatedBy = requestingUserID

	if err := s.activityRepo.UpdateActivity(ctx, *activity); err != nil {
		s.LogError(ctx, err, "Failed to update activity",
			slog.String("activity_id", activityID))
		return nil, err
	}

	s.LogInfo(ctx, "Activity updated successfully", slog.String("activity_id", activityID))
	return activity, nil
}

// DeleteActivity removes an activity and its sign-ups. Creator or trip owner only.
func (s *activityService) DeleteActivity(ctx context.Context, tripID, activityID string, requestingUserID string) error {
	activity, err := s.getTripActivity(ctx, tripID, activityID, requestingUserID)
	if err != nil {
		return err
	}
	if err := s.requireCreatorOrOwner(ctx, activity, requestingUserID); err != nil {
		return err
	}

	if err := s.activityRepo.DeleteActivity(ctx, activityID); err != nil {
		s.LogError(ctx, err, "Failed to delete activity", slog.String("activity_id", activityID))
		return err
	}

	s.LogInfo(ctx, "Activity deleted successfully", slog.String("activity_id", activityID))
	return nil
}

// GetActivityByID retrieves an activity, visible to approved members.
func (s *activityService) GetActivityByID(ctx context.Context, tripID, activityID string, requestingUserID string) (*domain.Activity, error) {
	return s.getTripActivity(ctx, tripID, activityID, requestingUserID)
}

// ListTripActivities retrieves all of a trip's activities, schedule order.
func (s *activityService) ListTripActivities(ctx context.Context, tripID string, requestingUserID string) ([]domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListActivitiesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activities", slog.String("trip_id", tripID))
		return nil, err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

// GetTripItinerary groups a trip's activities into a day-by-day schedule with
// per-day cost totals.
func (s *activityService) GetTripItinerary(ctx context.Context, tripID string, requestingUserID string) ([]domain.ItineraryDay, error) {
	activities, err := s.ListTripActivities(ctx, tripID, requestingUserID)
	if err != nil {
		return nil, err
	}
	return splitmath.GroupIntoItinerary(activities), nil
}

// JoinActivity signs the requesting user up for an activity. Re-joining is a
// no-op.
func (s *activityService) JoinActivity(ctx context.Context, tripID, activityID string, requestingUserID string) error {
	if _, err := s.getTripActivity(ctx, tripID, activityID, requestingUserID); err != nil {
		return err
	}
	if err := s.requireActiveTrip(ctx, tripID); err != nil {
		return err
	}

	err := s.activityRepo.AddParticipant(ctx, domain.ActivityParticipant{
		ActivityID: activityID,
		UserID:     requestingUserID,
		JoinedAt:   time.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to join activity",
			slog.String("activity_id", activityID),
			slog.String("user_id", requestingUserID))
		return err
	}

	s.LogInfo(ctx, "User joined activity",
		slog.String("activity_id", activityID),
		slog.String("user_id", requestingUserID))
	return nil
}

// LeaveActivity removes the requesting user's sign-up.
func (s *activityService) LeaveActivity(ctx context.Context, tripID, activityID string, requestingUserID string) error {
	if _, err := s.getTripActivity(ctx, tripID, activityID, requestingUserID); err != nil {
		return err
	}

	if err := s.activityRepo.RemoveParticipant(ctx, activityID, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to leave activity",
				slog.String("activity_id", activityID),
				slog.String("user_id", requestingUserID))
		}
		return err
	}

	s.LogInfo(ctx, "User left activity",
		slog.String("activity_id", activityID),
		slog.String("user_id", requestingUserID))
	return nil
}

// ListActivityParticipants retrieves an activity's sign-ups, oldest first.
func (s *activityService) ListActivityParticipants(ctx context.Context, tripID, activityID string, requestingUserID string) ([]domain.ActivityParticipant, error) {
	if _, err := s.getTripActivity(ctx, tripID, activityID, requestingUserID); err != nil {
		return nil, err
	}

	participants, err := s.activityRepo.ListParticipants(ctx, activityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activity participants",
			slog.String("activity_id", activityID))
		return nil, err
	}
	if participants == nil {
		participants = []domain.ActivityParticipant{}
	}
	return participants, nil
}

// getTripActivity loads an activity after checking membership and that the
// activity belongs to the given trip.
func (s *activityService) getTripActivity(ctx context.Context, tripID, activityID string, requestingUserID string) (*domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find activity", slog.String("activity_id", activityID))
		}
		return nil, err
	}
	if activity.TripID != tripID {
		return nil, apperrors.ErrNotFound
	}
	return activity, nil
}

// requireCreatorOrOwner permits the activity creator and the trip owner only.
func (s *activityService) requireCreatorOrOwner(ctx context.Context, activity *domain.Activity, requestingUserID string) error {
	if activity.CreatedBy == requestingUserID {
		return nil
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, activity.TripID, domain.RoleOwner); err != nil {
		return apperrors.NewForbiddenError("only the creator or the trip owner can modify this activity")
	}
	return nil
}

// requireActiveTrip rejects writes against deactivated trips.
func (s *activityService) requireActiveTrip(ctx context.Context, tripID string) error {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return err
	}
	if !trip.IsActive {
		return apperrors.NewConflictError("trip is not active")
	}
	return nil
}
