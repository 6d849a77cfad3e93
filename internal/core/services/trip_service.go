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
)

// tripService implements the TripSvcFacade interface
type tripService struct {
	BaseService
	tripRepo portsrepo.TripRepositoryFacade
}

// NewTripService creates a new trip service with the provided dependencies
func NewTripService(tripRepo portsrepo.TripRepositoryFacade) portssvc.TripSvcFacade {
	return &tripService{
		tripRepo: tripRepo,
	}
}

// Ensure tripService implements the TripSvcFacade interface
var _ portssvc.TripSvcFacade = (*tripService)(nil)

// CreateTrip persists a new trip and enrolls the creator as its approved owner.
func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationFailedError("end date cannot be before start date")
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:       uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		CurrencyCode: req.CurrencyCode,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "Failed to save trip", slog.String("trip_id", trip.TripID))
		return nil, err
	}

	membership := domain.TripMember{
		UserID:   creatorUserID,
		TripID:   trip.TripID,
		Role:     domain.RoleOwner,
		Status:   domain.StatusApproved,
		JoinedAt: now,
	}
	if err := s.tripRepo.AddTripMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as owner of new trip",
			slog.String("trip_id", trip.TripID),
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip created successfully",
		slog.String("trip_id", trip.TripID),
		slog.String("creator_id", creatorUserID))
	return &trip, nil
}

// GetTripByID retrieves a trip, visible to approved members only.
func (s *tripService) GetTripByID(ctx context.Context, tripID string, requestingUserID string) (*domain.Trip, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find trip by ID", slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// ListUserTrips retrieves trips the user is an approved member of.
func (s *tripService) ListUserTrips(ctx context.Context, userID string, includeInactive bool) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTripsByUserID(ctx, userID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips for user", slog.String("user_id", userID))
		return nil, err
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListTripMembers retrieves a trip's memberships. Owners see every status;
// other members see approved memberships only.
func (s *tripService) ListTripMembers(ctx context.Context, tripID string, requestingUserID string, statusFilter *domain.TripMemberStatus) ([]domain.TripMember, error) {
	requester, err := s.requireApprovedMember(ctx, requestingUserID, tripID)
	if err != nil {
		return nil, err
	}

	if requester.Role != domain.RoleOwner {
		approved := domain.StatusApproved
		if statusFilter != nil && *statusFilter != approved {
			return nil, apperrors.NewForbiddenError("only the trip owner can view non-approved memberships")
		}
		statusFilter = &approved
	}

	members, err := s.tripRepo.ListTripMembers(ctx, tripID, statusFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trip members", slog.String("trip_id", tripID))
		return nil, err
	}
	if members == nil {
		return []domain.TripMember{}, nil
	}
	return members, nil
}

// UpdateTrip updates a trip's details. Owner only.
func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tripID, domain.RoleOwner); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate
	}
	if trip.EndDate != nil && trip.EndDate.Before(trip.StartDate) {
		return nil, apperrors.NewValidationFailedError("end date cannot be before start date")
	}

	trip.LastUpdatedAt = time.Now()
	trip.LastUpdatedBy = requestingUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "Failed to update trip", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip updated successfully", slog.String("trip_id", tripID))
	return trip, nil
}

// DeactivateTrip marks a trip as inactive. Owner only.
func (s *tripService) DeactivateTrip(ctx context.Context, tripID string, requestingUserID string) error {
	return s.setTripActive(ctx, tripID, requestingUserID, false)
}

// ActivateTrip marks a trip as active again. Owner only.
func (s *tripService) ActivateTrip(ctx context.Context, tripID string, requestingUserID string) error {
	return s.setTripActive(ctx, tripID, requestingUserID, true)
}

func (s *tripService) setTripActive(ctx context.Context, tripID string, requestingUserID string, isActive bool) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tripID, domain.RoleOwner); err != nil {
		return err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return err
	}

	trip.IsActive = isActive
	trip.LastUpdatedAt = time.Now()
	trip.LastUpdatedBy = requestingUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "Failed to update trip active status",
			slog.String("trip_id", tripID),
			slog.Bool("is_active", isActive))
		return err
	}

	s.LogInfo(ctx, "Trip active status updated",
		slog.String("trip_id", tripID),
		slog.Bool("is_active", isActive))
	return nil
}

// RequestToJoinTrip creates a pending membership for the requesting user.
// Rejected or removed users may request again, which resets the row to pending.
func (s *tripService) RequestToJoinTrip(ctx context.Context, tripID string, requestingUserID string) (*domain.TripMember, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsActive {
		return nil, apperrors.NewConflictError("trip is not active")
	}

	now := time.Now()
	existing, err := s.tripRepo.FindTripMember(ctx, requestingUserID, tripID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		switch existing.Status {
		case domain.StatusPending:
			return nil, apperrors.NewConflictError("join request already pending")
		case domain.StatusApproved:
			return nil, apperrors.NewConflictError("already a member of this trip")
		case domain.StatusRejected, domain.StatusRemoved:
			if err := s.tripRepo.UpdateTripMemberStatus(ctx, requestingUserID, tripID, domain.StatusPending, requestingUserID, now); err != nil {
				s.LogError(ctx, err, "Failed to reset membership to pending",
					slog.String("trip_id", tripID),
					slog.String("user_id", requestingUserID))
				return nil, err
			}
			existing.Status = domain.StatusPending
			s.LogInfo(ctx, "Join request re-submitted",
				slog.String("trip_id", tripID),
				slog.String("user_id", requestingUserID))
			return existing, nil
		}
	}

	membership := domain.TripMember{
		UserID:   requestingUserID,
		TripID:   tripID,
		Role:     domain.RoleMember,
		Status:   domain.StatusPending,
		JoinedAt: now,
	}
	if err := s.tripRepo.AddTripMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to create join request",
			slog.String("trip_id", tripID),
			slog.String("user_id", requestingUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Join request created",
		slog.String("trip_id", tripID),
		slog.String("user_id", requestingUserID))
	return &membership, nil
}

// ReviewJoinRequest approves or rejects a pending membership. Owner only.
func (s *tripService) ReviewJoinRequest(ctx context.Context, tripID string, targetUserID string, approve bool, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tripID, domain.RoleOwner); err != nil {
		return err
	}

	membership, err := s.tripRepo.FindTripMember(ctx, targetUserID, tripID)
	if err != nil {
		return err
	}
	if membership.Status != domain.StatusPending {
		return apperrors.NewConflictError("membership is not pending review")
	}

	newStatus := domain.StatusRejected
	if approve {
		newStatus = domain.StatusApproved
	}
	if err := s.tripRepo.UpdateTripMemberStatus(ctx, targetUserID, tripID, newStatus, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to review join request",
			slog.String("trip_id", tripID),
			slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "Join request reviewed",
		slog.String("trip_id", tripID),
		slog.String("target_user_id", targetUserID),
		slog.String("new_status", string(newStatus)))
	return nil
}

// RemoveTripMember removes an approved member from a trip. Owners can remove
// anyone but themselves; members can only remove themselves.
func (s *tripService) RemoveTripMember(ctx context.Context, tripID string, targetUserID string, requestingUserID string) error {
	requester, err := s.requireApprovedMember(ctx, requestingUserID, tripID)
	if err != nil {
		return err
	}

	if requester.Role != domain.RoleOwner && targetUserID != requestingUserID {
		return apperrors.NewForbiddenError("only the trip owner can remove other members")
	}

	target, err := s.tripRepo.FindTripMember(ctx, targetUserID, tripID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleOwner {
		// The owner leaving would orphan the trip; they deactivate it instead.
		return apperrors.NewConflictError("trip owner cannot be removed")
	}
	if target.Status != domain.StatusApproved {
		return apperrors.NewConflictError("user is not an approved member")
	}

	if err := s.tripRepo.UpdateTripMemberStatus(ctx, targetUserID, tripID, domain.StatusRemoved, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to remove trip member",
			slog.String("trip_id", tripID),
			slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "Trip member removed",
		slog.String("trip_id", tripID),
		slog.String("target_user_id", targetUserID))
	return nil
}

// AuthorizeUserAction checks that a user is an approved member of a trip
// holding at least the required role.
func (s *tripService) AuthorizeUserAction(ctx context.Context, userID, tripID string, requiredRole domain.TripMemberRole) error {
	membership, err := s.requireApprovedMember(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("trip_id", tripID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// requireApprovedMember fetches the membership and rejects anything but an
// approved one.
func (s *tripService) requireApprovedMember(ctx context.Context, userID, tripID string) (*domain.TripMember, error) {
	membership, err := s.tripRepo.FindTripMember(ctx, userID, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of trip",
				slog.String("user_id", userID),
				slog.String("trip_id", tripID))
			return nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find trip membership",
			slog.String("user_id", userID),
			slog.String("trip_id", tripID))
		return nil, err
	}

	if membership.Status != domain.StatusApproved {
		s.LogDebug(ctx, "Membership is not approved",
			slog.String("user_id", userID),
			slog.String("trip_id", tripID),
			slog.String("status", string(membership.Status)))
		return nil, apperrors.ErrForbidden
	}

	return membership, nil
}

// hasRequiredRole checks if the user's role meets or exceeds the required role
func hasRequiredRole(userRole, requiredRole domain.TripMemberRole) bool {
	switch requiredRole {
	case domain.RoleMember:
		return userRole == domain.RoleMember || userRole == domain.RoleOwner
	case domain.RoleOwner:
		return userRole == domain.RoleOwner
	default:
		return false
	}
}
