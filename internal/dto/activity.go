package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// --- Activity DTOs ---

// CreateActivityRequest defines data for adding an activity to a trip.
// StartTime is an optional wall-clock time in HH:MM; activities without one
// are scheduled after timed activities on the same day.
type CreateActivityRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
	StartTime     string          `json:"startTime" binding:"omitempty,clocktime"`
	CostPerPerson decimal.Decimal `json:"costPerPerson"`
}

// UpdateActivityRequest defines the data allowed for updating an activity.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateActivityRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	StartDate     *time.Time       `json:"startDate"`
	StartTime     *string          `json:"startTime" binding:"omitempty,clocktime"`
	CostPerPerson *decimal.Decimal `json:"costPerPerson"`
}

// ActivityResponse defines data returned for an activity.
type ActivityResponse struct {
	ActivityID       string          `json:"activityID"`
	TripID           string          `json:"tripID"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Location         string          `json:"location"`
	StartDate        time.Time       `json:"startDate"`
	StartTime        string          `json:"startTime,omitempty"`
	CostPerPerson    decimal.Decimal `json:"costPerPerson"`
	ParticipantCount int             `json:"participantCount"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"` // UserID
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"` // UserID
}

// ToActivityResponse converts domain.Activity to DTO.
func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID:       a.ActivityID,
		TripID:           a.TripID,
		Name:             a.Name,
		Description:      a.Description,
		Location:         a.Location,
		StartDate:        a.StartDate,
		StartTime:        a.StartTime,
		CostPerPerson:    a.CostPerPerson,
		ParticipantCount: a.ParticipantCount,
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
		LastUpdatedAt:    a.LastUpdatedAt,
		LastUpdatedBy:    a.LastUpdatedBy,
	}
}

// ListActivitiesResponse wraps a list of activities.
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToListActivitiesResponse converts a slice of domain.Activity to DTO.
func ToListActivitiesResponse(as []domain.Activity) ListActivitiesResponse {
	list := make([]ActivityResponse, len(as))
	for i, a := range as {
		list[i] = ToActivityResponse(&a)
	}
	return ListActivitiesResponse{Activities: list}
}

// --- Activity Participation DTOs ---

// ActivityParticipantResponse defines data returned about an activity sign-up.
type ActivityParticipantResponse struct {
	ActivityID string    `json:"activityID"`
	UserID     string    `json:"userID"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// ListActivityParticipantsResponse wraps a list of activity sign-ups.
type ListActivityParticipantsResponse struct {
	Participants []ActivityParticipantResponse `json:"participants"`
}

// ToListActivityParticipantsResponse converts a slice of domain.ActivityParticipant to DTO.
func ToListActivityParticipantsResponse(ps []domain.ActivityParticipant) ListActivityParticipantsResponse {
	list := make([]ActivityParticipantResponse, len(ps))
	for i, p := range ps {
		list[i] = ActivityParticipantResponse{
			ActivityID: p.ActivityID,
			UserID:     p.UserID,
			JoinedAt:   p.JoinedAt,
		}
	}
	return ListActivityParticipantsResponse{Participants: list}
}

// --- Itinerary DTOs ---

// ItineraryDayResponse defines one day of a trip's schedule.
type ItineraryDayResponse struct {
	Date       time.Time          `json:"date"`
	Activities []ActivityResponse `json:"activities"`
	TotalCost  decimal.Decimal    `json:"totalCost"`
}

// ItineraryResponse wraps the day-by-day schedule of a trip.
type ItineraryResponse struct {
	Days []ItineraryDayResponse `json:"days"`
}

// ToItineraryResponse converts a slice of domain.ItineraryDay to DTO.
func ToItineraryResponse(days []domain.ItineraryDay) ItineraryResponse {
	list := make([]ItineraryDayResponse, len(days))
	for i, d := range days {
		acts := make([]ActivityResponse, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = ToActivityResponse(&a)
		}
		list[i] = ItineraryDayResponse{
			Date:       d.Date,
			Activities: acts,
			TotalCost:  d.TotalCost,
		}
	}
	return ItineraryResponse{Days: list}
}
