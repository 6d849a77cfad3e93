package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity represents a planned activity on a trip's itinerary.
type Activity struct {
	ActivityID    string          `json:"activityID"` // Primary Key (UUID)
	TripID        string          `json:"tripID"`     // FK -> trips.trip_id
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	StartDate     time.Time       `json:"startDate"`
	StartTime     string          `json:"startTime"`     // "HH:MM", empty when unscheduled
	CostPerPerson decimal.Decimal `json:"costPerPerson"` // >= 0; trip currency
	AuditFields
	ParticipantCount int `json:"participantCount" db:"-"` // Joined in from activity_participants
}

// ActivityParticipant records a member signed up for an activity.
type ActivityParticipant struct {
	ActivityID string    `json:"activityID"` // FK -> activities.activity_id
	UserID     string    `json:"userID"`     // FK -> users.user_id
	JoinedAt   time.Time `json:"joinedAt"`
}
