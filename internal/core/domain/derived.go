package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParticipantBalance is a member's paid-minus-owed position for one trip.
// Derived on demand from expenses and splits; never persisted.
type ParticipantBalance struct {
	ParticipantID string          `json:"participantID"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalOwed     decimal.Decimal `json:"totalOwed"`
	NetBalance    decimal.Decimal `json:"netBalance"` // Positive = owed money by the group
}

// Settlement is a suggested direct payment that reduces outstanding balances.
// Derived from ParticipantBalance; never persisted.
type Settlement struct {
	FromParticipantID string          `json:"fromParticipantID"` // Debtor
	ToParticipantID   string          `json:"toParticipantID"`   // Creditor
	Amount            decimal.Decimal `json:"amount"`
}

// ItineraryDay groups one day's activities with that day's total cost.
type ItineraryDay struct {
	Date       time.Time       `json:"date"`
	Activities []Activity      `json:"activities"` // Sorted by start time, unscheduled last
	TotalCost  decimal.Decimal `json:"totalCost"`  // Sum of costPerPerson * participantCount
}
