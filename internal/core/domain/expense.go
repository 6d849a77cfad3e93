package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies what an expense was for.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "FOOD"
	CategoryTransport     ExpenseCategory = "TRANSPORT"
	CategoryAccommodation ExpenseCategory = "ACCOMMODATION"
	CategoryActivities    ExpenseCategory = "ACTIVITIES"
	CategoryShopping      ExpenseCategory = "SHOPPING"
	CategoryOther         ExpenseCategory = "OTHER"
)

// SplitType indicates how an expense is divided between participants.
type SplitType string

const (
	SplitEqual  SplitType = "EQUAL"
	SplitCustom SplitType = "CUSTOM"
)

// Expense represents a single shared expense within a trip.
// Only the payer or the trip owner may modify or delete an expense.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	TripID      string          `json:"tripID"`    // FK -> trips.trip_id
	PayerID     string          `json:"payerID"`   // FK -> users.user_id; the member who fronted the money
	Amount      decimal.Decimal `json:"amount"`    // Positive; trip currency
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	ExpenseDate time.Time       `json:"expenseDate"`
	SplitType   SplitType       `json:"splitType"`
	AuditFields
	Splits []ExpenseSplit `json:"splits,omitempty" db:"-"` // Populated on reads that request them
}

// ExpenseSplit is one participant's allocated share of an expense.
// Invariant: the splits of one expense sum exactly to the expense amount.
type ExpenseSplit struct {
	ExpenseID     string          `json:"expenseID"`     // FK -> expenses.expense_id
	ParticipantID string          `json:"participantID"` // FK -> users.user_id
	AmountOwed    decimal.Decimal `json:"amountOwed"`    // >= 0
	Paid          bool            `json:"paid"`          // Payer's own row starts true
}
