package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// --- Expense DTOs ---

// SplitInput defines one participant's share in a custom split.
type SplitInput struct {
	ParticipantID string          `json:"participantID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// CreateExpenseRequest defines data for recording a new expense.
// For EQUAL splits, participantIDs lists everyone sharing the cost; when
// omitted, every approved member of the trip shares it.
// For CUSTOM splits, splits carries the exact per-participant amounts.
type CreateExpenseRequest struct {
	PayerID        string                 `json:"payerID" binding:"required"`
	Amount         decimal.Decimal        `json:"amount" binding:"required"`
	Description    string                 `json:"description" binding:"required"`
	Category       domain.ExpenseCategory `json:"category" binding:"required,oneof=FOOD TRANSPORT ACCOMMODATION ACTIVITIES SHOPPING OTHER"`
	ExpenseDate    time.Time              `json:"expenseDate" binding:"required"`
	SplitType      domain.SplitType       `json:"splitType" binding:"required,oneof=EQUAL CUSTOM"`
	ParticipantIDs []string               `json:"participantIDs"`
	Splits         []SplitInput           `json:"splits"`
}

// UpdateExpenseRequest defines data for replacing an expense's details and splits.
type UpdateExpenseRequest struct {
	PayerID        string                 `json:"payerID" binding:"required"`
	Amount         decimal.Decimal        `json:"amount" binding:"required"`
	Description    string                 `json:"description" binding:"required"`
	Category       domain.ExpenseCategory `json:"category" binding:"required,oneof=FOOD TRANSPORT ACCOMMODATION ACTIVITIES SHOPPING OTHER"`
	ExpenseDate    time.Time              `json:"expenseDate" binding:"required"`
	SplitType      domain.SplitType       `json:"splitType" binding:"required,oneof=EQUAL CUSTOM"`
	ParticipantIDs []string               `json:"participantIDs"`
	Splits         []SplitInput           `json:"splits"`
}

// ListExpensesParams defines query parameters for listing a trip's expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ExpenseSplitResponse defines data returned for one split of an expense.
type ExpenseSplitResponse struct {
	ParticipantID string          `json:"participantID"`
	AmountOwed    decimal.Decimal `json:"amountOwed"`
	Paid          bool            `json:"paid"`
}

// ExpenseResponse defines data returned for an expense and its splits.
type ExpenseResponse struct {
	ExpenseID     string                 `json:"expenseID"`
	TripID        string                 `json:"tripID"`
	PayerID       string                 `json:"payerID"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description"`
	Category      domain.ExpenseCategory `json:"category"`
	ExpenseDate   time.Time              `json:"expenseDate"`
	SplitType     domain.SplitType       `json:"splitType"`
	Splits        []ExpenseSplitResponse `json:"splits"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"` // UserID
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"` // UserID
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	splits := make([]ExpenseSplitResponse, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = ExpenseSplitResponse{
			ParticipantID: s.ParticipantID,
			AmountOwed:    s.AmountOwed,
			Paid:          s.Paid,
		}
	}
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		TripID:        e.TripID,
		PayerID:       e.PayerID,
		Amount:        e.Amount,
		Description:   e.Description,
		Category:      e.Category,
		ExpenseDate:   e.ExpenseDate,
		SplitType:     e.SplitType,
		Splits:        splits,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ListExpensesResponse wraps a page of expenses with the cursor for the next page.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a slice of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense, nextToken *string) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i, e := range es {
		list[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: list, NextToken: nextToken}
}

// --- Balance and Settlement DTOs ---

// ParticipantBalanceResponse defines data returned for one participant's totals.
type ParticipantBalanceResponse struct {
	ParticipantID string          `json:"participantID"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalOwed     decimal.Decimal `json:"totalOwed"`
	NetBalance    decimal.Decimal `json:"netBalance"`
}

// ListBalancesResponse wraps the per-participant balances of a trip.
type ListBalancesResponse struct {
	Balances []ParticipantBalanceResponse `json:"balances"`
}

// ToListBalancesResponse converts a slice of domain.ParticipantBalance to DTO.
func ToListBalancesResponse(bs []domain.ParticipantBalance) ListBalancesResponse {
	list := make([]ParticipantBalanceResponse, len(bs))
	for i, b := range bs {
		list[i] = ParticipantBalanceResponse{
			ParticipantID: b.ParticipantID,
			TotalPaid:     b.TotalPaid,
			TotalOwed:     b.TotalOwed,
			NetBalance:    b.NetBalance,
		}
	}
	return ListBalancesResponse{Balances: list}
}

// SettlementResponse defines one suggested transfer in a settlement plan.
type SettlementResponse struct {
	FromParticipantID string          `json:"fromParticipantID"`
	ToParticipantID   string          `json:"toParticipantID"`
	Amount            decimal.Decimal `json:"amount"`
}

// ListSettlementsResponse wraps the settlement plan for a trip.
type ListSettlementsResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
}

// ToListSettlementsResponse converts a slice of domain.Settlement to DTO.
func ToListSettlementsResponse(ss []domain.Settlement) ListSettlementsResponse {
	list := make([]SettlementResponse, len(ss))
	for i, s := range ss {
		list[i] = SettlementResponse{
			FromParticipantID: s.FromParticipantID,
			ToParticipantID:   s.ToParticipantID,
			Amount:            s.Amount,
		}
	}
	return ListSettlementsResponse{Settlements: list}
}
