package services

import (
	"context"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
	"github.com/tripmates/trip_planner_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense with its splits. The requesting
	// user must be an approved member of the expense's trip.
	GetExpenseByID(ctx context.Context, tripID, expenseID string, requestingUserID string) (*domain.Expense, error)

	// ListTripExpenses retrieves a page of a trip's expenses, newest first.
	ListTripExpenses(ctx context.Context, tripID string, requestingUserID string, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense creates an expense and its splits atomically.
	CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense replaces an expense's details and splits. Payer or trip owner only.
	UpdateExpense(ctx context.Context, tripID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense. Payer or trip owner only.
	DeleteExpense(ctx context.Context, tripID, expenseID string, requestingUserID string) error
}

// BalanceSvc defines operations for derived financial state
type BalanceSvc interface {
	// GetTripBalances computes per-participant paid/owed/net totals for a trip.
	GetTripBalances(ctx context.Context, tripID string, requestingUserID string) ([]domain.ParticipantBalance, error)

	// GetTripSettlements computes the minimal transfer plan that settles a trip's balances.
	GetTripSettlements(ctx context.Context, tripID string, requestingUserID string) ([]domain.Settlement, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
// This is a facade for clients that need access to all operations
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	BalanceSvc
}
