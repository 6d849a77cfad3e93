package repositories

import (
	"context"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense with its splits.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByTrip retrieves a page of expenses for a trip, newest expense date first.
	// The nextToken cursor encodes the expense date and creation time of the last returned row.
	ListExpensesByTrip(ctx context.Context, tripID string, limit int, nextToken *string) ([]domain.Expense, *string, error)

	// ListAllExpensesByTrip retrieves every expense of a trip without splits.
	// Used for balance computation, which needs the full expense history.
	ListAllExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error)

	// ListSplitsByTrip retrieves every split row belonging to a trip's expenses.
	ListSplitsByTrip(ctx context.Context, tripID string) ([]domain.ExpenseSplit, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists an expense and all of its splits in a single transaction.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces an expense's details and splits in a single transaction.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
// This is a facade for clients that need access to all operations
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
