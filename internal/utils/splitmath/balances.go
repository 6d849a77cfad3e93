package splitmath

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// ComputeBalances aggregates a trip's expenses and splits into one
// ParticipantBalance per roster member. Members with no expense involvement
// get an all-zero balance. The result is ordered by the roster order.
//
// For every roster member p:
//
//	totalPaid(p) = sum of expense.Amount where expense.PayerID == p
//	totalOwed(p) = sum of split.AmountOwed where split.ParticipantID == p
//	netBalance(p) = round(totalPaid - totalOwed)
//
// The function is pure: identical inputs always produce identical output.
func ComputeBalances(expenses []domain.Expense, splits []domain.ExpenseSplit, roster []string) []domain.ParticipantBalance {
	byID := make(map[string]*domain.ParticipantBalance, len(roster))
	balances := make([]domain.ParticipantBalance, len(roster))
	for i, participantID := range roster {
		balances[i] = domain.ParticipantBalance{ParticipantID: participantID}
		byID[participantID] = &balances[i]
	}

	for _, exp := range expenses {
		if bal, ok := byID[exp.PayerID]; ok {
			bal.TotalPaid = bal.TotalPaid.Add(exp.Amount)
		}
	}
	for _, split := range splits {
		if bal, ok := byID[split.ParticipantID]; ok {
			bal.TotalOwed = bal.TotalOwed.Add(split.AmountOwed)
		}
	}

	for i := range balances {
		balances[i].NetBalance = balances[i].TotalPaid.Sub(balances[i].TotalOwed).Round(sharePrecision)
	}
	return balances
}

// CheckSplitConsistency verifies that each expense's splits sum to its amount
// within Epsilon. It returns one message per violating expense. Callers treat
// violations as data-integrity warnings, not failures: balances remain a
// read-only view and are still computed.
func CheckSplitConsistency(expenses []domain.Expense, splits []domain.ExpenseSplit) []string {
	type accumulator struct {
		sum  decimal.Decimal
		seen bool
	}
	sums := make(map[string]accumulator, len(expenses))
	for _, split := range splits {
		acc := sums[split.ExpenseID]
		acc.sum = acc.sum.Add(split.AmountOwed)
		acc.seen = true
		sums[split.ExpenseID] = acc
	}

	var warnings []string
	for _, exp := range expenses {
		acc := sums[exp.ExpenseID]
		if !acc.seen {
			warnings = append(warnings, fmt.Sprintf("expense %s has no splits", exp.ExpenseID))
			continue
		}
		if exp.Amount.Sub(acc.sum).Abs().GreaterThan(Epsilon) {
			warnings = append(warnings, fmt.Sprintf("expense %s splits sum to %s, expected %s",
				exp.ExpenseID, acc.sum.String(), exp.Amount.String()))
		}
	}
	return warnings
}
