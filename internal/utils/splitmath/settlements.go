package splitmath

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// GenerateSettlements turns a set of net balances into a list of direct
// payments that drives every balance to zero, using a greedy strategy that
// always matches the largest remaining creditor against the largest remaining
// debtor.
//
// The strategy is deliberately fixed rather than a minimum-transaction solver:
// creditors are sorted descending by net balance, debtors ascending (most
// negative first), and ties break on participant ID so the output is fully
// deterministic for a given input. Residual amounts within Epsilon are
// dropped without a settlement.
func GenerateSettlements(balances []domain.ParticipantBalance) []domain.Settlement {
	type party struct {
		id        string
		remaining decimal.Decimal
	}

	var creditors, debtors []party
	for _, bal := range balances {
		switch {
		case bal.NetBalance.GreaterThan(Epsilon):
			creditors = append(creditors, party{id: bal.ParticipantID, remaining: bal.NetBalance})
		case bal.NetBalance.Neg().GreaterThan(Epsilon):
			debtors = append(debtors, party{id: bal.ParticipantID, remaining: bal.NetBalance})
		}
	}

	sort.Slice(creditors, func(i, j int) bool {
		if !creditors[i].remaining.Equal(creditors[j].remaining) {
			return creditors[i].remaining.GreaterThan(creditors[j].remaining)
		}
		return creditors[i].id < creditors[j].id
	})
	sort.Slice(debtors, func(i, j int) bool {
		if !debtors[i].remaining.Equal(debtors[j].remaining) {
			return debtors[i].remaining.LessThan(debtors[j].remaining)
		}
		return debtors[i].id < debtors[j].id
	})

	var settlements []domain.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := debtor.remaining.Neg()
		if creditor.remaining.LessThan(amount) {
			amount = creditor.remaining
		}

		if amount.GreaterThan(Epsilon) {
			settlements = append(settlements, domain.Settlement{
				FromParticipantID: debtor.id,
				ToParticipantID:   creditor.id,
				Amount:            amount,
			})
		}

		debtor.remaining = debtor.remaining.Add(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		if debtor.remaining.Neg().LessThanOrEqual(Epsilon) {
			i++
		}
		if creditor.remaining.LessThanOrEqual(Epsilon) {
			j++
		}
	}

	return settlements
}
