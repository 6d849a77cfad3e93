package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
	"github.com/tripmates/trip_planner_app/internal/utils"
	"github.com/tripmates/trip_planner_app/internal/utils/splitmath"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tripRepo    portsrepo.TripRepositoryFacade
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	tripRepo portsrepo.TripRepositoryFacade,
	tripAuthorizer portssvc.TripAuthorizerSvc,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{TripAuthorizer: tripAuthorizer},
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense creates an expense and its splits atomically.
func (s *expenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := s.requireActiveTrip(ctx, tripID); err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		TripID:      tripID,
		PayerID:     req.PayerID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		ExpenseDate: req.ExpenseDate,
		SplitType:   req.SplitType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	splits, err := s.buildSplits(ctx, &expense, req.ParticipantIDs, req.Splits)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("expense_id", expense.ExpenseID),
			slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("trip_id", tripID),
		slog.String("amount", utils.FormatAmount(expense.Amount)))
	return &expense, nil
}

// UpdateExpense replaces an expense's details and splits. Payer or trip owner only.
func (s *expenseService) UpdateExpense(ctx context.Context, tripID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	existing, err := s.getTripExpense(ctx, tripID, expenseID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActiveTrip(ctx, tripID); err != nil {
		return nil, err
	}
	if err := s.requirePayerOrOwner(ctx, existing, requestingUserID); err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ExpenseID:   existing.ExpenseID,
		TripID:      existing.TripID,
		PayerID:     req.PayerID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		ExpenseDate: req.ExpenseDate,
		SplitType:   req.SplitType,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: requestingUserID,
		},
	}

	splits, err := s.buildSplits(ctx, &expense, req.ParticipantIDs, req.Splits)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits

	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense",
			slog.String("expense_id", expenseID),
			slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully",
		slog.String("expense_id", expenseID),
		slog.String("trip_id", tripID))
	return &expense, nil
}

// DeleteExpense removes an expense. Payer or trip owner only.
func (s *expenseService) DeleteExpense(ctx context.Context, tripID, expenseID string, requestingUserID string) error {
	existing, err := s.getTripExpense(ctx, tripID, expenseID, requestingUserID)
	if err != nil {
		return err
	}
	if err := s.requirePayerOrOwner(ctx, existing, requestingUserID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense",
			slog.String("expense_id", expenseID),
			slog.String("trip_id", tripID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully",
		slog.String("expense_id", expenseID),
		slog.String("trip_id", tripID))
	return nil
}

// GetExpenseByID retrieves an expense with its splits, visible to approved members.
func (s *expenseService) GetExpenseByID(ctx context.Context, tripID, expenseID string, requestingUserID string) (*domain.Expense, error) {
	return s.getTripExpense(ctx, tripID, expenseID, requestingUserID)
}

// ListTripExpenses retrieves a page of a trip's expenses, newest first.
func (s *expenseService) ListTripExpenses(ctx context.Context, tripID string, requestingUserID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	expenses, newToken, err := s.expenseRepo.ListExpensesByTrip(ctx, tripID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("trip_id", tripID))
		return nil, nil, err
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, newToken, nil
}

// GetTripBalances computes per-participant paid/owed/net totals for a trip.
// Every approved member appears in the result, zero balances included.
func (s *expenseService) GetTripBalances(ctx context.Context, tripID string, requestingUserID string) ([]domain.ParticipantBalance, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	expenses, splits, roster, err := s.loadBalanceInputs(ctx, tripID)
	if err != nil {
		return nil, err
	}

	for _, warning := range splitmath.CheckSplitConsistency(expenses, splits) {
		s.LogWarn(ctx, "Split inconsistency detected",
			slog.String("trip_id", tripID),
			slog.String("detail", warning))
	}

	return splitmath.ComputeBalances(expenses, splits, roster), nil
}

// GetTripSettlements computes the minimal transfer plan that settles a trip's balances.
func (s *expenseService) GetTripSettlements(ctx context.Context, tripID string, requestingUserID string) ([]domain.Settlement, error) {
	balances, err := s.GetTripBalances(ctx, tripID, requestingUserID)
	if err != nil {
		return nil, err
	}
	return splitmath.GenerateSettlements(balances), nil
}

// loadBalanceInputs fetches the trip's full expense history, splits and
// approved-member roster.
func (s *expenseService) loadBalanceInputs(ctx context.Context, tripID string) ([]domain.Expense, []domain.ExpenseSplit, []string, error) {
	expenses, err := s.expenseRepo.ListAllExpensesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for balances", slog.String("trip_id", tripID))
		return nil, nil, nil, err
	}

	splits, err := s.expenseRepo.ListSplitsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load splits for balances", slog.String("trip_id", tripID))
		return nil, nil, nil, err
	}

	roster, err := s.approvedMemberIDs(ctx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}

	return expenses, splits, roster, nil
}

// approvedMemberIDs returns the IDs of a trip's approved members.
func (s *expenseService) approvedMemberIDs(ctx context.Context, tripID string) ([]string, error) {
	approved := domain.StatusApproved
	members, err := s.tripRepo.ListTripMembers(ctx, tripID, &approved)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trip roster", slog.String("trip_id", tripID))
		return nil, err
	}

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	return ids, nil
}

// buildSplits validates split inputs and produces the final split rows for an
// expense. The payer's own row is marked paid.
func (s *expenseService) buildSplits(ctx context.Context, expense *domain.Expense, participantIDs []string, customSplits []dto.SplitInput) ([]domain.ExpenseSplit, error) {
	if !expense.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("expense amount must be positive")
	}

	roster, err := s.approvedMemberIDs(ctx, expense.TripID)
	if err != nil {
		return nil, err
	}
	approved := make(map[string]bool, len(roster))
	for _, id := range roster {
		approved[id] = true
	}
	if !approved[expense.PayerID] {
		return nil, apperrors.NewValidationFailedError("payer is not an approved member of this trip")
	}

	switch expense.SplitType {
	case domain.SplitEqual:
		// An omitted subset means the whole approved roster shares the expense.
		if len(participantIDs) == 0 {
			participantIDs = roster
		}
		return s.buildEqualSplits(expense, participantIDs, approved)
	case domain.SplitCustom:
		return s.buildCustomSplits(expense, customSplits, approved)
	default:
		return nil, apperrors.NewValidationFailedError("unknown split type")
	}
}

func (s *expenseService) buildEqualSplits(expense *domain.Expense, participantIDs []string, approved map[string]bool) ([]domain.ExpenseSplit, error) {
	if len(participantIDs) == 0 {
		return nil, apperrors.NewValidationFailedError("trip has no approved participants to split between")
	}

	seen := make(map[string]bool, len(participantIDs))
	for _, id := range participantIDs {
		if seen[id] {
			return nil, apperrors.NewValidationFailedError("duplicate participant " + id)
		}
		seen[id] = true
		if !approved[id] {
			return nil, apperrors.NewValidationFailedError("participant " + id + " is not an approved member of this trip")
		}
	}

	shares, err := splitmath.EqualShares(expense.Amount, len(participantIDs))
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	splits := make([]domain.ExpenseSplit, len(participantIDs))
	for i, id := range participantIDs {
		splits[i] = domain.ExpenseSplit{
			ExpenseID:     expense.ExpenseID,
			ParticipantID: id,
			AmountOwed:    shares[i],
			Paid:          id == expense.PayerID,
		}
	}
	return splits, nil
}

func (s *expenseService) buildCustomSplits(expense *domain.Expense, customSplits []dto.SplitInput, approved map[string]bool) ([]domain.ExpenseSplit, error) {
	if len(customSplits) == 0 {
		return nil, apperrors.NewValidationFailedError("custom split requires at least one entry")
	}

	total := decimal.Zero
	seen := make(map[string]bool, len(customSplits))
	splits := make([]domain.ExpenseSplit, len(customSplits))
	for i, in := range customSplits {
		if seen[in.ParticipantID] {
			return nil, apperrors.NewValidationFailedError("duplicate participant " + in.ParticipantID)
		}
		seen[in.ParticipantID] = true
		if !approved[in.ParticipantID] {
			return nil, apperrors.NewValidationFailedError("participant " + in.ParticipantID + " is not an approved member of this trip")
		}
		if in.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("split amounts cannot be negative")
		}

		total = total.Add(in.Amount)
		splits[i] = domain.ExpenseSplit{
			ExpenseID:     expense.ExpenseID,
			ParticipantID: in.ParticipantID,
			AmountOwed:    in.Amount,
			Paid:          in.ParticipantID == expense.PayerID,
		}
	}

	// Sums within Epsilon of the amount are treated as rounding noise: the
	// difference is folded into the first split so the rows sum exactly.
	diff := expense.Amount.Sub(total)
	if diff.Abs().GreaterThan(splitmath.Epsilon) {
		return nil, apperrors.NewValidationFailedError(
			"split amounts sum to " + total.String() + ", expected " + expense.Amount.String())
	}
	if !diff.IsZero() {
		adjusted := splits[0].AmountOwed.Add(diff)
		if adjusted.IsNegative() {
			return nil, apperrors.NewValidationFailedError("split amounts cannot be negative")
		}
		splits[0].AmountOwed = adjusted
	}
	return splits, nil
}

// getTripExpense loads an expense after checking membership and that the
// expense belongs to the given trip.
func (s *expenseService) getTripExpense(ctx context.Context, tripID, expenseID string, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	if expense.TripID != tripID {
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

// requirePayerOrOwner permits the expense payer and the trip owner only.
func (s *expenseService) requirePayerOrOwner(ctx context.Context, expense *domain.Expense, requestingUserID string) error {
	if expense.PayerID == requestingUserID {
		return nil
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, expense.TripID, domain.RoleOwner); err != nil {
		return apperrors.NewForbiddenError("only the payer or the trip owner can modify this expense")
	}
	return nil
}

// requireActiveTrip rejects writes against deactivated trips.
func (s *expenseService) requireActiveTrip(ctx context.Context, tripID string) error {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return err
	}
	if !trip.IsActive {
		return apperrors.NewConflictError("trip is not active")
	}
	return nil
}
