package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/core/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
)

// --- Mock ExpenseRepository (based on ExpenseService usage) ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByTrip(ctx context.Context, tripID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, tripID, limit, nextToken)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return expenses, token, args.Error(2)
}

func (m *MockExpenseRepository) ListAllExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	args := m.Called(ctx, tripID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) ListSplitsByTrip(ctx context.Context, tripID string) ([]domain.ExpenseSplit, error) {
	args := m.Called(ctx, tripID)
	var splits []domain.ExpenseSplit
	if args.Get(0) != nil {
		splits = args.Get(0).([]domain.ExpenseSplit)
	}
	return splits, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock TripAuthorizer ---
type MockTripAuthorizer struct {
	mock.Mock
}

func (m *MockTripAuthorizer) AuthorizeUserAction(ctx context.Context, userID, tripID string, requiredRole domain.TripMemberRole) error {
	args := m.Called(ctx, userID, tripID, requiredRole)
	return args.Error(0)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockTripRepo    *MockTripRepository
	mockAuthorizer  *MockTripAuthorizer
	service         portssvc.ExpenseSvcFacade

	tripID  string
	ownerID string
	aliceID string
	bobID   string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockAuthorizer = new(MockTripAuthorizer)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockTripRepo, suite.mockAuthorizer)

	suite.tripID = uuid.NewString()
	suite.ownerID = uuid.NewString()
	suite.aliceID = uuid.NewString()
	suite.bobID = uuid.NewString()
}

// roster returns approved memberships for the suite's three users.
func (suite *ExpenseServiceTestSuite) roster() []domain.TripMember {
	return []domain.TripMember{
		{UserID: suite.ownerID, TripID: suite.tripID, Role: domain.RoleOwner, Status: domain.StatusApproved},
		{UserID: suite.aliceID, TripID: suite.tripID, Role: domain.RoleMember, Status: domain.StatusApproved},
		{UserID: suite.bobID, TripID: suite.tripID, Role: domain.RoleMember, Status: domain.StatusApproved},
	}
}

func (suite *ExpenseServiceTestSuite) expectMember(userID string) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, userID, suite.tripID, domain.RoleMember).
		Return(nil).Once()
}

func (suite *ExpenseServiceTestSuite) expectActiveTrip() {
	suite.mockTripRepo.On("FindTripByID", mock.Anything, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID, IsActive: true}, nil).Once()
}

func (suite *ExpenseServiceTestSuite) expectRoster() {
	approved := domain.StatusApproved
	suite.mockTripRepo.On("ListTripMembers", mock.Anything, suite.tripID, &approved).
		Return(suite.roster(), nil).Once()
}

// --- CreateExpense Tests ---
func (suite *ExpenseServiceTestSuite) TestCreateExpense_EqualSplit() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		PayerID:        suite.ownerID,
		Amount:         decimal.RequireFromString("100.00"),
		Description:    "Group dinner",
		Category:       domain.CategoryFood,
		ExpenseDate:    time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		SplitType:      domain.SplitEqual,
		ParticipantIDs: []string{suite.ownerID, suite.aliceID, suite.bobID},
	}

	suite.expectMember(suite.ownerID)
	suite.expectActiveTrip()
	suite.expectRoster()
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		if len(e.Splits) != 3 {
			return false
		}
		total := decimal.Zero
		for _, split := range e.Splits {
			total = total.Add(split.AmountOwed)
		}
		return total.Equal(req.Amount)
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Len(expense.Splits, 3)
	// 100.00 three ways: remainder cent lands on the first share
	suite.Equal("33.34", expense.Splits[0].AmountOwed.StringFixed(2))
	suite.Equal("33.33", expense.Splits[1].AmountOwed.StringFixed(2))
	suite.True(expense.Splits[0].Paid) // payer's own row
	suite.False(expense.Splits[1].Paid)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_EqualSplitDefaultsToRoster() {
	ctx := context.Background()
	// No ParticipantIDs: the whole approved roster shares the expense.
	req := dto.CreateExpenseRequest{
		PayerID:     suite.ownerID,
		Amount:      decimal.RequireFromString("90.00"),
		Description: "Groceries",
		Category:    domain.CategoryFood,
		ExpenseDate: time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC),
		SplitType:   domain.SplitEqual,
	}

	suite.expectMember(suite.ownerID)
	suite.expectActiveTrip()
	suite.expectRoster()
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Require().Len(expense.Splits, 3)
	paidRows := 0
	for _, split := range expense.Splits {
		suite.Equal("30.00", split.AmountOwed.StringFixed(2))
		if split.Paid {
			paidRows++
			suite.Equal(suite.ownerID, split.ParticipantID)
		}
	}
	suite.Equal(1, paidRows)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CustomSplit() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		PayerID:     suite.aliceID,
		Amount:      decimal.RequireFromString("90.00"),
		Description: "Cable car tickets",
		Category:    domain.CategoryActivities,
		ExpenseDate: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		SplitType:   domain.SplitCustom,
		Splits: []dto.SplitInput{
			{ParticipantID: suite.aliceID, Amount: decimal.RequireFromString("60.00")},
			{ParticipantID: suite.bobID, Amount: decimal.RequireFromString("30.00")},
		},
	}

	suite.expectMember(suite.aliceID)
	suite.expectActiveTrip()
	suite.expectRoster()
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.aliceID)

	suite.Require().NoError(err)
	suite.Len(expense.Splits, 2)
	suite.True(expense.Splits[0].Paid)
	suite.False(expense.Splits[1].Paid)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CustomSplitNormalizesCentDrift() {
	ctx := context.Background()
	// Sums one cent short of the amount: normalized, not rejected.
	req := dto.CreateExpenseRequest{
		PayerID:     suite.aliceID,
		Amount:      decimal.RequireFromString("90.00"),
		Description: "Fuel",
		Category:    domain.CategoryTransport,
		ExpenseDate: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		SplitType:   domain.SplitCustom,
		Splits: []dto.SplitInput{
			{ParticipantID: suite.aliceID, Amount: decimal.RequireFromString("59.99")},
			{ParticipantID: suite.bobID, Amount: decimal.RequireFromString("30.00")},
		},
	}

	suite.expectMember(suite.aliceID)
	suite.expectActiveTrip()
	suite.expectRoster()
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.aliceID)

	suite.Require().NoError(err)
	suite.Require().Len(expense.Splits, 2)
	// The missing cent is folded into the first split
	suite.Equal("60.00", expense.Splits[0].AmountOwed.StringFixed(2))
	suite.Equal("30.00", expense.Splits[1].AmountOwed.StringFixed(2))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CustomSplitSumMismatch() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		PayerID:     suite.aliceID,
		Amount:      decimal.RequireFromString("90.00"),
		Category:    domain.CategoryOther,
		ExpenseDate: time.Now(),
		SplitType:   domain.SplitCustom,
		Splits: []dto.SplitInput{
			{ParticipantID: suite.aliceID, Amount: decimal.RequireFromString("60.00")},
			{ParticipantID: suite.bobID, Amount: decimal.RequireFromString("20.00")},
		},
	}

	suite.expectMember(suite.aliceID)
	suite.expectActiveTrip()
	suite.expectRoster()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.aliceID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonMemberParticipant() {
	ctx := context.Background()
	outsiderID := uuid.NewString()
	req := dto.CreateExpenseRequest{
		PayerID:        suite.ownerID,
		Amount:         decimal.RequireFromString("50.00"),
		Category:       domain.CategoryTransport,
		ExpenseDate:    time.Now(),
		SplitType:      domain.SplitEqual,
		ParticipantIDs: []string{suite.ownerID, outsiderID},
	}

	suite.expectMember(suite.ownerID)
	suite.expectActiveTrip()
	suite.expectRoster()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DuplicateParticipant() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		PayerID:        suite.ownerID,
		Amount:         decimal.RequireFromString("50.00"),
		Category:       domain.CategoryOther,
		ExpenseDate:    time.Now(),
		SplitType:      domain.SplitEqual,
		ParticipantIDs: []string{suite.aliceID, suite.aliceID},
	}

	suite.expectMember(suite.ownerID)
	suite.expectActiveTrip()
	suite.expectRoster()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		PayerID:        suite.ownerID,
		Amount:         decimal.Zero,
		Category:       domain.CategoryOther,
		ExpenseDate:    time.Now(),
		SplitType:      domain.SplitEqual,
		ParticipantIDs: []string{suite.ownerID},
	}

	suite.expectMember(suite.ownerID)
	suite.expectActiveTrip()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InactiveTrip() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		PayerID:        suite.ownerID,
		Amount:         decimal.RequireFromString("10.00"),
		Category:       domain.CategoryOther,
		ExpenseDate:    time.Now(),
		SplitType:      domain.SplitEqual,
		ParticipantIDs: []string{suite.ownerID},
	}

	suite.expectMember(suite.ownerID)
	suite.mockTripRepo.On("FindTripByID", mock.Anything, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID, IsActive: false}, nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

// --- DeleteExpense Tests ---
func (suite *ExpenseServiceTestSuite) TestDeleteExpense_PayerAllowed() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{ExpenseID: expenseID, TripID: suite.tripID, PayerID: suite.aliceID}

	suite.expectMember(suite.aliceID)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, expenseID).Return(existing, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", mock.Anything, expenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.tripID, expenseID, suite.aliceID)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_OwnerAllowed() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{ExpenseID: expenseID, TripID: suite.tripID, PayerID: suite.aliceID}

	suite.expectMember(suite.ownerID)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, expenseID).Return(existing, nil).Once()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.ownerID, suite.tripID, domain.RoleOwner).
		Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", mock.Anything, expenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.tripID, expenseID, suite.ownerID)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_OtherMemberForbidden() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{ExpenseID: expenseID, TripID: suite.tripID, PayerID: suite.aliceID}

	suite.expectMember(suite.bobID)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, expenseID).Return(existing, nil).Once()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.bobID, suite.tripID, domain.RoleOwner).
		Return(apperrors.ErrForbidden).Once()

	err := suite.service.DeleteExpense(ctx, suite.tripID, expenseID, suite.bobID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense")
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_WrongTrip() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{ExpenseID: expenseID, TripID: uuid.NewString(), PayerID: suite.aliceID}

	suite.expectMember(suite.aliceID)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, expenseID).Return(existing, nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.tripID, expenseID, suite.aliceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense")
}

// --- ListTripExpenses Tests ---
func (suite *ExpenseServiceTestSuite) TestListTripExpenses_PassesPagination() {
	ctx := context.Background()
	token := "opaque-cursor"
	newToken := "next-cursor"
	expenses := []domain.Expense{{ExpenseID: uuid.NewString(), TripID: suite.tripID}}

	suite.expectMember(suite.aliceID)
	suite.mockExpenseRepo.On("ListExpensesByTrip", mock.Anything, suite.tripID, 20, &token).
		Return(expenses, &newToken, nil).Once()

	got, gotToken, err := suite.service.ListTripExpenses(ctx, suite.tripID, suite.aliceID, 20, &token)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Require().NotNil(gotToken)
	suite.Equal(newToken, *gotToken)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

// --- Balance and Settlement Tests ---
func (suite *ExpenseServiceTestSuite) TestGetTripBalances() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	expenses := []domain.Expense{{
		ExpenseID: expenseID,
		TripID:    suite.tripID,
		PayerID:   suite.ownerID,
		Amount:    decimal.RequireFromString("90.00"),
	}}
	splits := []domain.ExpenseSplit{
		{ExpenseID: expenseID, ParticipantID: suite.ownerID, AmountOwed: decimal.RequireFromString("30.00"), Paid: true},
		{ExpenseID: expenseID, ParticipantID: suite.aliceID, AmountOwed: decimal.RequireFromString("30.00")},
		{ExpenseID: expenseID, ParticipantID: suite.bobID, AmountOwed: decimal.RequireFromString("30.00")},
	}

	suite.expectMember(suite.aliceID)
	suite.mockExpenseRepo.On("ListAllExpensesByTrip", mock.Anything, suite.tripID).Return(expenses, nil).Once()
	suite.mockExpenseRepo.On("ListSplitsByTrip", mock.Anything, suite.tripID).Return(splits, nil).Once()
	suite.expectRoster()

	balances, err := suite.service.GetTripBalances(ctx, suite.tripID, suite.aliceID)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 3)

	byID := make(map[string]domain.ParticipantBalance, len(balances))
	for _, b := range balances {
		byID[b.ParticipantID] = b
	}
	suite.Equal("60", byID[suite.ownerID].NetBalance.String())
	suite.Equal("-30", byID[suite.aliceID].NetBalance.String())
	suite.Equal("-30", byID[suite.bobID].NetBalance.String())

	// Net balances always sum to zero
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.NetBalance)
	}
	suite.True(total.IsZero())
}

func (suite *ExpenseServiceTestSuite) TestGetTripBalances_NoExpenses() {
	ctx := context.Background()

	suite.expectMember(suite.aliceID)
	suite.mockExpenseRepo.On("ListAllExpensesByTrip", mock.Anything, suite.tripID).
		Return([]domain.Expense{}, nil).Once()
	suite.mockExpenseRepo.On("ListSplitsByTrip", mock.Anything, suite.tripID).
		Return([]domain.ExpenseSplit{}, nil).Once()
	suite.expectRoster()

	balances, err := suite.service.GetTripBalances(ctx, suite.tripID, suite.aliceID)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 3) // zero balances for every member
	for _, b := range balances {
		suite.True(b.NetBalance.IsZero())
	}
}

func (suite *ExpenseServiceTestSuite) TestGetTripSettlements() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	expenses := []domain.Expense{{
		ExpenseID: expenseID,
		TripID:    suite.tripID,
		PayerID:   suite.ownerID,
		Amount:    decimal.RequireFromString("90.00"),
	}}
	splits := []domain.ExpenseSplit{
		{ExpenseID: expenseID, ParticipantID: suite.ownerID, AmountOwed: decimal.RequireFromString("30.00"), Paid: true},
		{ExpenseID: expenseID, ParticipantID: suite.aliceID, AmountOwed: decimal.RequireFromString("30.00")},
		{ExpenseID: expenseID, ParticipantID: suite.bobID, AmountOwed: decimal.RequireFromString("30.00")},
	}

	suite.expectMember(suite.aliceID)
	suite.mockExpenseRepo.On("ListAllExpensesByTrip", mock.Anything, suite.tripID).Return(expenses, nil).Once()
	suite.mockExpenseRepo.On("ListSplitsByTrip", mock.Anything, suite.tripID).Return(splits, nil).Once()
	suite.expectRoster()

	settlements, err := suite.service.GetTripSettlements(ctx, suite.tripID, suite.aliceID)

	suite.Require().NoError(err)
	suite.Require().Len(settlements, 2)
	for _, s := range settlements {
		suite.Equal(suite.ownerID, s.ToParticipantID)
		suite.Equal("30", s.Amount.String())
	}
}

func (suite *ExpenseServiceTestSuite) TestGetTripBalances_NotAMember() {
	ctx := context.Background()
	outsiderID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, outsiderID, suite.tripID, domain.RoleMember).
		Return(apperrors.ErrForbidden).Once()

	balances, err := suite.service.GetTripBalances(ctx, suite.tripID, outsiderID)

	suite.Require().Error(err)
	suite.Nil(balances)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "ListAllExpensesByTrip")
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
