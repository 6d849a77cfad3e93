package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/core/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
)

// --- Mock ActivityRepository (based on ActivityService usage) ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	args := m.Called(ctx, activityID)
	var activity *domain.Activity
	if args.Get(0) != nil {
		activity = args.Get(0).(*domain.Activity)
	}
	return activity, args.Error(1)
}

func (m *MockActivityRepository) ListActivitiesByTrip(ctx context.Context, tripID string) ([]domain.Activity, error) {
	args := m.Called(ctx, tripID)
	var activities []domain.Activity
	if args.Get(0) != nil {
		activities = args.Get(0).([]domain.Activity)
	}
	return activities, args.Error(1)
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

func (m *MockActivityRepository) AddParticipant(ctx context.Context, participant domain.ActivityParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockActivityRepository) RemoveParticipant(ctx context.Context, activityID, userID string) error {
	args := m.Called(ctx, activityID, userID)
	return args.Error(0)
}

func (m *MockActivityRepository) ListParticipants(ctx context.Context, activityID string) ([]domain.ActivityParticipant, error) {
	args := m.Called(ctx, activityID)
	var participants []domain.ActivityParticipant
	if args.Get(0) != nil {
		participants = args.Get(0).([]domain.ActivityParticipant)
	}
	return participants, args.Error(1)
}

// --- Test Suite ---
type ActivityServiceTestSuite struct {
	suite.Suite
	mockActivityRepo *MockActivityRepository
	mockTripRepo     *MockTripRepository
	mockAuthorizer   *MockTripAuthorizer
	service          portssvc.ActivitySvcFacade

	tripID   string
	ownerID  string
	memberID string
	otherID  string
	baseDate time.Time
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockAuthorizer = new(MockTripAuthorizer)
	suite.service = services.NewActivityService(suite.mockActivityRepo, suite.mockTripRepo, suite.mockAuthorizer)

	suite.tripID = uuid.NewString()
	suite.ownerID = uuid.NewString()
	suite.memberID = uuid.NewString()
	suite.otherID = uuid.NewString()
	suite.baseDate = time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
}

func (suite *ActivityServiceTestSuite) expectActivityMember(userID string) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, userID, suite.tripID, domain.RoleMember).
		Return(nil).Once()
}

func (suite *ActivityServiceTestSuite) expectActivityActiveTrip() {
	suite.mockTripRepo.On("FindTripByID", mock.Anything, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID, IsActive: true}, nil).Once()
}

func (suite *ActivityServiceTestSuite) tripActivity(createdBy string) *domain.Activity {
	return &domain.Activity{
		ActivityID:    uuid.NewString(),
		TripID:        suite.tripID,
		Name:          "Kayak tour",
		StartDate:     suite.baseDate,
		StartTime:     "09:30",
		CostPerPerson: decimal.NewFromInt(25),
		AuditFields:   domain.AuditFields{CreatedBy: createdBy},
	}
}

// --- CreateActivity Tests ---

func (suite *ActivityServiceTestSuite) TestCreateActivity_Success() {
	suite.expectActivityMember(suite.memberID)
	suite.expectActivityActiveTrip()

	req := dto.CreateActivityRequest{
		Name:          "Kayak tour",
		Location:      "North pier",
		StartDate:     suite.baseDate,
		StartTime:     "09:30",
		CostPerPerson: decimal.NewFromInt(25),
	}

	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.MatchedBy(func(a domain.Activity) bool {
		return a.TripID == suite.tripID && a.Name == "Kayak tour" && a.CreatedBy == suite.memberID
	})).Return(nil).Once()
	suite.mockActivityRepo.On("AddParticipant", mock.Anything, mock.MatchedBy(func(p domain.ActivityParticipant) bool {
		return p.UserID == suite.memberID
	})).Return(nil).Once()

	activity, err := suite.service.CreateActivity(context.Background(), suite.tripID, req, suite.memberID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), activity)
	assert.Equal(suite.T(), 1, activity.ParticipantCount, "creator should be signed up automatically")
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestCreateActivity_NegativeCost() {
	suite.expectActivityMember(suite.memberID)
	suite.expectActivityActiveTrip()

	req := dto.CreateActivityRequest{
		Name:          "Kayak tour",
		StartDate:     suite.baseDate,
		CostPerPerson: decimal.NewFromInt(-5),
	}

	activity, err := suite.service.CreateActivity(context.Background(), suite.tripID, req, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), activity)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "SaveActivity", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestCreateActivity_InactiveTrip() {
	suite.expectActivityMember(suite.memberID)
	suite.mockTripRepo.On("FindTripByID", mock.Anything, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID, IsActive: false}, nil).Once()

	req := dto.CreateActivityRequest{Name: "Kayak tour", StartDate: suite.baseDate}

	activity, err := suite.service.CreateActivity(context.Background(), suite.tripID, req, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	assert.Nil(suite.T(), activity)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "SaveActivity", mock.Anything, mock.Anything)
}

// --- UpdateActivity Tests ---

func (suite *ActivityServiceTestSuite) TestUpdateActivity_CreatorAllowed() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.memberID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()

	newName := "Sunset kayak tour"
	suite.mockActivityRepo.On("UpdateActivity", mock.Anything, mock.MatchedBy(func(a domain.Activity) bool {
		return a.Name == newName && a.LastUpdatedBy == suite.memberID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateActivity(context.Background(), suite.tripID, activity.ActivityID, dto.UpdateActivityRequest{Name: &newName}, suite.memberID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newName, updated.Name)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestUpdateActivity_OtherMemberForbidden() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.otherID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	// Not the creator, so the service checks for trip ownership next
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.otherID, suite.tripID, domain.RoleOwner).
		Return(apperrors.ErrForbidden).Once()

	newName := "Hijacked"
	updated, err := suite.service.UpdateActivity(context.Background(), suite.tripID, activity.ActivityID, dto.UpdateActivityRequest{Name: &newName}, suite.otherID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), updated)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "UpdateActivity", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestUpdateActivity_OwnerAllowed() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.ownerID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.ownerID, suite.tripID, domain.RoleOwner).
		Return(nil).Once()

	newLocation := "South pier"
	suite.mockActivityRepo.On("UpdateActivity", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateActivity(context.Background(), suite.tripID, activity.ActivityID, dto.UpdateActivityRequest{Location: &newLocation}, suite.ownerID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newLocation, updated.Location)
}

func (suite *ActivityServiceTestSuite) TestUpdateActivity_WrongTrip() {
	activity := suite.tripActivity(suite.memberID)
	activity.TripID = uuid.NewString() // belongs to a different trip
	suite.expectActivityMember(suite.memberID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()

	newName := "Renamed"
	updated, err := suite.service.UpdateActivity(context.Background(), suite.tripID, activity.ActivityID, dto.UpdateActivityRequest{Name: &newName}, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.Nil(suite.T(), updated)
}

// --- DeleteActivity Tests ---

func (suite *ActivityServiceTestSuite) TestDeleteActivity_CreatorAllowed() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.memberID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	suite.mockActivityRepo.On("DeleteActivity", mock.Anything, activity.ActivityID).
		Return(nil).Once()

	err := suite.service.DeleteActivity(context.Background(), suite.tripID, activity.ActivityID, suite.memberID)

	assert.NoError(suite.T(), err)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

// --- Participation Tests ---

func (suite *ActivityServiceTestSuite) TestJoinActivity_Success() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.otherID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	suite.expectActivityActiveTrip()
	suite.mockActivityRepo.On("AddParticipant", mock.Anything, mock.MatchedBy(func(p domain.ActivityParticipant) bool {
		return p.ActivityID == activity.ActivityID && p.UserID == suite.otherID
	})).Return(nil).Once()

	err := suite.service.JoinActivity(context.Background(), suite.tripID, activity.ActivityID, suite.otherID)

	assert.NoError(suite.T(), err)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestJoinActivity_InactiveTrip() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.otherID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	suite.mockTripRepo.On("FindTripByID", mock.Anything, suite.tripID).
		Return(&domain.Trip{TripID: suite.tripID, IsActive: false}, nil).Once()

	err := suite.service.JoinActivity(context.Background(), suite.tripID, activity.ActivityID, suite.otherID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "AddParticipant", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestLeaveActivity_Success() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.otherID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	suite.mockActivityRepo.On("RemoveParticipant", mock.Anything, activity.ActivityID, suite.otherID).
		Return(nil).Once()

	err := suite.service.LeaveActivity(context.Background(), suite.tripID, activity.ActivityID, suite.otherID)

	assert.NoError(suite.T(), err)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestListActivityParticipants_Success() {
	activity := suite.tripActivity(suite.memberID)
	suite.expectActivityMember(suite.memberID)
	suite.mockActivityRepo.On("FindActivityByID", mock.Anything, activity.ActivityID).
		Return(activity, nil).Once()
	suite.mockActivityRepo.On("ListParticipants", mock.Anything, activity.ActivityID).
		Return([]domain.ActivityParticipant{
			{ActivityID: activity.ActivityID, UserID: suite.memberID},
			{ActivityID: activity.ActivityID, UserID: suite.otherID},
		}, nil).Once()

	participants, err := suite.service.ListActivityParticipants(context.Background(), suite.tripID, activity.ActivityID, suite.memberID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), participants, 2)
}

// --- Itinerary Tests ---

func (suite *ActivityServiceTestSuite) TestGetTripItinerary_GroupsByDay() {
	day1 := suite.baseDate
	day2 := suite.baseDate.AddDate(0, 0, 1)
	activities := []domain.Activity{
		{ActivityID: uuid.NewString(), TripID: suite.tripID, Name: "Museum", StartDate: day1, StartTime: "10:00", CostPerPerson: decimal.NewFromInt(15), ParticipantCount: 1},
		{ActivityID: uuid.NewString(), TripID: suite.tripID, Name: "Dinner", StartDate: day1, StartTime: "19:00", CostPerPerson: decimal.NewFromInt(40), ParticipantCount: 1},
		{ActivityID: uuid.NewString(), TripID: suite.tripID, Name: "Hike", StartDate: day2, CostPerPerson: decimal.Zero, ParticipantCount: 2},
	}

	suite.expectActivityMember(suite.memberID)
	suite.mockActivityRepo.On("ListActivitiesByTrip", mock.Anything, suite.tripID).
		Return(activities, nil).Once()

	days, err := suite.service.GetTripItinerary(context.Background(), suite.tripID, suite.memberID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), days, 2)
	assert.Len(suite.T(), days[0].Activities, 2)
	assert.Equal(suite.T(), "55", days[0].TotalCost.String())
	assert.Len(suite.T(), days[1].Activities, 1)
	assert.True(suite.T(), days[1].TotalCost.IsZero())
}

func (suite *ActivityServiceTestSuite) TestGetTripItinerary_NotAMember() {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.otherID, suite.tripID, domain.RoleMember).
		Return(apperrors.ErrForbidden).Once()

	days, err := suite.service.GetTripItinerary(context.Background(), suite.tripID, suite.otherID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), days)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "ListActivitiesByTrip", mock.Anything, mock.Anything)
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
