package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/core/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
	"github.com/tripmates/trip_planner_app/internal/utils"
)

// --- Mock UserRepository (based on UserService usage) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{Username: "wanderer", Password: "str0ng-passw0rd", Name: "Sam"}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		// A bcrypt hash is stored, never the raw password, and a
		// self-registered user is their own creator.
		return u.Username == "wanderer" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash) &&
			u.CreatedBy == u.UserID
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(context.Background(), req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.NotEmpty(suite.T(), user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	req := dto.CreateUserRequest{Username: "wanderer", Password: "str0ng-passw0rd", Name: "Sam"}

	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).
		Return(apperrors.NewConflictError("username wanderer already exists")).Once()

	user, err := suite.service.CreateUser(context.Background(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	assert.Nil(suite.T(), user)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	password := "str0ng-passw0rd"
	hash, err := utils.HashPassword(password)
	assert.NoError(suite.T(), err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "wanderer", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "wanderer").
		Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(context.Background(), "wanderer", password)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, _ := utils.HashPassword("the-real-password")
	stored := &domain.User{UserID: uuid.NewString(), Username: "wanderer", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "wanderer").
		Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(context.Background(), "wanderer", "a-guess")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.Nil(suite.T(), user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(context.Background(), "ghost", "whatever")

	// Unknown users and bad passwords look the same to the caller.
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.Nil(suite.T(), user)
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_SelfOnly() {
	userID := uuid.NewString()
	otherID := uuid.NewString()
	newName := "New Name"

	user, err := suite.service.UpdateUser(context.Background(), userID, dto.UpdateUserRequest{Name: &newName}, otherID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	userID := uuid.NewString()
	newName := "New Name"
	stored := &domain.User{UserID: userID, Username: "wanderer", Name: "Old Name"}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.LastUpdatedBy == userID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(context.Background(), userID, dto.UpdateUserRequest{Name: &newName}, userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_SelfOnly() {
	userID := uuid.NewString()
	otherID := uuid.NewString()

	err := suite.service.DeleteUser(context.Background(), userID, otherID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", mock.Anything, userID, mock.AnythingOfType("time.Time"), userID).
		Return(nil).Once()

	err := suite.service.DeleteUser(context.Background(), userID, userID)

	assert.NoError(suite.T(), err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_EmptyResultIsNotNil() {
	suite.mockUserRepo.On("FindUsers", mock.Anything, 20, 0).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(context.Background(), 20, 0)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), users)
	assert.Empty(suite.T(), users)
}

// --- Refresh Token Tests ---

func (suite *UserServiceTestSuite) TestClearRefreshToken_Success() {
	userID := uuid.NewString()
	suite.mockUserRepo.On("ClearRefreshToken", mock.Anything, userID).Return(nil).Once()

	err := suite.service.ClearRefreshToken(context.Background(), userID)

	assert.NoError(suite.T(), err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
