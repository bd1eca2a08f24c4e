package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/core/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
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

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
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
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "kasa",
		Email:    "kasa@example.com",
		Password: "password123",
		Role:     "observer",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.Role == domain.RoleObserver &&
			user.IsActive &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "kasa",
		Email:    "kasa@example.com",
		Password: "password123",
		Role:     "admin",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.NewConflictError("username or email already taken")).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "patron",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "patron").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "patron", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.NotNil(got.LastLoginAt)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "patron",
		PasswordHash: hash,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "patron").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "patron", "wrong")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DisabledAccount() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "eski",
		PasswordHash: hash,
		IsActive:     false,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "eski").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "eski", "correct-horse")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Self-modification guards ---

func (suite *UserServiceTestSuite) TestToggleUserActive_SelfRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	got, err := suite.service.ToggleUserActive(ctx, userID, userID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestToggleUserActive_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "kasa", IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == userID && !u.IsActive
	})).Return(nil).Once()

	got, err := suite.service.ToggleUserActive(ctx, userID, adminID)

	suite.Require().NoError(err)
	suite.False(got.IsActive)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangeUserRole_SelfRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	got, err := suite.service.ChangeUserRole(ctx, userID, domain.RoleObserver, userID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser")
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUser", ctx, userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ResetUserPassword Tests ---

func (suite *UserServiceTestSuite) TestResetUserPassword_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "kasa", PasswordHash: "old-hash"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == userID && utils.CheckPasswordHash("new-secret", u.PasswordHash)
	})).Return(nil).Once()

	err := suite.service.ResetUserPassword(ctx, userID, "new-secret")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- EnsureBootstrapAdmin Tests ---

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_CreatesOnEmptyTable() {
	ctx := context.Background()

	suite.mockUserRepo.On("CountUsers", ctx).Return(0, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && u.Role == domain.RoleAdmin
	})).Return(nil).Once()

	err := suite.service.EnsureBootstrapAdmin(ctx, "admin", "admin@example.com", "changeme")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_SkipsWhenUsersExist() {
	ctx := context.Background()

	suite.mockUserRepo.On("CountUsers", ctx).Return(3, nil).Once()

	err := suite.service.EnsureBootstrapAdmin(ctx, "admin", "admin@example.com", "changeme")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestListUsers_RepoError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsers", ctx, 50, 0).Return(nil, assert.AnError).Once()

	users, err := suite.service.ListUsers(ctx, 50, 0)

	suite.Require().Error(err)
	suite.Nil(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
