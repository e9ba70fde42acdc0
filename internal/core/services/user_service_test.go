package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/core/services"
	"github.com/voyago/travel_booking_app/internal/dto"
	"github.com/voyago/travel_booking_app/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_StartsWithZeroBalance() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"}

	suite.mockRepo.On("SaveUser", ctx,
		mock.MatchedBy(func(u domain.User) bool {
			return u.Email == req.Email && u.WalletBalance == 0 && u.UserID != ""
		}),
		mock.AnythingOfType("string"),
	).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(0), user.WalletBalance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmailFails() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"}

	suite.mockRepo.On("SaveUser", ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "asha@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(user, hash, nil).Once()

	got, err := suite.service.Authenticate(ctx, "asha@example.com", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("u1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPasswordFails() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "asha@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(user, hash, nil).Once()

	_, err = suite.service.Authenticate(ctx, "asha@example.com", "wrong-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailIsOpaque() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, "", apperrors.ErrUserNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
