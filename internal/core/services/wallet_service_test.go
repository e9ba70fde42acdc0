package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/core/services"
)

// MockWalletRepository is a mock type for the WalletRepositoryFacade interface
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) DebitWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error) {
	args := m.Called(ctx, userID, amount, memo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) CreditWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error) {
	args := m.Called(ctx, userID, amount, memo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) GetWalletBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) ListWalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

// --- Test Suite Setup ---

type WalletServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWalletRepository
	service  portssvc.WalletSvcFacade
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWalletRepository)
	suite.service = services.NewWalletService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *WalletServiceTestSuite) TestCredit_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CreditWallet", ctx, userID, int64(5000), "wallet top-up").
		Return(int64(5000), nil).Once()

	balance, err := suite.service.Credit(ctx, userID, 5000)

	suite.Require().NoError(err)
	suite.Equal(int64(5000), balance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCredit_NonPositiveAmountFails() {
	ctx := context.Background()

	for _, amount := range []int64{0, -100} {
		_, err := suite.service.Credit(ctx, uuid.NewString(), amount)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreditWallet")
}

func (suite *WalletServiceTestSuite) TestDebit_InsufficientFundsPropagates() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("DebitWallet", ctx, userID, int64(9000), "wallet debit").
		Return(int64(0), apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.Debit(ctx, userID, 9000)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (suite *WalletServiceTestSuite) TestListTransactions_Passthrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	txns := []domain.WalletTransaction{
		{TxnID: uuid.NewString(), Type: domain.WalletCredit, Amount: 5000, BalanceAfter: 5000},
	}

	suite.mockRepo.On("ListWalletTransactions", ctx, userID).Return(txns, nil).Once()

	got, err := suite.service.ListTransactions(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(txns, got)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
