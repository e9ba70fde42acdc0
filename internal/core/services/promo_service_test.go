package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/core/services"
)

// MockOfferRepository is a mock type for the OfferRepositoryFacade interface
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

// --- Test Suite Setup ---

type PromoServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOfferRepository
	service  portssvc.PromoSvcFacade
}

func (suite *PromoServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOfferRepository)
	suite.service = services.NewPromoService(suite.mockRepo)
}

// percentageOffer is a 10% flight discount capped at 15000, minimum order
// 10000, valid for another week.
func percentageOffer() *domain.Offer {
	return &domain.Offer{
		Code:        "SAVE10",
		Category:    string(domain.BookingFlight),
		Type:        domain.OfferPercentage,
		Discount:    decimal.NewFromInt(10),
		MinAmount:   10000,
		MaxDiscount: 15000,
		ValidUntil:  time.Now().UTC().AddDate(0, 0, 7),
	}
}

func flatOffer() *domain.Offer {
	return &domain.Offer{
		Code:       "RAILPASS",
		Category:   string(domain.BookingTrain),
		Type:       domain.OfferFlat,
		Discount:   decimal.NewFromInt(5000),
		MinAmount:  20000,
		ValidUntil: time.Now().UTC().AddDate(0, 0, 7),
	}
}

// --- Test Cases ---

func (suite *PromoServiceTestSuite) TestValidate_PercentageDiscount() {
	ctx := context.Background()
	offer := percentageOffer()
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(offer, nil).Once()

	result, err := suite.service.Validate(ctx, "SAVE10", 50000, domain.BookingFlight)

	suite.Require().NoError(err)
	suite.Equal(int64(5000), result.DiscountAmount)
	suite.Equal(int64(45000), result.FinalAmount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PromoServiceTestSuite) TestValidate_PercentageDiscountHitsCap() {
	ctx := context.Background()
	offer := percentageOffer()
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(offer, nil).Once()

	// 10% of 200000 is 20000, above the 15000 cap.
	result, err := suite.service.Validate(ctx, "SAVE10", 200000, domain.BookingFlight)

	suite.Require().NoError(err)
	suite.Equal(int64(15000), result.DiscountAmount)
	suite.Equal(int64(185000), result.FinalAmount)
}

func (suite *PromoServiceTestSuite) TestValidate_FractionalPercentageRoundsDown() {
	ctx := context.Background()
	offer := percentageOffer()
	offer.Discount = decimal.RequireFromString("12.5")
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(offer, nil).Once()

	// 12.5% of 10001 is 1250.125; the fractional part is dropped.
	result, err := suite.service.Validate(ctx, "SAVE10", 10001, domain.BookingFlight)

	suite.Require().NoError(err)
	suite.Equal(int64(1250), result.DiscountAmount)
	suite.Equal(int64(8751), result.FinalAmount)
}

func (suite *PromoServiceTestSuite) TestValidate_FlatDiscount() {
	ctx := context.Background()
	suite.mockRepo.On("FindOfferByCode", ctx, "RAILPASS").Return(flatOffer(), nil).Once()

	result, err := suite.service.Validate(ctx, "RAILPASS", 25000, domain.BookingTrain)

	suite.Require().NoError(err)
	suite.Equal(int64(5000), result.DiscountAmount)
	suite.Equal(int64(20000), result.FinalAmount)
}

func (suite *PromoServiceTestSuite) TestValidate_AmountAtMinimumSucceeds() {
	ctx := context.Background()
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(percentageOffer(), nil).Once()

	result, err := suite.service.Validate(ctx, "SAVE10", 10000, domain.BookingFlight)

	suite.Require().NoError(err)
	suite.Equal(int64(1000), result.DiscountAmount)
}

func (suite *PromoServiceTestSuite) TestValidate_AmountBelowMinimumFails() {
	ctx := context.Background()
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(percentageOffer(), nil).Once()

	_, err := suite.service.Validate(ctx, "SAVE10", 9999, domain.BookingFlight)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBelowMinimumAmount)
}

func (suite *PromoServiceTestSuite) TestValidate_CategoryMismatchFails() {
	ctx := context.Background()
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(percentageOffer(), nil).Once()

	_, err := suite.service.Validate(ctx, "SAVE10", 50000, domain.BookingHotel)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCategoryMismatch)
}

func (suite *PromoServiceTestSuite) TestValidate_AllCategoryAppliesEverywhere() {
	ctx := context.Background()
	offer := percentageOffer()
	offer.Code = "TRAVELALL"
	offer.Category = domain.OfferCategoryAll
	suite.mockRepo.On("FindOfferByCode", ctx, "TRAVELALL").Return(offer, nil).Twice()

	for _, category := range []domain.BookingType{domain.BookingCab, domain.BookingHoliday} {
		result, err := suite.service.Validate(ctx, "TRAVELALL", 50000, category)
		suite.Require().NoError(err)
		suite.Equal(int64(5000), result.DiscountAmount)
	}
}

func (suite *PromoServiceTestSuite) TestValidate_UnknownCodeFails() {
	ctx := context.Background()
	suite.mockRepo.On("FindOfferByCode", ctx, "NOSUCH").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Validate(ctx, "NOSUCH", 50000, domain.BookingFlight)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredCode)
}

func (suite *PromoServiceTestSuite) TestValidate_ExpiredCodeFails() {
	ctx := context.Background()
	offer := percentageOffer()
	offer.ValidUntil = time.Now().UTC().AddDate(0, 0, -1)
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(offer, nil).Once()

	_, err := suite.service.Validate(ctx, "SAVE10", 50000, domain.BookingFlight)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredCode)
}

func (suite *PromoServiceTestSuite) TestValidate_ValidThroughExpiryDay() {
	ctx := context.Background()
	offer := percentageOffer()
	// Midnight at the start of today: the offer must remain valid for the
	// rest of the calendar day.
	offer.ValidUntil = time.Now().UTC().Truncate(24 * time.Hour)
	suite.mockRepo.On("FindOfferByCode", ctx, "SAVE10").Return(offer, nil).Once()

	_, err := suite.service.Validate(ctx, "SAVE10", 50000, domain.BookingFlight)

	suite.Require().NoError(err)
}

func (suite *PromoServiceTestSuite) TestValidate_NonPositiveAmountFails() {
	ctx := context.Background()

	_, err := suite.service.Validate(ctx, "SAVE10", 0, domain.BookingFlight)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindOfferByCode")
}

func (suite *PromoServiceTestSuite) TestListActiveOffers_FiltersExpired() {
	ctx := context.Background()
	active := *percentageOffer()
	expired := *flatOffer()
	expired.ValidUntil = time.Now().UTC().AddDate(0, 0, -2)
	suite.mockRepo.On("ListOffers", ctx).Return([]domain.Offer{active, expired}, nil).Once()

	offers, err := suite.service.ListActiveOffers(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(offers, 1)
	suite.Equal("SAVE10", offers[0].Code)
}

func TestPromoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PromoServiceTestSuite))
}
