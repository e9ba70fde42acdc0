package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/dto"
	"github.com/voyago/travel_booking_app/internal/handlers"
	"github.com/voyago/travel_booking_app/internal/middleware"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID string, req dto.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Test Suite ---
type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBookingService
	jwtSecret   string
}

func (suite *BookingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tba-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	suite.mockService = new(MockBookingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBookingRoutes(v1, suite.mockService)
}

func (suite *BookingHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BookingHandlerTestSuite) TestCreateBooking_Success() {
	userID := uuid.NewString()
	req := dto.CreateBookingRequest{
		Type:          domain.BookingHotel,
		Details:       json.RawMessage(`{"hotel":"Taj Holiday Village"}`),
		TotalAmount:   1250000,
		PaymentMethod: domain.PaymentWallet,
	}
	expected := &domain.Booking{
		BookingID:     uuid.NewString(),
		Reference:     "HT-K7Q2MX9A",
		UserID:        userID,
		Type:          domain.BookingHotel,
		Details:       req.Details,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: domain.PaymentWallet,
		Status:        domain.StatusConfirmed,
		BookedAt:      time.Now().UTC(),
	}

	suite.mockService.On("CreateBooking", mock.Anything, userID, mock.MatchedBy(func(r dto.CreateBookingRequest) bool {
		return r.Type == domain.BookingHotel && r.TotalAmount == 1250000
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bookings", userID, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("HT-K7Q2MX9A", resp.Reference)
	suite.Equal(domain.StatusConfirmed, resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_InsufficientFundsReturns402() {
	userID := uuid.NewString()
	req := dto.CreateBookingRequest{
		Type:          domain.BookingFlight,
		Details:       json.RawMessage(`{"flight":"6E-204"}`),
		TotalAmount:   549900,
		PaymentMethod: domain.PaymentWallet,
	}

	suite.mockService.On("CreateBooking", mock.Anything, userID, mock.Anything).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bookings", userID, req)

	suite.Equal(http.StatusPaymentRequired, w.Code)
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_MissingFieldsReturns400() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/bookings", userID, map[string]any{"type": "flight"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateBooking")
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_NoTokenReturns401() {
	req, err := http.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{}")))
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *BookingHandlerTestSuite) TestGetBooking_NotFoundReturns404() {
	userID := uuid.NewString()
	bookingID := uuid.NewString()

	suite.mockService.On("GetBooking", mock.Anything, bookingID, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BookingHandlerTestSuite) TestListBookings_Success() {
	userID := uuid.NewString()
	bookings := []domain.Booking{
		{BookingID: uuid.NewString(), Reference: "FL-AAAA2222", UserID: userID, Status: domain.StatusConfirmed},
		{BookingID: uuid.NewString(), Reference: "HT-BBBB3333", UserID: userID, Status: domain.StatusCancelled},
	}

	suite.mockService.On("ListBookings", mock.Anything, userID).Return(bookings, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bookings", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBookingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Bookings, 2)
	suite.Equal("FL-AAAA2222", resp.Bookings[0].Reference)
}

func (suite *BookingHandlerTestSuite) TestCancelBooking_Success() {
	userID := uuid.NewString()
	bookingID := uuid.NewString()
	now := time.Now().UTC()
	cancelled := &domain.Booking{
		BookingID:   bookingID,
		Reference:   "TR-CCCC4444",
		UserID:      userID,
		Status:      domain.StatusCancelled,
		CancelledAt: &now,
	}

	suite.mockService.On("CancelBooking", mock.Anything, bookingID, userID).Return(cancelled, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/cancel", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StatusCancelled, resp.Status)
	suite.NotNil(resp.CancelledAt)
}

func (suite *BookingHandlerTestSuite) TestCancelBooking_AlreadyCancelledReturns409() {
	userID := uuid.NewString()
	bookingID := uuid.NewString()

	suite.mockService.On("CancelBooking", mock.Anything, bookingID, userID).
		Return(nil, apperrors.ErrAlreadyCancelled).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/cancel", userID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
