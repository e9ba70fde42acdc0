package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/dto"
	"github.com/voyago/travel_booking_app/internal/middleware"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// RegisterBookingRoutes registers routes related to bookings.
func RegisterBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.POST("/:id/cancel", h.cancelBooking)
	}
}

// createBooking godoc
// @Summary Create a new booking
// @Description Books a travel product for the logged-in user. Wallet payments debit the wallet atomically with the booking insert.
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input, promo code rejected, or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} map[string]string "Insufficient wallet balance"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("booking_type", string(req.Type)))
	logger.Info("Received request to create booking", slog.Int64("total_amount", req.TotalAmount))

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrInvalidOrExpiredCode),
			errors.Is(err, apperrors.ErrCategoryMismatch),
			errors.Is(err, apperrors.ErrBelowMinimumAmount):
			logger.Warn("Validation error creating booking", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Insufficient funds creating booking", slog.String("error", err.Error()))
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUserNotFound):
			logger.Warn("Unknown user creating booking")
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logger.Error("Failed to create booking in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created successfully", slog.String("reference", booking.Reference))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// getBooking godoc
// @Summary Get a booking by ID
// @Description Retrieves one of the logged-in user's bookings. Other users' bookings are indistinguishable from missing ones.
// @Tags bookings
// @Produce  json
// @Param   id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Booking not found", slog.String("booking_id", bookingID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to get booking from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List the user's bookings
// @Description Returns the logged-in user's bookings, most recent first
// @Tags bookings
// @Produce  json
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list bookings"
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBookingsResponse(bookings))
}

// cancelBooking godoc
// @Summary Cancel a booking
// @Description Cancels a confirmed booking and refunds its total amount to the wallet. Cancelling an already-cancelled booking fails.
// @Tags bookings
// @Produce  json
// @Param   id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 409 {object} map[string]string "Booking already cancelled"
// @Failure 500 {object} map[string]string "Failed to cancel booking"
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (h *bookingHandler) cancelBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("booking_id", bookingID))
	logger.Info("Received request to cancel booking")

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Booking not found for cancel")
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, apperrors.ErrAlreadyCancelled):
			logger.Warn("Booking already cancelled")
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already cancelled"})
		default:
			logger.Error("Failed to cancel booking in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	logger.Info("Booking cancelled successfully", slog.String("reference", booking.Reference))
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
