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

// promoHandler handles HTTP requests related to discount offers.
type promoHandler struct {
	promoService portssvc.PromoSvcFacade
}

func newPromoHandler(ps portssvc.PromoSvcFacade) *promoHandler {
	return &promoHandler{promoService: ps}
}

// registerPromoRoutes registers routes related to offers and promo codes.
func registerPromoRoutes(rg *gin.RouterGroup, promoService portssvc.PromoSvcFacade) {
	h := newPromoHandler(promoService)

	offers := rg.Group("/offers")
	{
		offers.GET("", h.listOffers)
		offers.POST("/validate", h.validatePromo)
	}
}

// listOffers godoc
// @Summary List active offers
// @Description Returns the discount offers that have not yet expired
// @Tags offers
// @Produce  json
// @Success 200 {object} dto.ListOffersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list offers"
// @Security BearerAuth
// @Router /offers [get]
func (h *promoHandler) listOffers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	offers, err := h.promoService.ListActiveOffers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list offers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list offers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOffersResponse(offers))
}

// validatePromo godoc
// @Summary Validate a promo code
// @Description Checks a promo code against an amount and booking category and returns the computed discount
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   promo body dto.ValidatePromoRequest true "Promo code, amount and category"
// @Success 200 {object} dto.ValidatePromoResponse
// @Failure 400 {object} map[string]string "Invalid input, category mismatch, or amount below minimum"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown or expired promo code"
// @Failure 500 {object} map[string]string "Failed to validate promo code"
// @Security BearerAuth
// @Router /offers/validate [post]
func (h *promoHandler) validatePromo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidatePromo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("promo_code", req.Code))
	logger.Info("Received request to validate promo code", slog.Int64("amount", req.Amount))

	result, err := h.promoService.Validate(c.Request.Context(), req.Code, req.Amount, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidOrExpiredCode):
			logger.Warn("Promo code invalid or expired")
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code is invalid or expired"})
		case errors.Is(err, apperrors.ErrCategoryMismatch),
			errors.Is(err, apperrors.ErrBelowMinimumAmount),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Promo code rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to validate promo code", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate promo code"})
		}
		return
	}

	logger.Info("Promo code validated", slog.Int64("discount_amount", result.DiscountAmount))
	c.JSON(http.StatusOK, dto.ToValidatePromoResponse(result))
}
