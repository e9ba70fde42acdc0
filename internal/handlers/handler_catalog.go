package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/dto"
	"github.com/voyago/travel_booking_app/internal/middleware"
)

// catalogHandler serves the travel product catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes related to the product catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/:type", h.listProducts)
	}
}

// listProducts godoc
// @Summary List catalog products
// @Description Returns the bookable products for a travel category
// @Tags catalog
// @Produce  json
// @Param   type path string true "Booking type" Enums(flight, hotel, train, bus, cab, holiday)
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Unknown booking type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /catalog/{type} [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingType := domain.BookingType(c.Param("type"))

	products, err := h.catalogService.ListProducts(c.Request.Context(), bookingType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unknown booking type for catalog", slog.String("type", string(bookingType)))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: products})
}
