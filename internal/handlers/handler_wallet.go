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

// walletHandler handles HTTP requests related to the user's wallet.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// RegisterWalletRoutes registers routes related to the wallet.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("/balance", h.getBalance)
		wallet.POST("/topup", h.topUp)
		wallet.GET("/transactions", h.listTransactions)
	}
}

// getBalance godoc
// @Summary Get the wallet balance
// @Description Returns the logged-in user's current wallet balance in minor currency units
// @Tags wallet
// @Produce  json
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /wallet/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn("User not found for balance query")
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to get wallet balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.WalletBalanceResponse{UserID: userID, Balance: balance})
}

// topUp godoc
// @Summary Top up the wallet
// @Description Credits the logged-in user's wallet and returns the new balance
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   topup body dto.CreditWalletRequest true "Top-up amount in minor currency units"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to top up wallet"
// @Security BearerAuth
// @Router /wallet/topup [post]
func (h *walletHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreditWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TopUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to top up wallet", slog.Int64("amount", req.Amount))

	balance, err := h.walletService.Credit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
			logger.Warn("Validation error topping up wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUserNotFound):
			logger.Warn("User not found for top-up")
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logger.Error("Failed to top up wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to top up wallet"})
		}
		return
	}

	logger.Info("Wallet topped up", slog.Int64("new_balance", balance))
	c.JSON(http.StatusOK, dto.WalletBalanceResponse{UserID: userID, Balance: balance})
}

// listTransactions godoc
// @Summary List wallet transactions
// @Description Returns the logged-in user's wallet ledger history, newest first
// @Tags wallet
// @Produce  json
// @Success 200 {object} dto.ListWalletTransactionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /wallet/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.walletService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list wallet transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletTransactionsResponse(txns))
}
