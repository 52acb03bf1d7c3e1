package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/SscSPs/instant_transfer/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests for the wallet: balance reads and the
// deposit/withdraw commit operations.
type walletHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ls portssvc.LedgerSvcFacade) *walletHandler {
	return &walletHandler{ledgerService: ls}
}

// RegisterWalletRoutes registers routes related to the wallet.
func RegisterWalletRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newWalletHandler(ledgerService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.POST("/deposit", h.deposit)
		wallet.POST("/withdraw", h.withdraw)
	}
}

// deposit godoc
// @Summary Deposit funds
// @Description Credits the authenticated user's wallet, creating it on first use.
// @Tags wallet
// @Accept json
// @Produce json
// @Param deposit body dto.AmountRequest true "Amount to deposit (decimal string)"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Amount missing, non-numeric or not positive"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/deposit [post]
func (h *walletHandler) deposit(c *gin.Context) {
	h.commit(c, h.ledgerService.Deposit)
}

// withdraw godoc
// @Summary Withdraw funds
// @Description Debits the authenticated user's wallet if funds suffice.
// @Tags wallet
// @Accept json
// @Produce json
// @Param withdraw body dto.AmountRequest true "Amount to withdraw (decimal string)"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Amount missing, non-numeric or not positive"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/withdraw [post]
func (h *walletHandler) withdraw(c *gin.Context) {
	h.commit(c, h.ledgerService.Withdraw)
}

// commit is the shared deposit/withdraw flow: bind, authenticate, delegate,
// map errors.
func (h *walletHandler) commit(c *gin.Context, op func(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for wallet commit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: amount is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := op(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount must be a positive decimal number"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient funds"})
		default:
			logger.Error("Wallet commit failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Transaction could not be completed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getWallet godoc
// @Summary Get wallet details
// @Description Returns the authenticated user's balance and currency.
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.WalletDetailsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No wallet yet (no deposits made)"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	wallet, err := h.ledgerService.GetWalletDetails(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Wallet not found, make a deposit first"})
			return
		}
		logger.Error("Failed to get wallet details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve wallet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletDetailsResponse(wallet))
}
