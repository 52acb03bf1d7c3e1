package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/SscSPs/instant_transfer/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// userHandler serves the authenticated user's profile.
type userHandler struct {
	userService   portssvc.UserSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ls portssvc.LedgerSvcFacade) *userHandler {
	return &userHandler{userService: us, ledgerService: ls}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newUserHandler(userService, ledgerService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
	}
}

// getMe godoc
// @Summary Get own profile
// @Description Returns the authenticated user's username, account number and balance.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserDetailsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve profile"})
		return
	}

	resp := dto.UserDetailsResponse{
		Username:      user.Username,
		AccountNumber: user.AccountNumber(),
		Balance:       decimal.Zero, // no wallet until the first deposit
	}

	wallet, err := h.ledgerService.GetWalletDetails(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to get wallet for profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve profile"})
		return
	}
	if err == nil {
		resp.Balance = wallet.Balance
		resp.CurrencyCode = wallet.CurrencyCode
	}

	c.JSON(http.StatusOK, resp)
}
