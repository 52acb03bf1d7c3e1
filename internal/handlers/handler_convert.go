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

// convertHandler serves read-only currency conversions.
type convertHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConverterSvcFacade) *convertHandler {
	return &convertHandler{converterService: cs}
}

// registerConvertRoutes registers the conversion route.
func registerConvertRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newConvertHandler(converterService)
	rg.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount without touching any wallet balance.
// @Tags convert
// @Produce json
// @Param amount query string true "Amount to convert (decimal string)"
// @Param from query string true "Source currency code (3 letters)"
// @Param to query string true "Target currency code (3 letters)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or unknown currency"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Exchange rate feed unavailable"
// @Security BearerAuth
// @Router /convert [get]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount, from and to query parameters are required"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount must be a decimal number"})
		return
	}

	result, err := h.converterService.Convert(c.Request.Context(), amount, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount must be positive"})
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown currency code"})
		case errors.Is(err, apperrors.ErrRateFeedUnavailable):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Exchange rate service unavailable, try again later"})
		default:
			logger.Error("Conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
