package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/healthconnect_wallet/internal/core/ports/services"
	"github.com/SscSPs/healthconnect_wallet/internal/dto"
	"github.com/SscSPs/healthconnect_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

type distributionHandler struct {
	distributionService portssvc.DistributionSvc
}

// RegisterDistributionRoutes registers the hook the payment orchestrator calls.
func RegisterDistributionRoutes(rg *gin.RouterGroup, distributionService portssvc.DistributionSvc) {
	h := &distributionHandler{distributionService: distributionService}
	rg.POST("/distributions", h.distribute)
}

// distribute godoc
// @Summary Distribute a payment
// @Description Credits the provider's share of a successful payment. Payments that cannot be distributed are reported as skipped.
// @Tags distributions
// @Accept  json
// @Produce  json
// @Param   payment body dto.DistributeRequest true "Settled payment"
// @Success 200 {object} dto.DistributionResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Failure 500 {object} map[string]string "Failed to distribute payment"
// @Router /distributions [post]
func (h *distributionHandler) distribute(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Distribute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("payment_id", req.PaymentID), slog.String("payment_type", string(req.PaymentType)))
	result, err := h.distributionService.Distribute(c.Request.Context(), req.ToDomainPayment())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to distribute payment")
		return
	}

	logger.Info("Distribution handled", slog.String("outcome", string(result.Outcome)), slog.String("skip_reason", string(result.SkipReason)))
	c.JSON(http.StatusOK, dto.ToDistributionResponse(result))
}
