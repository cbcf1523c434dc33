package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/healthconnect_wallet/internal/core/ports/services"
	"github.com/SscSPs/healthconnect_wallet/internal/dto"
	"github.com/SscSPs/healthconnect_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{
		walletService: ws,
	}
}

// RegisterWalletRoutes registers routes related to wallets.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	if err := registerValidators(); err != nil {
		slog.Error("Failed to register custom validators", slog.String("error", err.Error()))
	}
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.GET("", h.listWallets)
		wallets.GET("/statistics", h.getStatistics)
		wallets.GET("/:ownerType/:ownerID", h.getWallet)
		wallets.GET("/:ownerType/:ownerID/balance", h.getBalance)
		wallets.GET("/:ownerType/:ownerID/earnings", h.getEarnings)
		wallets.GET("/:ownerType/:ownerID/transactions", h.listTransactions)
		wallets.POST("/:ownerType/:ownerID/withdraw", h.withdraw)
	}
}

// ownerFromPath reads and normalises the owner path params. It writes a 400 and
// returns false when the owner type is unknown.
func ownerFromPath(c *gin.Context, logger *slog.Logger) (string, domain.OwnerType, bool) {
	ownerID := c.Param("ownerID")
	ownerType, err := domain.ParseOwnerType(c.Param("ownerType"))
	if err != nil {
		logger.Warn("Invalid owner type in path", slog.String("owner_type", c.Param("ownerType")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}
	return ownerID, ownerType, true
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPersistenceUnavailable):
		logger.Error("Wallet store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Wallet store unavailable, please retry"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     fallback,
			"requestID": middleware.GetRequestIDFromCtx(c.Request.Context()),
		})
	}
}

// getWallet godoc
// @Summary Get a wallet
// @Description Returns the wallet of a doctor or pharmacy, creating an empty one on first access
// @Tags wallets
// @Produce  json
// @Param   ownerType path string true "Owner type (DOCTOR or PHARMACY, case-insensitive)"
// @Param   ownerID path string true "Owner ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid owner"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Failure 500 {object} map[string]string "Failed to retrieve wallet"
// @Router /wallets/{ownerType}/{ownerID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ownerID, ownerType, ok := ownerFromPath(c, logger)
	if !ok {
		return
	}

	wallet, err := h.walletService.GetOrCreateWallet(c.Request.Context(), ownerID, ownerType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// getBalance godoc
// @Summary Get wallet balance
// @Description Returns the current balance, zero when the owner has no wallet yet
// @Tags wallets
// @Produce  json
// @Param   ownerType path string true "Owner type"
// @Param   ownerID path string true "Owner ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid owner"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Router /wallets/{ownerType}/{ownerID}/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ownerID, ownerType, ok := ownerFromPath(c, logger)
	if !ok {
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), ownerID, ownerType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		OwnerID:   ownerID,
		OwnerType: ownerType,
		Balance:   balance,
		Currency:  domain.DefaultCurrency,
	})
}

// getEarnings godoc
// @Summary Get earnings summary
// @Description Summarises balance and credited earnings. Does not create a wallet.
// @Tags wallets
// @Produce  json
// @Param   ownerType path string true "Owner type"
// @Param   ownerID path string true "Owner ID"
// @Success 200 {object} dto.EarningsResponse
// @Failure 400 {object} map[string]string "Invalid owner"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Router /wallets/{ownerType}/{ownerID}/earnings [get]
func (h *walletHandler) getEarnings(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ownerID, ownerType, ok := ownerFromPath(c, logger)
	if !ok {
		return
	}

	summary, err := h.walletService.GetEarnings(c.Request.Context(), ownerID, ownerType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve earnings")
		return
	}

	c.JSON(http.StatusOK, dto.ToEarningsResponse(summary))
}

// listTransactions godoc
// @Summary List wallet transactions
// @Description Lists transactions newest first using token-based pagination
// @Tags wallets
// @Produce  json
// @Param   ownerType path string true "Owner type"
// @Param   ownerID path string true "Owner ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid owner or query parameters"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Router /wallets/{ownerType}/{ownerID}/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ownerID, ownerType, ok := ownerFromPath(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, next, err := h.walletService.ListTransactions(c.Request.Context(), ownerID, ownerType, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    next,
	})
}

// withdraw godoc
// @Summary Request a withdrawal
// @Description Takes the amount out of the wallet if it is positive and covered by the balance
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   ownerType path string true "Owner type"
// @Param   ownerID path string true "Owner ID"
// @Param   request body dto.WithdrawRequest true "Withdrawal details"
// @Success 200 {object} dto.WithdrawResponse
// @Failure 400 {object} dto.WithdrawResponse "Insufficient balance or invalid withdrawal amount"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Router /wallets/{ownerType}/{ownerID}/withdraw [post]
func (h *walletHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ownerID, ownerType, ok := ownerFromPath(c, logger)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("owner_id", ownerID), slog.String("owner_type", string(ownerType)))
	logger.Info("Received withdrawal request", slog.String("amount", req.Amount.String()))

	result, err := h.walletService.ProcessWithdrawal(c.Request.Context(), ownerID, ownerType, req.Amount, req.BankDetails)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process withdrawal")
		return
	}

	resp := dto.WithdrawResponse{
		Success: result.Applied,
		Reason:  result.Reason,
		Amount:  result.Amount,
		Balance: result.Balance,
	}
	if !result.Applied {
		resp.Message = dto.WithdrawFailureMessage
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	t := dto.ToTransactionResponse(*result.Transaction)
	resp.Message = dto.WithdrawSuccessMessage
	resp.BankDetails = req.BankDetails
	resp.Transaction = &t
	c.JSON(http.StatusOK, resp)
}

// listWallets godoc
// @Summary List wallets by owner type
// @Description Admin listing of every wallet of one owner type, without transaction logs
// @Tags wallets
// @Produce  json
// @Param   ownerType query string true "Owner type (DOCTOR or PHARMACY)"
// @Success 200 {object} dto.ListWalletsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListWalletsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListWallets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	ownerType, err := domain.ParseOwnerType(params.OwnerType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallets, err := h.walletService.ListWalletsByType(c.Request.Context(), ownerType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list wallets")
		return
	}

	logger.Info("Wallets listed successfully", slog.Int("count", len(wallets)))
	c.JSON(http.StatusOK, dto.ToListWalletsResponse(wallets))
}

// getStatistics godoc
// @Summary Wallet statistics
// @Description Wallet counts and balance totals per owner type
// @Tags wallets
// @Produce  json
// @Success 200 {object} domain.WalletStatistics
// @Failure 503 {object} map[string]string "Wallet store unavailable"
// @Router /wallets/statistics [get]
func (h *walletHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	stats, err := h.walletService.GetStatistics(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute wallet statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
