package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/SscSPs/atm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles the card holder's requests against the dispenser.
type accountHandler struct {
	atmService portssvc.AtmSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AtmSvcFacade) *accountHandler {
	return &accountHandler{atmService: as}
}

// RegisterAccountRoutes registers the card holder routes. rg must already authenticate the account.
func RegisterAccountRoutes(rg *gin.RouterGroup, atmService portssvc.AtmSvcFacade) {
	h := newAccountHandler(atmService)

	account := rg.Group("/account")
	{
		account.GET("/balance", h.getBalance)
		account.POST("/deposit", h.deposit)
		account.POST("/withdraw", h.withdraw)
		account.GET("/journal", h.listJournal)
	}
}

// accountFromContext reads the authenticated account or answers 401.
func accountFromContext(c *gin.Context, logger *slog.Logger) (string, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return accountID, ok
}

// getBalance godoc
// @Summary Get the account balance
// @Tags account
// @Produce json
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Security CardAuth
// @Router /account/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountFromContext(c, logger)
	if !ok {
		return
	}

	balance, err := h.atmService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: accountID, Amount: balance})
}

// deposit godoc
// @Summary Deposit banknotes
// @Description Loads banknotes into the dispenser and credits their value. Nothing is applied if any section would overflow.
// @Tags account
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Banknote counts keyed by face value"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Cash section overflow"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Security CardAuth
// @Router /account/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.atmService.Deposit(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// withdraw godoc
// @Summary Withdraw cash
// @Description Dispenses the amount if it can be paid exactly. Otherwise returns status false with outcome NO_EXACT_BREAKDOWN and changes nothing.
// @Tags account
// @Accept json
// @Produce json
// @Param withdraw body dto.WithdrawRequest true "Amount"
// @Success 200 {object} dto.WithdrawResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Security CardAuth
// @Router /account/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.atmService.Withdraw(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to withdraw")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listJournal godoc
// @Summary List the account's dispenser operations
// @Tags account
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Security CardAuth
// @Router /account/journal [get]
func (h *accountHandler) listJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ListJournalParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.atmService.ListJournal(c.Request.Context(), accountID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal")
		return
	}

	c.JSON(http.StatusOK, resp)
}
