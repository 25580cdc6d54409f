package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/SscSPs/atm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const adminOperator = "admin"

// cashHandler handles inventory administration of the dispenser.
type cashHandler struct {
	cashService portssvc.CashSvcFacade
}

// RegisterCashRoutes registers the inventory routes. rg must already be restricted to operators.
func RegisterCashRoutes(rg *gin.RouterGroup, cashService portssvc.CashSvcFacade) {
	h := &cashHandler{cashService: cashService}

	rg.GET("/sections", h.listSections)
	rg.PUT("/sections", h.insertSections)
	rg.GET("/balance", h.getTotalBalance)
}

// listSections godoc
// @Summary List cash sections
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CashSectionsResponse
// @Failure 401 {object} ErrorResponse
// @Security AdminKey
// @Router /admin/sections [get]
func (h *cashHandler) listSections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resp, err := h.cashService.ListSections(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list cash sections")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// insertSections godoc
// @Summary Load cash sections
// @Description Replaces the listed sections, e.g. for a top-up. Sections not listed are left untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Param sections body dto.InsertSectionsRequest true "Sections"
// @Success 200 {object} dto.CashSectionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security AdminKey
// @Router /admin/sections [put]
func (h *cashHandler) insertSections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InsertSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InsertSections", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.cashService.InsertSections(c.Request.Context(), req, adminOperator)
	if err != nil {
		respondWithError(c, logger, err, "Failed to load cash sections")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTotalBalance godoc
// @Summary Total value of banknotes in the dispenser
// @Tags admin
// @Produce json
// @Success 200 {object} dto.TotalBalanceResponse
// @Failure 401 {object} ErrorResponse
// @Security AdminKey
// @Router /admin/balance [get]
func (h *cashHandler) getTotalBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	total, err := h.cashService.GetTotalBalance(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute total balance")
		return
	}
	c.JSON(http.StatusOK, dto.TotalBalanceResponse{Total: total})
}
