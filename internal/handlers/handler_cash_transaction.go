package handlers

import (
	"net/http"

	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashTransactionHandler handles HTTP requests for the cash book.
type cashTransactionHandler struct {
	cashService portssvc.CashTransactionSvcFacade
}

func newCashTransactionHandler(cs portssvc.CashTransactionSvcFacade) *cashTransactionHandler {
	return &cashTransactionHandler{cashService: cs}
}

// registerCashTransactionRoutes registers the cash book routes. Reads are
// open to any authenticated user, writes to admins only.
func registerCashTransactionRoutes(rg *gin.RouterGroup, cashService portssvc.CashTransactionSvcFacade) {
	h := newCashTransactionHandler(cashService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.POST("", middleware.RequireAdmin(), h.createTransaction)
		txns.PUT("/:id", middleware.RequireAdmin(), h.updateTransaction)
		txns.DELETE("/:id", middleware.RequireAdmin(), h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List cash transactions
// @Description Retrieves cash book entries newest first, optionally filtered by type and date range.
// @Tags transactions
// @Produce json
// @Param type query string false "income or expense"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.CashTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *cashTransactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListCashTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.cashService.ListCashTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashTransactionResponseSlice(txns))
}

// getTransaction godoc
// @Summary Get a cash transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.CashTransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *cashTransactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.cashService.GetCashTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashTransactionResponse(txn))
}

// createTransaction godoc
// @Summary Record a cash transaction
// @Description Records an income or expense entry in the cash book.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateCashTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CashTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *cashTransactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.cashService.CreateCashTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a cash transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateCashTransactionRequest true "Updated details"
// @Success 200 {object} dto.CashTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *cashTransactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.cashService.UpdateCashTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a cash transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *cashTransactionHandler) deleteTransaction(c *gin.Context) {
	lang := middleware.GetLangFromContext(c)

	if err := h.cashService.DeleteCashTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: i18n.T(lang, "transaction_deleted")})
}
