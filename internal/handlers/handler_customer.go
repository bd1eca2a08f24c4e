package handlers

import (
	"net/http"

	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests for customers and their ledgers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers customer and ledger routes.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.GET("/:id/balance", h.getCustomerBalance)
		customers.GET("/:id/transactions", h.listCustomerTransactions)
		customers.POST("", middleware.RequireAdmin(), h.createCustomer)
		customers.PUT("/:id", middleware.RequireAdmin(), h.updateCustomer)
		customers.DELETE("/:id", middleware.RequireAdmin(), h.deleteCustomer)
		customers.POST("/:id/transactions", middleware.RequireAdmin(), h.createCustomerTransaction)
	}

	// Ledger entries addressed directly by their own ID.
	ledger := rg.Group("/customer-transactions", middleware.RequireAdmin())
	{
		ledger.PUT("/:id", h.updateCustomerTransaction)
		ledger.DELETE("/:id", h.deleteCustomerTransaction)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves customers ordered by name, balances included.
// @Tags customers
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponseSlice(customers))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// getCustomerBalance godoc
// @Summary Get a customer's balance
// @Description Computes the current balance: debts minus payments.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/balance [get]
func (h *customerHandler) getCustomerBalance(c *gin.Context) {
	balance, err := h.customerService.GetCustomerBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Updated fields"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Removes a customer and their ledger entries. Customers with receipts cannot be deleted.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Customer has receipts"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	lang := middleware.GetLangFromContext(c)

	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: i18n.T(lang, "customer_deleted")})
}

// listCustomerTransactions godoc
// @Summary List a customer's ledger entries
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.CustomerTransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/transactions [get]
func (h *customerHandler) listCustomerTransactions(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.customerService.ListCustomerTransactions(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerTransactionResponseSlice(txns))
}

// createCustomerTransaction godoc
// @Summary Post a ledger entry
// @Description Records a debt or payment on the customer's ledger.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param transaction body dto.CreateCustomerTransactionRequest true "Entry details"
// @Success 201 {object} dto.CustomerTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/transactions [post]
func (h *customerHandler) createCustomerTransaction(c *gin.Context) {
	var req dto.CreateCustomerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.customerService.CreateCustomerTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerTransactionResponse(txn))
}

// updateCustomerTransaction godoc
// @Summary Update a ledger entry
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateCustomerTransactionRequest true "Updated details"
// @Success 200 {object} dto.CustomerTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customer-transactions/{id} [put]
func (h *customerHandler) updateCustomerTransaction(c *gin.Context) {
	var req dto.UpdateCustomerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.customerService.UpdateCustomerTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerTransactionResponse(txn))
}

// deleteCustomerTransaction godoc
// @Summary Delete a ledger entry
// @Tags customers
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customer-transactions/{id} [delete]
func (h *customerHandler) deleteCustomerTransaction(c *gin.Context) {
	lang := middleware.GetLangFromContext(c)

	if err := h.customerService.DeleteCustomerTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: i18n.T(lang, "transaction_deleted")})
}
