package handlers

import (
	"net/http"

	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/i18n"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests for sales receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// RegisterReceiptRoutes registers the receipt routes.
func RegisterReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("", h.listReceipts)
		receipts.GET("/next-number", h.nextReceiptNo)
		receipts.GET("/:id", h.getReceipt)
		receipts.POST("", middleware.RequireAdmin(), h.createReceipt)
		receipts.DELETE("/:id", middleware.RequireAdmin(), h.deleteReceipt)
	}
}

// listReceipts godoc
// @Summary List receipts
// @Description Retrieves receipts newest first, optionally filtered by customer.
// @Tags receipts
// @Produce json
// @Param customer_id query string false "Customer ID filter"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponseSlice(receipts))
}

// nextReceiptNo godoc
// @Summary Preview the next receipt number
// @Description Returns the number the next posted receipt will get. Not a reservation.
// @Tags receipts
// @Produce json
// @Success 200 {object} dto.NextReceiptNoResponse
// @Security BearerAuth
// @Router /receipts/next-number [get]
func (h *receiptHandler) nextReceiptNo(c *gin.Context) {
	no, err := h.receiptService.PeekNextReceiptNo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NextReceiptNoResponse{ReceiptNo: no})
}

// getReceipt godoc
// @Summary Get a receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// createReceipt godoc
// @Summary Post a receipt
// @Description Posts a sales receipt: assigns the next number, computes totals server-side, and records the debt on the customer's ledger.
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown customer or product"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Description Removes a receipt and its items. The posted debt entry stays on the ledger.
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	lang := middleware.GetLangFromContext(c)

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: i18n.T(lang, "receipt_deleted")})
}
