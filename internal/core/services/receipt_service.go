package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/google/uuid"
)

// ReceiptService handles posting and reading sales receipts.
type ReceiptService struct {
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	customerRepo portsrepo.CustomerReader
	productRepo  portsrepo.ProductReader
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, customerRepo portsrepo.CustomerReader, productRepo portsrepo.ProductReader) portssvc.ReceiptSvcFacade {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Ensure ReceiptService implements the facade
var _ portssvc.ReceiptSvcFacade = (*ReceiptService)(nil)

// CreateReceipt validates the payload, prices the lines, computes the
// totals, and posts the receipt together with its customer debt entry.
func (s *ReceiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: receipt needs at least one item", apperrors.ErrValidation)
	}
	if req.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate cannot be negative", apperrors.ErrValidation)
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("customer %s: %w", req.CustomerID, apperrors.ErrNotFound)
		}
		return nil, err
	}

	receiptID := uuid.NewString()
	items := make([]domain.ReceiptItem, len(req.Items))
	for i, line := range req.Items {
		if line.Quantity.IsNegative() || line.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: item quantity must be positive", apperrors.ErrValidation)
		}

		product, err := s.productRepo.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("product %s: %w", line.ProductID, apperrors.ErrNotFound)
			}
			return nil, err
		}

		unitPrice := product.UnitPrice
		if line.UnitPrice != nil {
			if line.UnitPrice.IsNegative() {
				return nil, fmt.Errorf("%w: item unit price cannot be negative", apperrors.ErrValidation)
			}
			unitPrice = line.UnitPrice.Round(2)
		}

		items[i] = domain.ReceiptItem{
			ReceiptItemID: uuid.NewString(),
			ReceiptID:     receiptID,
			ProductID:     product.ProductID,
			ProductName:   product.Name,
			ProductUnit:   product.Unit,
			Quantity:      line.Quantity,
			UnitPrice:     unitPrice,
		}
	}

	subtotal, taxAmount, grandTotal := domain.ComputeReceiptTotals(items, req.TaxRate)

	receipt := domain.Receipt{
		ReceiptID:    receiptID,
		CustomerID:   customer.CustomerID,
		CustomerName: customer.Name,
		TotalAmount:  subtotal,
		TaxRate:      req.TaxRate,
		TaxAmount:    taxAmount,
		GrandTotal:   grandTotal,
		Notes:        req.Notes,
		Date:         date,
		CreatedAt:    time.Now(),
		Items:        items,
	}

	saved, err := s.receiptRepo.SaveReceipt(ctx, receipt, func(receiptNo string) string {
		return domain.ReceiptDebtDescription(receiptNo, req.Notes)
	})
	if err != nil {
		logger.Error("Failed to post receipt", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	logger.Info("Receipt posted",
		slog.String("receipt_id", saved.ReceiptID),
		slog.String("receipt_no", saved.ReceiptNo),
		slog.String("grand_total", saved.GrandTotal.String()),
	)
	return saved, nil
}

func (s *ReceiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, receiptID)
}

func (s *ReceiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) ([]domain.Receipt, error) {
	var customerID *string
	if params.CustomerID != "" {
		customerID = &params.CustomerID
	}
	return s.receiptRepo.FindReceipts(ctx, customerID, params.Limit, params.Offset)
}

func (s *ReceiptService) PeekNextReceiptNo(ctx context.Context) (string, error) {
	return s.receiptRepo.PeekNextReceiptNo(ctx)
}

// DeleteReceipt removes a receipt and its line items. The debt entry posted
// at creation time stays on the customer's ledger.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		return err
	}
	logger.Info("Receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}
