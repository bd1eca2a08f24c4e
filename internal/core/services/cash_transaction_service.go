package services

import (
	"context"
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
	"github.com/shopspring/decimal"
)

// CashTransactionService handles the cash book business logic.
type CashTransactionService struct {
	cashRepo portsrepo.CashTransactionRepositoryFacade
}

// NewCashTransactionService creates a new CashTransactionService.
func NewCashTransactionService(cashRepo portsrepo.CashTransactionRepositoryFacade) portssvc.CashTransactionSvcFacade {
	return &CashTransactionService{cashRepo: cashRepo}
}

// Ensure CashTransactionService implements the facade
var _ portssvc.CashTransactionSvcFacade = (*CashTransactionService)(nil)

// parseBusinessDate parses a YYYY-MM-DD value, defaulting to today when empty.
func parseBusinessDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return d, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() || amount.IsZero() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (s *CashTransactionService) CreateCashTransaction(ctx context.Context, req dto.CreateCashTransactionRequest) (*domain.CashTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txnType := domain.CashTransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %s", apperrors.ErrValidation, req.Type)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := parseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.CashTransaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		Amount:        req.Amount.Round(2),
		Description:   req.Description,
		Date:          date,
		Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.cashRepo.SaveCashTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save cash transaction", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Cash transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txnType)))
	return &txn, nil
}

func (s *CashTransactionService) GetCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error) {
	return s.cashRepo.FindCashTransactionByID(ctx, transactionID)
}

func (s *CashTransactionService) ListCashTransactions(ctx context.Context, params dto.ListCashTransactionsParams) ([]domain.CashTransaction, error) {
	var txnType *domain.CashTransactionType
	if params.Type != "" {
		t := domain.CashTransactionType(params.Type)
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction type %s", apperrors.ErrValidation, params.Type)
		}
		txnType = &t
	}

	var from, to *time.Time
	if params.From != "" {
		d, err := time.Parse(domain.DateLayout, params.From)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, params.From)
		}
		from = &d
	}
	if params.To != "" {
		d, err := time.Parse(domain.DateLayout, params.To)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, params.To)
		}
		to = &d
	}

	return s.cashRepo.FindCashTransactions(ctx, txnType, from, to, params.Limit, params.Offset)
}

func (s *CashTransactionService) UpdateCashTransaction(ctx context.Context, transactionID string, req dto.UpdateCashTransactionRequest) (*domain.CashTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.cashRepo.FindCashTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txnType := domain.CashTransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %s", apperrors.ErrValidation, req.Type)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := parseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}

	txn.Type = txnType
	txn.Amount = req.Amount.Round(2)
	txn.Description = req.Description
	txn.Date = date
	txn.UpdatedAt = time.Now()

	if err := s.cashRepo.UpdateCashTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update cash transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *CashTransactionService) DeleteCashTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.cashRepo.DeleteCashTransaction(ctx, transactionID); err != nil {
		return err
	}
	logger.Info("Cash transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
