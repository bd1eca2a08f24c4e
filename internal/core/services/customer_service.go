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

// CustomerService handles customer accounts and their debt/payment ledgers.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &CustomerService{customerRepo: customerRepo}
}

// Ensure CustomerService implements the facade
var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Notes:      req.Notes,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		Balance:    decimal.Zero,
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *CustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	return s.customerRepo.FindCustomers(ctx, limit, offset)
}

func (s *CustomerService) GetCustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return s.customerRepo.GetCustomerBalance(ctx, customerID)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.UpdatedAt = time.Now()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return err
	}
	logger.Info("Customer deleted", slog.String("customer_id", customerID))
	return nil
}

func (s *CustomerService) CreateCustomerTransaction(ctx context.Context, customerID string, req dto.CreateCustomerTransactionRequest) (*domain.CustomerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Reject unknown customers up front rather than relying on the FK.
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	txnType := domain.CustomerTransactionType(req.Type)
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

	txn := domain.CustomerTransaction{
		TransactionID: uuid.NewString(),
		CustomerID:    customerID,
		Type:          txnType,
		Amount:        req.Amount.Round(2),
		Description:   req.Description,
		Date:          date,
		CreatedAt:     time.Now(),
	}

	if err := s.customerRepo.SaveCustomerTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save customer transaction", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, err
	}

	logger.Info("Customer transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txnType)))
	return &txn, nil
}

func (s *CustomerService) ListCustomerTransactions(ctx context.Context, customerID string, limit, offset int) ([]domain.CustomerTransaction, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.customerRepo.FindCustomerTransactions(ctx, customerID, limit, offset)
}

func (s *CustomerService) UpdateCustomerTransaction(ctx context.Context, transactionID string, req dto.UpdateCustomerTransactionRequest) (*domain.CustomerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.customerRepo.FindCustomerTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txnType := domain.CustomerTransactionType(req.Type)
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

	if err := s.customerRepo.UpdateCustomerTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update customer transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *CustomerService) DeleteCustomerTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.customerRepo.DeleteCustomerTransaction(ctx, transactionID); err != nil {
		return err
	}
	logger.Info("Customer transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
