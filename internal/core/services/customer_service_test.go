package services_test

import (
	"context"
	"testing"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/core/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository (full facade) ---
type MockCustomerRepository struct {
	MockCustomerReader
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveCustomerTransaction(ctx context.Context, txn domain.CustomerTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerTransactionByID(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error) {
	args := m.Called(ctx, transactionID)
	var t *domain.CustomerTransaction
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.CustomerTransaction)
	}
	return t, args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerTransactions(ctx context.Context, customerID string, limit, offset int) ([]domain.CustomerTransaction, error) {
	args := m.Called(ctx, customerID, limit, offset)
	var ts []domain.CustomerTransaction
	if args.Get(0) != nil {
		ts = args.Get(0).([]domain.CustomerTransaction)
	}
	return ts, args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomerTransaction(ctx context.Context, txn domain.CustomerTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomerTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Ayşe Hanım", Phone: "05551112233"}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.Phone == req.Phone && c.CustomerID != ""
	})).Return(nil).Once()

	created, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(created.Balance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{CustomerID: customerID, Name: "Ayşe Hanım", Phone: "0555", Notes: "eski not"}
	newPhone := "0212"

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		// Untouched fields keep their values.
		return c.Phone == newPhone && c.Name == "Ayşe Hanım" && c.Notes == "eski not"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, customerID, dto.UpdateCustomerRequest{Phone: &newPhone})

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_EmptyNameRejected() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{CustomerID: customerID, Name: "Ayşe Hanım"}
	empty := ""

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, customerID, dto.UpdateCustomerRequest{Name: &empty})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCustomer")
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_WithReceiptsConflict() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("DeleteCustomer", ctx, customerID).
		Return(apperrors.NewConflictError("customer has receipts and cannot be deleted")).Once()

	err := suite.service.DeleteCustomer(ctx, customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomerTransaction_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := &domain.Customer{CustomerID: customerID, Name: "Mehmet Usta"}
	req := dto.CreateCustomerTransactionRequest{
		Type:   "payment",
		Amount: decimal.RequireFromString("250.505"),
		Date:   "2026-08-30",
	}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	suite.mockRepo.On("SaveCustomerTransaction", ctx, mock.MatchedBy(func(t domain.CustomerTransaction) bool {
		// Amounts are stored rounded to 2dp.
		return t.CustomerID == customerID &&
			t.Type == domain.Payment &&
			t.Amount.Equal(decimal.RequireFromString("250.50"))
	})).Return(nil).Once()

	txn, err := suite.service.CreateCustomerTransaction(ctx, customerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomerTransaction_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateCustomerTransaction(ctx, customerID, dto.CreateCustomerTransactionRequest{
		Type:   "debt",
		Amount: decimal.RequireFromString("10"),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomerTransaction")
}

func (suite *CustomerServiceTestSuite) TestCreateCustomerTransaction_NegativeAmountRejected() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := &domain.Customer{CustomerID: customerID}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()

	txn, err := suite.service.CreateCustomerTransaction(ctx, customerID, dto.CreateCustomerTransactionRequest{
		Type:   "debt",
		Amount: decimal.RequireFromString("-5"),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomerTransaction")
}

func (suite *CustomerServiceTestSuite) TestGetCustomerBalance() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("GetCustomerBalance", ctx, customerID).
		Return(decimal.RequireFromString("142.50"), nil).Once()

	balance, err := suite.service.GetCustomerBalance(ctx, customerID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("142.50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
