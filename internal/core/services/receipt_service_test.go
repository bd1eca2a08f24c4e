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

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt, debtDescription func(receiptNo string) string) (*domain.Receipt, error) {
	args := m.Called(ctx, receipt, debtDescription)
	var saved *domain.Receipt
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Receipt)
	}
	return saved, args.Error(1)
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	var r *domain.Receipt
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Receipt)
	}
	return r, args.Error(1)
}

func (m *MockReceiptRepository) FindReceipts(ctx context.Context, customerID *string, limit, offset int) ([]domain.Receipt, error) {
	args := m.Called(ctx, customerID, limit, offset)
	var rs []domain.Receipt
	if args.Get(0) != nil {
		rs = args.Get(0).([]domain.Receipt)
	}
	return rs, args.Error(1)
}

func (m *MockReceiptRepository) PeekNextReceiptNo(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

// --- Mock CustomerReader ---
type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var c *domain.Customer
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Customer)
	}
	return c, args.Error(1)
}

func (m *MockCustomerReader) FindCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	var cs []domain.Customer
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Customer)
	}
	return cs, args.Error(1)
}

func (m *MockCustomerReader) GetCustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ProductReader ---
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var p *domain.Product
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Product)
	}
	return p, args.Error(1)
}

func (m *MockProductReader) FindProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	var ps []domain.Product
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.Product)
	}
	return ps, args.Error(1)
}

// --- Test Suite ---
type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo  *MockReceiptRepository
	mockCustomerRepo *MockCustomerReader
	mockProductRepo  *MockProductReader
	service          portssvc.ReceiptSvcFacade

	customer *domain.Customer
	productA *domain.Product
	productB *domain.Product
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockCustomerRepo = new(MockCustomerReader)
	suite.mockProductRepo = new(MockProductReader)
	suite.service = services.NewReceiptService(suite.mockReceiptRepo, suite.mockCustomerRepo, suite.mockProductRepo)

	suite.customer = &domain.Customer{CustomerID: uuid.NewString(), Name: "Mehmet Usta"}
	suite.productA = &domain.Product{ProductID: uuid.NewString(), Name: "Çimento", Unit: "torba", UnitPrice: dec("5.00")}
	suite.productB = &domain.Product{ProductID: uuid.NewString(), Name: "Kum", Unit: "ton", UnitPrice: dec("15.00")}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- CreateReceipt Tests ---

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_TotalsComputedFromItems() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "2026-08-30",
		TaxRate:    decimal.Zero,
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: suite.productA.ProductID, Quantity: dec("10")},
			{ProductID: suite.productB.ProductID, Quantity: dec("5")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productA.ProductID).Return(suite.productA, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productB.ProductID).Return(suite.productB, nil).Once()
	suite.mockReceiptRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.TotalAmount.Equal(dec("125.00")) &&
			r.TaxAmount.IsZero() &&
			r.GrandTotal.Equal(dec("125.00")) &&
			r.CustomerName == "Mehmet Usta" &&
			len(r.Items) == 2 &&
			r.Items[0].TotalPrice.Equal(dec("50.00")) &&
			r.Items[1].TotalPrice.Equal(dec("75.00"))
	}), mock.AnythingOfType("func(string) string")).
		Return(&domain.Receipt{ReceiptNo: "F001", GrandTotal: dec("125.00")}, nil).Once()

	saved, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("F001", saved.ReceiptNo)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_TaxApplied() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "2026-08-30",
		TaxRate:    dec("18"),
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: suite.productA.ProductID, Quantity: dec("20")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productA.ProductID).Return(suite.productA, nil).Once()
	suite.mockReceiptRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		// 20 × 5.00 = 100.00, tax 18% = 18.00, grand 118.00
		return r.TotalAmount.Equal(dec("100.00")) &&
			r.TaxAmount.Equal(dec("18.00")) &&
			r.GrandTotal.Equal(dec("118.00"))
	}), mock.AnythingOfType("func(string) string")).
		Return(&domain.Receipt{ReceiptNo: "F002"}, nil).Once()

	_, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_OverriddenUnitPrice() {
	ctx := context.Background()
	custom := dec("4.50")
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "2026-08-30",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: suite.productA.ProductID, Quantity: dec("2"), UnitPrice: &custom},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productA.ProductID).Return(suite.productA, nil).Once()
	suite.mockReceiptRepo.On("SaveReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.Items[0].UnitPrice.Equal(dec("4.50")) && r.GrandTotal.Equal(dec("9.00"))
	}), mock.AnythingOfType("func(string) string")).
		Return(&domain.Receipt{ReceiptNo: "F003"}, nil).Once()

	_, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnknownCustomer() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		CustomerID: uuid.NewString(),
		Date:       "2026-08-30",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: suite.productA.ProductID, Quantity: dec("1")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(nil, apperrors.ErrNotFound).Once()

	saved, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveReceipt")
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnknownProduct() {
	ctx := context.Background()
	ghostProduct := uuid.NewString()
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "2026-08-30",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: ghostProduct, Quantity: dec("1")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, ghostProduct).Return(nil, apperrors.ErrNotFound).Once()

	saved, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveReceipt")
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_EmptyItemsRejected() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "2026-08-30",
	}

	saved, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_BadDateRejected() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "30-08-2026",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: suite.productA.ProductID, Quantity: dec("1")},
		},
	}

	saved, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_ZeroQuantityRejected() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       "2026-08-30",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: suite.productA.ProductID, Quantity: decimal.Zero},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()

	saved, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveReceipt")
}

// --- Other operations ---

func (suite *ReceiptServiceTestSuite) TestPeekNextReceiptNo() {
	ctx := context.Background()

	suite.mockReceiptRepo.On("PeekNextReceiptNo", ctx).Return("F042", nil).Once()

	no, err := suite.service.PeekNextReceiptNo(ctx)

	suite.Require().NoError(err)
	suite.Equal("F042", no)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_CustomerFilter() {
	ctx := context.Background()
	customerID := suite.customer.CustomerID

	suite.mockReceiptRepo.On("FindReceipts", ctx, &customerID, 10, 0).Return([]domain.Receipt{}, nil).Once()

	_, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{CustomerID: customerID, Limit: 10})

	suite.Require().NoError(err)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestDeleteReceipt_NotFound() {
	ctx := context.Background()
	receiptID := uuid.NewString()

	suite.mockReceiptRepo.On("DeleteReceipt", ctx, receiptID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteReceipt(ctx, receiptID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
