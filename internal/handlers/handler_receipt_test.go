package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/handlers"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/defterpro/defter_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) ([]domain.Receipt, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) PeekNextReceiptNo(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockReceiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

// --- Test Suite ---
type ReceiptHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockReceiptService *MockReceiptService
	jwtSecret          string
}

func (suite *ReceiptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReceiptService = new(MockReceiptService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReceiptRoutes(v1, suite.mockReceiptService)
}

func (suite *ReceiptHandlerTestSuite) generateTestToken(role domain.UserRole) string {
	token, err := utils.GenerateJWT(uuid.NewString(), string(role), suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *ReceiptHandlerTestSuite) doRequest(method, path string, body []byte, role domain.UserRole) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(role))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_Success() {
	customerID := uuid.NewString()
	productID := uuid.NewString()
	reqBody := dto.CreateReceiptRequest{
		CustomerID: customerID,
		Date:       "2026-08-30",
		TaxRate:    decimal.Zero,
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(10)},
		},
	}
	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)

	saved := &domain.Receipt{
		ReceiptID:    uuid.NewString(),
		CustomerID:   customerID,
		CustomerName: "Mehmet Usta",
		ReceiptNo:    "F001",
		GrandTotal:   decimal.RequireFromString("50.00"),
		Date:         time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
	suite.mockReceiptService.On("CreateReceipt", mock.Anything, mock.MatchedBy(func(r dto.CreateReceiptRequest) bool {
		return r.CustomerID == customerID && len(r.Items) == 1
	})).Return(saved, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/receipts", body, domain.RoleAdmin)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("F001", resp.ReceiptNo)
	suite.Equal("Mehmet Usta", resp.CustomerName)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_ObserverForbidden() {
	body := []byte(`{"customer_id":"x","date":"2026-08-30","items":[{"product_id":"y","quantity":1}]}`)

	w := suite.doRequest(http.MethodPost, "/api/v1/receipts", body, domain.RoleObserver)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockReceiptService.AssertNotCalled(suite.T(), "CreateReceipt")
}

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_MissingItemsRejected() {
	body := []byte(`{"customer_id":"x","date":"2026-08-30","items":[]}`)

	w := suite.doRequest(http.MethodPost, "/api/v1/receipts", body, domain.RoleAdmin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReceiptService.AssertNotCalled(suite.T(), "CreateReceipt")
}

func (suite *ReceiptHandlerTestSuite) TestCreateReceipt_UnknownCustomer() {
	reqBody := dto.CreateReceiptRequest{
		CustomerID: uuid.NewString(),
		Date:       "2026-08-30",
		Items: []dto.CreateReceiptItemRequest{
			{ProductID: uuid.NewString(), Quantity: decimal.NewFromInt(1)},
		},
	}
	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)

	suite.mockReceiptService.On("CreateReceipt", mock.Anything, mock.AnythingOfType("dto.CreateReceiptRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/receipts", body, domain.RoleAdmin)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestListReceipts_ObserverAllowed() {
	suite.mockReceiptService.On("ListReceipts", mock.Anything, mock.AnythingOfType("dto.ListReceiptsParams")).
		Return([]domain.Receipt{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/receipts", nil, domain.RoleObserver)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestNextReceiptNo() {
	suite.mockReceiptService.On("PeekNextReceiptNo", mock.Anything).Return("F007", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/receipts/next-number", nil, domain.RoleObserver)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextReceiptNoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("F007", resp.ReceiptNo)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestDeleteReceipt_AdminOnly() {
	receiptID := uuid.NewString()

	suite.mockReceiptService.On("DeleteReceipt", mock.Anything, receiptID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/receipts/"+receiptID, nil, domain.RoleAdmin)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doRequest(http.MethodDelete, "/api/v1/receipts/"+receiptID, nil, domain.RoleObserver)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestMissingToken() {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/receipts", nil)
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestReceiptHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}
