package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthbridge/internal/model"
	"healthbridge/internal/service"
)

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, medicineID uint, quantity int) (*model.CartItem, error) {
	args := m.Called(ctx, sessionID, medicineID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (*service.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Cart), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, sessionID string, itemID uint, quantity int) (*model.CartItem, error) {
	args := m.Called(ctx, sessionID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, itemID uint) error {
	args := m.Called(ctx, sessionID, itemID)
	return args.Error(0)
}

func (m *MockCartService) ClearCart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCartService) CountItems(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(method, path, body, session string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCartHandler_Add(t *testing.T) {
	mockSvc := new(MockCartService)
	mockSvc.On("AddItem", mock.Anything, "sess-1", uint(7), 2).
		Return(&model.CartItem{ID: 1, SessionID: "sess-1", MedicineID: 7, Quantity: 2}, nil)

	h := NewCartHandler(mockSvc)
	c, rec := newTestContext(http.MethodPost, "/api/cart/items", `{"medicine_id":7,"quantity":2}`, "sess-1")

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-1", rec.Header().Get(SessionHeader))

	var item model.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, 2, item.Quantity)
	mockSvc.AssertExpectations(t)
}

func TestCartHandler_Add_ValidationRejectsZeroQuantity(t *testing.T) {
	mockSvc := new(MockCartService)
	h := NewCartHandler(mockSvc)
	c, _ := newTestContext(http.MethodPost, "/api/cart/items", `{"medicine_id":7,"quantity":0}`, "sess-1")

	err := h.Add(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockSvc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_MintsSessionWhenMissing(t *testing.T) {
	mockSvc := new(MockCartService)
	mockSvc.On("GetCart", mock.Anything, mock.AnythingOfType("string")).
		Return(&service.Cart{Lines: []service.CartLine{}}, nil)

	h := NewCartHandler(mockSvc)
	c, rec := newTestContext(http.MethodGet, "/api/cart", "", "")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// a generated id is echoed back for the client to persist
	assert.NotEmpty(t, rec.Header().Get(SessionHeader))
}
