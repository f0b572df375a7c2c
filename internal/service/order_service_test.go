package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"healthbridge/internal/errors"
	"healthbridge/internal/model"
)

func newOrderServiceForTest(orders *MockOrderRepository, medicines *MockMedicineRepository, archiver *MockArchiver, publisher *MockPublisher) OrderService {
	return NewOrderService(
		orders,
		medicines,
		new(MockDiseaseRepository),
		new(MockUserRepository),
		archiver,
		publisher,
		zerolog.Nop(),
	)
}

func TestOrderService_Checkout(t *testing.T) {
	paracetamol := &model.Medicine{ID: 1, Name: "Paracetamol 500mg", Price: decimal.NewFromInt(8000)}
	oralit := &model.Medicine{ID: 2, Name: "Oralit Sachet", Price: decimal.NewFromInt(3000)}

	input := CheckoutInput{
		SessionID:    "sess-1",
		CustomerName: "Budi Santoso",
		Phone:        "081234567890",
		Address:      "Jl. Merdeka 1, Jakarta",
	}

	t.Run("empty cart writes nothing", func(t *testing.T) {
		mockCarts := new(MockCartRepository)
		mockOrders := &MockOrderRepository{Carts: mockCarts}
		mockMedicines := new(MockMedicineRepository)
		archiver := new(MockArchiver)
		publisher := new(MockPublisher)

		mockOrders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockCarts.On("FindBySessionForUpdate", mock.Anything, "sess-1").Return([]model.CartItem{}, nil)

		svc := newOrderServiceForTest(mockOrders, mockMedicines, archiver, publisher)
		order, err := svc.Checkout(context.Background(), input)

		assert.ErrorIs(t, err, errors.ErrEmptyCart)
		assert.Nil(t, order)
		mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockCarts.AssertNotCalled(t, "DeleteBySession", mock.Anything, mock.Anything)
		archiver.AssertNotCalled(t, "ArchiveOrder", mock.Anything, mock.Anything)
	})

	t.Run("snapshot totals and atomic clear", func(t *testing.T) {
		mockCarts := new(MockCartRepository)
		mockOrders := &MockOrderRepository{Carts: mockCarts}
		mockMedicines := new(MockMedicineRepository)
		archiver := new(MockArchiver)
		publisher := new(MockPublisher)

		mockOrders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockCarts.On("FindBySessionForUpdate", mock.Anything, "sess-1").Return([]model.CartItem{
			{ID: 10, SessionID: "sess-1", MedicineID: 1, Quantity: 2},
			{ID: 11, SessionID: "sess-1", MedicineID: 2, Quantity: 3},
		}, nil)
		mockMedicines.On("FindByID", mock.Anything, uint(1)).Return(paracetamol, nil)
		mockMedicines.On("FindByID", mock.Anything, uint(2)).Return(oralit, nil)
		mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		mockCarts.On("DeleteBySession", mock.Anything, "sess-1").Return(nil)
		archiver.On("ArchiveOrder", mock.Anything, mock.Anything).Return(nil)
		publisher.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(nil)

		svc := newOrderServiceForTest(mockOrders, mockMedicines, archiver, publisher)
		order, err := svc.Checkout(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(25000)), "got total %s", order.TotalPrice)

		var snapshot []model.OrderItem
		assert.NoError(t, json.Unmarshal([]byte(order.Items), &snapshot))
		assert.Len(t, snapshot, 2)
		assert.Equal(t, "Paracetamol 500mg", snapshot[0].Name)
		assert.True(t, snapshot[0].Subtotal.Equal(decimal.NewFromInt(16000)))
		assert.True(t, snapshot[1].Subtotal.Equal(decimal.NewFromInt(9000)))

		mockOrders.AssertExpectations(t)
		mockCarts.AssertExpectations(t)
		archiver.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("deleted medicines skipped, all gone means empty", func(t *testing.T) {
		mockCarts := new(MockCartRepository)
		mockOrders := &MockOrderRepository{Carts: mockCarts}
		mockMedicines := new(MockMedicineRepository)
		archiver := new(MockArchiver)
		publisher := new(MockPublisher)

		mockOrders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockCarts.On("FindBySessionForUpdate", mock.Anything, "sess-1").Return([]model.CartItem{
			{ID: 10, SessionID: "sess-1", MedicineID: 9, Quantity: 2},
		}, nil)
		mockMedicines.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := newOrderServiceForTest(mockOrders, mockMedicines, archiver, publisher)
		order, err := svc.Checkout(context.Background(), input)

		assert.ErrorIs(t, err, errors.ErrEmptyCart)
		assert.Nil(t, order)
	})

	t.Run("cart clear failure aborts the checkout", func(t *testing.T) {
		mockCarts := new(MockCartRepository)
		mockOrders := &MockOrderRepository{Carts: mockCarts}
		mockMedicines := new(MockMedicineRepository)
		archiver := new(MockArchiver)
		publisher := new(MockPublisher)

		mockOrders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockCarts.On("FindBySessionForUpdate", mock.Anything, "sess-1").Return([]model.CartItem{
			{ID: 10, SessionID: "sess-1", MedicineID: 1, Quantity: 2},
		}, nil)
		mockMedicines.On("FindByID", mock.Anything, uint(1)).Return(paracetamol, nil)
		mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		mockCarts.On("DeleteBySession", mock.Anything, "sess-1").Return(assert.AnError)

		svc := newOrderServiceForTest(mockOrders, mockMedicines, archiver, publisher)
		order, err := svc.Checkout(context.Background(), input)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, order)
		archiver.AssertNotCalled(t, "ArchiveOrder", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})

	t.Run("archive failure does not fail the order", func(t *testing.T) {
		mockCarts := new(MockCartRepository)
		mockOrders := &MockOrderRepository{Carts: mockCarts}
		mockMedicines := new(MockMedicineRepository)
		archiver := new(MockArchiver)
		publisher := new(MockPublisher)

		mockOrders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockCarts.On("FindBySessionForUpdate", mock.Anything, "sess-1").Return([]model.CartItem{
			{ID: 10, SessionID: "sess-1", MedicineID: 1, Quantity: 1},
		}, nil)
		mockMedicines.On("FindByID", mock.Anything, uint(1)).Return(paracetamol, nil)
		mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
		mockCarts.On("DeleteBySession", mock.Anything, "sess-1").Return(nil)
		archiver.On("ArchiveOrder", mock.Anything, mock.Anything).Return(assert.AnError)
		publisher.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(assert.AnError)

		svc := newOrderServiceForTest(mockOrders, mockMedicines, archiver, publisher)
		order, err := svc.Checkout(context.Background(), input)

		assert.NoError(t, err)
		assert.NotNil(t, order)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := &MockOrderRepository{Carts: mockCarts}

	mockOrders.On("FindByID", mock.Anything, uint(5)).
		Return(&model.Order{ID: 5, Status: model.OrderStatusPending}, nil)
	mockOrders.On("UpdateStatus", mock.Anything, uint(5), "shipped").Return(nil)

	svc := newOrderServiceForTest(mockOrders, new(MockMedicineRepository), new(MockArchiver), new(MockPublisher))
	order, err := svc.UpdateOrderStatus(context.Background(), 5, "shipped")

	assert.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_Dashboard(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := &MockOrderRepository{Carts: mockCarts}
	mockMedicines := new(MockMedicineRepository)
	mockDiseases := new(MockDiseaseRepository)
	mockUsers := new(MockUserRepository)

	mockOrders.On("Count", mock.Anything).Return(int64(12), nil)
	mockOrders.On("CountByStatus", mock.Anything, model.OrderStatusPending).Return(int64(4), nil)
	mockOrders.On("SumTotals", mock.Anything).Return(decimal.NewFromInt(250000), nil)
	mockMedicines.On("Count", mock.Anything).Return(int64(30), nil)
	mockDiseases.On("Count", mock.Anything).Return(int64(27), nil)
	mockUsers.On("Count", mock.Anything).Return(int64(3), nil)
	mockOrders.On("ListRecent", mock.Anything, 5).Return([]model.Order{{ID: 12}}, nil)

	svc := NewOrderService(mockOrders, mockMedicines, mockDiseases, mockUsers, new(MockArchiver), new(MockPublisher), zerolog.Nop())
	stats, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, int64(4), stats.PendingOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(250000)))
	assert.Len(t, stats.RecentOrders, 1)
}
