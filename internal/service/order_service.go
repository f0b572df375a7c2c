package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"healthbridge/internal/backup"
	"healthbridge/internal/errors"
	"healthbridge/internal/events"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
)

// CheckoutInput carries the customer fields of a checkout request.
type CheckoutInput struct {
	SessionID    string
	CustomerName string
	Phone        string
	Address      string
}

// DashboardStats summarizes the store for the admin dashboard.
type DashboardStats struct {
	TotalOrders    int64           `json:"total_orders"`
	PendingOrders  int64           `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalMedicines int64           `json:"total_medicines"`
	TotalDiseases  int64           `json:"total_diseases"`
	TotalUsers     int64           `json:"total_users"`
	RecentOrders   []model.Order   `json:"recent_orders"`
}

// OrderService handles checkout, order lookups, and the admin dashboard.
type OrderService interface {
	Checkout(ctx context.Context, input CheckoutInput) (*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrdersByPhone(ctx context.Context, phone string) ([]model.Order, error)
	ListAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*model.Order, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type orderService struct {
	orders    repository.OrderRepository
	medicines repository.MedicineRepository
	diseases  repository.DiseaseRepository
	users     repository.UserRepository
	archiver  backup.Archiver
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepository,
	medicines repository.MedicineRepository,
	diseases repository.DiseaseRepository,
	users repository.UserRepository,
	archiver backup.Archiver,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orders:    orders,
		medicines: medicines,
		diseases:  diseases,
		users:     users,
		archiver:  archiver,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout converts the session's cart into an order. The cart read, the
// order insert, and the cart clear run in one transaction with the cart rows
// locked, so a concurrent add can never be half-billed or half-cleared.
// Archiving and event publishing run after commit and are best-effort.
func (s *orderService) Checkout(ctx context.Context, input CheckoutInput) (*model.Order, error) {
	var order *model.Order
	var snapshot []model.OrderItem

	err := s.orders.WithTransaction(ctx, func(ctx context.Context, orders repository.OrderRepository, carts repository.CartRepository) error {
		items, err := carts.FindBySessionForUpdate(ctx, input.SessionID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errors.ErrEmptyCart
		}

		total := decimal.Zero
		snapshot = make([]model.OrderItem, 0, len(items))
		for _, item := range items {
			medicine, err := s.medicines.FindByID(ctx, item.MedicineID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					// medicine deleted since it was carted; skip the line
					continue
				}
				return err
			}
			subtotal := medicine.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			snapshot = append(snapshot, model.OrderItem{
				MedicineID: medicine.ID,
				Name:       medicine.Name,
				Price:      medicine.Price,
				Quantity:   item.Quantity,
				Subtotal:   subtotal,
			})
			total = total.Add(subtotal)
		}
		if len(snapshot) == 0 {
			return errors.ErrEmptyCart
		}

		itemsJSON, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}

		order = &model.Order{
			CustomerName: input.CustomerName,
			Phone:        input.Phone,
			Address:      input.Address,
			Items:        string(itemsJSON),
			TotalPrice:   total,
			Status:       model.OrderStatusPending,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}

		return carts.DeleteBySession(ctx, input.SessionID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.archiver.ArchiveOrder(order, snapshot); err != nil {
		s.logger.Warn().Err(err).Uint("order_id", order.ID).Msg("order archive failed")
	}
	if s.publisher != nil {
		event := events.OrderCreated{
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			Phone:        order.Phone,
			TotalPrice:   order.TotalPrice,
			CreatedAt:    order.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			s.logger.Warn().Err(err).Uint("order_id", order.ID).Msg("order event publish failed")
		}
	}

	return order, nil
}

// GetOrder retrieves an order by ID.
func (s *orderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrdersByPhone returns a customer's order history, newest first.
func (s *orderService) ListOrdersByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	return s.orders.ListByPhone(ctx, phone)
}

// ListAllOrders returns every order, newest first.
func (s *orderService) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateOrderStatus sets an order's status and returns the updated order.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Dashboard aggregates store counters and the five most recent orders.
func (s *orderService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.orders.CountByStatus(ctx, model.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.orders.SumTotals(ctx); err != nil {
		return nil, err
	}
	if stats.TotalMedicines, err = s.medicines.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDiseases, err = s.diseases.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RecentOrders, err = s.orders.ListRecent(ctx, 5); err != nil {
		return nil, err
	}
	return stats, nil
}
