package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"healthbridge/internal/errors"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
)

// CartLine is one cart row joined with its current medicine data.
type CartLine struct {
	ItemID   uint            `json:"item_id"`
	Medicine model.Medicine  `json:"medicine"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Cart is the session's cart rendered for the client.
type Cart struct {
	SessionID string          `json:"session_id"`
	Lines     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Count     int             `json:"count"`
}

// CartService manages per-session shopping carts.
type CartService interface {
	AddItem(ctx context.Context, sessionID string, medicineID uint, quantity int) (*model.CartItem, error)
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
	UpdateItem(ctx context.Context, sessionID string, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, sessionID string, itemID uint) error
	ClearCart(ctx context.Context, sessionID string) error
	CountItems(ctx context.Context, sessionID string) (int64, error)
}

type cartService struct {
	carts     repository.CartRepository
	medicines repository.MedicineRepository
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, medicines repository.MedicineRepository) CartService {
	return &cartService{carts: carts, medicines: medicines}
}

// AddItem adds a medicine to the session's cart. Adding a medicine already
// in the cart increments its quantity under a row lock, so concurrent adds
// for the same pair both land.
func (s *cartService) AddItem(ctx context.Context, sessionID string, medicineID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, errors.ErrInvalidQuantity
	}

	if _, err := s.medicines.FindByID(ctx, medicineID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMedicineNotFound
		}
		return nil, err
	}

	var result *model.CartItem
	err := s.carts.WithTransaction(ctx, func(ctx context.Context, txRepo repository.CartRepository) error {
		existing, err := txRepo.FindPairForUpdate(ctx, sessionID, medicineID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		if existing != nil {
			existing.Quantity += quantity
			if err := txRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
				return err
			}
			result = existing
			return nil
		}

		item := &model.CartItem{
			SessionID:  sessionID,
			MedicineID: medicineID,
			Quantity:   quantity,
		}
		if err := txRepo.Create(ctx, item); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetCart returns the session's cart joined with medicine data. Rows whose
// medicine has been deleted from the catalog are dropped silently.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	items, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{
		SessionID: sessionID,
		Lines:     make([]CartLine, 0, len(items)),
		Total:     decimal.Zero,
	}
	for _, item := range items {
		medicine, err := s.medicines.FindByID(ctx, item.MedicineID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		subtotal := medicine.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		cart.Lines = append(cart.Lines, CartLine{
			ItemID:   item.ID,
			Medicine: *medicine,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		cart.Total = cart.Total.Add(subtotal)
		cart.Count += item.Quantity
	}
	return cart, nil
}

// UpdateItem overwrites the quantity of a cart row. The row must belong to
// the calling session.
func (s *cartService) UpdateItem(ctx context.Context, sessionID string, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, errors.ErrInvalidQuantity
	}

	item, err := s.ownedItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// RemoveItem deletes one cart row of the calling session.
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, itemID uint) error {
	item, err := s.ownedItem(ctx, sessionID, itemID)
	if err != nil {
		return err
	}
	return s.carts.Delete(ctx, item.ID)
}

// ClearCart removes every row of the session.
func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.carts.DeleteBySession(ctx, sessionID)
}

// CountItems returns the number of distinct cart rows of the session.
func (s *cartService) CountItems(ctx context.Context, sessionID string) (int64, error) {
	return s.carts.CountBySession(ctx, sessionID)
}

// ownedItem loads a cart row and verifies it belongs to the session. A row
// owned by another session reads as not found rather than forbidden, so item
// ids leak nothing.
func (s *cartService) ownedItem(ctx context.Context, sessionID string, itemID uint) (*model.CartItem, error) {
	item, err := s.carts.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCartItemNotFound
		}
		return nil, err
	}
	if item.SessionID != sessionID {
		return nil, errors.ErrCartItemNotFound
	}
	return item, nil
}
