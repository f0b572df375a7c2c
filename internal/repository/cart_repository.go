package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthbridge/internal/model"
)

// CartRepository defines cart persistence operations. Upsert and checkout
// both run inside WithTransaction with row locks so concurrent adds for the
// same (session, medicine) pair never lose updates.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	Delete(ctx context.Context, id uint) error
	DeleteBySession(ctx context.Context, sessionID string) error
	FindByID(ctx context.Context, id uint) (*model.CartItem, error)
	FindBySession(ctx context.Context, sessionID string) ([]model.CartItem, error)
	FindBySessionForUpdate(ctx context.Context, sessionID string) ([]model.CartItem, error)
	FindPairForUpdate(ctx context.Context, sessionID string, medicineID uint) (*model.CartItem, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CartRepository) error) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create inserts a new cart row.
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateQuantity overwrites the quantity of a cart row.
func (r *cartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// Delete removes a cart row by ID.
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, id).Error
}

// DeleteBySession removes all cart rows of a session.
func (r *cartRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CartItem{}).Error
}

// FindByID finds a cart row by ID.
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindBySession returns all cart rows of a session.
func (r *cartRepository) FindBySession(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySessionForUpdate returns the session's cart rows under a row lock.
// Checkout uses this so a concurrent add cannot slip between read and clear.
func (r *cartRepository) FindBySessionForUpdate(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ?", sessionID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindPairForUpdate locks and returns the (session, medicine) row.
func (r *cartRepository) FindPairForUpdate(ctx context.Context, sessionID string, medicineID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ? AND medicine_id = ?", sessionID, medicineID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CountBySession returns the number of cart rows of a session.
func (r *cartRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

// WithTransaction executes a function within a database transaction.
func (r *cartRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CartRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &cartRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
