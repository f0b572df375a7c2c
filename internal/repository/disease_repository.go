package repository

import (
	"context"

	"gorm.io/gorm"

	"healthbridge/internal/model"
)

// DiseaseRepository defines disease persistence operations. Diseases are
// read-mostly reference data; writes happen only during seeding.
type DiseaseRepository interface {
	CreateBatch(ctx context.Context, diseases []model.Disease) error
	FindByID(ctx context.Context, id uint) (*model.Disease, error)
	List(ctx context.Context) ([]model.Disease, error)
	Search(ctx context.Context, q string) ([]model.Disease, error)
	Count(ctx context.Context) (int64, error)
}

type diseaseRepository struct {
	db *gorm.DB
}

// NewDiseaseRepository creates a new disease repository.
func NewDiseaseRepository(db *gorm.DB) DiseaseRepository {
	return &diseaseRepository{db: db}
}

// CreateBatch inserts diseases in one statement.
func (r *diseaseRepository) CreateBatch(ctx context.Context, diseases []model.Disease) error {
	return r.db.WithContext(ctx).Create(&diseases).Error
}

// FindByID finds a disease by ID.
func (r *diseaseRepository) FindByID(ctx context.Context, id uint) (*model.Disease, error) {
	var disease model.Disease
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&disease).Error; err != nil {
		return nil, err
	}
	return &disease, nil
}

// List returns all diseases in insertion order. The matcher relies on this
// ordering for its stable tie break.
func (r *diseaseRepository) List(ctx context.Context) ([]model.Disease, error) {
	var diseases []model.Disease
	if err := r.db.WithContext(ctx).Order("id").Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}

// Search matches q against name, symptoms, and category.
func (r *diseaseRepository) Search(ctx context.Context, q string) ([]model.Disease, error) {
	var diseases []model.Disease
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR symptoms LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&diseases).Error
	if err != nil {
		return nil, err
	}
	return diseases, nil
}

// Count returns the number of disease rows.
func (r *diseaseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Disease{}).Count(&count).Error
	return count, err
}
