package repository

import (
	"context"

	"gorm.io/gorm"

	"healthbridge/internal/model"
)

// MedicineRepository defines medicine persistence operations.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	CreateBatch(ctx context.Context, medicines []model.Medicine) error
	Update(ctx context.Context, medicine *model.Medicine) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Medicine, error)
	FindByName(ctx context.Context, name string) (*model.Medicine, error)
	List(ctx context.Context) ([]model.Medicine, error)
	Search(ctx context.Context, q string) ([]model.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]model.Medicine, error)
	ListWithImages(ctx context.Context) ([]model.Medicine, error)
	Count(ctx context.Context) (int64, error)
}

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository.
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

// Create creates a new medicine.
func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

// CreateBatch inserts medicines in one statement.
func (r *medicineRepository) CreateBatch(ctx context.Context, medicines []model.Medicine) error {
	return r.db.WithContext(ctx).Create(&medicines).Error
}

// Update updates an existing medicine.
func (r *medicineRepository) Update(ctx context.Context, medicine *model.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

// Delete removes a medicine by ID.
func (r *medicineRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Medicine{}, id).Error
}

// FindByID finds a medicine by ID.
func (r *medicineRepository) FindByID(ctx context.Context, id uint) (*model.Medicine, error) {
	var medicine model.Medicine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

// FindByName finds a medicine by its unique name.
func (r *medicineRepository) FindByName(ctx context.Context, name string) (*model.Medicine, error) {
	var medicine model.Medicine
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&medicine).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

// List returns all medicines.
func (r *medicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).Order("id").Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// Search matches q against name, description, and category.
func (r *medicineRepository) Search(ctx context.Context, q string) ([]model.Medicine, error) {
	var medicines []model.Medicine
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// ListByCategory returns medicines whose category matches the given one.
func (r *medicineRepository) ListByCategory(ctx context.Context, category string) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("category LIKE ?", "%"+category+"%").
		Order("id").
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// ListWithImages returns medicines that have an image assigned.
func (r *medicineRepository) ListWithImages(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("image_url IS NOT NULL AND image_url <> ''").
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// Count returns the number of medicine rows.
func (r *medicineRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Medicine{}).Count(&count).Error
	return count, err
}
