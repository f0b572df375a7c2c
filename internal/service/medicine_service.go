package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"healthbridge/internal/cache"
	"healthbridge/internal/errors"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
)

const medicineCacheTTL = 5 * time.Minute

const medicineListCacheKey = "medicines:all"

// MedicineInput carries the fields of an admin create or update request.
type MedicineInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Dosage      string
	Stock       int
	ImageURL    string
}

// MedicineService exposes the pharmacy catalog plus the admin CRUD on it.
type MedicineService interface {
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	SearchMedicines(ctx context.Context, q string) ([]model.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]model.Medicine, error)
	GetMedicine(ctx context.Context, id uint) (*model.Medicine, error)
	ListMedicineImages(ctx context.Context) ([]model.Medicine, error)

	CreateMedicine(ctx context.Context, input MedicineInput) (*model.Medicine, error)
	UpdateMedicine(ctx context.Context, id uint, input MedicineInput) (*model.Medicine, error)
	DeleteMedicine(ctx context.Context, id uint) error
	SetImage(ctx context.Context, id uint, imageURL string) (*model.Medicine, error)
}

type medicineService struct {
	repo  repository.MedicineRepository
	cache *cache.Client
}

// NewMedicineService creates a new medicine service.
func NewMedicineService(repo repository.MedicineRepository, cache *cache.Client) MedicineService {
	return &medicineService{repo: repo, cache: cache}
}

func (s *medicineService) itemCacheKey(id uint) string {
	return fmt.Sprintf("medicine:%d", id)
}

// invalidate drops the list key and the item key after any write.
func (s *medicineService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, medicineListCacheKey)
	if id != 0 {
		_ = s.cache.Delete(ctx, s.itemCacheKey(id))
	}
}

// ListMedicines returns the full catalog with caching.
func (s *medicineService) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	if data, _ := s.cache.Get(ctx, medicineListCacheKey); data != nil {
		var cached []model.Medicine
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	medicines, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(medicines); err == nil {
		_ = s.cache.Set(ctx, medicineListCacheKey, payload, medicineCacheTTL)
	}
	return medicines, nil
}

// SearchMedicines matches q against name, description, and category.
func (s *medicineService) SearchMedicines(ctx context.Context, q string) ([]model.Medicine, error) {
	return s.repo.Search(ctx, q)
}

// ListByCategory returns medicines in the given category.
func (s *medicineService) ListByCategory(ctx context.Context, category string) ([]model.Medicine, error) {
	return s.repo.ListByCategory(ctx, category)
}

// GetMedicine retrieves a medicine by ID with caching.
func (s *medicineService) GetMedicine(ctx context.Context, id uint) (*model.Medicine, error) {
	key := s.itemCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Medicine
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	medicine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMedicineNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(medicine); err == nil {
		_ = s.cache.Set(ctx, key, payload, medicineCacheTTL)
	}
	return medicine, nil
}

// ListMedicineImages returns medicines that have an image assigned.
func (s *medicineService) ListMedicineImages(ctx context.Context) ([]model.Medicine, error) {
	return s.repo.ListWithImages(ctx)
}

// CreateMedicine adds a product to the catalog. Names are unique.
func (s *medicineService) CreateMedicine(ctx context.Context, input MedicineInput) (*model.Medicine, error) {
	if input.Price.IsNegative() {
		return nil, errors.ErrInvalidPrice
	}

	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrDuplicateMedicine
	}

	medicine := &model.Medicine{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Dosage:      input.Dosage,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, err
	}

	s.invalidate(ctx, 0)
	return medicine, nil
}

// UpdateMedicine overwrites an existing product's fields.
func (s *medicineService) UpdateMedicine(ctx context.Context, id uint, input MedicineInput) (*model.Medicine, error) {
	if input.Price.IsNegative() {
		return nil, errors.ErrInvalidPrice
	}

	medicine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMedicineNotFound
		}
		return nil, err
	}

	if input.Name != medicine.Name {
		other, err := s.repo.FindByName(ctx, input.Name)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if other != nil {
			return nil, errors.ErrDuplicateMedicine
		}
	}

	medicine.Name = input.Name
	medicine.Description = input.Description
	medicine.Category = input.Category
	medicine.Price = input.Price
	medicine.Dosage = input.Dosage
	medicine.Stock = input.Stock
	if input.ImageURL != "" {
		medicine.ImageURL = input.ImageURL
	}
	if err := s.repo.Update(ctx, medicine); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return medicine, nil
}

// DeleteMedicine removes a product. Existing order snapshots keep their
// copied name and price, so history is unaffected.
func (s *medicineService) DeleteMedicine(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrMedicineNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// SetImage assigns an uploaded image URL to a medicine.
func (s *medicineService) SetImage(ctx context.Context, id uint, imageURL string) (*model.Medicine, error) {
	medicine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMedicineNotFound
		}
		return nil, err
	}
	medicine.ImageURL = imageURL
	if err := s.repo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return medicine, nil
}
