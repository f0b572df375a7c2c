package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"healthbridge/internal/cache"
	"healthbridge/internal/errors"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
)

const diseaseCacheTTL = 5 * time.Minute

// DiseaseService exposes the disease reference catalog.
type DiseaseService interface {
	ListDiseases(ctx context.Context) ([]model.Disease, error)
	SearchDiseases(ctx context.Context, q string) ([]model.Disease, error)
	GetDisease(ctx context.Context, id uint) (*model.Disease, error)
}

type diseaseService struct {
	repo  repository.DiseaseRepository
	cache *cache.Client
}

// NewDiseaseService creates a new disease service.
func NewDiseaseService(repo repository.DiseaseRepository, cache *cache.Client) DiseaseService {
	return &diseaseService{repo: repo, cache: cache}
}

const diseaseListCacheKey = "diseases:all"

// ListDiseases returns the full disease catalog with caching. The catalog is
// seeded once and never mutated, so a short TTL is purely precautionary.
func (s *diseaseService) ListDiseases(ctx context.Context) ([]model.Disease, error) {
	if data, _ := s.cache.Get(ctx, diseaseListCacheKey); data != nil {
		var cached []model.Disease
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	diseases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(diseases); err == nil {
		_ = s.cache.Set(ctx, diseaseListCacheKey, payload, diseaseCacheTTL)
	}
	return diseases, nil
}

// SearchDiseases matches q against name, symptoms, and category.
func (s *diseaseService) SearchDiseases(ctx context.Context, q string) ([]model.Disease, error) {
	return s.repo.Search(ctx, q)
}

// GetDisease retrieves a disease by ID with caching.
func (s *diseaseService) GetDisease(ctx context.Context, id uint) (*model.Disease, error) {
	key := fmt.Sprintf("disease:%d", id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Disease
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	disease, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDiseaseNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(disease); err == nil {
		_ = s.cache.Set(ctx, key, payload, diseaseCacheTTL)
	}
	return disease, nil
}
