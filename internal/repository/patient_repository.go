package repository

import (
	"context"

	"gorm.io/gorm"

	"healthbridge/internal/model"
)

// PatientRepository defines patient-record persistence operations. Records
// are append-only; there are no update or delete operations.
type PatientRepository interface {
	Create(ctx context.Context, record *model.PatientRecord) error
	FindByID(ctx context.Context, id uint) (*model.PatientRecord, error)
	List(ctx context.Context) ([]model.PatientRecord, error)
	Search(ctx context.Context, q string) ([]model.PatientRecord, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient-record repository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create appends a new consultation record.
func (r *patientRepository) Create(ctx context.Context, record *model.PatientRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID finds a record by ID.
func (r *patientRepository) FindByID(ctx context.Context, id uint) (*model.PatientRecord, error) {
	var record model.PatientRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all records, newest first.
func (r *patientRepository) List(ctx context.Context) ([]model.PatientRecord, error) {
	var records []model.PatientRecord
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Search matches q against patient name, diagnosis, and matched disease name.
func (r *patientRepository) Search(ctx context.Context, q string) ([]model.PatientRecord, error) {
	var records []model.PatientRecord
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR diagnosis LIKE ? OR disease_name LIKE ?", pattern, pattern, pattern).
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
