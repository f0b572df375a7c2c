// Package seed loads the bundled reference data (diseases, medicines,
// default admin) into an empty database. All steps are idempotent so the
// seeder is safe to run on every startup.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"healthbridge/internal/model"
	"healthbridge/internal/repository"
)

//go:embed data/diseases.json
var diseasesJSON []byte

//go:embed data/medicines.json
var medicinesJSON []byte

// Default admin credentials, created only when the account does not exist.
const (
	AdminEmail    = "admin@healthbridge.com"
	AdminPassword = "admin123"
	AdminName     = "Administrator"
)

type diseaseData struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Symptoms    string `json:"symptoms"`
	Treatment   string `json:"treatment"`
	Medicines   string `json:"medicines"`
	ImageURL    string `json:"image_url"`
}

type medicineData struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Dosage      string `json:"dosage"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
}

// Seeder populates the reference tables and the default admin account.
type Seeder struct {
	diseases  repository.DiseaseRepository
	medicines repository.MedicineRepository
	users     repository.UserRepository
	logger    zerolog.Logger
}

func New(diseases repository.DiseaseRepository, medicines repository.MedicineRepository, users repository.UserRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		diseases:  diseases,
		medicines: medicines,
		users:     users,
		logger:    logger,
	}
}

// Run seeds diseases, medicines, and the default admin. Reference tables are
// only populated when empty; the admin is only created when absent.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedDiseases(ctx); err != nil {
		return err
	}
	if err := s.seedMedicines(ctx); err != nil {
		return err
	}
	return s.seedAdmin(ctx)
}

func (s *Seeder) seedDiseases(ctx context.Context) error {
	count, err := s.diseases.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting diseases: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("count", count).Msg("diseases already seeded")
		return nil
	}

	var items []diseaseData
	if err := json.Unmarshal(diseasesJSON, &items); err != nil {
		return fmt.Errorf("parsing disease seed data: %w", err)
	}

	diseases := make([]model.Disease, 0, len(items))
	for _, item := range items {
		diseases = append(diseases, model.Disease{
			Name:        item.Name,
			Category:    item.Category,
			Description: item.Description,
			Symptoms:    item.Symptoms,
			Treatment:   item.Treatment,
			Medicines:   item.Medicines,
			ImageURL:    item.ImageURL,
		})
	}

	if err := s.diseases.CreateBatch(ctx, diseases); err != nil {
		return fmt.Errorf("seeding diseases: %w", err)
	}
	s.logger.Info().Int("count", len(diseases)).Msg("seeded diseases")
	return nil
}

func (s *Seeder) seedMedicines(ctx context.Context) error {
	count, err := s.medicines.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting medicines: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("count", count).Msg("medicines already seeded")
		return nil
	}

	var items []medicineData
	if err := json.Unmarshal(medicinesJSON, &items); err != nil {
		return fmt.Errorf("parsing medicine seed data: %w", err)
	}

	medicines := make([]model.Medicine, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return fmt.Errorf("invalid price for medicine %q: %w", item.Name, err)
		}
		medicines = append(medicines, model.Medicine{
			Name:        item.Name,
			Category:    item.Category,
			Price:       price,
			Description: item.Description,
			Dosage:      item.Dosage,
			Stock:       item.Stock,
			ImageURL:    item.ImageURL,
		})
	}

	if err := s.medicines.CreateBatch(ctx, medicines); err != nil {
		return fmt.Errorf("seeding medicines: %w", err)
	}
	s.logger.Info().Int("count", len(medicines)).Msg("seeded medicines")
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	existing, err := s.users.FindByEmail(ctx, AdminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &model.User{
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Name:         AdminName,
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}
	s.logger.Info().Str("email", AdminEmail).Msg("created default admin account")
	return nil
}
