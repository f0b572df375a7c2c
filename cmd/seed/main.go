package main

import (
	"context"

	"healthbridge/internal/config"
	"healthbridge/internal/db"
	"healthbridge/internal/logger"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
	"healthbridge/internal/seed"
)

func main() {
	cfg := config.Load()
	log := logger.New("healthbridge-seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Disease{},
		&model.Medicine{},
		&model.User{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	seeder := seed.New(
		repository.NewDiseaseRepository(gormDB),
		repository.NewMedicineRepository(gormDB),
		repository.NewUserRepository(gormDB),
		log,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seed completed")
}
