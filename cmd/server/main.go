package main

import (
	"context"
	"net/http"

	_ "healthbridge/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"healthbridge/internal/advisor"
	"healthbridge/internal/auth"
	"healthbridge/internal/backup"
	"healthbridge/internal/cache"
	"healthbridge/internal/config"
	"healthbridge/internal/db"
	"healthbridge/internal/events"
	"healthbridge/internal/handler"
	"healthbridge/internal/logger"
	"healthbridge/internal/model"
	"healthbridge/internal/repository"
	"healthbridge/internal/router"
	"healthbridge/internal/seed"
	"healthbridge/internal/service"
)

// @title HealthBridge API
// @version 1.0
// @description Pharmacy store and symptom-triage API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New("healthbridge")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Disease{},
		&model.Medicine{},
		&model.CartItem{},
		&model.Order{},
		&model.User{},
		&model.PatientRecord{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	diseaseRepo := repository.NewDiseaseRepository(gormDB)
	medicineRepo := repository.NewMedicineRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	patientRepo := repository.NewPatientRepository(gormDB)

	// Reference data and the default admin
	seeder := seed.New(diseaseRepo, medicineRepo, userRepo, log)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	// Collaborators
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	advisorClient := advisor.NewClient(cfg.GeminiURL, cfg.GeminiAPIKey)
	archiver := backup.NewDirArchiver(cfg.BackupDir, cfg.BackupEnabled)
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	diseaseService := service.NewDiseaseService(diseaseRepo, cacheClient)
	medicineService := service.NewMedicineService(medicineRepo, cacheClient)
	cartService := service.NewCartService(cartRepo, medicineRepo)
	orderService := service.NewOrderService(orderRepo, medicineRepo, diseaseRepo, userRepo, archiver, publisher, log)
	diagnosisService := service.NewDiagnosisService(advisorClient, diseaseRepo, patientRepo, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	diseaseHandler := handler.NewDiseaseHandler(diseaseService)
	medicineHandler := handler.NewMedicineHandler(medicineService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisService)
	adminHandler := handler.NewAdminHandler(authService, orderService, medicineService, archiver, cfg.StaticDir, log)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg,
		authService,
		authHandler,
		diseaseHandler,
		medicineHandler,
		cartHandler,
		orderHandler,
		diagnosisHandler,
		adminHandler,
	)

	log.Info().Str("port", cfg.ServerPort).Msg("starting server")
	if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
