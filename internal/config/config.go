package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string

	// Advisor (external AI) settings.
	GeminiAPIKey string
	GeminiURL    string

	// Order event stream.
	KafkaBrokers string
	KafkaTopic   string

	// Best-effort order backup.
	BackupEnabled bool
	BackupDir     string

	// Static assets (product/disease images, uploads).
	StaticDir string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/healthbridge?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "healthbridge-secret-key-2024-default"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiURL:     getEnv("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:    getEnv("KAFKA_ORDER_TOPIC", "orders.created"),
		BackupEnabled: getEnvBool("BACKUP_ENABLED", false),
		BackupDir:     getEnv("BACKUP_DIR", "backups"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
