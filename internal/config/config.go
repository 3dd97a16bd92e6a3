package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

type Config struct {
	HTTP_ADDR          string
	DB_HOST            string
	DB_PORT            string
	DB_USER            string
	DB_PASSWORD        string
	DB_NAME            string
	ES_URL             string
	ES_USER            string
	ES_PASSWORD        string
	ES_INDEX           string
	JWT_SECRET         string
	REFRESH_SECRET     string
	KAFKA_ADDRESS      string
	ADMIN_EMAIL        string
	PAYSTACK_SECRET    string
	PAYSTACK_BASE_URL  string
	UPLOAD_DIR         string
	UPLOAD_PUBLIC_BASE string
	LOG_LEVEL          string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:          getenv("HTTP_ADDR", ":8080"),
		DB_HOST:            os.Getenv("DB_HOST"),
		DB_PORT:            getenv("DB_PORT", "5432"),
		DB_USER:            os.Getenv("DB_USER"),
		DB_PASSWORD:        os.Getenv("DB_PASSWORD"),
		DB_NAME:            os.Getenv("DB_NAME"),
		ES_URL:             os.Getenv("ES_URL"),
		ES_USER:            os.Getenv("ES_USER"),
		ES_PASSWORD:        os.Getenv("ES_PASSWORD"),
		ES_INDEX:           getenv("ES_INDEX", "products"),
		JWT_SECRET:         os.Getenv("JWT_SECRET"),
		REFRESH_SECRET:     os.Getenv("REFRESH_SECRET"),
		KAFKA_ADDRESS:      getenv("KAFKA_ADDRESS", "kafka:9092"),
		ADMIN_EMAIL:        os.Getenv("ADMIN_EMAIL"),
		PAYSTACK_SECRET:    os.Getenv("PAYSTACK_SECRET"),
		PAYSTACK_BASE_URL:  getenv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		UPLOAD_DIR:         getenv("UPLOAD_DIR", "uploads"),
		UPLOAD_PUBLIC_BASE: getenv("UPLOAD_PUBLIC_BASE", "/uploads"),
		LOG_LEVEL:          getenv("LOG_LEVEL", "info"),
	}

	return config, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB() (*gorm.DB, error) {
	configuration, _ := LoadConfig()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		configuration.DB_USER,
		configuration.DB_PASSWORD,
		configuration.DB_HOST,
		configuration.DB_PORT,
		configuration.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migration: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.CartItem{},
		&models.Order{},
		&models.QuoteRequest{},
		&models.WishlistEntry{},
	)
}
