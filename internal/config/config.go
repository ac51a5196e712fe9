package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MongoConfig holds the document-store connection settings shared by the
// catalog and user services.
type MongoConfig struct {
	URI      string
	Database string
}

// CatalogConfig configures the catalog service.
type CatalogConfig struct {
	Env         string
	Port        string
	AdminAPIKey string
	Mongo       MongoConfig
}

// OrderConfig configures the order service.
type OrderConfig struct {
	Env             string
	Port            string
	CatalogURL      string
	UpstreamTimeout time.Duration
}

// PaymentConfig configures the payment service.
type PaymentConfig struct {
	Env             string
	Port            string
	OrderURL        string
	UpstreamTimeout time.Duration
}

// UserConfig configures the user service. A zero BcryptCost falls back to the
// bcrypt library default.
type UserConfig struct {
	Env        string
	Port       string
	JWTSecret  string
	BcryptCost int
	Mongo      MongoConfig
}

// LoadCatalog reads the catalog service configuration from the environment.
// MONGODB_URI is required; startup must fail without it.
func LoadCatalog() (*CatalogConfig, error) {
	godotenv.Load()

	mongo, err := loadMongo()
	if err != nil {
		return nil, err
	}

	return &CatalogConfig{
		Env:         getEnv("ENV", "dev"),
		Port:        getEnv("CATALOG_PORT", "3000"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		Mongo:       mongo,
	}, nil
}

func LoadOrder() (*OrderConfig, error) {
	godotenv.Load()

	return &OrderConfig{
		Env:             getEnv("ENV", "dev"),
		Port:            getEnv("ORDER_PORT", "4000"),
		CatalogURL:      getEnv("CATALOG_SERVICE_URL", "http://localhost:3000/perfumes"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 5*time.Second),
	}, nil
}

func LoadPayment() (*PaymentConfig, error) {
	godotenv.Load()

	return &PaymentConfig{
		Env:             getEnv("ENV", "dev"),
		Port:            getEnv("PAYMENT_PORT", "5000"),
		OrderURL:        getEnv("ORDER_SERVICE_URL", "http://localhost:4000/orders"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 5*time.Second),
	}, nil
}

// LoadUser reads the user service configuration. MONGODB_URI is required.
func LoadUser() (*UserConfig, error) {
	godotenv.Load()

	mongo, err := loadMongo()
	if err != nil {
		return nil, err
	}

	return &UserConfig{
		Env:        getEnv("ENV", "dev"),
		Port:       getEnv("USER_PORT", "6000"),
		JWTSecret:  getEnv("JWT_SECRET_KEY", ""),
		BcryptCost: getEnvInt("BCRYPT_COST", 0),
		Mongo:      mongo,
	}, nil
}

func loadMongo() (MongoConfig, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return MongoConfig{}, fmt.Errorf("MONGODB_URI is required")
	}
	return MongoConfig{
		URI:      uri,
		Database: getEnv("MONGODB_DATABASE", "perfumeshop"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
