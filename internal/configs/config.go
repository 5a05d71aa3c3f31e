package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию приложения.
type Config struct {
	Port string // Порт, на котором работает фронтенд-сервис

	// URL-адреса внешних API платформы
	BackendAPIURL string
	PaymentAPIURL string

	Geocoder GeocoderConfig
	Checkout CheckoutConfig
	Storage  StorageConfig

	AllowedOrigin string // origin UI для CORS

	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
	AppName      string
}

type GeocoderConfig struct {
	URL       string
	TimeoutMS int
	UserAgent string
}

type CheckoutConfig struct {
	KeyID string // публикуемый ключ checkout-виджета
}

// StorageConfig описывает долговременное хранилище избранного и сессии.
// Mode "file" - один JSON-файл, "postgres" - избранное в БД.
type StorageConfig struct {
	Mode        string
	FilePath    string
	DatabaseURL string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env файл опционален и нужен только для локальной разработки.
func LoadConfig(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port: getEnv("FRONTEND_PORT", "8090"),

		BackendAPIURL: getEnv("BACKEND_API_URL", "http://localhost:8080"),
		PaymentAPIURL: getEnv("PAYMENT_API_URL", "http://localhost:8080"),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		AppName:       getEnv("APP_NAME", "frontend-service"),
	}

	cfg.Geocoder.URL = getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	cfg.Geocoder.TimeoutMS = getEnvAsInt("GEOCODER_TIMEOUT_MS", 5000)
	cfg.Geocoder.UserAgent = getEnv("GEOCODER_USER_AGENT", cfg.AppName)

	cfg.Checkout.KeyID = getEnv("CHECKOUT_KEY_ID", "")

	cfg.Storage.Mode = getEnv("WISHLIST_STORAGE", "file")
	cfg.Storage.FilePath = getEnv("LOCAL_STORE_FILE", "data/localstore.json")
	cfg.Storage.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.Storage.Mode != "file" && cfg.Storage.Mode != "postgres" {
		return nil, fmt.Errorf("unknown WISHLIST_STORAGE mode: %q", cfg.Storage.Mode)
	}
	if cfg.Storage.Mode == "postgres" && cfg.Storage.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when WISHLIST_STORAGE=postgres")
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnv - вспомогательная функция для чтения переменных окружения с значением по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
