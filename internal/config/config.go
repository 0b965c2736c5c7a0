package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// CatalogConfig configures the catalog service binary.
type CatalogConfig struct {
	Env            string `env:"ENV" env-default:"local"`
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	HTTPPort       string `env:"HTTP_PORT" env-default:":8001"`
	SeedSampleData bool   `env:"SEED_SAMPLE_DATA" env-default:"false"`
}

// OrdersConfig configures the order service binary. ProductServiceURL must
// be overridable per deployment; the default assumes a local catalog.
type OrdersConfig struct {
	Env               string        `env:"ENV" env-default:"local"`
	LogLevel          string        `env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `env:"HTTP_PORT" env-default:":8002"`
	ProductServiceURL string        `env:"PRODUCT_SERVICE_URL" env-default:"http://localhost:8001"`
	CatalogTimeout    time.Duration `env:"CATALOG_TIMEOUT" env-default:"5s"`
}

// MustLoadCatalog reads catalog service config from the environment.
func MustLoadCatalog() *CatalogConfig {
	var cfg CatalogConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("error reading config: %v", err)
	}
	return &cfg
}

// MustLoadOrders reads order service config from the environment.
func MustLoadOrders() *OrdersConfig {
	var cfg OrdersConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("error reading config: %v", err)
	}
	return &cfg
}
