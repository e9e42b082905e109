package bootstrap

import (
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/env"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
)

type VendingConfig struct {
	database.PostgresSettings

	HttpPort       string `envconfig:"HTTP_PORT" default:":8080"`
	JwtSecret      string `envconfig:"JWT_SECRET" required:"true"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"true"`
	LogFormat      string `envconfig:"LOG_FORMAT" default:"text"`
}

func LoadVendingConfig() (VendingConfig, error) {
	cfg := VendingConfig{LogFormat: logging.FormatText}

	if err := env.Load(&cfg); err != nil {
		return VendingConfig{}, err
	}

	return cfg, nil
}
