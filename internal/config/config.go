package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Store   StoreConfig   `validate:"required"`
	Pricing PricingConfig `validate:"required"`
	Logging LoggingConfig `validate:"required"`
	Seed    SeedConfig
}

type StoreConfig struct {
	Name     string `validate:"required"`
	Currency string `validate:"required,len=3"`
}

type PricingConfig struct {
	// VATRate is the tax rate shown on receipts, e.g. 0.08 for 8%.
	// It is display-only: the order's canonical total stays pre-VAT.
	VATRate float64 `mapstructure:"vat_rate" validate:"gte=0,lt=1"`

	// PointsPerUnit is the amount of pre-VAT spend that earns one
	// loyalty point, e.g. 1000 currency units per point.
	PointsPerUnit int64 `mapstructure:"points_per_unit" validate:"gt=0"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type SeedConfig struct {
	Enabled bool
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Load .env if present before reading env vars
	_ = godotenv.Load()

	v.SetEnvPrefix("RICEPOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; defaults and env vars are enough to run
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if !cfg.Logging.Level.Validate() {
		cfg.Logging.Level = types.LogLevelInfo
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.name", "Rice House")
	v.SetDefault("store.currency", "VND")
	v.SetDefault("pricing.vat_rate", 0.08)
	v.SetDefault("pricing.points_per_unit", 1000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("seed.enabled", true)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a configuration suitable for tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Store:   StoreConfig{Name: "Rice House", Currency: "VND"},
		Pricing: PricingConfig{VATRate: 0.08, PointsPerUnit: 1000},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Seed:    SeedConfig{Enabled: false},
	}
}
