package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultStorageTimeout    = 5 * time.Second
	defaultReconcileInterval = time.Minute
	defaultReconcileGrace    = 5 * time.Minute
)

type Config struct {
	RunAddress         string        `env:"RUN_ADDRESS"`
	DatabaseDSN        string        `env:"DATABASE_URI"`
	MigrationsDir      string        `env:"MIGRATIONS_DIR"`
	WebhookSecret      string        `env:"WEBHOOK_SECRET"`
	DashboardJWTSecret string        `env:"DASHBOARD_JWT_SECRET"`
	MerchantUPI        string        `env:"MERCHANT_UPI_ID"`
	MerchantName       string        `env:"MERCHANT_NAME"`
	StorageTimeout     time.Duration `env:"STORAGE_TIMEOUT"`
	ReconcileInterval  time.Duration `env:"RECONCILE_INTERVAL"`
	ReconcileGrace     time.Duration `env:"RECONCILE_GRACE"`
}

// String скрывает секреты при выводе конфигурации в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s MerchantUPI:%s MerchantName:%s StorageTimeout:%s "+
			"ReconcileInterval:%s ReconcileGrace:%s}",
		c.RunAddress, c.MigrationsDir, c.MerchantUPI, c.MerchantName,
		c.StorageTimeout, c.ReconcileInterval, c.ReconcileGrace,
	)
}

func LoadConfig() (*Config, error) {
	var envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	flagsConfig := loadFlags(flag.CommandLine)
	flag.Parse()

	conf := mergeConfig(&envConfig, flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	if c.WebhookSecret == "" {
		errs = append(errs, errors.New("webhook secret is not set"))
	}
	if c.DashboardJWTSecret == "" {
		errs = append(errs, errors.New("dashboard jwt secret is not set"))
	}
	return errors.Join(errs...)
}

// loadFlags регистрирует флаги в fs. Значения появятся в конфиге после fs.Parse.
func loadFlags(fs *flag.FlagSet) *Config {
	var flagConfig Config
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.WebhookSecret, "w", "", "Payment provider webhook secret")
	fs.StringVar(&flagConfig.DashboardJWTSecret, "j", "", "Dashboard JWT secret")
	fs.StringVar(&flagConfig.MerchantUPI, "u", "", "Merchant UPI ID (payee address)")
	fs.StringVar(&flagConfig.MerchantName, "n", "", "Merchant name shown in UPI apps")
	return &flagConfig
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		WebhookSecret:      defaultIfBlank(envConfig.WebhookSecret, flagsConfig.WebhookSecret),
		DashboardJWTSecret: defaultIfBlank(envConfig.DashboardJWTSecret, flagsConfig.DashboardJWTSecret),
		MerchantUPI:        defaultIfBlank(envConfig.MerchantUPI, flagsConfig.MerchantUPI),
		MerchantName:       defaultIfBlank(envConfig.MerchantName, flagsConfig.MerchantName),
		StorageTimeout:     defaultIfZero(envConfig.StorageTimeout, defaultStorageTimeout),
		ReconcileInterval:  defaultIfZero(envConfig.ReconcileInterval, defaultReconcileInterval),
		ReconcileGrace:     defaultIfZero(envConfig.ReconcileGrace, defaultReconcileGrace),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value, defaultValue time.Duration) time.Duration {
	if value <= 0 {
		return defaultValue
	}
	return value
}
