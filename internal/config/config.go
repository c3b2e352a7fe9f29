package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Save-slot storage
	SaveBackend   string `validate:"oneof=memory badger postgres"`
	SaveDir       string `validate:"required_if=SaveBackend badger"`
	SaveSlot      string
	CompressSaves bool

	DBUser     string
	DBPassword string
	DBHost     string `validate:"required_if=SaveBackend postgres"`
	DBPort     string `validate:"omitempty,numeric"`
	DBName     string `validate:"required_if=SaveBackend postgres"`
	DBMaxConns int    `validate:"gte=1"`

	// Empty paths use the files embedded in the binary
	CropCatalogPath string
	FarmLayoutPath  string

	MetadataCacheSize int           `validate:"gte=1"`
	MetadataCacheTTL  time.Duration `validate:"gt=0"`

	// Simulation
	Days        int           `validate:"gte=0"`
	DayInterval time.Duration `validate:"gte=0"`
	AutoHarvest bool

	// Crop event journal
	EventRetentionDays int `validate:"gte=1"`

	// Empty disables the metrics endpoint
	MetricsAddr string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:            getEnv(EnvLogDir, DefaultLogDir),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		SaveBackend:       strings.ToLower(getEnv(EnvSaveBackend, DefaultSaveBackend)),
		SaveDir:           getEnv(EnvSaveDir, DefaultSaveDir),
		SaveSlot:          getEnv(EnvSaveSlot, ""),
		CompressSaves:     getEnvAsBool(EnvCompressSaves, true),
		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		CropCatalogPath:   getEnv(EnvCropCatalogPath, ""),
		FarmLayoutPath:    getEnv(EnvFarmLayoutPath, ""),
		MetadataCacheSize: getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		MetadataCacheTTL:  getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),
		AutoHarvest:       getEnvAsBool(EnvAutoHarvest, true),
		MetricsAddr:       getEnv(EnvMetricsAddr, ""),

		EventRetentionDays: getEnvAsInt(EnvEventRetention, DefaultEventRetention),
	}

	days, err := strconv.Atoi(getEnv(EnvDays, strconv.Itoa(DefaultDays)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvDays, err)
	}
	cfg.Days = days

	interval, err := time.ParseDuration(getEnv(EnvDayInterval, DefaultDayInterval.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvDayInterval, err)
	}
	cfg.DayInterval = interval

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
