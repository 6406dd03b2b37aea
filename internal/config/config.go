package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string `validate:"required,min=1,dive,hostname_port"`
	KafkaSourceTopic string   `validate:"required"`
	KafkaSinkTopic   string   `validate:"required,nefield=KafkaSourceTopic"`
	KafkaGroupID     string   `validate:"required"`
	HTTPAddr         string   `validate:"required"`
	LogLevel         string
	LogFormat        string        `validate:"oneof=json text"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`

	BatchSize          int           `validate:"min=1"`
	BatchFlushInterval time.Duration `validate:"gt=0"`

	// Table sources. With neither set the compiled-in tables are used.
	ResourceDir     string        `validate:"omitempty,excluded_with=ResourceURL"`
	ResourceURL     string        `validate:"omitempty,url"`
	ResourceTimeout time.Duration `validate:"gt=0"`
	TableCacheSize  int           `validate:"min=1"`

	// Labeling.
	UnitSystem  gribmeta.UnitSystem
	TimeFormat  string `validate:"required"`
	DisplayMode calendar.DisplayMode
	DisplayTZ   string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is read first; it never
// overrides variables already in the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	resourceTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("GRIB_RESOURCE_TIMEOUT", "5s"))
	if err != nil || resourceTimeout <= 0 {
		return nil, errors.New("invalid GRIB_RESOURCE_TIMEOUT")
	}

	cacheSize, err := strconv.Atoi(sharedcfg.EnvOrDefault("TABLE_CACHE_SIZE", "256"))
	if err != nil || cacheSize <= 0 {
		return nil, errors.New("invalid TABLE_CACHE_SIZE")
	}

	units, err := gribmeta.ParseUnitSystem(sharedcfg.EnvOrDefault("UNIT_SYSTEM", "english"))
	if err != nil {
		return nil, fmt.Errorf("invalid UNIT_SYSTEM: %w", err)
	}

	mode, err := calendar.ParseDisplayMode(sharedcfg.EnvOrDefault("DISPLAY_MODE", "utc"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_MODE: %w", err)
	}

	displayTZ := os.Getenv("DISPLAY_TZ")
	if displayTZ != "" {
		if _, err := calendar.LoadZone(displayTZ); err != nil {
			return nil, fmt.Errorf("invalid DISPLAY_TZ: %w", err)
		}
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "grib-metadata"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "grib-labels"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "grib-metadata-etl"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		ResourceDir:     os.Getenv("GRIB_RESOURCE_DIR"),
		ResourceURL:     os.Getenv("GRIB_RESOURCE_URL"),
		ResourceTimeout: resourceTimeout,
		TableCacheSize:  cacheSize,

		UnitSystem:  units,
		TimeFormat:  sharedcfg.EnvOrDefault("TIME_FORMAT", "%Y-%m-%dT%H:%M:%SZ"),
		DisplayMode: mode,
		DisplayTZ:   displayTZ,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.ResourceDir != "" && cfg.ResourceURL != "" {
		return nil, errors.New("GRIB_RESOURCE_DIR and GRIB_RESOURCE_URL are mutually exclusive")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
