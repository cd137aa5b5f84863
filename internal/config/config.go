package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. RMS_DATABASE_HOST.
const EnvPrefix = "RMS"

// Config holds all configuration for the restaurant management system
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	HTTP      HTTPConfig      `yaml:"http"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	MaxConns int32  `yaml:"max_conns" split_words:"true"`
}

// RabbitMQConfig holds RabbitMQ connection configuration. An empty host
// disables event notifications.
type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// HTTPConfig holds the API listener configuration
type HTTPConfig struct {
	Port           int           `yaml:"port"`
	RequestTimeout time.Duration `yaml:"request_timeout" split_words:"true"`
}

// DashboardConfig holds the dashboard refresh configuration
type DashboardConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" split_words:"true"`
}

// Default returns the configuration used when a key is absent everywhere.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "rms",
			MaxConns: 1,
		},
		HTTP: HTTPConfig{
			Port:           3000,
			RequestTimeout: 30 * time.Second,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: time.Minute,
		},
	}
}

// Load reads configuration from a YAML file, then applies .env and RMS_*
// environment overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the services cannot start without
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("invalid config: database.host is required")
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("invalid config: database.port %d", c.Database.Port)
	}
	if c.Database.MaxConns <= 0 {
		c.Database.MaxConns = 1
	}
	if c.Dashboard.RefreshInterval <= 0 {
		return fmt.Errorf("invalid config: dashboard.refresh_interval %s", c.Dashboard.RefreshInterval)
	}
	return nil
}

// DatabaseURL returns a PostgreSQL connection URL
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Database)
}

// RabbitMQEnabled reports whether a broker is configured
func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQ.Host != ""
}

// RabbitMQURL returns an AMQP connection URL
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
