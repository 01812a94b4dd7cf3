package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Cache struct {
		Enabled  bool   `yaml:"enabled" env:"CACHE_ENABLED"`
		ShortTTL string `yaml:"short_ttl" env:"CACHE_SHORT_TTL"`
		LongTTL  string `yaml:"long_ttl" env:"CACHE_LONG_TTL"`
	} `yaml:"cache"`

	Throttle struct {
		Enabled       bool   `yaml:"enabled" env:"THROTTLE_ENABLED"`
		AnonSustained string `yaml:"anon_sustained" env:"THROTTLE_ANON_SUSTAINED"`
		AnonBurst     string `yaml:"anon_burst" env:"THROTTLE_ANON_BURST"`
		UserSustained string `yaml:"user_sustained" env:"THROTTLE_USER_SUSTAINED"`
		UserBurst     string `yaml:"user_burst" env:"THROTTLE_USER_BURST"`
	} `yaml:"throttle"`

	Search struct {
		Enabled   bool   `yaml:"enabled" env:"SEARCH_ENABLED"`
		Addresses string `yaml:"addresses" env:"SEARCH_ADDRESSES"`
		Username  string `yaml:"username" env:"SEARCH_USERNAME"`
		Password  string `yaml:"password" env:"SEARCH_PASSWORD"`
		Index     string `yaml:"index" env:"SEARCH_INDEX"`
	} `yaml:"search"`

	Seed struct {
		FixturePath   string `yaml:"fixture_path" env:"SEED_FIXTURE_PATH"`
		CreatorUserID int64  `yaml:"creator_user_id" env:"SEED_CREATOR_USER_ID"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory is loaded first when present;
// variables already set in the process environment win over it.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "jobsearch"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.JWT.AccessTokenExpiration = "5m"
	config.JWT.RefreshTokenExpiration = "24h"
	config.JWT.Issuer = "jobsearch"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Redis.Addr = "localhost:6379"

	config.Cache.Enabled = true
	config.Cache.ShortTTL = "120s"
	config.Cache.LongTTL = "300s"

	config.Throttle.Enabled = true
	config.Throttle.AnonSustained = "1000/day"
	config.Throttle.AnonBurst = "60/min"
	config.Throttle.UserSustained = "10000/day"
	config.Throttle.UserBurst = "120/min"

	config.Search.Enabled = false
	config.Search.Addresses = "http://localhost:9200"
	config.Search.Index = "jobs"

	config.Seed.CreatorUserID = 1
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT access token expiration":  config.JWT.AccessTokenExpiration,
		"JWT refresh token expiration": config.JWT.RefreshTokenExpiration,
		"database conn max lifetime":   config.Database.ConnMaxLifetime,
		"cache short ttl":              config.Cache.ShortTTL,
		"cache long ttl":               config.Cache.LongTTL,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	rates := map[string]string{
		"anon_sustained": config.Throttle.AnonSustained,
		"anon_burst":     config.Throttle.AnonBurst,
		"user_sustained": config.Throttle.UserSustained,
		"user_burst":     config.Throttle.UserBurst,
	}
	for scope, value := range rates {
		if _, err := ParseRate(value); err != nil {
			return fmt.Errorf("invalid throttle rate for %s: %w", scope, err)
		}
	}

	if config.Search.Enabled && len(config.SearchAddresses()) == 0 {
		return fmt.Errorf("search addresses are required when search is enabled")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		net.JoinHostPort(c.Database.Host, c.Database.Port),
		c.Database.DBName,
		sslMode,
	)
}

// SearchAddresses splits the comma separated list of search node URLs.
func (c *Config) SearchAddresses() []string {
	var out []string
	for _, addr := range strings.Split(c.Search.Addresses, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// Rate is a parsed throttle rate such as "60/min".
type Rate struct {
	Requests int
	Period   time.Duration
}

// ParseRate parses "<num>/<period>" where period is one of s, m, h, d
// (or any word starting with those letters, e.g. "sec", "minute", "day").
func ParseRate(value string) (Rate, error) {
	num, period, ok := strings.Cut(strings.TrimSpace(value), "/")
	if !ok {
		return Rate{}, fmt.Errorf("rate %q must look like <num>/<period>", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || requests <= 0 {
		return Rate{}, fmt.Errorf("rate %q has an invalid request count", value)
	}

	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		return Rate{}, fmt.Errorf("rate %q has an empty period", value)
	}

	var d time.Duration
	switch period[0] {
	case 's':
		d = time.Second
	case 'm':
		d = time.Minute
	case 'h':
		d = time.Hour
	case 'd':
		d = 24 * time.Hour
	default:
		return Rate{}, fmt.Errorf("rate %q has an unknown period", value)
	}

	return Rate{Requests: requests, Period: d}, nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
