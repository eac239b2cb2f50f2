package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config menampung seluruh pengaturan aplikasi.
// Urutan sumber: default -> file YAML (CONFIG_FILE) -> environment.
type Config struct {
	Port    string `yaml:"port" envconfig:"PORT"`
	GinMode string `yaml:"gin_mode" envconfig:"GIN_MODE"`

	DBDriver   string `yaml:"db_driver" envconfig:"DB_DRIVER"`
	DBDSN      string `yaml:"db_dsn" envconfig:"DB_DSN"`
	SeedFile   string `yaml:"seed_file" envconfig:"SEED_FILE"`
	SeedTables int    `yaml:"seed_tables" envconfig:"SEED_TABLES"`

	JWTSecret  string        `yaml:"jwt_secret" envconfig:"JWT_SECRET"`
	SessionTTL time.Duration `yaml:"session_ttl" envconfig:"SESSION_TTL"`

	RedisAddr     string        `yaml:"redis_addr" envconfig:"REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db" envconfig:"REDIS_DB"`
	MenuCacheTTL  time.Duration `yaml:"menu_cache_ttl" envconfig:"MENU_CACHE_TTL"`

	AMQPURL      string `yaml:"amqp_url" envconfig:"AMQP_URL"`
	AMQPExchange string `yaml:"amqp_exchange" envconfig:"AMQP_EXCHANGE"`

	StockLowThreshold int `yaml:"stock_low_threshold" envconfig:"STOCK_LOW_THRESHOLD"`

	CORSOrigins    []string `yaml:"cors_origins" envconfig:"CORS_ORIGINS"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST"`

	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`
	StaticDir string `yaml:"static_dir" envconfig:"STATIC_DIR"`
}

// Default -> nilai bawaan untuk development lokal
func Default() Config {
	return Config{
		Port:              "8080",
		GinMode:           "debug",
		DBDriver:          "sqlite",
		DBDSN:             "ranahan.db",
		SeedFile:          "database/seed.sql",
		SeedTables:        10,
		JWTSecret:         "ranahan-dev-secret",
		SessionTTL:        24 * time.Hour,
		MenuCacheTTL:      5 * time.Minute,
		AMQPExchange:      "ranahan.events",
		StockLowThreshold: 20,
		CORSOrigins:       []string{"*"},
		RateLimitRPS:      20,
		RateLimitBurst:    40,
		LogLevel:          "info",
		LogFormat:         "text",
		StaticDir:         "public",
	}
}

// Load membaca .env (jika ada), file YAML opsional, lalu override dari environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.DBDriver) {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.StockLowThreshold < 0 {
		return fmt.Errorf("STOCK_LOW_THRESHOLD must be >= 0")
	}
	return nil
}
