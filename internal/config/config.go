package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
	// База часовых поясов в бинарнике: образы без zoneinfo тоже знают Europe/Copenhagen
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Tracing   TracingConfig   `toml:"tracing"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Notifier  NotifierConfig  `toml:"notifier"`
	Catalog   CatalogConfig   `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | sqlite
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл SQLite
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TracingConfig настройки OpenTelemetry
type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	Timezone             string `toml:"timezone"`
	DefaultCountryPrefix string `toml:"default_country_prefix"`
}

// Location часовой пояс салона
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// RateLimitConfig ограничение частоты бронирований
type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Limit         int    `toml:"limit"`
	WindowSeconds int    `toml:"window_seconds"`
	FailOpen      bool   `toml:"fail_open"`
}

// NotifierConfig доставка уведомлений о бронировании
type NotifierConfig struct {
	FunctionURL    string   `toml:"function_url"`
	FunctionKey    string   `toml:"function_key"`
	Timeout        int      `toml:"timeout"`
	KafkaBrokers   []string `toml:"kafka_brokers"`
	KafkaTopic     string   `toml:"kafka_topic"`
	DispatchBuffer int      `toml:"dispatch_buffer"`
}

// CatalogConfig каталог услуг
type CatalogConfig struct {
	Path string `toml:"path"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barbershop",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barbershop-booking",
		},
		Tracing: TracingConfig{
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
		Booking: BookingConfig{
			Timezone:             "Europe/Copenhagen",
			DefaultCountryPrefix: "+45",
		},
		RateLimit: RateLimitConfig{
			RedisAddr:     "localhost:6379",
			Limit:         10,
			WindowSeconds: 60,
			FailOpen:      true,
		},
		Notifier: NotifierConfig{
			Timeout:        10,
			KafkaTopic:     "booking.confirmed",
			DispatchBuffer: 64,
		},
		Catalog: CatalogConfig{
			Path: "services.json",
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию.
// Пароль БД можно переопределить переменной DATABASE_PASSWORD.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if pwd := os.Getenv("DATABASE_PASSWORD"); pwd != "" {
		cfg.Database.Password = pwd
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres")
		}
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database.path is required for sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}

	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}

	if !strings.HasPrefix(c.Booking.DefaultCountryPrefix, "+") {
		problems = append(problems, "booking.default_country_prefix must start with '+'")
	}

	if c.RateLimit.Enabled && c.RateLimit.RedisAddr == "" {
		problems = append(problems, "ratelimit.redis_addr is required when rate limiting is enabled")
	}

	if len(c.Notifier.KafkaBrokers) > 0 && c.Notifier.KafkaTopic == "" {
		problems = append(problems, "notifier.kafka_topic is required when kafka_brokers are set")
	}

	if c.Catalog.Path == "" {
		problems = append(problems, "catalog.path is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}
