package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Admin    AdminConfig    `toml:"admin"`
	Business BusinessConfig `toml:"business"`
	Jobs     JobsConfig     `toml:"jobs"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RedisConfig настройки Redis (кеш доступности + сигнал обновления планинга).
// При Enabled=false сервис работает только с in-memory кешем.
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// AdminConfig настройки доступа к админским ручкам
type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// BusinessConfig бизнес-параметры
type BusinessConfig struct {
	// Timezone местная зона бизнеса для проверки минимального времени
	// до отправления "сегодня" (например "Europe/Paris")
	Timezone string `toml:"timezone"`

	AvailabilityTTLSeconds int `toml:"availability_ttl_seconds"`
	BoatsTTLSeconds        int `toml:"boats_ttl_seconds"`
	HoldTTLMinutes         int `toml:"hold_ttl_minutes"`
}

// JobsConfig настройки фоновых задач
type JobsConfig struct {
	// HoldExpirySchedule cron-выражение запуска снятия просроченных холдов
	HoldExpirySchedule string `toml:"hold_expiry_schedule"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "boat-booking"
	}
	if cfg.Business.Timezone == "" {
		cfg.Business.Timezone = "Europe/Paris"
	}
	if cfg.Business.AvailabilityTTLSeconds == 0 {
		cfg.Business.AvailabilityTTLSeconds = 90
	}
	if cfg.Business.BoatsTTLSeconds == 0 {
		cfg.Business.BoatsTTLSeconds = 300
	}
	if cfg.Business.HoldTTLMinutes == 0 {
		cfg.Business.HoldTTLMinutes = 30
	}
	if cfg.Jobs.HoldExpirySchedule == "" {
		cfg.Jobs.HoldExpirySchedule = "* * * * *" // каждую минуту
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis is enabled")
	}
	if cfg.Admin.APIKey == "" {
		return fmt.Errorf("config: admin.api_key is required")
	}
	return nil
}
