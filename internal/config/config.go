package config

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/spf13/viper"
)

// Режимы отображения ошибок обработчиков в HTTP-статусы
const (
	// ErrorModeCompat - любая ошибка обработчика превращается в 422
	ErrorModeCompat = "compat"
	// ErrorModeTyped - статус зависит от типа ошибки (404/400/422/500)
	ErrorModeTyped = "typed"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	API       APIConfig `mapstructure:"api"`
	Redis     RedisConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL.
// URL, если задан, имеет приоритет над отдельными полями.
type DatabaseConfig struct {
	URL            string `mapstructure:"url"`
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrateOnStart bool   `mapstructure:"migrate_on_start"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// APIConfig содержит настройки поведения API
type APIConfig struct {
	// ErrorMode: "compat" или "typed"
	ErrorMode string `mapstructure:"error_mode"`
}

// RedisConfig содержит настройки подключения к Redis (используется только rate limiter'ом)
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig содержит настройки ограничения частоты запросов по IP
type RateLimitConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxRequests int  `mapstructure:"max_requests"`
	WindowSec   int  `mapstructure:"window_sec"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// MigrationURL формирует URL подключения в формате, который понимает golang-migrate
func (d *DatabaseConfig) MigrationURL() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "5000")
	vip.SetDefault("server.readTimeout", 15)
	vip.SetDefault("server.writeTimeout", 15)
	vip.SetDefault("database.host", "localhost")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.user", "postgres")
	vip.SetDefault("database.dbname", "trivia")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.migrate_on_start", true)
	vip.SetDefault("database.migrations_path", "file://migrations")
	vip.SetDefault("api.error_mode", ErrorModeCompat)
	vip.SetDefault("rate_limit.enabled", false)
	vip.SetDefault("rate_limit.max_requests", 120)
	vip.SetDefault("rate_limit.window_sec", 60)

	// 2. Привязываем переменные окружения явно
	vip.BindEnv("server.port", "SERVER_PORT")

	vip.BindEnv("database.url", "DATABASE_URL")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.migrate_on_start", "DATABASE_MIGRATE_ON_START")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	vip.BindEnv("api.error_mode", "API_ERROR_MODE")

	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")

	vip.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window_sec", "RATE_LIMIT_WINDOW_SEC")

	// 3. Файл конфигурации необязателен: без него работают env и значения по умолчанию
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
				log.Printf("[Config] Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("[Config] Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 4. Анмаршалим (Viper объединит значения из файла, env и умолчаний)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("[Config] --- Загруженные значения конфигурации ---")
		log.Printf("[Config] Database URL Set: %t", cfg.Database.URL != "")
		log.Printf("[Config] Database Host: %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		log.Printf("[Config] Migrate On Start: %t", cfg.Database.MigrateOnStart)
		log.Printf("[Config] API Error Mode: %s", cfg.API.ErrorMode)
		log.Printf("[Config] Rate Limit Enabled: %t", cfg.RateLimit.Enabled)
		log.Printf("[Config] Server Port: %s", cfg.Server.Port)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "") {
		return fmt.Errorf("database configuration is incomplete (set DATABASE_URL or DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER)")
	}
	switch c.API.ErrorMode {
	case ErrorModeCompat, ErrorModeTyped:
	default:
		return fmt.Errorf("unsupported api.error_mode %q (expected %q or %q)", c.API.ErrorMode, ErrorModeCompat, ErrorModeTyped)
	}
	if c.RateLimit.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("rate limiting requires redis.addr (check REDIS_ADDR env var)")
		}
		if c.RateLimit.MaxRequests < 1 || c.RateLimit.WindowSec < 1 {
			return fmt.Errorf("rate_limit.max_requests and rate_limit.window_sec must be positive")
		}
	}
	return nil
}
