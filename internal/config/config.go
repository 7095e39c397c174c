package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация содержит недопустимые значения
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Драйверы базы данных
const (
	DriverPostgres = "postgres" // lib/pq
	DriverPgx      = "pgx"      // jackc/pgx/v5/stdlib
)

// Бэкенды блокировок
const (
	LockBackendPostgres = "postgres"
	LockBackendRedis    = "redis"
	LockBackendLocal    = "local"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Jobs     JobsConfig     `toml:"jobs"`
	Locks    LocksConfig    `toml:"locks"`
	Notifier NotifierConfig `toml:"notifier"`
	Security SecurityConfig `toml:"security"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
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

// DSN строка подключения в формате key=value, понятна lib/pq и pgx
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// BusinessConfig параметры бизнеса
type BusinessConfig struct {
	Timezone      string `toml:"timezone"`
	HorizonMonths int    `toml:"horizon_months"`
}

// Location часовой пояс бизнеса
func (b BusinessConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalidConfig, b.Timezone, err)
	}
	return loc, nil
}

// JobsConfig фоновые задачи
type JobsConfig struct {
	Enabled            bool   `toml:"enabled"`
	CompletionInterval int    `toml:"completion_interval"` // секунды
	ReminderTime       string `toml:"reminder_time"`       // HH:MM
}

// ReminderAt час и минута ежедневной рассылки напоминаний
func (j JobsConfig) ReminderAt() (hour, minute int, err error) {
	ts, err := types.NewTimeStringFromString(j.ReminderTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: reminder_time: %w", ErrInvalidConfig, err)
	}
	total, err := ts.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: reminder_time: %w", ErrInvalidConfig, err)
	}
	return total / 60, total % 60, nil
}

// LocksConfig блокировки проверок с последующей записью
type LocksConfig struct {
	Backend        string `toml:"backend"`
	RedisAddr      string `toml:"redis_addr"`
	RedisPassword  string `toml:"redis_password"`
	RedisDB        int    `toml:"redis_db"`
	TTL            int    `toml:"ttl"`             // секунды
	AcquireTimeout int    `toml:"acquire_timeout"` // секунды
}

// NotifierConfig транспорт писем клиентам
type NotifierConfig struct {
	Transport    string   `toml:"transport"`
	From         string   `toml:"from"`
	SMTPHost     string   `toml:"smtp_host"`
	SMTPPort     int      `toml:"smtp_port"`
	SMTPUsername string   `toml:"smtp_username"`
	SMTPPassword string   `toml:"smtp_password"`
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`
}

// SecurityConfig параметры хеширования паролей
type SecurityConfig struct {
	BcryptCost int `toml:"bcrypt_cost"`
}

// SeedConfig начальные данные. Пустой file - встроенные данные по умолчанию.
type SeedConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

// Load читает конфигурацию из TOML файла.
// Если рядом есть .env, он загружается до чтения; переменные окружения перекрывают значения файла.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setInt(&c.Server.HTTPPort, "HTTP_PORT")
	setString(&c.Logs.Level, "LOG_LEVEL")
	setString(&c.Locks.RedisAddr, "REDIS_ADDR")
	setString(&c.Locks.RedisPassword, "REDIS_PASSWORD")
	setString(&c.Notifier.SMTPPassword, "SMTP_PASSWORD")

	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok && v != "" {
		c.Notifier.KafkaBrokers = splitList(v)
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "scheduler_service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Business.Timezone == "" {
		c.Business.Timezone = "UTC"
	}
	if c.Business.HorizonMonths == 0 {
		c.Business.HorizonMonths = 1
	}

	if c.Jobs.CompletionInterval == 0 {
		c.Jobs.CompletionInterval = 60
	}
	if c.Jobs.ReminderTime == "" {
		c.Jobs.ReminderTime = "07:00"
	}

	if c.Locks.Backend == "" {
		c.Locks.Backend = LockBackendPostgres
	}
	if c.Locks.TTL == 0 {
		c.Locks.TTL = 30
	}
	if c.Locks.AcquireTimeout == 0 {
		c.Locks.AcquireTimeout = 5
	}

	if c.Notifier.Transport == "" {
		c.Notifier.Transport = "log"
	}
}

// Validate проверяет значения после применения значений по умолчанию
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be between 1 and 65535")
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverPgx {
		problems = append(problems, fmt.Sprintf("database.driver must be %q or %q", DriverPostgres, DriverPgx))
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Business.HorizonMonths < 1 {
		problems = append(problems, "business.horizon_months must be positive")
	}
	if _, err := c.Business.Location(); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Jobs.CompletionInterval < 1 {
		problems = append(problems, "jobs.completion_interval must be positive")
	}
	if _, _, err := c.Jobs.ReminderAt(); err != nil {
		problems = append(problems, err.Error())
	}

	switch c.Locks.Backend {
	case LockBackendPostgres, LockBackendLocal:
	case LockBackendRedis:
		if c.Locks.RedisAddr == "" {
			problems = append(problems, "locks.redis_addr is required for redis backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("locks.backend %q is unknown", c.Locks.Backend))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
