package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	DataSourceSheets   = "sheets"
	DataSourceWorkbook = "workbook"

	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

type Config struct {
	App        AppConfig
	DataSource DataSourceConfig
	Admin      AdminConfig
	JWT        JWTConfig
	Session    SessionConfig
	Database   DatabaseConfig
	Storage    StorageConfig
	CORS       CORSConfig
	Jobs       JobsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Version  string
	Port     int
	Env      string
	LogLevel string
}

// DataSourceConfig selects where payroll data is read from.
type DataSourceConfig struct {
	Type         string
	SheetsURL    string
	Timeout      time.Duration
	Timezone     string
	WorkbookPath string
}

// AdminConfig holds the bcrypt hash used when the data source cannot verify logins itself.
type AdminConfig struct {
	PasswordHash string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
	SecureCookie   bool
}

type SessionConfig struct {
	Store string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
}

type StorageConfig struct {
	Enabled  bool
	BasePath string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type JobsConfig struct {
	SessionCleanupInterval time.Duration
	DataRefreshInterval    time.Duration
	ReportPurgeInterval    time.Duration
	ReportRetention        time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded, using process environment", "error", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment.
func FromEnv() (*Config, error) {
	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "navnirman-admin"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	timeout, err := getEnvDuration("SHEETS_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	config.DataSource = DataSourceConfig{
		Type:         getEnv("DATA_SOURCE", DataSourceSheets),
		SheetsURL:    getEnv("SHEETS_URL", ""),
		Timeout:      timeout,
		Timezone:     getEnv("SHEETS_TIMEZONE", "Asia/Kolkata"),
		WorkbookPath: getEnv("WORKBOOK_PATH", ""),
	}

	config.Admin = AdminConfig{
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	accessTTL, err := getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", "12h")
	if err != nil {
		return nil, err
	}
	secureCookie, err := strconv.ParseBool(getEnv("JWT_SECURE_COOKIE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_SECURE_COOKIE: %w", err)
	}
	config.JWT = JWTConfig{
		Secret:         getEnv("JWT_SECRET_KEY", ""),
		AccessTokenTTL: accessTTL,
		SecureCookie:   secureCookie,
	}

	config.Session = SessionConfig{
		Store: getEnv("SESSION_STORE", SessionStoreMemory),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "navnirman_admin"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "1"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	config.Database.MaxConns = int32(maxConns)
	config.Database.MinConns = int32(minConns)
	if config.Database.ConnectTimeout, err = getEnvDuration("DB_CONNECT_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	storageEnabled, err := strconv.ParseBool(getEnv("REPORT_ARCHIVE_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_ARCHIVE_ENABLED: %w", err)
	}
	config.Storage = StorageConfig{
		Enabled:  storageEnabled,
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	if config.Jobs.SessionCleanupInterval, err = getEnvDuration("JOB_SESSION_CLEANUP_INTERVAL", "1h"); err != nil {
		return nil, err
	}
	if config.Jobs.DataRefreshInterval, err = getEnvDuration("JOB_DATA_REFRESH_INTERVAL", "0"); err != nil {
		return nil, err
	}
	if config.Jobs.ReportPurgeInterval, err = getEnvDuration("JOB_REPORT_PURGE_INTERVAL", "24h"); err != nil {
		return nil, err
	}
	if config.Jobs.ReportRetention, err = getEnvDuration("REPORT_RETENTION", "720h"); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if c.JWT.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_EXPIRATION_TIME must be positive"))
	}

	switch c.DataSource.Type {
	case DataSourceSheets:
		if c.DataSource.SheetsURL == "" {
			errs = append(errs, errors.New("SHEETS_URL is required for the sheets data source"))
		}
	case DataSourceWorkbook:
		if c.DataSource.WorkbookPath == "" {
			errs = append(errs, errors.New("WORKBOOK_PATH is required for the workbook data source"))
		}
		if c.Admin.PasswordHash == "" {
			errs = append(errs, errors.New("ADMIN_PASSWORD_HASH is required for the workbook data source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DATA_SOURCE %q", c.DataSource.Type))
	}
	if _, err := time.LoadLocation(c.DataSource.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid SHEETS_TIMEZONE: %w", err))
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if c.Database.Password == "" {
			errs = append(errs, errors.New("DB_PASSWORD is required for the postgres session store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported SESSION_STORE %q", c.Session.Store))
	}

	return errors.Join(errs...)
}

// Location returns the timezone sheet dates are interpreted in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DataSource.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
