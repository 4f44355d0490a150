package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (timezone, cookie name, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Storage   StorageConfig
	Booking   BookingConfig
	CORS      CORSConfig
	Log       LogConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL string `envconfig:"BACKEND_BASE_URL" default:"https://bonane00.pythonanywhere.com"`
	// Zero means no client-side timeout; the request context is the only deadline.
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"0s"`
}

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StorageRedis    StorageDriver = "redis"
	StoragePostgres StorageDriver = "postgres"
)

type StorageConfig struct {
	Driver        StorageDriver `envconfig:"STORAGE_DRIVER" default:"memory"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	DB            DBConfig
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"storefront"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"storefront"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Kigali"`
}

type BookingMode string

const (
	// BookingRemote treats the backend as the source of truth; the local list is an offline cache.
	BookingRemote BookingMode = "remote"
	// BookingLocal keeps bookings in storage only and uses the slot registry for conflicts.
	BookingLocal BookingMode = "local"
)

type BookingConfig struct {
	Mode BookingMode `envconfig:"BOOKING_MODE" default:"remote"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Kigali"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type CookieConfig struct {
	Name     string        `envconfig:"COOKIE_NAME" default:"bv_client"`
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	MaxAge   time.Duration `envconfig:"COOKIE_MAX_AGE" default:"720h"`
}

type RateLimitConfig struct {
	Enabled bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Burst   int           `envconfig:"RATE_LIMIT_BURST" default:"60"`
	Every   time.Duration `envconfig:"RATE_LIMIT_EVERY" default:"500ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (m BookingMode) IsValid() bool {
	return m == BookingRemote || m == BookingLocal
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if !cfg.Booking.Mode.IsValid() {
		return Config{}, fmt.Errorf("invalid BOOKING_MODE %q", cfg.Booking.Mode)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://backend.test",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Booking: BookingConfig{
			Mode: BookingRemote,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Kigali",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Cookie: CookieConfig{
			Name:     "bv_client",
			SameSite: "Lax",
			MaxAge:   time.Hour,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
	}
}
