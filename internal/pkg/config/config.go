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
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	App     AppConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Billing BillingConfig
	Storage StorageConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	// reservation date/time input is interpreted in this zone
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Tokyo"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BillingConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	PriceID   string `envconfig:"STRIPE_PRICE_ID" required:"true"`
	// overrides the API base URL (stripe-mock, tests)
	APIBaseURL string  `envconfig:"STRIPE_API_BASE_URL" default:""`
	RatePerSec float64 `envconfig:"STRIPE_RATE_PER_SEC" default:"20"`
	Burst      int     `envconfig:"STRIPE_RATE_BURST" default:"5"`
}

type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:""`
	Region          string `envconfig:"STORAGE_REGION" default:"auto"`
	Bucket          string `envconfig:"STORAGE_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_ACCESS_KEY" required:"true"`
	KeyPrefix       string `envconfig:"STORAGE_KEY_PREFIX" default:"restaurants/"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// LoadConfig reads .env (when present) and then the process environment.
// Variables already set in the environment win over .env values.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			TimeZone: "Asia/Tokyo",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Billing: BillingConfig{
			SecretKey:  "sk_test_dummy",
			PriceID:    "price_test_premium",
			RatePerSec: 100,
			Burst:      10,
		},
		Storage: StorageConfig{
			Region:          "auto",
			Bucket:          "test-bucket",
			AccessKeyID:     "test",
			SecretAccessKey: "test",
			KeyPrefix:       "restaurants/",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
	}
}
