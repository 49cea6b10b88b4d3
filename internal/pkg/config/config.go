package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, limits)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
	Checkout  CheckoutConfig
	Locale    LocaleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Proxy addresses or CIDRs allowed to set X-Forwarded-For. Empty means
	// the client IP is always the socket peer.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Europe/Istanbul"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns    int32  `envconfig:"DB_MIN_CONNS" default:"2"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Prefix   string `envconfig:"REDIS_KEY_PREFIX" default:"sandals"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Accept-Language,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Istanbul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
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

type RateLimitConfig struct {
	CouponValidatePerWindow int           `envconfig:"RATE_LIMIT_COUPON_VALIDATE" default:"10"`
	LoginPerWindow          int           `envconfig:"RATE_LIMIT_LOGIN" default:"5"`
	Window                  time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

type CheckoutConfig struct {
	PersistTTL time.Duration `envconfig:"CHECKOUT_PERSIST_TTL" default:"720h"`
	SessionTTL time.Duration `envconfig:"CHECKOUT_SESSION_TTL" default:"2h"`
}

type LocaleConfig struct {
	Default string `envconfig:"LOCALE_DEFAULT" default:"tr"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode, url.QueryEscape(c.TimeZone),
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

const minJWTSecretLength = 16

// Validate catches combinations envconfig cannot express with tags.
func (c Config) Validate() error {
	var problems []string
	if len(c.JWT.Secret) < minJWTSecretLength {
		problems = append(problems, fmt.Sprintf("JWT_SECRET must be at least %d characters", minJWTSecretLength))
	}
	if c.RateLimit.Window <= 0 || c.RateLimit.LoginPerWindow <= 0 || c.RateLimit.CouponValidatePerWindow <= 0 {
		problems = append(problems, "rate limits and RATE_LIMIT_WINDOW must be positive")
	}
	if c.Checkout.SessionTTL <= 0 || c.Checkout.PersistTTL < c.Checkout.SessionTTL {
		problems = append(problems, "CHECKOUT_SESSION_TTL must be positive and not exceed CHECKOUT_PERSIST_TTL")
	}
	if c.Locale.Default != "tr" && c.Locale.Default != "en" {
		problems = append(problems, fmt.Sprintf("LOCALE_DEFAULT %q is not supported", c.Locale.Default))
	}
	if c.DB.MinConns > c.DB.MaxConns {
		problems = append(problems, "DB_MIN_CONNS exceeds DB_MAX_CONNS")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Istanbul",
			MaxConns: 10,
			MinConns: 1,
		},
		Redis: RedisConfig{
			Addr:   "localhost:16379",
			Prefix: "sandals-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Istanbul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		RateLimit: RateLimitConfig{
			CouponValidatePerWindow: 1000,
			LoginPerWindow:          1000,
			Window:                  time.Minute,
		},
		Checkout: CheckoutConfig{
			PersistTTL: 24 * time.Hour,
			SessionTTL: time.Hour,
		},
		Locale: LocaleConfig{
			Default: "tr",
		},
	}
}
