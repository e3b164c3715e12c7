package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Storage   StorageConfig
	NATS      NATSConfig
	Twilio    TwilioConfig
	Sentry    SentryConfig
	Tracing   TracingConfig
	RateLimit RateLimitConfig
	Site      SiteConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	Environment    string
	ServiceName    string
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int      // seconds, applied to API routes
	CORSOrigins    []string // allowed origins
	MaxBodyMB      int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
	MinConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in hours
	CookieName string
}

// AuthConfig holds back-office login configuration
type AuthConfig struct {
	GoogleClientID     string
	AuthorizedEmails   []string // always allowed, never counted against MaxAuthorizedUsers
	MaxAuthorizedUsers int      // e-mails that may self-register on first login
	DevBypass          bool
	MockEmail          string
	MockName           string
}

// StorageConfig holds object storage configuration for property photos
type StorageConfig struct {
	Provider     string // s3 or local
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	BaseURL      string
	LocalPath    string
	MaxFileMB    int
	AllowedTypes []string
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL     string
	Enabled bool
}

// TwilioConfig holds Twilio SMS configuration
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	FromNumber  string
	BrokerPhone string
	Enabled     bool
}

// SentryConfig holds Sentry configuration
type SentryConfig struct {
	DSN        string
	SampleRate float64
}

// TracingConfig holds OpenTelemetry configuration
type TracingConfig struct {
	Endpoint string
	Enabled  bool
}

// RateLimitConfig throttles the public write endpoints (contact form, login)
type RateLimitConfig struct {
	Enabled       bool
	Limit         int // requests per window and client IP
	WindowSeconds int
	RedisPrefix   string
}

// Window returns the configured window, defaulting to one minute
func (c RateLimitConfig) Window() time.Duration {
	if c.WindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.WindowSeconds) * time.Second
}

// SiteConfig holds the broker's public details shown on the storefront
type SiteConfig struct {
	BrokerName      string
	Creci           string
	Phone           string
	WhatsApp        string
	Email           string
	Instagram       string
	Facebook        string
	LinkedIn        string
	Address         string
	MapEmbedURL     string
	PhotoURL        string
	LogoURL         string
	HeroImages      []string
	DefaultLanguage string
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			ServiceName:    serviceName,
			ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 30),
			RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT", 20),
			CORSOrigins:    getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
			MaxBodyMB:      getEnvAsInt("MAX_BODY_MB", 64),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "realty"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", defaultJWTSecret),
			Expiration: getEnvAsInt("JWT_EXPIRATION", 12),
			CookieName: getEnv("SESSION_COOKIE", "realty_session"),
		},
		Auth: AuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			AuthorizedEmails:   getEnvAsSlice("AUTHORIZED_EMAILS", nil),
			MaxAuthorizedUsers: getEnvAsInt("MAX_AUTHORIZED_USERS", 2),
			DevBypass:          getEnvAsBool("AUTH_DEV_BYPASS", false),
			MockEmail:          getEnv("AUTH_MOCK_EMAIL", "corretor@example.com"),
			MockName:           getEnv("AUTH_MOCK_NAME", "Corretor"),
		},
		Storage: StorageConfig{
			Provider:     getEnv("STORAGE_PROVIDER", "local"),
			Bucket:       getEnv("STORAGE_BUCKET", "realty-photos"),
			Region:       getEnv("STORAGE_REGION", "sa-east-1"),
			Endpoint:     getEnv("STORAGE_ENDPOINT", ""),
			AccessKey:    getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:    getEnv("STORAGE_SECRET_KEY", ""),
			BaseURL:      getEnv("STORAGE_BASE_URL", "/media"),
			LocalPath:    getEnv("STORAGE_LOCAL_PATH", "./data/media"),
			MaxFileMB:    getEnvAsInt("STORAGE_MAX_FILE_MB", 8),
			AllowedTypes: getEnvAsSlice("STORAGE_ALLOWED_TYPES", []string{"image/jpeg", "image/png", "image/webp", "image/gif"}),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Enabled: getEnvAsBool("NATS_ENABLED", false),
		},
		Twilio: TwilioConfig{
			AccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber:  getEnv("TWILIO_FROM_NUMBER", ""),
			BrokerPhone: getEnv("BROKER_SMS_NUMBER", "+5511991866739"),
			Enabled:     getEnvAsBool("TWILIO_ENABLED", false),
		},
		Sentry: SentryConfig{
			DSN:        getEnv("SENTRY_DSN", ""),
			SampleRate: getEnvAsFloat("SENTRY_SAMPLE_RATE", 1.0),
		},
		Tracing: TracingConfig{
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Enabled:  getEnvAsBool("TRACING_ENABLED", false),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", true),
			Limit:         getEnvAsInt("RATE_LIMIT_REQUESTS", 10),
			WindowSeconds: getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60),
			RedisPrefix:   getEnv("RATE_LIMIT_PREFIX", "rl"),
		},
		Site: SiteConfig{
			BrokerName:  getEnv("SITE_BROKER_NAME", "Leandro Buscarioli Colares"),
			Creci:       getEnv("SITE_CRECI", "CRECI-SP 283775F"),
			Phone:       getEnv("SITE_PHONE", "(11) 99186-6739"),
			WhatsApp:    getEnv("SITE_WHATSAPP", "5511991866739"),
			Email:       getEnv("SITE_EMAIL", "consultorimobiliarioleco@gmail.com"),
			Instagram:   getEnv("SITE_INSTAGRAM", "lecocorretor"),
			Facebook:    getEnv("SITE_FACEBOOK", "corretorleco"),
			LinkedIn:    getEnv("SITE_LINKEDIN", "leandro-buscarioli"),
			Address:     getEnv("SITE_ADDRESS", "Rua Pacaembu, 297 - Bairro Pauliceia, São Bernardo do Campo, SP, CEP 09692-040, Brasil"),
			MapEmbedURL: getEnv("SITE_MAP_URL", "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3654.695353177372!2d-46.56847868444317!3d-23.651064971617804"),
			PhotoURL:    getEnv("SITE_PHOTO_URL", "https://i.postimg.cc/fL7DVp0V/5cd14779-cfd8-48ef-b5b4-b710f606f6a9.jpg"),
			LogoURL:     getEnv("SITE_LOGO_URL", "https://i.postimg.cc/1znGLc6T/LOGO-LEANDRO.png"),
			HeroImages: getEnvAsSlice("SITE_HERO_IMAGES", []string{
				"https://i.postimg.cc/Vv9Td2sV/6e7e5047-6cb8-44ec-9223-55d354d7eb6e.jpg",
				"https://i.postimg.cc/qqcYzWBZ/93ebed18-1f23-47df-8ec9-f4727215f637.jpg",
				"https://i.postimg.cc/vT7jcC8C/96ce8d25-2383-4ff3-aae8-d256ce292b38.jpg",
				"https://i.postimg.cc/5y5G6D9G/a8f8fe57-1f30-43ac-b6df-55b068365447.jpg",
				"https://i.postimg.cc/66CFj4V2/f16ad66f-5aa9-4348-b63f-6a9127bee08d.jpg",
			}),
			DefaultLanguage: getEnv("SITE_DEFAULT_LANGUAGE", "pt"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// BypassAuth reports whether logins are replaced by the mock admin.
// Only honoured outside production.
func (c *Config) BypassAuth() bool {
	return c.Auth.DevBypass && c.Server.Environment == "development"
}

// Validate checks settings that would make the service unsafe or unusable
func (c *Config) Validate() error {
	var errs []error
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if c.IsProduction() && c.Auth.DevBypass {
		errs = append(errs, errors.New("AUTH_DEV_BYPASS cannot be enabled in production"))
	}
	if !c.BypassAuth() && c.Auth.GoogleClientID == "" {
		errs = append(errs, errors.New("GOOGLE_CLIENT_ID is required unless AUTH_DEV_BYPASS is on"))
	}
	if c.Auth.MaxAuthorizedUsers < 0 {
		errs = append(errs, errors.New("MAX_AUTHORIZED_USERS cannot be negative"))
	}
	switch c.Storage.Provider {
	case "s3", "local":
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_PROVIDER %q", c.Storage.Provider))
	}
	return errors.Join(errs...)
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// URL returns the database connection string in URL form, as migrate expects
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated variable, dropping blanks
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
