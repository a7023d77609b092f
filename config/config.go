package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StoreNone     = "none"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	FrontendURL string `env:"FRONTEND_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"none"`
	Postgres     PostgresConfig
	Mongo        MongoConfig
	Redis        RedisConfig

	Amadeus       AmadeusConfig
	AviationStack AviationStackConfig
	Booking       BookingAPIConfig

	SourceTimeout      time.Duration `env:"SOURCE_TIMEOUT" envDefault:"8s"`
	QuoteCacheTTL      time.Duration `env:"QUOTE_CACHE_TTL" envDefault:"10m"`
	AvailabilityDelay  time.Duration `env:"AVAILABILITY_MOCK_DELAY" envDefault:"1500ms"`
	RateLimitPerSecond float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"10"`

	MapProvider      string `env:"MAP_PROVIDER" envDefault:"osm"`
	GoogleMapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`
	PublicBaseURL    string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For. Empty
	// means client IPs come from the socket only.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// PprofAddr starts a separate profiling listener when set, e.g. ":6060".
	PprofAddr string `env:"PPROF_ADDR"`
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"vacationplanner"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN prefers DATABASE_URL and falls back to the individual settings.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type MongoConfig struct {
	URI        string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database   string `env:"MONGODB_DATABASE" envDefault:"vacationplanner"`
	Collection string `env:"MONGODB_COLLECTION" envDefault:"trips"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"PLAN_CACHE_TTL" envDefault:"30m"`
}

type AmadeusConfig struct {
	ClientID     string `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET"`
	Env          string `env:"AMADEUS_ENV" envDefault:"test"`
}

func (c AmadeusConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// BaseURL points at the free test environment unless AMADEUS_ENV=production.
func (c AmadeusConfig) BaseURL() string {
	if c.Env == "production" || c.Env == "prod" {
		return "https://api.amadeus.com"
	}
	return "https://test.api.amadeus.com"
}

type AviationStackConfig struct {
	APIKey  string `env:"AVIATIONSTACK_API_KEY"`
	BaseURL string `env:"AVIATIONSTACK_BASE_URL" envDefault:"http://api.aviationstack.com/v1"`
}

type BookingAPIConfig struct {
	APIKey  string `env:"BOOKING_API_KEY"`
	Host    string `env:"BOOKING_API_HOST" envDefault:"booking-com.p.rapidapi.com"`
	BaseURL string `env:"BOOKING_API_BASE_URL" envDefault:"https://booking-com.p.rapidapi.com"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	switch cfg.StoreBackend {
	case "":
		cfg.StoreBackend = StoreNone
	case StoreNone, StorePostgres, StoreMongo:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}

// AllowedOrigins always includes the local dev frontends.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(c.FrontendURL, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}
