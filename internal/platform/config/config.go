package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Deployment profiles selectable through APP_ENVIRONMENT.
const (
	ProfileLocal = "LOCAL"
	ProfileDev   = "DEV"
	ProfileQA    = "QA"
	ProfileProd  = "PROD"
)

var knownProfiles = map[string]bool{
	ProfileLocal: true,
	ProfileDev:   true,
	ProfileQA:    true,
	ProfileProd:  true,
}

// DatabaseProfile holds the connection settings of one deployment profile.
type DatabaseProfile struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// URL renders the profile as a postgres connection URL.
func (p DatabaseProfile) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Name,
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}
	return u.String()
}

// Config holds application configuration.
type Config struct {
	Environment     string
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	RunMigrations   bool
	RateLimit       string // ulule formatted rate, e.g. "100-S"; empty disables limiting
	DBMaxConns      int32
	ShutdownTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENVIRONMENT", ProfileDev)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("RATE_LIMIT", "100-S")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	for profile := range knownProfiles {
		prefix := "DATABASE." + profile + "."
		v.SetDefault(prefix+"HOST", "localhost")
		v.SetDefault(prefix+"USER", "postgres")
		v.SetDefault(prefix+"PASSWORD", "")
		v.SetDefault(prefix+"NAME", "postgres")
		v.SetDefault(prefix+"PORT", "5432")
		v.SetDefault(prefix+"SSLMODE", "disable")
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	// DATABASE.DEV.HOST is read from DATABASE_DEV_HOST
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// An empty RATE_LIMIT must reach us to disable limiting.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		Environment:   strings.ToUpper(strings.TrimSpace(v.GetString("APP_ENVIRONMENT"))),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		RateLimit:     strings.TrimSpace(v.GetString("RATE_LIMIT")),
		DBMaxConns:    v.GetInt32("DB_MAX_CONNS"),
	}

	if cfg.Environment == "" {
		cfg.Environment = ProfileDev
	}
	if !knownProfiles[cfg.Environment] {
		return nil, fmt.Errorf("unknown APP_ENVIRONMENT %q: expected one of LOCAL, DEV, QA, PROD", cfg.Environment)
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if strings.TrimSpace(v.GetString("DB_MAX_CONNS")) == "" {
		cfg.DBMaxConns = 10
	}
	if cfg.DBMaxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}

	timeoutStr := v.GetString("SHUTDOWN_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ShutdownTimeout = timeout

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = readProfile(v, cfg.Environment).URL()
	}

	return cfg, nil
}

func readProfile(v *viper.Viper, profile string) DatabaseProfile {
	prefix := "DATABASE." + profile + "."
	return DatabaseProfile{
		Host:     v.GetString(prefix + "HOST"),
		User:     v.GetString(prefix + "USER"),
		Password: v.GetString(prefix + "PASSWORD"),
		Name:     v.GetString(prefix + "NAME"),
		Port:     v.GetString(prefix + "PORT"),
		SSLMode:  v.GetString(prefix + "SSLMODE"),
	}
}
