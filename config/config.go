package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Auth
	JWT       JWTConfig
	Password  PasswordConfig
	RateLimit RateLimitConfig

	// HTTP surface
	Features FeaturesConfig
	CORS     CORSConfig

	App AppConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port     int
	Mode     string
	BasePath string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver          string // postgres | sqlite
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	AutoMigrate     bool
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type PasswordConfig struct {
	BcryptCost    int
	MinLength     int
	MaxSimilarity float64
}

type RateLimitConfig struct {
	SignupPerMin int
}

// FeaturesConfig flags are read once at startup.
type FeaturesConfig struct {
	CORSEnabled bool
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

type AppConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process
// environment first. Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.BasePath = v.GetString("http_server.base_path")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(v, v.GetString("database.dsn"))
	if url := v.GetString("database_url"); url != "" {
		cfg.Database.DSN = url
	}
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")
	cfg.Database.LogLevel = v.GetString("database.log_level")
	cfg.Database.AutoMigrate = v.GetBool("database.auto_migrate")

	// Auth
	cfg.JWT.Secret = expandEnvVar(v, v.GetString("jwt.secret"))
	if secret := v.GetString("secret_key"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.AccessTTL = v.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = v.GetDuration("jwt.refresh_ttl")

	cfg.Password.BcryptCost = v.GetInt("password.bcrypt_cost")
	cfg.Password.MinLength = v.GetInt("password.min_length")
	cfg.Password.MaxSimilarity = v.GetFloat64("password.max_similarity")

	cfg.RateLimit.SignupPerMin = v.GetInt("rate_limit.signup_per_min")

	// HTTP surface
	cfg.Features.CORSEnabled = v.GetBool("features.cors_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	}
	cfg.CORS.AllowCredentials = v.GetBool("cors.allow_credentials")

	cfg.App.Timezone = v.GetString("app.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.base_path", "/api")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "inventory.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("jwt.issuer", "inventory-tracker")
	v.SetDefault("jwt.access_ttl", "5m")
	v.SetDefault("jwt.refresh_ttl", "24h")

	v.SetDefault("password.bcrypt_cost", 10)
	v.SetDefault("password.min_length", 8)
	v.SetDefault("password.max_similarity", 0.7)

	v.SetDefault("rate_limit.signup_per_min", 30)

	v.SetDefault("features.cors_enabled", false)
	v.SetDefault("cors.allow_credentials", false)

	v.SetDefault("app.timezone", "UTC")
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is required (set JWT_SECRET or SECRET_KEY)")
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(name)); envValue != "" {
		return envValue
	}
	return os.Getenv(name)
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
