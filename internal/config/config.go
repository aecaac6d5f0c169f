package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Admin database configuration (shared catalogs + organizations)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Tenant databases
	TenantDBPrefix     string   `mapstructure:"TENANT_DB_PREFIX"`
	ProtectedDatabases []string `mapstructure:"PROTECTED_DATABASES"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis is optional; without it the custom template limit is a soft limit
	RedisAddr                string `mapstructure:"REDIS_ADDR"`
	RedisPassword            string `mapstructure:"REDIS_PASSWORD"`
	CustomTemplateLockTTLSec int    `mapstructure:"CUSTOM_TEMPLATE_LOCK_TTL_SEC"`
	TenantPoolCloseGraceSec  int    `mapstructure:"TENANT_POOL_CLOSE_GRACE_SEC"`
}

// builtinProtectedDatabases can never be bound as tenant databases
var builtinProtectedDatabases = []string{"postgres", "template0", "template1"}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated lists arrive as a single element from the environment
	config.ProtectedDatabases = splitList(config.ProtectedDatabases)
	config.AllowedOrigins = splitList(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config, config.DatabaseName)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "valuation_admin")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("TENANT_DB_PREFIX", "valuation_org_")
	viper.SetDefault("PROTECTED_DATABASES", []string{})

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("CUSTOM_TEMPLATE_LOCK_TTL_SEC", 10)
	viper.SetDefault("TENANT_POOL_CLOSE_GRACE_SEC", 30)
}

func buildDatabaseURL(config *Config, dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		dbName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.TenantDBPrefix == "" {
		return fmt.Errorf("tenant database prefix is required")
	}

	return nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// TenantDatabaseURL returns the DSN of a tenant database on the admin server
func (c *Config) TenantDatabaseURL(dbName string) string {
	return buildDatabaseURL(c, dbName)
}

// ProtectedDatabaseSet returns every database name that must never be bound to a tenant.
// The admin database and the Postgres system databases are always included.
func (c *Config) ProtectedDatabaseSet() []string {
	names := append([]string{}, builtinProtectedDatabases...)
	names = append(names, c.DatabaseName)
	for _, name := range c.ProtectedDatabases {
		names = append(names, strings.ToLower(name))
	}
	return names
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
