package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Field service platform configuration
	FieldServiceBaseURL      string `mapstructure:"FIELD_SERVICE_BASE_URL"`
	FieldServiceTokenURL     string `mapstructure:"FIELD_SERVICE_TOKEN_URL"`
	FieldServiceClientID     string `mapstructure:"FIELD_SERVICE_CLIENT_ID"`
	FieldServiceClientSecret string `mapstructure:"FIELD_SERVICE_CLIENT_SECRET"`
	FieldServiceTimeoutSec   int    `mapstructure:"FIELD_SERVICE_TIMEOUT_SEC"`
	FieldServicePageSize     int    `mapstructure:"FIELD_SERVICE_PAGE_SIZE"`
	FieldServiceMaxPages     int    `mapstructure:"FIELD_SERVICE_MAX_PAGES"`

	// Scheduling configuration
	WorkingHoursStart    string `mapstructure:"WORKING_HOURS_START"`
	WorkingHoursEnd      string `mapstructure:"WORKING_HOURS_END"`
	SlotIntervalMinutes  int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	MaxRuleOccurrences   int    `mapstructure:"MAX_RULE_OCCURRENCES"`
	DirectoryCacheTTLSec int    `mapstructure:"DIRECTORY_CACHE_TTL_SEC"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Sentry configuration
	SentryDSN              string  `mapstructure:"SENTRY_DSN"`
	SentryTracesSampleRate float64 `mapstructure:"SENTRY_TRACES_SAMPLE_RATE"`

	// Background job configuration
	ExternalSyncCron string `mapstructure:"EXTERNAL_SYNC_CRON"`
}

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

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "dispatch_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_ISSUER", "dispatch-portal")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Field service defaults
	viper.SetDefault("FIELD_SERVICE_BASE_URL", "")
	viper.SetDefault("FIELD_SERVICE_TOKEN_URL", "")
	viper.SetDefault("FIELD_SERVICE_CLIENT_ID", "")
	viper.SetDefault("FIELD_SERVICE_CLIENT_SECRET", "")
	viper.SetDefault("FIELD_SERVICE_TIMEOUT_SEC", 15)
	viper.SetDefault("FIELD_SERVICE_PAGE_SIZE", 200)
	viper.SetDefault("FIELD_SERVICE_MAX_PAGES", 25)

	// Scheduling defaults
	viper.SetDefault("WORKING_HOURS_START", "09:00")
	viper.SetDefault("WORKING_HOURS_END", "17:00")
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("MAX_RULE_OCCURRENCES", 500)
	viper.SetDefault("DIRECTORY_CACHE_TTL_SEC", 300)

	// LDAP defaults
	viper.SetDefault("LDAP_HOST", "ldap.example.com")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "CN=Dispatch Portal,OU=Services,DC=example,DC=com")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "DC=example,DC=com")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", true)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	// Sentry defaults
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_TRACES_SAMPLE_RATE", 0.0)

	// Job defaults
	viper.SetDefault("EXTERNAL_SYNC_CRON", "0 3 * * *")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
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

	startMin, err := parseClockMinutes(config.WorkingHoursStart)
	if err != nil {
		return fmt.Errorf("WORKING_HOURS_START: %w", err)
	}
	endMin, err := parseClockMinutes(config.WorkingHoursEnd)
	if err != nil {
		return fmt.Errorf("WORKING_HOURS_END: %w", err)
	}
	if startMin >= endMin {
		return fmt.Errorf("working hours start %q must be before end %q", config.WorkingHoursStart, config.WorkingHoursEnd)
	}

	if config.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("SLOT_INTERVAL_MINUTES must be positive")
	}
	if config.MaxRuleOccurrences <= 0 {
		return fmt.Errorf("MAX_RULE_OCCURRENCES must be positive")
	}
	if config.FieldServicePageSize <= 0 || config.FieldServiceMaxPages <= 0 {
		return fmt.Errorf("field service page size and max pages must be positive")
	}

	return nil
}

// parseClockMinutes converts "HH:MM" into minutes from midnight
func parseClockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q, expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}
	return hours*60 + minutes, nil
}

// WorkingWindowMinutes returns the working-hours window as minutes from
// midnight, falling back to 09:00-17:00 when the configured values do not
// parse. Load rejects unparseable values up front; the fallback covers
// configs constructed directly in tests.
func (c *Config) WorkingWindowMinutes() (start, end int) {
	start, err := parseClockMinutes(c.WorkingHoursStart)
	if err != nil {
		start = 9 * 60
	}
	end, err = parseClockMinutes(c.WorkingHoursEnd)
	if err != nil || end <= start {
		end = 17 * 60
	}
	return start, end
}

// HasFieldService reports whether the external platform client can be built
func (c *Config) HasFieldService() bool {
	return c.FieldServiceBaseURL != "" && c.FieldServiceClientID != "" && c.FieldServiceClientSecret != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
