package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	Garmin  GarminConfig  `mapstructure:"garmin"`
	Notion  NotionConfig  `mapstructure:"notion"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GarminConfig defines Garmin Connect credentials and endpoints
type GarminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	SSOURL   string `mapstructure:"sso_url"`
	APIURL   string `mapstructure:"api_url"`
	Timeout  string `mapstructure:"timeout"`
}

// NotionConfig defines Notion API access settings
type NotionConfig struct {
	Token        string `mapstructure:"token"`
	DatabaseID   string `mapstructure:"database_id"`
	BaseURL      string `mapstructure:"base_url"`
	Version      string `mapstructure:"version"`
	DateProperty string `mapstructure:"date_property"`
	Timeout      string `mapstructure:"timeout"`
}

// SyncConfig defines pipeline behavior
type SyncConfig struct {
	Timezone      string `mapstructure:"timezone"`
	SkipZeroSleep bool   `mapstructure:"skip_zero_sleep"`
	RunTimeout    string `mapstructure:"run_timeout"`
}

// RedisConfig defines the optional run-lock backend.
// The lock is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	LockTTL  string `mapstructure:"lock_ttl"`
}

// MetricsConfig defines the optional Pushgateway target.
// Push is disabled when PushgatewayURL is empty.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
	JobName        string `mapstructure:"job_name"`
}

// LoggingConfig defines logging behavior
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from the optional config file, a .env file
// and environment variables. Missing credentials are not an error here;
// call Validate before anything that talks to the network.
func Load(configPath string) (*Config, error) {
	// Best-effort .env load, same role as python-dotenv in similar tools.
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)
	bindEnv(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := checkDurations(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Garmin defaults
	v.SetDefault("garmin.sso_url", "https://sso.garmin.com")
	v.SetDefault("garmin.api_url", "https://connect.garmin.com")
	v.SetDefault("garmin.timeout", "30s")

	// Notion defaults
	v.SetDefault("notion.base_url", "https://api.notion.com")
	v.SetDefault("notion.version", "2022-06-28")
	v.SetDefault("notion.date_property", "Long Date")
	v.SetDefault("notion.timeout", "30s")

	// Sync defaults
	v.SetDefault("sync.timezone", "Europe/Paris")
	v.SetDefault("sync.skip_zero_sleep", true)
	v.SetDefault("sync.run_timeout", "2m")

	// Redis defaults (lock disabled until addr is set)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", "10m")

	// Metrics defaults (push disabled until URL is set)
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job_name", "garmin_to_notion")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// bindEnv wires the flat environment variable names used by deployments
// of this job. AutomaticEnv covers dotted keys whose upper-cased form
// already matches (GARMIN_EMAIL etc.), but the names are bound explicitly
// so a rename of a config key never breaks a crontab.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("garmin.email", "GARMIN_EMAIL")
	_ = v.BindEnv("garmin.password", "GARMIN_PASSWORD")
	_ = v.BindEnv("notion.token", "NOTION_TOKEN")
	_ = v.BindEnv("notion.database_id", "NOTION_SLEEP_DB_ID")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("metrics.pushgateway_url", "METRICS_PUSHGATEWAY_URL")
}

// Validate checks that everything required to reach both services is set
func (c *Config) Validate() error {
	var missing []string
	if c.Garmin.Email == "" {
		missing = append(missing, "GARMIN_EMAIL")
	}
	if c.Garmin.Password == "" {
		missing = append(missing, "GARMIN_PASSWORD")
	}
	if c.Notion.Token == "" {
		missing = append(missing, "NOTION_TOKEN")
	}
	if c.Notion.DatabaseID == "" {
		missing = append(missing, "NOTION_SLEEP_DB_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if _, err := time.LoadLocation(c.Sync.Timezone); err != nil {
		return fmt.Errorf("invalid sync.timezone %q: %w", c.Sync.Timezone, err)
	}

	return nil
}

// checkDurations rejects unparseable duration strings up front
func checkDurations(cfg *Config) error {
	for name, val := range map[string]string{
		"garmin.timeout":   cfg.Garmin.Timeout,
		"notion.timeout":   cfg.Notion.Timeout,
		"sync.run_timeout": cfg.Sync.RunTimeout,
		"redis.lock_ttl":   cfg.Redis.LockTTL,
	} {
		if _, err := time.ParseDuration(val); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
