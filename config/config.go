package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is built once at startup and
// handed to every component that needs it; there is no package-level instance.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB connection string.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Session tokens.
	JWTSecret                string `mapstructure:"JWT_SECRET"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// External collaborators. Keys are read once here and never logged.
	GDSAPIKey    string `mapstructure:"GDS_API_KEY"`
	GDSBaseURL   string `mapstructure:"GDS_BASE_URL"`
	AIServiceKey string `mapstructure:"AI_SERVICE_KEY"`

	// Cache TTL for provider search results, in seconds.
	CacheExpiration int `mapstructure:"CACHE_EXPIRATION"`

	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() (*Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	// Secrets have no usable default, but each key still needs a registered
	// default so AutomaticEnv feeds it through Unmarshal.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("GDS_API_KEY", "")
	viper.SetDefault("AI_SERVICE_KEY", "")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*8)
	viper.SetDefault("GDS_BASE_URL", "https://api.gds-provider.com/v1")
	viper.SetDefault("CACHE_EXPIRATION", 3600)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	if err := viper.ReadInConfig(); err != nil {
		// No config file is fine; environment variables cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// IsProduction checks if the environment is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
