package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Provider configuration.
	ProviderBaseURL   string `mapstructure:"PROVIDER_BASE_URL"`
	ProviderAPIKey    string `mapstructure:"PROVIDER_API_KEY"`
	ProviderTimeoutMS int    `mapstructure:"PROVIDER_TIMEOUT_MS"`

	// Cache tuning. TTLs are seconds; they stay short because each
	// instance keeps its own view of provider state.
	CacheCapacity          int `mapstructure:"CACHE_CAPACITY"`
	AvailabilityTTLSeconds int `mapstructure:"AVAILABILITY_TTL_SECONDS"`
	NegativeTTLSeconds     int `mapstructure:"NEGATIVE_TTL_SECONDS"`
	PricingTTLSeconds      int `mapstructure:"PRICING_TTL_SECONDS"`
	GamesTTLSeconds        int `mapstructure:"GAMES_TTL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("PROVIDER_BASE_URL", "https://api.example-bookings.com/v2")
	viper.SetDefault("PROVIDER_API_KEY", "")
	viper.SetDefault("PROVIDER_TIMEOUT_MS", 12000)
	viper.SetDefault("CACHE_CAPACITY", 500)
	viper.SetDefault("AVAILABILITY_TTL_SECONDS", 60)
	viper.SetDefault("NEGATIVE_TTL_SECONDS", 15)
	viper.SetDefault("PRICING_TTL_SECONDS", 600)
	viper.SetDefault("GAMES_TTL_SECONDS", 300)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ProviderTimeout returns the per-call provider deadline as a duration.
func ProviderTimeout() time.Duration {
	return time.Duration(AppConfig.ProviderTimeoutMS) * time.Millisecond
}
