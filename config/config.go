package config

import (
	"log"

	"github.com/spf13/viper"

	"venuebook/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Pricing defaults, merged into a models.PricingConfig at call boundaries.
	DefaultCurrency     string  `mapstructure:"DEFAULT_CURRENCY"`
	DefaultTaxRate      float64 `mapstructure:"DEFAULT_TAX_RATE"`
	RoundingStrategy    string  `mapstructure:"ROUNDING_STRATEGY"`
	PriceLocale         string  `mapstructure:"PRICE_LOCALE"`
	EnableSuggestions   bool    `mapstructure:"ENABLE_SUGGESTIONS"`
	MinSuggestedSavings float64 `mapstructure:"MIN_SUGGESTED_SAVINGS"`
	MaxSuggestions      int     `mapstructure:"MAX_SUGGESTIONS"`
	RecalcDebounceMS    int     `mapstructure:"RECALC_DEBOUNCE_MS"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DEFAULT_CURRENCY", models.DefaultCurrency)
	viper.SetDefault("DEFAULT_TAX_RATE", models.DefaultTaxRate)
	viper.SetDefault("ROUNDING_STRATEGY", models.DefaultRoundingStrategy)
	viper.SetDefault("PRICE_LOCALE", models.DefaultLocale)
	viper.SetDefault("ENABLE_SUGGESTIONS", true)
	viper.SetDefault("MIN_SUGGESTED_SAVINGS", models.DefaultMinSuggestedSavings)
	viper.SetDefault("MAX_SUGGESTIONS", models.DefaultMaxSuggestions)
	viper.SetDefault("RECALC_DEBOUNCE_MS", models.DefaultRecalcDebounceMS)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Pricing returns the configured pricing defaults as an explicit value.
func Pricing() models.PricingConfig {
	return models.PricingConfig{
		DefaultCurrency:     AppConfig.DefaultCurrency,
		DefaultTaxRate:      AppConfig.DefaultTaxRate,
		RoundingStrategy:    AppConfig.RoundingStrategy,
		Locale:              AppConfig.PriceLocale,
		EnableSuggestions:   AppConfig.EnableSuggestions,
		MinSuggestedSavings: AppConfig.MinSuggestedSavings,
		MaxSuggestions:      AppConfig.MaxSuggestions,
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
