package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	Version           string `mapstructure:"VERSION"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Venue identity. VenueEmail is the fixed second recipient of every
	// booking confirmation.
	VenueName  string `mapstructure:"VENUE_NAME"`
	VenueEmail string `mapstructure:"VENUE_EMAIL"`

	// Outbound mail transport.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`

	// DeliveryStrategy selects how the confirmation document travels:
	// "inline" puts the full document in the email body, "attachment"
	// sends a short body with a PDF rendering attached.
	DeliveryStrategy string `mapstructure:"DELIVERY_STRATEGY"`

	// CatalogSource selects the menu catalog backend: "memory" or "mongo".
	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration for the optional menu cache. Leave REDIS_ADDR
	// empty to serve the catalog uncached.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	MenuCacheTTLMin int    `mapstructure:"MENU_CACHE_TTL_MIN"`
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
	viper.SetDefault("VERSION", "1.0.0")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("VENUE_NAME", "The Scenic Inn")
	viper.SetDefault("VENUE_EMAIL", "restaurant@thescenicinn.com")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("DELIVERY_STRATEGY", "inline")
	viper.SetDefault("CATALOG_SOURCE", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "scenicinn")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("MENU_CACHE_TTL_MIN", 30)

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
