package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Catalog    CatalogConfig
	Database   DatabaseConfig
	Store      StoreConfig
	Membership MembershipConfig
	Printer    PrinterConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Log        LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type CatalogConfig struct {
	Source         string
	ProductsPath   string
	PromotionsPath string
	YAMLPath       string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
	Seed     bool
}

type StoreConfig struct {
	Name     string
	Timezone string
	// ClockOverride pins "now" for demos and acceptance runs (RFC3339 or YYYY-MM-DD)
	ClockOverride string
}

type MembershipConfig struct {
	RatePercent int64
	Cap         int64
}

type PrinterConfig struct {
	Type      string
	USBPath   string
	Address   string
	SpoolPath string
	Width     int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg(".env file not found, using environment variables")
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "promo-kiosk")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("CATALOG_SOURCE", "file")
	viper.SetDefault("CATALOG_PRODUCTS_PATH", "resources/products.md")
	viper.SetDefault("CATALOG_PROMOTIONS_PATH", "resources/promotions.md")
	viper.SetDefault("CATALOG_YAML_PATH", "resources/catalog.yaml")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "promo_kiosk")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Seoul")
	viper.SetDefault("DB_SEED", true)
	viper.SetDefault("STORE_NAME", "W Convenience Store")
	viper.SetDefault("STORE_TIMEZONE", "Asia/Seoul")
	viper.SetDefault("STORE_CLOCK_OVERRIDE", "")
	viper.SetDefault("MEMBERSHIP_RATE_PERCENT", 30)
	viper.SetDefault("MEMBERSHIP_CAP", 8000)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_SPOOL_PATH", "receipts.bin")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", true)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Catalog: CatalogConfig{
			Source:         viper.GetString("CATALOG_SOURCE"),
			ProductsPath:   viper.GetString("CATALOG_PRODUCTS_PATH"),
			PromotionsPath: viper.GetString("CATALOG_PROMOTIONS_PATH"),
			YAMLPath:       viper.GetString("CATALOG_YAML_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
			Seed:     viper.GetBool("DB_SEED"),
		},
		Store: StoreConfig{
			Name:          viper.GetString("STORE_NAME"),
			Timezone:      viper.GetString("STORE_TIMEZONE"),
			ClockOverride: viper.GetString("STORE_CLOCK_OVERRIDE"),
		},
		Membership: MembershipConfig{
			RatePercent: viper.GetInt64("MEMBERSHIP_RATE_PERCENT"),
			Cap:         viper.GetInt64("MEMBERSHIP_CAP"),
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			USBPath:   viper.GetString("PRINTER_USB_PATH"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			SpoolPath: viper.GetString("PRINTER_SPOOL_PATH"),
			Width:     viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// Location resolves the store time zone
func (c *StoreConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid store timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Clock returns the function the kiosk uses to read the current time.
// With an override set, the clock is frozen at that instant.
func (c *StoreConfig) Clock(loc *time.Location) (func() time.Time, error) {
	if c.ClockOverride == "" {
		return func() time.Time { return time.Now().In(loc) }, nil
	}
	if t, err := time.ParseInLocation(time.RFC3339, c.ClockOverride, loc); err == nil {
		return func() time.Time { return t }, nil
	}
	t, err := time.ParseInLocation("2006-01-02", c.ClockOverride, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid clock override %q: use RFC3339 or YYYY-MM-DD", c.ClockOverride)
	}
	return func() time.Time { return t }, nil
}
