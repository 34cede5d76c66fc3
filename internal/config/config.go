package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the planner service.
// Credentials live here and are injected into the components that need
// them; business logic never reads the process environment.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	GoogleAPIKey  string
	GeocodeRegion string
	GeminiAPIKey  string
	GeminiModel   string
	OutputDir     string
	GuideDir      string
	KafkaBrokers  []string
	HTTPTimeout   time.Duration
}

// Load reads configuration from the environment (and an optional .env
// file), with PLANNER_-prefixed variables taking precedence over the bare
// API key names.
func Load() (*ServiceConfig, error) {
	// Best-effort: a missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PLANNER")
	v.AutomaticEnv()

	v.SetDefault("port", ":8000")
	v.SetDefault("app_env", "development")
	v.SetDefault("geocode_region", "in")
	v.SetDefault("gemini_model", "gemini-2.5-pro")
	v.SetDefault("output_dir", "data")
	v.SetDefault("guide_dir", "guide_pdf")
	v.SetDefault("http_timeout", "30s")

	// The upstream key names are conventionally unprefixed.
	_ = v.BindEnv("google_api_key", "PLANNER_GOOGLE_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("gemini_api_key", "PLANNER_GEMINI_API_KEY", "GEMINI_API_KEY")

	cfg := &ServiceConfig{
		Port:          v.GetString("port"),
		AppEnv:        v.GetString("app_env"),
		GoogleAPIKey:  v.GetString("google_api_key"),
		GeocodeRegion: v.GetString("geocode_region"),
		GeminiAPIKey:  v.GetString("gemini_api_key"),
		GeminiModel:   v.GetString("gemini_model"),
		OutputDir:     v.GetString("output_dir"),
		GuideDir:      v.GetString("guide_dir"),
		HTTPTimeout:   v.GetDuration("http_timeout"),
	}

	if brokers := v.GetString("kafka_brokers"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}
