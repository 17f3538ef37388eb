package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/Nixie-Tech-LLC/ramadan/internal/islamicapi"
)

// Config holds environment-based settings. Keys are the lower-cased
// environment variable names, e.g. ISLAMIC_API_KEY -> islamic_api_key.
type Config struct {
	Environment   string `koanf:"app_env" validate:"oneof=development test production"`
	ServerAddress string `koanf:"server_address" validate:"required"`

	// IslamicAPIKey may be empty; /ramadan then answers 500 instead of the
	// process refusing to start.
	IslamicAPIKey   string        `koanf:"islamic_api_key"`
	IslamicAPIBase  string        `koanf:"islamic_api_base" validate:"required,url"`
	UpstreamTimeout time.Duration `koanf:"upstream_timeout" validate:"gt=0"`

	LogLevel  string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=console json"`

	MQTTBrokerURL   string `koanf:"mqtt_broker_url" validate:"omitempty,url"`
	MQTTClientID    string `koanf:"mqtt_client_id"`
	MQTTTopicPrefix string `koanf:"mqtt_topic_prefix"`
}

var known = map[string]bool{
	"APP_ENV":           true,
	"SERVER_ADDRESS":    true,
	"ISLAMIC_API_KEY":   true,
	"ISLAMIC_API_BASE":  true,
	"UPSTREAM_TIMEOUT":  true,
	"LOG_LEVEL":         true,
	"LOG_FORMAT":        true,
	"MQTT_BROKER_URL":   true,
	"MQTT_CLIENT_ID":    true,
	"MQTT_TOPIC_PREFIX": true,
}

// Load reads .env (if present) and the process environment into a Config,
// fills in defaults and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		// unknown or blank variables are skipped so defaults apply
		if !known[key] || value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.ServerAddress == "" {
		c.ServerAddress = ":8000"
	}
	if c.IslamicAPIBase == "" {
		c.IslamicAPIBase = islamicapi.DefaultBaseURL
	}
	if c.UpstreamTimeout == 0 {
		c.UpstreamTimeout = islamicapi.DefaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
	if c.MQTTClientID == "" {
		c.MQTTClientID = "ramadan-proxy"
	}
	if c.MQTTTopicPrefix == "" {
		c.MQTTTopicPrefix = "ramadan/schedule"
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
