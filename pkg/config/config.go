package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FSTSERVE"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv            = "FSTSERVE_APP_ENV"
	EnvAppPort           = "FSTSERVE_APP_PORT"
	EnvRedisURL          = "FSTSERVE_REDIS_URL"
	EnvAirtableWebhook   = "FSTSERVE_AIRTABLE_WEBHOOK_URL"
	EnvAirtableAPIKey    = "FSTSERVE_AIRTABLE_API_KEY"
	EnvAirtableBaseID    = "FSTSERVE_AIRTABLE_BASE_ID"
	EnvWhatsAppRecipient = "FSTSERVE_WHATSAPP_RECIPIENT"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Airtable AirtableConfig
	WhatsApp WhatsAppConfig
	Wizard   WizardConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FSTSERVE_APP_ENV" required:"true"`
	Port         string `envconfig:"FSTSERVE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FSTSERVE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FSTSERVE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"FSTSERVE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FSTSERVE_REDIS_ADDR"`
	Password     string        `envconfig:"FSTSERVE_REDIS_PASSWORD"`
	DB           int           `envconfig:"FSTSERVE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FSTSERVE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FSTSERVE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FSTSERVE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FSTSERVE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FSTSERVE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AirtableConfig carries the credentials for the order-recording
// collaborator. WebhookURL feeds the forward endpoint; APIKey/BaseID
// feed the records endpoint. Both may be absent in dev, in which case
// the matching endpoint answers with a configuration error.
type AirtableConfig struct {
	WebhookURL string        `envconfig:"FSTSERVE_AIRTABLE_WEBHOOK_URL"`
	APIKey     string        `envconfig:"FSTSERVE_AIRTABLE_API_KEY"`
	BaseID     string        `envconfig:"FSTSERVE_AIRTABLE_BASE_ID"`
	Timeout    time.Duration `envconfig:"FSTSERVE_AIRTABLE_TIMEOUT" default:"10s"`
}

type WhatsAppConfig struct {
	Recipient string `envconfig:"FSTSERVE_WHATSAPP_RECIPIENT" default:"212666126924"`
}

type WizardConfig struct {
	SessionTTL    time.Duration `envconfig:"FSTSERVE_WIZARD_SESSION_TTL" default:"30m"`
	GPSFixTimeout time.Duration `envconfig:"FSTSERVE_WIZARD_GPS_FIX_TIMEOUT" default:"15s"`
}
