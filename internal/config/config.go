package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

const (
	DriverTwilio = "twilio"
	DriverLog    = "log"
)

// ---- Root ----

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Provider ProviderConfig `mapstructure:"provider"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
}

// ---- Leaf structs ----

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	BasePath        string        `mapstructure:"base_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`    // debug|info|warn|error
	Encoding string `mapstructure:"encoding"` // json|console
}

type ProviderConfig struct {
	Driver string `mapstructure:"driver"` // twilio|log
}

// TwilioConfig holds the provider credentials. All three fields are required.
type TwilioConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`
}

// MissingFieldError reports a required configuration key that is absent or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: required field %q is missing", e.Field)
}

// Load reads embedded defaults, merges user YAML (if provided), applies env
// overrides (SMSRELAY_*) and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// env override (SMSRELAY_TWILIO_ACCOUNT_SID, ...)
	v.SetEnvPrefix("SMSRELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the credentials and the provider driver.
func (c Config) Validate() error {
	required := []struct {
		key, val string
	}{
		{"twilio.account_sid", c.Twilio.AccountSID},
		{"twilio.auth_token", c.Twilio.AuthToken},
		{"twilio.from_number", c.Twilio.FromNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return &MissingFieldError{Field: r.key}
		}
	}

	switch c.Provider.Driver {
	case DriverTwilio, DriverLog:
	default:
		return fmt.Errorf("config: unknown provider driver %q", c.Provider.Driver)
	}
	return nil
}
