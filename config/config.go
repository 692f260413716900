package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Config holds every secret and tunable the service needs. It is loaded once
// at startup, validated, and passed explicitly into the constructors that
// need it; nothing reads the environment lazily per-request.
type Config struct {
	BindAddr string
	BindPort string

	// Razorpay credentials. Required: order creation and signature
	// verification cannot run without them.
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Generation providers. Both optional; an empty key skips the provider
	// and generation falls back to the template composer.
	OpenRouterAPIKey string
	AnthropicAPIKey  string

	// Purchase ledger. Required for verification persistence and restore.
	DatabaseURL string

	// LicenseKeyPrefix is prepended to minted license keys.
	LicenseKeyPrefix string

	// PricingFile optionally points at a YAML file overriding the built-in
	// price tables.
	PricingFile string

	// AllowedOrigin is sent back in Access-Control-Allow-Origin. "*" by
	// default since no cookies are involved.
	AllowedOrigin string

	// PricingOverrides is populated from PricingFile when set.
	PricingOverrides *PricingOverrides
}

// PricingOverrides is the YAML shape of an operator-supplied price table.
type PricingOverrides struct {
	Display map[string]DisplayPrice `yaml:"display"`
	Orders  map[string]OrderPrice   `yaml:"orders"`
}

// DisplayPrice overrides the visitor-facing quote for one currency.
type DisplayPrice struct {
	Symbol   string  `yaml:"symbol"`
	Single   float64 `yaml:"single"`
	Bundle   float64 `yaml:"bundle"`
	Decimals bool    `yaml:"decimals"`
}

// OrderPrice overrides the accepted smallest-unit amounts for one currency.
type OrderPrice struct {
	Single int64 `yaml:"single"`
	Bundle int64 `yaml:"bundle"`
}

// Load reads configuration from the environment. A .env file is honored when
// present so local runs behave like deployed ones.
func Load() (Config, error) {
	// missing .env is the normal production case
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("BIND_ADDR", "0.0.0.0")
	v.SetDefault("BIND_PORT", "8080")
	v.SetDefault("LICENSE_KEY_PREFIX", "PP-")
	v.SetDefault("ALLOWED_ORIGIN", "*")
	v.AutomaticEnv()

	conf := Config{
		BindAddr:          v.GetString("BIND_ADDR"),
		BindPort:          v.GetString("BIND_PORT"),
		RazorpayKeyID:     v.GetString("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: v.GetString("RAZORPAY_KEY_SECRET"),
		OpenRouterAPIKey:  v.GetString("OPENROUTER_API_KEY"),
		AnthropicAPIKey:   v.GetString("ANTHROPIC_API_KEY"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		LicenseKeyPrefix:  v.GetString("LICENSE_KEY_PREFIX"),
		PricingFile:       v.GetString("PRICING_FILE"),
		AllowedOrigin:     v.GetString("ALLOWED_ORIGIN"),
	}

	if conf.PricingFile != "" {
		overrides, err := loadPricingFile(conf.PricingFile)
		if err != nil {
			return conf, fmt.Errorf("failed to load pricing file %v: %v", conf.PricingFile, err.Error())
		}
		conf.PricingOverrides = overrides
	}

	return conf, nil
}

// Validate fails fast on missing required secrets so misconfiguration shows
// up at startup instead of on the first paid request.
func (c Config) Validate() error {
	var missing []string
	if c.RazorpayKeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if c.RazorpayKeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %v", strings.Join(missing, ", "))
	}
	return nil
}

func loadPricingFile(path string) (*PricingOverrides, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides PricingOverrides
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, err
	}
	return &overrides, nil
}
