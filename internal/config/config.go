package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"reactiontest/internal/i18n"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`

	// GeoLookupURL is a country.is compatible endpoint. Empty disables the
	// geolocation step of language resolution.
	GeoLookupURL   string        `env:"GEO_LOOKUP_URL" envDefault:"https://api.country.is/"`
	GeoTimeout     time.Duration `env:"GEO_TIMEOUT" envDefault:"2500ms"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	MetricsEnabled bool          `env:"METRICS_ENABLED" envDefault:"true"`
	// TrustProxy honours X-Forwarded-For when geolocating clients.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

func defaults() Config {
	return Config{
		Port:           "8080",
		BaseURL:        "http://localhost:8080",
		DefaultLang:    string(i18n.Default),
		GeoLookupURL:   "https://api.country.is/",
		GeoTimeout:     2500 * time.Millisecond,
		SessionTTL:     time.Hour,
		MetricsEnabled: true,
	}
}

// Load reads the environment. Values that fail to parse keep their
// defaults.
func Load() Config {
	def := defaults()
	cfg := def
	if err := env.Parse(&cfg); err != nil {
		log.Printf("[Config] %v (using defaults for invalid values)\n", err)
	}

	if _, ok := i18n.Parse(cfg.DefaultLang); !ok {
		log.Printf("[Config] unsupported DEFAULT_LANG %q, using %s\n", cfg.DefaultLang, def.DefaultLang)
		cfg.DefaultLang = def.DefaultLang
	}
	if cfg.GeoTimeout <= 0 {
		cfg.GeoTimeout = def.GeoTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = def.SessionTTL
	}
	return cfg
}

// Language is DefaultLang as a supported language.
func (c Config) Language() i18n.Language {
	lang, ok := i18n.Parse(c.DefaultLang)
	if !ok {
		return i18n.Default
	}
	return lang
}
