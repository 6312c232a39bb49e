package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultCORSOrigin = "*"
	DefaultPort       = "8080"
)

// Config is the process environment as seen by a single request.
type Config struct {
	CORSAllowedOrigin string
	StripeSecretKey   string
	StripeAPIBase     string // optional, points the Stripe client at stripe-mock or a test server
	Port              string
}

// FromLookup resolves a Config from a key lookup function such as os.Getenv.
func FromLookup(lookup func(string) string) Config {
	cfg := Config{
		CORSAllowedOrigin: lookup("CORS_ALLOWED_ORIGIN"),
		StripeSecretKey:   lookup("STRIPE_SECRET_KEY"),
		StripeAPIBase:     lookup("STRIPE_API_BASE"),
		Port:              lookup("PORT"),
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = DefaultCORSOrigin
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	return cfg
}

// FromMap is FromLookup over a fixed set of values.
func FromMap(values map[string]string) Config {
	return FromLookup(func(key string) string { return values[key] })
}

// Load reads .env if present and returns a source that re-reads the process
// environment on every call, so secrets rotated by the platform are picked up
// without a restart.
func Load() func() Config {
	_ = godotenv.Load()
	return func() Config {
		return FromLookup(os.Getenv)
	}
}
