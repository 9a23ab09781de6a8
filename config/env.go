package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable read by LoadFromEnv and LoadWindowFromEnv
const EnvPrefix = "SCROLLFX_"

// LoadFromEnv applies SCROLLFX_* environment overrides on top of base.
// Variables that are not set leave the corresponding base value untouched.
func LoadFromEnv(base Effects) (Effects, error) {
	fx := base
	fx.Reveal.Weights = append([]float64(nil), base.Reveal.Weights...)
	fx.Glyphs.Symbols = append([]string(nil), base.Glyphs.Symbols...)
	if err := env.ParseWithOptions(&fx, env.Options{Prefix: EnvPrefix}); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	return fx, nil
}

// LoadWindowFromEnv applies SCROLLFX_* overrides to the window configuration
func LoadWindowFromEnv(base Config) (Config, error) {
	c := base
	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
