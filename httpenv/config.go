package httpenv

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config names the request fields read besides Accept-Language.
type Config struct {
	Cookie string `env:"NAVLOCALE_COOKIE" envDefault:"lang"`
	Header string `env:"NAVLOCALE_HEADER" envDefault:"X-User-Language"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Cookie: "lang", Header: "X-User-Language"}
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("httpenv: load config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFrom reads Config from vars instead of the process environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return Config{}, fmt.Errorf("httpenv: load config: %w", err)
	}
	return cfg, nil
}
