package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. YAML file named by OLYSCHED_CONFIG, if set
//  3. env vars with the OLYSCHED_ prefix (OLYSCHED_NOC, OLYSCHED_TIMEZONE, ...)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("OLYSCHED_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// OLYSCHED_REFRESH_SECONDS -> refresh_seconds, matching the koanf tags.
	envProvider := env.Provider("OLYSCHED_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "olysched_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if len(cfg.NOC) != 3 {
		return nil, errors.New("noc must be a 3-letter code")
	}
	if cfg.Timezone == "" {
		return nil, errors.New("timezone must not be empty")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base_url must not be empty")
	}
	if cfg.RefreshSeconds <= 0 {
		return nil, errors.New("refresh_seconds must be positive")
	}
	return &cfg, nil
}
