// Package config holds process configuration for the digest tool and its
// serve mode. Values are layered: defaults, optional YAML file, env vars.
package config

// Config contains everything the commands need to run.
type Config struct {
	// NOC is the 3-letter team code the digest filters for.
	NOC string `koanf:"noc"`

	// TeamName is the formatted competitor name that means "the national
	// team itself" rather than a named individual.
	TeamName string `koanf:"team_name"`

	// Flag is the glyph shown in the report title.
	Flag string `koanf:"flag"`

	// Timezone is the IANA zone all times are displayed in.
	Timezone string `koanf:"timezone"`

	// BaseURL is the schedule API root; the day path is appended.
	BaseURL string `koanf:"base_url"`

	// UserAgent sent on schedule fetches. The API rejects the default Go
	// agent.
	UserAgent string `koanf:"user_agent"`

	// OutputPath is where the digest markdown is written.
	OutputPath string `koanf:"output_path"`

	// DumpPath, when set, receives a copy of each raw API response.
	DumpPath string `koanf:"dump_path"`

	// Addr is the serve-mode listen address.
	Addr string `koanf:"addr"`

	// RefreshSeconds is the serve-mode refetch interval.
	RefreshSeconds int `koanf:"refresh_seconds"`

	// HTTPTimeoutSeconds bounds a single schedule fetch.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		NOC:                "AUS",
		TeamName:           "Australia",
		Flag:               "🇦🇺",
		Timezone:           "Australia/Sydney",
		BaseURL:            "https://sph-s-api.olympics.com/summer/schedules/api/ENG/schedule",
		UserAgent:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		OutputPath:         "index.md",
		DumpPath:           "",
		Addr:               "localhost:8080",
		RefreshSeconds:     900,
		HTTPTimeoutSeconds: 30,
	}
}
