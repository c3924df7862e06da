package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the AfriStyle CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DataFile: path of the local SQLite file backing the key-value store.
//   - RequestTimeout: per-request deadline for API calls.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	ServerBaseURL  string
	DataFile       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DataFile = defaultDataFile()
	c.RequestTimeout = 10 * time.Second
}

func defaultDataFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "afristyle.db"
	}
	return filepath.Join(dir, "afristyle", "afristyle.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
