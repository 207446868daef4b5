package config

import "time"

// Config holds runtime settings for the HouseConnect CLI.
//
// Fields:
//   - BackendURL: root of the REST backend, including the context path.
//   - StoragePath: SQLite file that keeps the session between runs.
//   - RequestTimeout: upper bound for one backend call.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - LogLevel: debug, info, warn or error.
//   - LogFile: diagnostics destination; empty means stderr.
type Config struct {
	BackendURL          string
	StoragePath         string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	LogFile             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:8080/HouseConnect"
	c.StoragePath = "houseconnect.db"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.LogLevel = "info"
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
