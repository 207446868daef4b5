package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvBackendURL          = "HC_BACKEND_URL"
	EnvStoragePath         = "HC_STORAGE_PATH"
	EnvRequestTimeout      = "HC_REQUEST_TIMEOUT"
	EnvOnlineCheckInterval = "HC_ONLINE_CHECK_INTERVAL"
	EnvLogLevel            = "HC_LOG_LEVEL"
	EnvLogFile             = "HC_LOG_FILE"
)

// dotenvFile is loaded into the process environment when it exists. Variables
// that are already set are not overridden.
var dotenvFile = ".env"

// parseEnv overlays cfg with HC_* environment variables. Durations use
// time.ParseDuration syntax ("15s"). Panics on malformed durations.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(EnvBackendURL); ok && v != "" {
		cfg.BackendURL = v
	}
	if v, ok := os.LookupEnv(EnvStoragePath); ok && v != "" {
		cfg.StoragePath = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		cfg.RequestTimeout = mustDuration(EnvRequestTimeout, v)
	}
	if v, ok := os.LookupEnv(EnvOnlineCheckInterval); ok && v != "" {
		cfg.OnlineCheckInterval = mustDuration(EnvOnlineCheckInterval, v)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
}

func mustDuration(name, v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(name + ": " + err.Error())
	}
	return d
}
