package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	EnvBackendURL, EnvStoragePath, EnvRequestTimeout,
	EnvOnlineCheckInterval, EnvLogLevel, EnvLogFile,
}

// clearEnv unsets every HC_* variable now and again after the test, since
// godotenv writes straight into the process environment.
func clearEnv(t *testing.T) {
	t.Helper()
	unset := func() {
		for _, k := range envVars {
			_ = os.Unsetenv(k)
		}
	}
	unset()
	t.Cleanup(unset)
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func withDotenv(t *testing.T, path string) {
	t.Helper()
	orig := dotenvFile
	dotenvFile = path
	t.Cleanup(func() { dotenvFile = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/HouseConnect", c.BackendURL)
	assert.Equal(t, "houseconnect.db", c.StoragePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.LogFile)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	clearEnv(t)
	withArgs(t)
	withDotenv(t, filepath.Join(t.TempDir(), "missing.env"))

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080/HouseConnect", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	withDotenv(t, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(EnvBackendURL, "http://env:1/HouseConnect")
	t.Setenv(EnvStoragePath, "env.db")
	t.Setenv(EnvLogLevel, "warn")

	path := writeTempJSON(t, "", "", map[string]any{
		"storage_path": "json.db",
		"log_level":    "error",
	})
	withArgs(t, "-c", path, "-l", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "http://env:1/HouseConnect", cfg.BackendURL, "env beats defaults")
	assert.Equal(t, "json.db", cfg.StoragePath, "json beats env")
	assert.Equal(t, "debug", cfg.LogLevel, "flags beat json")
}

func TestLoadConfig_SubSecondDurationsSurviveWithoutFlags(t *testing.T) {
	clearEnv(t)
	withDotenv(t, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(EnvRequestTimeout, "500ms")
	t.Setenv(EnvOnlineCheckInterval, "2500ms")
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.OnlineCheckInterval)
}

func TestLoadConfig_JSONDurationKeptUnlessFlagGiven(t *testing.T) {
	clearEnv(t)
	withDotenv(t, filepath.Join(t.TempDir(), "missing.env"))
	path := writeTempJSON(t, "", "", map[string]any{
		"request_timeout":       "750ms",
		"online_check_interval": "1500ms",
	})
	withArgs(t, "-c", path, "-i", "9")

	cfg := LoadConfig()

	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout, "no -t flag keeps the JSON value")
	assert.Equal(t, 9*time.Second, cfg.OnlineCheckInterval, "-i overrides JSON")
}
