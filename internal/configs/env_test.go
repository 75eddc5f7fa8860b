package configs

import (
	"testing"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(confmap.Provider(map[string]interface{}{}, "."))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "project", cfg.MongoDB)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.StrictStatus)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(confmap.Provider(map[string]interface{}{
		"server_ip":            "0.0.0.0",
		"server_port":          "8081",
		"mongo_db":             "directory",
		"request_timeout":      "2s",
		"strict_status":        "true",
		"cors_allowed_origins": "http://a.test,http://b.test",
		"log_format":           "json",
	}, "."))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.Addr())
	assert.Equal(t, "directory", cfg.MongoDB)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.StrictStatus)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]map[string]interface{}{
		"port out of range": {"server_port": "70000"},
		"empty host":        {"server_ip": ""},
		"unknown log level": {"log_level": "loud"},
		"zero timeout":      {"shutdown_timeout": "0s"},
	}

	for name, overrides := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(confmap.Provider(overrides, "."))
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server_port", envKey("SERVER_PORT"))
	assert.Equal(t, "mongo_uri", envKey("MONGO_URI"))
	assert.Equal(t, "", envKey("PATH"))
}

func TestLoadSplitsAllowedOrigins(t *testing.T) {
	cfg, err := load(confmap.Provider(map[string]interface{}{
		"cors_allowed_origins": "https://app.test,https://admin.test,https://docs.test",
	}, "."))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.test", "https://admin.test", "https://docs.test"}, cfg.CORSAllowedOrigins)
}
