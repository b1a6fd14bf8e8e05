package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/metamap/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "www.google.com", cfg.MapsHost)
	assert.True(t, cfg.MakerNotes)
	assert.Empty(t, cfg.Pushgateway)
	assert.Equal(t, 5*time.Second, cfg.PushTimeout)
}

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("METAMAP_ENV", "local")
	t.Setenv("METAMAP_MAPS_HOST", "maps.example.org")
	t.Setenv("METAMAP_MAKERNOTES", "false")
	t.Setenv("METAMAP_PUSHGATEWAY_URL", "http://pushgateway:9091")
	t.Setenv("METAMAP_PUSH_TIMEOUT", "2s")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "maps.example.org", cfg.MapsHost)
	assert.False(t, cfg.MakerNotes)
	assert.Equal(t, "http://pushgateway:9091", cfg.Pushgateway)
	assert.Equal(t, 2*time.Second, cfg.PushTimeout)
}

func TestMustLoad_MakerNotesError(t *testing.T) {
	t.Setenv("METAMAP_MAKERNOTES", "error_value")

	assert.PanicsWithValue(t, "failed to parse makernotes from configuration, must be a boolean", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PushTimeoutError(t *testing.T) {
	t.Setenv("METAMAP_PUSH_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse push timeout from configuration", func() {
		config.MustLoad()
	})
}
