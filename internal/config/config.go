package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for metamap.
// Command-line arguments are parsed separately; this covers the
// environment-driven settings that rarely change between runs.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - MapsHost: Host of the mapping service used in generated links.
// - MakerNotes: Whether vendor maker notes are decoded for the full dump.
// - Pushgateway: Prometheus Pushgateway to report run metrics to, empty to disable.
// - PushTimeout: Upper bound for the metrics push.
type Config struct {
	Env         string        `mapstructure:"env"`             // Env is the current environment: local, development, production.
	MapsHost    string        `mapstructure:"maps_host"`       // MapsHost is the mapping service host.
	MakerNotes  bool          `mapstructure:"makernotes"`      // MakerNotes enables Canon/Nikon maker note decoding.
	Pushgateway string        `mapstructure:"pushgateway_url"` // Pushgateway is the metrics push target.
	PushTimeout time.Duration `mapstructure:"push_timeout"`    // PushTimeout bounds the metrics push.
}

// MustLoad loads the configuration from the environment (and an optional
// .env file) and returns a Config struct. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("METAMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("maps_host", "www.google.com")
	v.SetDefault("makernotes", "true")
	v.SetDefault("pushgateway_url", "")
	v.SetDefault("push_timeout", "5s")

	makerNotes, err := strconv.ParseBool(v.GetString("makernotes"))
	if err != nil {
		panic("failed to parse makernotes from configuration, must be a boolean")
	}

	pushTimeout, err := time.ParseDuration(v.GetString("push_timeout"))
	if err != nil {
		panic("failed to parse push timeout from configuration")
	}

	return &Config{
		Env:         v.GetString("env"),
		MapsHost:    v.GetString("maps_host"),
		MakerNotes:  makerNotes,
		Pushgateway: v.GetString("pushgateway_url"),
		PushTimeout: pushTimeout,
	}
}
