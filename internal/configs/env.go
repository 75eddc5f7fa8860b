package configs

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// Config holds everything a service reads from the process environment.
// Keys are the environment variable names, lower-cased.
type Config struct {
	Host               string        `koanf:"server_ip" validate:"required"`
	Port               int           `koanf:"server_port" validate:"min=1,max=65535"`
	MongoURI           string        `koanf:"mongo_uri" validate:"required"`
	MongoDB            string        `koanf:"mongo_db" validate:"required"`
	ConnectTimeout     time.Duration `koanf:"mongo_connect_timeout" validate:"gt=0"`
	RequestTimeout     time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	StrictStatus       bool          `koanf:"strict_status"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"min=1"`
	LogLevel           string        `koanf:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat          string        `koanf:"log_format" validate:"oneof=console json"`
}

var defaults = map[string]interface{}{
	"server_ip":             "127.0.0.1",
	"server_port":           3000,
	"mongo_uri":             "mongodb://localhost:27017",
	"mongo_db":              "project",
	"mongo_connect_timeout": "10s",
	"request_timeout":       "10s",
	"shutdown_timeout":      "15s",
	"strict_status":         false,
	"cors_allowed_origins":  "*",
	"log_level":             "info",
	"log_format":            "console",
}

var validate = validator.New()

// Addr is the host:port the HTTP listener binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads an optional .env file, then the process environment over the
// defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}
	return load(env.Provider("", ".", envKey))
}

func load(source koanf.Provider) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}
	if err := k.Load(source, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envKey maps a variable name to its config key, dropping variables the
// config does not know about.
func envKey(name string) string {
	key := strings.ToLower(name)
	if _, known := defaults[key]; !known {
		return ""
	}
	return key
}
