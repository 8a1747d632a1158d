package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. STRIKETHROUGH_LOG_LEVEL.
const EnvPrefix = "STRIKETHROUGH"

// Config is the application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	Console ConsoleConfig `mapstructure:"console"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig configures the HTTP dispatcher.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// ConsoleConfig configures the interactive dispatcher.
type ConsoleConfig struct {
	Clear bool `mapstructure:"clear"`
	MOTD  bool `mapstructure:"motd"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: "warn", Format: "text"},
		Server:  ServerConfig{Addr: "0.0.0.0:8080"},
		Console: ConsoleConfig{Clear: true, MOTD: true},
	}
}

// Load reads configuration from path (optional) and the environment,
// layered over DefaultConfig.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("console.clear", d.Console.Clear)
	v.SetDefault("console.motd", d.Console.MOTD)
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (must be text or json)", c.Log.Format)
	}
	if c.Server.Addr == "" {
		return errors.New("server addr must not be empty")
	}
	return nil
}
