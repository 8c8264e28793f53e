package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration for the named service from file and environment.
// Lookup order: /etc/ecomovil/<service>.yaml, ./config/<service>.yaml, then
// ECOMOVIL_-prefixed environment variables override file values.
func Load(service string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("jwt.expiration_days", 7)
	v.SetDefault("log.level", "info")
	v.SetDefault("events.enabled", false)
	v.SetDefault("events.topic", "ecomovil.iam.events")
	v.SetDefault("monitoring.pprof_enabled", false)

	v.SetConfigName(service)
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/ecomovil/")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("ECOMOVIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
