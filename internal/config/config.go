package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Projection ProjectionConfig
	UI         UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string
}

// ProjectionConfig holds projection defaults.
type ProjectionConfig struct {
	DefaultMonths int `mapstructure:"default_months"`
}

// UIConfig holds presentation settings used at the API boundary.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string
}

// Load reads configuration from file and env. Env var overrides use prefix FLUXO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "fluxo", "fluxo.db"))
	v.SetDefault("server.addr", ":8090")
	v.SetDefault("projection.default_months", 6)
	v.SetDefault("ui.currency_symbol", "R$")
	v.SetDefault("ui.timezone", "America/Sao_Paulo")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FLUXO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fluxo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLUXO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
