package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	Log     LogConfig
	Metrics MetricsConfig
	UI      UIConfig
}

// CatalogConfig holds artwork API settings. Page size is fixed and not configurable.
type CatalogConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	Level  string
	File   string
	Pretty bool
}

// MetricsConfig holds the optional prometheus listener. An empty Addr disables it.
type MetricsConfig struct {
	Addr string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title      string
	ShowHelp   bool `mapstructure:"show_help"`
	TitleWidth int  `mapstructure:"title_width"`
}

// Load reads configuration from file and env. Env var overrides use prefix ARTWORKS_.
// path overrides ARTWORKS_CONFIG and the default location; a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("catalog.base_url", "https://api.artic.edu/api/v1")
	v.SetDefault("catalog.user_agent", "artworks/dev")
	v.SetDefault("catalog.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("ui.title", "Table Data")
	v.SetDefault("ui.show_help", true)
	v.SetDefault("ui.title_width", 32)

	v.SetConfigType("toml")

	cfgPath := path
	if cfgPath == "" {
		cfgPath = os.Getenv("ARTWORKS_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "artworks"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ARTWORKS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at request time.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Catalog.BaseURL) == "" {
		return fmt.Errorf("config: catalog.base_url is empty")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("config: catalog.timeout must be positive, got %s", c.Catalog.Timeout)
	}
	if c.UI.TitleWidth < 8 {
		return fmt.Errorf("config: ui.title_width must be >= 8, got %d", c.UI.TitleWidth)
	}
	return nil
}
