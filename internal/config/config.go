package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the platelets server.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// ServerConfig controls the HTTP/websocket listener.
type ServerConfig struct {
	Address         string          `mapstructure:"address"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	WebSocket       WebSocketConfig `mapstructure:"websocket"`
}

// WebSocketConfig controls the event-stream upgrader.
type WebSocketConfig struct {
	ReadBufferSize  int           `mapstructure:"read_buffer_size"`
	WriteBufferSize int           `mapstructure:"write_buffer_size"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig controls the optional Postgres catalog source.
type DatabaseConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// CatalogConfig controls the remote card-type endpoint.
type CatalogConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from the given file path, applying defaults and
// PLATELETS_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.address", ":8081")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.websocket.read_buffer_size", 1024)
	v.SetDefault("server.websocket.write_buffer_size", 4096)
	v.SetDefault("server.websocket.write_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 0)
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("catalog.endpoint", "")
	v.SetDefault("catalog.timeout", 5*time.Second)

	v.SetEnvPrefix("PLATELETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !isNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.enabled is set but database.url is empty")
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	return strings.Contains(err.Error(), "no such file")
}
