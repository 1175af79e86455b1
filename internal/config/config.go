// Package config loads the server configuration from YAML with safe
// defaults for every field.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simplehero/dungeon/internal/database"
)

// ServerConfig holds server-wide configuration settings.
type ServerConfig struct {
	Listen    ListenConfig    `yaml:"listen"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Game      GameConfig      `yaml:"game"`
	Data      DataConfig      `yaml:"data"`
	Database  database.Config `yaml:"database"`
}

// ListenConfig holds the HTTP listener settings.
type ListenConfig struct {
	// Addr is the host:port the server binds to.
	Addr string `yaml:"addr"`
}

// WebSocketConfig holds WebSocket-specific settings.
type WebSocketConfig struct {
	// AllowedOrigins is a list of origins allowed to connect.
	// Empty list enforces same-origin policy. "*" allows all origins.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// GameConfig holds simulation settings.
type GameConfig struct {
	// TickMillis is the simulation tick interval in milliseconds.
	TickMillis int `yaml:"tick_millis"`
}

// DataConfig holds paths to the YAML catalogs. Empty paths mean the
// built-in catalogs are used.
type DataConfig struct {
	TemplatesPath string `yaml:"templates_path"`
	RacesPath     string `yaml:"races_path"`
	ItemsPath     string `yaml:"items_path"`
}

// DefaultConfig returns a ServerConfig with working defaults.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Listen: ListenConfig{
			Addr: ":8080",
		},
		WebSocket: WebSocketConfig{
			AllowedOrigins: []string{},
			MaxMessageSize: 4096,
		},
		Game: GameConfig{
			TickMillis: 100,
		},
		Database: database.DefaultConfig("data/saves.db"),
	}
}

// LoadConfig loads server configuration from a YAML file. A missing file
// yields the defaults with no error; a file that cannot be parsed yields
// the defaults plus the parse error.
func LoadConfig(path string) (*ServerConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	if config.Listen.Addr == "" {
		config.Listen.Addr = ":8080"
	}
	if config.Game.TickMillis <= 0 {
		config.Game.TickMillis = 100
	}
	if config.WebSocket.MaxMessageSize <= 0 {
		config.WebSocket.MaxMessageSize = 4096
	}

	return config, nil
}

// IsOriginAllowed checks if the given origin may connect. An empty allow
// list enforces same-origin; "*" allows everything.
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return true
		}
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host. A missing
// Origin header means a non-browser client and is treated as same-origin.
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true
	}

	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
