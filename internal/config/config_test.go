package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if config.Listen.Addr != ":8080" {
		t.Errorf("Listen.Addr = %q, want %q", config.Listen.Addr, ":8080")
	}
	if config.Game.TickMillis != 100 {
		t.Errorf("Game.TickMillis = %d, want 100", config.Game.TickMillis)
	}
	if config.WebSocket.MaxMessageSize != 4096 {
		t.Errorf("WebSocket.MaxMessageSize = %d, want 4096", config.WebSocket.MaxMessageSize)
	}
	if config.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q", config.Database.Driver, "sqlite")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `listen:
  addr: ":9999"
websocket:
  allowed_origins:
    - "http://localhost:3000"
  max_message_size: 8192
game:
  tick_millis: 50
data:
  templates_path: data/templates.yaml
database:
  driver: sqlite
  sqlite_path: /tmp/saves.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Listen.Addr != ":9999" {
		t.Errorf("Listen.Addr = %q, want %q", config.Listen.Addr, ":9999")
	}
	if config.Game.TickMillis != 50 {
		t.Errorf("Game.TickMillis = %d, want 50", config.Game.TickMillis)
	}
	if len(config.WebSocket.AllowedOrigins) != 1 {
		t.Fatalf("AllowedOrigins = %v, want one entry", config.WebSocket.AllowedOrigins)
	}
	if config.Data.TemplatesPath != "data/templates.yaml" {
		t.Errorf("Data.TemplatesPath = %q, want %q", config.Data.TemplatesPath, "data/templates.yaml")
	}
	if config.Database.SQLitePath != "/tmp/saves.db" {
		t.Errorf("Database.SQLitePath = %q, want %q", config.Database.SQLitePath, "/tmp/saves.db")
	}
}

func TestLoadConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("listen: [not: valid"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err == nil {
		t.Error("LoadConfig of broken YAML returned nil error")
	}
	if config == nil || config.Listen.Addr != ":8080" {
		t.Error("LoadConfig of broken YAML did not fall back to defaults")
	}
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		origin      string
		requestHost string
		want        bool
	}{
		{"same origin", nil, "http://localhost:8080", "localhost:8080", true},
		{"no origin header", nil, "", "localhost:8080", true},
		{"cross origin denied", nil, "http://evil.example", "localhost:8080", false},
		{"exact match", []string{"http://localhost:3000"}, "http://localhost:3000", "localhost:8080", true},
		{"not in list", []string{"http://localhost:3000"}, "http://other.example", "localhost:8080", false},
		{"wildcard", []string{"*"}, "http://anywhere.example", "localhost:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &WebSocketConfig{AllowedOrigins: tt.origins}
			if got := c.IsOriginAllowed(tt.origin, tt.requestHost); got != tt.want {
				t.Errorf("IsOriginAllowed(%q, %q) = %v, want %v", tt.origin, tt.requestHost, got, tt.want)
			}
		})
	}
}
