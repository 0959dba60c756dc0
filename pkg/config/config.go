// Package config loads polyclip settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
)

// FileName is the config file looked up by LoadProject.
const FileName = "polyclip.yaml"

// Default returns the built-in configuration. The replay pair is a triangle
// cut by an inverted triangle, which always intersects.
func Default() *Config {
	return &Config{
		Server: ServerDef{
			TCPAddr:     ":8080",
			HTTPAddr:    ":3000",
			ReadTimeout: 10 * time.Second,
			MaxVertices: 100000,
		},
		Client: ClientDef{
			Addr:    "127.0.0.1:8080",
			Timeout: 10 * time.Second,
		},
		Replay: ReplayDef{
			Subject: []geo.Point{geo.Pt(0, 0), geo.Pt(2, 0), geo.Pt(1, 3)},
			Cutter:  []geo.Point{geo.Pt(0, 2), geo.Pt(1, -1), geo.Pt(2, 2)},
		},
	}
}

// Load reads a config file and overlays it on Default. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadProject loads polyclip.yaml from dir, falling back to Default when the
// directory has no config file.
func LoadProject(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) check() error {
	if c.Server.ReadTimeout < 0 || c.Client.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.Server.MaxVertices < 0 {
		return fmt.Errorf("server.max_vertices must not be negative")
	}
	if c.Replay.Rate < 0 || c.Replay.Count < 0 {
		return fmt.Errorf("replay.rate and replay.count must not be negative")
	}
	return nil
}
