package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerAddr = "127.0.0.1:8787"
	DefaultNATSBucket = "plant-widget"
)

type NATSConfig struct {
	URL    string `yaml:"url"`
	Bucket string `yaml:"bucket"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	DataDir     string       `yaml:"-"`
	DBPath      string       `yaml:"db_path"`
	AnchorsPath string       `yaml:"anchors_path"`
	WidgetsPath string       `yaml:"widgets_path"`
	LogLevel    string       `yaml:"log_level"`
	NATS        NATSConfig   `yaml:"nats"`
	Server      ServerConfig `yaml:"server"`
}

// New returns the default configuration rooted at dataDir.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:     dataDir,
		DBPath:      filepath.Join(dataDir, "plant.db"),
		WidgetsPath: filepath.Join(dataDir, "widgets", "widgets.json"),
		LogLevel:    "info",
		NATS:        NATSConfig{Bucket: DefaultNATSBucket},
		Server:      ServerConfig{Addr: DefaultServerAddr},
	}, nil
}

// Load builds the default configuration for dataDir and overlays the YAML file
// at path. An empty path means <dataDir>/config.yaml, which may be absent.
func Load(dataDir, path string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dataDir, "config.yaml")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.DBPath = resolve(dataDir, cfg.DBPath)
	cfg.AnchorsPath = resolve(dataDir, cfg.AnchorsPath)
	cfg.WidgetsPath = resolve(dataDir, cfg.WidgetsPath)
	if cfg.NATS.Bucket == "" {
		cfg.NATS.Bucket = DefaultNATSBucket
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	return cfg, nil
}

// DefaultDataDir is ~/.plant, falling back to ./.plant without a home dir.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".plant"
	}
	return filepath.Join(home, ".plant")
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(base, path))
}
