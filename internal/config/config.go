package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file the CLI reads when --config is not given.
const DefaultPath = "tcgcatalog.yaml"

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Data     DataConfig     `yaml:"data"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL"`
}

type ServerConfig struct {
	Port int `yaml:"port" env:"PORT"`
}

// Addr is the listen address for the HTTP API.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"POKEMON_TCG_API_URL"`
	Timeout time.Duration `yaml:"timeout" env:"POKEMON_TCG_API_TIMEOUT"`
}

type DataConfig struct {
	SetsFile string `yaml:"sets_file" env:"TCGCATALOG_SETS_FILE"`
	CardsDir string `yaml:"cards_dir" env:"TCGCATALOG_CARDS_DIR"`
}

func Default() ProjectConfig {
	return ProjectConfig{
		Project:  "tcgcatalog",
		Version:  1,
		Database: DatabaseConfig{DSN: "sqlite://./tcgcatalog.db"},
		Server:   ServerConfig{Port: 3000},
		API:      APIConfig{BaseURL: "http://localhost:3000", Timeout: 10 * time.Second},
		Data:     DataConfig{SetsFile: "./sets/en.json", CardsDir: "./cards/en"},
	}
}

// LoadProjectConfig layers the YAML file at path over the defaults and the
// environment over both. A missing file is not an error.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("loading project config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		return fmt.Errorf("database dsn is required")
	}
	if !strings.HasPrefix(dsn, "sqlite://") && !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return fmt.Errorf("unsupported database dsn scheme: %s", dsn)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", cfg.Server.Port)
	}

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base_url must be an absolute http(s) url: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}

	return nil
}

// Starter is the config written by `tcgcatalog init`.
const Starter = `project: tcgcatalog
version: 1
database:
  dsn: sqlite://./tcgcatalog.db
server:
  port: 3000
api:
  base_url: http://localhost:3000
  timeout: 10s
data:
  sets_file: ./sets/en.json
  cards_dir: ./cards/en
`
