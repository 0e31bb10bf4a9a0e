package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects and configures the persistence backend.
// Backend is "sqlite" (default) or "postgres". Path is the SQLite file;
// the remaining fields are PostgreSQL connection parameters.
type StorageConfig struct {
	Backend  string `yaml:"backend"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// AuthConfig guards the mutating API routes. An empty APIKey leaves the
// API open, for tailnet-only or local deployments.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (s StorageConfig) DSN() string {
	sslmode := s.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		s.User, s.Password, s.Host, s.Port, s.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix WEEKPLAN_:
//
//	WEEKPLAN_SERVER_HOST, WEEKPLAN_SERVER_PORT,
//	WEEKPLAN_STORAGE_BACKEND, WEEKPLAN_STORAGE_PATH,
//	WEEKPLAN_DB_HOST, WEEKPLAN_DB_PORT, WEEKPLAN_DB_NAME,
//	WEEKPLAN_DB_USER, WEEKPLAN_DB_PASSWORD, WEEKPLAN_DB_SSLMODE,
//	WEEKPLAN_AUTH_API_KEY
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEEKPLAN_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("WEEKPLAN_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("WEEKPLAN_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("WEEKPLAN_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("WEEKPLAN_DB_HOST"); v != "" {
		cfg.Storage.Host = v
	}
	if v := os.Getenv("WEEKPLAN_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Port = port
		}
	}
	if v := os.Getenv("WEEKPLAN_DB_NAME"); v != "" {
		cfg.Storage.Name = v
	}
	if v := os.Getenv("WEEKPLAN_DB_USER"); v != "" {
		cfg.Storage.User = v
	}
	if v := os.Getenv("WEEKPLAN_DB_PASSWORD"); v != "" {
		cfg.Storage.Password = v
	}
	if v := os.Getenv("WEEKPLAN_DB_SSLMODE"); v != "" {
		cfg.Storage.SSLMode = v
	}
	if v := os.Getenv("WEEKPLAN_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	if cfg.Storage.Backend == "sqlite" && cfg.Storage.Path == "" {
		cfg.Storage.Path = "weekplan.db"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Storage.Backend {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite backend")
		}
	case "postgres":
		if c.Storage.Host == "" {
			return fmt.Errorf("storage.host is required for the postgres backend")
		}
		if c.Storage.Port == 0 {
			return fmt.Errorf("storage.port is required for the postgres backend")
		}
		if c.Storage.Name == "" {
			return fmt.Errorf("storage.name is required for the postgres backend")
		}
		if c.Storage.User == "" {
			return fmt.Errorf("storage.user is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be sqlite or postgres, got %q", c.Storage.Backend)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
