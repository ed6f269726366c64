package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	DB       DBConfig       `yaml:"db"`
	Roster   RosterConfig   `yaml:"roster"`
	Reports  ReportsConfig  `yaml:"reports"`
	Rotation RotationConfig `yaml:"rotation"`
	MCP      MCPConfig      `yaml:"mcp"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type RosterConfig struct {
	Path string `yaml:"path"`
}

type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

type RotationConfig struct {
	// Cutoff is the local time of day ("HH:MM") at which the live day
	// is rotated into the archive.
	Cutoff   string `yaml:"cutoff"`
	Timezone string `yaml:"timezone"`
}

type MCPConfig struct {
	// Mode is "http" (served next to the REST API) or "stdio".
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "rollcall.db",
		},
		Roster: RosterConfig{
			Path: "employees.txt",
		},
		Reports: ReportsConfig{
			Dir: "reports",
		},
		Rotation: RotationConfig{
			Cutoff:   "19:00",
			Timezone: "Local",
		},
		MCP: MCPConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ROLLCALL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ROLLCALL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ROLLCALL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROLLCALL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("ROLLCALL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if rosterPath := os.Getenv("ROLLCALL_ROSTER_PATH"); rosterPath != "" {
		cfg.Roster.Path = rosterPath
	}
	if reportsDir := os.Getenv("ROLLCALL_REPORTS_DIR"); reportsDir != "" {
		cfg.Reports.Dir = reportsDir
	}
	if cutoff := os.Getenv("ROLLCALL_ROTATION_CUTOFF"); cutoff != "" {
		cfg.Rotation.Cutoff = cutoff
	}
	if tz := os.Getenv("ROLLCALL_TIMEZONE"); tz != "" {
		cfg.Rotation.Timezone = tz
	}
	if mode := os.Getenv("ROLLCALL_MCP_MODE"); mode != "" {
		cfg.MCP.Mode = mode
	}
	if level := os.Getenv("ROLLCALL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
