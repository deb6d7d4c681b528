// Package config loads stream-chat settings from an optional YAML file
// and STREAMCHAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"github.com/yourusername/stream-chat/internal/chat"
)

// Renderer names accepted by the client
const (
	RendererTUI      = "tui"
	RendererTermloop = "termloop"
	RendererPlain    = "plain"
)

// ConfigPathEnv names the environment variable holding the config file path
const ConfigPathEnv = "STREAMCHAT_CONFIG"

var (
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrEmptyUsername   = errors.New("username must not be empty")
)

// Config holds all client settings
type Config struct {
	Username       string      `yaml:"username" env:"STREAMCHAT_USERNAME" env-default:"You"`
	Renderer       string      `yaml:"renderer" env:"STREAMCHAT_RENDERER" env-default:"tui"`
	LogFile        string      `yaml:"log_file" env:"STREAMCHAT_LOG_FILE"`
	LogLevel       string      `yaml:"log_level" env:"STREAMCHAT_LOG_LEVEL" env-default:"info"`
	ShowTimestamps bool        `yaml:"show_timestamps" env:"STREAMCHAT_SHOW_TIMESTAMPS" env-default:"false"`
	DisableScript  bool        `yaml:"disable_script" env:"STREAMCHAT_DISABLE_SCRIPT" env-default:"false"`
	Script         chat.Script `yaml:"script"`
}

// Load reads path when it is non-empty, otherwise the environment only
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Renderer = strings.ToLower(strings.TrimSpace(cfg.Renderer))
	cfg.Username = strings.TrimSpace(cfg.Username)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks fields that have a fixed set of values
func (c *Config) Validate() error {
	if c.Username == "" {
		return ErrEmptyUsername
	}
	switch c.Renderer {
	case RendererTUI, RendererTermloop, RendererPlain:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// CannedScript returns the script the client should schedule
func (c *Config) CannedScript() chat.Script {
	if c.DisableScript {
		return nil
	}
	if len(c.Script) == 0 {
		return chat.DefaultScript()
	}
	return c.Script.Normalize()
}
