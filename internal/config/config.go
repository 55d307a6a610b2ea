package config

import "time"

// Config holds the application configuration.
type Config struct {
	ServerURL      string        `yaml:"server_url"`
	DefaultTimeout time.Duration `yaml:"default_timeout"`
	Theme          string        `yaml:"theme"`
	LogFile        string        `yaml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ServerURL:      "http://localhost:5000",
		DefaultTimeout: 30 * time.Second,
		Theme:          "catppuccin-mocha",
		LogFile:        "",
	}
}
