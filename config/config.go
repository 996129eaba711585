package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xeptore/jamlist/log"
)

type Config struct {
	Addr            string        `json:"addr"             yaml:"addr"`
	LogFormat       string        `json:"log_format"       yaml:"log_format"`
	DefaultGenre    string        `json:"default_genre"    yaml:"default_genre"`
	CacheMaxAge     time.Duration `json:"cache_max_age"    yaml:"cache_max_age"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	Catalog         Catalog       `json:"catalog"          yaml:"catalog"`
}

type Catalog struct {
	BaseURL     string `json:"base_url"     yaml:"base_url"`
	Limit       int    `json:"limit"        yaml:"limit"`
	AudioFormat string `json:"audio_format" yaml:"audio_format"`
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		LogFormat:       log.FormatPretty,
		DefaultGenre:    "lofi",
		CacheMaxAge:     time.Hour,
		ShutdownTimeout: 10 * time.Second,
		Catalog: Catalog{
			BaseURL:     "https://api.jamendo.com/v3.0/tracks/",
			Limit:       100,
			AudioFormat: "mp31",
		},
	}
}

func (cfg *Config) validate() error {
	if cfg.Addr == "" {
		return errors.New("listen address is empty")
	}

	switch cfg.LogFormat {
	case log.FormatPretty, log.FormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	if cfg.DefaultGenre == "" {
		return errors.New("default genre is empty")
	}

	if cfg.CacheMaxAge < time.Second {
		return fmt.Errorf("cache max age must be at least one second, got %s", cfg.CacheMaxAge)
	}

	if cfg.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	if u, err := url.Parse(cfg.Catalog.BaseURL); nil != err {
		return fmt.Errorf("invalid catalog base URL: %v", err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("catalog base URL scheme must be http or https, got %q", u.Scheme)
	}

	if cfg.Catalog.Limit <= 0 {
		return errors.New("catalog limit must be positive")
	}

	if cfg.Catalog.AudioFormat == "" {
		return errors.New("catalog audio format is empty")
	}

	return nil
}

// FromFile loads the YAML file at filePath on top of Default.
func FromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if nil != err {
		return nil, fmt.Errorf("failed to read config file %q: %v", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config file %q: %v", filePath, err)
	}

	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	return &cfg, nil
}

// FromString loads YAML data on top of Default.
func FromString(data string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(data), &cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	return &cfg, nil
}
