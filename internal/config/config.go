package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures reel's runtime settings.
type Config struct {
	Page              string
	Interval          time.Duration
	SwipeThresholdMax float64
	RelayBind         string
	RelayURL          string
	MailConfigPath    string
	LogPath           string
}

const (
	defaultConfigPath     = "~/.config/reel/config.toml"
	defaultPage           = "~/.config/reel/deck.yaml"
	defaultMailConfigPath = "~/.config/reel/mail.toml"
	defaultLogPath        = "~/.local/state/reel/reel.log"
	defaultRelayBind      = "127.0.0.1:8025"
	defaultInterval       = 7 * time.Second
	defaultSwipeMax       = 60.0
)

// Load locates and parses the reel config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Page     string `toml:"page"`
		Carousel struct {
			Interval          string  `toml:"interval"`
			SwipeThresholdMax float64 `toml:"swipe_threshold_max"`
		} `toml:"carousel"`
		Relay struct {
			Bind       string `toml:"bind"`
			URL        string `toml:"url"`
			MailConfig string `toml:"mail_config"`
		} `toml:"relay"`
		Log struct {
			Path string `toml:"path"`
		} `toml:"log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if page := strings.TrimSpace(raw.Page); page != "" {
		cfg.Page = mustExpand(page)
	}
	if interval := strings.TrimSpace(raw.Carousel.Interval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: carousel.interval %q is not a positive duration", interval)
		}
		cfg.Interval = d
	}
	if raw.Carousel.SwipeThresholdMax > 0 {
		cfg.SwipeThresholdMax = raw.Carousel.SwipeThresholdMax
	}
	if bind := strings.TrimSpace(raw.Relay.Bind); bind != "" {
		cfg.RelayBind = bind
	}
	cfg.RelayURL = strings.TrimSpace(raw.Relay.URL)
	if cfg.RelayURL == "" {
		cfg.RelayURL = "http://" + cfg.RelayBind
	}
	if mail := strings.TrimSpace(raw.Relay.MailConfig); mail != "" {
		cfg.MailConfigPath = mustExpand(mail)
	}
	if logPath := strings.TrimSpace(raw.Log.Path); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Page:              mustExpand(defaultPage),
		Interval:          defaultInterval,
		SwipeThresholdMax: defaultSwipeMax,
		RelayBind:         defaultRelayBind,
		RelayURL:          "http://" + defaultRelayBind,
		MailConfigPath:    mustExpand(defaultMailConfigPath),
		LogPath:           mustExpand(defaultLogPath),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
