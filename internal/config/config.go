// Package config loads FocusCoach settings from defaults, an optional YAML
// file and FOCUSCOACH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"gopkg.in/yaml.v3"
)

// DeadlineSourceKind selects where deadlines come from.
type DeadlineSourceKind string

const (
	SourceSample DeadlineSourceKind = "sample"
	SourceGmail  DeadlineSourceKind = "gmail"
)

// GmailConfig holds the OAuth file locations and query limits for the
// Gmail deadline source.
type GmailConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
	Query           string `yaml:"query"`
	MaxResults      int64  `yaml:"max_results"`
}

// PomodoroConfig holds the cycle lengths in minutes.
type PomodoroConfig struct {
	Work      int `yaml:"work"`
	Break     int `yaml:"break"`
	LongBreak int `yaml:"long_break"`
}

// Config holds all runtime settings.
type Config struct {
	Home           string             `yaml:"-"`
	DBPath         string             `yaml:"db_path"`
	ClientID       string             `yaml:"client_id"`
	DefaultUrgency domain.Urgency     `yaml:"default_urgency"`
	DeadlineSource DeadlineSourceKind `yaml:"deadline_source"`
	LogUseCases    bool               `yaml:"log_usecases"`
	Gmail          GmailConfig        `yaml:"gmail"`
	Pomodoro       PomodoroConfig     `yaml:"pomodoro"`
}

// Default returns the built-in settings rooted at home (usually
// ~/.focuscoach).
func Default(home string) Config {
	return Config{
		Home:           home,
		DBPath:         filepath.Join(home, "focuscoach.db"),
		ClientID:       "default",
		DefaultUrgency: domain.UrgencyMedium,
		DeadlineSource: SourceSample,
		Gmail: GmailConfig{
			CredentialsFile: filepath.Join(home, "credentials.json"),
			TokenFile:       filepath.Join(home, "token.json"),
			MaxResults:      20,
		},
		Pomodoro: PomodoroConfig{Work: 25, Break: 5, LongBreak: 15},
	}
}

// Load resolves the settings. The config file is $FOCUSCOACH_CONFIG or
// <home>/config.yaml; a missing file is not an error.
func Load() (Config, error) {
	home := os.Getenv("FOCUSCOACH_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		home = filepath.Join(userHome, ".focuscoach")
	}
	cfg := Default(home)

	path := os.Getenv("FOCUSCOACH_CONFIG")
	if path == "" {
		path = filepath.Join(home, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FOCUSCOACH_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("FOCUSCOACH_CLIENT_ID"); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv("FOCUSCOACH_DEFAULT_URGENCY"); v != "" {
		c.DefaultUrgency = domain.Urgency(v)
	}
	if v := os.Getenv("FOCUSCOACH_DEADLINE_SOURCE"); v != "" {
		c.DeadlineSource = DeadlineSourceKind(v)
	}
	if v := os.Getenv("FOCUSCOACH_LOG_USECASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOCUSCOACH_GMAIL_CREDENTIALS"); v != "" {
		c.Gmail.CredentialsFile = v
	}
	if v := os.Getenv("FOCUSCOACH_GMAIL_TOKEN"); v != "" {
		c.Gmail.TokenFile = v
	}
	applyIntEnv(&c.Pomodoro.Work, "FOCUSCOACH_POMODORO_WORK")
	applyIntEnv(&c.Pomodoro.Break, "FOCUSCOACH_POMODORO_BREAK")
	applyIntEnv(&c.Pomodoro.LongBreak, "FOCUSCOACH_POMODORO_LONG_BREAK")
}

// normalize replaces invalid values with defaults.
func (c *Config) normalize() {
	c.DefaultUrgency = domain.ParseUrgency(string(c.DefaultUrgency))
	if c.DeadlineSource != SourceGmail {
		c.DeadlineSource = SourceSample
	}
	if c.ClientID == "" {
		c.ClientID = "default"
	}
	if c.Gmail.MaxResults <= 0 {
		c.Gmail.MaxResults = 20
	}
}

func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}
