// Package config loads the ftr configuration file and its environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/etnz/fortress"
	"github.com/etnz/fortress/store"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// Config is the content of config.toml.
type Config struct {
	Storage   Storage   `toml:"storage"`
	Settings  Targets   `toml:"settings"`
	Display   Display   `toml:"display"`
	Reminders Reminders `toml:"reminders"`
	Assist    Assist    `toml:"assist"`

	// LogLevel is only set from the environment.
	LogLevel string `toml:"-"`
}

type Storage struct {
	Dir  string `toml:"dir"`
	File string `toml:"file"`
}

// Targets seed the settings of a new fortress.
type Targets struct {
	EmergencyTarget int64 `toml:"emergency_target"`
	WealthTarget    int64 `toml:"wealth_target"`
}

type Display struct {
	Currency string `toml:"currency"`
	PageSize int    `toml:"page_size"`
}

type Reminders struct {
	Schedule string `toml:"schedule"`
}

type Assist struct {
	Model string `toml:"model"`
}

const (
	DefaultSchedule = "0 9 * * *"
	DefaultModel    = "gemini-2.5-pro"
	DefaultCurrency = "INR"
)

const defaultConfigTOML = `# Fortress configuration

[storage]
# data directory, ~/.local/share/fortress when empty
dir = ""
file = "fortress.json"

# seed the targets of a new fortress, use "ftr settings" afterwards.
[settings]
emergency_target = 600000
wealth_target = 5000000

[display]
currency = "INR"
page_size = 5

[reminders]
# cron schedule of "ftr remind -watch"
schedule = "0 9 * * *"

[assist]
model = "gemini-2.5-pro"
`

// Default returns the configuration used when no file exists.
func Default() *Config {
	s := fortress.DefaultSettings()
	return &Config{
		Storage:   Storage{File: store.DefaultFileName},
		Settings:  Targets{EmergencyTarget: s.EmergencyTarget.IntPart(), WealthTarget: s.WealthTarget.IntPart()},
		Display:   Display{Currency: DefaultCurrency, PageSize: fortress.DefaultPageSize},
		Reminders: Reminders{Schedule: DefaultSchedule},
		Assist:    Assist{Model: DefaultModel},
	}
}

// Path returns the default location of config.toml, in the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "fortress", "config.toml"), nil
}

// Load reads the configuration file at path, the default path when empty.
// A missing default file is created with the default content. Environment
// variables, including those of a .env file, are applied last.
func Load(path string) (*Config, error) {
	// a missing .env is fine.
	_ = godotenv.Load()

	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
		if err := writeDefault(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func writeDefault(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config.toml: %w", err)
	}
	return cfg, cfg.normalize()
}

func (c *Config) normalize() error {
	def := Default()
	c.Storage.Dir = strings.TrimSpace(c.Storage.Dir)
	if strings.TrimSpace(c.Storage.File) == "" {
		c.Storage.File = def.Storage.File
	}
	if c.Storage.File != filepath.Base(c.Storage.File) {
		return fmt.Errorf("storage.file %q must be a file name, use storage.dir for the directory", c.Storage.File)
	}
	if c.Settings.EmergencyTarget < 0 || c.Settings.WealthTarget < 0 {
		return fmt.Errorf("settings: targets cannot be negative")
	}
	c.Display.Currency = strings.ToUpper(strings.TrimSpace(c.Display.Currency))
	if c.Display.Currency == "" {
		c.Display.Currency = def.Display.Currency
	}
	if c.Display.PageSize < 1 || c.Display.PageSize > 50 {
		c.Display.PageSize = def.Display.PageSize
	}
	if strings.TrimSpace(c.Reminders.Schedule) == "" {
		c.Reminders.Schedule = def.Reminders.Schedule
	}
	if _, err := cron.ParseStandard(c.Reminders.Schedule); err != nil {
		return fmt.Errorf("reminders.schedule %q: %w", c.Reminders.Schedule, err)
	}
	if strings.TrimSpace(c.Assist.Model) == "" {
		c.Assist.Model = def.Assist.Model
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Storage.Dir = getEnv("FORTRESS_DATA_DIR", c.Storage.Dir)
	c.LogLevel = getEnv("FORTRESS_LOG_LEVEL", c.LogLevel)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DataDir returns the directory holding the snapshot.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "fortress"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "fortress"), nil
}

// FortressSettings returns the settings of a new fortress.
func (c *Config) FortressSettings() fortress.Settings {
	return fortress.Settings{
		EmergencyTarget: decimal.NewFromInt(c.Settings.EmergencyTarget),
		WealthTarget:    decimal.NewFromInt(c.Settings.WealthTarget),
	}
}
