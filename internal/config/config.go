package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"

    "github.com/mitchellh/go-homedir"
)

// Config holds user settings, stored as JSON at DefaultPath unless -config
// says otherwise. Zero values fall back to the defaults below.
type Config struct {
    NoColor       bool    `json:"noColor,omitempty"`
    LogFile       string  `json:"logFile,omitempty"`
    LogLevel      string  `json:"logLevel,omitempty"`  // debug | info | warn | error | off
    MinColumn     int     `json:"minColumn,omitempty"` // narrowest path column before stacking
    Watch         bool    `json:"watch,omitempty"`     // reload the project when it changes on disk
    SplitFraction float64 `json:"splitFraction,omitempty"` // where "add point" cuts a segment
}

const (
    defaultMinColumn     = 32
    defaultSplitFraction = 0.5
)

// Dir is ~/.shapeshifter.
func Dir() (string, error) {
    home, err := homedir.Dir()
    if err != nil {
        return "", fmt.Errorf("locate home dir: %w", err)
    }
    return filepath.Join(home, ".shapeshifter"), nil
}

// DefaultPath is ~/.shapeshifter/config.json.
func DefaultPath() (string, error) {
    dir, err := Dir()
    if err != nil {
        return "", err
    }
    return filepath.Join(dir, "config.json"), nil
}

// Default returns the settings used when no file exists.
func Default() *Config {
    c := &Config{}
    c.applyDefaults()
    return c
}

func (c *Config) applyDefaults() {
    if c.MinColumn <= 0 {
        c.MinColumn = defaultMinColumn
    }
    if c.SplitFraction <= 0 || c.SplitFraction >= 1 {
        c.SplitFraction = defaultSplitFraction
    }
    if c.LogFile == "" {
        if dir, err := Dir(); err == nil {
            c.LogFile = filepath.Join(dir, "shapeshifter.log")
        }
    }
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (*Config, error) {
    path, err := homedir.Expand(path)
    if err != nil {
        return nil, fmt.Errorf("expand config path: %w", err)
    }
    data, err := os.ReadFile(path)
    if errors.Is(err, os.ErrNotExist) {
        return Default(), nil
    }
    if err != nil {
        return nil, fmt.Errorf("read config: %w", err)
    }
    var c Config
    if err := json.Unmarshal(data, &c); err != nil {
        return nil, fmt.Errorf("parse config JSON: %w", err)
    }
    if c.LogFile != "" {
        if c.LogFile, err = homedir.Expand(c.LogFile); err != nil {
            return nil, fmt.Errorf("expand logFile: %w", err)
        }
    }
    c.applyDefaults()
    return &c, nil
}

func Save(path string, c *Config) error {
    path, err := homedir.Expand(path)
    if err != nil {
        return err
    }
    data, err := json.MarshalIndent(c, "", "  ")
    if err != nil {
        return err
    }
    if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}
