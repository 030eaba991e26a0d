// Package config loads and saves the launcher's configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
)

// Config is everything the launcher reads at startup. The core consumes
// only the two rates; the rest is cosmetic.
type Config struct {
	// TickRate is application-logic pulses per second.
	TickRate float64 `toml:"tick_rate"`
	// FrameRate is draw pulses per second, independent of TickRate.
	FrameRate float64 `toml:"frame_rate"`
	// Mouse enables terminal mouse capture.
	Mouse bool `toml:"mouse"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TickRate:  4,
		FrameRate: 60,
		Mouse:     true,
	}
}

// Validate rejects rates the event source cannot run timers at.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %v", c.TickRate)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	}
	return nil
}

// TickInterval converts the tick rate to a timer interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// FrameInterval converts the frame rate to a timer interval.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// Path returns the per-user config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "arcade", "config.toml"), nil
}

// Load reads the config at path, returning defaults when the file does not
// exist. A malformed or invalid file is an error, not a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed. A file
// lock guards against two launcher instances clobbering each other's
// writes.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	defer lock.Unlock()

	f, err := os.CreateTemp(filepath.Dir(path), "config-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
