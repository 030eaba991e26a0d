package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Got %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade", "config.toml")
	want := Config{TickRate: 8, FrameRate: 30, Mouse: false}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tick_rate = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickRate != 10 {
		t.Errorf("TickRate = %v, want 10", cfg.TickRate)
	}
	if cfg.FrameRate != Default().FrameRate || cfg.Mouse != Default().Mouse {
		t.Errorf("Unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tick_rate = = nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}

func TestLoadRejectsInvalidRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tick_rate = -1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a negative tick rate")
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(path, Config{TickRate: 0, FrameRate: 60}); err == nil {
		t.Error("Expected an error saving an invalid config")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("Invalid config must not be written")
	}
}

func TestIntervals(t *testing.T) {
	cfg := Config{TickRate: 4, FrameRate: 60, Mouse: true}
	if got := cfg.TickInterval(); got != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", got)
	}
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("FrameInterval = %v, want %v", got, time.Second/60)
	}
}
