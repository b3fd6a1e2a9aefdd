package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/acolita/calc-average/internal/testing/fakes/fakefs"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q (default)", cfg.Logging.Level, "warn")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Load(nonexistent) expected error, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(path, []byte(":::invalid:::yaml{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load(invalid YAML) expected error, got nil")
	}
	if !strings.Contains(err.Error(), "parse config file") {
		t.Errorf("error = %q, want parse config file prefix", err)
	}
}

func TestLoadValidConfig(t *testing.T) {
	fsys := fakefs.New()
	fsys.AddFile("/etc/calc-average.yaml", []byte(`
logging:
  level: debug
  format: text
`))

	cfg, err := Load("/etc/calc-average.yaml", fsys)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	fsys := fakefs.New()
	fsys.AddFile("/cfg.yaml", []byte("logging:\n  level: error\n"))

	cfg, err := Load("/cfg.yaml", fsys)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "error")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want default %q", cfg.Logging.Format, "json")
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	fsys := fakefs.New()
	fsys.AddFile("/empty.yaml", nil)

	cfg, err := Load("/empty.yaml", fsys)
	if err != nil {
		t.Fatalf("Load(empty) error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "warn")
	}
}

func TestLoadUnknownKeyRejected(t *testing.T) {
	fsys := fakefs.New()
	fsys.AddFile("/cfg.yaml", []byte("minimum: 3\n"))

	if _, err := Load("/cfg.yaml", fsys); err == nil {
		t.Fatal("Load() with unknown key expected error, got nil")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "loud", Format: "xml"}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Validate() error type = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2: %v", len(merr.Errors), merr.Errors)
	}
	if !strings.Contains(err.Error(), "logging.level") || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("error = %q, want both fields mentioned", err)
	}
}

func TestApplyDebug(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyDebug(false)
	if cfg.Logging.Level != "warn" {
		t.Errorf("ApplyDebug(false) changed level to %q", cfg.Logging.Level)
	}

	cfg.ApplyDebug(true)
	if cfg.Logging.Level != "debug" {
		t.Errorf("ApplyDebug(true) level = %q, want debug", cfg.Logging.Level)
	}
}
