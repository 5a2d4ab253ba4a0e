package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "college_scorecard" {
		t.Errorf("database name = %q", cfg.Database.Name)
	}
	if cfg.Dataset.DefaultYear != 2023 {
		t.Errorf("default year = %d, want 2023", cfg.Dataset.DefaultYear)
	}
	if cfg.Dataset.MajorThreshold != 0.05 {
		t.Errorf("major threshold = %v, want 0.05", cfg.Dataset.MajorThreshold)
	}
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: "9090"
dataset:
  default_year: 2021
logging:
  level: debug
  format: text
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Dataset.DefaultYear != 2021 {
		t.Errorf("default year = %d, want 2021", cfg.Dataset.DefaultYear)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("log format = %q, want text", cfg.Logging.Format)
	}
	// Values the file omits keep their defaults.
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("database uri = %q", cfg.Database.URI)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATASET_DEFAULT_YEAR", "2022")
	t.Setenv("DATASET_MAJOR_THRESHOLD", "0.1")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.Dataset.DefaultYear != 2022 {
		t.Errorf("default year = %d, want env override 2022", cfg.Dataset.DefaultYear)
	}
	if cfg.Dataset.MajorThreshold != 0.1 {
		t.Errorf("major threshold = %v, want env override 0.1", cfg.Dataset.MajorThreshold)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dataset:\n  major_threshold: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("a threshold above 1 must be rejected")
	}
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.CORS.Origins = "http://localhost:3000, https://example.edu ,"

	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://example.edu" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
