package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/handiism/artic-table/internal/artic"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}
	if s.PageSize != 12 {
		t.Errorf("PageSize = %d, want 12", s.PageSize)
	}
	if s.BatchSize != 100 {
		t.Errorf("BatchSize = %d, want 100", s.BatchSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantMsg string
	}{
		{"bad url", func(s *Settings) { s.BaseURL = "not a url" }, "BaseURL must be a valid URL"},
		{"zero page size", func(s *Settings) { s.PageSize = 0 }, "PageSize must be at least 1"},
		{"batch over upstream cap", func(s *Settings) { s.BatchSize = 101 }, "BatchSize must be at most 100"},
		{"unknown strategy", func(s *Settings) { s.GatherStrategy = "random" }, "GatherStrategy must be one of"},
		{"no fields", func(s *Settings) { s.Fields = nil }, "Fields must be at least 1"},
		{"negative timeout", func(s *Settings) { s.RequestTimeout = -1 }, "RequestTimeout must be at least 0"},
		{"bad log level", func(s *Settings) { s.LogLevel = "loud" }, "LogLevel must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(s, DefaultSettings()) {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			s := DefaultSettings()
			s.PageSize = 20
			s.GatherStrategy = "sequential"
			s.AllowedOrigins = []string{"https://example.org"}
			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(loaded, s) {
				t.Errorf("loaded = %+v, want %+v", loaded, s)
			}
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("page_size: 24\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.PageSize != 24 {
		t.Errorf("PageSize = %d, want 24", s.PageSize)
	}
	if s.BaseURL != artic.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", s.BaseURL)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ARTIC_BASE_URL", "http://localhost:9999/api/v1")
	t.Setenv("ARTIC_PAGE_SIZE", "24")
	t.Setenv("ARTIC_GATHER_STRATEGY", "sequential")
	t.Setenv("ARTIC_FIELDS", "id, title ,")
	t.Setenv("ARTIC_REQUEST_TIMEOUT", "2.5")

	s := DefaultSettings()
	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if s.BaseURL != "http://localhost:9999/api/v1" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.PageSize != 24 {
		t.Errorf("PageSize = %d, want 24", s.PageSize)
	}
	if !reflect.DeepEqual(s.Fields, []string{"id", "title"}) {
		t.Errorf("Fields = %v", s.Fields)
	}
	if s.Timeout() != 2500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 2.5s", s.Timeout())
	}

	cfg := s.ToGatherConfig()
	if cfg.Strategy != artic.StrategySequential || cfg.PageSize != 24 {
		t.Errorf("ToGatherConfig() = %+v", cfg)
	}
}

func TestApplyEnv_BadNumber(t *testing.T) {
	t.Setenv("ARTIC_BATCH_SIZE", "lots")

	s := DefaultSettings()
	err := s.ApplyEnv()
	if err == nil || !strings.Contains(err.Error(), "ARTIC_BATCH_SIZE") {
		t.Errorf("expected ARTIC_BATCH_SIZE error, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("ARTIC_LOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARTIC_LOG_LEVEL", "")
	os.Unsetenv("ARTIC_LOG_LEVEL")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	s := DefaultSettings()
	if err := s.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
}
