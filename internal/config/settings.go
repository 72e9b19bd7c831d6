package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Upstream settings
	BaseURL        string   `json:"base_url" yaml:"base_url" validate:"required,url"`
	UserAgent      string   `json:"user_agent" yaml:"user_agent" validate:"required"`
	Fields         []string `json:"fields" yaml:"fields" validate:"min=1,dive,required"`
	RequestTimeout float64  `json:"request_timeout" yaml:"request_timeout" validate:"gte=0"` // seconds, 0 = default

	// Table settings
	PageSize int `json:"page_size" yaml:"page_size" validate:"min=1,max=100"`

	// Bulk gather settings
	GatherStrategy        string `json:"gather_strategy" yaml:"gather_strategy" validate:"oneof=sequential wave"`
	BatchSize             int    `json:"batch_size" yaml:"batch_size" validate:"min=1,max=100"`
	MaxConcurrentRequests int    `json:"max_concurrent_requests" yaml:"max_concurrent_requests" validate:"min=1,max=32"`

	// Logging settings
	LogLevel string `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error disabled"`
	LogFile  string `json:"log_file" yaml:"log_file"`

	// Server settings
	ServerAddr     string   `json:"server_addr" yaml:"server_addr" validate:"required"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:        artic.DefaultBaseURL,
		UserAgent:      "artic-table (https://github.com/handiism/artic-table)",
		Fields:         model.Fields(),
		RequestTimeout: 60,

		PageSize: artic.DefaultPageSize,

		GatherStrategy:        string(artic.StrategyWave),
		BatchSize:             artic.MaxLimit,
		MaxConcurrentRequests: 4,

		LogLevel: "info",

		ServerAddr:     ":8080",
		AllowedOrigins: []string{"http://localhost:*"},
	}
}

// Load reads settings from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadDotEnv loads environment variables from the given files, or from .env
// when none are given. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from ARTIC_* environment variables.
//
// Recognized variables: ARTIC_BASE_URL, ARTIC_USER_AGENT, ARTIC_FIELDS
// (comma-separated), ARTIC_REQUEST_TIMEOUT, ARTIC_PAGE_SIZE,
// ARTIC_GATHER_STRATEGY, ARTIC_BATCH_SIZE, ARTIC_MAX_CONCURRENT_REQUESTS,
// ARTIC_LOG_LEVEL, ARTIC_LOG_FILE, ARTIC_SERVER_ADDR, ARTIC_ALLOWED_ORIGINS.
func (s *Settings) ApplyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = splitList(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("ARTIC_BASE_URL", &s.BaseURL)
	str("ARTIC_USER_AGENT", &s.UserAgent)
	list("ARTIC_FIELDS", &s.Fields)
	str("ARTIC_GATHER_STRATEGY", &s.GatherStrategy)
	str("ARTIC_LOG_LEVEL", &s.LogLevel)
	str("ARTIC_LOG_FILE", &s.LogFile)
	str("ARTIC_SERVER_ADDR", &s.ServerAddr)
	list("ARTIC_ALLOWED_ORIGINS", &s.AllowedOrigins)

	if v, ok := os.LookupEnv("ARTIC_REQUEST_TIMEOUT"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("ARTIC_REQUEST_TIMEOUT: %w", err)
		}
		s.RequestTimeout = f
	}

	return errors.Join(
		num("ARTIC_PAGE_SIZE", &s.PageSize),
		num("ARTIC_BATCH_SIZE", &s.BatchSize),
		num("ARTIC_MAX_CONCURRENT_REQUESTS", &s.MaxConcurrentRequests),
	)
}

// Timeout returns the request timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

// ToGatherConfig converts settings to artic.GatherConfig.
func (s *Settings) ToGatherConfig() artic.GatherConfig {
	strategy, err := artic.ParseStrategy(s.GatherStrategy)
	if err != nil {
		strategy = artic.StrategyWave
	}

	return artic.GatherConfig{
		Strategy:       strategy,
		PageSize:       s.PageSize,
		BatchSize:      s.BatchSize,
		MaxConcurrency: s.MaxConcurrentRequests,
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
