package playwait

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config is wait tuning loaded from a fixture file, so suites can adjust
// timeouts without recompiling.
//
// Example:
//
//	timeout_seconds: 10
//	fail_on_timeout: false
type Config struct {
	// TimeoutSeconds bounds each wait. Zero leaves the current timeout
	// unchanged.
	TimeoutSeconds float64 `yaml:"timeout_seconds" json:"timeout_seconds" validate:"omitempty,gt=0"`

	// FailOnTimeout controls the timeout truth table. Nil leaves the
	// current setting unchanged.
	FailOnTimeout *bool `yaml:"fail_on_timeout" json:"fail_on_timeout"`

	// HistorySize resizes the wait history ring. Nil leaves the current
	// size unchanged; zero disables history.
	HistorySize *int `yaml:"history_size" json:"history_size"`
}

// ParseConfig parses and validates wait configuration. The format is
// detected from content: data starting with '{' or '[' is parsed as JSON,
// anything else as YAML (which also accepts plain JSON).
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if cfg.HistorySize != nil && *cfg.HistorySize < 0 {
		return nil, fmt.Errorf("validation failed: history_size must not be negative")
	}
	return &cfg, nil
}

// LoadConfig reads and parses wait configuration from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Apply maps the set fields of cfg onto the waiter. Unset fields leave
// the corresponding setting unchanged.
func (w *Waiter) Apply(cfg *Config) *Waiter {
	if cfg == nil {
		return w
	}
	if cfg.TimeoutSeconds > 0 {
		w.Timeout(time.Duration(cfg.TimeoutSeconds * float64(time.Second)))
	}
	if cfg.FailOnTimeout != nil {
		w.FailOnTimeout(*cfg.FailOnTimeout)
	}
	if cfg.HistorySize != nil {
		w.HistorySize(*cfg.HistorySize)
	}
	return w
}
