package marshal

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.tagName != "dmc" {
		t.Errorf("tagName = %q, want %q", cfg.tagName, "dmc")
	}
	if cfg.omitEmpty != false {
		t.Errorf("omitEmpty = %v, want false", cfg.omitEmpty)
	}
	if cfg.timeFormat != "060102" {
		t.Errorf("timeFormat = %q, want %q", cfg.timeFormat, "060102")
	}
	if cfg.timeLocation != time.UTC {
		t.Errorf("timeLocation = %v, want UTC", cfg.timeLocation)
	}
}

func TestWithTagName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "custom tag name", input: "custom", expected: "custom"},
		{name: "empty tag name keeps default", input: "", expected: "dmc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			WithTagName(tt.input)(cfg)
			if cfg.tagName != tt.expected {
				t.Errorf("tagName = %q, want %q", cfg.tagName, tt.expected)
			}
		})
	}
}

func TestWithOmitEmpty(t *testing.T) {
	cfg := defaultConfig()
	WithOmitEmpty(true)(cfg)
	if !cfg.omitEmpty {
		t.Error("expected omitEmpty true")
	}
}

func TestWithTimeFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "custom format", input: "2006-01-02", expected: "2006-01-02"},
		{name: "empty format keeps default", input: "", expected: "060102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			WithTimeFormat(tt.input)(cfg)
			if cfg.timeFormat != tt.expected {
				t.Errorf("timeFormat = %q, want %q", cfg.timeFormat, tt.expected)
			}
		})
	}
}

func TestWithTimeLocation(t *testing.T) {
	loc := time.FixedZone("TST", 3600)

	cfg := defaultConfig()
	WithTimeLocation(loc)(cfg)
	if cfg.timeLocation != loc {
		t.Errorf("timeLocation = %v, want %v", cfg.timeLocation, loc)
	}

	cfg2 := defaultConfig()
	WithTimeLocation(nil)(cfg2)
	if cfg2.timeLocation != time.UTC {
		t.Error("expected nil location to keep default UTC")
	}
}
