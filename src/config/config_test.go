package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "NumFloors: 8\nCapacity: 6\nStrict: true\nTickInterval: 250ms\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumFloors != 8 || cfg.Capacity != 6 || !cfg.Strict {
		t.Errorf("Load = %+v, expected NumFloors 8, Capacity 6, Strict", cfg)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 250ms", cfg.TickInterval)
	}
	if cfg.NumCars != NumCars {
		t.Errorf("NumCars = %d, expected default %d", cfg.NumCars, NumCars)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml")},
		{"malformed yaml", writeConfig(t, "NumFloors: [1\n")},
		{"too few floors", writeConfig(t, "NumFloors: 1\n")},
		{"no cars", writeConfig(t, "NumCars: 0\n")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path); err == nil {
				t.Errorf("Load(%s) succeeded, expected an error", tc.name)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, false},
		{"negative capacity", func(c *Config) { c.Capacity = -1 }, true},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, true},
		{"zero step", func(c *Config) { c.StepInterval = 0 }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
