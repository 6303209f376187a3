package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	NumFloors    = 4
	NumCars      = 2
	Capacity     = 4
	TickInterval = 100 * time.Millisecond
	StepInterval = 500 * time.Millisecond
	DemoSteps    = 60
)

// Config holds the building topology and runtime switches for the controller.
type Config struct {
	NumFloors    int           `yaml:"NumFloors"`
	NumCars      int           `yaml:"NumCars"`
	Capacity     int           `yaml:"Capacity"`
	TickInterval time.Duration `yaml:"TickInterval"`
	StepInterval time.Duration `yaml:"StepInterval"`
	DemoSteps    int           `yaml:"DemoSteps"`
	// Strict makes internal faults panic instead of falling back.
	Strict  bool   `yaml:"Strict"`
	LogFile string `yaml:"LogFile"`
}

func Default() Config {
	return Config{
		NumFloors:    NumFloors,
		NumCars:      NumCars,
		Capacity:     Capacity,
		TickInterval: TickInterval,
		StepInterval: StepInterval,
		DemoSteps:    DemoSteps,
	}
}

// Load decodes a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.NumFloors < 2:
		return errors.New("config: NumFloors must be at least 2")
	case c.NumCars < 1:
		return errors.New("config: NumCars must be at least 1")
	case c.Capacity < 0:
		return errors.New("config: Capacity must not be negative")
	case c.TickInterval <= 0 || c.StepInterval <= 0:
		return errors.New("config: intervals must be positive")
	}
	return nil
}
