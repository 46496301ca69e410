package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	errBadScenario    = errors.New("invalid scenario")
	errDigestMismatch = errors.New("digest mismatch")
)

type scenario struct {
	Name       string `yaml:"name"`
	Size       int    `yaml:"size"`       // initial array length
	Iterations int    `yaml:"iterations"` // number of edits
	Modulus    int    `yaml:"modulus"`    // filter keeps values divisible by this
	// ExpectedDigest pins the filtered snapshot of a run. Empty skips the check.
	ExpectedDigest string `yaml:"expectedDigest"`
}

type benchmarkConfig struct {
	Scenarios []scenario `yaml:"scenarios"`
}

var defaultScenarios = []scenario{
	{Name: "small dense", Size: 10, Iterations: 100_000, Modulus: 2},
	{Name: "medium sparse", Size: 1_000, Iterations: 50_000, Modulus: 7},
	{Name: "large", Size: 10_000, Iterations: 20_000, Modulus: 3},
	{Name: "grow from empty", Size: 0, Iterations: 20_000, Modulus: 5},
	{Name: "pinned", Size: 16, Iterations: 1_000, Modulus: 3, ExpectedDigest: "cbb581168bfb508b"},
}

// loadConfig reads scenarios from path, or returns the built-in ones when
// path is empty.
func loadConfig(path string) (*benchmarkConfig, error) {
	if path == "" {
		return &benchmarkConfig{Scenarios: defaultScenarios}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &benchmarkConfig{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios: %w", path, errBadScenario)
	}
	for i, s := range cfg.Scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%s: scenario %d: %w", path, i, err)
		}
	}
	return cfg, nil
}

func (s scenario) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("missing name: %w", errBadScenario)
	case s.Size < 0:
		return fmt.Errorf("%q: negative size: %w", s.Name, errBadScenario)
	case s.Iterations < 1:
		return fmt.Errorf("%q: iterations must be positive: %w", s.Name, errBadScenario)
	case s.Modulus < 1:
		return fmt.Errorf("%q: modulus must be positive: %w", s.Name, errBadScenario)
	}
	return nil
}
