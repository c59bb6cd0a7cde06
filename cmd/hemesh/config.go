// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akhenakh/hemesh/meshedit"
)

// Config holds settings read from the optional YAML config file.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	MinSurf  MinSurfConfig `yaml:"minsurf"`
}

// MinSurfConfig mirrors meshedit.Options.
type MinSurfConfig struct {
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
	Weight        float64 `yaml:"weight"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	opts := meshedit.DefaultOptions()
	return Config{
		LogLevel: "info",
		MinSurf: MinSurfConfig{
			MaxIterations: opts.MaxIterations,
			Tolerance:     opts.Tolerance,
			Weight:        opts.Weight,
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options converts the minsurf section for meshedit.
func (c MinSurfConfig) Options(logger *slog.Logger) meshedit.Options {
	return meshedit.Options{
		MaxIterations: c.MaxIterations,
		Tolerance:     c.Tolerance,
		Weight:        c.Weight,
		Logger:        logger,
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
