// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/mchmarny/portion/pkg/defaults"
	"github.com/mchmarny/portion/pkg/validator"
)

const (
	// ConfigPathEnvVar names the environment variable pointing at a config file.
	ConfigPathEnvVar = "PORTION_CONFIG"

	// EnvPrefix is the prefix of environment variables overriding config values,
	// e.g. PORTION_RATE_LIMIT_BURST sets rate_limit_burst.
	EnvPrefix = "PORTION_"
)

// DefaultConfigPaths are searched in order when ConfigPathEnvVar is not set.
var DefaultConfigPaths = []string{
	"portiond.yaml",
	"/etc/portion/portiond.yaml",
}

// config keys read as comma-separated lists from the environment
var sliceConfigPaths = []string{
	"locales",
}

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string `koanf:"name"`
	Version string `koanf:"-"`

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc `koanf:"-"`

	// Server configuration
	Address string `koanf:"address"`
	Port    int    `koanf:"port" validate:"gte=0,lte=65535"`

	// Rate limiting configuration
	RateLimit      float64 `koanf:"rate_limit" validate:"gt=0"`        // requests per second
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"gte=1"` // burst size

	// Timeouts
	ReadTimeout       time.Duration `koanf:"read_timeout" validate:"gt=0"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout       time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// Scaling
	Locales           []string `koanf:"locales"`
	ScaleConcurrency  int      `koanf:"scale_concurrency" validate:"gte=1"`
	ParseCacheEntries int64    `koanf:"parse_cache_entries" validate:"gte=0"`
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	cfg := defaultConfig()

	// PORT is set by most container platforms
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}

	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              8080,
		RateLimit:         100, // 100 req/s
		RateLimitBurst:    200, // burst of 200
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
		ScaleConcurrency:  defaults.ScaleConcurrency,
		ParseCacheEntries: defaults.ParseCacheEntries,
	}
}

// LoadConfig builds a Config from three layers, later ones winning:
// built-in defaults, an optional YAML file, and PORTION_* environment variables.
func LoadConfig() (*Config, error) {
	return loadConfig(findConfigFile())
}

func loadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(NewConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps PORTION_READ_TIMEOUT to read_timeout.
// PORTION_CONFIG selects the file and is not a config key.
func envTransformFunc(key string) string {
	if key == ConfigPathEnvVar {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}

// processSliceFields splits comma-separated environment values for list keys.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
