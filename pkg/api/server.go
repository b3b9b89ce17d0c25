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


package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mchmarny/portion/pkg/lexicon"
	"github.com/mchmarny/portion/pkg/logging"
	"github.com/mchmarny/portion/pkg/recipe"
	"github.com/mchmarny/portion/pkg/scale"
	"github.com/mchmarny/portion/pkg/server"
)

const (
	name           = "portiond"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/portion/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads configuration, sets up routes, and handles
// graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	b, closeFn, err := newBuilder(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(b)),
		server.WithReadinessCheck(readyCheck(b)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes maps API paths to recipe handlers.
func routes(b *recipe.Builder) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/scale":         b.HandleScale,
		"/v1/recipes/scale": b.HandleRecipeScale,
	}
}

// readyCheck reports the server not ready while the engine has no vocabulary.
func readyCheck(b *recipe.Builder) func(context.Context) error {
	return func(context.Context) error {
		if len(b.Engine().Lexicon().Locales()) == 0 {
			return errors.New("no locales loaded")
		}
		return nil
	}
}

// newBuilder creates the scaling engine described by cfg and a Builder over it.
// The returned func releases the engine.
func newBuilder(cfg *server.Config) (*recipe.Builder, func(), error) {
	tags, err := lexicon.ParseTags(cfg.Locales...)
	if err != nil {
		return nil, nil, err
	}

	opts := []scale.Option{scale.WithLocales(tags...)}
	if cfg.ParseCacheEntries > 0 {
		opts = append(opts, scale.WithCache(cfg.ParseCacheEntries))
	}

	eng, err := scale.New(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scale engine: %w", err)
	}

	b, err := recipe.NewBuilder(
		recipe.WithEngine(eng),
		recipe.WithConcurrency(cfg.ScaleConcurrency),
		recipe.WithVersion(version),
	)
	if err != nil {
		eng.Close()
		return nil, nil, err
	}

	slog.Debug("scale engine ready",
		"locales", cfg.Locales,
		"cacheEntries", cfg.ParseCacheEntries,
		"concurrency", cfg.ScaleConcurrency,
	)

	return b, eng.Close, nil
}
