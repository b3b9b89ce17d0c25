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


package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/mchmarny/portion/pkg/defaults"
	perrors "github.com/mchmarny/portion/pkg/errors"
	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/lexicon"
	"github.com/mchmarny/portion/pkg/scale"
)

// Builder scales recipes and ingredient lists.
type Builder struct {
	engine      *scale.Engine
	ownsEngine  bool
	concurrency int
	version     string

	mu      sync.Mutex
	engines map[string]*scale.Engine
}

// Option is a functional option for configuring Builder instances.
type Option func(*Builder)

// WithEngine sets the engine used when no locale is requested.
// The caller keeps ownership of the engine.
func WithEngine(e *scale.Engine) Option {
	return func(b *Builder) {
		b.engine = e
	}
}

// WithConcurrency limits how many lines are scaled at once.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

// WithVersion sets the version stamped on results.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.version = version
	}
}

// NewBuilder returns a Builder. Without WithEngine it creates an engine over
// every supported locale with a parse cache; call Close to release it.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		concurrency: defaults.ScaleConcurrency,
		engines:     make(map[string]*scale.Engine),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.concurrency < 1 {
		b.concurrency = 1
	}

	if b.engine == nil {
		e, err := scale.New(scale.WithCache(defaults.ParseCacheEntries))
		if err != nil {
			return nil, err
		}
		b.engine = e
		b.ownsEngine = true
	}
	return b, nil
}

// Close releases the engine created by NewBuilder.
func (b *Builder) Close() {
	if b.ownsEngine {
		b.engine.Close()
	}
}

// Engine returns the default engine.
func (b *Builder) Engine() *scale.Engine {
	return b.engine
}

// EngineFor returns an engine restricted to the given locales, such as "sv"
// or "en,sv". An empty locale returns the default engine. Engines are shared
// by every locale list that selects the same bundled locales in the same
// order, so "en-US" and "en" use one engine.
func (b *Builder) EngineFor(locale string) (*scale.Engine, error) {
	tags, err := lexicon.ParseTags(locale)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return b.engine, nil
	}

	codes, err := lexicon.Resolve(tags...)
	if err != nil {
		return nil, err
	}
	key := strings.Join(codes, ",")

	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.engines[key]; ok {
		return e, nil
	}

	resolved := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		resolved = append(resolved, language.Make(code))
	}
	e, err := scale.New(scale.WithLocales(resolved...))
	if err != nil {
		return nil, err
	}
	b.engines[key] = e
	return e, nil
}

// Scale returns the recipe scaled to the target number of servings.
func (b *Builder) Scale(ctx context.Context, rec *Recipe, target float64, locale string) (*Result, error) {
	if rec == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}
	if err := checkServings(target); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		recipeScaleDuration.Observe(time.Since(start).Seconds())
	}()

	sc := scale.NewContext(rec.Servings, target)
	lines, err := b.ScaleLines(ctx, rec.Ingredients, sc, locale)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Title:            rec.Title,
		OriginalServings: rec.Servings,
		Servings:         target,
		Factor:           sc.Factor(),
		Ingredients:      lines,
	}
	res.Init(header.KindScaledRecipe, b.version)
	if src, ok := rec.Metadata["source"]; ok {
		res.Metadata["source"] = src
	}

	slog.Debug("recipe scaled",
		"title", rec.Title,
		"from", rec.Servings,
		"to", target,
		"lines", len(lines),
		"duration", time.Since(start),
	)
	return res, nil
}

// ScaleLines scales each line by sc using the engine for locale.
// Lines are processed concurrently; the output keeps the input order and shape.
func (b *Builder) ScaleLines(ctx context.Context, lines []scale.Line, sc scale.Context, locale string) ([]scale.Line, error) {
	if len(lines) > defaults.MaxLinesPerRequest {
		return nil, perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "too many ingredient lines",
			map[string]any{"lines": len(lines), "max": defaults.MaxLinesPerRequest})
	}

	e, err := b.EngineFor(locale)
	if err != nil {
		return nil, err
	}

	recipeLines.Observe(float64(len(lines)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	out := make([]scale.Line, len(lines))
	for i, l := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = e.Line(l, sc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, contextError(err)
	}
	// Cancellation after the last line still fails the request.
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}
	return out, nil
}

func checkServings(v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "servings must be a positive number",
			map[string]any{"servings": fmt.Sprint(v)})
	}
	return nil
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return perrors.Wrap(perrors.ErrCodeTimeout, "scaling timed out", err)
	}
	return perrors.Wrap(perrors.ErrCodeUnavailable, "scaling canceled", err)
}
