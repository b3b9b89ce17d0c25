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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mchmarny/portion/pkg/errors"
	"github.com/mchmarny/portion/pkg/recipe"
	"github.com/mchmarny/portion/pkg/server"
)

// Serve blocks until shutdown and is exercised end to end by running
// portiond; these tests cover its wiring.

func TestConstants(t *testing.T) {
	assert.Equal(t, "portiond", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func newTestHandler(t *testing.T, cfg *server.Config) http.Handler {
	t.Helper()
	b, closeFn, err := newBuilder(cfg)
	require.NoError(t, err)
	t.Cleanup(closeFn)

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(b)),
		server.WithReadinessCheck(readyCheck(b)),
	)
	return s.Handler()
}

func TestRoutes(t *testing.T) {
	b, err := recipe.NewBuilder()
	require.NoError(t, err)
	defer b.Close()

	r := routes(b)
	assert.Len(t, r, 2)
	for _, path := range []string{"/v1/scale", "/v1/recipes/scale"} {
		assert.NotNil(t, r[path], path)
	}
}

func TestReadyCheck(t *testing.T) {
	b, closeFn, err := newBuilder(server.NewConfig())
	require.NoError(t, err)
	defer closeFn()

	assert.NoError(t, readyCheck(b)(context.Background()))
}

func TestNewBuilder(t *testing.T) {
	t.Run("default locales", func(t *testing.T) {
		b, closeFn, err := newBuilder(server.NewConfig())
		require.NoError(t, err)
		defer closeFn()
		assert.Len(t, b.Engine().Lexicon().Locales(), 2)
	})

	t.Run("restricted locales without cache", func(t *testing.T) {
		cfg := server.NewConfig()
		cfg.Locales = []string{"sv"}
		cfg.ParseCacheEntries = 0

		b, closeFn, err := newBuilder(cfg)
		require.NoError(t, err)
		defer closeFn()
		assert.Len(t, b.Engine().Lexicon().Locales(), 1)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		cfg := server.NewConfig()
		cfg.Locales = []string{"xx"}

		_, _, err := newBuilder(cfg)
		require.Error(t, err)
		assert.Equal(t, perrors.ErrCodeUnsupportedLocale, perrors.CodeOf(err))
	})
}

func TestScaleEndpoint(t *testing.T) {
	h := newTestHandler(t, server.NewConfig())

	q := url.Values{"line": {"2 cups flour", "1 egg"}, "from": {"2"}, "to": {"1"}}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/scale?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "v1", w.Header().Get("X-API-Version"))

	var resp recipe.ScaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "1 cup flour", resp.Lines[0].Text)
	assert.Equal(t, "½ egg", resp.Lines[1].Text)
}

func TestRecipeScaleEndpoint(t *testing.T) {
	h := newTestHandler(t, server.NewConfig())

	body := `{"title":"Chili","servings":2,"ingredients":["1 lb ground beef","salt to taste"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/recipes/scale?servings=6", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res recipe.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "3 lb ground beef", res.Ingredients[0].Text)
	assert.Equal(t, "salt to taste", res.Ingredients[1].Text)
}

func TestEndpointMethods(t *testing.T) {
	h := newTestHandler(t, server.NewConfig())

	for _, tc := range []struct {
		path   string
		method string
	}{
		{"/v1/scale", http.MethodPut},
		{"/v1/scale", http.MethodDelete},
		{"/v1/recipes/scale", http.MethodGet},
		{"/v1/recipes/scale", http.MethodPatch},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.NotEmpty(t, w.Header().Get("Allow"))
		})
	}
}
