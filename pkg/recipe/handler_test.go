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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/scale"
	"github.com/mchmarny/portion/pkg/server"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHandleScale_Get(t *testing.T) {
	b := newTestBuilder(t)

	q := url.Values{}
	q.Add("line", "½ cup flour")
	q.Add("line", "3 ägg")
	q.Add("line", "salt to taste")
	q.Set("from", "2")
	q.Set("to", "4")

	w := httptest.NewRecorder()
	b.HandleScale(w, httptest.NewRequest(http.MethodGet, "/v1/scale?"+q.Encode(), nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	var resp ScaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 2, resp.Factor, 0)
	assert.Equal(t, []scale.Line{
		scale.TextLine("1 cup flour"),
		scale.TextLine("6 ägg"),
		scale.TextLine("salt to taste"),
	}, resp.Lines)
}

func TestHandleScale_Post(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		want        []scale.Line
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"from":4,"to":2,"lines":["2 dl mjölk",{"quantity":"2 cups","name":"flour","notes":"sifted"}]}`,
			want: []scale.Line{
				scale.TextLine("1 dl mjölk"),
				scale.IngredientLine(scale.Ingredient{Quantity: "1 cup", Name: "flour", Notes: "sifted"}),
			},
		},
		{
			name:        "yaml",
			contentType: "application/yaml",
			body:        "from: 1\nto: 3\nlocale: sv\nlines:\n  - 1 msk smör\n",
			want:        []scale.Line{scale.TextLine("3 msk smör")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/scale", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			b.HandleScale(w, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var resp ScaleResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Lines)
		})
	}
}

func TestHandleScale_Errors(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "method not allowed",
			method:     http.MethodDelete,
			target:     "/v1/scale",
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:       "missing from",
			method:     http.MethodGet,
			target:     "/v1/scale?line=1+egg&to=2",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "non-numeric to",
			method:     http.MethodGet,
			target:     "/v1/scale?line=1+egg&from=1&to=two",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "infinite to",
			method:     http.MethodGet,
			target:     "/v1/scale?line=1+egg&from=1&to=Inf",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "zero servings",
			method:     http.MethodGet,
			target:     "/v1/scale?line=1+egg&from=0&to=2",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "no lines",
			method:     http.MethodGet,
			target:     "/v1/scale?from=1&to=2",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "unsupported locale",
			method:     http.MethodGet,
			target:     "/v1/scale?line=1+egg&from=1&to=2&locale=de",
			wantStatus: http.StatusBadRequest,
			wantCode:   "UNSUPPORTED_LOCALE",
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			target:     "/v1/scale",
			body:       `{"from":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "empty body",
			method:     http.MethodPost,
			target:     "/v1/scale",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "body too large",
			method:     http.MethodPost,
			target:     "/v1/scale",
			body:       `{"lines":["` + strings.Repeat("x", 2<<20) + `"],"from":1,"to":2}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			b.HandleScale(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.False(t, resp.Retryable)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestHandleScale_MethodNotAllowedHeader(t *testing.T) {
	b := newTestBuilder(t)

	w := httptest.NewRecorder()
	b.HandleScale(w, httptest.NewRequest(http.MethodPut, "/v1/scale", nil))

	assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
}

func TestHandleRecipeScale(t *testing.T) {
	b := newTestBuilder(t, WithVersion("test"))

	data, err := os.ReadFile("testdata/pancakes.yaml")
	require.NoError(t, err)

	t.Run("recipe view", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recipes/scale?servings=8", strings.NewReader(string(data)))
		req.Header.Set("Content-Type", "application/x-yaml")
		w := httptest.NewRecorder()

		b.HandleRecipeScale(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, header.KindScaledRecipe, res.Kind)
		assert.Equal(t, "test", res.Metadata["version"])
		assert.InDelta(t, 8, res.Servings, 0)
		require.Len(t, res.Ingredients, 5)
		assert.Equal(t, "5 dl vetemjöl", res.Ingredients[0].Text)
		assert.Equal(t, "12 dl", res.Ingredients[1].Ingredient.Quantity)
	})

	t.Run("shopping list view", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recipes/scale?servings=2&view=shopping-list&locale=sv",
			strings.NewReader(string(data)))
		req.Header.Set("Content-Type", "application/yaml")
		w := httptest.NewRecorder()

		b.HandleRecipeScale(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var list ShoppingList
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Equal(t, header.KindShoppingList, list.Kind)
		assert.Equal(t, []string{
			"1,25 dl vetemjöl",
			"3 dl mjölk",
			"1.5 ägg",
			"½ krm salt",
			"smör till stekning",
		}, list.Items)
	})
}

func TestHandleRecipeScale_Errors(t *testing.T) {
	b := newTestBuilder(t)
	valid := `{"title":"Toast","servings":1,"ingredients":["2 slices bread"]}`

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"get not allowed", http.MethodGet, "/v1/recipes/scale?servings=2", "", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"missing servings", http.MethodPost, "/v1/recipes/scale", valid, http.StatusBadRequest, "INVALID_REQUEST"},
		{"negative servings", http.MethodPost, "/v1/recipes/scale?servings=-1", valid, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown view", http.MethodPost, "/v1/recipes/scale?servings=2&view=pdf", valid, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid recipe", http.MethodPost, "/v1/recipes/scale?servings=2", `{"servings":1}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"malformed recipe", http.MethodPost, "/v1/recipes/scale?servings=2", `{`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unsupported locale", http.MethodPost, "/v1/recipes/scale?servings=2&locale=fr", valid, http.StatusBadRequest, "UNSUPPORTED_LOCALE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			b.HandleRecipeScale(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}
