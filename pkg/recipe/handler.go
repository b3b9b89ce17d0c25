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
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/mchmarny/portion/pkg/defaults"
	perrors "github.com/mchmarny/portion/pkg/errors"
	"github.com/mchmarny/portion/pkg/scale"
	"github.com/mchmarny/portion/pkg/serializer"
	"github.com/mchmarny/portion/pkg/server"
	"github.com/mchmarny/portion/pkg/validator"
)

const (
	// ViewRecipe returns the scaled recipe document.
	ViewRecipe = "recipe"
	// ViewShoppingList returns the scaled ingredients as a shopping list.
	ViewShoppingList = "shopping-list"
)

var (
	// scaleCacheTTL can be overridden for testing.
	scaleCacheTTL = defaults.ScaleCacheTTL
)

// ScaleRequest asks for a list of ingredient lines to be scaled.
type ScaleRequest struct {
	Lines  []scale.Line `json:"lines" yaml:"lines" validate:"required,min=1,max=500,dive"`
	From   float64      `json:"from" yaml:"from" validate:"gt=0"`
	To     float64      `json:"to" yaml:"to" validate:"gt=0"`
	Locale string       `json:"locale,omitempty" yaml:"locale,omitempty"`
}

// ScaleResponse holds the scaled lines in request order.
type ScaleResponse struct {
	From   float64      `json:"from" yaml:"from"`
	To     float64      `json:"to" yaml:"to"`
	Factor float64      `json:"factor" yaml:"factor"`
	Lines  []scale.Line `json:"lines" yaml:"lines"`
}

// TableHeader implements serializer.Tabular.
func (s *ScaleResponse) TableHeader() []string {
	return []string{"#", "LINE"}
}

// TableRows implements serializer.Tabular.
func (s *ScaleResponse) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Lines))
	for i, l := range s.Lines {
		rows = append(rows, []string{strconv.Itoa(i + 1), l.String()})
	}
	return rows
}

type recipeScaleParams struct {
	Servings float64 `validate:"gt=0"`
	Locale   string
	View     string `validate:"omitempty,oneof=recipe shopping-list"`
}

// ParseScaleRequest reads a ScaleRequest from the query parameters
// line (repeatable), from, to and locale.
func ParseScaleRequest(r *http.Request) (*ScaleRequest, error) {
	q := r.URL.Query()

	from, err := parseServings(q.Get("from"), "from")
	if err != nil {
		return nil, err
	}
	to, err := parseServings(q.Get("to"), "to")
	if err != nil {
		return nil, err
	}

	req := &ScaleRequest{
		From:   from,
		To:     to,
		Locale: q.Get("locale"),
	}
	for _, l := range q["line"] {
		req.Lines = append(req.Lines, scale.TextLine(l))
	}

	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseScaleRequestFromBody reads a ScaleRequest from a JSON or YAML body.
func ParseScaleRequestFromBody(body io.Reader, contentType string) (*ScaleRequest, error) {
	if body == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidRequest, "request body is empty")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	req, err := serializer.FromBytes[ScaleRequest](data, serializer.FormatFromContentType(contentType))
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidRequest, "failed to decode scale request", err)
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// HandleScale scales ingredient lines given as query parameters (GET)
// or as a JSON or YAML ScaleRequest body (POST).
func (b *Builder) HandleScale(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ScaleHandlerTimeout)
	defer cancel()

	var req *ScaleRequest
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = ParseScaleRequest(r)
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
		defer body.Close()
		req, err = ParseScaleRequestFromBody(body, r.Header.Get("Content-Type"))
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, perrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		handlerRequests.WithLabelValues("scale", "invalid").Inc()
		writeRequestError(w, r, err, "Invalid scale request")
		return
	}

	sc := scale.NewContext(req.From, req.To)
	lines, err := b.ScaleLines(ctx, req.Lines, sc, req.Locale)
	if err != nil {
		handlerRequests.WithLabelValues("scale", "error").Inc()
		server.WriteErrorFromErr(w, r, err, "Failed to scale lines", nil)
		return
	}
	handlerRequests.WithLabelValues("scale", "ok").Inc()

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(scaleCacheTTL.Seconds())))

	serializer.RespondJSON(w, http.StatusOK, &ScaleResponse{
		From:   req.From,
		To:     req.To,
		Factor: sc.Factor(),
		Lines:  lines,
	})
}

// HandleRecipeScale scales a recipe document posted as JSON or YAML.
// The servings query parameter is required; locale and view are optional.
func (b *Builder) HandleRecipeScale(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeScaleTimeout)
	defer cancel()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, perrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"POST"},
			})
		return
	}

	params, err := parseRecipeScaleParams(r)
	if err != nil {
		handlerRequests.WithLabelValues("recipe", "invalid").Inc()
		writeRequestError(w, r, err, "Invalid query parameters")
		return
	}

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	rec, err := ParseFromBody(body, r.Header.Get("Content-Type"))
	if err != nil {
		handlerRequests.WithLabelValues("recipe", "invalid").Inc()
		writeRequestError(w, r, err, "Invalid recipe")
		return
	}

	slog.Debug("scaling recipe",
		"title", rec.Title,
		"from", rec.Servings,
		"to", params.Servings,
		"locale", params.Locale,
	)

	res, err := b.Scale(ctx, rec, params.Servings, params.Locale)
	if err != nil {
		handlerRequests.WithLabelValues("recipe", "error").Inc()
		server.WriteErrorFromErr(w, r, err, "Failed to scale recipe", nil)
		return
	}
	handlerRequests.WithLabelValues("recipe", "ok").Inc()

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(scaleCacheTTL.Seconds())))

	if params.View == ViewShoppingList {
		serializer.RespondJSON(w, http.StatusOK, res.ShoppingList())
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

func parseRecipeScaleParams(r *http.Request) (*recipeScaleParams, error) {
	q := r.URL.Query()

	servings, err := parseServings(q.Get("servings"), "servings")
	if err != nil {
		return nil, err
	}

	p := &recipeScaleParams{
		Servings: servings,
		Locale:   q.Get("locale"),
		View:     q.Get("view"),
	}
	if err := validator.Struct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseServings(s, name string) (float64, error) {
	if s == "" {
		return 0, perrors.NewWithContext(perrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s is required", name), map[string]any{"parameter": name})
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, perrors.NewWithContext(perrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s must be a number", name), map[string]any{"parameter": name, "value": s})
	}
	return v, nil
}

// writeRequestError reports a request that could not be read or validated.
func writeRequestError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, perrors.ErrCodeInvalidRequest,
			"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
		return
	}

	var se *perrors.StructuredError
	if !errors.As(err, &se) {
		err = perrors.Wrap(perrors.ErrCodeInvalidRequest, message, err)
	}
	server.WriteErrorFromErr(w, r, err, message, nil)
}
