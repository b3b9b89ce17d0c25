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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// ScaleHandlerTimeout is the timeout for line and recipe scaling requests.
	ScaleHandlerTimeout = 10 * time.Second

	// RecipeScaleTimeout is the internal timeout for scaling one recipe.
	// Should be less than ScaleHandlerTimeout to allow error handling.
	RecipeScaleTimeout = 8 * time.Second

	// ScaleCacheTTL is the default cache duration for scale responses.
	ScaleCacheTTL = 5 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second
)

// Scaling limits.
const (
	// ScaleConcurrency bounds the goroutines used to scale lines of one recipe.
	ScaleConcurrency = 8

	// MaxLinesPerRequest bounds the number of lines accepted in one request.
	MaxLinesPerRequest = 500

	// MaxRequestBodyBytes bounds the size of decoded request bodies.
	MaxRequestBodyBytes = 1 << 20

	// ParseCacheEntries is the number of distinct raw lines memoized by an
	// engine created with a cache.
	ParseCacheEntries = 10_000
)
