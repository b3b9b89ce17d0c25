// Package api provides the HTTP API layer of portiond, the ingredient scaling
// service.
//
// This package is a thin wrapper around pkg/server: it loads the server
// configuration, builds the scaling engine and registers the recipe handlers.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/scale          scale lines given as query parameters
//   - POST /v1/scale          scale a JSON or YAML ScaleRequest
//   - POST /v1/recipes/scale  scale a recipe document to ?servings=N
//
// System endpoints: /, /health, /ready and /metrics.
//
// # Configuration
//
// See server.LoadConfig. The locales, scale_concurrency and
// parse_cache_entries keys configure the scaling engine.
//
// # Example
//
//	curl "http://localhost:8080/v1/scale?line=2+cups+flour&line=3+eggs&from=4&to=6"
//
//	curl -X POST "http://localhost:8080/v1/recipes/scale?servings=8" \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @pancakes.yaml
package api
