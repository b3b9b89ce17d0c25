// Package server provides the reusable HTTP server behind portiond.
//
// The server wires application handlers behind a fixed middleware chain and
// adds system endpoints:
//
//	s := server.New(
//	    server.WithConfig(cfg),
//	    server.WithName("portiond"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/scale": b.HandleScale,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or the process receives SIGINT or SIGTERM,
// then drains in-flight requests within ShutdownTimeout.
//
// # Middleware
//
// Application handlers run behind, outermost first: Prometheus RED metrics,
// API version negotiation (Accept: application/vnd.portion.v1+json, echoed in
// X-API-Version), request IDs (X-Request-Id, UUID), panic recovery, a token
// bucket rate limiter (golang.org/x/time/rate) and request logging.
//
// # System Endpoints
//
//   - GET /        server name, version, readiness and routes
//   - GET /health  liveness
//   - GET /ready   readiness, 503 until the listener is up, during shutdown, or
//     while the WithReadinessCheck function fails
//   - GET /metrics Prometheus metrics
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Both write an
// ErrorResponse carrying the request ID. WriteErrorFromErr derives the status
// from the errors.ErrorCode of a StructuredError:
//
//	INVALID_REQUEST, UNSUPPORTED_LOCALE  400
//	NOT_FOUND                            404
//	METHOD_NOT_ALLOWED                   405
//	RATE_LIMIT_EXCEEDED                  429
//	SERVICE_UNAVAILABLE                  503
//	TIMEOUT                              504
//	anything else                        500
//
// # Configuration
//
// LoadConfig layers built-in defaults, an optional YAML file (PORTION_CONFIG,
// ./portiond.yaml or /etc/portion/portiond.yaml) and PORTION_* environment
// variables, in increasing precedence:
//
//	port: 8080
//	rate_limit: 100
//	rate_limit_burst: 200
//	shutdown_timeout: 30s
//	locales: [en, sv]
//	scale_concurrency: 8
//	parse_cache_entries: 10000
//
// PORTION_LOCALES takes a comma-separated list. PORT is honored as a default.
package server
