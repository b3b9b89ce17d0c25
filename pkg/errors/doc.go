// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The scaling engine itself never returns errors: unparseable quantities pass
// through unchanged. Structured errors are used by the outer layers (lexicon
// loading, request decoding, the HTTP server and the CLI).
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to decode recipe",
//	    cause,
//	    map[string]interface{}{
//	        "contentType": contentType,
//	    },
//	)
package errors
