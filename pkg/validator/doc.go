// Package validator checks decoded request and document structs against
// their `validate` struct tags using go-playground/validator.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Failures are returned as
// *errors.StructuredError with code INVALID_REQUEST, one context entry per
// failing field:
//
//	type scaleRequest struct {
//	    Lines []string `validate:"required,min=1,max=500"`
//	    From  float64  `validate:"gt=0"`
//	}
//
//	if err := validator.Struct(&req); err != nil {
//	    server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
//	    return
//	}
package validator
