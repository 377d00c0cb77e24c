// Package errs defines the error type every failed request is rendered as.
//
// Handlers and services return *HTTPError values; the global error handler
// in the middleware package turns anything else into one before writing
// the response, so clients always see the same JSON shape:
//
//	{"code":"NOT_FOUND","message":"...","status":404,"override":false,"errors":null}
package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "name", "error": "must be at least 3 characters" }
type FieldError struct {
	// Field is the lowercased field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: true when Message is safe to show to end users as-is.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
