package api

// Error type identifiers in JSON error envelopes.
const (
	ErrTypeValidation = "validation_error"
	ErrTypeNotFound   = "not_found"
	ErrTypeConflict   = "conflict"
	ErrTypeInternal   = "internal_error"
)

// APIError is the JSON error envelope every failing endpoint returns.
type APIError struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}
