package models

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // error detail
	Code    string `json:"code,omitempty"` // machine readable kind, e.g. "CONCURRENCY_CONFLICT"
}
