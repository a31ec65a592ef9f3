package dto

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeUnavailable is used when a hard dependency is down
	ErrCodeUnavailable = "ERR_UNAVAILABLE"
)
