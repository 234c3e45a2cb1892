package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
	CodeStoreWrite    = "STORE_WRITE_FAILED"
	CodeStoreRead     = "STORE_READ_FAILED"

	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
