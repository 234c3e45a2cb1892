package apperror

import "net/http"

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"invalid request body",
		http.StatusBadRequest,
	)

	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"Store is not reachable",
		http.StatusServiceUnavailable,
	)
)

// Invalid builds a 400 error carrying a human readable reason.
func Invalid(reason string) *AppError {
	return New(CodeInvalidInput, reason, http.StatusBadRequest)
}

// FieldError is a 400 error whose details name the offending json field.
func FieldError(field, reason string) *AppError {
	e := Invalid(reason)
	e.Details = map[string]string{"field": field}
	return e
}

func RequiredField(field string) *AppError {
	return FieldError(field, field+" required")
}

func InvalidField(field string) *AppError {
	return FieldError(field, field+" is invalid")
}
