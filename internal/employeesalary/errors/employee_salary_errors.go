package employeesalaryerrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingBody         = apperror.Invalid("missing body")
	ErrIDRequired          = apperror.RequiredField("id")
	ErrProcessDateRequired = apperror.RequiredField("processDate")
	ErrInvalidProcessDate  = apperror.FieldError("processDate", "processDate must be in yyyy-MM-dd format")
	ErrInvalidSalary       = apperror.FieldError("salary", "salary must be a decimal number")

	ErrStoreRead = apperror.New(
		apperror.CodeStoreRead,
		"Failed to read salary records",
		http.StatusInternalServerError,
	)
)

// storeWritePrefix is the fixed part of every save failure message.
const storeWritePrefix = "Failed to save record: "

// StoreWrite is the single place that decides what a caller sees when a save
// fails. The cause text is included in the message.
func StoreWrite(cause error) *apperror.AppError {
	if cause == nil {
		return nil
	}
	return apperror.Wrap(
		cause,
		apperror.CodeStoreWrite,
		storeWritePrefix+cause.Error(),
		http.StatusInternalServerError,
	)
}

// StoreRead keeps the cause for logs while the caller only sees a generic
// message.
func StoreRead(cause error) *apperror.AppError {
	if cause == nil {
		return nil
	}
	return apperror.Wrap(
		cause,
		ErrStoreRead.Code,
		ErrStoreRead.Message,
		ErrStoreRead.HTTPStatus,
	)
}
