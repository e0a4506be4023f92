// Package errors defines the application errors rendered by the HTTP layer.
// Each carries a status, a stable machine-readable code and a client message.
package errors

import "net/http"

type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context, e.g. the offending id. Hidden for 5xx.
	Details() string
}

// BaseError is the value type behind every predefined error. It is never
// mutated; WithDetails returns a copy.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + " (" + e.details + ")"
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails copies e with details attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPPLIER_NOT_FOUND",
		"supplier not found",
		"",
	)

	ErrSupplierAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SUPPLIER_ALREADY_EXISTS",
		"a supplier with this email already exists",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	// Branch-related errors
	ErrBranchNotFound = NewBaseError(
		http.StatusNotFound,
		"BRANCH_NOT_FOUND",
		"branch not found",
		"",
	)

	ErrBranchAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BRANCH_ALREADY_EXISTS",
		"a branch with this email already exists",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrDeliveryAreaViolation = NewBaseError(
		http.StatusBadRequest,
		"SUPPLIER_DELIVERY_AREA_VIOLATION",
		"supplier does not deliver to this area",
		"",
	)

	ErrAggregationFailed = NewBaseError(
		http.StatusInternalServerError,
		"AGGREGATION_FAILED",
		"failed to aggregate order data",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"failed to persist data",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError is a PERSISTENCE_FAILED error that keeps the driver
// error reachable through errors.Unwrap.
type DatabaseExecuteError struct {
	*BaseError
	err error
}

// NewDatabaseExecuteError wraps a driver error; details name the failed operation.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		BaseError: ErrPersistenceFailed.WithDetails(details),
		err:       err,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
