package errs

import "errors"

// Sentinels shared across the usecase layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)
