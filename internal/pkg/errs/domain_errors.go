package errs

import "errors"

// Cross-cutting sentinels shared by the stores, the catalog service and the handlers
var (
	// Client-side validation: required fields missing, caught before any network call
	ErrValidation = errors.New("validation failed")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("insufficient privileges")

	// Storage errors
	ErrStorageFailed = errors.New("storage operation failed")
	ErrCorruptState  = errors.New("persisted state is corrupt")
)
