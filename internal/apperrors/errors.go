package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller's role or scope does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState indicates an attempt to perform a report status transition
// that the transition table does not allow. Nothing is mutated.
var ErrInvalidState = errors.New("invalid report state transition")

// ErrConflict indicates a duplicate posting attempt against an already
// posted report. Not safe to retry blindly; the caller must re-read current
// state first.
var ErrConflict = errors.New("conflicting resource state")

// ErrDuplicate indicates an attempt to create a resource that already
// exists, such as a second non-rejected report for the same period.
var ErrDuplicate = errors.New("resource already exists")

// ErrPosting indicates that the atomic ledger commit failed. Nothing partial
// was written, so retrying the posting is safe.
var ErrPosting = errors.New("ledger posting failed")

// ErrTransientStore indicates a store timeout or connection failure that
// survived the internal retry budget.
var ErrTransientStore = errors.New("transient store failure")
