// Package errs provides the error taxonomy shared by the order-management service.
//
// Validation failures (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
// are reported to the caller and never mutate state. ObjectNotFoundError reports an
// absent entity. Anything else is treated as internal.
//
// Each error type has a sentinel (ErrValueIsRequired, ...), an optional Cause, and an
// Unwrap method returning the sentinel, so callers classify errors with errors.Is or
// with IsValidation / IsNotFound.
package errs
