// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Three error kinds cover the domain layer:
//   - DomainRuleViolationError: a transition or mutation precondition failed;
//     the aggregate is left unmodified and the caller can correct and retry
//   - ObjectNotFoundError: a lookup by identifier returned nothing
//   - ConcurrencyConflictError: the stored concurrency token no longer matched
//     at save time; the caller must reload the aggregate and retry
//
// Value-object construction failures are distinct from aggregate rule
// violations and use the value errors:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrDomainRuleViolation)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
