// Package errs provides standardized error types for the order desk.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the scenarios the order desk meets:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: an order or shipment id is not known
//   - StatusIsTerminalError: a cancellation was refused by the status guard
//   - PayloadIsMalformedError: backend or embedded JSON could not be decoded
//   - UpstreamUnavailableError: the backend could not be reached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error onto the closed Kind enumeration so that transport
// adapters can translate failures without matching on message text.
package errs
