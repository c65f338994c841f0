// Package apperrors provides the error system used across the LabKey client.
// Errors are built from package-level sentinels so callers can classify
// failures with errors.Is while the message carries request-specific detail
// such as the offending URL or the HTTP status line.
package apperrors

// Error is the interface implemented by all errors this module produces.
// It extends the standard error interface with wrapping and an HTTP status
// code. Methods return Error so call sites can chain them.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // derives a new error using the current one as template
	Msg(msg string) Error                  // new error with message, wrapping the original
	MsgErr(msg string, err ...error) Error // new error with message, wrapping extra errors
	Err(err ...error) Error                // attaches additional errors to the current error
	SetStatusCode(int) Error               // sets the HTTP status code carried by the error
	StatusCode() int                       // returns the carried status code
	UnwrapAll() []error                    // returns all wrapped errors
}
