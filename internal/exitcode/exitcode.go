// Package exitcode maps errors to process exit codes so scripts can
// distinguish failure classes.
package exitcode

import (
	"os"

	"github.com/admitly/admitctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConfigError indicates invalid or unreadable configuration
	ConfigError = 3

	// StateError indicates the durable session state could not be read or written
	StateError = 4

	// AuthError indicates an authentication or authorization failure
	AuthError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to an exit code by its error code.
// Errors without a code fall back to GeneralError.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeBadCredentials,
		errors.ErrCodeSessionExpired,
		errors.ErrCodeNotLoggedIn,
		errors.ErrCodeAccessDenied:
		return AuthError
	case errors.ErrCodeNetworkFailure:
		return NetworkError
	case errors.ErrCodeConfigInvalid:
		return ConfigError
	case errors.ErrCodeStateRead,
		errors.ErrCodeStateWrite,
		errors.ErrCodeStateDecrypt:
		return StateError
	default:
		return GeneralError
	}
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ConfigError:
		return "Configuration error"
	case StateError:
		return "Session state error"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
