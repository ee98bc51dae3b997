package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeBadCredentials ErrorCode = "AUTH-001"
	ErrCodeSessionExpired ErrorCode = "AUTH-002"
	ErrCodeNotLoggedIn    ErrorCode = "AUTH-003"
	ErrCodeAccessDenied   ErrorCode = "AUTH-004"

	// Tenant errors (TENANT-001 to TENANT-099)
	ErrCodeTenantLookupFailed ErrorCode = "TENANT-001"
	ErrCodeTenantUnresolved   ErrorCode = "TENANT-002"

	// Transport errors (NET-001 to NET-099)
	ErrCodeNetworkFailure ErrorCode = "NET-001"
	ErrCodeAPIFailure     ErrorCode = "NET-002"

	// Local state errors (STATE-001 to STATE-099)
	ErrCodeStateRead    ErrorCode = "STATE-001"
	ErrCodeStateWrite   ErrorCode = "STATE-002"
	ErrCodeStateDecrypt ErrorCode = "STATE-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
)

// ClientError represents an enhanced error with code, suggestions, and a cause
type ClientError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// New creates a new ClientError
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClientError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ClientError) WithSuggestion(suggestion string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ClientError) WithSuggestions(suggestions ...string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the error code of err, or an empty code when err is not a ClientError
func CodeOf(err error) ErrorCode {
	var clientErr *ClientError
	if stderrors.As(err, &clientErr) {
		return clientErr.Code
	}
	return ""
}

// SuggestionsOf returns the recovery suggestions attached to err, if any.
func SuggestionsOf(err error) []string {
	var clientErr *ClientError
	if stderrors.As(err, &clientErr) {
		return clientErr.Suggestions
	}
	return nil
}

// IsAuthError reports whether err is a rejected-credentials error.
// Auth errors are surfaced to the user; the current session is left untouched.
func IsAuthError(err error) bool {
	return CodeOf(err) == ErrCodeBadCredentials
}

// IsSessionExpired reports whether err is a stored-token rejection.
// Expected on token expiry; recovered by a silent logout, never shown as a failure.
func IsSessionExpired(err error) bool {
	return CodeOf(err) == ErrCodeSessionExpired
}

// IsTenantLookupFailed reports whether err is a failed tenant profile lookup.
// Non-fatal: the user stays authenticated without a tenant profile.
func IsTenantLookupFailed(err error) bool {
	return CodeOf(err) == ErrCodeTenantLookupFailed
}

// IsNetworkFailure reports whether err is a transport-level failure.
func IsNetworkFailure(err error) bool {
	return CodeOf(err) == ErrCodeNetworkFailure
}

// Common error constructors for frequently used errors

// NewBadCredentialsError creates a rejected-credentials error
func NewBadCredentialsError(detail string) *ClientError {
	msg := "login rejected"
	if detail != "" {
		msg = fmt.Sprintf("login rejected: %s", detail)
	}
	return New(ErrCodeBadCredentials, msg).
		WithSuggestion("Check your email and password").
		WithSuggestion("Use 'admitctl tenant preview <slug>' to verify you are targeting the right tenant")
}

// NewSessionExpiredError creates a stored-token rejection error
func NewSessionExpiredError() *ClientError {
	return New(ErrCodeSessionExpired, "stored session token was rejected").
		WithSuggestion("Run 'admitctl auth login' to sign in again")
}

// NewNotLoggedInError creates a missing-session error
func NewNotLoggedInError() *ClientError {
	return New(ErrCodeNotLoggedIn, "not logged in").
		WithSuggestion("Run 'admitctl auth login' first")
}

// NewAccessDeniedError creates a role-based denial error
func NewAccessDeniedError(screen string) *ClientError {
	return New(ErrCodeAccessDenied, fmt.Sprintf("your role does not allow access to %s", screen)).
		WithSuggestion("Ask a tenant admin to grant you the required role")
}

// NewTenantLookupError creates a failed tenant profile lookup error
func NewTenantLookupError(cause error) *ClientError {
	return Wrap(ErrCodeTenantLookupFailed, "tenant profile lookup failed", cause).
		WithSuggestion("You remain signed in; tenant-scoped data may be unavailable until the next login")
}

// NewNetworkError creates a transport failure error
func NewNetworkError(cause error) *ClientError {
	return Wrap(ErrCodeNetworkFailure, "request could not reach the CRM API", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify api_url in $HOME/.admitctl/config.yaml")
}

// NewAPIError creates an error for a non-auth API failure response
func NewAPIError(status int, message string) *ClientError {
	if message == "" {
		message = "request failed"
	}
	return New(ErrCodeAPIFailure, fmt.Sprintf("%s (status %d)", message, status))
}

// NewStateReadError creates a local state read error
func NewStateReadError(path string, cause error) *ClientError {
	return Wrap(ErrCodeStateRead, fmt.Sprintf("failed to read session state: %s", path), cause).
		WithSuggestion("Check file permissions on the admitctl state directory")
}

// NewStateWriteError creates a local state write error
func NewStateWriteError(path string, cause error) *ClientError {
	return Wrap(ErrCodeStateWrite, fmt.Sprintf("failed to write session state: %s", path), cause).
		WithSuggestion("Check file permissions on the admitctl state directory")
}

// NewConfigInvalidError creates a configuration error
func NewConfigInvalidError(detail string, cause error) *ClientError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", detail), cause).
		WithSuggestion("Review $HOME/.admitctl/config.yaml and ADMITCTL_* environment variables")
}
