package exitcode

import (
	"fmt"
	"testing"

	"github.com/admitly/admitctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"plain error", fmt.Errorf("boom"), GeneralError},
		{"bad credentials", errors.NewBadCredentialsError("nope"), AuthError},
		{"session expired", errors.NewSessionExpiredError(), AuthError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"access denied", errors.NewAccessDeniedError("this operation"), AuthError},
		{"network failure", errors.NewNetworkError(fmt.Errorf("dial tcp")), NetworkError},
		{"api failure", errors.NewAPIError(500, "server error"), GeneralError},
		{"config invalid", errors.NewConfigInvalidError("bad url", nil), ConfigError},
		{"state write", errors.NewStateWriteError("/tmp/x", fmt.Errorf("disk full")), StateError},
		{"tenant lookup", errors.NewTenantLookupError(fmt.Errorf("503")), GeneralError},
		{"wrapped coded error", fmt.Errorf("context: %w", errors.NewNotLoggedInError()), AuthError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	codes := []int{Success, GeneralError, UsageError, ConfigError, StateError, AuthError, NetworkError, Interrupted}
	for _, code := range codes {
		if Description(code) == "Unknown error" {
			t.Errorf("Description(%d) should be defined", code)
		}
	}
	if Description(99) != "Unknown error" {
		t.Errorf("Description(99) = %q, want Unknown error", Description(99))
	}
}
