// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	"tarefas/internal/service"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, rejected input).
	UserError = 1

	// ConfigError indicates an invalid configuration.
	ConfigError = 2

	// BackendError indicates a backend/API/network error.
	BackendError = 3
)

// ForError maps a service error to an exit code.
func ForError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrValidation):
		return UserError
	default:
		return BackendError
	}
}
