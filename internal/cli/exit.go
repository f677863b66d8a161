package cli

import (
	"fmt"

	"github.com/runoshun/netshare/internal/domain"
)

// ExitError carries a non-zero operation result out of a command so that
// main can exit with the result's code.
type ExitError struct {
	Op     string
	Result domain.Result
}

// Error describes the failed operation.
func (e *ExitError) Error() string {
	switch e.Result.Kind {
	case domain.ResultValidationFailed, domain.ResultSpawnFailed:
		return fmt.Sprintf("%s: %v", e.Op, e.Result.Err)
	default:
		return fmt.Sprintf("%s: net use exited with code %d", e.Op, e.Result.ExitCode)
	}
}

// Unwrap returns the cause for validation and spawn failures.
func (e *ExitError) Unwrap() error {
	return e.Result.Err
}

// Code returns the process exit status for the result.
func (e *ExitError) Code() int {
	return e.Result.Code()
}

// resultError converts a result into a command error; nil on success.
func resultError(op string, res domain.Result) error {
	if res.Kind == domain.ResultExited && res.ExitCode == 0 {
		return nil
	}
	return &ExitError{Op: op, Result: res}
}
