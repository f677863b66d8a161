package domain

import "fmt"

// Legacy integer codes reserved for this tool's own failure modes.
const (
	CodeValidationFailed = 254
	CodeSpawnFailed      = 1
)

// ResultKind identifies how an operation ended.
type ResultKind int

const (
	// ResultExited means the external command ran and reported an exit code.
	ResultExited ResultKind = iota
	// ResultValidationFailed means the share was rejected before spawning.
	ResultValidationFailed
	// ResultSpawnFailed means the shell process could not be created.
	ResultSpawnFailed
)

// String returns a human-readable name for the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultExited:
		return "exited"
	case ResultValidationFailed:
		return "validation failed"
	case ResultSpawnFailed:
		return "spawn failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a mount or unmount operation.
// Fields are ordered to minimize memory padding.
type Result struct {
	Err      error      // Cause for ValidationFailed / SpawnFailed
	Stdout   string     // Captured standard output (Exited only)
	Stderr   string     // Captured standard error (Exited only)
	ExitCode int        // Exit code of the external command (Exited only)
	Kind     ResultKind // How the operation ended
}

// Exited returns a result for a command that ran to completion.
func Exited(code int, stdout, stderr string) Result {
	return Result{Kind: ResultExited, ExitCode: code, Stdout: stdout, Stderr: stderr}
}

// ValidationFailed returns a result for a share rejected before spawning.
func ValidationFailed(err error) Result {
	return Result{Kind: ResultValidationFailed, Err: err}
}

// SpawnFailed returns a result for a shell process that could not start.
func SpawnFailed(err error) Result {
	return Result{Kind: ResultSpawnFailed, Err: fmt.Errorf("%w: %w", ErrSpawnFailed, err)}
}

// Code returns the integer code callers of the original tool expect:
// 254 for validation failure, 1 for spawn failure, otherwise the
// external command's exit code. The mapping is ambiguous when the
// external command itself exits with 254 or 1; use Kind to tell them apart.
func (r Result) Code() int {
	switch r.Kind {
	case ResultValidationFailed:
		return CodeValidationFailed
	case ResultSpawnFailed:
		return CodeSpawnFailed
	default:
		return r.ExitCode
	}
}

// OK reports whether the external command ran and exited with 0.
func (r Result) OK() bool {
	return r.Kind == ResultExited && r.ExitCode == 0
}
