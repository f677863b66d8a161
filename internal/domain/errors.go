package domain

import "errors"

// Domain errors.
var (
	ErrInvalidUNC        = errors.New("invalid UNC path (expected \\\\server\\share)")
	ErrInvalidLetter     = errors.New("invalid drive letter (expected A-Z)")
	ErrUnsafeValue       = errors.New("value contains shell metacharacters")
	ErrSpawnFailed       = errors.New("failed to start shell process")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileExists     = errors.New("profile already exists")
	ErrEmptyProfileName  = errors.New("profile name cannot be empty")
	ErrProfileFileBroken = errors.New("profile file is corrupted")
)
