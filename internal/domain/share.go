package domain

import "strings"

// uncSeparator is the path separator used by UNC paths.
const uncSeparator = `\`

// Credentials holds the username and password passed to the share.
// The password is kept in memory only and must never be logged or persisted.
type Credentials struct {
	Username string
	Password string
}

// Share describes a requested network share mapping.
// It is treated as an immutable value; operations receive it by value.
type Share struct {
	Credentials Credentials
	UNC         string // UNC path of the share (e.g. \\server\share)
	Letter      rune   // Local drive letter to bind (e.g. 'Z')
}

// Drive returns the drive specifier for the share's letter (e.g. "Z:").
func (s Share) Drive() string {
	return string(s.Letter) + ":"
}

// ValidateUNC reports whether the share's UNC path has the minimal
// \\host\share shape. It checks only that the path starts with a double
// separator and that the share component is present and not blank.
func ValidateUNC(s Share) bool {
	if !strings.HasPrefix(s.UNC, uncSeparator+uncSeparator) {
		return false
	}
	parts := strings.Split(s.UNC, uncSeparator)
	if len(parts) < 4 {
		return false
	}
	return strings.TrimSpace(parts[3]) != ""
}

// ParseLetter parses a drive letter argument such as "Z", "z" or "Z:".
// The letter is upper-cased. Returns ErrInvalidLetter for anything else.
func ParseLetter(s string) (rune, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ":")
	if len(s) != 1 {
		return 0, ErrInvalidLetter
	}
	c := rune(strings.ToUpper(s)[0])
	if c < 'A' || c > 'Z' {
		return 0, ErrInvalidLetter
	}
	return c, nil
}
