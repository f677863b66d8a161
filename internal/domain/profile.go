package domain

import "strings"

// Profile is a named share definition that can be mounted repeatedly.
// Passwords are never part of a profile.
//
//nolint:govet // Field order follows TOML convention for readability
type Profile struct {
	Name     string `toml:"name" yaml:"name"`                             // Unique profile name
	UNC      string `toml:"unc" yaml:"unc"`                               // UNC path of the share
	Letter   string `toml:"letter" yaml:"letter"`                         // Drive letter (e.g. "Z")
	Username string `toml:"username,omitempty" yaml:"username,omitempty"` // Username for /user:
}

// Share converts the profile to a Share with the given password.
func (p Profile) Share(password string) (Share, error) {
	letter, err := ParseLetter(p.Letter)
	if err != nil {
		return Share{}, err
	}
	return Share{
		UNC:    p.UNC,
		Letter: letter,
		Credentials: Credentials{
			Username: p.Username,
			Password: password,
		},
	}, nil
}

// Validate checks that the profile has a name, a usable letter and a UNC path
// of the minimal shape.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProfileName
	}
	share, err := p.Share("")
	if err != nil {
		return err
	}
	if !ValidateUNC(share) {
		return ErrInvalidUNC
	}
	return nil
}

// ProfileFile represents the profiles.toml file structure.
// Fields are ordered to minimize memory padding.
type ProfileFile struct {
	Profiles []Profile `toml:"profiles"` // Stored profiles, sorted by name
	Version  int       `toml:"version"`  // File format version (currently 1)
}

// Find returns the profile with the given name.
func (f *ProfileFile) Find(name string) (Profile, bool) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
