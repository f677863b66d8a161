package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/netshare/internal/domain"
)

// AddProfileInput contains the parameters for storing a profile.
type AddProfileInput struct {
	Profile domain.Profile
	Replace bool // Overwrite an existing profile with the same name
}

// AddProfile is the use case for storing a share profile.
type AddProfile struct {
	profiles domain.ProfileRepository
}

// NewAddProfile creates a new AddProfile use case.
func NewAddProfile(profiles domain.ProfileRepository) *AddProfile {
	return &AddProfile{profiles: profiles}
}

// Execute stores the profile.
func (uc *AddProfile) Execute(_ context.Context, in AddProfileInput) error {
	if err := uc.profiles.Add(in.Profile, in.Replace); err != nil {
		return fmt.Errorf("add profile %q: %w", in.Profile.Name, err)
	}
	return nil
}

// ListProfiles is the use case for listing stored profiles.
type ListProfiles struct {
	profiles domain.ProfileRepository
}

// NewListProfiles creates a new ListProfiles use case.
func NewListProfiles(profiles domain.ProfileRepository) *ListProfiles {
	return &ListProfiles{profiles: profiles}
}

// Execute returns all stored profiles.
func (uc *ListProfiles) Execute(_ context.Context) ([]domain.Profile, error) {
	file, err := uc.profiles.Load()
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return file.Profiles, nil
}

// RemoveProfile is the use case for deleting a stored profile.
type RemoveProfile struct {
	profiles domain.ProfileRepository
}

// NewRemoveProfile creates a new RemoveProfile use case.
func NewRemoveProfile(profiles domain.ProfileRepository) *RemoveProfile {
	return &RemoveProfile{profiles: profiles}
}

// Execute removes the named profile.
func (uc *RemoveProfile) Execute(_ context.Context, name string) error {
	if err := uc.profiles.Remove(name); err != nil {
		return fmt.Errorf("remove profile %q: %w", name, err)
	}
	return nil
}

// ImportProfilesInput contains the parameters for importing profiles.
type ImportProfilesInput struct {
	Profiles []domain.Profile // Already decoded profiles
	Replace  bool             // Overwrite existing profiles with the same name
}

// ImportProfilesOutput contains the result of an import.
type ImportProfilesOutput struct {
	Imported []string // Names of stored profiles, in input order
	Skipped  []string // Names that already existed (only when Replace is false)
}

// ImportProfiles is the use case for storing many profiles at once.
type ImportProfiles struct {
	profiles domain.ProfileRepository
}

// NewImportProfiles creates a new ImportProfiles use case.
func NewImportProfiles(profiles domain.ProfileRepository) *ImportProfiles {
	return &ImportProfiles{profiles: profiles}
}

// Execute stores each profile in order. Existing names are skipped unless
// Replace is set; any other error stops the import.
func (uc *ImportProfiles) Execute(_ context.Context, in ImportProfilesInput) (*ImportProfilesOutput, error) {
	out := &ImportProfilesOutput{}
	for _, p := range in.Profiles {
		err := uc.profiles.Add(p, in.Replace)
		switch {
		case err == nil:
			out.Imported = append(out.Imported, p.Name)
		case errors.Is(err, domain.ErrProfileExists):
			out.Skipped = append(out.Skipped, p.Name)
		default:
			return out, fmt.Errorf("import profile %q: %w", p.Name, err)
		}
	}
	return out, nil
}
