// Package profilestore provides share profile persistence.
package profilestore

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/netshare/internal/domain"
)

// ErrNoHomeDir is returned when the store directory is empty or relative.
var ErrNoHomeDir = errors.New("profile store requires an absolute directory")

// Ensure Store implements domain.ProfileRepository.
var _ domain.ProfileRepository = (*Store)(nil)

// Store implements ProfileRepository for file-based persistence.
type Store struct {
	filePath string
}

// NewStore creates a new profile store.
// appDir is typically ~/.config/netshare.
func NewStore(appDir string) (*Store, error) {
	if appDir == "" || !filepath.IsAbs(appDir) {
		return nil, ErrNoHomeDir
	}
	return &Store{
		filePath: domain.ProfilesFilePath(appDir),
	}, nil
}

// Path returns the profile file path.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads the profile file.
// Returns an empty file with version 1 if the file doesn't exist.
func (s *Store) Load() (*domain.ProfileFile, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.ProfileFile{
				Version:  1,
				Profiles: []domain.Profile{},
			}, nil
		}
		return nil, err
	}

	var file domain.ProfileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, domain.ErrProfileFileBroken
	}

	// Deduplicate profiles by name (keep first occurrence)
	file.Profiles = deduplicateProfiles(file.Profiles)

	return &file, nil
}

// Save writes the profile file.
func (s *Store) Save(file *domain.ProfileFile) error {
	// Ensure directory exists with proper permissions (0700)
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	if file.Version == 0 {
		file.Version = 1
	}
	sort.SliceStable(file.Profiles, func(i, j int) bool {
		return file.Profiles[i].Name < file.Profiles[j].Name
	})

	data, err := toml.Marshal(file)
	if err != nil {
		return err
	}

	// Write with 0600 permissions (user read/write only)
	return os.WriteFile(s.filePath, data, 0600)
}

// Get returns the named profile.
func (s *Store) Get(name string) (domain.Profile, error) {
	file, err := s.Load()
	if err != nil {
		return domain.Profile{}, err
	}
	p, ok := file.Find(name)
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

// Add stores a profile after validating it.
func (s *Store) Add(p domain.Profile, replace bool) error {
	if err := p.Validate(); err != nil {
		return err
	}

	// A corrupted file is reported, never overwritten
	file, err := s.Load()
	if err != nil {
		return err
	}

	for i := range file.Profiles {
		if file.Profiles[i].Name == p.Name {
			if !replace {
				return domain.ErrProfileExists
			}
			file.Profiles[i] = p
			return s.Save(file)
		}
	}

	file.Profiles = append(file.Profiles, p)
	return s.Save(file)
}

// Remove removes a profile by name.
func (s *Store) Remove(name string) error {
	file, err := s.Load()
	if err != nil {
		return err
	}

	found := false
	kept := make([]domain.Profile, 0, len(file.Profiles))
	for _, p := range file.Profiles {
		if p.Name == name {
			found = true
			continue
		}
		kept = append(kept, p)
	}

	if !found {
		return domain.ErrProfileNotFound
	}

	file.Profiles = kept
	return s.Save(file)
}

// deduplicateProfiles removes duplicate profiles by name, keeping the first occurrence.
func deduplicateProfiles(profiles []domain.Profile) []domain.Profile {
	seen := make(map[string]bool)
	result := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !seen[p.Name] {
			seen[p.Name] = true
			result = append(result, p)
		}
	}
	return result
}
