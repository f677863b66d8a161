// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"

	"github.com/runoshun/netshare/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// It records every command it is asked to run and returns Result.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	Commands []string         // Command lines received, in order
	Options  []domain.Options // Options received, in order
	Result   domain.Result    // Result returned from Run
}

// Ensure MockCommandExecutor implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// Run records the command and returns the configured result.
func (m *MockCommandExecutor) Run(_ context.Context, cmd *domain.ExecCommand, opts domain.Options) domain.Result {
	m.Commands = append(m.Commands, cmd.Line)
	m.Options = append(m.Options, opts)
	return m.Result
}

// Called reports whether Run was invoked at least once.
func (m *MockCommandExecutor) Called() bool {
	return len(m.Commands) > 0
}

// LogEntry is a single entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Scope    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, scope, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Scope: scope, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(scope, category, msg string) { m.record("INFO", scope, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(scope, category, msg string) { m.record("DEBUG", scope, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(scope, category, msg string) { m.record("WARN", scope, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(scope, category, msg string) { m.record("ERROR", scope, category, msg) }

// MockProfileRepository is a test double for domain.ProfileRepository.
// Fields are ordered to minimize memory padding.
type MockProfileRepository struct {
	Profiles  map[string]domain.Profile
	LoadErr   error
	AddErr    error
	RemoveErr error
}

// NewMockProfileRepository creates a new MockProfileRepository with an initialized map.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[string]domain.Profile),
	}
}

// Ensure MockProfileRepository implements domain.ProfileRepository.
var _ domain.ProfileRepository = (*MockProfileRepository)(nil)

// Load returns all profiles (order not guaranteed).
func (m *MockProfileRepository) Load() (*domain.ProfileFile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	file := &domain.ProfileFile{Version: 1, Profiles: make([]domain.Profile, 0, len(m.Profiles))}
	for _, p := range m.Profiles {
		file.Profiles = append(file.Profiles, p)
	}
	return file, nil
}

// Get returns the named profile.
func (m *MockProfileRepository) Get(name string) (domain.Profile, error) {
	if m.LoadErr != nil {
		return domain.Profile{}, m.LoadErr
	}
	p, ok := m.Profiles[name]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

// Add stores the profile.
func (m *MockProfileRepository) Add(p domain.Profile, replace bool) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if _, ok := m.Profiles[p.Name]; ok && !replace {
		return domain.ErrProfileExists
	}
	m.Profiles[p.Name] = p
	return nil
}

// Remove deletes the named profile.
func (m *MockProfileRepository) Remove(name string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	if _, ok := m.Profiles[name]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(m.Profiles, name)
	return nil
}
