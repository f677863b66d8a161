// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/runoshun/netshare/internal/domain"
	"github.com/runoshun/netshare/internal/infra/config"
	"github.com/runoshun/netshare/internal/infra/executor"
	"github.com/runoshun/netshare/internal/infra/logging"
	"github.com/runoshun/netshare/internal/infra/profilestore"
	"github.com/runoshun/netshare/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	ConfigPath string // Explicit config file (--config), optional
	AppDir     string // Global application directory (~/.config/netshare)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader domain.ConfigLoader
	Profiles     domain.ProfileRepository
	Executor     domain.CommandExecutor
	Logger       domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a new Container.
// configPath is an optional explicit config file; console receives the
// captured command output when printing is enabled.
func New(configPath string, console io.Writer) (*Container, error) {
	cfg := Config{
		ConfigPath: configPath,
		AppDir:     config.DefaultGlobalDir(),
	}

	loader := config.NewLoader(cfg.ConfigPath)
	appConfig, err := loader.Load()
	if err != nil {
		return nil, err
	}

	// Create profile store; without a home directory profile commands fail
	// but plain mount/unmount keeps working.
	var profiles domain.ProfileRepository
	store, err := profilestore.NewStore(cfg.AppDir)
	if err != nil {
		profiles = unavailableProfiles{err: err}
	} else {
		profiles = store
	}

	// Create logger
	logger := logging.New(appConfig.Log.File, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		ConfigLoader: loader,
		Profiles:     profiles,
		Executor:     executor.NewClient(appConfig.Shell, console),
		Logger:       logger,
		AppConfig:    appConfig,
		closer:       logger,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, exec domain.CommandExecutor, profiles domain.ProfileRepository, logger domain.Logger) *Container {
	return &Container{
		Profiles:  profiles,
		Executor:  exec,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases resources held by the container (the log file).
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// MountShareUseCase returns a new MountShare use case.
func (c *Container) MountShareUseCase() *usecase.MountShare {
	return usecase.NewMountShare(c.Executor, c.Logger)
}

// UnmountShareUseCase returns a new UnmountShare use case.
func (c *Container) UnmountShareUseCase() *usecase.UnmountShare {
	return usecase.NewUnmountShare(c.Executor, c.Logger)
}

// AddProfileUseCase returns a new AddProfile use case.
func (c *Container) AddProfileUseCase() *usecase.AddProfile {
	return usecase.NewAddProfile(c.Profiles)
}

// ListProfilesUseCase returns a new ListProfiles use case.
func (c *Container) ListProfilesUseCase() *usecase.ListProfiles {
	return usecase.NewListProfiles(c.Profiles)
}

// RemoveProfileUseCase returns a new RemoveProfile use case.
func (c *Container) RemoveProfileUseCase() *usecase.RemoveProfile {
	return usecase.NewRemoveProfile(c.Profiles)
}

// ImportProfilesUseCase returns a new ImportProfiles use case.
func (c *Container) ImportProfilesUseCase() *usecase.ImportProfiles {
	return usecase.NewImportProfiles(c.Profiles)
}

// unavailableProfiles is bound when no profile directory can be resolved.
type unavailableProfiles struct {
	err error
}

func (u unavailableProfiles) Load() (*domain.ProfileFile, error) { return nil, u.err }
func (u unavailableProfiles) Get(string) (domain.Profile, error) { return domain.Profile{}, u.err }
func (u unavailableProfiles) Add(domain.Profile, bool) error { return u.err }
func (u unavailableProfiles) Remove(string) error { return u.err }
