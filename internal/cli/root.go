// Package cli provides the command-line interface for netshare.
package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/netshare/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupShare = "share"
	groupSetup = "setup"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(configPath string, console io.Writer) (*app.Container, error)

// session carries the lazily built container to subcommands.
type session struct {
	newContainer ContainerFactory
	container    *app.Container
	configPath   string
}

// get returns the container, building it on first use.
func (s *session) get(cmd *cobra.Command) (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	c, err := s.newContainer(s.configPath, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	s.container = c
	return c, nil
}

// NewRootCommand creates the root command for netshare.
// newContainer is called once per invocation after flag parsing.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	s := &session{newContainer: newContainer}

	root := &cobra.Command{
		Use:   "netshare",
		Short: "Mount and unmount SMB network shares",
		Long: `netshare maps SMB/CIFS network shares to drive letters by running
the operating system's "net use" command.

Exit status mirrors net use. Two codes are reserved:
  254  the UNC path was rejected before anything ran
  1    the shell could not be started (also used by net use itself)`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if s.container == nil {
				return nil
			}
			return s.container.Close()
		},
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to a config file (overrides the global config)")

	root.AddGroup(
		&cobra.Group{ID: groupShare, Title: "Share Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	mountCmd := newMountCommand(s)
	mountCmd.GroupID = groupShare

	unmountCmd := newUnmountCommand(s)
	unmountCmd.GroupID = groupShare

	profileCmd := newProfileCommand(s)
	profileCmd.GroupID = groupSetup

	configCmd := newConfigCommand(s)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		mountCmd,
		unmountCmd,
		profileCmd,
		configCmd,
	)

	return root
}
