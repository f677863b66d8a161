package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/netshare/internal/domain"
	"github.com/spf13/cobra"
)

// configSources is implemented by loaders that can report their file paths.
type configSources interface {
	GlobalPath() string
	Path() string
}

// newConfigCommand creates the config command with subcommands.
func newConfigCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(newConfigShowCommand(s))

	return cmd
}

func newConfigShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration files that were read and the effective
configuration after merging defaults, the global file and --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if src, ok := c.ConfigLoader.(configSources); ok {
				_, _ = fmt.Fprintln(w, "[Config Files]")
				printSource(w, src.GlobalPath())
				if src.Path() != "" {
					printSource(w, src.Path())
				}
				_, _ = fmt.Fprintln(w)
			}

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, c.AppConfig)
		},
	}
}

func printSource(w io.Writer, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", path)
		return
	}
	_, _ = fmt.Fprintf(w, "- %s\n", path)
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
