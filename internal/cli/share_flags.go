package cli

import (
	"github.com/runoshun/netshare/internal/app"
	"github.com/runoshun/netshare/internal/domain"
	"github.com/spf13/cobra"
)

// shareFlags holds the flags shared by mount and unmount.
// Fields are ordered to minimize memory padding.
type shareFlags struct {
	profile       string
	unc           string
	user          string
	password      string
	passwordStdin bool
	printOutput   bool
	strict        bool
	quiet         bool
}

func (f *shareFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", "", "Use a stored profile for UNC, letter and username")
	cmd.Flags().BoolVar(&f.printOutput, "print-output", false, "Print captured net use stdout/stderr (overrides [output] print)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject values containing shell metacharacters (overrides [shell] strict)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print a summary on success")
}

// options returns the executor options, letting --print-output override the config.
func (f *shareFlags) options(cmd *cobra.Command, c *app.Container) domain.Options {
	opts := c.AppConfig.Options()
	if cmd.Flags().Changed("print-output") {
		opts.PrintOutput = f.printOutput
	}
	return opts
}

// strictMode returns whether strict mode is on, letting --strict override the config.
func (f *shareFlags) strictMode(cmd *cobra.Command, c *app.Container) bool {
	if cmd.Flags().Changed("strict") {
		return f.strict
	}
	return c.AppConfig.Shell.Strict
}

// loadProfile returns the profile named by --profile, or a zero profile.
func (f *shareFlags) loadProfile(c *app.Container) (domain.Profile, error) {
	if f.profile == "" {
		return domain.Profile{}, nil
	}
	return c.Profiles.Get(f.profile)
}
