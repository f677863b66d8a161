package cli

import (
	"fmt"

	"github.com/runoshun/netshare/internal/usecase"
	"github.com/spf13/cobra"
)

// newMountCommand creates the mount command.
func newMountCommand(s *session) *cobra.Command {
	var flags shareFlags

	cmd := &cobra.Command{
		Use:   "mount [UNC LETTER]",
		Short: "Map a network share to a drive letter",
		Long: `Map a network share to a drive letter using "net use".

The UNC path must have the shape \\server\share (a trailing subpath is allowed).
If it does not, nothing is run and netshare exits with 254.

Values are passed to the shell unquoted. Use --strict to reject values that
contain shell metacharacters.

Examples:
  # Mount with a prompted password
  netshare mount '\\nas\media' Z -u alice

  # Read the password from stdin
  echo "$PASS" | netshare mount '\\nas\media' Z -u alice --password-stdin

  # Mount a stored profile and show net use output
  netshare mount --profile media --print-output`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.profile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			profile, err := flags.loadProfile(c)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				profile.UNC = args[0]
				profile.Letter = args[1]
			}
			if cmd.Flags().Changed("user") {
				profile.Username = flags.user
			}

			password, err := resolvePassword(cmd, &flags, profile.Username)
			if err != nil {
				return err
			}

			share, err := profile.Share(password)
			if err != nil {
				return err
			}

			res := c.MountShareUseCase().Execute(cmd.Context(), usecase.MountShareInput{
				Share:   share,
				Options: flags.options(cmd, c),
				Strict:  flags.strictMode(cmd, c),
			})
			if err := resultError("mount", res); err != nil {
				return err
			}

			if !flags.quiet {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(),
					successStyle.Render(fmt.Sprintf("Mounted %s on %s", share.UNC, share.Drive())))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.user, "user", "u", "", "Username for /user:")
	cmd.Flags().StringVarP(&flags.password, "password", "p", "", "Password (prefer --password-stdin or the prompt)")
	cmd.Flags().BoolVar(&flags.passwordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}
