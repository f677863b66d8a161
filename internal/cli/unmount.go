package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/netshare/internal/usecase"
	"github.com/spf13/cobra"
)

// errNoLetter is returned when neither an argument nor a profile gives a letter.
var errNoLetter = errors.New("drive letter required (argument or --profile)")

// newUnmountCommand creates the unmount command.
func newUnmountCommand(s *session) *cobra.Command {
	var flags shareFlags

	cmd := &cobra.Command{
		Use:   "unmount [LETTER]",
		Short: "Release a drive letter mapping",
		Long: `Release a drive letter mapping using "net use <letter>: /D /Y".

The share's UNC path is validated before anything runs, so either --unc or a
--profile must supply one. An invalid or missing UNC path exits with 254.

Examples:
  netshare unmount Z --unc '\\nas\media'
  netshare unmount --profile media`,
		Aliases: []string{"umount"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			profile, err := flags.loadProfile(c)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				profile.Letter = args[0]
			}
			if cmd.Flags().Changed("unc") {
				profile.UNC = flags.unc
			}
			if profile.Letter == "" {
				return errNoLetter
			}

			share, err := profile.Share("")
			if err != nil {
				return err
			}

			res := c.UnmountShareUseCase().Execute(cmd.Context(), usecase.UnmountShareInput{
				Share:   share,
				Options: flags.options(cmd, c),
				Strict:  flags.strictMode(cmd, c),
			})
			if err := resultError("unmount", res); err != nil {
				return err
			}

			if !flags.quiet {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(),
					successStyle.Render(fmt.Sprintf("Released %s", share.Drive())))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.unc, "unc", "", `UNC path of the mapped share (e.g. \\server\share)`)

	return cmd
}
