package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/netshare/internal/domain"
	"github.com/runoshun/netshare/internal/infra/profilestore"
	"github.com/runoshun/netshare/internal/usecase"
	"github.com/spf13/cobra"
)

// newProfileCommand creates the profile command with subcommands.
func newProfileCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored share profiles",
		Long: `Manage stored share profiles.

A profile stores a UNC path, drive letter and optional username under a name
so that "mount --profile NAME" can be used. Passwords are never stored.`,
	}

	cmd.AddCommand(
		newProfileAddCommand(s),
		newProfileListCommand(s),
		newProfileRmCommand(s),
		newProfileImportCommand(s),
	)

	return cmd
}

func newProfileAddCommand(s *session) *cobra.Command {
	var opts struct {
		User    string
		Replace bool
	}

	cmd := &cobra.Command{
		Use:   "add NAME UNC LETTER",
		Short: "Store a share profile",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			p := domain.Profile{
				Name:     args[0],
				UNC:      args[1],
				Letter:   strings.TrimSuffix(strings.ToUpper(args[2]), ":"),
				Username: opts.User,
			}
			if err := c.AddProfileUseCase().Execute(cmd.Context(), usecase.AddProfileInput{
				Profile: p,
				Replace: opts.Replace,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Saved profile %s", p.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.User, "user", "u", "", "Username for /user:")
	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "Overwrite an existing profile with the same name")

	return cmd
}

func newProfileListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored share profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			profiles, err := c.ListProfilesUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			printProfiles(cmd.OutOrStdout(), profiles)
			return nil
		},
	}
}

// printProfiles writes profiles as an aligned table sorted by name.
func printProfiles(w io.Writer, profiles []domain.Profile) {
	if len(profiles) == 0 {
		_, _ = fmt.Fprintln(w, mutedStyle.Render("No profiles."))
		return
	}

	sorted := append([]domain.Profile(nil), profiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	nameWidth := len("NAME")
	uncWidth := len("UNC")
	for _, p := range sorted {
		nameWidth = max(nameWidth, len(p.Name))
		uncWidth = max(uncWidth, len(p.UNC))
	}

	nameCol := lipgloss.NewStyle().Width(nameWidth + 2)
	letterCol := lipgloss.NewStyle().Width(len("LETTER") + 2)
	uncCol := lipgloss.NewStyle().Width(uncWidth + 2)

	row := func(name, letter, unc, user string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			nameCol.Render(name), letterCol.Render(letter), uncCol.Render(unc), user)
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render(row("NAME", "LETTER", "UNC", "USER")))
	for _, p := range sorted {
		user := p.Username
		if user == "" {
			user = mutedStyle.Render("-")
		}
		_, _ = fmt.Fprintln(w, row(p.Name, p.Letter+":", p.UNC, user))
	}
}

func newProfileRmCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"remove"},
		Short:   "Delete a stored share profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			if err := c.RemoveProfileUseCase().Execute(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Removed profile %s", args[0])))
			return nil
		},
	}
}

func newProfileImportCommand(s *session) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import share profiles from a YAML file",
		Long: `Import share profiles from a YAML file ("-" reads stdin).

File format:
  profiles:
    - name: media
      unc: '\\nas\media'
      letter: M
      username: alice

All profiles are validated before any is stored. Existing names are skipped
unless --replace is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.get(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			profiles, err := profilestore.ParseYAML(data)
			if err != nil {
				return err
			}

			out, err := c.ImportProfilesUseCase().Execute(cmd.Context(), usecase.ImportProfilesInput{
				Profiles: profiles,
				Replace:  replace,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Imported %d profile(s)", len(out.Imported))))
			for _, name := range out.Skipped {
				_, _ = fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Skipped %s (exists)", name)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Overwrite existing profiles with the same name")

	return cmd
}
