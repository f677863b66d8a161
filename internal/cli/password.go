package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPasswordFunc prompts for a password without echo, allowing it to be mocked in tests.
// ok is false when stdin is not a terminal.
var readPasswordFunc = readPasswordFromTerminal

func readPasswordFromTerminal(prompt string, w io.Writer) (password string, ok bool, err error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", false, nil
	}
	_, _ = fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", true, fmt.Errorf("read password: %w", err)
	}
	return string(b), true, nil
}

// resolvePassword picks the password from, in order: --password,
// --password-stdin, or an interactive prompt when a username is set.
// Without any of these the password is empty.
func resolvePassword(cmd *cobra.Command, flags *shareFlags, username string) (string, error) {
	if cmd.Flags().Changed("password") {
		if flags.passwordStdin {
			return "", errors.New("--password and --password-stdin are mutually exclusive")
		}
		return flags.password, nil
	}
	if flags.passwordStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if username == "" {
		return "", nil
	}
	password, _, err := readPasswordFunc(fmt.Sprintf("Password for %s: ", username), cmd.ErrOrStderr())
	return password, err
}
