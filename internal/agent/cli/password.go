package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword читает пароль пользователя.
//
// По умолчанию пароль запрашивается интерактивно со скрытым вводом (term),
// чтобы он не утекал в shell history. Для скриптов/CI есть режим чтения
// одной строки из STDIN (fromStdin=true).
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
