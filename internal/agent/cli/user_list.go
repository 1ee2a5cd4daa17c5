package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUserListCmd создаёт CLI-команду для вывода списка пользователей.
//
// Сервер отдаёт публичную проекцию {id, username}, хэшей паролей в выводе нет.
func NewUserListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "user-list",
		Short:        "Список пользователей",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.ListUsers()
			if err != nil {
				return err
			}

			if len(resp.Users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no users")
				return nil
			}
			for _, u := range resp.Users {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", u.ID, u.Username)
			}
			return nil
		},
	}

	return cmd
}
