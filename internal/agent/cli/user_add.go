package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// NewUserAddCmd создаёт CLI-команду для создания нового пользователя.
//
// Пароль не передаётся флагом по умолчанию, чтобы не утекать в shell history:
// команда запрашивает его интерактивно со скрытым вводом. Для скриптов/CI
// доступен флаг --password-stdin (читает одну строку из STDIN) и флаг
// --password для случаев, когда утечка в history не важна.
//
// Пример использования:
//
//	contactcli user-add --username bob
//	echo "pw1" | contactcli user-add --username bob --password-stdin
//
// В случае успеха выводится сообщение сервера ("User added successfully!").
func NewUserAddCmd(app *App) *cobra.Command {
	var (
		username          string
		password          string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "user-add",
		Short: "Создать нового пользователя",
		Long: `Создаёт нового пользователя на сервере.

Пример:
  contactcli user-add --username bob
  echo "pw1" | contactcli user-add --username bob --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin)
				if err != nil {
					return err
				}
				password = pw
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.AddUser(sharedModels.AddUserRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for the new user")
	cmd.Flags().StringVar(&password, "password", "", "password (prefer interactive prompt or --password-stdin)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN")
	cmd.MarkFlagRequired("username")

	return cmd
}
