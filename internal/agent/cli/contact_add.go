package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// NewContactAddCmd создаёт CLI-команду для создания нового контакта.
//
// Обязательные флаги:
//
//	--user-id — id пользователя-владельца (должен существовать на сервере)
//	--name    — имя контакта
//	--surname — фамилия контакта
//	--phone   — телефон (до 20 символов)
//
// Пример использования:
//
//	contactcli contact-add --user-id 1 --name Jane --surname Doe --phone 12345
func NewContactAddCmd(app *App) *cobra.Command {
	var (
		userID  int64
		name    string
		surname string
		phone   string
	)

	cmd := &cobra.Command{
		Use:   "contact-add",
		Short: "Создать новый контакт",
		Long: `Создаёт новый контакт на сервере.

Пример:
  contactcli contact-add --user-id 1 --name Jane --surname Doe --phone 12345
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.AddContact(sharedModels.AddContactRequest{
				UserID:      userID,
				Name:        name,
				Surname:     surname,
				PhoneNumber: phone,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "owner user id")
	cmd.Flags().StringVar(&name, "name", "", "contact name")
	cmd.Flags().StringVar(&surname, "surname", "", "contact surname")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	cmd.MarkFlagRequired("user-id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("surname")
	cmd.MarkFlagRequired("phone")

	return cmd
}
