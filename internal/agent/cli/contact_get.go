package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewContactGetCmd создаёт CLI-команду для получения одного контакта по id.
//
// Пример использования:
//
//	contactcli contact-get --id 5
func NewContactGetCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:          "contact-get",
		Short:        "Получить контакт по id",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			contact, err := c.GetContact(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\tuser=%d\t%s %s\t%s\n",
				contact.ID, contact.UserID, contact.Name, contact.Surname, contact.PhoneNumber)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "contact id")
	cmd.MarkFlagRequired("id")

	return cmd
}
