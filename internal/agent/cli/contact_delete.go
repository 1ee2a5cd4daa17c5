package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewContactDeleteCmd создаёт CLI-команду для удаления контакта по id.
//
// Удаление несуществующего (или уже удалённого) id — это ошибка сервера
// "Contact not found!", а не падение команды с нулевым выводом.
//
// Пример использования:
//
//	contactcli contact-delete --id 5
func NewContactDeleteCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:          "contact-delete",
		Short:        "Удалить контакт по id",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.DeleteContact(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "contact id")
	cmd.MarkFlagRequired("id")

	return cmd
}
