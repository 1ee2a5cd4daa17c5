package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-contact-api/internal/shared/models"
)

// printContacts выводит контакты в виде простой табличной выдачи.
func printContacts(cmd *cobra.Command, contacts []sharedModels.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no contacts")
		return
	}
	for _, c := range contacts {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\tuser=%d\t%s %s\t%s\n",
			c.ID, c.UserID, c.Name, c.Surname, c.PhoneNumber)
	}
}

// NewContactListCmd создаёт CLI-команду для вывода всех контактов.
func NewContactListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "contact-list",
		Short:        "Список всех контактов",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.ListContacts()
			if err != nil {
				return err
			}
			printContacts(cmd, resp.Contacts)
			return nil
		},
	}

	return cmd
}
