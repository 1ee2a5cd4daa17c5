package cli

import (
	"github.com/spf13/cobra"
)

// NewContactSearchCmd создаёт CLI-команду поиска контактов по имени.
//
// Поиск регистронезависимый, по подстроке: --name ali найдёт и "Ali",
// и "ALICE", и "khalil".
//
// Пример использования:
//
//	contactcli contact-search --name ali
func NewContactSearchCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:          "contact-search",
		Short:        "Поиск контактов по подстроке имени",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.SearchContacts(name)
			if err != nil {
				return err
			}
			printContacts(cmd, resp.Contacts)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "substring to search for")
	cmd.MarkFlagRequired("name")

	return cmd
}
