package cli

import (
	"github.com/IvanChernomyrdin/go-contact-api/internal/agent/api"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
