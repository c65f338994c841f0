package cli

import (
	"github.com/spf13/cobra"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

// newWhoAmICmd creates the whoami command.
func newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity the server sees",
		Long: `Show the identity the server associates with the resolved credentials.
Useful for checking which credential source (API key, netrc, guest) is
actually in effect.

Example:
  labkey whoami -u https://labkey.example.org -c home`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := serverParams()
			if err != nil {
				return err
			}
			identity, err := labkey.WhoAmI(cmd.Context(), params)
			if err != nil {
				return err
			}
			printResult(identity)
			return nil
		},
	}
}
