package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				printJSON(map[string]string{"version": labkey.Version})
				return
			}
			fmt.Println("labkey client version", labkey.Version)
		},
	}
}
