package cli

import (
	"github.com/spf13/cobra"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

// newSQLCmd creates the sql command.
func newSQLCmd() *cobra.Command {
	var (
		sort            string
		containerFilter string
		maxRows         int
		offset          int
	)

	cmd := &cobra.Command{
		Use:   "sql SCHEMA STATEMENT [flags]",
		Short: "Run LabKey SQL against a schema",
		Long: `Run a LabKey SQL statement against a schema and print the result.

Examples:
  # Ad hoc aggregation
  labkey sql lists "SELECT COUNT(*) AS n FROM People" -c myFolder

  # Paged result
  labkey sql lists "SELECT name FROM People" --max-rows 50 --offset 50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &labkey.SQLOptions{
				Sort:                sort,
				ContainerFilterName: containerFilter,
				MaxRows:             maxRows,
				Offset:              offset,
			}
			params, err := serverParams()
			if err != nil {
				return err
			}
			result, err := labkey.ExecuteSQL(cmd.Context(), params, args[0], args[1], opts)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sort, "sort", "", "Sort specification, e.g. \"-age,name\"")
	cmd.Flags().StringVar(&containerFilter, "container-filter", "", "Container filter name, e.g. CurrentAndSubfolders")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Maximum number of rows to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Row offset to start from")
	return cmd
}
