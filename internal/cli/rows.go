package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

// rowsOperation is the shared shape of insert, update and delete.
type rowsOperation func(ctx context.Context, params labkey.ServerParams, schemaName, queryName string, rows []labkey.Row) (any, error)

// newInsertCmd creates the insert command.
func newInsertCmd() *cobra.Command {
	return newRowsCmd("insert", "Insert rows into a named query",
		`Insert rows into a named query. The rows file is a YAML or JSON list
of objects keyed by column name.

Example rows.yaml:
  - name: alice
    age: 30
  - name: bob
    age: 25

Example:
  labkey insert lists People -f rows.yaml`, labkey.InsertRows)
}

// newUpdateCmd creates the update command.
func newUpdateCmd() *cobra.Command {
	return newRowsCmd("update", "Update rows of a named query",
		`Update rows of a named query. Each row in the file must carry the
query's key column(s) so the server can locate it.

Example:
  labkey update lists People -f changed.yaml`, labkey.UpdateRows)
}

// newDeleteCmd creates the delete command.
func newDeleteCmd() *cobra.Command {
	return newRowsCmd("delete", "Delete rows from a named query",
		`Delete rows from a named query. Each row in the file must carry the
query's key column(s); other columns are ignored.

Example:
  labkey delete lists People -f keys.yaml`, labkey.DeleteRows)
}

func newRowsCmd(verb, short, long string, op rowsOperation) *cobra.Command {
	var rowsFile string

	cmd := &cobra.Command{
		Use:   verb + " SCHEMA QUERY -f ROWS_FILE",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadRows(rowsFile)
			if err != nil {
				return err
			}
			params, err := serverParams()
			if err != nil {
				return err
			}
			result, err := op(cmd.Context(), params, args[0], args[1], rows)
			if err != nil {
				return err
			}
			okLabel.Fprintf(os.Stderr, "✓ %s succeeded\n", verb)
			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rowsFile, "file", "f", "", "YAML or JSON file containing the rows")
	cmd.MarkFlagRequired("file")
	return cmd
}

// loadRows reads a YAML or JSON list of row objects.
func loadRows(path string) ([]labkey.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read rows file: %w", err)
	}
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse rows file: %w", err)
	}
	var rows []labkey.Row
	if err := json.Unmarshal(jsonData, &rows); err != nil {
		return nil, fmt.Errorf("rows file must contain a list of row objects: %w", err)
	}
	return rows, nil
}
