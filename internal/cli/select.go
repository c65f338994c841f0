package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

// newSelectCmd creates the select command.
func newSelectCmd() *cobra.Command {
	var (
		filters         []string
		parameters      []string
		viewName        string
		columns         string
		sort            string
		containerFilter string
		maxRows         int
		offset          int
		version         float64
	)

	cmd := &cobra.Command{
		Use:   "select SCHEMA QUERY [flags]",
		Short: "Select rows from a named query",
		Long: `Select rows from a named query in a schema.

Filters use the form COLUMN~OPERATOR=VALUE where OPERATOR is a LabKey
filter code such as eq, neq, gt, lt, contains, or isblank. Parameters
bind values of parameterized queries with NAME=VALUE.

Examples:
  # All rows of a list
  labkey select lists People -c myFolder

  # Adults only, two columns, at most 100 rows
  labkey select lists People --filter "age~gt=18" --columns name,age --max-rows 100

  # A parameterized query
  labkey select study Demographics --param "MinWeight=70"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &labkey.SelectOptions{
				ViewName:            viewName,
				Columns:             columns,
				Sort:                sort,
				ContainerFilterName: containerFilter,
				MaxRows:             maxRows,
				Offset:              offset,
				RequiredVersion:     version,
			}
			for _, f := range filters {
				filter, err := parseFilter(f)
				if err != nil {
					return err
				}
				opts.Filters = append(opts.Filters, filter)
			}
			for _, p := range parameters {
				name, value, found := strings.Cut(p, "=")
				if !found {
					return fmt.Errorf("invalid parameter %q, expected NAME=VALUE", p)
				}
				opts.Parameters = append(opts.Parameters, labkey.QueryParameter{Name: name, Value: value})
			}

			params, err := serverParams()
			if err != nil {
				return err
			}
			result, err := labkey.SelectRows(cmd.Context(), params, args[0], args[1], opts)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Row filter COLUMN~OPERATOR=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&parameters, "param", nil, "Query parameter NAME=VALUE (repeatable)")
	cmd.Flags().StringVar(&viewName, "view", "", "Named view to select from")
	cmd.Flags().StringVar(&columns, "columns", "", "Comma-separated list of columns to return")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort specification, e.g. \"-age,name\"")
	cmd.Flags().StringVar(&containerFilter, "container-filter", "", "Container filter name, e.g. CurrentAndSubfolders")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "Maximum number of rows to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Row offset to start from")
	cmd.Flags().Float64Var(&version, "api-version", 0, "Result format version (default 9.1)")
	return cmd
}

// parseFilter splits COLUMN~OPERATOR=VALUE into a Filter.
func parseFilter(s string) (labkey.Filter, error) {
	colOp, value, found := strings.Cut(s, "=")
	if !found {
		return labkey.Filter{}, fmt.Errorf("invalid filter %q, expected COLUMN~OPERATOR=VALUE", s)
	}
	column, operator, found := strings.Cut(colOp, "~")
	if !found || column == "" || operator == "" {
		return labkey.Filter{}, fmt.Errorf("invalid filter %q, expected COLUMN~OPERATOR=VALUE", s)
	}
	return labkey.Filter{Column: column, Operator: operator, Value: value}, nil
}
