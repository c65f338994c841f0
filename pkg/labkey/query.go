package labkey

import (
	"context"
)

// queryController is the controller all query operations go through.
const queryController = "query"

// SelectRows retrieves rows from a named query. Required parameters are
// validated before any network request; opts may be nil. The decoded
// JSON response passes through unmodified.
func SelectRows(ctx context.Context, params ServerParams, schemaName, queryName string, opts *SelectOptions) (any, error) {
	if err := requireParam("schemaName", schemaName); err != nil {
		return nil, err
	}
	if err := requireParam("queryName", queryName); err != nil {
		return nil, err
	}
	sc, err := NewServerContext(ctx, params)
	if err != nil {
		return nil, err
	}
	return sc.SelectRows(ctx, schemaName, queryName, opts)
}

// SelectRows is the context-reusing form of the package-level function.
func (sc *ServerContext) SelectRows(ctx context.Context, schemaName, queryName string, opts *SelectOptions) (any, error) {
	if err := requireParam("schemaName", schemaName); err != nil {
		return nil, err
	}
	if err := requireParam("queryName", queryName); err != nil {
		return nil, err
	}
	u := sc.actionURL(queryController, "getQuery.api")
	return sc.client.PostJSON(ctx, u, selectRowsPayload(schemaName, queryName, opts))
}

// InsertRows inserts rows into a named query. rows must be non-nil; an
// empty slice is a valid (empty) insert.
func InsertRows(ctx context.Context, params ServerParams, schemaName, queryName string, rows []Row) (any, error) {
	return mutateRows(ctx, params, "insertRows.api", schemaName, queryName, rows)
}

// UpdateRows updates existing rows of a named query. Each row must carry
// the query's key column(s).
func UpdateRows(ctx context.Context, params ServerParams, schemaName, queryName string, rows []Row) (any, error) {
	return mutateRows(ctx, params, "updateRows.api", schemaName, queryName, rows)
}

// DeleteRows deletes rows from a named query. Each row must carry the
// query's key column(s).
func DeleteRows(ctx context.Context, params ServerParams, schemaName, queryName string, rows []Row) (any, error) {
	return mutateRows(ctx, params, "deleteRows.api", schemaName, queryName, rows)
}

// InsertRows is the context-reusing form of the package-level function.
func (sc *ServerContext) InsertRows(ctx context.Context, schemaName, queryName string, rows []Row) (any, error) {
	return sc.mutateRows(ctx, "insertRows.api", schemaName, queryName, rows)
}

// UpdateRows is the context-reusing form of the package-level function.
func (sc *ServerContext) UpdateRows(ctx context.Context, schemaName, queryName string, rows []Row) (any, error) {
	return sc.mutateRows(ctx, "updateRows.api", schemaName, queryName, rows)
}

// DeleteRows is the context-reusing form of the package-level function.
func (sc *ServerContext) DeleteRows(ctx context.Context, schemaName, queryName string, rows []Row) (any, error) {
	return sc.mutateRows(ctx, "deleteRows.api", schemaName, queryName, rows)
}

func mutateRows(ctx context.Context, params ServerParams, action, schemaName, queryName string, rows []Row) (any, error) {
	if err := validateMutation(schemaName, queryName, rows); err != nil {
		return nil, err
	}
	sc, err := NewServerContext(ctx, params)
	if err != nil {
		return nil, err
	}
	return sc.mutateRows(ctx, action, schemaName, queryName, rows)
}

func (sc *ServerContext) mutateRows(ctx context.Context, action, schemaName, queryName string, rows []Row) (any, error) {
	if err := validateMutation(schemaName, queryName, rows); err != nil {
		return nil, err
	}
	u := sc.actionURL(queryController, action)
	return sc.client.PostJSON(ctx, u, rowsPayload(schemaName, queryName, rows))
}

func validateMutation(schemaName, queryName string, rows []Row) error {
	if err := requireParam("schemaName", schemaName); err != nil {
		return err
	}
	if err := requireParam("queryName", queryName); err != nil {
		return err
	}
	if rows == nil {
		return ErrMissingParameter.Msg("missing required parameter 'rows'")
	}
	return nil
}

// ExecuteSQL runs arbitrary LabKey SQL against a schema. opts may be
// nil.
func ExecuteSQL(ctx context.Context, params ServerParams, schemaName, sql string, opts *SQLOptions) (any, error) {
	if err := requireParam("schemaName", schemaName); err != nil {
		return nil, err
	}
	if err := requireParam("sql", sql); err != nil {
		return nil, err
	}
	sc, err := NewServerContext(ctx, params)
	if err != nil {
		return nil, err
	}
	return sc.ExecuteSQL(ctx, schemaName, sql, opts)
}

// ExecuteSQL is the context-reusing form of the package-level function.
func (sc *ServerContext) ExecuteSQL(ctx context.Context, schemaName, sql string, opts *SQLOptions) (any, error) {
	if err := requireParam("schemaName", schemaName); err != nil {
		return nil, err
	}
	if err := requireParam("sql", sql); err != nil {
		return nil, err
	}
	u := sc.actionURL(queryController, "executeSql.api")
	return sc.client.PostJSON(ctx, u, executeSQLPayload(schemaName, sql, opts))
}

// WhoAmI returns the server's view of the authenticated identity from
// the whoAmI endpoint. The same endpoint backs the CSRF bootstrap, so
// this costs a single round-trip on a fresh context.
func WhoAmI(ctx context.Context, params ServerParams) (any, error) {
	sc, err := NewServerContext(ctx, params)
	if err != nil {
		return nil, err
	}
	return sc.WhoAmI(ctx)
}

// WhoAmI is the context-reusing form of the package-level function.
func (sc *ServerContext) WhoAmI(ctx context.Context) (any, error) {
	return sc.client.Get(ctx, sc.actionURL("login", "whoAmI.api"))
}
