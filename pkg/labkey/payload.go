package labkey

// defaultAPIVersion is the server's result-format selector. The literal
// 9.1 is significant: the response shape depends on it.
const defaultAPIVersion = 9.1

// selectRowsPayload encodes the getQuery request body. Filters become
// flat "query.<column>~<operator>" keys and parameters become
// "query.param.<name>" keys; optional modifiers appear only when set.
func selectRowsPayload(schemaName, queryName string, opts *SelectOptions) map[string]any {
	if opts == nil {
		opts = &SelectOptions{}
	}
	apiVersion := opts.RequiredVersion
	if apiVersion == 0 {
		apiVersion = defaultAPIVersion
	}
	payload := map[string]any{
		"schemaName":      schemaName,
		"query.queryName": queryName,
		"apiVersion":      apiVersion,
	}
	for _, f := range opts.Filters {
		payload["query."+f.Column+"~"+f.Operator] = f.Value
	}
	for _, p := range opts.Parameters {
		payload["query.param."+p.Name] = p.Value
	}
	if opts.ViewName != "" {
		payload["query.viewName"] = opts.ViewName
	}
	if opts.Offset != 0 {
		payload["query.offset"] = opts.Offset
	}
	if opts.Sort != "" {
		payload["query.sort"] = opts.Sort
	}
	if opts.MaxRows != 0 {
		payload["query.maxRows"] = opts.MaxRows
	}
	if opts.Columns != "" {
		payload["query.columns"] = opts.Columns
	}
	if opts.ContainerFilterName != "" {
		payload["query.containerFilterName"] = opts.ContainerFilterName
	}
	return payload
}

// rowsPayload encodes the body shared by insertRows, updateRows and
// deleteRows. An empty row set passes through as an empty sequence.
func rowsPayload(schemaName, queryName string, rows []Row) map[string]any {
	if rows == nil {
		rows = []Row{}
	}
	return map[string]any{
		"schemaName": schemaName,
		"queryName":  queryName,
		"rows":       rows,
	}
}

// executeSQLPayload encodes the executeSql request body. Optional paging
// and sorting modifiers appear only when set.
func executeSQLPayload(schemaName, sql string, opts *SQLOptions) map[string]any {
	if opts == nil {
		opts = &SQLOptions{}
	}
	payload := map[string]any{
		"schemaName": schemaName,
		"sql":        sql,
	}
	if opts.Offset != 0 {
		payload["offset"] = opts.Offset
	}
	if opts.Sort != "" {
		payload["sort"] = opts.Sort
	}
	if opts.MaxRows != 0 {
		payload["maxRows"] = opts.MaxRows
	}
	if opts.ContainerFilterName != "" {
		payload["containerFilterName"] = opts.ContainerFilterName
	}
	return payload
}
