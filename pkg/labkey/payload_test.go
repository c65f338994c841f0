package labkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectRowsPayloadDefaults(t *testing.T) {
	payload := selectRowsPayload("lists", "People", nil)
	assert.Equal(t, map[string]any{
		"schemaName":      "lists",
		"query.queryName": "People",
		"apiVersion":      9.1,
	}, payload)
}

func TestSelectRowsPayloadFilters(t *testing.T) {
	payload := selectRowsPayload("lists", "People", &SelectOptions{
		Filters: []Filter{{Column: "age", Operator: "gt", Value: 18}},
	})
	assert.Equal(t, 18, payload["query.age~gt"])
	assert.Len(t, payload, 4)
}

func TestSelectRowsPayloadParameters(t *testing.T) {
	payload := selectRowsPayload("lists", "People", &SelectOptions{
		Parameters: []QueryParameter{{Name: "MinAge", Value: 21}},
	})
	assert.Equal(t, 21, payload["query.param.MinAge"])
}

func TestSelectRowsPayloadOptionalModifiers(t *testing.T) {
	payload := selectRowsPayload("lists", "People", &SelectOptions{
		ViewName:            "detail",
		MaxRows:             100,
		Sort:                "-age",
		Offset:              10,
		Columns:             "name,age",
		ContainerFilterName: "CurrentAndSubfolders",
	})
	assert.Equal(t, "detail", payload["query.viewName"])
	assert.Equal(t, 100, payload["query.maxRows"])
	assert.Equal(t, "-age", payload["query.sort"])
	assert.Equal(t, 10, payload["query.offset"])
	assert.Equal(t, "name,age", payload["query.columns"])
	assert.Equal(t, "CurrentAndSubfolders", payload["query.containerFilterName"])
}

func TestSelectRowsPayloadRequiredVersion(t *testing.T) {
	payload := selectRowsPayload("lists", "People", &SelectOptions{RequiredVersion: 17.1})
	assert.Equal(t, 17.1, payload["apiVersion"])

	// omitted version defaults to exactly 9.1
	payload = selectRowsPayload("lists", "People", &SelectOptions{})
	assert.Equal(t, 9.1, payload["apiVersion"])
}

func TestRowsPayload(t *testing.T) {
	rows := []Row{{"name": "alice", "age": 30}}
	payload := rowsPayload("lists", "People", rows)
	assert.Equal(t, "lists", payload["schemaName"])
	assert.Equal(t, "People", payload["queryName"])
	assert.Equal(t, rows, payload["rows"])
}

func TestRowsPayloadEmptyRows(t *testing.T) {
	// an empty row set stays an empty sequence, no special-casing
	payload := rowsPayload("lists", "People", []Row{})
	assert.Equal(t, []Row{}, payload["rows"])

	payload = rowsPayload("lists", "People", nil)
	assert.Equal(t, []Row{}, payload["rows"])
}

func TestExecuteSQLPayload(t *testing.T) {
	payload := executeSQLPayload("lists", "SELECT * FROM People", nil)
	assert.Equal(t, map[string]any{
		"schemaName": "lists",
		"sql":        "SELECT * FROM People",
	}, payload)

	payload = executeSQLPayload("lists", "SELECT * FROM People", &SQLOptions{
		MaxRows:             50,
		Offset:              5,
		Sort:                "name",
		ContainerFilterName: "Current",
	})
	assert.Equal(t, 50, payload["maxRows"])
	assert.Equal(t, 5, payload["offset"])
	assert.Equal(t, "name", payload["sort"])
	assert.Equal(t, "Current", payload["containerFilterName"])
}
