// Package labkey is a client for the LabKey Server Query API. It builds
// authenticated requests against the select, insert, update, delete and
// executeSql endpoints, handles credential resolution (API key, netrc
// file, or guest mode) and the CSRF bootstrap, and returns the server's
// JSON responses as native Go values.
//
// The quickest way in is one of the package-level operations:
//
//	result, err := labkey.SelectRows(ctx, labkey.ServerParams{
//		BaseURL:       "https://labkey.example.org/labkey",
//		ContainerPath: "myProject",
//	}, "lists", "People", nil)
//
// Callers issuing several requests should build a ServerContext once and
// call its methods, which reuses the HTTP client and the CSRF token.
package labkey

import (
	"net/http"

	"github.com/LabKey/labkey-api-go/internal/common/apperrors"
	"github.com/LabKey/labkey-api-go/internal/common/httpclient"
)

// Version of this client library. It is embedded in the default
// User-Agent string.
const Version = "1.0.0"

// userAgent identifies requests made with a client this library built.
// A caller-supplied http.Client keeps its own identity.
const userAgent = "LabKey Go API Client/" + Version

// Environment variable consulted when ServerParams.BaseURL is empty.
const EnvBaseURL = "LABKEY_URL"

// ErrMissingParameter indicates a required parameter was absent at call
// time. The message names the missing key. It is returned before any
// network request is attempted.
var ErrMissingParameter = apperrors.New("missing required parameter").SetStatusCode(http.StatusBadRequest)

// Failure classes surfaced from the HTTP layer, re-exported so callers
// only import this package.
var (
	// ErrRequest: the request never produced an HTTP response.
	ErrRequest = httpclient.ErrRequest
	// ErrHTTPStatus: a non-2xx response; the message carries the status
	// line and response body.
	ErrHTTPStatus = httpclient.ErrHTTPStatus
	// ErrDecode: a response body that is not valid JSON.
	ErrDecode = httpclient.ErrDecode
)

// Row is one row of data keyed by column name. Values may be any
// JSON-representable scalar.
type Row map[string]any

// Filter restricts a SelectRows call to rows where Column satisfies
// Operator against Value. Operator is a short code such as "eq", "neq"
// or "gt" and passes to the server verbatim; no validation is performed.
type Filter struct {
	Column   string
	Operator string
	Value    any
}

// QueryParameter binds a value to a named parameter of a parameterized
// query.
type QueryParameter struct {
	Name  string
	Value any
}

// SelectOptions are the optional arguments to SelectRows. The zero value
// of each field means "not supplied" and is omitted from the request.
type SelectOptions struct {
	ViewName            string
	Filters             []Filter
	Parameters          []QueryParameter
	MaxRows             int
	Sort                string
	Offset              int
	Columns             string
	ContainerFilterName string

	// RequiredVersion selects the server's result format. Zero means the
	// default, 9.1.
	RequiredVersion float64
}

// SQLOptions are the optional arguments to ExecuteSQL.
type SQLOptions struct {
	MaxRows             int
	Sort                string
	Offset              int
	ContainerFilterName string
}

// requireParam returns ErrMissingParameter naming the key when value is
// empty.
func requireParam(name, value string) error {
	if value == "" {
		return ErrMissingParameter.Msg("missing required parameter '" + name + "'")
	}
	return nil
}
