// Package httpclient issues the HTTP requests behind the LabKey query
// operations. It attaches basic-auth credentials and the CSRF token,
// encodes JSON request bodies, and decodes JSON responses. Transport
// concerns (pooling, TLS, redirects) stay with net/http.
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	jsonitor "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/LabKey/labkey-api-go/internal/common/apperrors"
	"github.com/LabKey/labkey-api-go/internal/credentials"
)

var json = jsonitor.ConfigCompatibleWithStandardLibrary

// csrfHeader carries the server-issued anti-forgery token on every
// request once the token has been bootstrapped.
const csrfHeader = "X-LABKEY-CSRF"

// csrfField is the JSON field of the whoAmI response holding the token.
const csrfField = "CSRF"

var (
	// ErrRequest indicates the request never produced an HTTP response:
	// a bad URL, a connection failure, or a timeout.
	ErrRequest = apperrors.New("request failed")

	// ErrHTTPStatus indicates a non-2xx response. The message carries the
	// status line and the response body; the body is never JSON-decoded.
	ErrHTTPStatus = apperrors.New("server returned an error response")

	// ErrDecode indicates a response body that is not valid JSON. Decode
	// failures are fatal regardless of status code.
	ErrDecode = apperrors.New("unable to decode server response")
)

// Configurator supplies the authentication and diagnostic settings the
// client needs. The request context in pkg/labkey implements it.
type Configurator interface {
	GetAuth() credentials.Auth
	IsDebug() bool
}

// ClientOptions controls client construction.
type ClientOptions struct {
	// HTTPClient is used verbatim when set; the UserAgent and Timeout
	// fields are then ignored so the caller's configuration wins.
	HTTPClient *http.Client

	// Timeout bounds each round-trip when the client is constructed here.
	// Zero means no timeout.
	Timeout time.Duration

	// UserAgent identifies the client library and its version.
	UserAgent string
}

// Client sends authenticated JSON requests to a LabKey server. The CSRF
// token is installed once per Client and reused for its whole life; it is
// never refreshed. Sharing one Client across goroutines during the
// bootstrap races on the token field, so bootstrap before sharing.
type Client struct {
	config     Configurator
	httpClient *http.Client
	userAgent  string
	csrfToken  string
}

// NewClient creates a client for the given configuration. A
// caller-supplied http.Client is used as-is; otherwise one is built with
// the requested timeout.
func NewClient(config Configurator, opts ClientOptions) *Client {
	c := &Client{config: config}
	if opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
	} else {
		c.httpClient = &http.Client{Timeout: opts.Timeout}
		c.userAgent = opts.UserAgent
	}
	return c
}

// HasCSRF reports whether a CSRF token has been installed.
func (c *Client) HasCSRF() bool {
	return c.csrfToken != ""
}

// SetCSRF installs a previously obtained token, skipping the bootstrap.
func (c *Client) SetCSRF(token string) {
	c.csrfToken = token
}

// BootstrapCSRF issues the preliminary GET against the whoAmI endpoint
// and installs the returned token. It is a no-op when a token is already
// installed.
func (c *Client) BootstrapCSRF(ctx context.Context, whoAmIURL string) error {
	if c.HasCSRF() {
		return nil
	}
	body, err := c.do(ctx, http.MethodGet, whoAmIURL, nil)
	if err != nil {
		return err
	}
	c.csrfToken = gjson.GetBytes(body, csrfField).String()
	return nil
}

// Get issues a GET request and returns the decoded JSON response.
func (c *Client) Get(ctx context.Context, url string) (any, error) {
	body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return decode(body, url)
}

// PostJSON encodes payload as a JSON body, issues a POST request, and
// returns the decoded JSON response.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) (any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, ErrRequest.MsgErr("unable to encode request payload", err)
	}
	body, err := c.do(ctx, http.MethodPost, url, data)
	if err != nil {
		return nil, err
	}
	return decode(body, url)
}

// do performs one round-trip and returns the raw response body. Non-2xx
// responses become ErrHTTPStatus carrying the status line and body text.
func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, ErrRequest.MsgErr("unable to create request", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.ContentLength = int64(len(body))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.csrfToken != "" {
		req.Header.Set(csrfHeader, c.csrfToken)
	}
	if auth := c.config.GetAuth(); auth.HasBasic() {
		req.SetBasicAuth(auth.Login, auth.Password)
	}

	requestID := ""
	if c.config.IsDebug() {
		requestID = uuid.NewString()
		log.Debug().
			Str("requestId", requestID).
			Str("method", method).
			Str("url", url).
			Int("bodyBytes", len(body)).
			Msg("sending request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrRequest.MsgErr("request to "+url+" failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrRequest.MsgErr("unable to read response body", err)
	}

	if c.config.IsDebug() {
		log.Debug().
			Str("requestId", requestID).
			Str("status", resp.Status).
			Int("responseBytes", len(respBody)).
			Msg("received response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrHTTPStatus.
			Msg(resp.Status + ": " + string(respBody)).
			SetStatusCode(resp.StatusCode)
	}
	return respBody, nil
}

// decode parses a successful response body. The server may return an
// object, array, or scalar; the value passes through unmodified.
func decode(body []byte, url string) (any, error) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, ErrDecode.MsgErr("invalid JSON in response from "+url, err)
	}
	return value, nil
}
