package labkey

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/LabKey/labkey-api-go/internal/common/httpclient"
	"github.com/LabKey/labkey-api-go/internal/common/logtrace"
	"github.com/LabKey/labkey-api-go/internal/credentials"
)

// ServerParams are the common parameters every operation takes. BaseURL
// and ContainerPath are required; BaseURL falls back to the LABKEY_URL
// environment variable when empty. The remaining fields are optional.
type ServerParams struct {
	// BaseURL is the server root, e.g. "https://labkey.example.org/labkey".
	BaseURL string `validate:"required" param:"baseUrl"`

	// ContainerPath is the folder path scoping the request, e.g.
	// "myProject/subFolder".
	ContainerPath string `validate:"required" param:"containerPath"`

	// Machine overrides the host used for the netrc lookup. When empty
	// the host of BaseURL is used.
	Machine string `param:"machine"`

	// APIKey authenticates with an API key instead of a netrc entry.
	// Falls back to LABKEY_APIKEY.
	APIKey string `param:"apiKey"`

	// LoginAsGuest sends no credentials at all, overriding APIKey and
	// netrc.
	LoginAsGuest bool `param:"loginAsGuest"`

	// NetrcFile is an explicit netrc path. Falls back to LABKEY_NETRC,
	// then ~/.netrc and ~/_netrc.
	NetrcFile string `param:"netrcFile"`

	// Debug enables request/response logging.
	Debug bool `param:"debug"`

	// Timeout bounds each round-trip when no HTTPClient is supplied.
	Timeout time.Duration `param:"timeout"`

	// HTTPClient, when set, is used verbatim for all requests.
	HTTPClient *http.Client `param:"httpClient"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report failures under the caller-facing parameter name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("param"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// ServerContext carries everything one operation needs: the resolved
// base URL and container path, the authentication mode, and the HTTP
// client holding the CSRF token. A ServerContext may be reused across
// calls; the CSRF token obtained at construction lives for the whole
// life of the context and is never refreshed. It is not safe for
// concurrent use while the token is being bootstrapped.
type ServerContext struct {
	baseURL       string
	containerPath string
	auth          credentials.Auth
	debug         bool
	client        *httpclient.Client
}

// GetAuth implements httpclient.Configurator.
func (sc *ServerContext) GetAuth() credentials.Auth {
	return sc.auth
}

// IsDebug implements httpclient.Configurator.
func (sc *ServerContext) IsDebug() bool {
	return sc.debug
}

// NewServerContext resolves params into a ready-to-use context. It
// applies environment fallbacks, resolves credentials, and performs the
// CSRF bootstrap against the whoAmI endpoint. HTTP failures during the
// bootstrap propagate to the caller.
func NewServerContext(ctx context.Context, params ServerParams) (*ServerContext, error) {
	if params.BaseURL == "" {
		params.BaseURL = os.Getenv(EnvBaseURL)
	}
	if err := validate.Struct(params); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return nil, ErrMissingParameter.Msg("missing required parameter '" + fieldErrs[0].Field() + "'")
		}
		return nil, ErrMissingParameter.Err(err)
	}

	if params.Debug {
		logtrace.SetDebug(true)
	}

	machine := params.Machine
	if machine == "" {
		if u, err := url.Parse(params.BaseURL); err == nil {
			machine = u.Hostname()
		}
	}

	sc := &ServerContext{
		baseURL:       params.BaseURL,
		containerPath: params.ContainerPath,
		debug:         params.Debug,
		auth: credentials.Resolve(credentials.Options{
			Machine:   machine,
			APIKey:    params.APIKey,
			NetrcFile: params.NetrcFile,
			Guest:     params.LoginAsGuest,
		}),
	}
	sc.client = httpclient.NewClient(sc, httpclient.ClientOptions{
		HTTPClient: params.HTTPClient,
		Timeout:    params.Timeout,
		UserAgent:  userAgent,
	})

	if err := sc.client.BootstrapCSRF(ctx, sc.actionURL("login", "whoAmI.api")); err != nil {
		return nil, err
	}
	return sc, nil
}

// actionURL builds the absolute URL for an action of a controller in
// this context's container.
func (sc *ServerContext) actionURL(controller, action string) string {
	return buildURL(sc.baseURL, controller, sc.containerPath, action)
}
