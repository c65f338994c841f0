// Package credentials resolves how requests authenticate to a LabKey
// server: guest mode, an API key, or a login/password pair found in a
// netrc file.
package credentials

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/LabKey/labkey-api-go/internal/netrc"
)

// Environment variables consulted when no explicit value is supplied.
const (
	EnvAPIKey = "LABKEY_APIKEY"
	EnvNetrc  = "LABKEY_NETRC"
)

// apiKeyLogin is the fixed login the server expects when the password
// field carries an API key.
const apiKeyLogin = "apikey"

// Auth describes the resolved authentication mode. The modes are mutually
// exclusive: Guest sends no credentials at all, otherwise Login/Password
// feed HTTP basic auth when both are set. A zero Auth means no usable
// credentials were found; requests then go out anonymously and the server
// decides whether to accept them.
type Auth struct {
	Guest    bool
	Login    string
	Password string
	Account  string
}

// HasBasic reports whether the auth carries credentials for a basic-auth
// header.
func (a Auth) HasBasic() bool {
	return !a.Guest && a.Login != "" && a.Password != ""
}

// Options are the caller-supplied inputs to Resolve.
type Options struct {
	Machine   string // host to look up in the netrc file
	APIKey    string // explicit API key; wins over netrc
	NetrcFile string // explicit netrc path; wins over env and defaults
	Guest     bool   // guest mode; wins over everything
}

// Resolve produces exactly one Auth from the options and environment.
// Precedence: guest flag, then explicit or LABKEY_APIKEY key, then netrc
// lookup. Netrc problems are logged as warnings and yield a zero Auth
// rather than an error; the request will fail at the server if it needed
// credentials.
func Resolve(opts Options) Auth {
	if opts.Guest {
		return Auth{Guest: true}
	}

	key := opts.APIKey
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	if key != "" {
		return Auth{Login: apiKeyLogin, Password: key}
	}

	path := findNetrc(opts.NetrcFile)
	if path == "" {
		log.Warn().Str("machine", opts.Machine).Msg("no netrc file found; proceeding without credentials")
		return Auth{}
	}

	f, err := netrc.ParseFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("unable to use netrc file; proceeding without credentials")
		return Auth{}
	}

	entry, found := f.Lookup(opts.Machine)
	if !found {
		log.Warn().Str("machine", opts.Machine).Str("file", path).Msg("no netrc entry for machine; proceeding without credentials")
		return Auth{}
	}
	if entry.Login == "" || entry.Password == "" {
		log.Warn().Str("machine", opts.Machine).Str("file", path).Msg("netrc entry is missing a login or password")
	}
	return Auth{Login: entry.Login, Password: entry.Password, Account: entry.Account}
}

// findNetrc picks the netrc file to read: explicit path, then the
// LABKEY_NETRC override, then .netrc and _netrc in the home directory.
// Only the explicit and env paths are trusted to exist; the per-user
// defaults are probed.
func findNetrc(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvNetrc); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{".netrc", "_netrc"} {
		candidate := filepath.Join(home, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
