package credentials

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNetrc(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netrc")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestResolveGuest(t *testing.T) {
	// Guest wins even when an API key is also supplied.
	auth := Resolve(Options{Guest: true, APIKey: "abc123"})
	assert.True(t, auth.Guest)
	assert.False(t, auth.HasBasic())
	assert.Empty(t, auth.Login)
	assert.Empty(t, auth.Password)
}

func TestResolveAPIKey(t *testing.T) {
	auth := Resolve(Options{APIKey: "abc123"})
	assert.False(t, auth.Guest)
	assert.True(t, auth.HasBasic())
	assert.Equal(t, "apikey", auth.Login)
	assert.Equal(t, "abc123", auth.Password)
}

func TestResolveAPIKeyFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	auth := Resolve(Options{})
	assert.Equal(t, "apikey", auth.Login)
	assert.Equal(t, "env-key", auth.Password)
}

func TestResolveExplicitAPIKeyWinsOverEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	auth := Resolve(Options{APIKey: "explicit"})
	assert.Equal(t, "explicit", auth.Password)
}

func TestResolveNetrc(t *testing.T) {
	path := writeNetrc(t, "machine labkey.example.org login alice password s3cret\n")
	auth := Resolve(Options{Machine: "labkey.example.org", NetrcFile: path})
	assert.True(t, auth.HasBasic())
	assert.Equal(t, "alice", auth.Login)
	assert.Equal(t, "s3cret", auth.Password)
}

func TestResolveNetrcFromEnv(t *testing.T) {
	path := writeNetrc(t, "machine labkey.example.org login bob password pw\n")
	t.Setenv(EnvNetrc, path)
	auth := Resolve(Options{Machine: "labkey.example.org"})
	assert.Equal(t, "bob", auth.Login)
}

func TestResolveNetrcNoMatch(t *testing.T) {
	path := writeNetrc(t, "machine one.example.org login a password pa\nmachine two.example.org login b password pb\n")
	auth := Resolve(Options{Machine: "absent.example.org", NetrcFile: path})
	assert.False(t, auth.HasBasic())
	assert.Empty(t, auth.Login)
}

func TestResolveNetrcSingleEntryFallback(t *testing.T) {
	path := writeNetrc(t, "machine one.example.org login a password pa\n")
	auth := Resolve(Options{Machine: "absent.example.org", NetrcFile: path})
	assert.Equal(t, "a", auth.Login)
}

func TestResolveNetrcUnsafePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	path := writeNetrc(t, "machine h login a password p\n")
	require.NoError(t, os.Chmod(path, 0o644))
	auth := Resolve(Options{Machine: "h", NetrcFile: path})
	assert.False(t, auth.HasBasic())
}

func TestResolveNoSources(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvNetrc, "")
	t.Setenv("HOME", t.TempDir())
	auth := Resolve(Options{Machine: "h"})
	assert.False(t, auth.Guest)
	assert.False(t, auth.HasBasic())
}
