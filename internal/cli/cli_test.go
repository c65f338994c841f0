package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `version: "1"
server_url: https://labkey.example.org/labkey
container_path: myProject
api_key: abc123
timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	require.NoError(t, LoadConfig(path))

	cfg := GetConfig()
	assert.Equal(t, "https://labkey.example.org/labkey", cfg.ServerURL)
	assert.Equal(t, "myProject", cfg.ContainerPath)
	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "30s", cfg.Timeout)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestServerParamsFlagOverrides(t *testing.T) {
	config = &Config{
		ServerURL:     "https://from-config.example.org",
		ContainerPath: "configFolder",
		Timeout:       "10s",
	}
	serverURL = "https://from-flag.example.org"
	containerPath = ""
	guestMode = true
	t.Cleanup(func() {
		config = &Config{}
		serverURL = ""
		guestMode = false
	})

	params, err := serverParams()
	require.NoError(t, err)
	assert.Equal(t, "https://from-flag.example.org", params.BaseURL)
	assert.Equal(t, "configFolder", params.ContainerPath)
	assert.True(t, params.LoginAsGuest)
	assert.Equal(t, "10s", params.Timeout.String())
}

func TestServerParamsBadTimeout(t *testing.T) {
	config = &Config{Timeout: "not-a-duration"}
	t.Cleanup(func() { config = &Config{} })
	_, err := serverParams()
	assert.Error(t, err)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    labkey.Filter
		wantErr bool
	}{
		{in: "age~gt=18", want: labkey.Filter{Column: "age", Operator: "gt", Value: "18"}},
		{in: "name~eq=alice smith", want: labkey.Filter{Column: "name", Operator: "eq", Value: "alice smith"}},
		{in: "age=18", wantErr: true},
		{in: "age~gt", wantErr: true},
		{in: "~gt=18", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFilter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadRows(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "rows.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- name: alice\n  age: 30\n- name: bob\n"), 0o600))
	rows, err := loadRows(yamlPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0]["name"])
	assert.Equal(t, float64(30), rows[0]["age"])

	jsonPath := filepath.Join(dir, "rows.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"carol"}]`), 0o600))
	rows, err = loadRows(jsonPath)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("name: not-a-list\n"), 0o600))
	_, err = loadRows(badPath)
	assert.Error(t, err)
}
