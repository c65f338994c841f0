package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/LabKey/labkey-api-go/pkg/labkey"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// Config represents the configuration for the LabKey CLI.
// Every field is optional; flags and the LABKEY_* environment variables
// can supply or override each value.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// ServerURL is the base URL of the LabKey server
	ServerURL string `yaml:"server_url"`
	// ContainerPath is the default folder path for requests
	ContainerPath string `yaml:"container_path"`
	// APIKey authenticates requests when set
	APIKey string `yaml:"api_key"`
	// NetrcFile points at a netrc-format credential file
	NetrcFile string `yaml:"netrc_file"`
	// Guest connects without credentials
	Guest bool `yaml:"guest"`
	// Timeout bounds each request, e.g. "30s"
	Timeout string `yaml:"timeout"`
}

var config = &Config{}

// GetDefaultConfigPath returns the default path for the config file.
// It uses the OS-specific config directory (e.g. ~/.config/labkey on Linux).
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "labkey", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file.
// If no file is specified, it uses the default config location; a missing
// default file leaves the configuration empty.
func LoadConfig(file string) error {
	explicit := file != ""
	if !explicit {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			config = &Config{}
			return nil
		}
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// WriteConfig writes the current configuration to the specified file
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	err := os.MkdirAll(filepath.Dir(file), os.ModePerm)
	if err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	err = os.WriteFile(file, yamlStr, os.FileMode(0600))
	if err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}

// serverParams merges the loaded configuration with the persistent flags
// into the parameter set the client takes. Flags win over the config
// file; environment fallbacks are applied by the library itself.
func serverParams() (labkey.ServerParams, error) {
	cfg := GetConfig()
	params := labkey.ServerParams{
		BaseURL:       cfg.ServerURL,
		ContainerPath: cfg.ContainerPath,
		APIKey:        cfg.APIKey,
		NetrcFile:     cfg.NetrcFile,
		LoginAsGuest:  cfg.Guest,
		Debug:         debugMode,
	}
	if serverURL != "" {
		params.BaseURL = serverURL
	}
	if containerPath != "" {
		params.ContainerPath = containerPath
	}
	if guestMode {
		params.LoginAsGuest = true
	}
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return params, fmt.Errorf("invalid timeout in config file: %w", err)
		}
		params.Timeout = timeout
	}
	return params, nil
}
