// Package cli implements the labkey command-line tool. It wraps the
// pkg/labkey client so queries can be run, and rows inserted, updated or
// deleted, from the shell.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/LabKey/labkey-api-go/internal/common/logtrace"
)

var (
	// Global flags
	configFile    string
	serverURL     string
	containerPath string
	jsonOutput    bool
	guestMode     bool
	debugMode     bool
)

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labkey [command] [flags]",
	Short: "LabKey CLI - query and modify data on a LabKey server",
	Long: `LabKey CLI runs queries against a LabKey server and inserts, updates,
or deletes rows through the Query API. Credentials come from an API key
(LABKEY_APIKEY or the config file), a netrc file, or guest mode.

Examples:
  # Select rows from a list
  labkey select lists People --filter "age~gt=18" --max-rows 100

  # Insert rows from a file
  labkey insert lists People -f rows.yaml

  # Run LabKey SQL
  labkey sql lists "SELECT name, age FROM People"

  # Show the authenticated identity
  labkey whoami`,
	PersistentPreRun: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "url", "u", "", "LabKey server base URL (overrides config and LABKEY_URL)")
	rootCmd.PersistentFlags().StringVarP(&containerPath, "container", "c", "", "Container (folder) path on the server")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&guestMode, "guest", "g", false, "Connect without credentials")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Log requests and responses")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newWhoAmICmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newInsertCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newSQLCmd())
}

// preRunHandlePersistents prepares logging and configuration before any
// command runs. A missing default config file is fine; flags and
// environment variables can carry everything.
func preRunHandlePersistents(cmd *cobra.Command, args []string) {
	logtrace.InitLogger()
	logtrace.InitConsoleLogger()
	logtrace.SetDebug(debugMode)
	godotenv.Load()

	if err := LoadConfig(configFile); err != nil && configFile != "" {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if jsonOutput {
			printJSON(map[string]string{"error": err.Error()})
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: failed to format output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// printResult renders an operation result: JSON with --json, YAML
// otherwise.
func printResult(v any) {
	if jsonOutput {
		printJSON(v)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: failed to format output: %v\n", err)
		return
	}
	yamlData, err := yaml.JSONToYAML(data)
	if err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: failed to format output: %v\n", err)
		return
	}
	fmt.Print(string(yamlData))
}
