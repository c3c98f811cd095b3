// Wifictrl decodes replies captured from a hostapd-style wireless control
// daemon.
//
// It reads the raw text of a STATUS or GET_CONFIG reply from a file or stdin,
// decodes it into a typed record and prints it in a human or machine friendly
// format. Decode failures are reported with the offending field and a hint.
//
// Usage:
//
//	wifictrl [command] [flags]
//
// See 'wifictrl --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wifictrl/internal/config"
	"github.com/muurk/wifictrl/internal/logging"
	"github.com/muurk/wifictrl/internal/ui"
	"github.com/muurk/wifictrl/internal/version"
)

// errReported marks failures that were already rendered to the user
var errReported = errors.New("failure already reported")

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel     string
	outputFormat string
	ifaceName    string
	socketPath   string
	configPath   string
	noSave       bool
)

// registry holds the user configuration loaded before every command
var registry *config.Registry

var rootCmd = &cobra.Command{
	Use:   "wifictrl",
	Short: "Wireless control daemon reply decoder",
	Long: `Decode replies from a hostapd-style wireless control daemon.

Captured STATUS and GET_CONFIG replies are parsed into typed records and
printed as a styled summary, a compact listing, JSON or YAML. Decoded
identifiers can be remembered per interface with --iface.`,
	Version:           version.Version,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&ifaceName, "iface", "", "Interface the reply belongs to (remembered in the config file)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "Control socket the reply came from (remembered with --iface)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (defaults to the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&noSave, "no-save", false, "Do not record decoded replies in the config file")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wifictrl %s\n", version.Full())
	},
}

// setup loads the registry, then resolves the output format and log level.
// Flags win over the environment, which wins over the config file.
func setup(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningStyle.Render(fmt.Sprintf("Warning: %v (using defaults)", err)))
		reg = config.NewRegistry()
	}
	registry = reg

	if outputFormat == "" {
		outputFormat = registry.Preferences.OutputFormat
	}
	if !config.IsValidFormat(outputFormat) {
		return fmt.Errorf("invalid --format %q (valid: %v)", outputFormat, config.ValidFormats)
	}

	level := logLevel
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = registry.Preferences.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}

	logging.Debug("Configuration resolved",
		zap.String("format", outputFormat),
		zap.String("iface", ifaceName),
		zap.String("socket", socketPath),
		zap.String("config", configPath))
	return nil
}

func loadRegistry() (*config.Registry, error) {
	if configPath != "" {
		return config.LoadRegistryFrom(configPath)
	}
	return config.LoadRegistry()
}

func saveRegistry() error {
	if configPath != "" {
		return registry.SaveTo(configPath)
	}
	return registry.Save()
}
