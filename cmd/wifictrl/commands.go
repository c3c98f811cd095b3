package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/wifictrl/internal/ap"
	"github.com/muurk/wifictrl/internal/config"
	"github.com/muurk/wifictrl/internal/ctrlproto"
	"github.com/muurk/wifictrl/internal/logging"
	"github.com/muurk/wifictrl/internal/ui"
	"github.com/muurk/wifictrl/internal/wifierr"
)

func init() {
	decodeCmd.AddCommand(decodeStatusCmd)
	decodeCmd.AddCommand(decodeConfigCmd)

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(unescapeCmd)
}

// record is implemented by the decoded daemon records
type record interface {
	Summary() string
	FormatDetailed() string
	FormatCompact() string
	Details() map[string]string
}

// decodeCmd groups the record decoders
var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a captured daemon reply into a typed record",
	Long: `Decode the raw text of a daemon reply into a typed record.

The reply is read from FILE, or from stdin when FILE is omitted or "-".
Every line must be of the form key=value. Values may carry backslash
escapes (\n, \r, \t, \e, \xHH) which are decoded before typing.`,
}

// decodeStatusCmd decodes a STATUS reply
var decodeStatusCmd = &cobra.Command{
	Use:   "status [FILE]",
	Short: "Decode a STATUS reply",
	Example: `  # Decode a capture
  wifictrl decode status status.txt

  # Decode straight from the daemon and remember it for wlan0
  hostapd_cli -i wlan0 status | wifictrl decode status --iface wlan0

  # YAML output for scripting
  wifictrl decode status status.txt --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecodeStatus,
}

// decodeConfigCmd decodes a GET_CONFIG reply
var decodeConfigCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "Decode a GET_CONFIG reply",
	Example: `  # Decode a capture
  wifictrl decode config config.txt

  # JSON output for scripting
  hostapd_cli -i wlan0 get_config | wifictrl decode config --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecodeConfig,
}

func runDecodeStatus(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	reply, err := readReply(cmd, args)
	if err != nil {
		return err
	}

	status, err := ap.StatusFromResponse(reply)
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), "Status reply rejected", err, reply)
	}

	if remembering() {
		registry.RecordStatus(ifaceName, status.State, status.BSSID, status.SSID)
		remember(cmd.ErrOrStderr(), status.BSSID, status.SSID)
	}

	return writeRecord(cmd.OutOrStdout(), outputFormat, "Status decoded", status)
}

func runDecodeConfig(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	reply, err := readReply(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := ap.ConfigFromResponse(reply)
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), "Config reply rejected", err, reply)
	}

	if remembering() {
		registry.RecordConfig(ifaceName, cfg.BSSID, cfg.SSID)
		remember(cmd.ErrOrStderr(), []string{cfg.BSSID}, []string{cfg.SSID})
	}

	return writeRecord(cmd.OutOrStdout(), outputFormat, "Config decoded", cfg)
}

// mapCmd prints the flat key/value mapping of a reply
var mapCmd = &cobra.Command{
	Use:   "map [FILE]",
	Short: "Print the unescaped key/value mapping of a reply",
	Long: `Print the flat mapping of a reply with values unescaped.

Keys are printed in sorted order. When a key repeats, the last value wins,
which is what record decoding sees for single-valued fields.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMap,
}

func runMap(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	reply, err := readReply(cmd, args)
	if err != nil {
		return err
	}

	m, err := ctrlproto.ToMap(reply)
	if err != nil {
		logging.LogParseFailure("map", err)
		return reportFailure(cmd.ErrOrStderr(), "Reply rejected", err, reply)
	}

	return writeMap(cmd.OutOrStdout(), outputFormat, m)
}

// unescapeCmd decodes escaped values given on the command line
var unescapeCmd = &cobra.Command{
	Use:     "unescape VALUE...",
	Short:   "Decode backslash-escaped values",
	Example: `  wifictrl unescape 'caf\xc3\xa9' 'tab\there'`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runUnescape,
}

func runUnescape(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	failed := false
	for _, arg := range args {
		value, err := ctrlproto.Unescape(arg)
		if err != nil {
			failed = true
			logging.Debug("Unescape failed", zap.String("value", arg), zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %q: %v\n", ui.FailureMarker, arg, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}

	if failed {
		return errReported
	}
	return nil
}

// readReply reads the reply from the named file, or stdin for none or "-"
func readReply(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	return string(data), nil
}

// writeRecord renders a decoded record in the requested format
func writeRecord(w io.Writer, format, title string, rec record) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case config.FormatYAML:
		data, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
	case config.FormatCompact:
		fmt.Fprint(w, rec.FormatCompact())
	case config.FormatDetailed:
		fallthrough
	default:
		result := ui.NewSuccessResult(title, interfaceDetails(rec.Details())).SetBody(rec.FormatDetailed())
		fmt.Fprintln(w, result.Render())
	}
	return nil
}

// writeMap renders a flat reply mapping in the requested format
func writeMap(w io.Writer, format string, m map[string]string) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case config.FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s=%q\n", k, m[k])
		}
	}
	return nil
}

// reportFailure renders a failure box for err and returns errReported
func reportFailure(w io.Writer, title string, err error, reply string) error {
	result := ui.NewFailureResult(title, err, wifierr.GetTroubleshootingHint(err))
	if _, response, ok := wifierr.ParseFailure(err); ok {
		reply = response
	}
	result.SetReply(reply)
	result.AddDetail("Cause", wifierr.GetShortErrorMessage(err))

	fmt.Fprintln(w, result.Render())
	return errReported
}

// remembering reports whether decoded identifiers go to the registry
func remembering() bool {
	return ifaceName != "" && !noSave && registry != nil && registry.Preferences.ShouldSaveSeen()
}

// remember records the socket path (if any) and persists the registry
func remember(w io.Writer, bssids, ssids []string) {
	if socketPath != "" {
		registry.SetSocketPath(ifaceName, socketPath)
	}
	logging.Info("Recorded interface",
		zap.String("iface", ifaceName),
		zap.Strings("bssids", bssids),
		zap.Strings("ssids", ssids))
	persistRegistry(w)
}

// persistRegistry saves the registry, warning instead of failing the command
func persistRegistry(w io.Writer) {
	if err := saveRegistry(); err != nil {
		logging.Error("Failed to save config", zap.Error(err))
		fmt.Fprintln(w, ui.WarningStyle.Render(fmt.Sprintf("Warning: could not save config: %v", err)))
	}
}

// interfaceDetails adds the --iface name, its nickname and its socket to details
func interfaceDetails(details map[string]string) map[string]string {
	if ifaceName == "" {
		return details
	}

	name := ifaceName
	socket := socketPath
	if registry != nil {
		if iface := registry.GetInterface(ifaceName); iface != nil {
			if iface.Nickname != "" {
				name = fmt.Sprintf("%s (%s)", ifaceName, iface.Nickname)
			}
			if socket == "" {
				socket = iface.SocketPath
			}
		}
	}

	details["Interface"] = name
	if socket != "" {
		details["Socket"] = socket
	}
	return details
}
