package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/wifictrl/internal/config"
	"github.com/muurk/wifictrl/internal/logging"
	"github.com/muurk/wifictrl/internal/ui"
)

func init() {
	ifaceCmd.AddCommand(ifaceListCmd)
	ifaceCmd.AddCommand(ifaceNicknameCmd)

	rootCmd.AddCommand(ifaceCmd)
}

// ifaceCmd groups the commands that manage remembered interfaces
var ifaceCmd = &cobra.Command{
	Use:   "iface",
	Short: "Manage interfaces remembered in the config file",
	Long: `Manage the interfaces remembered by 'decode --iface'.

Each decoded reply for an interface updates its last state, BSSIDs and
SSIDs. A nickname and the control socket path can be attached to an
interface and are shown alongside decoded records.`,
}

// ifaceListCmd prints every remembered interface
var ifaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered interfaces",
	Args:  cobra.NoArgs,
	RunE:  runIfaceList,
}

// ifaceNicknameCmd attaches a nickname to an interface
var ifaceNicknameCmd = &cobra.Command{
	Use:   "nickname NAME NICKNAME",
	Short: "Set the nickname of an interface",
	Example: `  wifictrl iface nickname wlan0 "Living Room AP"

  # Clear a nickname
  wifictrl iface nickname wlan0 ""`,
	Args: cobra.ExactArgs(2),
	RunE: runIfaceNickname,
}

func runIfaceList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return writeInterfaces(cmd.OutOrStdout(), outputFormat, registry.Interfaces)
}

func runIfaceNickname(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	name, nickname := args[0], args[1]
	registry.SetNickname(name, nickname)
	if socketPath != "" {
		registry.SetSocketPath(name, socketPath)
	}

	if err := saveRegistry(); err != nil {
		logging.Error("Failed to save config", zap.Error(err))
		return fmt.Errorf("failed to save nickname: %w", err)
	}
	logging.Info("Nickname set", zap.String("iface", name), zap.String("nickname", nickname))

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %q\n", ui.SuccessMarker, name, nickname)
	return nil
}

// writeInterfaces renders the remembered interfaces sorted by name
func writeInterfaces(w io.Writer, format string, ifaces map[string]*config.Interface) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(ifaces, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case config.FormatYAML:
		data, err := yaml.Marshal(ifaces)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	}

	if len(ifaces) == 0 {
		fmt.Fprintln(w, "No interfaces remembered yet.")
		fmt.Fprintln(w, "Use 'wifictrl decode status --iface <name>' to record one")
		return nil
	}

	names := make([]string, 0, len(ifaces))
	for name := range ifaces {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		iface := ifaces[name]
		title := name
		if iface.Nickname != "" {
			title = fmt.Sprintf("%s (%s)", name, iface.Nickname)
		}
		fmt.Fprintln(w, ui.HeaderStyle.Render(title))

		if format == config.FormatCompact {
			fmt.Fprintf(w, "  %s %s\n", valueOr(iface.LastState, "-"), strings.Join(iface.SSIDs, ", "))
			continue
		}

		fmt.Fprintf(w, "  Socket:    %s\n", valueOr(iface.SocketPath, "-"))
		lastSeen := "never"
		if !iface.LastSeen.IsZero() {
			lastSeen = iface.LastSeen.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "  Last Seen: %s\n", lastSeen)
		fmt.Fprintf(w, "  State:     %s\n", valueOr(iface.LastState, "-"))
		fmt.Fprintf(w, "  BSSIDs:    %s\n", strings.Join(iface.BSSIDs, ", "))
		fmt.Fprintf(w, "  SSIDs:     %s\n", strings.Join(iface.SSIDs, ", "))
	}
	return nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
