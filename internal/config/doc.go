// Package config provides user configuration management for wifictrl.
//
// This package manages a YAML-based configuration file that stores interface
// nicknames, the identifiers seen in the last decoded reply per interface, and
// CLI preferences such as the default output format.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/wifictrl/config.yaml or $HOME/.config/wifictrl/config.yaml
//   - macOS: $HOME/.config/wifictrl/config.yaml
//   - Windows: %LOCALAPPDATA%\wifictrl\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.RecordStatus("wlan0", status.State, status.BSSID, status.SSID)
//
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File writes are protected by a mutex and are atomic (temp file + rename).
package config
