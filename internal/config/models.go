package config

import "time"

// Output formats understood by the CLI.
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// ValidFormats lists the accepted values of Preferences.OutputFormat.
var ValidFormats = []string{FormatDetailed, FormatCompact, FormatJSON, FormatYAML}

// Registry represents the entire user configuration file.
// This stores user-defined metadata for wireless interfaces and CLI preferences.
type Registry struct {
	Version     int                   `yaml:"version"`
	Interfaces  map[string]*Interface `yaml:"interfaces,omitempty"` // Keyed by interface name (e.g. "wlan0")
	Preferences *Preferences          `yaml:"preferences,omitempty"`
}

// Interface represents user-defined metadata and the last decoded state of one
// daemon-managed interface.
type Interface struct {
	Nickname   string    `json:"nickname,omitempty" yaml:"nickname,omitempty"`       // User-friendly name
	SocketPath string    `json:"socket_path,omitempty" yaml:"socket_path,omitempty"` // Control socket the replies came from (--socket)
	LastSeen   time.Time `json:"last_seen,omitempty" yaml:"last_seen,omitempty"`     // Last time a reply for this interface decoded
	LastState  string    `json:"last_state,omitempty" yaml:"last_state,omitempty"`   // state= of the last STATUS reply
	BSSIDs     []string  `json:"bssids,omitempty" yaml:"bssids,omitempty"`           // BSSIDs of the last STATUS or GET_CONFIG reply
	SSIDs      []string  `json:"ssids,omitempty" yaml:"ssids,omitempty"`             // SSIDs of the last STATUS or GET_CONFIG reply
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	OutputFormat string `yaml:"output_format"`       // Default --format
	LogLevel     string `yaml:"log_level,omitempty"` // Default --log-level, empty for silent
	SaveSeen     *bool  `yaml:"save_seen,omitempty"` // Record decoded replies under interfaces, nil means true
}

// ShouldSaveSeen reports whether decoded replies are recorded under interfaces.
// An absent save_seen key counts as true.
func (p *Preferences) ShouldSaveSeen() bool {
	return p == nil || p.SaveSeen == nil || *p.SaveSeen
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Interfaces:  make(map[string]*Interface),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		OutputFormat: FormatDetailed,
		SaveSeen:     boolPtr(true),
	}
}

// GetInterface retrieves interface metadata by name.
// Returns nil if the interface doesn't exist in the registry.
func (r *Registry) GetInterface(name string) *Interface {
	return r.Interfaces[name]
}

// EnsureInterface ensures an interface entry exists in the registry.
// If the interface doesn't exist, creates a new entry with default values.
func (r *Registry) EnsureInterface(name string) *Interface {
	if r.Interfaces == nil {
		r.Interfaces = make(map[string]*Interface)
	}

	if iface, exists := r.Interfaces[name]; exists {
		return iface
	}

	iface := &Interface{}
	r.Interfaces[name] = iface
	return iface
}

// RecordStatus stores the identifiers of a decoded STATUS reply for an interface.
func (r *Registry) RecordStatus(name, state string, bssids, ssids []string) {
	iface := r.EnsureInterface(name)
	iface.LastSeen = time.Now()
	iface.LastState = state
	iface.BSSIDs = append([]string(nil), bssids...)
	iface.SSIDs = append([]string(nil), ssids...)
}

// RecordConfig stores the identifiers of a decoded GET_CONFIG reply for an interface.
func (r *Registry) RecordConfig(name, bssid, ssid string) {
	iface := r.EnsureInterface(name)
	iface.LastSeen = time.Now()
	iface.BSSIDs = []string{bssid}
	iface.SSIDs = []string{ssid}
}

// SetSocketPath records the control socket an interface's replies came from.
func (r *Registry) SetSocketPath(name, socketPath string) {
	iface := r.EnsureInterface(name)
	iface.SocketPath = socketPath
}

// SetNickname sets a user-friendly nickname for an interface.
func (r *Registry) SetNickname(name, nickname string) {
	iface := r.EnsureInterface(name)
	iface.Nickname = nickname
}

// IsValidFormat reports whether format is one of ValidFormats.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func boolPtr(v bool) *bool {
	return &v
}
