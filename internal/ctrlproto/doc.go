// Package ctrlproto decodes the text replies of a wireless control-interface daemon.
//
// Daemons such as hostapd and wpa_supplicant answer STATUS and GET_CONFIG requests
// with newline-separated key=value lines. Values are passed through printf_encode
// on the daemon side, so non-printable and non-ASCII bytes arrive as backslash
// escapes:
//
//	bssid=e0:91:f5:7d:11:c0
//	ssid=\xc2\xaf\\_(\xe3\x83\x84)_/\xc2\xaf
//	wps_state=enabled
//	wpa=12
//
// # Decoding Pipeline
//
// Decoding runs in three steps:
//   - Unescape reverses the printf-style escaping of a single value
//   - ParseEntries / ToMap split a reply into decoded key/value pairs
//   - Fields and Deserialize populate a typed record from those pairs
//
// ToMap keeps the last value when a key repeats. Some fields legitimately repeat
// (one bss/bssid/ssid/num_sta line per virtual interface, either as a bare key or
// as key[N]); Fields.Strings collects those from the ordered entries instead.
//
// # Usage Example
//
//	type Info struct {
//	    SSID    string
//	    Enabled bool
//	}
//
//	info, err := ctrlproto.Deserialize(reply, func(f *ctrlproto.Fields) Info {
//	    return Info{
//	        SSID:    f.String("ssid"),
//	        Enabled: f.EnabledBool("wps_state"),
//	    }
//	})
//	if err != nil {
//	    var cfgErr *ctrlproto.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        log.Printf("field %s: %v", cfgErr.Field, cfgErr.Err)
//	    }
//	}
//
// # Error Handling
//
// Every failure is a *ConfigError. Its Kind distinguishes a missing '=' delimiter,
// the three escape failures and field decode failures. The package-level sentinels
// (ErrMissingDelimiter, ErrInvalidEscape, ...) match by kind with errors.Is.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. A Fields value belongs to a
// single population pass and must not be shared.
package ctrlproto
