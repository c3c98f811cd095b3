// Package ap decodes access point replies into typed records.
//
// Two records are supported:
//   - Status: reply to STATUS; radio, channel and regulatory state plus one
//     bss/bssid/ssid/num_sta entry per configured virtual interface
//   - Config: reply to GET_CONFIG; identity and security settings
//
// Records are built only by StatusFromResponse and ConfigFromResponse and are
// not modified afterwards. A reply that cannot be decoded yields a
// *wifierr.Error of kind KindParsingStatus or KindParsingConfig that carries the
// complete reply text.
//
// # Usage Example
//
//	config, err := ap.ConfigFromResponse(reply)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(config.Summary())
//
// # Virtual Interfaces
//
// Multi-BSS access points report each virtual interface as a repeated group of
// bss, bssid, ssid and num_sta lines. Status keeps them as parallel slices in
// reply order; Status.BSSes pairs them by position.
package ap
