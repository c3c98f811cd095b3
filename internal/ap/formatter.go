package ap

import (
	"fmt"
	"strings"

	"github.com/muurk/wifictrl/internal/ctrlproto"
)

// Summary returns a one-line summary of the access point status
func (s *Status) Summary() string {
	return fmt.Sprintf("%s on %s, channel %s (%s MHz), %d BSS", s.State, s.Phy, s.Channel, s.Freq, len(s.BSS))
}

// FormatRadio returns a formatted string with PHY and channel information
func (s *Status) FormatRadio() string {
	var b strings.Builder

	b.WriteString("=== Radio ===\n")
	b.WriteString(fmt.Sprintf("State:             %s\n", s.State))
	b.WriteString(fmt.Sprintf("PHY:               %s\n", s.Phy))
	b.WriteString(fmt.Sprintf("Frequency:         %s MHz\n", s.Freq))
	b.WriteString(fmt.Sprintf("Channel:           %s\n", s.Channel))
	b.WriteString(fmt.Sprintf("Secondary Channel: %s\n", s.SecondaryChannel))
	b.WriteString(fmt.Sprintf("802.11n/ac/ax:     %s/%s/%s\n", s.IEEE80211N, s.IEEE80211AC, s.IEEE80211AX))
	b.WriteString(fmt.Sprintf("Beacon Interval:   %s\n", s.BeaconInt))
	b.WriteString(fmt.Sprintf("DTIM Period:       %s\n", s.DTIMPeriod))
	b.WriteString(fmt.Sprintf("Max TX Power:      %s\n", s.MaxTxPower))
	b.WriteString(fmt.Sprintf("Supported Rates:   %s\n", s.SupportedRates))

	return b.String()
}

// FormatHT returns a formatted string with HT operation and legacy station counters
func (s *Status) FormatHT() string {
	var b strings.Builder

	b.WriteString("=== HT / Legacy Stations ===\n")
	b.WriteString(fmt.Sprintf("HT Caps Info:         %s\n", s.HTCapsInfo))
	b.WriteString(fmt.Sprintf("HT MCS Bitmask:       %s\n", s.HTMCSBitmask))
	b.WriteString(fmt.Sprintf("HT Op Mode:           %s\n", s.HTOpMode))
	b.WriteString(fmt.Sprintf("OLBC / OLBC HT:       %s / %s\n", s.OLBC, s.OLBCHT))
	b.WriteString(fmt.Sprintf("Non-ERP:              %s\n", s.NumStaNonERP))
	b.WriteString(fmt.Sprintf("No Short Slot Time:   %s\n", s.NumStaNoShortSlotTime))
	b.WriteString(fmt.Sprintf("No Short Preamble:    %s\n", s.NumStaNoShortPreamble))
	b.WriteString(fmt.Sprintf("HT No Greenfield:     %s\n", s.NumStaHTNoGF))
	b.WriteString(fmt.Sprintf("No HT:                %s\n", s.NumStaNoHT))
	b.WriteString(fmt.Sprintf("HT 20 MHz:            %s\n", s.NumStaHT20MHz))
	b.WriteString(fmt.Sprintf("HT40 Intolerant:      %s\n", s.NumStaHT40Intolerant))
	b.WriteString(fmt.Sprintf("CAC Left/Total:       %s/%s s\n", s.CACTimeLeftSeconds, s.CACTimeSeconds))

	return b.String()
}

// FormatBSSes returns a formatted table of virtual interfaces
func (s *Status) FormatBSSes() string {
	var b strings.Builder

	b.WriteString("=== Virtual Interfaces ===\n")
	bsses, err := s.BSSes()
	if err != nil {
		b.WriteString(fmt.Sprintf("(unpaired: %v)\n", err))
		b.WriteString(fmt.Sprintf("bss:     %s\n", strings.Join(s.BSS, ", ")))
		b.WriteString(fmt.Sprintf("bssid:   %s\n", strings.Join(s.BSSID, ", ")))
		b.WriteString(fmt.Sprintf("ssid:    %s\n", strings.Join(s.SSID, ", ")))
		b.WriteString(fmt.Sprintf("num_sta: %s\n", strings.Join(s.NumSta, ", ")))
		return b.String()
	}

	for _, bss := range bsses {
		b.WriteString(fmt.Sprintf("%-12s %s  %-32q stations: %s\n", bss.Interface, bss.BSSID, bss.SSID, bss.NumStations))
	}

	return b.String()
}

// FormatDetailed returns a comprehensive multi-section view of the status
func (s *Status) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(s.FormatRadio())
	b.WriteString("\n")
	b.WriteString(s.FormatBSSes())
	b.WriteString("\n")
	b.WriteString(s.FormatHT())

	return b.String()
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (s *Status) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("State:   %s\n", s.State))
	b.WriteString(fmt.Sprintf("Radio:   %s ch %s (%s MHz)\n", s.Phy, s.Channel, s.Freq))
	for i := range s.BSS {
		ssid, bssid, sta := "", "", ""
		if i < len(s.SSID) {
			ssid = s.SSID[i]
		}
		if i < len(s.BSSID) {
			bssid = s.BSSID[i]
		}
		if i < len(s.NumSta) {
			sta = s.NumSta[i]
		}
		b.WriteString(fmt.Sprintf("BSS:     %s %s %q (%s sta)\n", s.BSS[i], bssid, ssid, sta))
	}

	return b.String()
}

// Details returns the headline fields as key/value pairs for result boxes
func (s *Status) Details() map[string]string {
	return map[string]string{
		"State":     s.State,
		"PHY":       s.Phy,
		"Channel":   fmt.Sprintf("%s (%s MHz)", s.Channel, s.Freq),
		"SSIDs":     strings.Join(s.SSID, ", "),
		"BSSIDs":    strings.Join(s.BSSID, ", "),
		"Stations":  strings.Join(s.NumSta, ", "),
		"Max Power": s.MaxTxPower,
	}
}

// Summary returns a one-line summary of the access point configuration
func (c *Config) Summary() string {
	return fmt.Sprintf("%q (%s) %s, WPS %s", c.SSID, c.BSSID, c.KeyMgmt, FormatEnabled(c.WPSState))
}

// FormatSecurity returns a formatted string with key management and cipher settings
func (c *Config) FormatSecurity() string {
	var b strings.Builder

	b.WriteString("=== Security ===\n")
	b.WriteString(fmt.Sprintf("WPA:                 %d (0x%x)\n", c.WPA, c.WPA))
	b.WriteString(fmt.Sprintf("Key Management:      %s\n", c.KeyMgmt))
	b.WriteString(fmt.Sprintf("Group Cipher:        %s\n", c.GroupCipher))
	b.WriteString(fmt.Sprintf("RSN Pairwise Cipher: %s\n", c.RSNPairwiseCipher))
	b.WriteString(fmt.Sprintf("WPA Pairwise Cipher: %s\n", c.WPAPairwiseCipher))

	return b.String()
}

// FormatDetailed returns a comprehensive multi-section view of the configuration
func (c *Config) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Network ===\n")
	b.WriteString(fmt.Sprintf("SSID:  %s\n", c.SSID))
	b.WriteString(fmt.Sprintf("BSSID: %s\n", c.BSSID))
	b.WriteString(fmt.Sprintf("WPS:   %s\n", FormatEnabled(c.WPSState)))
	b.WriteString("\n")
	b.WriteString(c.FormatSecurity())

	return b.String()
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (c *Config) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Network: %q (%s)\n", c.SSID, c.BSSID))
	b.WriteString(fmt.Sprintf("Auth:    %s wpa=%d group=%s pairwise=%s/%s\n",
		c.KeyMgmt, c.WPA, c.GroupCipher, c.RSNPairwiseCipher, c.WPAPairwiseCipher))
	b.WriteString(fmt.Sprintf("WPS:     %s\n", FormatEnabled(c.WPSState)))

	return b.String()
}

// Details returns the headline fields as key/value pairs for result boxes
func (c *Config) Details() map[string]string {
	return map[string]string{
		"SSID":     c.SSID,
		"BSSID":    c.BSSID,
		"WPS":      FormatEnabled(c.WPSState),
		"WPA":      fmt.Sprintf("%d", c.WPA),
		"Key Mgmt": c.KeyMgmt,
		"Ciphers":  fmt.Sprintf("group=%s rsn=%s wpa=%s", c.GroupCipher, c.RSNPairwiseCipher, c.WPAPairwiseCipher),
	}
}

// FormatEnabled renders a flag using the daemon's enabled/disabled tokens
func FormatEnabled(v bool) string {
	if v {
		return ctrlproto.TokenEnabled
	}
	return ctrlproto.TokenDisabled
}
