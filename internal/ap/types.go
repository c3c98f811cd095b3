package ap

import (
	"errors"
	"fmt"

	"github.com/muurk/wifictrl/internal/ctrlproto"
	"github.com/muurk/wifictrl/internal/logging"
	"github.com/muurk/wifictrl/internal/wifierr"
)

// ErrBSSMismatch is returned by Status.BSSes when the per-interface lists differ in length.
var ErrBSSMismatch = errors.New("bss, bssid, ssid and num_sta counts differ")

// Status is the runtime state of an access point as reported by STATUS.
//
// Numeric and enumerated values are kept as the daemon printed them; their
// encoding varies between daemon versions.
type Status struct {
	State                 string `json:"state" yaml:"state"`
	Phy                   string `json:"phy" yaml:"phy"`
	Freq                  string `json:"freq" yaml:"freq"`
	NumStaNonERP          string `json:"num_sta_non_erp" yaml:"num_sta_non_erp"`
	NumStaNoShortSlotTime string `json:"num_sta_no_short_slot_time" yaml:"num_sta_no_short_slot_time"`
	NumStaNoShortPreamble string `json:"num_sta_no_short_preamble" yaml:"num_sta_no_short_preamble"`
	OLBC                  string `json:"olbc" yaml:"olbc"`
	NumStaHTNoGF          string `json:"num_sta_ht_no_gf" yaml:"num_sta_ht_no_gf"`
	NumStaNoHT            string `json:"num_sta_no_ht" yaml:"num_sta_no_ht"`
	NumStaHT20MHz         string `json:"num_sta_ht_20_mhz" yaml:"num_sta_ht_20_mhz"`
	NumStaHT40Intolerant  string `json:"num_sta_ht40_intolerant" yaml:"num_sta_ht40_intolerant"`
	OLBCHT                string `json:"olbc_ht" yaml:"olbc_ht"`
	HTOpMode              string `json:"ht_op_mode" yaml:"ht_op_mode"`
	CACTimeSeconds        string `json:"cac_time_seconds" yaml:"cac_time_seconds"`
	CACTimeLeftSeconds    string `json:"cac_time_left_seconds" yaml:"cac_time_left_seconds"`
	Channel               string `json:"channel" yaml:"channel"`
	SecondaryChannel      string `json:"secondary_channel" yaml:"secondary_channel"`
	IEEE80211N            string `json:"ieee80211n" yaml:"ieee80211n"`
	IEEE80211AC           string `json:"ieee80211ac" yaml:"ieee80211ac"`
	IEEE80211AX           string `json:"ieee80211ax" yaml:"ieee80211ax"`
	BeaconInt             string `json:"beacon_int" yaml:"beacon_int"`
	DTIMPeriod            string `json:"dtim_period" yaml:"dtim_period"`
	HTCapsInfo            string `json:"ht_caps_info" yaml:"ht_caps_info"`
	HTMCSBitmask          string `json:"ht_mcs_bitmask" yaml:"ht_mcs_bitmask"`
	SupportedRates        string `json:"supported_rates" yaml:"supported_rates"`
	MaxTxPower            string `json:"max_txpower" yaml:"max_txpower"`

	// One entry per virtual interface, in reply order
	BSS    []string `json:"bss" yaml:"bss"`
	BSSID  []string `json:"bssid" yaml:"bssid"`
	SSID   []string `json:"ssid" yaml:"ssid"`
	NumSta []string `json:"num_sta" yaml:"num_sta"`
}

// BSS is one virtual interface of a Status.
type BSS struct {
	Interface   string `json:"bss" yaml:"bss"`
	BSSID       string `json:"bssid" yaml:"bssid"`
	SSID        string `json:"ssid" yaml:"ssid"`
	NumStations string `json:"num_sta" yaml:"num_sta"`
}

// Config is the configuration summary reported by GET_CONFIG.
type Config struct {
	BSSID             string `json:"bssid" yaml:"bssid"`
	SSID              string `json:"ssid" yaml:"ssid"`
	WPSState          bool   `json:"wps_state" yaml:"wps_state"`
	WPA               int32  `json:"wpa" yaml:"wpa"`
	KeyMgmt           string `json:"key_mgmt" yaml:"key_mgmt"`
	GroupCipher       string `json:"group_cipher" yaml:"group_cipher"`
	RSNPairwiseCipher string `json:"rsn_pairwise_cipher" yaml:"rsn_pairwise_cipher"`
	WPAPairwiseCipher string `json:"wpa_pairwise_cipher" yaml:"wpa_pairwise_cipher"`
}

// StatusFromResponse decodes a STATUS reply.
func StatusFromResponse(response string) (*Status, error) {
	logging.LogResponse("Decoding status reply", response)

	status, err := ctrlproto.Deserialize(response, populateStatus)
	if err != nil {
		wErr := wifierr.NewStatusParseError(err, response)
		logging.LogParseFailure("status", wErr)
		return nil, wErr
	}
	return &status, nil
}

// ConfigFromResponse decodes a GET_CONFIG reply.
func ConfigFromResponse(response string) (*Config, error) {
	logging.LogResponse("Decoding config reply", response)

	config, err := ctrlproto.Deserialize(response, populateConfig)
	if err != nil {
		wErr := wifierr.NewConfigParseError(err, response)
		logging.LogParseFailure("config", wErr)
		return nil, wErr
	}
	return &config, nil
}

func populateStatus(f *ctrlproto.Fields) Status {
	return Status{
		State:                 f.String("state"),
		Phy:                   f.String("phy"),
		Freq:                  f.String("freq"),
		NumStaNonERP:          f.String("num_sta_non_erp"),
		NumStaNoShortSlotTime: f.String("num_sta_no_short_slot_time"),
		NumStaNoShortPreamble: f.String("num_sta_no_short_preamble"),
		OLBC:                  f.String("olbc"),
		NumStaHTNoGF:          f.String("num_sta_ht_no_gf"),
		NumStaNoHT:            f.String("num_sta_no_ht"),
		NumStaHT20MHz:         f.String("num_sta_ht_20_mhz"),
		NumStaHT40Intolerant:  f.String("num_sta_ht40_intolerant"),
		OLBCHT:                f.String("olbc_ht"),
		HTOpMode:              f.String("ht_op_mode"),
		CACTimeSeconds:        f.String("cac_time_seconds"),
		CACTimeLeftSeconds:    f.String("cac_time_left_seconds"),
		Channel:               f.String("channel"),
		SecondaryChannel:      f.String("secondary_channel"),
		IEEE80211N:            f.String("ieee80211n"),
		IEEE80211AC:           f.String("ieee80211ac"),
		IEEE80211AX:           f.String("ieee80211ax"),
		BeaconInt:             f.String("beacon_int"),
		DTIMPeriod:            f.String("dtim_period"),
		HTCapsInfo:            f.String("ht_caps_info"),
		HTMCSBitmask:          f.String("ht_mcs_bitmask"),
		SupportedRates:        f.String("supported_rates"),
		MaxTxPower:            f.String("max_txpower"),
		BSS:                   f.Strings("bss"),
		BSSID:                 f.Strings("bssid"),
		SSID:                  f.Strings("ssid"),
		NumSta:                f.Strings("num_sta"),
	}
}

func populateConfig(f *ctrlproto.Fields) Config {
	return Config{
		BSSID:             f.String("bssid"),
		SSID:              f.String("ssid"),
		WPSState:          f.EnabledBool("wps_state"),
		WPA:               f.Int32("wpa"),
		KeyMgmt:           f.String("key_mgmt"),
		GroupCipher:       f.String("group_cipher"),
		RSNPairwiseCipher: f.String("rsn_pairwise_cipher"),
		WPAPairwiseCipher: f.String("wpa_pairwise_cipher"),
	}
}

// BSSes pairs the per-interface lists by position: the Nth bss belongs with the
// Nth bssid, ssid and num_sta. This follows the order in which the daemon
// prints each interface's group of lines.
func (s *Status) BSSes() ([]BSS, error) {
	n := len(s.BSS)
	if len(s.BSSID) != n || len(s.SSID) != n || len(s.NumSta) != n {
		return nil, fmt.Errorf("%w: bss=%d bssid=%d ssid=%d num_sta=%d",
			ErrBSSMismatch, len(s.BSS), len(s.BSSID), len(s.SSID), len(s.NumSta))
	}

	out := make([]BSS, n)
	for i := range out {
		out[i] = BSS{
			Interface:   s.BSS[i],
			BSSID:       s.BSSID[i],
			SSID:        s.SSID[i],
			NumStations: s.NumSta[i],
		}
	}
	return out, nil
}
