package ctrlproto

import (
	"errors"
	"testing"
)

func TestToMap(t *testing.T) {
	response := "bssid=e0:91:f5:7d:11:c0\nssid=foo\nwps_state=enabled\nwpa=12\n"

	m, err := ToMap(response)
	if err != nil {
		t.Fatalf("ToMap() unexpected error: %v", err)
	}

	want := map[string]string{
		"bssid":     "e0:91:f5:7d:11:c0",
		"ssid":      "foo",
		"wps_state": "enabled",
		"wpa":       "12",
	}
	if len(m) != len(want) {
		t.Fatalf("ToMap() returned %d entries, want %d: %v", len(m), len(want), m)
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("m[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestToMap_LastWriteWins(t *testing.T) {
	m, err := ToMap("ssid=first\nssid=second\nssid=third")
	if err != nil {
		t.Fatalf("ToMap() unexpected error: %v", err)
	}
	if m["ssid"] != "third" {
		t.Errorf("m[ssid] = %q, want %q", m["ssid"], "third")
	}
}

func TestToMap_SplitsOnFirstEquals(t *testing.T) {
	m, err := ToMap("passphrase=a=b=c\nempty=")
	if err != nil {
		t.Fatalf("ToMap() unexpected error: %v", err)
	}
	if m["passphrase"] != "a=b=c" {
		t.Errorf("m[passphrase] = %q, want %q", m["passphrase"], "a=b=c")
	}
	v, ok := m["empty"]
	if !ok || v != "" {
		t.Errorf("m[empty] = %q (present %v), want empty string", v, ok)
	}
}

func TestToMap_Whitespace(t *testing.T) {
	response := "\n\n  state=ENABLED\r\n\nssid= spaced \nchannel=6\n\n  "

	m, err := ToMap(response)
	if err != nil {
		t.Fatalf("ToMap() unexpected error: %v", err)
	}
	if m["state"] != "ENABLED" {
		t.Errorf("m[state] = %q, want %q", m["state"], "ENABLED")
	}
	if m["ssid"] != " spaced " {
		t.Errorf("m[ssid] = %q, want inner whitespace preserved", m["ssid"])
	}
}

func TestToMap_KeysNotUnescaped(t *testing.T) {
	m, err := ToMap(`we\x41rd=v\x41lue`)
	if err != nil {
		t.Fatalf("ToMap() unexpected error: %v", err)
	}
	if m[`we\x41rd`] != "vAlue" {
		t.Errorf("ToMap() = %v, want raw key with unescaped value", m)
	}
}

func TestToMap_Errors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{"missing delimiter", "ssid=foo\nOK\nwpa=2", ErrMissingDelimiter},
		{"whitespace only line", "ssid=foo\n   \nwpa=2", ErrMissingDelimiter},
		{"incomplete escape", "ssid=foo\\", ErrIncompleteEscape},
		{"invalid escape", `ssid=\xzz`, ErrInvalidEscape},
		{"non utf8", `ssid=\xfe`, ErrNonUTF8Escape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ToMap(tt.response)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToMap() error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Errorf("ToMap() returned partial map %v on error", m)
			}
		})
	}
}

func TestToMap_Empty(t *testing.T) {
	m, err := ToMap("  \n\n ")
	if err != nil {
		t.Fatalf("ToMap() unexpected error: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("ToMap() = %v, want empty", m)
	}
}

func TestParseEntries_Order(t *testing.T) {
	entries, err := ParseEntries("bss[0]=wlan0\nbssid[0]=aa\nbss[1]=wlan0-1\nbssid[1]=bb")
	if err != nil {
		t.Fatalf("ParseEntries() unexpected error: %v", err)
	}

	want := []Entry{
		{"bss[0]", "wlan0"},
		{"bssid[0]", "aa"},
		{"bss[1]", "wlan0-1"},
		{"bssid[1]", "bb"},
	}
	if len(entries) != len(want) {
		t.Fatalf("ParseEntries() returned %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"bss", "bss"},
		{"bss[0]", "bss"},
		{"num_sta[12]", "num_sta"},
		{"bss[]", "bss[]"},
		{"bss[a]", "bss[a]"},
		{"[0]", "[0]"},
		{"odd]", "odd]"},
	}

	for _, tt := range tests {
		if got := BaseName(tt.key); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
