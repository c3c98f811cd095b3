package ctrlproto

import (
	"errors"
	"testing"
)

type testRecord struct {
	Name    string
	Enabled bool
	Count   int32
	Ifaces  []string
}

func populateTestRecord(f *Fields) testRecord {
	return testRecord{
		Name:    f.String("name"),
		Enabled: f.EnabledBool("wps_state"),
		Count:   f.Int32("wpa"),
		Ifaces:  f.Strings("bss"),
	}
}

func TestDeserialize(t *testing.T) {
	response := "name=ap\nwps_state=disabled\nwpa=-7\nbss[0]=wlan0\nbss[1]=wlan0-1\nextra=ignored\n"

	rec, err := Deserialize(response, populateTestRecord)
	if err != nil {
		t.Fatalf("Deserialize() unexpected error: %v", err)
	}

	if rec.Name != "ap" {
		t.Errorf("Name = %q, want %q", rec.Name, "ap")
	}
	if rec.Enabled {
		t.Error("Enabled = true, want false")
	}
	if rec.Count != -7 {
		t.Errorf("Count = %d, want -7", rec.Count)
	}
	if len(rec.Ifaces) != 2 || rec.Ifaces[0] != "wlan0" || rec.Ifaces[1] != "wlan0-1" {
		t.Errorf("Ifaces = %v, want [wlan0 wlan0-1]", rec.Ifaces)
	}
}

func TestFields_EnabledBool(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr error
	}{
		{"enabled", true, nil},
		{"disabled", false, nil},
		{"maybe", false, ErrUnknownVariant},
		{"Enabled", false, ErrUnknownVariant},
		{"", false, ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			f, err := NewFields("wps_state=" + tt.value + "\nother=1")
			if err != nil {
				t.Fatalf("NewFields() unexpected error: %v", err)
			}

			got := f.EnabledBool("wps_state")
			if tt.wantErr != nil {
				if !errors.Is(f.Err(), tt.wantErr) {
					t.Fatalf("Err() = %v, want %v", f.Err(), tt.wantErr)
				}
				var cfgErr *ConfigError
				if !errors.As(f.Err(), &cfgErr) {
					t.Fatalf("Err() = %T, want *ConfigError", f.Err())
				}
				if cfgErr.Field != "wps_state" || cfgErr.Value != tt.value {
					t.Errorf("field context = %q/%q, want wps_state/%q", cfgErr.Field, cfgErr.Value, tt.value)
				}
				return
			}
			if f.Err() != nil {
				t.Fatalf("Err() = %v, want nil", f.Err())
			}
			if got != tt.want {
				t.Errorf("EnabledBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFields_Int32(t *testing.T) {
	tests := []struct {
		value   string
		want    int32
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, false},
		{"-3", -3, false},
		{"+5", 5, false},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"0x0c", 0, true},
		{"2147483648", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			f, err := NewFields("wpa=" + tt.value)
			if err != nil {
				t.Fatalf("NewFields() unexpected error: %v", err)
			}

			got := f.Int32("wpa")
			if tt.wantErr {
				if !errors.Is(f.Err(), ErrInvalidInt) {
					t.Errorf("Err() = %v, want %v", f.Err(), ErrInvalidInt)
				}
				return
			}
			if f.Err() != nil {
				t.Fatalf("Err() = %v, want nil", f.Err())
			}
			if got != tt.want {
				t.Errorf("Int32() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFields_Strings(t *testing.T) {
	f, err := NewFields("bss=wlan0\nssid=a\nbss[1]=wlan0-1\nbss=wlan0-2\nbssid=x")
	if err != nil {
		t.Fatalf("NewFields() unexpected error: %v", err)
	}

	got := f.Strings("bss")
	want := []string{"wlan0", "wlan0-1", "wlan0-2"}
	if len(got) != len(want) {
		t.Fatalf("Strings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Flat mapping still reports the last plain value.
	if f.Map()["bss"] != "wlan0-2" {
		t.Errorf("Map()[bss] = %q, want wlan0-2", f.Map()["bss"])
	}

	if f.Strings("num_sta") != nil {
		t.Error("Strings() for absent key should return nil")
	}
	if !errors.Is(f.Err(), ErrMissingField) {
		t.Errorf("Err() = %v, want %v", f.Err(), ErrMissingField)
	}
}

func TestFields_FirstErrorWins(t *testing.T) {
	f, err := NewFields("wpa=abc\nwps_state=maybe")
	if err != nil {
		t.Fatalf("NewFields() unexpected error: %v", err)
	}

	_ = f.String("missing")
	_ = f.Int32("wpa")
	_ = f.EnabledBool("wps_state")

	var cfgErr *ConfigError
	if !errors.As(f.Err(), &cfgErr) {
		t.Fatalf("Err() = %v, want *ConfigError", f.Err())
	}
	if cfgErr.Field != "missing" || !errors.Is(cfgErr, ErrMissingField) {
		t.Errorf("first error = %v, want missing field %q", cfgErr, "missing")
	}
	if cfgErr.Kind != KindDecode {
		t.Errorf("Kind = %v, want %v", cfgErr.Kind, KindDecode)
	}
}

func TestDeserialize_MissingFieldReturnsZero(t *testing.T) {
	rec, err := Deserialize("name=ap\nwps_state=enabled\nbss=wlan0", populateTestRecord)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Deserialize() error = %v, want %v", err, ErrMissingField)
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Deserialize() error = %v, want kind %v", err, KindDecode)
	}
	if rec.Name != "" || rec.Enabled || rec.Ifaces != nil {
		t.Errorf("Deserialize() returned partial record %+v", rec)
	}
}

func TestDeserialize_LineErrorsPropagate(t *testing.T) {
	_, err := Deserialize("name=ap\nbroken", populateTestRecord)
	if !errors.Is(err, ErrMissingDelimiter) {
		t.Errorf("Deserialize() error = %v, want %v", err, ErrMissingDelimiter)
	}

	_, err = Deserialize(`name=\x`, populateTestRecord)
	if !errors.Is(err, ErrIncompleteEscape) {
		t.Errorf("Deserialize() error = %v, want %v", err, ErrIncompleteEscape)
	}
}
