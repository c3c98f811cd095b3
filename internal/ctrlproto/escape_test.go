package ctrlproto

import (
	"errors"
	"testing"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain ascii", input: "WPA2-PSK", want: "WPA2-PSK"},
		{name: "plain with spaces", input: "my home network", want: "my home network"},
		{name: "plain utf8", input: "café ツ", want: "café ツ"},
		{name: "newline", input: `a\nb`, want: "a\nb"},
		{name: "carriage return", input: `a\rb`, want: "a\rb"},
		{name: "tab", input: `a\tb`, want: "a\tb"},
		{name: "escape char", input: `\e[0m`, want: "\x1b[0m"},
		{name: "backslash", input: `a\\b`, want: `a\b`},
		{name: "double quote", input: `\"quoted\"`, want: `"quoted"`},
		{name: "identity escape", input: `\q`, want: "q"},
		{name: "hex lower", input: `\x41\x42`, want: "AB"},
		{name: "hex upper", input: `\x4A`, want: "J"},
		{
			name:  "shrug",
			input: `\xc2\xaf\\_(\xe3\x83\x84)_/\xc2\xaf`,
			want:  `¯\_(ツ)_/¯`,
		},
		{name: "trailing backslash", input: `abc\`, wantErr: ErrIncompleteEscape},
		{name: "lone backslash", input: `\`, wantErr: ErrIncompleteEscape},
		{name: "hex with no digits", input: `\x`, wantErr: ErrIncompleteEscape},
		{name: "hex with one digit", input: `\xa`, wantErr: ErrIncompleteEscape},
		{name: "hex not hex", input: `\xzz`, wantErr: ErrInvalidEscape},
		{name: "hex half valid", input: `\x4g`, wantErr: ErrInvalidEscape},
		{name: "hex with sign", input: `\x+f`, wantErr: ErrInvalidEscape},
		{name: "non utf8 byte", input: `\xff`, wantErr: ErrNonUTF8Escape},
		{name: "truncated utf8 sequence", input: `\xe3\x83`, wantErr: ErrNonUTF8Escape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unescape(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unescape(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("Unescape(%q) = %q on error, want empty", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unescape(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnescape_IdentityWithoutBackslash(t *testing.T) {
	inputs := []string{
		"",
		"e0:91:f5:7d:11:c0",
		"key = value",
		"x41",
		"100%",
		"¯_(ツ)_/¯",
		"\t leading and trailing \t",
	}

	for _, in := range inputs {
		got, err := Unescape(in)
		if err != nil {
			t.Errorf("Unescape(%q) unexpected error: %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("Unescape(%q) = %q, want identity", in, got)
		}
	}
}

func TestUnescape_ErrorKinds(t *testing.T) {
	tests := []struct {
		input string
		want  ErrorKind
	}{
		{`\`, KindIncompleteEscape},
		{`\x`, KindIncompleteEscape},
		{`\xzz`, KindInvalidEscape},
		{`\x80`, KindNonUTF8Escape},
	}

	for _, tt := range tests {
		_, err := Unescape(tt.input)
		kind, ok := KindOf(err)
		if !ok {
			t.Errorf("Unescape(%q) error %v is not a *ConfigError", tt.input, err)
			continue
		}
		if kind != tt.want {
			t.Errorf("Unescape(%q) kind = %v, want %v", tt.input, kind, tt.want)
		}
	}
}
