package ctrlproto

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// escapeChar is the byte that introduces an escape sequence
const escapeChar = '\\'

// Unescape reverses the daemon's printf_encode on a single value.
//
// Recognized sequences:
//   - \n, \r, \t: newline, carriage return, tab
//   - \e: ESC (0x1b)
//   - \xHH: the byte with hex value HH
//   - \c for any other byte c: c itself (covers \\ and \")
//
// The decoded bytes must form valid UTF-8.
func Unescape(escaped string) (string, error) {
	if strings.IndexByte(escaped, escapeChar) < 0 {
		if !utf8.ValidString(escaped) {
			return "", &ConfigError{Kind: KindNonUTF8Escape}
		}
		return escaped, nil
	}

	out := make([]byte, 0, len(escaped))
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if c != escapeChar {
			out = append(out, c)
			continue
		}

		i++
		if i >= len(escaped) {
			return "", &ConfigError{Kind: KindIncompleteEscape}
		}

		switch esc := escaped[i]; esc {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'e':
			out = append(out, 0x1b)
		case 'x':
			// Exactly two hex digits; a sign such as "\x+f" is an invalid escape
			if i+2 >= len(escaped) {
				return "", &ConfigError{Kind: KindIncompleteEscape}
			}
			var b [1]byte
			if _, err := hex.Decode(b[:], []byte(escaped[i+1:i+3])); err != nil {
				return "", &ConfigError{Kind: KindInvalidEscape}
			}
			out = append(out, b[0])
			i += 2
		default:
			out = append(out, esc)
		}
	}

	if !utf8.Valid(out) {
		return "", &ConfigError{Kind: KindNonUTF8Escape}
	}
	return string(out), nil
}
