package ctrlproto

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the stage of decoding that failed.
type ErrorKind int

const (
	// KindMissingDelimiter indicates a non-empty line without '='
	KindMissingDelimiter ErrorKind = iota
	// KindInvalidEscape indicates a \x escape followed by non-hex characters
	KindInvalidEscape
	// KindIncompleteEscape indicates an escape cut off by the end of the value
	KindIncompleteEscape
	// KindNonUTF8Escape indicates the unescaped bytes are not valid UTF-8
	KindNonUTF8Escape
	// KindDecode indicates a record field could not be populated
	KindDecode
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindMissingDelimiter:
		return "Missing Delimiter"
	case KindInvalidEscape:
		return "Invalid Escape"
	case KindIncompleteEscape:
		return "Incomplete Escape"
	case KindNonUTF8Escape:
		return "Non-UTF8 Escape"
	case KindDecode:
		return "Decode Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Reasons carried by KindDecode errors.
var (
	ErrMissingField   = errors.New("missing field")
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidInt     = errors.New("invalid int")
)

// Sentinels for errors.Is. They compare by Kind only.
var (
	ErrMissingDelimiter = &ConfigError{Kind: KindMissingDelimiter}
	ErrInvalidEscape    = &ConfigError{Kind: KindInvalidEscape}
	ErrIncompleteEscape = &ConfigError{Kind: KindIncompleteEscape}
	ErrNonUTF8Escape    = &ConfigError{Kind: KindNonUTF8Escape}
	ErrDecode           = &ConfigError{Kind: KindDecode}
)

// ConfigError is the error returned by every decoding step in this package.
type ConfigError struct {
	Kind  ErrorKind // Stage that failed
	Field string    // Record field (KindDecode only)
	Value string    // Offending decoded value, empty when the field is missing
	Err   error     // Reason (KindDecode only): ErrMissingField, ErrUnknownVariant, ErrInvalidInt
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	switch e.Kind {
	case KindMissingDelimiter:
		return "missing '=' delimiter in config line"
	case KindInvalidEscape:
		return "escape code is not made up of valid hex code"
	case KindIncompleteEscape:
		return "escape code is incomplete"
	case KindNonUTF8Escape:
		return "escaped value is not valid utf8 after unescaping"
	case KindDecode:
		if errors.Is(e.Err, ErrMissingField) {
			return fmt.Sprintf("value could not be decoded: missing field %q", e.Field)
		}
		return fmt.Sprintf("value could not be decoded: field %q: %v: %q", e.Field, e.Err, e.Value)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the decode reason, if any
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ConfigError of the same kind.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newFieldError(field, value string, reason error) *ConfigError {
	return &ConfigError{
		Kind:  KindDecode,
		Field: field,
		Value: value,
		Err:   reason,
	}
}

// KindOf returns the kind of the first *ConfigError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind, true
	}
	return 0, false
}
