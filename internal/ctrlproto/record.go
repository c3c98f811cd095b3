package ctrlproto

import (
	"strconv"
)

// Enabled/disabled tokens accepted by EnabledBool.
const (
	TokenEnabled  = "enabled"
	TokenDisabled = "disabled"
)

// Fields gives a record population function typed access to one decoded reply.
//
// Lookups record the first failure and become no-ops afterwards, so a
// population function can read every field unconditionally and check Err once.
type Fields struct {
	entries []Entry
	values  map[string]string
	err     error
}

// NewFields decodes a reply for record population.
func NewFields(response string) (*Fields, error) {
	entries, err := ParseEntries(response)
	if err != nil {
		return nil, err
	}
	return &Fields{
		entries: entries,
		values:  entriesToMap(entries),
	}, nil
}

// Err returns the first field failure, or nil.
func (f *Fields) Err() error {
	return f.err
}

// Map returns the flat mapping behind f. The caller must not modify it.
func (f *Fields) Map() map[string]string {
	return f.values
}

func (f *Fields) fail(field, value string, reason error) {
	if f.err == nil {
		f.err = newFieldError(field, value, reason)
	}
}

func (f *Fields) lookup(key string) (string, bool) {
	if f.err != nil {
		return "", false
	}
	v, ok := f.values[key]
	if !ok {
		f.fail(key, "", ErrMissingField)
		return "", false
	}
	return v, true
}

// String returns the value of key.
func (f *Fields) String(key string) string {
	v, _ := f.lookup(key)
	return v
}

// EnabledBool maps "enabled" to true and "disabled" to false.
func (f *Fields) EnabledBool(key string) bool {
	v, ok := f.lookup(key)
	if !ok {
		return false
	}
	switch v {
	case TokenEnabled:
		return true
	case TokenDisabled:
		return false
	default:
		f.fail(key, v, ErrUnknownVariant)
		return false
	}
}

// Int32 parses the value of key as a base-10 signed 32-bit integer.
func (f *Fields) Int32(key string) int32 {
	v, ok := f.lookup(key)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		f.fail(key, v, ErrInvalidInt)
		return 0
	}
	return int32(n)
}

// Strings collects, in reply order, the values of every entry whose base name
// is key. It fails when there are none.
func (f *Fields) Strings(key string) []string {
	if f.err != nil {
		return nil
	}
	var out []string
	for _, e := range f.entries {
		if BaseName(e.Key) == key {
			out = append(out, e.Value)
		}
	}
	if len(out) == 0 {
		f.fail(key, "", ErrMissingField)
		return nil
	}
	return out
}

// Deserialize decodes response and runs populate over it. On any failure the
// zero T is returned with the first error; a partially populated value never
// escapes.
func Deserialize[T any](response string, populate func(*Fields) T) (T, error) {
	var zero T

	f, err := NewFields(response)
	if err != nil {
		return zero, err
	}

	record := populate(f)
	if err := f.Err(); err != nil {
		return zero, err
	}
	return record, nil
}
