package ctrlproto

import (
	"strings"
)

// Entry is one decoded key=value line of a reply.
type Entry struct {
	Key   string // Raw key, never unescaped
	Value string // Unescaped value
}

// ParseEntries splits a reply into decoded entries in the order they appear.
//
// Surrounding whitespace of the whole reply is ignored and empty lines are
// skipped. Each remaining line is split on its first '='. The first failing line
// aborts the parse.
func ParseEntries(response string) ([]Entry, error) {
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return nil, nil
	}

	lines := strings.Split(trimmed, "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			return nil, &ConfigError{Kind: KindMissingDelimiter}
		}

		value, err := Unescape(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}

// ToMap builds the flat key to value mapping of a reply. When a key repeats,
// the last occurrence wins.
func ToMap(response string) (map[string]string, error) {
	entries, err := ParseEntries(response)
	if err != nil {
		return nil, err
	}
	return entriesToMap(entries), nil
}

func entriesToMap(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}

// BaseName strips a trailing "[N]" index from a key, so "bssid[1]" and "bssid"
// both have base name "bssid". Keys with a non-numeric suffix are returned as is.
func BaseName(key string) string {
	if !strings.HasSuffix(key, "]") {
		return key
	}
	open := strings.LastIndexByte(key, '[')
	if open <= 0 {
		return key
	}
	index := key[open+1 : len(key)-1]
	if index == "" {
		return key
	}
	for i := 0; i < len(index); i++ {
		if index[i] < '0' || index[i] > '9' {
			return key
		}
	}
	return key[:open]
}
