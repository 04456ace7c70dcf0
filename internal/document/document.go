// Package document reads and writes the key-value documents kept in the
// config home, one file per document.
package document

import "slices"

// Document is a free-form key-value mapping as stored on disk.
//
// Values read back from disk are in canonical form: nested tables are
// map[string]any and arrays are []any, whatever concrete types were
// written. A written []string therefore reads back as []any; use Strings
// to get it as []string again.
type Document map[string]any

// Table returns the nested table stored under key, or nil when the key is
// absent or holds something else.
func (d Document) Table(key string) map[string]any {
	if t, ok := d[key].(map[string]any); ok {
		return t
	}
	return nil
}

// String returns the string stored under key.
func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Strings returns the string list stored under key. Non-string elements
// are skipped. The second result is false when the key is absent or not a list.
func (d Document) Strings(key string) ([]string, bool) {
	switch v := d[key].(type) {
	case []string:
		return slices.Clone(v), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// normalize rewrites decoder-specific container types into map[string]any
// and []any so both codecs produce the same shapes.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalize(item)
		}
		return out
	case Document:
		return normalize(map[string]any(t))
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
