package normalizer

import (
	"fmt"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// The upstream API omits any field at will, so every access goes through
// these extract-or-default helpers rather than repeating the defensive
// pattern at each call site.

// str returns the string at key, or def when the key is absent or not a
// string. Numeric values are stringified, matching how the upstream mixes
// "25" and 25 for the same field.
func str(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return trimFloat(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return def
	}
}

// trimFloat renders JSON numbers without a trailing ".0" for whole values.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// obj returns the object at key, or nil when absent or mistyped.
func obj(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

// arr returns the array at key, or nil when absent or mistyped.
func arr(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	list, _ := m[key].([]any)
	return list
}

// objAt returns element i of list as an object, or nil.
func objAt(list []any, i int) map[string]any {
	if i < 0 || i >= len(list) {
		return nil
	}
	child, _ := list[i].(map[string]any)
	return child
}

// strList converts an array of JSON values to strings, skipping non-strings.
func strList(list []any) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// found reports whether the object's "found" flag is set. The upstream
// sends both boolean true and the string "true" for the same flag.
func found(m map[string]any) bool {
	if m == nil {
		return false
	}
	return truthy(m["found"])
}

// truthy interprets the upstream's mixed flag encodings.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "Y"
	default:
		return false
	}
}

// na is shorthand for the display sentinel.
const na = domain.NotAvailable
