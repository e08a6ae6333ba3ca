package client

import "strconv"

// Lenient accessors for parsed ledger replies. The remote service is loose
// about types (numbers may arrive as strings and vice versa), so every
// accessor converts what it can and reports failure instead of panicking.

// Str returns the string value of key, or "" if absent or not a string
func Str(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// Float returns the numeric value of key, converting from a string form if
// needed
func Float(m map[string]interface{}, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// Uint returns the unsigned integer value of key, converting from a string
// or float form if needed
func Uint(m map[string]interface{}, key string) (uint64, bool) {
	switch v := m[key].(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// Objects returns the value of key as a slice of JSON objects, skipping any
// entries of other types
func Objects(m map[string]interface{}, key string) []map[string]interface{} {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

// Object returns the value of key as a nested JSON object, or nil
func Object(m map[string]interface{}, key string) map[string]interface{} {
	obj, _ := m[key].(map[string]interface{})
	return obj
}
