// Package jsonx provides tolerant accessors over decoded JSON values
// (map[string]interface{} trees).  The PUG REST record format mixes
// integers, floats and strings freely, and encoding/json decodes every
// number as float64; these helpers centralize the coercions so the domain
// packages stay readable.
package jsonx

import "strconv"

// Map returns v as a map, or nil when v is not a JSON object.
func Map(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// Slice returns v as a slice, or nil when v is not a JSON array.
func Slice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

// Int coerces v to an int.  JSON numbers arrive as float64; numeric strings
// are parsed as a fallback.
func Int(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}

// Float coerces v to a float64.
func Float(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// String returns v as a string.
func String(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// IntSlice coerces a JSON array to []int, skipping non-numeric entries.
func IntSlice(v interface{}) []int {
	raw := Slice(v)
	if raw == nil {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, e := range raw {
		if i, ok := Int(e); ok {
			out = append(out, i)
		}
	}
	return out
}

// FloatSlice coerces a JSON array to []float64, skipping non-numeric entries.
func FloatSlice(v interface{}) []float64 {
	raw := Slice(v)
	if raw == nil {
		return nil
	}
	out := make([]float64, 0, len(raw))
	for _, e := range raw {
		if f, ok := Float(e); ok {
			out = append(out, f)
		}
	}
	return out
}

// StringSlice coerces a JSON array to []string, skipping non-string entries.
func StringSlice(v interface{}) []string {
	raw := Slice(v)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := String(e); ok {
			out = append(out, s)
		}
	}
	return out
}

// Dig walks nested maps by key and returns the value at the end of the
// path, or nil when any step is missing or not an object.
func Dig(v interface{}, path ...string) interface{} {
	cur := v
	for _, key := range path {
		m := Map(cur)
		if m == nil {
			return nil
		}
		var ok bool
		cur, ok = m[key]
		if !ok {
			return nil
		}
	}
	return cur
}
