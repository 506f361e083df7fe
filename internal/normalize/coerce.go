package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// placeholder is the display value substituted for absent or empty text.
const placeholder = "—"

// asMap returns v as a map, or an empty map when v is anything else.
func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// asList returns v as a slice, or nil when v is anything else.
func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

// firstString resolves the first of the given alias keys that holds a
// non-empty string-like value. Numeric ids are rendered as strings so that
// payloads carrying `id: 42` still resolve.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return formatNumber(v)
		case int:
			return strconv.Itoa(v)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// mapField resolves the first alias key holding a non-empty map.
func mapField(m map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if inner, ok := m[key].(map[string]any); ok && len(inner) > 0 {
			return inner
		}
	}
	return nil
}

// listField resolves the first alias key holding a non-empty list.
func listField(m map[string]any, keys ...string) []any {
	for _, key := range keys {
		if l, ok := m[key].([]any); ok && len(l) > 0 {
			return l
		}
	}
	return nil
}

// numeric reports v as an integer when it is any recognizable numeric shape.
// JSON decoding produces float64; json.Number and numeric strings also occur
// in legacy payloads.
func numeric(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

// preferNumeric trusts an upstream-provided numeric field and only falls
// back to the computed value when the field is absent or non-numeric. This
// is the single place the per-field trust policy lives; both aggregators go
// through it.
func preferNumeric(raw map[string]any, key string, computed int) int {
	if n, ok := numeric(raw[key]); ok {
		return n
	}
	return computed
}

// coerceText renders an arbitrary upstream value as display text. Absent or
// empty values become the placeholder dash; lists join their non-empty
// elements with ", "; wrapper objects carrying a "value" or "text" key are
// unwrapped; anything else is JSON-stringified as a last resort.
// Coercion is idempotent over its own output.
func coerceText(v any) string {
	s := coerceTextInner(v)
	if s == "" {
		return placeholder
	}
	return s
}

func coerceTextInner(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, elem := range t {
			if s := coerceTextInner(elem); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		if inner, ok := t["value"]; ok {
			return coerceTextInner(inner)
		}
		if inner, ok := t["text"]; ok {
			return coerceTextInner(inner)
		}
		encoded, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(encoded)
	case float64:
		return formatNumber(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// stringList coerces an upstream value into a list of non-empty strings.
// A scalar value is wrapped in a single-element list.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, elem := range t {
			if s := coerceTextInner(elem); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := coerceTextInner(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// formatNumber renders a float64 without a trailing ".0" for whole values,
// matching how ids and counts appear in the source payloads.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
