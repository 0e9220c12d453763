// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The helpers below read loosely-typed values produced by LoadJSON. Absent and
// null fields are treated alike; callers decide whether that means "empty" or
// "missing".

// asObject returns v as a JSON object.
func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// asArray returns v as a JSON array. A nil value yields an empty array.
func asArray(v any) ([]any, bool) {
	if v == nil {
		return []any{}, true
	}
	arr, ok := v.([]any)
	return arr, ok
}

// scalarString renders a scalar field as trimmed text. Objects, arrays and null
// render as the empty string.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

// stringField reads obj[key] with scalarString.
func stringField(obj map[string]any, key string) string {
	return scalarString(obj[key])
}

// asStrings returns v as a list of strings. A nil value yields an empty list.
// When nonEmpty is set, blank elements are rejected.
func asStrings(v any, nonEmpty bool) ([]string, bool) {
	arr, ok := asArray(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		if nonEmpty && strings.TrimSpace(s) == "" {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// asInteger returns v as an int64. Floats, strings and other kinds are rejected.
func asInteger(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}
