package mapping

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// stringValue reads a scalar as trimmed text. Numbers are formatted without exponent so
// a year like 2019 reads back as "2019". Objects, lists, booleans and nil yield false.
func stringValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	default:
		return "", false
	}
}

// firstString returns the first non-empty scalar found under keys
func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := stringValue(obj[key]); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstStringIn searches each container for each key, key-major, so an earlier key in
// any container wins over a later key
func firstStringIn(containers []map[string]any, keys []string) string {
	for _, key := range keys {
		for _, obj := range containers {
			if s, ok := stringValue(obj[key]); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func objectValue(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// firstObject returns the first object found under keys
func firstObject(obj map[string]any, keys []string) (map[string]any, bool) {
	for _, key := range keys {
		if o, ok := objectValue(obj[key]); ok {
			return o, true
		}
	}
	return nil, false
}

// firstList returns the first list under keys. A single object is treated as a one-element list.
func firstList(obj map[string]any, keys []string) ([]any, bool) {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case []any:
			return v, true
		case map[string]any:
			return []any{v}, true
		}
	}
	return nil, false
}

func hasAny(obj map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// boolValue reads true, "true" or "yes"
func boolValue(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		return s == "true" || s == "yes"
	default:
		return false
	}
}

func firstBool(obj map[string]any, keys []string) bool {
	for _, key := range keys {
		if boolValue(obj[key]) {
			return true
		}
	}
	return false
}

// stringList reads a list of scalars, or objects carrying a text field, as trimmed strings.
// A single string becomes a one-element list. Empty entries are dropped.
func stringList(v any) []string {
	var items []any
	switch x := v.(type) {
	case []any:
		items = x
	case []string:
		items = lo.ToAnySlice(x)
	case nil:
		return []string{}
	default:
		items = []any{x}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if obj, ok := objectValue(item); ok {
			if s := firstString(obj, []string{"text", "name", "value", "description"}); s != "" {
				out = append(out, s)
			}
			continue
		}
		if s, ok := stringValue(item); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstStringList returns the first non-empty list found under keys
func firstStringList(obj map[string]any, keys []string) []string {
	for _, key := range keys {
		if list := stringList(obj[key]); len(list) > 0 {
			return list
		}
	}
	return []string{}
}

// splitList reads a list, or a comma or semicolon separated string, as trimmed strings
func splitList(v any) []string {
	if s, ok := v.(string); ok {
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '\n' })
		return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
			p = strings.TrimSpace(p)
			return p, p != ""
		})
	}
	return stringList(v)
}

// uniqueFold drops case-insensitive duplicates, keeping first-seen order
func uniqueFold(items []string) []string {
	return lo.UniqBy(items, strings.ToLower)
}

// joinNonEmpty joins the non-empty parts with sep
func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(lo.Compact(lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})), sep)
}

// firstPresent returns the first non-nil value under keys
func firstPresent(obj map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
