package normalization

import (
	"strconv"
	"strings"
)

// AsString trims and returns the string representation of value when possible.
func AsString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// AsInt coerces numeric values supported by the REST layer into Go ints.
// Numeric strings such as "45" are accepted because historical clients sent
// capacity fields as form text.
func AsInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case string:
		if trimmed := strings.TrimSpace(typed); trimmed != "" {
			if parsed, err := strconv.Atoi(trimmed); err == nil {
				return parsed
			}
			if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return int(parsed)
			}
		}
	}
	return 0
}

// AsFloat64 coerces numeric values (including numeric strings) into float64.
func AsFloat64(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int32:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		if trimmed := strings.TrimSpace(typed); trimmed != "" {
			if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// AsStringSlice trims each entry from an arbitrary slice preserving non-empty values.
func AsStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		typed, ok := value.([]string)
		if !ok {
			return nil
		}
		items = make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, entry)
		}
	}
	result := make([]string, 0, len(items))
	for _, entry := range items {
		if s := AsString(entry); s != "" {
			result = append(result, s)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// AsMap returns value as a plain map when it is one, nil otherwise. Callers
// use it to coerce sub-structures that clients occasionally send as strings
// or omit entirely.
func AsMap(value any) map[string]any {
	if typed, ok := value.(map[string]any); ok {
		return typed
	}
	return nil
}
