package models

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseValues flattens a stored response into its non-empty string values.
// multi is true when the response holds a set of values (checkbox, multi-select).
// Responses decoded from JSON arrive as []interface{}, from BSON as primitive.A.
func ResponseValues(v interface{}) (values []string, multi bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return []string{s}, false
		}
		return nil, false
	case []string:
		return nonEmpty(val), true
	case []interface{}:
		return flatten(val), true
	case primitive.A:
		return flatten(val), true
	case bool:
		return []string{strconv.FormatBool(val)}, false
	case float64:
		return []string{strconv.FormatFloat(val, 'f', -1, 64)}, false
	case float32:
		return []string{strconv.FormatFloat(float64(val), 'f', -1, 32)}, false
	case int:
		return []string{strconv.Itoa(val)}, false
	case int32:
		return []string{strconv.FormatInt(int64(val), 10)}, false
	case int64:
		return []string{strconv.FormatInt(val, 10)}, false
	default:
		s := strings.TrimSpace(fmt.Sprint(val))
		if s == "" {
			return nil, false
		}
		return []string{s}, false
	}
}

// IsAnswered reports whether a response is present, non-null, not an empty
// string and, for multi-valued responses, not an empty set.
func IsAnswered(v interface{}) bool {
	values, _ := ResponseValues(v)
	return len(values) > 0
}

func flatten(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		values, _ := ResponseValues(item)
		out = append(out, values...)
	}
	return out
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
