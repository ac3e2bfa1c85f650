package out

import (
	"fmt"
	"time"
)

// JSON numbers decode as float64 and absent keys as nil, so row fields go
// through these coercions instead of direct type assertions.

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func asStringDefault(v any, fallback string) string {
	if s := asString(v); s != "" {
		return s
	}
	return fallback
}

func asOptString(v any) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringSlice(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{}
	}
}

func asTime(v any) (time.Time, error) {
	raw := asString(v)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return ts, nil
}

func asOptTime(v any) (time.Time, bool, error) {
	if v == nil {
		return time.Time{}, false, nil
	}
	ts, err := asTime(v)
	if err != nil {
		return time.Time{}, false, err
	}
	return ts, true, nil
}
