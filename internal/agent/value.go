package agent

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsEmpty reports whether a decoded value carries no content: null, a
// string that is blank after trimming, or an empty sequence or mapping.
// Other scalars, including false and 0, are not empty.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	case map[any]any:
		return len(x) == 0
	default:
		return false
	}
}

// AsList returns v as a sequence.
func AsList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// MappingKeys returns the keys of v when it is a mapping.
func MappingKeys(v any) (map[string]struct{}, bool) {
	switch m := v.(type) {
	case map[string]any:
		keys := make(map[string]struct{}, len(m))
		for k := range m {
			keys[k] = struct{}{}
		}
		return keys, true
	case map[any]any:
		keys := make(map[string]struct{}, len(m))
		for k := range m {
			keys[fmt.Sprint(k)] = struct{}{}
		}
		return keys, true
	default:
		return nil, false
	}
}

// Display renders a decoded value for messages. Strings are shown verbatim,
// null as None, booleans as True/False and floats always with a fraction or
// exponent (1.0, 1e+16).
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprint(x)
	}
}

// Text returns the textual content of a scalar for length checks.
// Null yields the empty string.
func Text(v any) string {
	if v == nil {
		return ""
	}
	return Display(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
