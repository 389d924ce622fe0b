package register

import (
	"fmt"
	"strconv"
)

// CoerceValues converts a loosely typed value list into register fragments.
// It accepts []string, []fmt.Stringer and []any whose elements are strings,
// Stringers, bools, integers or floats.
func CoerceValues(v any) ([]string, error) {
	switch vs := v.(type) {
	case []string:
		return append([]string{}, vs...), nil
	case []fmt.Stringer:
		out := make([]string, len(vs))
		for i, s := range vs {
			if s == nil {
				return nil, fmt.Errorf("%w: nil element at %d", ErrInvalidRegisterValue, i)
			}
			out[i] = s.String()
		}
		return out, nil
	case []any:
		out := make([]string, len(vs))
		for i, elem := range vs {
			s, ok := coerceValue(elem)
			if !ok {
				return nil, fmt.Errorf("%w: element %d has type %T", ErrInvalidRegisterValue, i, elem)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidRegisterValue, v)
	}
}

func coerceValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	default:
		return "", false
	}
}
