package blueprint

// Decoders disagree on number types: sonic yields float64, goccy/go-yaml
// uint64 or int64, go-toml int64 or float64.

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringProp(props map[string]interface{}, key string) string {
	s, _ := props[key].(string)
	return s
}

func boolProp(props map[string]interface{}, key string) bool {
	b, _ := props[key].(bool)
	return b
}

// stringsProp reads a string list; a single string is a one-element list
func stringsProp(props map[string]interface{}, key string) []string {
	switch v := props[key].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
