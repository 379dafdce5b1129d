package mcpserver

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts a whole-number argument, returning defaultVal when the key
// is missing. JSON numbers arrive as float64, so 1.9 is rejected rather than
// truncated.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return defaultVal, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("'%s' must be a whole number, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("'%s' must be a whole number, got %v", key, raw)
	}
}

// intSliceArg extracts an array of whole numbers. A missing key yields an
// empty slice.
func intSliceArg(req mcp.CallToolRequest, key string) ([]int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return []int{}, nil
	}

	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case []float64:
		for _, f := range v {
			items = append(items, f)
		}
	case []int:
		return append([]int(nil), v...), nil
	default:
		return nil, fmt.Errorf("'%s' must be an array of statement ids", key)
	}

	out := make([]int, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, fmt.Errorf("'%s' must contain whole numbers, got %v", key, item)
		}
		out = append(out, int(f))
	}
	return out, nil
}
