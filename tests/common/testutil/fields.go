//go:build unit || e2e

package testutil

import (
	"strconv"
	"strings"
)

// Field sets or, with a nil value, deletes a member of a DtoMap result.
// Dotted keys walk into nested objects and arrays, e.g. "reservations.1.startTime".
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		parent := descend(m, parts[:len(parts)-1])
		if parent == nil {
			return
		}
		last := parts[len(parts)-1]
		if value == nil {
			delete(parent, last)
		} else {
			parent[last] = value
		}
	}
}

func descend(m map[string]any, path []string) map[string]any {
	var cur any = m
	for _, p := range path {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[p]
		case []any:
			i, err := strconv.Atoi(p)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	obj, _ := cur.(map[string]any)
	return obj
}
