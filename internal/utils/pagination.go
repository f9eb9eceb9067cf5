// Package utils provides small, generic helpers shared across layers,
// independent of any domain logic.
package utils

import "strconv"

// AtoiDefault converts s to an int, returning def when s is empty or not a
// valid integer. Used for optional numeric query parameters such as `limit`.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
