// utils/validation.go
package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a record identity from a path parameter. Identities are
// positive integers; anything else is rejected before reaching a store.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
