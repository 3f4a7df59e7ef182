package utils

import (
	"strconv"
)

// ParseID converts a path segment to a movie id.
func ParseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
