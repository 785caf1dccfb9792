package utils

import (
	"strconv"
)

// ParseInt64 converts a path or query parameter to int64, reporting
// whether the value was well-formed.
func ParseInt64(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}

// ParseOptionalBool parses an optional query parameter. Empty string
// means the parameter was not supplied.
func ParseOptionalBool(value string) (*bool, bool) {
	if value == "" {
		return nil, true
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return nil, false
	}

	return &result, true
}
