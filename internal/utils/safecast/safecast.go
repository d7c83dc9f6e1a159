// Package safecast implements functions to parse and cast user input without silent truncation
package safecast

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// StringToUint32 parses a decimal string into a uint32, rejecting negative and out of range values
func StringToUint32(s string) (uint32, error) {
	v, err := StringToUint64(s)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("value %d exceeds uint32 range", v)
	}

	return cast.ToUint32E(v)
}

// StringToUint64 parses a decimal string into a uint64, rejecting negative values
func StringToUint64(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("value %s is negative", s)
	}

	v, err := cast.ToUint64E(s)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned integer %q: %w", s, err)
	}

	return v, nil
}

// StringsToUint32s parses a comma separated list such as "0,21" into uint32 values.
// An empty string yields an empty list.
func StringsToUint32s(list string) ([]uint32, error) {
	out := []uint32{}
	if strings.TrimSpace(list) == "" {
		return out, nil
	}

	for _, part := range strings.Split(list, ",") {
		v, err := StringToUint32(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
