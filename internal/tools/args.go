package tools

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// decodeArgs maps a raw argument map onto a typed argument struct.
// Pre-populate out with defaults before calling; absent keys leave the
// defaults untouched. Weak typing coerces JSON's float64 numbers onto int
// fields.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("building argument decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
