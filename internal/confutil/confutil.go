// Package confutil wraps config parsing to isolate the external dependency.
// This allows swapping the underlying parser without modifying callers.
//
// The underlying parser is a YAML parser, and JSON is a subset of YAML, so
// both JSON and YAML config documents decode through the same path.
package confutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input to prevent memory exhaustion (default 4MB).
var MaxInputSize = 4 << 20

var (
	ErrNilData        = errors.New("confutil: nil or empty data")
	ErrNilDestination = errors.New("confutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("confutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v, rejecting unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("confutil: %w", err)
	}
	return nil
}
