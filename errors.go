package hwpxgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// ErrConfigSchema indicates a malformed or missing config field. The
	// wrapped message carries the offending field path.
	ErrConfigSchema = errors.New("invalid document config")

	// ErrStyleNotFound indicates a semantic style name with no matching
	// identifier pair in the template's style catalog.
	ErrStyleNotFound = errors.New("style not found in template")

	// ErrTemplateCorrupt indicates a template archive missing required
	// entries or containing malformed XML in its style-definition file.
	ErrTemplateCorrupt = errors.New("template archive corrupt")

	// ErrEmptyConfig indicates an empty config input.
	ErrEmptyConfig = errors.New("config cannot be empty")
)

// schemaErrorf builds an ErrConfigSchema wrapping the offending field path.
func schemaErrorf(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrConfigSchema, path, fmt.Sprintf(format, args...))
}
