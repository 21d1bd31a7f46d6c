package main

import (
	"errors"
	"os"

	hwpxgen "github.com/alnah/go-hwpxgen"
)

// Exit codes for the hwpxgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config schema, or style resolution
	ExitIO      = 3 // Output unwritable, template unreadable or corrupt
)

// errUsage marks CLI usage errors.
var errUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O and template environment errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, hwpxgen.ErrTemplateCorrupt) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, hwpxgen.ErrEmptyConfig) ||
		errors.Is(err, hwpxgen.ErrConfigSchema) ||
		errors.Is(err, hwpxgen.ErrStyleNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
