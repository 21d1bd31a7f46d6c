package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// generateFlags holds flags for the default generate command.
type generateFlags struct {
	output   string
	config   string
	template string
	verbose  bool
	quiet    bool
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	addr     string
	template string
	apiKey   string
	verbose  bool
}

func parseGenerateFlags(args []string) (*generateFlags, error) {
	fs := flag.NewFlagSet("hwpxgen", flag.ContinueOnError)
	gf := &generateFlags{}

	fs.StringVarP(&gf.output, "output", "o", "", "output .hwpx file path (required)")
	fs.StringVarP(&gf.config, "config", "c", "", "config file path, JSON or YAML (required)")
	fs.StringVarP(&gf.template, "template", "t", "", "template .hwpx file (default: bundled)")
	fs.BoolVarP(&gf.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVarP(&gf.quiet, "quiet", "q", false, "suppress non-error output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if gf.output == "" {
		return nil, fmt.Errorf("%w: --output is required", errUsage)
	}
	if gf.config == "" {
		return nil, fmt.Errorf("%w: --config is required", errUsage)
	}
	if gf.verbose && gf.quiet {
		return nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", errUsage)
	}
	return gf, nil
}

func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("hwpxgen serve", flag.ContinueOnError)
	sf := &serveFlags{}

	fs.StringVar(&sf.addr, "addr", ":8790", "listen address")
	fs.StringVarP(&sf.template, "template", "t", "", "template .hwpx file (default: bundled)")
	fs.StringVar(&sf.apiKey, "api-key", "", "bearer key required on /generate (default: $HWPXGEN_API_KEY)")
	fs.BoolVarP(&sf.verbose, "verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return sf, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `hwpxgen generates HWPX documents from a JSON content description.

Usage:
  hwpxgen --config report.json --output report.hwpx [--template custom.hwpx]
  hwpxgen serve [--addr :8790] [--template custom.hwpx] [--api-key KEY]
  hwpxgen version

Flags:
  -c, --config     config file path, JSON or YAML (required)
  -o, --output     output .hwpx file path (required)
  -t, --template   template .hwpx file (default: bundled)
  -v, --verbose    enable debug logging
  -q, --quiet      suppress non-error output
`)
}
