package main

import (
	"context"
	"fmt"
	"os"

	hwpxgen "github.com/alnah/go-hwpxgen"
	"github.com/alnah/go-hwpxgen/internal/fileutil"
)

// runGenerate is the default command: read config, generate, write output.
func runGenerate(args []string) int {
	gf, err := parseGenerateFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		return ExitUsage
	}

	logger := loggerFor(os.Stderr, gf.verbose, gf.quiet)

	if err := generate(context.Background(), gf); err != nil {
		logger.Error(err.Error())
		return exitCodeFor(err)
	}

	if !gf.quiet {
		fmt.Printf("Created %s\n", gf.output)
	}
	return ExitSuccess
}

func generate(ctx context.Context, gf *generateFlags) error {
	raw, err := os.ReadFile(gf.config) // #nosec G304 -- config path is user-provided
	if err != nil {
		return fmt.Errorf("reading config %s: %w", gf.config, err)
	}

	var opts []hwpxgen.Option
	if gf.template != "" {
		if !fileutil.FileExists(gf.template) {
			return fmt.Errorf("template %s: %w", gf.template, os.ErrNotExist)
		}
		opts = append(opts, hwpxgen.WithTemplatePath(gf.template))
	}

	svc := hwpxgen.New(opts...)
	return svc.Generate(ctx, raw, gf.output)
}
