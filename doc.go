// Package hwpxgen generates HWPX documents from a JSON content description.
//
// # Quick Start
//
// Create a service, feed it a config document, and write the result:
//
//	svc := hwpxgen.New()
//	err := svc.Generate(ctx, configJSON, "report.hwpx")
//
// The config describes a report as an ordered list of sections, each an
// ordered list of typed content items (headings, bullets, tables, notes).
// Visual style comes from an HWPX template archive: generated paragraphs
// reference character and paragraph property IDs that the template's
// style-definition file (Contents/header.xml) already defines.
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Content model build (strict config decode, schema validation)
//  2. Style catalog load (template header.xml parse, ID binding)
//  3. Section XML emission (one OWPML section document per config section)
//  4. Container packaging (ZIP assembly, mimetype first and stored)
//
// # Templates
//
// A bundled template is used by default. Bring your own with
// WithTemplatePath; the semantic style bindings can be replaced wholesale
// with WithCatalog. A style name that does not resolve against the
// template is an error, never a silent default.
//
//	svc := hwpxgen.New(
//	    hwpxgen.WithTemplatePath("corporate.hwpx"),
//	    hwpxgen.WithClock(func() time.Time { return fixed }),
//	)
//
// # Output Guarantees
//
// The output archive always begins with an uncompressed mimetype entry, as
// the consuming application requires. Output files are written to a temp
// path and renamed into place, so a partial file is never visible at the
// destination, and concurrent runs against the same path resolve to the
// last completed writer.
package hwpxgen
