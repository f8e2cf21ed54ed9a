// Package cli translates the label generator's command-line surface into
// an app.Config: parts path selection, output/code selector validation,
// verbosity flags, and exit-code handling via ExitError.
package cli
