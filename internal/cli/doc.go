// Package cli turns worldreg's command line into an app.Config. It validates
// flag values and reports usage problems as ExitError values carrying the
// process exit code.
package cli
