// Package cli provides the line-oriented Brainly client.
//
// It is the non-interactive sibling of the terminal UI: the same services
// back both, so sign-in state, validation and error messages behave the
// same. The REPL is started via App.Run(ctx), which blocks until the user
// exits or stdin closes. See runREPL for the command set.
package cli
