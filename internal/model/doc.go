// Package model defines the domain types and value objects for the
// gitf CLI.
//
// This package contains pure data structures with no external dependencies:
// the closed set of workflow actions, branch kinds and their naming prefixes,
// CLI exit codes, and the CLIError type that carries an exit code from the
// point of failure up to the process boundary.
package model
