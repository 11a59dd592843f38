// Package app wires application dependencies for the CLI.
//
// It builds the logger, validation pipeline and interaction loop from
// Config, exposing them via the Wire struct for commands to use.
package app
