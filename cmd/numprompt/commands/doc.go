// Package commands defines the numprompt CLI.
//
// The tool is single-purpose, so there is only the root command: it wires
// the process streams into the app and runs the interaction loop. Validation
// rejections go to stderr, the prompt and success message to stdout. The
// --log-level flag raises internal logging verbosity and never changes
// validation behaviour.
package commands
