// Package prompt runs the interactive read-validate-repeat loop.
//
// The loop is an explicit two-state machine: it awaits input, pipes each
// line through the validation pipeline, reports rejections on the error
// stream, and finishes once a sanitized number is stored. Streams are
// injected so the whole cycle is testable without a terminal.
package prompt
