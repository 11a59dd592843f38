// Package logger configures the slog logger used for internal diagnostics.
//
// It is separate from the program's error stream: user-visible rejection
// messages go through the prompt reporter, while this logger traces stage
// outcomes at debug level.
package logger
