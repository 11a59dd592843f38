package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	In       io.Reader // input stream, e.g. os.Stdin
	Out      io.Writer // prompt and success message stream
	ErrOut   io.Writer // diagnostic stream, one line per rejected attempt
	LogLevel string    // slog level name; empty means error
}
