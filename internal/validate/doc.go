// Package validate implements the two-stage input validation pipeline.
//
// The parsing stage turns raw text into an UnsanitizedNumber or the absent
// signal; the sanitization stage narrows that into a SanitizedNumber by
// range-checking. Both stages are pure functions with comma-ok results; the
// Pipeline composes them into a fail-fast pipz sequence for the loop.
package validate
