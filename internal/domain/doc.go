// Package domain defines the core data model shared across the app.
// It contains the closed Number union and its range constants only.
package domain
