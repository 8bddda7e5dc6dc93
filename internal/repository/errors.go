// Package repository implements the MySQL persistence layer.  Sentinel
// errors shared across repositories live here so handlers can translate
// them into HTTP status codes with errors.Is.
package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist,
// including referential-integrity failures surfaced by the database.
// Handlers should translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
