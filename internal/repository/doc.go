// Package repository defines the data access interface for extracted
// specification records.
//
// Extraction hits vendor pages, which are slow and rate-limited, so every
// successful extraction is cached here and later board generations for the
// same part skip the network entirely. The actual implementation is in the
// sqlite subpackage.
//
// The sqlite repository uses WAL mode for concurrency and migrates its
// schema on startup. Records are keyed by upper-cased part number, so
// lookups are case-insensitive.
package repository
