// Package storage implements a SQLite-backed sample store addressed by
// key expressions.
//
// A backend is registered with a root expression (for example
// "demo/example/**"). At registration it computes the root's non-wild
// prefix once; every incoming key or selector is then mapped to local
// storage keys by stripping that prefix. Samples are stored in SQLite
// keyed by their local key, so the database never sees the deployment's
// global namespace.
//
// The backend is a single writer: the SQLite pool is capped at one
// connection to avoid SQLITE_BUSY, and reads go through the same handle.
package storage
