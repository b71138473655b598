// Package kv is the persistence adapter of drivercal: a string-keyed store
// of opaque byte values.
//
// Two implementations are provided:
//   - SQLiteStore, backed by the on-device database (see storage.InitDatabase);
//   - MemoryStore, a process-local map used for ephemeral runs and tests.
//
// Get returns (nil, nil) when a key is absent.
package kv
