// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small read-only surface the directory scanner
// needs (Stat and single-level ReadDir), enabling testability through an in-memory
// implementation while using the OS filesystem in production.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
