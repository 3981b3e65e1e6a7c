// Package logging provides the implementations of seedscan.Logger.
//
//   - ConsoleLogger: prefixed, mutex-guarded lines on stderr or a given writer
//   - NullLogger: discards everything
//
// Loggers carry diagnostics only. Command results (found files, seeded
// record lines, search rows) are written to the command's stdout writer.
package logging
