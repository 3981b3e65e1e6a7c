// Package scanner provides data file discovery for the find command.
//
// The scanner package is responsible for:
//   - Listing a single directory (no recursion)
//   - Keeping regular files whose names match ^[A-Za-z0-9]+\.ixt$
//   - Sorting the result in ascending byte order
//   - Reporting a missing directory as seedscan.ErrDirectoryNotFound
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
