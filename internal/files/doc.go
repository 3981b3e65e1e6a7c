// Package files provides file-related functionality organized into sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Data file discovery for the find command
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/seedscan/internal/files/scanner"
//	)
//
//	names, err := scanner.NewScanner().Discover(scanner.DefaultDirectory())
//	if err != nil {
//	    return err
//	}
//	scanner.Report(os.Stdout, names)
package files
