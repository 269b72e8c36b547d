// Package fileutil provides the directory traversal used by srcdump.
//
// The package walks a root directory recursively and reports every file whose
// name ends with a fixed suffix, one at a time, as a path relative to the root.
// Nothing is collected: each match is handed to a callback and forgotten.
//
// # Matching
//
// A file matches when its base name ends with the suffix exactly:
//   - "Main.swift" matches ".swift"
//   - "Main.swift.bak" does not (suffix is anchored to the end of the name)
//   - "swift.txt" does not
//   - "Main.SWIFT" does not (comparison is case-sensitive)
//
// Directory names are never matched, and the full path is never inspected,
// so a directory called "pkg.swift" is traversed like any other.
//
// # Ordering
//
// Traversal uses filepath.WalkDir, which reads each directory in lexical
// order. Two runs over an unmodified tree therefore visit files in the same
// order.
//
// # Errors
//
// A directory that cannot be listed aborts the walk with a *models.WalkError.
// There is no skip-and-continue at the traversal level.
//
// # Usage
//
//	err := fileutil.WalkSuffix(".", fileutil.SwiftSuffix, func(rel string) error {
//	    fmt.Println(rel)
//	    return nil
//	})
package fileutil
