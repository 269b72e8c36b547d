package models

import "time"

// Record is a single matched file: its path relative to the dump root and
// its decoded text content. Records are printed as soon as they are read.
type Record struct {
	RelPath string // Path relative to the root, using the OS separator
	Content string // Full file content, valid UTF-8
}

// Summary represents the aggregate result of a dump run
type Summary struct {
	Matched  int           // Files whose name ended with the suffix
	Dumped   int           // Files whose content was printed
	Failed   int           // Files that could not be read (continue policy only)
	Duration time.Duration // Wall time of the run
}
