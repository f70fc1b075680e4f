// Package pipeline locates language directories under a project root, runs
// the archiver on each in turn, and reports the batch.
//
// Directories are processed sequentially in sorted order. A failure in one
// directory is logged and recorded, and the run moves on to the next unless
// FailFast is set; all failures are returned joined at the end.
package pipeline
