package batch

import "io"

// Item is one payload to be written at a slash-separated relative path.
type Item struct {
	Path string
	Data []byte
}

// Sink receives payloads during a batch write.
//
// Implementations determine where content is written and can filter which
// items to write.
type Sink interface {
	// ShouldProcess returns false if the item at path should be skipped.
	// This allows implementations to skip existing files.
	ShouldProcess(path string) bool

	// Writer returns a writer for the item's content.
	// The returned Committer must have Commit() called after a successful
	// write, or Discard() called on any error.
	Writer(path string) (Committer, error)
}

// Committer is a writer that can be committed or discarded.
//
// Implementations should buffer or stage writes until Commit is called.
// For example, a file-based implementation might write to a temp file
// and rename it on Commit, or delete it on Discard.
type Committer interface {
	io.Writer

	// Commit finalizes the write, making content available.
	Commit() error

	// Discard aborts the write and cleans up any temporary resources.
	Discard() error
}
