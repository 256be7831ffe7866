package batch

// Stats contains statistics from a batch write.
type Stats struct {
	// Written is the number of items committed to the sink.
	Written int

	// Skipped is the number of items skipped (ShouldProcess returned false).
	Skipped int

	// TotalBytes is the sum of payload sizes for all written items.
	TotalBytes uint64
}
