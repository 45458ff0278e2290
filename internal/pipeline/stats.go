package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int
	Current   int
	Renamed   int // renamed, or previewed when --rename is off
	Unchanged int // no tags derived; file left as-is (no-op)
	Skipped   int // target already exists
	Failed    int // metadata unavailable or rename I/O error
}
