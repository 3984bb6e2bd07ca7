package dynarray

// Stats is a snapshot of an array's operation counters.
type Stats struct {
	Grows       uint64 // backing block growths
	Relocations uint64 // element moves between slots or blocks
	Constructs  uint64 // elements constructed
	Destroys    uint64 // elements destroyed
	PeakLen     int    // highest length ever observed
}

// Stats returns the current operation counters.
func (a *Array[T]) Stats() Stats {
	return a.stats
}
