package objpool

// Stats reports the allocator's observable counters. It carries no behavior
// of its own; GetStats returns a copy.
type Stats struct {
	ObjectSize    int
	PageSize      int
	FreeObjects   int
	ObjectsInUse  int
	PagesInUse    int
	Allocations   uint32
	Deallocations uint32
	MostObjects   int
}
