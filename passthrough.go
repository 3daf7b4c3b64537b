package objpool

import "fmt"

// allocatePassthrough implements Allocate in passthrough mode: every request
// is forwarded straight to the host allocator.
func (a *Allocator) allocatePassthrough() ([]byte, error) {
	b, err := a.host.Alloc(a.objectSize)
	if err != nil {
		return nil, fmt.Errorf("objpool: allocate: %w: %v", ErrNoMemory, err)
	}
	a.stats.Allocations++
	a.stats.ObjectsInUse++
	if a.stats.ObjectsInUse > a.stats.MostObjects {
		a.stats.MostObjects = a.stats.ObjectsInUse
	}
	return b, nil
}

// freePassthrough implements Free in passthrough mode.
func (a *Allocator) freePassthrough(p []byte) error {
	a.stats.Deallocations++
	a.stats.ObjectsInUse--
	return a.host.Release(p)
}
