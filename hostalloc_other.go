//go:build !unix

package objpool

// NewMmapHostAllocator falls back to the heap allocator on platforms without
// an anonymous-mmap facility.
func NewMmapHostAllocator() HostAllocator { return heapHostAllocator{} }
