//go:build unix

package objpool

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type mmapHostAllocator struct{}

// NewMmapHostAllocator returns a HostAllocator that obtains each page
// directly from the OS via an anonymous private mmap, bypassing the Go heap
// entirely. Pages obtained this way are never scanned or moved by the
// garbage collector.
func NewMmapHostAllocator() HostAllocator { return mmapHostAllocator{} }

func (mmapHostAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("objpool: mmap size must be positive, got %d", n)
	}
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrNoMemory, err)
	}
	return b, nil
}

func (mmapHostAllocator) Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
