package objpool

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/objpool/internal/layout"
)

// Free returns a slot to the pool. p must be a slice previously returned by
// Allocate on this same Allocator (the exact slice, not a re-sliced view).
func (a *Allocator) Free(p []byte) error {
	if a.cfg.UseHostAllocator {
		return a.freePassthrough(p)
	}
	if len(p) == 0 {
		return fmt.Errorf("objpool: free: %w", ErrBadBoundary)
	}

	addr := uintptr(unsafe.Pointer(&p[0]))
	page, off, ok := a.pageAndOffset(addr)
	if !ok {
		defaultLogger.Warn("objpool: free of out-of-pool pointer")
		return fmt.Errorf("objpool: free: %w", ErrBadBoundary)
	}
	s := slot{page, off}

	if a.debugOn {
		if (off-a.layout.PageHeader)%a.layout.Stride != 0 {
			defaultLogger.Warn("objpool: free of misaligned pointer")
			return fmt.Errorf("objpool: free: %w", ErrBadBoundary)
		}
		if !allBytes(a.leftPad(s), PatternPad) || !allBytes(a.rightPad(s), PatternPad) {
			defaultLogger.Warn("objpool: free of corrupted block")
			return fmt.Errorf("objpool: free: %w", ErrCorruptedBlock)
		}
		body := a.bodySlice(s)
		if len(body) > layout.PointerSize && body[layout.PointerSize] == PatternFreed {
			defaultLogger.Warn("objpool: double free detected")
			return fmt.Errorf("objpool: free: %w", ErrMultipleFree)
		}
	}

	// Validated before any counter mutates: the corrected ordering, not the
	// source's decrement-then-check.
	a.stats.Deallocations++
	a.stats.ObjectsInUse--

	if a.debugOn {
		fillPattern(a.bodySlice(s), PatternFreed)
	}

	if a.cfg.Header.Kind != HeaderNone {
		a.headerOps.onFree(a, a.headerSlice(s), addr)
	}

	a.pushFree(addr)
	return nil
}
