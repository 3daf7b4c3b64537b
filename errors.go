package objpool

import "errors"

// Sentinel errors returned by Allocate and Free. Callers should compare
// against these with errors.Is; the concrete error returned wraps one of
// these with call-site context.
var (
	// ErrNoMemory means the host allocator could not supply a new page.
	ErrNoMemory = errors.New("objpool: out of memory")

	// ErrNoPages means Config.MaxPages was reached and no free slot remains.
	ErrNoPages = errors.New("objpool: max pages exceeded")

	// ErrBadBoundary means a pointer passed to Free does not fall on a slot
	// boundary of any page owned by this allocator.
	ErrBadBoundary = errors.New("objpool: pointer outside managed pages")

	// ErrCorruptedBlock means a slot's guard padding was overwritten.
	ErrCorruptedBlock = errors.New("objpool: pad region corrupted")

	// ErrMultipleFree means a slot was already on the free list.
	ErrMultipleFree = errors.New("objpool: block already freed")
)
