package objpool

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/objpool/internal/layout"
)

// Allocator services fixed-size allocate/free requests by carving equally
// sized slots out of pages obtained from a HostAllocator, recycling freed
// slots through an internal free list. It is not safe for concurrent use:
// every entry point mutates the page-list and free-list heads.
type Allocator struct {
	objectSize int
	cfg        Config
	layout     layout.Sizes
	host       HostAllocator
	headerOps  headerOps
	external   map[uintptr]*MemBlockInfo

	pageHead *Page
	freeHead uintptr
	debugOn  bool

	stats Stats
}

// New constructs an Allocator for objects of objectSize bytes under cfg. In
// pool mode it eagerly allocates the first page; in passthrough mode
// (cfg.UseHostAllocator) no page is ever allocated, since the page/free-list
// machinery goes unused.
func New(objectSize int, cfg Config) (*Allocator, error) {
	if objectSize <= 0 {
		return nil, fmt.Errorf("objpool: objectSize must be positive, got %d", objectSize)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.UseHostAllocator && objectSize < layout.PointerSize {
		return nil, fmt.Errorf("objpool: objectSize must be >= %d to hold the free-list link", layout.PointerSize)
	}

	host := cfg.Host
	if host == nil {
		host = NewHeapHostAllocator()
	}
	cfg.Host = host

	sizes := layout.Compute(objectSize, cfg.Header.Size(), cfg.PadBytes, cfg.Alignment, cfg.ObjectsPerPage)
	cfg.LeftAlignSize = sizes.LeftAlignSize
	cfg.InterAlignSize = sizes.InterAlignSize

	a := &Allocator{
		objectSize: objectSize,
		cfg:        cfg,
		layout:     sizes,
		host:       host,
		headerOps:  newHeaderOps(cfg.Header.Kind),
		debugOn:    cfg.DebugOn,
	}
	a.stats.ObjectSize = objectSize
	a.stats.PageSize = sizes.PageSize

	if cfg.Header.Kind == HeaderExternal {
		a.external = make(map[uintptr]*MemBlockInfo)
	}

	if !cfg.UseHostAllocator {
		if err := a.growPage(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// SetDebugState enables or disables signature-pattern stamping and the
// integrity checks that depend on it.
func (a *Allocator) SetDebugState(on bool) { a.debugOn = on }

// GetStats returns a copy of the allocator's current counters.
func (a *Allocator) GetStats() Stats { return a.stats }

// GetConfig returns a copy of the allocator's configuration, including the
// page geometry derived at construction.
func (a *Allocator) GetConfig() Config { return a.cfg }

// GetFreeList returns the free-list head as an opaque address for
// diagnostics only. The returned value must never be dereferenced outside
// this package.
func (a *Allocator) GetFreeList() uintptr { return a.freeHead }

// GetPageList returns the page-list head's base address as an opaque
// diagnostic handle, or 0 if no page has been allocated.
func (a *Allocator) GetPageList() uintptr {
	if a.pageHead == nil {
		return 0
	}
	return pageBase(a.pageHead)
}

// Close releases every page back to the host allocator and, for
// HeaderExternal pools, drops any remaining external headers regardless of
// whether their slot was in use — the destructor inspects every slot of
// every page, not just the first (see DESIGN.md on the O2 open question).
func (a *Allocator) Close() error {
	var firstErr error
	for page := a.pageHead; page != nil; {
		next := page.Next
		a.teardownExternalHeaders(page)
		if err := a.host.Release(page.Data); err != nil && firstErr == nil {
			firstErr = err
		}
		page = next
	}
	a.pageHead = nil
	a.freeHead = 0
	a.stats.PagesInUse = 0
	return firstErr
}

func (a *Allocator) teardownExternalHeaders(page *Page) {
	if a.cfg.Header.Kind != HeaderExternal {
		return
	}
	for i := 0; i < a.cfg.ObjectsPerPage; i++ {
		off := a.layout.PageHeader + i*a.layout.Stride
		addr := uintptr(unsafe.Pointer(&page.Data[off]))
		a.headerOps.onPageTeardown(a, addr)
	}
}
