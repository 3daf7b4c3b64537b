package objpool

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/objpool/internal/layout"
)

// Page is a contiguous byte region of exactly the computed page size,
// obtained from a HostAllocator. Slot addresses inside a page never move for
// the page's lifetime; the page-list link is a plain Go pointer rather than
// a byte-encoded one, since nothing about its traversal needs to live inside
// the page's own bytes.
type Page struct {
	Data []byte
	Next *Page
}

// growPage obtains a new page from the host allocator, stamps its debug
// signatures, and threads every slot onto the free list. It implements the
// page initializer.
func (a *Allocator) growPage() error {
	if a.cfg.MaxPages != 0 && a.stats.PagesInUse >= a.cfg.MaxPages {
		return fmt.Errorf("objpool: allocate: %w", ErrNoPages)
	}

	raw, err := a.host.Alloc(a.layout.PageSize)
	if err != nil {
		return fmt.Errorf("objpool: allocate: %w: %v", ErrNoMemory, err)
	}

	page := &Page{Data: raw, Next: a.pageHead}
	a.pageHead = page
	a.stats.PagesInUse++

	if a.debugOn {
		fillPattern(page.Data, PatternAlign)
	}

	headerSize := a.cfg.Header.Size()
	pad := a.cfg.PadBytes
	for i := 0; i < a.cfg.ObjectsPerPage; i++ {
		off := a.layout.PageHeader + i*a.layout.Stride
		s := slot{page, off}

		clear(page.Data[off-pad-headerSize : off-pad])

		a.pushFree(s.addr())

		if a.debugOn {
			body := a.bodySlice(s)
			fillPattern(body[layout.PointerSize:], PatternUnallocated)
			fillPattern(a.leftPad(s), PatternPad)
			fillPattern(a.rightPad(s), PatternPad)
		}
	}
	return nil
}

func pageBase(p *Page) uintptr {
	if len(p.Data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&p.Data[0]))
}
