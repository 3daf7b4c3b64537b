package objpool

import "unsafe"

// slot names a slot by the page that owns it and its body's byte offset
// within that page. It is a lightweight locator, not a stored structure —
// the actual free-list and header state live in the page's bytes.
type slot struct {
	page *Page
	off  int
}

func (s slot) addr() uintptr {
	return uintptr(unsafe.Pointer(&s.page.Data[s.off]))
}

func (a *Allocator) bodySlice(s slot) []byte {
	return s.page.Data[s.off : s.off+a.objectSize]
}

func (a *Allocator) headerSlice(s slot) []byte {
	hs := a.cfg.Header.Size()
	pad := a.cfg.PadBytes
	return s.page.Data[s.off-pad-hs : s.off-pad]
}

func (a *Allocator) leftPad(s slot) []byte {
	return s.page.Data[s.off-a.cfg.PadBytes : s.off]
}

func (a *Allocator) rightPad(s slot) []byte {
	end := s.off + a.objectSize
	return s.page.Data[end : end+a.cfg.PadBytes]
}

// pageAndOffset walks the page list to find the page owning addr, returning
// its byte offset within that page. This implements the boundary check
// shared by Free and by the free-list traversal used to pop/push slots.
func (a *Allocator) pageAndOffset(addr uintptr) (*Page, int, bool) {
	for page := a.pageHead; page != nil; page = page.Next {
		base := pageBase(page)
		if base == 0 {
			continue
		}
		size := uintptr(len(page.Data))
		if addr >= base && addr < base+size {
			return page, int(addr - base), true
		}
	}
	return nil, 0, false
}

// readUintptrAt and writeUintptrAt read and write the free-list "next" link
// embedded in a free slot's body. addr always points at a byte owned by a
// page reachable from the allocator's page list, so the target memory stays
// live for as long as the uintptr itself is in use — the same invariant the
// Go runtime's own fixed-size allocator relies on for its free-list nodes.
func readUintptrAt(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

func writeUintptrAt(addr uintptr, v uintptr) {
	*(*uintptr)(unsafe.Pointer(addr)) = v
}

// pushFree threads addr onto the front of the free list and increments
// FreeObjects. Used both by the page initializer (every slot starts free)
// and by Free.
func (a *Allocator) pushFree(addr uintptr) {
	writeUintptrAt(addr, a.freeHead)
	a.freeHead = addr
	a.stats.FreeObjects++
}
