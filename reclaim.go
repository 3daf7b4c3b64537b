package objpool

// FreeEmptyPages reclaims every page whose slots are all on the free list.
// Detection does not rely on the free list being sorted or contiguous: it
// walks the list once, counting hits per page. Returns the number of pages
// freed.
func (a *Allocator) FreeEmptyPages() int {
	if a.cfg.UseHostAllocator || a.pageHead == nil {
		return 0
	}

	empty := a.emptyPages()
	if len(empty) == 0 {
		return 0
	}

	for page := range empty {
		a.unlinkFreeSlotsIn(page)
		a.unlinkPage(page)
		a.teardownExternalHeaders(page)
		if err := a.host.Release(page.Data); err != nil {
			defaultLogger.Warn("objpool: release of reclaimed page failed", "error", err)
		}
		a.stats.PagesInUse--
	}
	return len(empty)
}

func (a *Allocator) emptyPages() map[*Page]bool {
	counts := make(map[*Page]int)
	for addr := a.freeHead; addr != 0; addr = readUintptrAt(addr) {
		page, _, ok := a.pageAndOffset(addr)
		if !ok {
			continue
		}
		counts[page]++
	}
	empty := make(map[*Page]bool, len(counts))
	for page, n := range counts {
		if n >= a.cfg.ObjectsPerPage {
			empty[page] = true
		}
	}
	return empty
}

// unlinkFreeSlotsIn removes every free-list node whose address lies inside
// page, handling the case where the free-list head itself falls inside it.
func (a *Allocator) unlinkFreeSlotsIn(page *Page) {
	var prev uintptr
	addr := a.freeHead
	for addr != 0 {
		next := readUintptrAt(addr)
		p, _, ok := a.pageAndOffset(addr)
		if ok && p == page {
			if prev == 0 {
				a.freeHead = next
			} else {
				writeUintptrAt(prev, next)
			}
			a.stats.FreeObjects--
			addr = next
			continue
		}
		prev = addr
		addr = next
	}
}

// unlinkPage removes page from the page list, handling the case where it is
// the current head.
func (a *Allocator) unlinkPage(page *Page) {
	if a.pageHead == page {
		a.pageHead = page.Next
		return
	}
	for cur := a.pageHead; cur != nil; cur = cur.Next {
		if cur.Next == page {
			cur.Next = page.Next
			return
		}
	}
}
