package objpool

// Allocate hands out a slot. label is only meaningful for the HeaderExternal
// variant, where it becomes the Label of the slot's MemBlockInfo in the
// allocator's side table; it is ignored otherwise.
func (a *Allocator) Allocate(label string) ([]byte, error) {
	if a.cfg.UseHostAllocator {
		return a.allocatePassthrough()
	}

	if a.freeHead == 0 {
		if err := a.growPage(); err != nil {
			return nil, err
		}
	}

	page, off, _ := a.pageAndOffset(a.freeHead)
	s := slot{page, off}
	addr := a.freeHead

	nextAllocNum := a.stats.Allocations + 1

	if a.cfg.Header.Kind == HeaderExternal {
		// The fallible part of header setup runs before the slot leaves the
		// free list, so a failure here never strands a popped-but-unowned
		// slot.
		if err := a.headerOps.onAllocate(a, a.headerSlice(s), addr, nextAllocNum, label); err != nil {
			return nil, err
		}
	}

	a.freeHead = readUintptrAt(addr)

	body := a.bodySlice(s)
	if a.debugOn {
		fillPattern(body, PatternAllocated)
	}

	a.stats.Allocations = nextAllocNum
	a.stats.ObjectsInUse++
	a.stats.FreeObjects--
	if a.stats.ObjectsInUse > a.stats.MostObjects {
		a.stats.MostObjects = a.stats.ObjectsInUse
	}

	if a.cfg.Header.Kind == HeaderBasic || a.cfg.Header.Kind == HeaderExtended {
		hdr := a.headerSlice(s)
		_ = a.headerOps.onAllocate(a, hdr, addr, a.stats.Allocations, label)
	}

	return body, nil
}
