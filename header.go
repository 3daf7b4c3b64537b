package objpool

import (
	"github.com/joshuapare/objpool/internal/buf"
	"github.com/joshuapare/objpool/internal/layout"
)

// HeaderKind selects the per-slot header variant.
type HeaderKind uint8

const (
	// HeaderNone reserves no header bytes.
	HeaderNone HeaderKind = iota
	// HeaderBasic reserves an alloc_num/in_use pair, rewritten on every allocate.
	HeaderBasic
	// HeaderExtended reserves a user field and use_count in addition to the
	// basic pair; the user field and use_count persist across free/allocate
	// cycles of the same slot.
	HeaderExtended
	// HeaderExternal stores a stand-in for a pointer to an out-of-line
	// MemBlockInfo. The real metadata lives in the allocator's side table,
	// since encoding a live Go pointer into a raw byte slice would hide it
	// from the garbage collector.
	HeaderExternal
)

func (k HeaderKind) String() string {
	switch k {
	case HeaderNone:
		return "none"
	case HeaderBasic:
		return "basic"
	case HeaderExtended:
		return "extended"
	case HeaderExternal:
		return "external"
	default:
		return "unknown"
	}
}

const (
	basicAllocNumSize = 4
	basicFlagSize     = 1
	basicHeaderSize   = basicAllocNumSize + basicFlagSize

	extendedUseCountSize = 2
)

// HeaderConfig describes the header variant carried in front of every slot
// body, and (for HeaderExtended) the width of its persistent user field.
type HeaderConfig struct {
	Kind HeaderKind

	// AdditionalBytes is the width of the extended header's user field.
	// Meaningful only when Kind == HeaderExtended.
	AdditionalBytes int
}

// Size returns the number of header bytes reserved immediately before a
// slot's left pad.
func (h HeaderConfig) Size() int {
	switch h.Kind {
	case HeaderNone:
		return 0
	case HeaderBasic:
		return basicHeaderSize
	case HeaderExtended:
		return h.AdditionalBytes + extendedUseCountSize + basicHeaderSize
	case HeaderExternal:
		return layout.PointerSize
	default:
		return 0
	}
}

func (h HeaderConfig) basicAllocNumOffset() int { return 0 }

func (h HeaderConfig) extendedUseCountOffset() int { return h.AdditionalBytes }

func (h HeaderConfig) extendedAllocNumOffset() int {
	return h.AdditionalBytes + extendedUseCountSize
}

// InUseFlagOffset returns the offset, relative to the header's own start, of
// the in-use flag byte. The flag is always the header's final byte for both
// basic and extended layouts, so this is derived from Size() rather than
// hard-coded against a fixed pad-byte assumption (see the header-layout
// design notes in DESIGN.md).
func (h HeaderConfig) InUseFlagOffset() int {
	return h.Size() - 1
}

// MemBlockInfo is the out-of-line metadata associated with a HeaderExternal
// slot. Its lifetime is managed by the garbage collector; Free and page
// teardown only ever drop the allocator's own reference to it.
type MemBlockInfo struct {
	InUse    bool
	Label    string
	AllocNum uint32
}

// headerOps encapsulates the per-variant behavior of the header block:
// on_allocate and on_free from the design notes, dispatched once at
// construction rather than branched on every call.
type headerOps interface {
	onAllocate(a *Allocator, hdr []byte, addr uintptr, allocNum uint32, label string) error
	onFree(a *Allocator, hdr []byte, addr uintptr)
	onPageTeardown(a *Allocator, addr uintptr)
}

func newHeaderOps(kind HeaderKind) headerOps {
	switch kind {
	case HeaderBasic:
		return basicHeaderOps{}
	case HeaderExtended:
		return extendedHeaderOps{}
	case HeaderExternal:
		return externalHeaderOps{}
	default:
		return noneHeaderOps{}
	}
}

type noneHeaderOps struct{}

func (noneHeaderOps) onAllocate(*Allocator, []byte, uintptr, uint32, string) error { return nil }
func (noneHeaderOps) onFree(*Allocator, []byte, uintptr)                          {}
func (noneHeaderOps) onPageTeardown(*Allocator, uintptr)                          {}

type basicHeaderOps struct{}

func (basicHeaderOps) onAllocate(a *Allocator, hdr []byte, _ uintptr, allocNum uint32, _ string) error {
	h := a.cfg.Header
	buf.PutU32LE(hdr[h.basicAllocNumOffset():], allocNum)
	hdr[h.InUseFlagOffset()] = 1
	return nil
}

func (basicHeaderOps) onFree(_ *Allocator, hdr []byte, _ uintptr) {
	clear(hdr)
}

func (basicHeaderOps) onPageTeardown(*Allocator, uintptr) {}

type extendedHeaderOps struct{}

func (extendedHeaderOps) onAllocate(a *Allocator, hdr []byte, _ uintptr, allocNum uint32, _ string) error {
	h := a.cfg.Header
	useCountOff := h.extendedUseCountOffset()
	useCount := buf.U16LE(hdr[useCountOff:])
	buf.PutU16LE(hdr[useCountOff:], useCount+1)
	buf.PutU32LE(hdr[h.extendedAllocNumOffset():], allocNum)
	hdr[h.InUseFlagOffset()] = 1
	return nil
}

func (extendedHeaderOps) onFree(a *Allocator, hdr []byte, _ uintptr) {
	h := a.cfg.Header
	// Only the trailing alloc_num+flag subfield resets; the user field and
	// use_count persist across the slot's reuse.
	clear(hdr[h.extendedAllocNumOffset():])
}

func (extendedHeaderOps) onPageTeardown(*Allocator, uintptr) {}

type externalHeaderOps struct{}

func (externalHeaderOps) onAllocate(a *Allocator, hdr []byte, addr uintptr, allocNum uint32, label string) error {
	a.external[addr] = &MemBlockInfo{InUse: true, Label: label, AllocNum: allocNum}
	if len(hdr) >= layout.PointerSize {
		buf.PutU64LE(hdr, uint64(addr))
	}
	return nil
}

func (externalHeaderOps) onFree(a *Allocator, hdr []byte, addr uintptr) {
	delete(a.external, addr)
	clear(hdr)
}

func (externalHeaderOps) onPageTeardown(a *Allocator, addr uintptr) {
	delete(a.external, addr)
}
