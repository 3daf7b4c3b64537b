// Package objpool implements a fixed-size object pool allocator.
//
// # Overview
//
// An Allocator services a stream of fixed-size Allocate/Free requests from a
// single client type by carving equally sized slots out of pages obtained
// from a HostAllocator, recycling freed slots through an internal free
// list. This amortizes general-purpose allocator cost and gives
// deterministic O(1) allocate/free at the price of a fixed object size per
// pool.
//
// # Debug Mode
//
// When Config.DebugOn is set, every slot transition stamps a signature byte
// pattern (PatternAllocated, PatternFreed, PatternUnallocated) across the
// slot body, and pad regions flanking each slot are stamped with
// PatternPad. Free then validates these patterns before returning a slot to
// the free list, surfacing ErrBadBoundary, ErrCorruptedBlock, and
// ErrMultipleFree instead of silently corrupting the pool. ValidatePages and
// DumpMemoryInUse are read-only inspectors that scan for pad corruption and
// leaked in-use slots respectively.
//
// # Header Variants
//
// Config.Header selects what, if anything, is stored immediately before
// each slot's body: HeaderNone reserves nothing, HeaderBasic stamps an
// allocation number and in-use flag on every allocate, HeaderExtended adds
// a persistent user field and use-count that survive free/allocate cycles,
// and HeaderExternal keeps its metadata (MemBlockInfo) in an out-of-line
// side table rather than in the slot itself, since a raw byte slice cannot
// safely hold a live Go pointer that the garbage collector needs to track.
//
// # Passthrough Mode
//
// Setting Config.UseHostAllocator bypasses the page/free-list machinery
// entirely: every Allocate and Free is forwarded straight to the
// HostAllocator, while Stats counters still update.
//
// # Thread Safety
//
// An Allocator is not safe for concurrent use. Every operation mutates the
// page-list and free-list heads; callers needing concurrent access must
// synchronize externally.
package objpool
