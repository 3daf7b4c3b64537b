package objpool_test

import "unsafe"

// addrOf returns the address of a slice's first byte, for identity
// comparisons in tests (never used to synthesize a pointer back).
func addrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// headerOf returns the size header bytes that end padBytes before the start
// of slot body b. They lie in the same page buffer as b.
func headerOf(b []byte, padBytes, size int) []byte {
	start := unsafe.Add(unsafe.Pointer(&b[0]), -(padBytes + size))
	return unsafe.Slice((*byte)(start), size)
}
