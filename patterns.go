package objpool

// Signature byte patterns stamped into slot and pad memory under debug mode.
// Values are chosen to be visually distinct in a hex dump and to collide as
// rarely as possible with plausible object contents.
const (
	// PatternAllocated fills a slot's body the instant it is handed to a caller.
	PatternAllocated byte = 0xAB

	// PatternFreed fills a slot's body when it returns to the free list, aside
	// from the leading free-list link that overwrites its first PointerSize
	// bytes.
	PatternFreed byte = 0xDD

	// PatternUnallocated fills a never-yet-allocated slot's body (beyond the
	// free-list link) when its page is first initialized.
	PatternUnallocated byte = 0xCD

	// PatternAlign fills an entire page's bytes before slots are carved out of
	// it, so that any byte never explicitly stamped stands out as suspicious.
	PatternAlign byte = 0xEE

	// PatternPad fills the guard bytes flanking a slot's body.
	PatternPad byte = 0xFD
)

func fillPattern(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

func allBytes(b []byte, v byte) bool {
	for _, c := range b {
		if c != v {
			return false
		}
	}
	return true
}
