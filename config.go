package objpool

import (
	"errors"
	"fmt"
)

// Config is provided once at construction and fully determines an
// Allocator's page geometry and debug behavior.
type Config struct {
	// ObjectsPerPage is the number of slots carved from each page. Must be >= 1.
	ObjectsPerPage int

	// MaxPages caps the number of live pages; 0 means unlimited.
	MaxPages int

	// UseHostAllocator switches the allocator into passthrough mode: every
	// Allocate/Free delegates directly to Host, and the page/free-list
	// machinery is unused.
	UseHostAllocator bool

	// DebugOn enables signature-pattern stamping and the integrity checks
	// that depend on it.
	DebugOn bool

	// PadBytes is the width of the guard region on each side of a slot body.
	PadBytes int

	// Alignment is the required power-of-two byte alignment for a slot body
	// address; 0 means no requirement beyond the host allocator's own.
	Alignment int

	// Header selects the per-slot header variant.
	Header HeaderConfig

	// Host supplies and reclaims page-sized (or, in passthrough mode,
	// object-sized) byte regions. A nil Host defaults to the Go heap.
	Host HostAllocator

	// LeftAlignSize and InterAlignSize are derived by New and written back
	// here for callers that want to inspect the computed page geometry.
	LeftAlignSize  int
	InterAlignSize int
}

// DefaultConfig returns a Config with no header, no padding, no alignment
// requirement, and four objects per page — the minimal configuration needed
// to construct a working pool.
func DefaultConfig() Config {
	return Config{
		ObjectsPerPage: 4,
		Header:         HeaderConfig{Kind: HeaderNone},
	}
}

// Validate reports the first structural problem with c, if any. New calls
// this before deriving page geometry.
func (c Config) Validate() error {
	if c.ObjectsPerPage < 1 {
		return errors.New("objpool: ObjectsPerPage must be >= 1")
	}
	if c.MaxPages < 0 {
		return errors.New("objpool: MaxPages must be >= 0")
	}
	if c.PadBytes < 0 {
		return errors.New("objpool: PadBytes must be >= 0")
	}
	if c.Alignment < 0 || (c.Alignment != 0 && c.Alignment&(c.Alignment-1) != 0) {
		return fmt.Errorf("objpool: Alignment must be 0 or a power of two, got %d", c.Alignment)
	}
	if c.Header.Kind == HeaderExtended && c.Header.AdditionalBytes < 0 {
		return errors.New("objpool: Header.AdditionalBytes must be >= 0")
	}
	return nil
}
