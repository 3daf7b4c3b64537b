package objpool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/objpool"
)

func TestValidatePagesZeroWhenDebugOff(t *testing.T) {
	a := newTestAllocator(t, objpool.Config{ObjectsPerPage: 4, PadBytes: 2})
	_, err := a.Allocate("")
	require.NoError(t, err)
	require.Equal(t, 0, a.ValidatePages(nil))
}

func TestValidatePagesZeroWhenNoPad(t *testing.T) {
	a := newTestAllocator(t, objpool.Config{ObjectsPerPage: 4, DebugOn: true, PadBytes: 0})
	_, err := a.Allocate("")
	require.NoError(t, err)
	require.Equal(t, 0, a.ValidatePages(nil))
}

func TestValidatePagesDetectsCorruption(t *testing.T) {
	a := newTestAllocator(t, objpool.Config{ObjectsPerPage: 4, DebugOn: true, PadBytes: 2})

	p, err := a.Allocate("")
	require.NoError(t, err)
	p[:len(p)+1 : len(p)+1][len(p)] = 0xFF

	var reported [][]byte
	count := a.ValidatePages(func(body []byte) { reported = append(reported, body) })
	require.Equal(t, 1, count)
	require.Len(t, reported, 1)
}

func TestDumpMemoryInUseCountsLeaks(t *testing.T) {
	a := newTestAllocator(t, objpool.Config{
		ObjectsPerPage: 4,
		Header:         objpool.HeaderConfig{Kind: objpool.HeaderBasic},
	})

	for i := 0; i < 3; i++ {
		_, err := a.Allocate("")
		require.NoError(t, err)
	}

	leaks := a.DumpMemoryInUse(nil)
	require.Equal(t, a.GetStats().ObjectsInUse, leaks)
}

func TestDumpMemoryInUseNoOpForNoneAndExternal(t *testing.T) {
	none := newTestAllocator(t, objpool.Config{ObjectsPerPage: 4})
	_, err := none.Allocate("")
	require.NoError(t, err)
	require.Equal(t, 0, none.DumpMemoryInUse(nil))

	ext := newTestAllocator(t, objpool.Config{
		ObjectsPerPage: 4,
		Header:         objpool.HeaderConfig{Kind: objpool.HeaderExternal},
	})
	_, err = ext.Allocate("leaked")
	require.NoError(t, err)
	require.Equal(t, 0, ext.DumpMemoryInUse(nil))
}
