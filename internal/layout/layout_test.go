package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/objpool/internal/layout"
)

func TestAlignUpNoAlignment(t *testing.T) {
	require.Equal(t, 17, layout.AlignUp(17, 0))
}

func TestAlignUpRoundsToMultiple(t *testing.T) {
	require.Equal(t, 16, layout.AlignUp(9, 8))
	require.Equal(t, 8, layout.AlignUp(8, 8))
	require.Equal(t, 0, layout.AlignUp(0, 8))
}

func TestComputeUnaligned(t *testing.T) {
	// object_size=16, header=basic(5), pad_bytes=2, alignment=0, objects=4
	sizes := layout.Compute(16, 5, 2, 0, 4)

	wantPageHeader := layout.PointerSize + 5 + 2
	require.Equal(t, wantPageHeader, sizes.PageHeader)

	wantStride := 16 + 2*2 + 5
	require.Equal(t, wantStride, sizes.Stride)

	wantPageSize := wantPageHeader + wantStride*3 + 16 + 2
	require.Equal(t, wantPageSize, sizes.PageSize)

	require.Zero(t, sizes.LeftAlignSize)
	require.Zero(t, sizes.InterAlignSize)
}

func TestComputeAligned(t *testing.T) {
	sizes := layout.Compute(16, 5, 2, 8, 4)

	require.Zero(t, sizes.PageHeader%8)
	require.Zero(t, sizes.Stride%8)

	unalignedHeader := layout.PointerSize + 5 + 2
	unalignedStride := 16 + 2*2 + 5
	require.Equal(t, sizes.PageHeader-unalignedHeader, sizes.LeftAlignSize)
	require.Equal(t, sizes.Stride-unalignedStride, sizes.InterAlignSize)
	require.GreaterOrEqual(t, sizes.PageHeader, unalignedHeader)
	require.GreaterOrEqual(t, sizes.Stride, unalignedStride)
}

func TestComputeNoHeaderNoPad(t *testing.T) {
	sizes := layout.Compute(32, 0, 0, 0, 8)
	require.Equal(t, layout.PointerSize, sizes.PageHeader)
	require.Equal(t, 32, sizes.Stride)
	require.Equal(t, layout.PointerSize+32*7+32, sizes.PageSize)
}
