package ordertree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTree_Delete checks exact post-delete structure for a handful of
// hand-picked cases, the way the teacher's suite pins down specific
// rotation/recolor outcomes rather than only checking aggregate
// validity. Each balance equals the account's address number k, so the
// shape matches a plain integer-keyed red-black tree.
func TestTree_Delete(t *testing.T) {
	t.Run("nil node", func(t *testing.T) {
		tr := New()
		require.NoError(t, tr.Insert(addr(20), Payload{Balance: bal(20)}))
		require.NoError(t, tr.Insert(addr(10), Payload{Balance: bal(10)}))
		require.NoError(t, tr.Insert(addr(30), Payload{Balance: bal(30)}))

		assert.ErrorIs(t, tr.Remove(sentinelAddress), ErrNullKey)

		rootView, err := tr.Node(addr(20))
		require.NoError(t, err)
		assert.Equal(t, sentinelAddress, rootView.Parent)
		assert.Equal(t, addr(10), rootView.Left)
		assert.Equal(t, addr(30), rootView.Right)
	})

	t.Run("left child delete, no fixup cases", func(t *testing.T) {
		tr := New()
		for _, k := range []int64{14, 11, 69, 3, 12, 50, 82, 1, 4, 77} {
			require.NoError(t, tr.Insert(addr(k), Payload{Balance: bal(uint64(k))}))
		}
		require.NoError(t, tr.Remove(addr(1)))
		require.NoError(t, tr.IsTreeValid())

		n3, err := tr.Node(addr(3))
		require.NoError(t, err)
		assert.Equal(t, Black, n3.Color)
		assert.Equal(t, sentinelAddress, n3.Left)
		assert.Equal(t, addr(4), n3.Right)

		n4, err := tr.Node(addr(4))
		require.NoError(t, err)
		assert.Equal(t, Red, n4.Color)
	})

	t.Run("successor transplant", func(t *testing.T) {
		tr := New()
		for _, k := range []int64{14, 11, 69, 3, 12, 50, 82, 1, 4, 77} {
			require.NoError(t, tr.Insert(addr(k), Payload{Balance: bal(uint64(k))}))
		}
		require.NoError(t, tr.Remove(addr(1)))
		require.NoError(t, tr.Remove(addr(11)))
		require.NoError(t, tr.IsTreeValid())

		rootView, err := tr.Node(addr(14))
		require.NoError(t, err)
		assert.Equal(t, addr(4), rootView.Left)

		n4, err := tr.Node(addr(4))
		require.NoError(t, err)
		assert.Equal(t, Red, n4.Color)
		assert.Equal(t, addr(3), n4.Left)
		assert.Equal(t, addr(12), n4.Right)

		n3, err := tr.Node(addr(3))
		require.NoError(t, err)
		assert.Equal(t, Black, n3.Color)

		n12, err := tr.Node(addr(12))
		require.NoError(t, err)
		assert.Equal(t, Black, n12.Color)
	})
}

// TestTree_RotateLeft_RotateRight checks an explicit left rotation and
// the right rotation that undoes it, in isolation, independent of the
// fixup routines that normally drive rotations.
func TestTree_RotateLeft_RotateRight(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert(addr(2), Payload{Balance: bal(2)}))
	require.NoError(t, tr.Insert(addr(1), Payload{Balance: bal(1)}))
	require.NoError(t, tr.Insert(addr(3), Payload{Balance: bal(3)}))
	require.NoError(t, tr.IsTreeValid())

	view, err := tr.Node(addr(2))
	require.NoError(t, err)
	assert.Equal(t, addr(1), view.Left)
	assert.Equal(t, addr(3), view.Right)

	tr.rotateLeft(tr.index[addr(2)])
	view, err = tr.Node(addr(3))
	require.NoError(t, err)
	assert.Equal(t, sentinelAddress, view.Parent)
	assert.Equal(t, addr(2), view.Left)
	view, err = tr.Node(addr(2))
	require.NoError(t, err)
	assert.Equal(t, addr(1), view.Left)
	assert.Equal(t, sentinelAddress, view.Right)

	tr.rotateRight(tr.index[addr(3)])
	view, err = tr.Node(addr(2))
	require.NoError(t, err)
	assert.Equal(t, sentinelAddress, view.Parent)
	assert.Equal(t, addr(1), view.Left)
	assert.Equal(t, addr(3), view.Right)
	require.NoError(t, tr.IsTreeValid())
}
