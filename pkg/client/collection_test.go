package client

import (
	"testing"

	"lumbungwarga/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionPatchTouchesOnlyTarget(t *testing.T) {
	coll := NewCollection[types.NeedRequest](SyncPatch)

	items := []types.NeedRequest{
		{ID: "1", ItemName: "Beras", IsVerified: false},
		{ID: "2", ItemName: "Seragam", IsVerified: false},
		{ID: "3", ItemName: "Buku", IsVerified: false},
	}
	ticket := coll.Begin()
	require.True(t, coll.Complete(ticket, items))

	before := coll.Items()

	ok := coll.Patch("2", func(n types.NeedRequest) types.NeedRequest {
		n.IsVerified = true
		return n
	})
	require.True(t, ok)

	after := coll.Items()
	require.Len(t, after, 3)

	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])

	assert.True(t, after[1].IsVerified)
	assert.Equal(t, "Seragam", after[1].ItemName)
}

func TestCollectionPatchUnknownID(t *testing.T) {
	coll := NewCollection[types.NeedRequest](SyncPatch)
	coll.Complete(coll.Begin(), []types.NeedRequest{{ID: "1"}})

	assert.False(t, coll.Patch("missing", func(n types.NeedRequest) types.NeedRequest {
		n.IsVerified = true
		return n
	}))
}

func TestCollectionStaleResponseDiscarded(t *testing.T) {
	coll := NewCollection[types.StockItem](SyncRefetch)

	first := coll.Begin()
	second := coll.Begin()

	// The newer fetch resolves first.
	require.True(t, coll.Complete(second, []types.StockItem{{ID: "new"}}))

	// The older response arrives late and must not overwrite state.
	assert.False(t, coll.Complete(first, []types.StockItem{{ID: "old"}}))

	items := coll.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
}

func TestCollectionItemsIsASnapshot(t *testing.T) {
	coll := NewCollection[types.StockItem](SyncRefetch)
	coll.Complete(coll.Begin(), []types.StockItem{{ID: "1", Name: "Beras"}})

	snapshot := coll.Items()
	snapshot[0].Name = "changed"

	items := coll.Items()
	assert.Equal(t, "Beras", items[0].Name)
}

func TestCollectionPrependAndRemove(t *testing.T) {
	coll := NewCollection[types.Donation](SyncPatch)
	coll.Complete(coll.Begin(), []types.Donation{{ID: "1"}})

	coll.Prepend(types.Donation{ID: "2"})
	items := coll.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)

	require.True(t, coll.Remove("1"))
	assert.Equal(t, 1, coll.Len())
	assert.False(t, coll.Remove("1"))
}
