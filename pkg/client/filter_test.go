package client

import (
	"testing"

	"lumbungwarga/pkg/types"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []types.NeedRequest {
	return []types.NeedRequest{
		{ID: "1", ItemName: "Beras 10kg", Description: "kebutuhan pokok", Category: types.NeedCategoryFood, IsUrgent: true, Requester: &types.Contact{Nama: "Siti"}},
		{ID: "2", ItemName: "Seragam SD", Description: "ukuran anak", Category: types.NeedCategoryClothes},
		{ID: "3", ItemName: "Buku tematik", Description: "kelas 5", Category: types.NeedCategoryEducation, Requester: &types.Contact{Nama: "Budi"}},
		{ID: "4", ItemName: "Minyak goreng", Description: "untuk dapur umum", Category: types.NeedCategoryFood},
	}
}

func needFields(n types.NeedRequest) []string {
	requester := ""
	if n.Requester != nil {
		requester = n.Requester.Nama
	}
	return []string{n.ItemName, n.Description, requester}
}

func TestFilterOrderIndependent(t *testing.T) {
	items := filterFixture()

	search := Search("a", needFields)
	category := Equals(string(types.NeedCategoryFood), func(n types.NeedRequest) string {
		return string(n.Category)
	})

	searchFirst := Apply(Apply(items, search), category)
	categoryFirst := Apply(Apply(items, category), search)
	composed := Apply(items, And(search, category))

	assert.Equal(t, searchFirst, categoryFirst)
	assert.Equal(t, searchFirst, composed)
}

func TestFilterIdempotent(t *testing.T) {
	items := filterFixture()

	pred := And(
		Search("beras", needFields),
		Equals(string(types.NeedCategoryFood), func(n types.NeedRequest) string {
			return string(n.Category)
		}),
	)

	once := Apply(items, pred)
	twice := Apply(once, pred)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 1)
	assert.Equal(t, "1", once[0].ID)
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	items := filterFixture()
	assert.Len(t, Apply(items, Search("", needFields)), len(items))
	assert.Len(t, Apply(items, Search("   ", needFields)), len(items))
}

func TestSearchMissingOptionalFields(t *testing.T) {
	// Entries without an embedded requester must not panic and must still
	// match on their other fields.
	items := filterFixture()

	matched := Apply(items, Search("minyak", needFields))
	assert.Len(t, matched, 1)
	assert.Equal(t, "4", matched[0].ID)

	assert.NotPanics(t, func() {
		Apply(items, Search("siti", needFields))
	})
}

func TestWherePredicate(t *testing.T) {
	items := filterFixture()

	urgentOnly := Apply(items, Where(true, func(n types.NeedRequest) bool { return n.IsUrgent }))
	assert.Len(t, urgentOnly, 1)
	assert.Equal(t, "1", urgentOnly[0].ID)

	all := Apply(items, Where(false, func(n types.NeedRequest) bool { return n.IsUrgent }))
	assert.Len(t, all, len(items))
}
