package zotero

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKey(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := CreateKey()
		assert.Len(t, key, 8)
		assert.True(t, IsKey(key), key)
		seen[key] = true
	}
	assert.Greater(t, len(seen), 90)
}

func TestIsKey(t *testing.T) {
	assert.True(t, IsKey("X42A7DEE"))
	assert.False(t, IsKey("X42A7DE"))
	assert.False(t, IsKey("X42A7DE0"), "0 is not a key char")
	assert.False(t, IsKey("X42A7DEO"), "O is not a key char")
	assert.False(t, IsKey("x42a7dee"))
}

func TestNewItem(t *testing.T) {
	lib := Library{Type: "user", ID: 42}
	item := NewItem(lib, &Book{Title: "Dune"})
	require.NotNil(t, item)
	assert.True(t, IsKey(item.Key))
	assert.Equal(t, uint64(0), item.Version)
	assert.Equal(t, uint64(42), item.LibraryID())
	assert.Equal(t, ItemType_Book, item.GetType())
	assert.Equal(t, "#42."+item.Key+" v0 [book]", item.String())
}

func TestItem_Acknowledge(t *testing.T) {
	item := &Item{Version: 10}
	item.Acknowledge(12)
	assert.Equal(t, uint64(12), item.Version)
	item.Acknowledge(11)
	assert.Equal(t, uint64(12), item.Version)
	assert.Equal(t, ItemType(""), item.GetType())
}

func TestCreator(t *testing.T) {
	person := NewPerson(CreatorRole_Author, "Frank", "Herbert")
	assert.Equal(t, "Herbert, Frank", person.Name.String())
	assert.False(t, person.Untyped())

	org := NewOrganization(CreatorRole("sponsorOfRecord"), "Chilton Books")
	assert.Equal(t, "Chilton Books", org.Name.String())
	assert.True(t, org.Untyped())

	assert.Equal(t, "Herbert", SplitName{Last: Ptr("Herbert")}.String())
	assert.Equal(t, "", SplitName{}.String())
}

func TestFields(t *testing.T) {
	f := Fields{}
	require.NoError(t, f.Set("meta", map[string]int{"numChildren": 2}))
	assert.Equal(t, `{"numChildren":2}`, string(f["meta"]))

	var meta struct {
		NumChildren int `json:"numChildren"`
	}
	ok, err := f.Get("meta", &meta)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, meta.NumChildren)

	var s string
	ok, err = f.Get("meta", &s)
	assert.True(t, ok)
	assert.Error(t, err)
}
