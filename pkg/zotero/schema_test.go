package zotero

import (
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTypes_Complete(t *testing.T) {
	types := ItemTypes()
	require.Len(t, types, 36)

	seen := map[ItemType]bool{}
	for _, it := range types {
		assert.False(t, seen[it], "duplicate item type %s", it)
		seen[it] = true

		schema, err := SchemaFor(it)
		require.NoError(t, err)
		assert.Equal(t, it, schema.Type)
		assert.Equal(t, it, schema.newContent().ItemType())
	}
	assert.Equal(t, ItemType_Artwork, types[0])
	assert.Equal(t, ItemType_Attachment, types[35])
}

func TestItemTypes_ReturnsCopy(t *testing.T) {
	types := ItemTypes()
	types[0] = "changed"
	assert.Equal(t, ItemType_Artwork, ItemTypes()[0])
}

func TestSchemaFor_UnknownType(t *testing.T) {
	schema, err := SchemaFor("spaceship")
	assert.Nil(t, schema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownItemType))

	var typeErr *UnknownItemTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "spaceship", typeErr.Type)
}

func TestSchema_RequiredFields(t *testing.T) {
	tests := []struct {
		itemType ItemType
		required []string
	}{
		{ItemType_Book, []string{"title"}},
		{ItemType_Artwork, []string{"title"}},
		{ItemType_BookSection, []string{"title", "bookTitle"}},
		{ItemType_Case, []string{"caseName"}},
		{ItemType_Email, []string{"subject"}},
		{ItemType_Statute, []string{"nameOfAct"}},
		{ItemType_Note, []string{"note"}},
		{ItemType_Attachment, []string{"linkMode"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.itemType), func(t *testing.T) {
			schema, err := SchemaFor(tt.itemType)
			require.NoError(t, err)
			assert.Equal(t, tt.required, schema.Required())
		})
	}
}

func TestSchema_FieldKinds(t *testing.T) {
	schema, err := SchemaFor(ItemType_Book)
	require.NoError(t, err)

	tests := map[string]Kind{
		"title":           Kind_String,
		"url":             Kind_URL,
		"ISBN":            Kind_ISBN,
		"date":            Kind_Date,
		"accessDate":      Kind_Date,
		"numberOfVolumes": Kind_Count,
		"numPages":        Kind_Count,
		"creators":        Kind_Creators,
		"tags":            Kind_Tags,
		"collections":     Kind_Collections,
		"relations":       Kind_Relations,
	}
	for name, kind := range tests {
		fd, ok := schema.Field(name)
		require.True(t, ok, "book has no field %s", name)
		assert.Equal(t, kind, fd.Kind, name)
		assert.Equal(t, name == "title", fd.Required, name)
	}

	_, ok := schema.Field("bookTitle")
	assert.False(t, ok, "book must not expose bookTitle")
	_, ok = schema.Field("itemType")
	assert.False(t, ok)
}

func TestSchema_VariantFieldsAreOwn(t *testing.T) {
	note, err := SchemaFor(ItemType_Note)
	require.NoError(t, err)
	for _, name := range []string{"creators", "title", "abstractNote", "url"} {
		_, ok := note.Field(name)
		assert.False(t, ok, "note must not expose %s", name)
	}

	program, err := SchemaFor(ItemType_ComputerProgram)
	require.NoError(t, err)
	_, ok := program.Field("language")
	assert.False(t, ok)
	_, ok = program.Field("programmingLanguage")
	assert.True(t, ok)

	attachment, err := SchemaFor(ItemType_Attachment)
	require.NoError(t, err)
	fd, ok := attachment.Field("mtime")
	require.True(t, ok)
	assert.Equal(t, Kind_Integer, fd.Kind)
}

func TestSchema_SharedFieldsFirst(t *testing.T) {
	schema, err := SchemaFor(ItemType_Artwork)
	require.NoError(t, err)

	var names []string
	for _, fd := range schema.Fields {
		names = append(names, fd.Name)
	}
	assert.Equal(t, []string{
		"tags", "collections", "relations", "parentItem", "dateAdded", "dateModified",
		"creators",
		"abstractNote", "shortTitle", "url", "accessDate", "rights", "extra",
		"archive", "archiveLocation", "libraryCatalog", "callNumber",
		"title", "artworkMedium", "artworkSize", "date", "language",
	}, names)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "count", Kind_Count.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
