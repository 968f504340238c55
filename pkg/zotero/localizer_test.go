package zotero

import (
	"os"
	"path/filepath"
	"testing"

	"emperror.dev/errors"
	"github.com/je4/zotitem/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		itemType ItemType
		locale   string
		want     string
	}{
		{ItemType_Book, "fr", "Livre"},
		{ItemType_Book, "fr-FR", "Livre"},
		{ItemType_Book, "fr_FR", "Livre"},
		{ItemType_Book, "de", "Buch"},
		{ItemType_Book, "de-CH", "Buch"},
		{ItemType_Book, "en-US", "Book"},
		{ItemType_Book, "", "Book"},
		{ItemType_Book, "ja", "Book"},
		{ItemType_Book, "xx-unsupported", "Book"},
		{ItemType_Book, "!!", "Book"},
		{ItemType_Webpage, "en-US", "Web Page"},
		{ItemType_Email, "en-US", "E-mail"},
		{ItemType("hologram"), "fr", "hologram"},
	}
	for _, tt := range tests {
		t.Run(string(tt.itemType)+"@"+tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.itemType, tt.locale))
		})
	}
	assert.Equal(t, "Livre", ItemType_Book.DisplayName("fr"))
}

func TestDisplayName_EveryTypeHasLabels(t *testing.T) {
	for _, locale := range DefaultLocalizer().Locales() {
		for _, it := range ItemTypes() {
			label := DisplayName(it, locale)
			assert.NotEmpty(t, label)
			assert.NotEqual(t, string(it), label, "%s has no label in %s", it, locale)
		}
	}
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Nb de pages", FieldLabel("numPages", "fr"))
	assert.Equal(t, "# of Pages", FieldLabel("numPages", "ja"))
	assert.Equal(t, "Titel", FieldLabel("title", "de-AT"))
	// missing in fr, taken from en-US
	assert.Equal(t, "Medium", FieldLabel("artworkMedium", "fr"))
	assert.Equal(t, "noSuchField", FieldLabel("noSuchField", "fr"))
}

func TestDefaultLocalizer_Locales(t *testing.T) {
	locales := DefaultLocalizer().Locales()
	require.NotEmpty(t, locales)
	assert.Equal(t, DefaultLocale, locales[0])
	assert.ElementsMatch(t, []string{"en-US", "de-DE", "fr-FR"}, locales)
}

func TestLocalizer_With(t *testing.T) {
	es, err := ParseLocaleTable("es-ES.yaml", []byte(`
locale: es-ES
itemTypes:
  book: Libro
fields:
  title: Título
`))
	require.NoError(t, err)
	fr, err := ParseLocaleTable("fr-FR.toml", []byte(`
locale = "fr-FR"
[itemTypes]
book = "Bouquin"
`))
	require.NoError(t, err)

	l := DefaultLocalizer().With(es, fr)
	assert.Equal(t, "Libro", l.DisplayName(ItemType_Book, "es"))
	assert.Equal(t, "Título", l.FieldLabel("title", "es-MX"))
	assert.Equal(t, "Thesis", l.DisplayName(ItemType_Thesis, "es"))
	assert.Equal(t, "Bouquin", l.DisplayName(ItemType_Book, "fr"))
	assert.Equal(t, "Buch", l.DisplayName(ItemType_Book, "de"))
	assert.Len(t, l.Locales(), 4)

	// the default localizer is not touched
	assert.Equal(t, "Book", DisplayName(ItemType_Book, "es"))
	assert.Equal(t, "Livre", DisplayName(ItemType_Book, "fr"))
}

func TestNewLocalizer_ReplacedFallback(t *testing.T) {
	en, err := ParseLocaleTable("en.toml", []byte(`
locale = "en-US"
[itemTypes]
book = "Volume"
`))
	require.NoError(t, err)

	l := NewLocalizer(en)
	assert.Equal(t, "Volume", l.DisplayName(ItemType_Book, "ja"))
	assert.Equal(t, "thesis", l.DisplayName(ItemType_Thesis, "en"))
	assert.Equal(t, []string{"en-US"}, l.Locales())
}

func TestParseLocaleTable_Errors(t *testing.T) {
	tests := map[string]string{
		"fr.json":    `{"locale":"fr"}`,
		"fr.toml":    `locale = `,
		"fr.yaml":    "locale: [",
		"none.toml":  `[itemTypes]`,
		"bad.toml":   `locale = "!!"`,
		"upper.YAML": "locale: ''",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			table, err := ParseLocaleTable(name, []byte(data))
			assert.Nil(t, table)
			assert.Error(t, err)
		})
	}
}

func TestLoadLocaleTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "locales"), 0o755))
	files := map[string]string{
		"it-IT.toml": "locale = \"it-IT\"\n[itemTypes]\nbook = \"Libro\"\n",
		"nl.yml":     "locale: nl-NL\nitemTypes:\n  book: Boek\n",
		"README.md":  "not a table",
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", name), []byte(data), 0o644))
	}

	fs, err := filesystem.NewLocalFs(dir, nil)
	require.NoError(t, err)

	tables, err := LoadLocaleTables(fs, "locales")
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "it-IT", tables[0].Locale)
	assert.Equal(t, "nl-NL", tables[1].Locale)

	l := DefaultLocalizer().With(tables...)
	assert.Equal(t, "Libro", l.DisplayName(ItemType_Book, "it"))
	assert.Equal(t, "Boek", l.DisplayName(ItemType_Book, "nl-BE"))

	_, err = LoadLocaleTable(fs, "locales", "pt-BR.toml")
	require.Error(t, err)
	assert.True(t, filesystem.IsNotFoundError(err))

	_, err = LoadLocaleTables(fs, "missing")
	require.Error(t, err)
	assert.True(t, filesystem.IsNotFoundError(err))
	assert.False(t, errors.Is(err, ErrUnknownItemType))
}

func TestNewLocalizer_TableLiterals(t *testing.T) {
	l := NewLocalizer(
		&LocaleTable{Locale: "en-US", ItemTypes: map[string]string{"book": "Book"}},
		&LocaleTable{Locale: "fr-FR", ItemTypes: map[string]string{"book": "Livre"}},
		&LocaleTable{Locale: "de_DE", ItemTypes: map[string]string{"book": "Buch"}},
		&LocaleTable{Locale: "!!", ItemTypes: map[string]string{"book": "Broken"}},
	)
	assert.Equal(t, []string{"en-US", "fr-FR", "de_DE"}, l.Locales())
	assert.Equal(t, "Book", l.DisplayName(ItemType_Book, "xx-unsupported"))
	assert.Equal(t, "Book", l.DisplayName(ItemType_Book, "ja"))
	assert.Equal(t, "Livre", l.DisplayName(ItemType_Book, "fr"))
	assert.Equal(t, "Buch", l.DisplayName(ItemType_Book, "de-DE"))

	replaced := l.With(&LocaleTable{Locale: "en-US", ItemTypes: map[string]string{"book": "Volume"}})
	assert.Equal(t, []string{"en-US", "fr-FR", "de_DE"}, replaced.Locales())
	assert.Equal(t, "Volume", replaced.DisplayName(ItemType_Book, "ja"))
	assert.Equal(t, "Book", l.DisplayName(ItemType_Book, "ja"))
}
