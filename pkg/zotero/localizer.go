package zotero

import (
	"embed"
	"path"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/bluele/gcache"
	"github.com/je4/zotitem/pkg/filesystem"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const DefaultLocale = "en-US"

// resolved locale strings kept per localizer
const localeCacheSize = 256

//go:embed locales/*.toml
var embeddedLocales embed.FS

// LocaleTable holds the display strings of one locale.
type LocaleTable struct {
	Locale    string            `toml:"locale" yaml:"locale"`
	ItemTypes map[string]string `toml:"itemTypes" yaml:"itemTypes"`
	Fields    map[string]string `toml:"fields" yaml:"fields"`
}

// Localizer renders item type and field names. It is immutable; the
// resolution cache is safe for concurrent use.
type Localizer struct {
	fallback *LocaleTable
	tables   []*LocaleTable
	tags     []language.Tag
	matcher  language.Matcher
	resolved gcache.Cache
}

var defaultLocalizer = mustDefaultLocalizer()

// DefaultLocalizer returns the localizer built from the embedded tables.
func DefaultLocalizer() *Localizer {
	return defaultLocalizer
}

// DisplayName returns the label of the item type in the given locale, falling
// back to en-US.
func DisplayName(t ItemType, locale string) string {
	return defaultLocalizer.DisplayName(t, locale)
}

// FieldLabel returns the label of a field in the given locale, falling back to en-US.
func FieldLabel(field, locale string) string {
	return defaultLocalizer.FieldLabel(field, locale)
}

func mustDefaultLocalizer() *Localizer {
	names, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		logger.Panicf("cannot read embedded locales: %v", err)
	}
	var fallback *LocaleTable
	var tables []*LocaleTable
	for _, entry := range names {
		data, err := embeddedLocales.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			logger.Panicf("cannot read embedded locale %s: %v", entry.Name(), err)
		}
		table, err := ParseLocaleTable(entry.Name(), data)
		if err != nil {
			logger.Panicf("invalid embedded locale %s: %v", entry.Name(), err)
		}
		if table.Locale == DefaultLocale {
			fallback = table
			continue
		}
		tables = append(tables, table)
	}
	if fallback == nil {
		logger.Panicf("no embedded %s locale", DefaultLocale)
	}
	return NewLocalizer(fallback, tables...)
}

// NewLocalizer creates a localizer. fallback is used for unsupported locales
// and for entries missing in the other tables. A later table replaces an
// earlier one of the same locale, the fallback included. Tables with an
// invalid locale are skipped.
func NewLocalizer(fallback *LocaleTable, tables ...*LocaleTable) *Localizer {
	l := &Localizer{}
	tag, err := parseLocale(fallback.Locale)
	if err != nil {
		logger.Warningf("fallback locale table: %v", err)
		tag = language.Und
	}
	l.tables = []*LocaleTable{fallback}
	l.tags = []language.Tag{tag}
	for _, table := range tables {
		tag, err := parseLocale(table.Locale)
		if err != nil {
			logger.Warningf("ignoring locale table: %v", err)
			continue
		}
		replaced := false
		for i, t := range l.tags {
			if t.String() == tag.String() {
				l.tables[i] = table
				replaced = true
				break
			}
		}
		if !replaced {
			l.tables = append(l.tables, table)
			l.tags = append(l.tags, tag)
		}
	}
	l.fallback = l.tables[0]
	l.matcher = language.NewMatcher(l.tags)
	l.resolved = gcache.New(localeCacheSize).
		LRU().
		LoaderFunc(func(key interface{}) (interface{}, error) {
			return l.match(key.(string)), nil
		}).
		Build()
	return l
}

// With returns a new localizer which additionally knows the given tables.
func (l *Localizer) With(tables ...*LocaleTable) *Localizer {
	return NewLocalizer(l.fallback, append(append([]*LocaleTable{}, l.tables[1:]...), tables...)...)
}

// Locales lists the supported locales, the fallback first.
func (l *Localizer) Locales() []string {
	result := make([]string, 0, len(l.tables))
	for _, t := range l.tables {
		result = append(result, t.Locale)
	}
	return result
}

func (l *Localizer) DisplayName(t ItemType, locale string) string {
	if s, ok := l.resolve(locale).ItemTypes[string(t)]; ok && s != "" {
		return s
	}
	if s, ok := l.fallback.ItemTypes[string(t)]; ok && s != "" {
		return s
	}
	return string(t)
}

func (l *Localizer) FieldLabel(field, locale string) string {
	if s, ok := l.resolve(locale).Fields[field]; ok && s != "" {
		return s
	}
	if s, ok := l.fallback.Fields[field]; ok && s != "" {
		return s
	}
	return field
}

func (l *Localizer) resolve(locale string) *LocaleTable {
	if locale == "" {
		return l.fallback
	}
	table, err := l.resolved.Get(locale)
	if err != nil {
		return l.fallback
	}
	return table.(*LocaleTable)
}

func (l *Localizer) match(locale string) *LocaleTable {
	tag, err := parseLocale(locale)
	if err != nil {
		logger.Debugf("unsupported locale: %v", err)
		return l.fallback
	}
	_, index, confidence := l.matcher.Match(tag)
	if confidence == language.No {
		return l.fallback
	}
	return l.tables[index]
}

// ParseLocaleTable reads a TOML or YAML locale table; the format is chosen by
// the extension of name.
func ParseLocaleTable(name string, data []byte) (*LocaleTable, error) {
	table := &LocaleTable{}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if _, err := toml.Decode(string(data), table); err != nil {
			return nil, errors.Wrapf(err, "cannot decode toml locale table %s", name)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, table); err != nil {
			return nil, errors.Wrapf(err, "cannot decode yaml locale table %s", name)
		}
	default:
		return nil, errors.Errorf("unknown locale table format %s", name)
	}
	if table.Locale == "" {
		return nil, errors.Errorf("locale table %s has no locale", name)
	}
	if _, err := parseLocale(table.Locale); err != nil {
		return nil, errors.Wrapf(err, "invalid locale table %s", name)
	}
	return table, nil
}

// parseLocale accepts BCP 47 tags and the underscore form (fr_FR).
func parseLocale(locale string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, errors.Wrapf(err, "invalid locale %q", locale)
	}
	return tag, nil
}

// LoadLocaleTable reads a single locale table from fs.
func LoadLocaleTable(fs filesystem.FileSystem, folder, name string) (*LocaleTable, error) {
	data, err := fs.FileGet(folder, name, filesystem.FileGetOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get %s/%s from %s", folder, name, fs.String())
	}
	return ParseLocaleTable(name, data)
}

// LoadLocaleTables reads all .toml, .yaml and .yml files of folder.
func LoadLocaleTables(fs filesystem.FileSystem, folder string) ([]*LocaleTable, error) {
	names, err := fs.FileList(folder)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list %s in %s", folder, fs.String())
	}
	var tables []*LocaleTable
	for _, name := range names {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".toml", ".yaml", ".yml":
		default:
			continue
		}
		table, err := LoadLocaleTable(fs, folder, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}
