package zotero

import (
	"emperror.dev/errors"
	"github.com/goccy/go-json"
)

// URL, ISBN and Date are stored verbatim. The service accepts loosely typed
// dates ("spring 1965") and non-canonical ISBNs, so nothing is parsed.
type URL string
type ISBN string
type Date string

// CollectionID references a collection of the same library by key.
type CollectionID string

// Relations maps a predicate (e.g. "dc:relation", "owl:sameAs") to one or more
// object URIs. Unknown predicates are kept as they are.
type Relations map[string][]string

type Tag struct {
	Name string
	Type int // 0 manual, 1 automatic

	// Unknown keeps members of the tag object which are not modeled.
	Unknown Fields
}

// Fields holds unmodeled JSON members by name. Values are kept in compact form.
type Fields map[string]json.RawMessage

// Set stores v under key, marshalling it to JSON.
func (f Fields) Set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "cannot marshal value for %s", key)
	}
	f[key] = data
	return nil
}

// Get unmarshals the value stored under key into v. It reports false if the key
// is not present.
func (f Fields) Get(key string, v interface{}) (bool, error) {
	data, ok := f[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, errors.Wrapf(err, "cannot unmarshal value of %s", key)
	}
	return true, nil
}

// Base carries the members every item type shares.
type Base struct {
	Tags         []Tag          `zotero:"tags"`
	Collections  []CollectionID `zotero:"collections"`
	Relations    Relations      `zotero:"relations"`
	ParentItem   *string        `zotero:"parentItem"`
	DateAdded    *Date          `zotero:"dateAdded"`
	DateModified *Date          `zotero:"dateModified"`

	// Unknown keeps members of the data object the schema does not know about.
	Unknown Fields `zotero:"-"`
}

func (b *Base) Common() *Base {
	return b
}

// Authored is shared by all regular item types; notes and attachments have no creators.
type Authored struct {
	Creators []Creator `zotero:"creators"`
}

// Described groups the descriptive fields of all regular item types.
type Described struct {
	AbstractNote *string `zotero:"abstractNote"` // Abstract
	ShortTitle   *string `zotero:"shortTitle"`   // Short Title
	URL          *URL    `zotero:"url"`          // URL
	AccessDate   *Date   `zotero:"accessDate"`   // Accessed
	Rights       *string `zotero:"rights"`       // Rights
	Extra        *string `zotero:"extra"`        // Extra
}

// Cataloged groups the holding information of item types which can be archived.
type Cataloged struct {
	Archive         *string `zotero:"archive"`         // Archive
	ArchiveLocation *string `zotero:"archiveLocation"` // Loc. in Archive
	LibraryCatalog  *string `zotero:"libraryCatalog"`  // Library Catalog
	CallNumber      *string `zotero:"callNumber"`      // Call Number
}

// Ptr returns a pointer to v. Handy for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
