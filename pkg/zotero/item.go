package zotero

import (
	"fmt"
)

// Content is the type specific part of an item. It is implemented by the
// pointer types of the variants in itemContent.go.
type Content interface {
	ItemType() ItemType
	Common() *Base
}

type Library struct {
	Type string // "user" or "group"
	ID   uint64
	Name string

	Unknown Fields
}

// Item is the metadata of a library object composed with its content.
type Item struct {
	Key     string
	Version uint64
	Library Library
	Content Content

	// Unknown keeps envelope members which are not modeled (links, meta, ...).
	Unknown Fields
}

// NewItem creates an item which does not exist in the service yet.
func NewItem(library Library, content Content) *Item {
	return &Item{
		Key:     CreateKey(),
		Version: 0,
		Library: library,
		Content: content,
	}
}

func (item *Item) LibraryID() uint64 {
	return item.Library.ID
}

func (item *Item) GetType() ItemType {
	if item.Content == nil {
		return ""
	}
	return item.Content.ItemType()
}

// Acknowledge records the version the service assigned after a successful
// write. Versions never go backwards.
func (item *Item) Acknowledge(version uint64) {
	if version > item.Version {
		item.Version = version
	}
}

func (item *Item) String() string {
	return fmt.Sprintf("#%v.%v v%v [%v]", item.Library.ID, item.Key, item.Version, item.GetType())
}

func (item *Item) UnmarshalJSON(data []byte) error {
	i, err := Decode(data)
	if err != nil {
		return err
	}
	*item = *i
	return nil
}

func (item Item) MarshalJSON() ([]byte, error) {
	return Encode(&item), nil
}
