package zotero

import (
	"bytes"
	"reflect"
	"strconv"

	"emperror.dev/errors"
	"github.com/goccy/go-json"
)

// Decode converts an item as returned by the API
// ({"key", "version", "library", "data", ...}) into an Item. On error no item
// is returned.
func Decode(data []byte) (*Item, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode item")
	}

	item := &Item{}
	rawKey, ok := obj["key"]
	if !ok || isNull(rawKey) {
		return nil, missingField("key")
	}
	if err := json.Unmarshal(rawKey, &item.Key); err != nil {
		return nil, invalidField("key", "expected string, got %s", rawKey)
	}
	rawVersion, ok := obj["version"]
	if !ok || isNull(rawVersion) {
		return nil, missingField("version")
	}
	if item.Version, err = decodeUint(rawVersion, 64); err != nil {
		return nil, invalidField("version", "%v", err)
	}
	rawLibrary, ok := obj["library"]
	if !ok || isNull(rawLibrary) {
		return nil, missingField("library")
	}
	if item.Library, err = decodeLibrary(rawLibrary); err != nil {
		return nil, err
	}

	rawData, ok := obj["data"]
	if !ok || isNull(rawData) {
		return nil, missingField("data")
	}
	dataObj, err := decodeObject(rawData)
	if err != nil {
		return nil, invalidField("data", "expected object")
	}
	// data repeats key and version for the write api
	if raw, ok := dataObj["key"]; ok {
		var key string
		if err := json.Unmarshal(raw, &key); err != nil || key != item.Key {
			return nil, invalidField("data.key", "%s does not match item key %q", raw, item.Key)
		}
		delete(dataObj, "key")
	}
	if raw, ok := dataObj["version"]; ok {
		version, err := decodeUint(raw, 64)
		if err != nil || version != item.Version {
			return nil, invalidField("data.version", "%s does not match item version %v", raw, item.Version)
		}
		delete(dataObj, "version")
	}
	if item.Content, err = decodeContent(dataObj); err != nil {
		return nil, err
	}

	for key, raw := range obj {
		switch key {
		case "key", "version", "library", "data":
			continue
		}
		if item.Unknown == nil {
			item.Unknown = Fields{}
		}
		item.Unknown[key] = raw
	}
	return item, nil
}

// DecodeContent converts a bare data object ({"itemType": ..., ...}) into the
// content variant named by its itemType.
func DecodeContent(data []byte) (Content, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode item data")
	}
	return decodeContent(obj)
}

func decodeContent(obj map[string]json.RawMessage) (Content, error) {
	rawType, ok := obj["itemType"]
	if !ok || isNull(rawType) {
		return nil, missingField("itemType")
	}
	var itemType string
	if err := json.Unmarshal(rawType, &itemType); err != nil {
		return nil, invalidField("itemType", "expected string, got %s", rawType)
	}
	schema, err := SchemaFor(ItemType(itemType))
	if err != nil {
		return nil, err
	}

	content := schema.newContent()
	v := reflect.ValueOf(content).Elem()
	for _, fd := range schema.Fields {
		raw, ok := obj[fd.Name]
		if !ok || isNull(raw) {
			if fd.Required {
				return nil, missingField(fd.Name)
			}
			continue
		}
		if err := decodeField(fd, raw, v.FieldByIndex(fd.index)); err != nil {
			return nil, err
		}
	}

	var unknown Fields
	for key, raw := range obj {
		if key == "itemType" {
			continue
		}
		if _, ok := schema.byName[key]; ok {
			continue
		}
		if unknown == nil {
			unknown = Fields{}
		}
		unknown[key] = raw
	}
	if len(unknown) > 0 {
		logger.Debugf("%s: keeping %v unknown fields", itemType, len(unknown))
	}
	content.Common().Unknown = unknown
	return content, nil
}

func decodeField(fd FieldDescriptor, raw json.RawMessage, dst reflect.Value) error {
	switch fd.Kind {
	case Kind_String, Kind_URL, Kind_ISBN, Kind_Date:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return invalidField(fd.Name, "expected string, got %s", raw)
		}
		if dst.Kind() == reflect.String {
			dst.SetString(s)
			return nil
		}
		p := reflect.New(dst.Type().Elem())
		p.Elem().SetString(s)
		dst.Set(p)
	case Kind_Count:
		if raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return invalidField(fd.Name, "%v", err)
			}
			// the service sends "" for unset numeric fields
			if s == "" {
				return nil
			}
			raw = json.RawMessage(s)
		}
		n, err := decodeUint(raw, 16)
		if err != nil {
			return invalidField(fd.Name, "%v", err)
		}
		c := uint16(n)
		dst.Set(reflect.ValueOf(&c))
	case Kind_Integer:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return invalidField(fd.Name, "expected number, got %s", raw)
		}
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return invalidField(fd.Name, "%v", err)
		}
		dst.Set(reflect.ValueOf(&i))
	case Kind_Creators:
		creators, err := decodeCreators(raw)
		if err != nil {
			return invalidField(fd.Name, "%v", err)
		}
		dst.Set(reflect.ValueOf(creators))
	case Kind_Tags:
		tags, err := decodeTags(raw)
		if err != nil {
			return invalidField(fd.Name, "%v", err)
		}
		dst.Set(reflect.ValueOf(tags))
	case Kind_Collections:
		var keys []string
		if err := json.Unmarshal(raw, &keys); err != nil {
			return invalidField(fd.Name, "expected list of collection keys, got %s", raw)
		}
		collections := make([]CollectionID, 0, len(keys))
		for _, key := range keys {
			collections = append(collections, CollectionID(key))
		}
		dst.Set(reflect.ValueOf(collections))
	case Kind_Relations:
		relations, err := decodeRelations(raw)
		if err != nil {
			return invalidField(fd.Name, "%v", err)
		}
		dst.Set(reflect.ValueOf(relations))
	default:
		logger.Panicf("field %s has no decoder for kind %v", fd.Name, fd.Kind)
	}
	return nil
}

func decodeLibrary(raw json.RawMessage) (Library, error) {
	lib := Library{}
	obj, err := decodeObject(raw)
	if err != nil {
		return lib, invalidField("library", "expected object")
	}
	rawID, ok := obj["id"]
	if !ok || isNull(rawID) {
		return lib, missingField("library.id")
	}
	if lib.ID, err = decodeUint(rawID, 64); err != nil {
		return lib, invalidField("library.id", "%v", err)
	}
	for key, raw := range obj {
		switch key {
		case "id":
		case "type":
			if err := json.Unmarshal(raw, &lib.Type); err != nil {
				return lib, invalidField("library.type", "expected string, got %s", raw)
			}
		case "name":
			if err := json.Unmarshal(raw, &lib.Name); err != nil {
				return lib, invalidField("library.name", "expected string, got %s", raw)
			}
		default:
			if lib.Unknown == nil {
				lib.Unknown = Fields{}
			}
			lib.Unknown[key] = raw
		}
	}
	return lib, nil
}

func decodeCreators(raw json.RawMessage) ([]Creator, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Errorf("expected list of creators, got %s", raw)
	}
	creators := make([]Creator, 0, len(list))
	for i, entry := range list {
		c, err := decodeCreator(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "creator #%v", i)
		}
		if c.Untyped() {
			logger.Debugf("creator #%v: keeping unknown role %q", i, c.Role)
		}
		creators = append(creators, c)
	}
	return creators, nil
}

func decodeCreator(raw json.RawMessage) (Creator, error) {
	c := Creator{}
	obj, err := decodeObject(raw)
	if err != nil {
		return c, errors.Errorf("expected object, got %s", raw)
	}
	var role string
	rawRole, ok := obj["creatorType"]
	if !ok {
		return c, errors.New("missing creatorType")
	}
	if err := json.Unmarshal(rawRole, &role); err != nil {
		return c, errors.Errorf("creatorType: expected string, got %s", rawRole)
	}
	c.Role = CreatorRole(role)

	first, err := optionalString(obj, "firstName")
	if err != nil {
		return c, err
	}
	last, err := optionalString(obj, "lastName")
	if err != nil {
		return c, err
	}
	name, err := optionalString(obj, "name")
	if err != nil {
		return c, err
	}
	rawName, hasName := obj["name"]
	switch {
	case name != nil && (first != nil || last != nil):
		return c, errors.New("name cannot be combined with firstName or lastName")
	case name != nil:
		c.Name = MergedName(*name)
	case first == nil && last == nil && hasName && isNull(rawName):
		// "name": null is a creator without name
		c.Name = nil
	default:
		c.Name = SplitName{First: first, Last: last}
	}

	for key, raw := range obj {
		switch key {
		case "creatorType", "firstName", "lastName", "name":
			continue
		}
		if c.Unknown == nil {
			c.Unknown = Fields{}
		}
		c.Unknown[key] = raw
	}
	return c, nil
}

func decodeTags(raw json.RawMessage) ([]Tag, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Errorf("expected list of tags, got %s", raw)
	}
	tags := make([]Tag, 0, len(list))
	for i, entry := range list {
		entry = bytes.TrimSpace(entry)
		if len(entry) > 0 && entry[0] == '"' {
			var name string
			if err := json.Unmarshal(entry, &name); err != nil {
				return nil, errors.Wrapf(err, "tag #%v", i)
			}
			tags = append(tags, Tag{Name: name})
			continue
		}
		t, err := decodeTag(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "tag #%v", i)
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func decodeTag(raw json.RawMessage) (Tag, error) {
	t := Tag{}
	obj, err := decodeObject(raw)
	if err != nil {
		return t, errors.Errorf("invalid tag %s", raw)
	}
	name, err := optionalString(obj, "tag")
	if err != nil {
		return t, err
	}
	if name == nil {
		return t, errors.New("missing tag")
	}
	t.Name = *name
	for key, raw := range obj {
		switch key {
		case "tag":
		case "type":
			if isNull(raw) {
				continue
			}
			if err := json.Unmarshal(raw, &t.Type); err != nil {
				return t, errors.Errorf("type: expected number, got %s", raw)
			}
		default:
			if t.Unknown == nil {
				t.Unknown = Fields{}
			}
			t.Unknown[key] = raw
		}
	}
	return t, nil
}

// decodeRelations accepts the forms the service produces: an object whose
// values are a string or a list of strings, and an empty list for no relations.
// A null value is a predicate with a nil list.
func decodeRelations(raw json.RawMessage) (Relations, error) {
	if raw[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil || len(list) > 0 {
			return nil, errors.Errorf("invalid object list for relations - %s", raw)
		}
		return Relations{}, nil
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, errors.Errorf("expected object, got %s", raw)
	}
	relations := Relations{}
	for predicate, value := range obj {
		switch value[0] {
		case 'n':
			if !isNull(value) {
				return nil, errors.Errorf("relation %s: invalid value %s", predicate, value)
			}
			relations[predicate] = nil
		case '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, errors.Wrapf(err, "relation %s", predicate)
			}
			relations[predicate] = []string{s}
		case '[':
			list := []string{}
			if err := json.Unmarshal(value, &list); err != nil {
				return nil, errors.Errorf("relation %s: expected string list, got %s", predicate, value)
			}
			if list == nil {
				list = []string{}
			}
			relations[predicate] = list
		default:
			return nil, errors.Errorf("relation %s: invalid value %s", predicate, value)
		}
	}
	return relations, nil
}

func optionalString(obj map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Errorf("%s: expected string, got %s", key, raw)
	}
	return &s, nil
}

func decodeUint(raw json.RawMessage, bitSize int) (uint64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.Errorf("expected number, got %s", raw)
	}
	u, err := strconv.ParseUint(n.String(), 10, bitSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %s", n)
	}
	return u, nil
}

// decodeObject splits a JSON object into its members. Member values keep the
// bytes they were received with, so unmodeled values are written back unchanged.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, errors.New("expected JSON object")
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal object")
	}
	for key, raw := range obj {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return nil, errors.Errorf("member %s has no value", key)
		}
		obj[key] = append(json.RawMessage{}, raw...)
	}
	return obj, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
