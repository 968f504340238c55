package zotero

import (
	"bytes"
	"reflect"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Encode converts an item into the form returned by the API. Unknown members
// are written back next to the modeled ones; modeled members win on conflict.
func Encode(item *Item) []byte {
	obj := object{}
	obj.merge(item.Unknown)
	obj.set("key", item.Key)
	obj.set("version", item.Version)
	obj["library"] = encodeLibrary(item.Library).bytes()
	obj["data"] = dataObject(item).bytes()
	return obj.bytes()
}

// EncodeData returns the data object of the item, including key and version,
// as it is sent to the write api.
func EncodeData(item *Item) []byte {
	return dataObject(item).bytes()
}

// EncodeContent returns the content as a bare data object.
func EncodeContent(content Content) []byte {
	return contentObject(content).bytes()
}

// object is a JSON object under construction. Members are written in key
// order and values are used as they are, so nothing gets HTML escaped.
type object map[string]json.RawMessage

func (o object) set(key string, v interface{}) {
	o[key] = mustMarshal(v)
}

// merge copies unknown members. Their bytes are kept as they were received.
func (o object) merge(fields Fields) {
	for key, raw := range fields {
		if !json.Valid(raw) {
			logger.Panicf("unknown member %s is not valid JSON: %s", key, raw)
		}
		o[key] = raw
	}
}

func (o object) bytes() []byte {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(mustMarshal(key))
		buf.WriteByte(':')
		buf.Write(o[key])
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func array(values []json.RawMessage) json.RawMessage {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	for i, value := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(value)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func dataObject(item *Item) object {
	if item.Content == nil {
		logger.Panicf("item %v has no content", item.Key)
	}
	obj := contentObject(item.Content)
	obj.set("key", item.Key)
	obj.set("version", item.Version)
	return obj
}

func contentObject(content Content) object {
	schema, err := SchemaFor(content.ItemType())
	if err != nil {
		logger.Panicf("registry and content disagree: %v", err)
	}
	v := reflect.ValueOf(content)
	if v.Kind() != reflect.Ptr || v.Elem().Type() != schema.goType {
		logger.Panicf("content of type %T is not registered as %s", content, schema.Type)
	}
	v = v.Elem()

	obj := object{}
	obj.merge(content.Common().Unknown)
	obj.set("itemType", string(schema.Type))
	for _, fd := range schema.Fields {
		value, ok := encodeField(fd, v.FieldByIndex(fd.index))
		if !ok {
			continue
		}
		obj[fd.Name] = value
	}
	return obj
}

func encodeField(fd FieldDescriptor, src reflect.Value) (json.RawMessage, bool) {
	if src.Kind() == reflect.String {
		return mustMarshal(src.String()), true
	}
	if src.IsNil() {
		return nil, false
	}
	switch fd.Kind {
	case Kind_String, Kind_URL, Kind_ISBN, Kind_Date:
		return mustMarshal(src.Elem().String()), true
	case Kind_Count:
		return mustMarshal(strconv.FormatUint(src.Elem().Uint(), 10)), true
	case Kind_Integer:
		return mustMarshal(src.Elem().Int()), true
	case Kind_Creators:
		return encodeCreators(src.Interface().([]Creator)), true
	case Kind_Tags:
		return encodeTags(src.Interface().([]Tag)), true
	case Kind_Collections:
		return mustMarshal(src.Interface().([]CollectionID)), true
	case Kind_Relations:
		return encodeRelations(src.Interface().(Relations)).bytes(), true
	default:
		logger.Panicf("field %s has no encoder for kind %v", fd.Name, fd.Kind)
	}
	return nil, false
}

func encodeLibrary(lib Library) object {
	obj := object{}
	obj.merge(lib.Unknown)
	obj.set("id", lib.ID)
	if lib.Type != "" {
		obj.set("type", lib.Type)
	}
	if lib.Name != "" {
		obj.set("name", lib.Name)
	}
	return obj
}

// A creator without name is written with "name": null.
func encodeCreators(creators []Creator) json.RawMessage {
	result := make([]json.RawMessage, 0, len(creators))
	for _, c := range creators {
		obj := object{}
		obj.merge(c.Unknown)
		obj.set("creatorType", string(c.Role))
		switch name := c.Name.(type) {
		case nil:
			obj["name"] = json.RawMessage(`null`)
		case MergedName:
			obj.set("name", string(name))
		case SplitName:
			if name.First != nil {
				obj.set("firstName", *name.First)
			}
			if name.Last != nil {
				obj.set("lastName", *name.Last)
			}
		}
		result = append(result, obj.bytes())
	}
	return array(result)
}

func encodeTags(tags []Tag) json.RawMessage {
	result := make([]json.RawMessage, 0, len(tags))
	for _, t := range tags {
		obj := object{}
		obj.merge(t.Unknown)
		obj.set("tag", t.Name)
		if t.Type != 0 {
			obj.set("type", t.Type)
		}
		result = append(result, obj.bytes())
	}
	return array(result)
}

// Single values are written as string, as the service does. A nil list is
// written as null, an empty one as [].
func encodeRelations(relations Relations) object {
	obj := object{}
	for predicate, values := range relations {
		switch {
		case values == nil:
			obj[predicate] = json.RawMessage(`null`)
		case len(values) == 1:
			obj.set(predicate, values[0])
		default:
			obj.set(predicate, values)
		}
	}
	return obj
}

func mustMarshal(v interface{}) json.RawMessage {
	data, err := json.MarshalNoEscape(v)
	if err != nil {
		logger.Panicf("cannot marshal %T: %v", v, err)
	}
	return data
}
