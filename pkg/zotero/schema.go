package zotero

import (
	"reflect"
	"strings"
)

// Kind is the semantic value type of a field.
type Kind int

const (
	Kind_String      Kind = iota
	Kind_URL              // text, not resolved
	Kind_ISBN             // text, checksum not verified
	Kind_Date             // text, not parsed
	Kind_Count            // small unsigned number, decimal string on the wire
	Kind_Integer          // JSON number
	Kind_Creators         // list of creator objects
	Kind_Tags             // list of tag objects
	Kind_Collections      // list of collection keys
	Kind_Relations        // predicate -> string or list of strings
)

var KindString = map[Kind]string{
	Kind_String:      "string",
	Kind_URL:         "url",
	Kind_ISBN:        "isbn",
	Kind_Date:        "date",
	Kind_Count:       "count",
	Kind_Integer:     "integer",
	Kind_Creators:    "creators",
	Kind_Tags:        "tags",
	Kind_Collections: "collections",
	Kind_Relations:   "relations",
}

func (k Kind) String() string {
	if s, ok := KindString[k]; ok {
		return s
	}
	return "unknown"
}

var kindByType = map[reflect.Type]Kind{
	reflect.TypeOf(""):                  Kind_String,
	reflect.TypeOf((*string)(nil)):      Kind_String,
	reflect.TypeOf((*URL)(nil)):         Kind_URL,
	reflect.TypeOf((*ISBN)(nil)):        Kind_ISBN,
	reflect.TypeOf((*Date)(nil)):        Kind_Date,
	reflect.TypeOf((*uint16)(nil)):      Kind_Count,
	reflect.TypeOf((*int64)(nil)):       Kind_Integer,
	reflect.TypeOf([]Creator(nil)):      Kind_Creators,
	reflect.TypeOf([]Tag(nil)):          Kind_Tags,
	reflect.TypeOf([]CollectionID(nil)): Kind_Collections,
	reflect.TypeOf(Relations(nil)):      Kind_Relations,
}

type FieldDescriptor struct {
	Name     string
	Required bool
	Kind     Kind

	index []int
}

// Schema is the field set of one item type, in declaration order.
type Schema struct {
	Type   ItemType
	Fields []FieldDescriptor

	goType reflect.Type
	byName map[string]int
}

// Field returns the descriptor of the named field.
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	i, ok := s.byName[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.Fields[i], true
}

// Required lists the names of the required fields.
func (s *Schema) Required() []string {
	var result []string
	for _, fd := range s.Fields {
		if fd.Required {
			result = append(result, fd.Name)
		}
	}
	return result
}

func (s *Schema) newContent() Content {
	return reflect.New(s.goType).Interface().(Content)
}

type schemaRegistry struct {
	types   []ItemType
	schemas map[ItemType]*Schema
}

var registry = buildRegistry(prototypes)

// SchemaFor returns the schema of the given item type.
func SchemaFor(t ItemType) (*Schema, error) {
	s, ok := registry.schemas[t]
	if !ok {
		return nil, unknownItemType(string(t))
	}
	return s, nil
}

// ItemTypes returns all known item types in registration order.
func ItemTypes() []ItemType {
	return append([]ItemType(nil), registry.types...)
}

func buildRegistry(protos []Content) *schemaRegistry {
	reg := &schemaRegistry{
		schemas: map[ItemType]*Schema{},
	}
	for _, proto := range protos {
		t := proto.ItemType()
		if _, ok := reg.schemas[t]; ok {
			logger.Panicf("item type %s registered twice", t)
		}
		if _, ok := defaultLocalizer.fallback.ItemTypes[string(t)]; !ok {
			logger.Panicf("item type %s has no default display name", t)
		}
		rt := reflect.TypeOf(proto).Elem()
		s := &Schema{
			Type:   t,
			goType: rt,
			byName: map[string]int{},
		}
		s.collect(rt, nil)
		reg.schemas[t] = s
		reg.types = append(reg.types, t)
	}
	return reg
}

func (s *Schema) collect(rt reflect.Type, index []int) {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		idx := append(append([]int{}, index...), i)
		if sf.Anonymous {
			s.collect(sf.Type, idx)
			continue
		}
		tag, ok := sf.Tag.Lookup("zotero")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		kind, ok := kindByType[sf.Type]
		if !ok {
			logger.Panicf("%s.%s: unsupported field type %v", rt.Name(), sf.Name, sf.Type)
		}
		required := opts == "required"
		if required && sf.Type.Kind() != reflect.String {
			logger.Panicf("%s.%s: required fields must be plain strings", rt.Name(), sf.Name)
		}
		if !required && sf.Type.Kind() == reflect.String {
			logger.Panicf("%s.%s: optional fields must be pointers", rt.Name(), sf.Name)
		}
		if name == "itemType" {
			logger.Panicf("%s.%s: itemType is reserved", rt.Name(), sf.Name)
		}
		if _, ok := s.byName[name]; ok {
			logger.Panicf("%s: field %s declared twice", rt.Name(), name)
		}
		s.byName[name] = len(s.Fields)
		s.Fields = append(s.Fields, FieldDescriptor{
			Name:     name,
			Required: required,
			Kind:     kind,
			index:    idx,
		})
	}
}
