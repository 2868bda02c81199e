package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
)

// TagName is the struct tag read by the classifier.
const TagName = "factory"

// Role is the part a field plays in persistence.
type Role int

const (
	RoleValue Role = iota
	RoleIdentity
	RoleExcluded
)

func (r Role) String() string {
	switch r {
	case RoleIdentity:
		return "identity"
	case RoleValue:
		return "value"
	default:
		return "excluded"
	}
}

// Kind is the type tag of a persisted field.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindTime
	KindEnum
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindEnum:
		return "enum"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Field describes one struct field.
type Field struct {
	// Name is the Go field name.
	Name string
	// Column is the column name, the field name unless the tag overrides it.
	Column string
	Role   Role
	Kind   Kind
	// Nullable is set for pointer fields; a nil pointer is an absent value.
	Nullable bool
	// Type is the field's declared type.
	Type reflect.Type
	// Index is the path for reflect.Value.FieldByIndex.
	Index []int
}

// Persisted reports whether the field takes part in statements.
func (f Field) Persisted() bool { return f.Role != RoleExcluded }

// Descriptor is the cached classification of a struct type.
type Descriptor struct {
	Type   reflect.Type
	Name   string
	Table  string
	Fields []Field

	byName map[string]int
}

// Identity returns the identity fields in declaration order.
func (d *Descriptor) Identity() []Field {
	return d.withRole(RoleIdentity)
}

// Values returns the value fields in declaration order.
func (d *Descriptor) Values() []Field {
	return d.withRole(RoleValue)
}

// Persisted returns identity and value fields in declaration order.
func (d *Descriptor) Persisted() []Field {
	out := make([]Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Persisted() {
			out = append(out, f)
		}
	}
	return out
}

// SingleIdentity returns the only identity field of the type.
// ok is false when the type has zero or several identity fields.
func (d *Descriptor) SingleIdentity() (Field, bool) {
	ids := d.Identity()
	if len(ids) != 1 {
		return Field{}, false
	}
	return ids[0], true
}

// Lookup finds a persisted field by Go name or column name, ignoring case.
func (d *Descriptor) Lookup(name string) (Field, bool) {
	i, ok := d.byName[strings.ToUpper(name)]
	if !ok {
		return Field{}, false
	}
	return d.Fields[i], true
}

func (d *Descriptor) withRole(role Role) []Field {
	var out []Field
	for _, f := range d.Fields {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}

var descriptors sync.Map // reflect.Type -> *Descriptor

// Describe returns the descriptor for a struct type or pointer to struct type.
func Describe(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, fmt.Errorf("schema: nil type")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}
	if d, ok := descriptors.Load(t); ok {
		return d.(*Descriptor), nil
	}
	d := build(t)
	actual, _ := descriptors.LoadOrStore(t, d)
	return actual.(*Descriptor), nil
}

// DescribeOf returns the descriptor for T.
func DescribeOf[T any]() (*Descriptor, error) {
	return Describe(reflect.TypeFor[T]())
}

func build(t reflect.Type) *Descriptor {
	d := &Descriptor{
		Type:   t,
		Name:   t.Name(),
		Table:  TableName(t),
		byName: make(map[string]int),
	}
	identityNames := []string{"Id", d.Name + "Id", d.Name + "_Id"}
	collect(d, t, nil, identityNames)
	for i, f := range d.Fields {
		if !f.Persisted() {
			continue
		}
		for _, key := range []string{strings.ToUpper(f.Name), strings.ToUpper(f.Column)} {
			if _, taken := d.byName[key]; !taken {
				d.byName[key] = i
			}
		}
	}
	return d
}

func collect(d *Descriptor, t reflect.Type, parent []int, identityNames []string) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), parent...), i)

		if sf.Anonymous && sf.IsExported() && sf.Type.Kind() == reflect.Struct && sf.Type != timeType {
			if _, ok := textKind(sf.Type); !ok {
				collect(d, sf.Type, index, identityNames)
				continue
			}
		}

		tag := parseTag(sf.Tag.Get(TagName))
		f := Field{
			Name:   sf.Name,
			Column: sf.Name,
			Type:   sf.Type,
			Index:  index,
		}
		if tag.column != "" {
			f.Column = tag.column
		}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			f.Nullable = true
			ft = ft.Elem()
		}
		f.Kind = kindOf(ft)

		switch {
		case !sf.IsExported(), tag.ignore, tag.computed, f.Kind == KindInvalid:
			f.Role = RoleExcluded
		case tag.key || isIdentityName(sf.Name, identityNames):
			f.Role = RoleIdentity
		default:
			f.Role = RoleValue
		}
		d.Fields = append(d.Fields, f)
	}
}

func isIdentityName(name string, identityNames []string) bool {
	for _, candidate := range identityNames {
		if strings.EqualFold(name, candidate) {
			return true
		}
	}
	return false
}

var (
	timeType            = reflect.TypeFor[time.Time]()
	durationType        = reflect.TypeFor[time.Duration]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func kindOf(t reflect.Type) Kind {
	if t == timeType {
		return KindTime
	}
	if k, ok := textKind(t); ok {
		return k
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if t != durationType && t.PkgPath() != "" && t.Implements(stringerType) {
			return KindEnum
		}
		if t.Kind() >= reflect.Uint && t.Kind() <= reflect.Uint64 {
			return KindUint
		}
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	default:
		return KindInvalid
	}
}

// textKind reports whether t round-trips through MarshalText/UnmarshalText.
func textKind(t reflect.Type) (Kind, bool) {
	if t.Implements(textMarshalerType) && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return KindText, true
	}
	return KindInvalid, false
}

type tagOptions struct {
	column   string
	key      bool
	computed bool
	ignore   bool
}

// parseTag reads `factory:"column,key,computed"` or `factory:"-"`.
func parseTag(tag string) tagOptions {
	if tag == "-" {
		return tagOptions{ignore: true}
	}
	parts := strings.Split(tag, ",")
	opts := tagOptions{column: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		switch strings.TrimSpace(p) {
		case "key":
			opts.key = true
		case "computed":
			opts.computed = true
		}
	}
	return opts
}
