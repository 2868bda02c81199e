package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var enums sync.Map // reflect.Type -> map[string]reflect.Value

// RegisterEnum records the members of an enum type so stored member names
// can be turned back into values. Enum types are named integer types with a
// String method; registration is only needed for reading them back.
//
//	schema.RegisterEnum(StatusActive, StatusRetired)
func RegisterEnum[E fmt.Stringer](members ...E) {
	names := make(map[string]reflect.Value, len(members))
	for _, m := range members {
		names[strings.ToUpper(m.String())] = reflect.ValueOf(m)
	}
	enums.Store(reflect.TypeFor[E](), names)
}

// EnumName returns the textual member name of an enum value.
func EnumName(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v.Interface())
}

// ParseEnum resolves a member name, or a numeric ordinal, into a value of type t.
func ParseEnum(t reflect.Type, name string) (reflect.Value, error) {
	if m, ok := enums.Load(t); ok {
		if v, found := m.(map[string]reflect.Value)[strings.ToUpper(strings.TrimSpace(name))]; found {
			return v, nil
		}
	}
	out := reflect.New(t).Elem()
	if err := setNumeric(out, name); err == nil {
		return out, nil
	}
	return reflect.Value{}, fmt.Errorf("%q is not a member of %s", name, t)
}
