package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	apperrors "github.com/kbukum/fixturekit/errors"
)

// Classify reads the current field values of obj, a struct or pointer to
// struct, into a Container. The container may have no identity fields;
// operations that need exactly one check that themselves.
func Classify(obj any) (*Container, *Descriptor, error) {
	rv, err := structValue(obj)
	if err != nil {
		return nil, nil, err
	}
	d, err := Describe(rv.Type())
	if err != nil {
		return nil, nil, apperrors.InvalidEntity(err.Error())
	}

	c := &Container{}
	for _, f := range d.Fields {
		if !f.Persisted() {
			continue
		}
		v, err := ValueOf(f, rv.FieldByIndex(f.Index))
		if err != nil {
			return nil, nil, apperrors.InvalidEntity(fmt.Sprintf("field %s: %v", f.Name, err))
		}
		if f.Role == RoleIdentity {
			c.AddIdentity(f.Column, v)
		} else {
			c.AddValue(f.Column, v)
		}
	}
	return c, d, nil
}

// ValueOf normalizes a field value for the store: nil for an absent pointer,
// the member name for enums, the marshaled text for text types and the
// basic kind for everything else.
func ValueOf(f Field, v reflect.Value) (any, error) {
	if f.Nullable {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	switch f.Kind {
	case KindBool:
		return v.Bool(), nil
	case KindInt:
		return v.Int(), nil
	case KindUint:
		return v.Uint(), nil
	case KindFloat:
		return v.Float(), nil
	case KindString:
		return v.String(), nil
	case KindTime:
		return v.Interface().(time.Time), nil
	case KindEnum:
		return EnumName(v), nil
	case KindText:
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return string(b), nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", f.Kind)
	}
}

// IsAbsent reports whether an identity value means "never persisted":
// nil, or the zero value of its kind.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.IsZero()
}

// StructValue returns the addressable struct behind obj.
func StructValue(obj any) (reflect.Value, error) {
	return structValue(obj)
}

func structValue(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, apperrors.InvalidEntity("nil value")
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, apperrors.InvalidEntity(fmt.Sprintf("nil %s", rv.Type()))
		}
		rv = rv.Elem()
	} else if rv.Kind() == reflect.Struct {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, apperrors.InvalidEntity(fmt.Sprintf("%s is not a struct", rv.Type()))
	}
	return rv, nil
}
