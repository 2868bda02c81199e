package row

import (
	"reflect"

	apperrors "github.com/kbukum/fixturekit/errors"
	"github.com/kbukum/fixturekit/schema"
)

// Materialize builds a new T from r.
func Materialize[T any](r Row) (*T, error) {
	out := new(T)
	if err := MaterializeInto(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MaterializeInto assigns the columns of r to the matching fields of dst,
// a pointer to struct. Columns without a matching field are ignored.
func MaterializeInto(r Row, dst any) error {
	sv, err := schema.StructValue(dst)
	if err != nil {
		return err
	}
	d, err := schema.Describe(sv.Type())
	if err != nil {
		return apperrors.InvalidEntity(err.Error())
	}
	for _, c := range r.cols {
		f, ok := d.Lookup(c.Name)
		if !ok {
			continue
		}
		if err := Coerce(c.Value, f, sv.FieldByIndex(f.Index)); err != nil {
			return err
		}
	}
	return nil
}

// Coerce stores v into the field value dst. Absent values clear the field;
// anything else is converted from its textual form.
func Coerce(v Value, f schema.Field, dst reflect.Value) error {
	if v.IsAbsent() {
		f.Clear(dst)
		return nil
	}
	raw := v.String()
	if err := f.Assign(dst, raw); err != nil {
		return apperrors.Materialization(f.Name, raw, err)
	}
	return nil
}
