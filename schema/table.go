package schema

import "reflect"

// Tabler is implemented by entities whose table name differs from the type name.
// It matches gorm's convention so one method serves both.
type Tabler interface {
	TableName() string
}

// TableName resolves the physical table for a struct type.
func TableName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if tabler, ok := reflect.New(t).Interface().(Tabler); ok {
		if name := tabler.TableName(); name != "" {
			return name
		}
	}
	return t.Name()
}
