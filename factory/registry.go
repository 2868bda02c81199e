package factory

import (
	"reflect"

	apperrors "github.com/kbukum/fixturekit/errors"
)

// Define registers builder as the factory for T. Each type can be
// defined once per session.
func Define[T any](s *Session, builder func() *T) error {
	t := reflect.TypeFor[T]()
	if builder == nil {
		return apperrors.InvalidInput("builder", "factory for "+t.String()+" is nil")
	}
	if _, exists := s.definitions[t]; exists {
		return apperrors.DuplicateFactory(t.Name())
	}
	s.definitions[t] = func() any { return builder() }
	s.order = append(s.order, t)
	return nil
}

// Build runs the factory for T and applies overrides in order. It never
// touches the store.
func Build[T any](s *Session, overrides ...func(*T)) (*T, error) {
	t := reflect.TypeFor[T]()
	builder, ok := s.definitions[t]
	if !ok {
		return nil, apperrors.FactoryNotFound(t.Name())
	}
	obj, _ := builder().(*T)
	if obj == nil {
		return nil, apperrors.InvalidEntity("factory for " + t.Name() + " returned nil")
	}
	for _, override := range overrides {
		if override != nil {
			override(obj)
		}
	}
	return obj, nil
}
