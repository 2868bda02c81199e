package factory

import (
	"context"
	"errors"
	"reflect"

	apperrors "github.com/kbukum/fixturekit/errors"
	"github.com/kbukum/fixturekit/row"
	"github.com/kbukum/fixturekit/schema"
	"github.com/kbukum/fixturekit/sqlgen"
)

var (
	errNoRow      = errors.New("statement returned no row")
	errNoIdentity = errors.New("statement returned no identity")
)

type renderFunc func(b *sqlgen.Builder, table string, c *schema.Container) sqlgen.Statement

// Create builds a T and inserts it with a store-generated identity.
func Create[T any](ctx context.Context, s *Session, overrides ...func(*T)) (*T, error) {
	obj, err := Build(s, overrides...)
	if err != nil {
		return nil, err
	}
	return Insert(ctx, s, obj)
}

// Insert writes the value fields of obj and assigns the identity the store
// generated. obj is recorded for cleanup.
func Insert[T any](ctx context.Context, s *Session, obj *T) (*T, error) {
	return insert(ctx, s, obj, true, (*sqlgen.Builder).InsertReturningIdentity)
}

// CreateWithoutAutoIdentity builds a T and inserts it with the identity
// it already carries, into a table that does not generate identities.
func CreateWithoutAutoIdentity[T any](ctx context.Context, s *Session, overrides ...func(*T)) (*T, error) {
	obj, err := Build(s, overrides...)
	if err != nil {
		return nil, err
	}
	return InsertWithoutAutoIdentity(ctx, s, obj)
}

// InsertWithoutAutoIdentity writes identity and value fields of obj.
func InsertWithoutAutoIdentity[T any](ctx context.Context, s *Session, obj *T) (*T, error) {
	return insert(ctx, s, obj, false, (*sqlgen.Builder).InsertWithoutAutoIdentity)
}

// CreateWithExplicitIdentity builds a T and inserts it with the identity it
// carries, overriding the table's identity generator.
func CreateWithExplicitIdentity[T any](ctx context.Context, s *Session, overrides ...func(*T)) (*T, error) {
	obj, err := Build(s, overrides...)
	if err != nil {
		return nil, err
	}
	return InsertWithExplicitIdentity(ctx, s, obj)
}

// InsertWithExplicitIdentity writes identity and value fields of obj,
// overriding the table's identity generator for the batch.
func InsertWithExplicitIdentity[T any](ctx context.Context, s *Session, obj *T) (*T, error) {
	return insert(ctx, s, obj, false, (*sqlgen.Builder).InsertWithExplicitIdentity)
}

// DeleteThenCreateWithoutAutoIdentity removes any row with the identity of
// obj, then inserts obj as InsertWithoutAutoIdentity does.
func DeleteThenCreateWithoutAutoIdentity[T any](ctx context.Context, s *Session, obj *T) (*T, error) {
	if err := Delete(ctx, s, obj); err != nil {
		return nil, err
	}
	return InsertWithoutAutoIdentity(ctx, s, obj)
}

// DeleteThenCreateWithExplicitIdentity removes any row with the identity of
// obj, then inserts obj as InsertWithExplicitIdentity does.
func DeleteThenCreateWithExplicitIdentity[T any](ctx context.Context, s *Session, obj *T) (*T, error) {
	if err := Delete(ctx, s, obj); err != nil {
		return nil, err
	}
	return InsertWithExplicitIdentity(ctx, s, obj)
}

// CreateFromSQL runs a caller-written insert and takes the first column of
// its first row as the identity of obj. obj is recorded for cleanup.
func CreateFromSQL[T any](ctx context.Context, s *Session, obj *T, query string, args ...any) (*T, error) {
	_, d, err := schema.Classify(obj)
	if err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, opScript, d.Table, sqlgen.Statement{SQL: query, Args: args})
	if err != nil {
		return nil, err
	}
	if err := assignIdentity(obj, d, rows, opScript, true); err != nil {
		return nil, err
	}
	s.ledger = append(s.ledger, obj)
	return obj, nil
}

func insert[T any](ctx context.Context, s *Session, obj *T, generated bool, render renderFunc) (*T, error) {
	c, d, err := schema.Classify(obj)
	if err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, opInsert, d.Table, render(s.builder, d.Table, c))
	if err != nil {
		return nil, err
	}
	if err := assignIdentity(obj, d, rows, opInsert, generated); err != nil {
		return nil, err
	}
	s.ledger = append(s.ledger, obj)
	return obj, nil
}

// assignIdentity copies the identity returned by an insert into obj when
// the type has exactly one identity field. A generated identity must be
// present.
func assignIdentity(obj any, d *schema.Descriptor, rows []row.Row, op string, generated bool) error {
	if len(rows) == 0 {
		return apperrors.Persistence(op, d.Table, errNoRow)
	}
	f, ok := d.SingleIdentity()
	if !ok {
		return nil
	}
	v, found := rows[0].Get(f.Column)
	if !found {
		v, found = rows[0].First()
	}
	if !found || (generated && v.IsAbsent()) {
		return apperrors.Persistence(op, d.Table, errNoIdentity)
	}
	dst := reflect.ValueOf(obj).Elem().FieldByIndex(f.Index)
	if err := row.Coerce(v, f, dst); err != nil {
		return apperrors.Persistence(op, d.Table, err)
	}
	return nil
}

// Get reads the row matching every identity field of obj.
func Get[T any](ctx context.Context, s *Session, obj *T) (*T, error) {
	c, d, err := schema.Classify(obj)
	if err != nil {
		return nil, err
	}
	if len(c.IdentityPairs()) == 0 {
		return nil, apperrors.AmbiguousIdentity(d.Name, 0)
	}
	rows, err := s.query(ctx, opSelect, d.Table, s.builder.SelectByIdentity(d.Table, c))
	if err != nil {
		return nil, err
	}
	return first[T](rows, d.Table)
}

// Select reads the first row of T's table whose column equals value.
// Nothing but the supplied pair filters the row.
func Select[T any](ctx context.Context, s *Session, column string, value any) (*T, error) {
	d, err := schema.DescribeOf[T]()
	if err != nil {
		return nil, apperrors.InvalidEntity(err.Error())
	}
	if column == "" {
		return nil, apperrors.InvalidInput("column", "column is required")
	}
	value, err = bindValue(d, column, value)
	if err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, opSelect, d.Table, s.builder.SelectWhere(d.Table, column, value))
	if err != nil {
		return nil, err
	}
	return first[T](rows, d.Table)
}

// bindValue normalizes value the way Classify would when its type is the
// declared type of the matching field, so enums bind by member name.
func bindValue(d *schema.Descriptor, column string, value any) (any, error) {
	f, ok := d.Lookup(column)
	if !ok || value == nil || reflect.TypeOf(value) != f.Type {
		return value, nil
	}
	v, err := schema.ValueOf(f, reflect.ValueOf(value))
	if err != nil {
		return nil, apperrors.InvalidInput(column, err.Error())
	}
	return v, nil
}

func first[T any](rows []row.Row, table string) (*T, error) {
	if len(rows) == 0 {
		return nil, apperrors.RowNotFound(table)
	}
	return row.Materialize[T](rows[0])
}

// Update writes the value fields of obj to the row matching its identity.
func Update[T any](ctx context.Context, s *Session, obj *T) error {
	c, d, err := schema.Classify(obj)
	if err != nil {
		return err
	}
	if len(c.IdentityPairs()) == 0 {
		return apperrors.AmbiguousIdentity(d.Name, 0)
	}
	if len(c.ValuePairs()) == 0 {
		return apperrors.InvalidInput(d.Name, "no value fields to update")
	}
	return s.exec(ctx, opUpdate, d.Table, s.builder.Update(d.Table, c))
}

// Delete removes the row with the identity of obj. A nil obj or an absent
// identity is a no-op. T must have exactly one identity field.
func Delete[T any](ctx context.Context, s *Session, obj *T) error {
	if obj == nil {
		return nil
	}
	return s.delete(ctx, obj)
}

func (s *Session) delete(ctx context.Context, obj any) error {
	c, d, err := schema.Classify(obj)
	if err != nil {
		return err
	}
	ids := c.IdentityPairs()
	if len(ids) != 1 {
		return apperrors.AmbiguousIdentity(d.Name, len(ids))
	}
	if schema.IsAbsent(ids[0].Value) {
		return nil
	}
	return s.exec(ctx, opDelete, d.Table, s.builder.Delete(d.Table, ids[0].Name, ids[0].Value))
}
