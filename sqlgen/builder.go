package sqlgen

import (
	"strings"

	"github.com/kbukum/fixturekit/schema"
)

// Statement is rendered SQL with its bound arguments in placeholder order.
type Statement struct {
	SQL  string
	Args []any
}

// Builder renders statements for one dialect.
type Builder struct {
	Dialect Dialect
}

// NewBuilder creates a Builder for d.
func NewBuilder(d Dialect) *Builder {
	return &Builder{Dialect: d}
}

// InsertReturningIdentity inserts the value columns and fetches the
// generated identity in the same batch.
func (b *Builder) InsertReturningIdentity(table string, c *schema.Container) Statement {
	return b.insert(InsertAutoIdentity, table, c.ValuePairs(), c.IdentityNames())
}

// InsertWithoutAutoIdentity inserts identity and value columns and returns
// the inserted identity.
func (b *Builder) InsertWithoutAutoIdentity(table string, c *schema.Container) Statement {
	return b.insert(InsertSuppliedIdentity, table, c.AllPairs(), c.IdentityNames())
}

// InsertWithExplicitIdentity inserts identity and value columns into a table
// whose identity column is store-generated, overriding the generator for the
// duration of the batch.
func (b *Builder) InsertWithExplicitIdentity(table string, c *schema.Container) Statement {
	return b.insert(InsertExplicitIdentity, table, c.AllPairs(), c.IdentityNames())
}

func (b *Builder) insert(mode InsertMode, table string, pairs []schema.Pair, identity []string) Statement {
	in := Insert{
		Mode:     mode,
		Table:    b.Dialect.Quote(table),
		Columns:  make([]string, len(pairs)),
		Params:   make([]string, len(pairs)),
		Identity: b.quoteAll(identity),
	}
	args := make([]any, len(pairs))
	for i, p := range pairs {
		in.Columns[i] = b.Dialect.Quote(p.Name)
		in.Params[i] = b.Dialect.Placeholder(i + 1)
		args[i] = p.Value
	}
	return Statement{SQL: b.Dialect.Insert(in), Args: args}
}

// SelectByIdentity selects the row matching every identity pair of c,
// with the values inlined.
func (b *Builder) SelectByIdentity(table string, c *schema.Container) Statement {
	sql := "SELECT * FROM " + b.Dialect.Quote(table) + " WHERE " + b.conditions(c.IdentityPairs(), " AND ")
	return Statement{SQL: b.Dialect.NullTolerant(sql)}
}

// SelectWhere selects the rows whose column equals value, bound as a parameter.
func (b *Builder) SelectWhere(table, column string, value any) Statement {
	sql := "SELECT * FROM " + b.Dialect.Quote(table) +
		" WHERE " + b.Dialect.Equal(b.Dialect.Quote(column), b.Dialect.Placeholder(1))
	return Statement{SQL: b.Dialect.NullTolerant(sql), Args: []any{value}}
}

// Update sets every value column of c on the row matching its identity
// pairs, with the values inlined.
func (b *Builder) Update(table string, c *schema.Container) Statement {
	sets := make([]string, 0, len(c.ValuePairs()))
	for _, p := range c.ValuePairs() {
		sets = append(sets, b.Dialect.Quote(p.Name)+" = "+b.Dialect.Literal(p.Value))
	}
	sql := "UPDATE " + b.Dialect.Quote(table) +
		" SET " + strings.Join(sets, ", ") +
		" WHERE " + b.conditions(c.IdentityPairs(), " AND ")
	return Statement{SQL: b.Dialect.NullTolerant(sql)}
}

// Delete removes the rows whose column equals the inlined value.
func (b *Builder) Delete(table, column string, value any) Statement {
	return Statement{SQL: "DELETE FROM " + b.Dialect.Quote(table) +
		" WHERE " + b.Dialect.Quote(column) + " = " + b.Dialect.Literal(value)}
}

func (b *Builder) conditions(pairs []schema.Pair, sep string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = b.Dialect.Equal(b.Dialect.Quote(p.Name), b.Dialect.Literal(p.Value))
	}
	return strings.Join(parts, sep)
}

func (b *Builder) quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = b.Dialect.Quote(n)
	}
	return out
}
