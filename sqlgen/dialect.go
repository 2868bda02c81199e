package sqlgen

import (
	"strconv"
	"strings"
)

// InsertMode selects how an insert obtains the row identity.
type InsertMode int

const (
	// InsertAutoIdentity inserts value columns and lets the store generate the identity.
	InsertAutoIdentity InsertMode = iota
	// InsertSuppliedIdentity inserts the identity columns as ordinary columns.
	InsertSuppliedIdentity
	// InsertExplicitIdentity inserts caller identities into a store-generated identity column.
	InsertExplicitIdentity
)

// Insert carries the quoted parts of an insert for a dialect to assemble.
type Insert struct {
	Mode     InsertMode
	Table    string
	Columns  []string
	Params   []string
	Identity []string
}

// Dialect renders the engine-specific parts of a statement.
type Dialect interface {
	// Name returns the driver name the dialect belongs to.
	Name() string
	// Quote quotes a table or column identifier.
	Quote(ident string) string
	// Placeholder returns the bound parameter marker for the n-th argument, starting at 1.
	Placeholder(n int) string
	// Literal renders an inline value.
	Literal(v any) string
	// Insert assembles an insert batch that yields the inserted identity.
	Insert(in Insert) string
	// Equal renders a comparison that treats two NULLs as equal when the
	// statement is wrapped by NullTolerant.
	Equal(column, value string) string
	// NullTolerant wraps a statement whose comparisons must match NULL.
	NullTolerant(stmt string) string
}

type sqlServer struct{}

// SQLServer returns the SQL Server dialect.
func SQLServer() Dialect { return sqlServer{} }

func (sqlServer) Name() string { return "sqlserver" }

func (sqlServer) Quote(ident string) string { return "[" + ident + "]" }

func (sqlServer) Placeholder(n int) string { return "@p" + strconv.Itoa(n) }

func (sqlServer) Literal(v any) string { return Literal(v) }

func (d sqlServer) Insert(in Insert) string {
	var b strings.Builder
	if in.Mode == InsertExplicitIdentity {
		b.WriteString("SET IDENTITY_INSERT " + in.Table + " ON; ")
	}
	b.WriteString("INSERT INTO " + in.Table)
	if in.Mode == InsertAutoIdentity {
		writeColumnsAndValues(&b, in, "")
		b.WriteString("; SELECT CAST(SCOPE_IDENTITY() AS int)")
		return b.String()
	}
	writeColumnsAndValues(&b, in, d.output(in.Identity))
	if in.Mode == InsertExplicitIdentity {
		b.WriteString("; SET IDENTITY_INSERT " + in.Table + " OFF;")
	}
	return b.String()
}

func (sqlServer) output(identity []string) string {
	if len(identity) == 0 {
		return "OUTPUT INSERTED.*"
	}
	cols := make([]string, len(identity))
	for i, c := range identity {
		cols[i] = "INSERTED." + c
	}
	return "OUTPUT " + strings.Join(cols, ", ")
}

func (sqlServer) Equal(column, value string) string { return column + " = " + value }

func (sqlServer) NullTolerant(stmt string) string {
	return "SET ANSI_NULLS OFF; " + stmt + "; SET ANSI_NULLS ON;"
}

type sqlite struct{}

// SQLite returns the SQLite dialect.
func SQLite() Dialect { return sqlite{} }

func (sqlite) Name() string { return "sqlite" }

func (sqlite) Quote(ident string) string { return `"` + ident + `"` }

func (sqlite) Placeholder(int) string { return "?" }

func (sqlite) Literal(v any) string { return Literal(v) }

func (sqlite) Insert(in Insert) string {
	var b strings.Builder
	b.WriteString("INSERT INTO " + in.Table)
	writeColumnsAndValues(&b, in, "")
	b.WriteString(" " + returning(in.Identity))
	return b.String()
}

func (sqlite) Equal(column, value string) string { return column + " IS " + value }

func (sqlite) NullTolerant(stmt string) string { return stmt }

type postgres struct{}

// Postgres returns the PostgreSQL dialect.
func Postgres() Dialect { return postgres{} }

func (postgres) Name() string { return "postgres" }

func (postgres) Quote(ident string) string { return `"` + ident + `"` }

func (postgres) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (postgres) Literal(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "TRUE"
		}
		return "FALSE"
	}
	return Literal(v)
}

func (postgres) Insert(in Insert) string {
	var b strings.Builder
	b.WriteString("INSERT INTO " + in.Table)
	clause := ""
	if in.Mode == InsertExplicitIdentity {
		clause = "OVERRIDING SYSTEM VALUE"
	}
	writeColumnsAndValues(&b, in, clause)
	b.WriteString(" " + returning(in.Identity))
	return b.String()
}

func (postgres) Equal(column, value string) string {
	return column + " IS NOT DISTINCT FROM " + value
}

func (postgres) NullTolerant(stmt string) string { return stmt }

// writeColumnsAndValues writes " (cols) [clause] VALUES (params)", or
// " [clause] DEFAULT VALUES" when there is nothing to insert.
func writeColumnsAndValues(b *strings.Builder, in Insert, clause string) {
	if len(in.Columns) == 0 {
		if clause != "" {
			b.WriteString(" " + clause)
		}
		b.WriteString(" DEFAULT VALUES")
		return
	}
	b.WriteString(" (" + strings.Join(in.Columns, ", ") + ")")
	if clause != "" {
		b.WriteString(" " + clause)
	}
	b.WriteString(" VALUES (" + strings.Join(in.Params, ", ") + ")")
}

func returning(identity []string) string {
	if len(identity) == 0 {
		return "RETURNING *"
	}
	return "RETURNING " + strings.Join(identity, ", ")
}

var dialects = map[string]Dialect{
	"sqlserver": SQLServer(),
	"mssql":     SQLServer(),
	"sqlite":    SQLite(),
	"sqlite3":   SQLite(),
	"postgres":  Postgres(),
	"pgx":       Postgres(),
}

// ForDriver returns the dialect for a database driver name.
func ForDriver(name string) (Dialect, bool) {
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}
