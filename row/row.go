package row

import (
	"database/sql"
	"strings"
)

// Column is a named value in a row.
type Column struct {
	Name  string
	Value Value
}

// Row is an ordered mapping from column name to value.
type Row struct {
	cols []Column
}

// New builds a row from columns in order.
func New(cols ...Column) Row {
	return Row{cols: cols}
}

// Set appends a column, or replaces the value of an existing one with the same name.
func (r *Row) Set(name string, v Value) {
	for i := range r.cols {
		if r.cols[i].Name == name {
			r.cols[i].Value = v
			return
		}
	}
	r.cols = append(r.cols, Column{Name: name, Value: v})
}

// Get returns the value of a column, matching the name without regard to case.
func (r Row) Get(name string) (Value, bool) {
	for _, c := range r.cols {
		if strings.EqualFold(c.Name, name) {
			return c.Value, true
		}
	}
	return Value{}, false
}

// Columns returns the columns in order.
func (r Row) Columns() []Column { return r.cols }

// Len returns the number of columns.
func (r Row) Len() int { return len(r.cols) }

// First returns the first column's value, as used for returned identities.
func (r Row) First() (Value, bool) {
	if len(r.cols) == 0 {
		return Value{}, false
	}
	return r.cols[0].Value, true
}

// Scan reads every remaining row of rows. Rows with several result sets
// contribute the rows of the first set that has columns.
func Scan(rows *sql.Rows) ([]Row, error) {
	var out []Row
	for {
		names, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		guid := guidColumns(rows, len(names))
		for rows.Next() {
			raw := make([]any, len(names))
			ptrs := make([]any, len(names))
			for i := range raw {
				ptrs[i] = &raw[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return nil, err
			}
			r := Row{cols: make([]Column, len(names))}
			for i, name := range names {
				var v Value
				if b, ok := raw[i].([]byte); ok && guid[i] && len(b) == 16 {
					v, err = FromSQLServerGUID(b)
				} else {
					v, err = FromDriver(raw[i])
				}
				if err != nil {
					return nil, err
				}
				r.cols[i] = Column{Name: name, Value: v}
			}
			out = append(out, r)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		if len(out) > 0 || len(names) > 0 || !rows.NextResultSet() {
			break
		}
	}
	return out, nil
}

// guidColumns flags the SQL Server uniqueidentifier columns of the current
// result set. Drivers that do not report column types flag nothing.
func guidColumns(rows *sql.Rows, n int) []bool {
	flags := make([]bool, n)
	types, err := rows.ColumnTypes()
	if err != nil {
		return flags
	}
	for i, ct := range types {
		if i < n && strings.EqualFold(ct.DatabaseTypeName(), "UNIQUEIDENTIFIER") {
			flags[i] = true
		}
	}
	return flags
}
