// Package row turns loosely-typed result rows into typed entities.
//
// A Row is an ordered list of columns, each holding a Value that is absent,
// text, a number or a boolean. Scan builds rows from *sql.Rows; Materialize
// coerces a row into a struct through its schema descriptor, matching column
// names to fields without regard to case.
package row
