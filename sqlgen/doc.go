// Package sqlgen renders the statements the fixture factory sends to the
// store.
//
// A Builder pairs the statement shapes with a Dialect. SQL Server is the
// canonical dialect; SQLite and PostgreSQL render the same shapes with their
// own quoting, placeholders and identity clauses.
//
// # Statement Shapes
//
// Inserts bind every value as a parameter. Select by identity, update and
// delete inline values as literals through Literal. Inlining literals is a
// trade-off for trusted test authors: identifiers are quoted but not escaped,
// and text literals only have their single quotes doubled.
//
// # Usage
//
//	b := sqlgen.NewBuilder(sqlgen.SQLServer())
//	stmt := b.InsertReturningIdentity("Employee", container)
//	// stmt.SQL:  INSERT INTO [Employee] ([Name]) VALUES (@p1); SELECT CAST(SCOPE_IDENTITY() AS int)
//	// stmt.Args: ["Ann"]
package sqlgen
