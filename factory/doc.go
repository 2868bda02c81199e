// Package factory builds test entities from registered recipes, persists
// them and deletes them again when the test is done.
//
// A Session holds the definitions and the creation ledger. Every operation
// classifies the entity with package schema, renders a statement with
// package sqlgen, runs it on one dedicated connection from a
// database.Connector and, for reads, materializes the row with package row.
//
//	s := factory.NewSession(db.Connector(), db.Dialect())
//	factory.Define(s, func() *Employee {
//	    return &Employee{Name: "Ann", Grade: GradeJunior}
//	})
//
//	emp, err := factory.Create(ctx, s, func(e *Employee) { e.Name = "Bob" })
//	// emp.Id now holds the generated identity
//
//	defer s.ClearAllCreated(ctx)
//
// # Identity
//
// A field is an identity field when its name is Id, <Type>Id or <Type>_Id,
// ignoring case, or when it is tagged factory:",key". Inserts assign the
// returned identity back only when the type has exactly one identity field.
// Delete and the cleanup sweep require exactly one; Get and Update accept
// several.
//
// # Literal values
//
// Get, Update and Delete inline values into the SQL text with
// sqlgen.Literal. Inserts and Select bind parameters. Sessions are meant
// for trusted test code only.
package factory
