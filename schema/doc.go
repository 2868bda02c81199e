// Package schema classifies entity structs into identity and value fields.
//
// A Descriptor is derived once per struct type from its exported fields and
// `factory` struct tags, then cached. Everything downstream (statement
// building, materialization, identity back-assignment) works from the
// descriptor rather than inspecting the type again.
//
// # Field rules
//
// A field is an identity field when its name is "Id", "<TypeName>Id" or
// "<TypeName>_Id" (case-insensitive, so ID and EmployeeID match) or when it
// is tagged with the key option. Unexported fields, fields tagged "-" or
// with the computed option, and fields of reference kinds other than string
// (structs, slices, maps, pointers to structs, ...) are excluded. time.Time
// and types implementing encoding.TextMarshaler are treated as scalars.
//
//	type Employee struct {
//	    EmployeeID int       `factory:"id"`
//	    Name       string
//	    Dob        time.Time `factory:"DateOfBirth"`
//	    Badge      string    `factory:",key"`
//	    Age        int       `factory:",computed"`
//	    Manager    *Employee // excluded, relation
//	}
package schema
