package sqlgen_test

import (
	"fmt"

	"github.com/kbukum/fixturekit/schema"
	"github.com/kbukum/fixturekit/sqlgen"
)

func ExampleBuilder_InsertReturningIdentity() {
	c := &schema.Container{}
	c.AddIdentity("Id", int64(0))
	c.AddValue("Name", "Ann")

	stmt := sqlgen.NewBuilder(sqlgen.SQLServer()).InsertReturningIdentity("Employee", c)
	fmt.Println(stmt.SQL)
	fmt.Println(stmt.Args)
	// Output:
	// INSERT INTO [Employee] ([Name]) VALUES (@p1); SELECT CAST(SCOPE_IDENTITY() AS int)
	// [Ann]
}

func ExampleLiteral() {
	fmt.Println(sqlgen.Literal("O'Brien"))
	fmt.Println(sqlgen.Literal(42))
	fmt.Println(sqlgen.Literal(nil))
	// Output:
	// 'O''Brien'
	// 42
	// NULL
}
