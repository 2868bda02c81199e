package sqlgen

import (
	"reflect"
	"testing"

	"github.com/kbukum/fixturekit/schema"
)

func employee() *schema.Container {
	c := &schema.Container{}
	c.AddIdentity("Id", int64(5))
	c.AddValue("Name", "O'Brien")
	c.AddValue("Age", int64(2))
	return c
}

func TestBuilder_SQLServer(t *testing.T) {
	b := NewBuilder(SQLServer())
	c := employee()

	tests := []struct {
		name string
		stmt Statement
		sql  string
		args []any
	}{
		{
			name: "insert returning identity",
			stmt: b.InsertReturningIdentity("Employee", c),
			sql:  "INSERT INTO [Employee] ([Name], [Age]) VALUES (@p1, @p2); SELECT CAST(SCOPE_IDENTITY() AS int)",
			args: []any{"O'Brien", int64(2)},
		},
		{
			name: "insert without auto identity",
			stmt: b.InsertWithoutAutoIdentity("Employee", c),
			sql:  "INSERT INTO [Employee] ([Id], [Name], [Age]) OUTPUT INSERTED.[Id] VALUES (@p1, @p2, @p3)",
			args: []any{int64(5), "O'Brien", int64(2)},
		},
		{
			name: "insert with explicit identity",
			stmt: b.InsertWithExplicitIdentity("Employee", c),
			sql: "SET IDENTITY_INSERT [Employee] ON; " +
				"INSERT INTO [Employee] ([Id], [Name], [Age]) OUTPUT INSERTED.[Id] VALUES (@p1, @p2, @p3); " +
				"SET IDENTITY_INSERT [Employee] OFF;",
			args: []any{int64(5), "O'Brien", int64(2)},
		},
		{
			name: "select by identity",
			stmt: b.SelectByIdentity("Employee", c),
			sql:  "SET ANSI_NULLS OFF; SELECT * FROM [Employee] WHERE [Id] = 5; SET ANSI_NULLS ON;",
		},
		{
			name: "select where",
			stmt: b.SelectWhere("Employee", "Name", "Ann"),
			sql:  "SET ANSI_NULLS OFF; SELECT * FROM [Employee] WHERE [Name] = @p1; SET ANSI_NULLS ON;",
			args: []any{"Ann"},
		},
		{
			name: "update",
			stmt: b.Update("Employee", c),
			sql:  "SET ANSI_NULLS OFF; UPDATE [Employee] SET [Name] = 'O''Brien', [Age] = 2 WHERE [Id] = 5; SET ANSI_NULLS ON;",
		},
		{
			name: "delete",
			stmt: b.Delete("Employee", "Id", int64(5)),
			sql:  "DELETE FROM [Employee] WHERE [Id] = 5",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.stmt.SQL != tc.sql {
				t.Errorf("SQL:\n got %s\nwant %s", tc.stmt.SQL, tc.sql)
			}
			if !reflect.DeepEqual(tc.stmt.Args, tc.args) && (len(tc.stmt.Args) != 0 || len(tc.args) != 0) {
				t.Errorf("Args = %v, want %v", tc.stmt.Args, tc.args)
			}
		})
	}
}

func TestBuilder_SQLite(t *testing.T) {
	b := NewBuilder(SQLite())
	c := employee()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"insert returning identity", b.InsertReturningIdentity("Employee", c).SQL,
			`INSERT INTO "Employee" ("Name", "Age") VALUES (?, ?) RETURNING "Id"`},
		{"insert without auto identity", b.InsertWithoutAutoIdentity("Employee", c).SQL,
			`INSERT INTO "Employee" ("Id", "Name", "Age") VALUES (?, ?, ?) RETURNING "Id"`},
		{"insert with explicit identity", b.InsertWithExplicitIdentity("Employee", c).SQL,
			`INSERT INTO "Employee" ("Id", "Name", "Age") VALUES (?, ?, ?) RETURNING "Id"`},
		{"select by identity", b.SelectByIdentity("Employee", c).SQL,
			`SELECT * FROM "Employee" WHERE "Id" IS 5`},
		{"select where", b.SelectWhere("Employee", "Name", nil).SQL,
			`SELECT * FROM "Employee" WHERE "Name" IS ?`},
		{"update", b.Update("Employee", c).SQL,
			`UPDATE "Employee" SET "Name" = 'O''Brien', "Age" = 2 WHERE "Id" IS 5`},
		{"delete", b.Delete("Employee", "Id", int64(5)).SQL,
			`DELETE FROM "Employee" WHERE "Id" = 5`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("\n got %s\nwant %s", tc.got, tc.want)
			}
		})
	}
}

func TestBuilder_Postgres(t *testing.T) {
	b := NewBuilder(Postgres())
	c := employee()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"insert returning identity", b.InsertReturningIdentity("Employee", c).SQL,
			`INSERT INTO "Employee" ("Name", "Age") VALUES ($1, $2) RETURNING "Id"`},
		{"insert with explicit identity", b.InsertWithExplicitIdentity("Employee", c).SQL,
			`INSERT INTO "Employee" ("Id", "Name", "Age") OVERRIDING SYSTEM VALUE VALUES ($1, $2, $3) RETURNING "Id"`},
		{"select by identity", b.SelectByIdentity("Employee", c).SQL,
			`SELECT * FROM "Employee" WHERE "Id" IS NOT DISTINCT FROM 5`},
		{"select where", b.SelectWhere("Employee", "Name", "Ann").SQL,
			`SELECT * FROM "Employee" WHERE "Name" IS NOT DISTINCT FROM $1`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("\n got %s\nwant %s", tc.got, tc.want)
			}
		})
	}
}

func TestBuilder_EdgeShapes(t *testing.T) {
	t.Run("no value columns", func(t *testing.T) {
		c := &schema.Container{}
		c.AddIdentity("Id", nil)
		got := NewBuilder(SQLServer()).InsertReturningIdentity("Tag", c).SQL
		want := "INSERT INTO [Tag] DEFAULT VALUES; SELECT CAST(SCOPE_IDENTITY() AS int)"
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("no identity columns", func(t *testing.T) {
		c := &schema.Container{}
		c.AddValue("Label", "x")
		got := NewBuilder(SQLite()).InsertWithoutAutoIdentity("Note", c).SQL
		want := `INSERT INTO "Note" ("Label") VALUES (?) RETURNING *`
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("null identity literal", func(t *testing.T) {
		c := &schema.Container{}
		c.AddIdentity("Code", nil)
		got := NewBuilder(SQLServer()).SelectByIdentity("Badge", c).SQL
		want := "SET ANSI_NULLS OFF; SELECT * FROM [Badge] WHERE [Code] = NULL; SET ANSI_NULLS ON;"
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("composite identity", func(t *testing.T) {
		c := &schema.Container{}
		c.AddIdentity("OrderId", int64(1))
		c.AddIdentity("Line", int64(2))
		got := NewBuilder(SQLServer()).SelectByIdentity("OrderLine", c).SQL
		want := "SET ANSI_NULLS OFF; SELECT * FROM [OrderLine] WHERE [OrderId] = 1 AND [Line] = 2; SET ANSI_NULLS ON;"
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
}
