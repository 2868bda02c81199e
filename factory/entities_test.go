package factory_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kbukum/fixturekit/database"
	dbtestutil "github.com/kbukum/fixturekit/database/testutil"
	"github.com/kbukum/fixturekit/factory"
	"github.com/kbukum/fixturekit/schema"
	"github.com/kbukum/fixturekit/testutil"
)

type Grade int

const (
	GradeJunior Grade = iota + 1
	GradeSenior
)

func (g Grade) String() string {
	switch g {
	case GradeJunior:
		return "Junior"
	case GradeSenior:
		return "Senior"
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

func init() {
	schema.RegisterEnum(GradeJunior, GradeSenior)
}

type Employee struct {
	Id       int
	Name     string
	Grade    Grade
	Salary   float64
	Active   bool
	Hired    time.Time
	Nickname *string
	Manager  *Employee
	Skills   []string
	Bonus    int `factory:",computed"`
}

type Country struct {
	Code string `factory:",key"`
	Name string
}

type AuditEvent struct {
	AuditEventId int64
	Message      string
}

func (AuditEvent) TableName() string { return "audit_event" }

// Note has no identity field.
type Note struct {
	Body string
}

// Ghost has no table.
type Ghost struct {
	Id   int
	Name string
}

var hired = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)

// newStore starts a migrated in-memory database and a session over it.
func newStore(t *testing.T) (*dbtestutil.Component, *factory.Session) {
	t.Helper()
	store := dbtestutil.NewComponent().WithMigrations(os.DirFS("testdata"), "migrations")
	testutil.T(t).Setup(store)
	return store, factory.NewSession(store.Connector(), store.Dialect())
}

func defineEmployee(t *testing.T, s *factory.Session) {
	t.Helper()
	err := factory.Define(s, func() *Employee {
		return &Employee{Name: "Ann", Grade: GradeJunior, Salary: 1000, Active: true, Hired: hired}
	})
	if err != nil {
		t.Fatalf("Define() failed: %v", err)
	}
}

// unreachable fails the test when the session touches the store.
type unreachable struct{ t *testing.T }

func (u unreachable) Connect(context.Context) (database.Conn, error) {
	u.t.Fatal("store must not be touched")
	return nil, nil
}
