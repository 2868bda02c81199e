package testutil_test

import (
	"context"
	"fmt"

	dbtestutil "github.com/kbukum/fixturekit/database/testutil"
	"github.com/kbukum/fixturekit/testutil"
)

type User struct {
	Id   int64 `gorm:"primaryKey"`
	Name string
}

func Example_withModels() {
	ctx := context.Background()
	db := dbtestutil.NewComponent().WithModels(&User{})
	if err := db.Start(ctx); err != nil {
		fmt.Println(err)
		return
	}
	defer db.Stop(ctx)

	db.DB().Create(&User{Name: "Bob"})

	var user User
	db.DB().First(&user)
	fmt.Println(user.Id, user.Name)
	// Output: 1 Bob
}

func Example_snapshotRestore() {
	ctx := context.Background()
	db := dbtestutil.NewComponent().WithModels(&User{})
	if err := db.Start(ctx); err != nil {
		fmt.Println(err)
		return
	}
	defer db.Stop(ctx)

	db.DB().Create(&User{Name: "Alice"})
	snap, _ := db.Snapshot(ctx)

	db.DB().Create(&User{Name: "Bob"})
	before, _ := dbtestutil.CountRows(db.DB(), "User")

	_ = db.Restore(ctx, snap)
	after, _ := dbtestutil.CountRows(db.DB(), "User")

	fmt.Println(before, after)
	// Output: 2 1
}

func Example_testManager() {
	ctx := context.Background()
	manager := testutil.NewManager(ctx)
	manager.Add(dbtestutil.NewComponent().WithModels(&User{}))

	if err := manager.StartAll(); err != nil {
		fmt.Println(err)
		return
	}
	defer manager.Cleanup()

	db := manager.Get("database-test").(*dbtestutil.Component)
	dbtestutil.LoadFixture(db.DB(), "User", []map[string]any{{"Name": "Carol"}})
	n, _ := dbtestutil.CountRows(db.DB(), "User")
	fmt.Println(n)
	// Output: 1
}
