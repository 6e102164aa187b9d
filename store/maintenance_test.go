package store

import (
	"context"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/google/go-cmp/cmp"
)

func TestCopy(t *testing.T) {
	ctx := context.Background()
	from := NewMemoryStore()
	src := NewRecords(from)
	if err := src.SaveUsers(ctx, []budget.User{{ID: "u1", Email: "a@example.com"}}); err != nil {
		t.Fatal(err)
	}
	if err := src.SetCash(ctx, "u1", budget.M(140)); err != nil {
		t.Fatal(err)
	}

	to, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	n, err := Copy(ctx, from, to)
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Copy() copied %d collections, want 2", n)
	}

	dst := NewRecords(to)
	users, err := dst.Users(ctx)
	if err != nil || len(users) != 1 || users[0].Email != "a@example.com" {
		t.Errorf("copied users = %v, %v", users, err)
	}
	if cash, _ := dst.Cash(ctx, "u1"); !cash.Equal(budget.M(140)) {
		t.Errorf("copied cash = %s, want 140", cash)
	}
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	jan := date.MustParseMonth("2024-01")
	s.Save(ctx, UsersCollection, []budget.User{{ID: "u1"}})
	s.Save(ctx, TransactionsCollection, []budget.Transaction{
		{ID: "t1", UserID: "u1", Amount: budget.M(1), Date: jan.First()},
		{ID: "t2", UserID: "ghost", Amount: budget.M(1), Date: jan.First()},
	})
	s.Save(ctx, AllocationsCollection, []budget.MonthlyAllocation{
		{UserID: "u1", Month: jan, Items: []budget.AllocationItem{}},
		{UserID: "u1", Month: jan, Items: []budget.AllocationItem{}},
	})

	r, err := Check(ctx, s)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	want := []string{
		`transaction t2 belongs to unknown user "ghost"`,
		`duplicate special expenses of 2024-01 for user "u1"`,
	}
	if diff := cmp.Diff(want, r.Problems); diff != "" {
		t.Errorf("Check() problems mismatch (-want +got):\n%s", diff)
	}
	if r.Counts[TransactionsCollection] != 2 || r.Counts[InvestmentsCollection] != 0 {
		t.Errorf("Check() counts = %v", r.Counts)
	}
}

func TestCheck_Corrupt(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Save(ctx, UsersCollection, map[string]string{"not": "a list"})
	if _, err := Check(ctx, s); err == nil {
		t.Errorf("Check() of a corrupt collection succeeded")
	}
}
