package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/store"
)

var jan = date.MustParseMonth("2024-01")

// countingStore counts writes and can be made to fail them.
type countingStore struct {
	store.Store
	saves int
	fail  error
}

func (c *countingStore) Save(ctx context.Context, collection string, v any) error {
	if c.fail != nil {
		return c.fail
	}
	c.saves++
	return c.Store.Save(ctx, collection, v)
}

func open(t *testing.T) (*Dashboard, *countingStore) {
	t.Helper()
	s := &countingStore{Store: store.NewMemoryStore()}
	d, err := Open(context.Background(), store.NewRecords(s), "u1", jan)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return d, s
}

func assertMoney(t *testing.T, name string, got, want budget.Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func addTx(t *testing.T, d *Dashboard, amount int, typ budget.TransactionType, method budget.PaymentMethod, on string) budget.Transaction {
	t.Helper()
	tx, ok, err := d.AddTransaction(context.Background(), budget.M(amount), typ, "c3", date.MustParse(on), "", method)
	if err != nil || !ok {
		t.Fatalf("AddTransaction() = %v, %v", ok, err)
	}
	return tx
}

func TestOpen_NoUser(t *testing.T) {
	_, err := Open(context.Background(), store.NewRecords(store.NewMemoryStore()), "", jan)
	if !errors.Is(err, ErrNoUser) {
		t.Errorf("Open() error = %v, want ErrNoUser", err)
	}
}

func TestDashboard_Scenario(t *testing.T) {
	ctx := context.Background()
	d, _ := open(t)

	addTx(t, d, 40, budget.Expense, budget.Cash, "2024-01-06")
	assertMoney(t, "cash after expense", d.View().Cash, budget.M(-40))

	baseline, err := d.SetCurrentCash(ctx, "100")
	if err != nil {
		t.Fatalf("SetCurrentCash() error = %v", err)
	}
	assertMoney(t, "baseline", baseline, budget.M(140))
	assertMoney(t, "cash after set", d.View().Cash, budget.M(100))

	addTx(t, d, 500, budget.Income, budget.Online, "2024-01-01")
	assertMoney(t, "cash after online income", d.View().Cash, budget.M(100))

	if _, ok, err := d.AddAllocationItem(ctx, jan, "Gift", budget.M(60)); err != nil || !ok {
		t.Fatalf("AddAllocationItem() = %v, %v", ok, err)
	}

	v := d.View()
	assertMoney(t, "income", v.Stats.TotalIncome, budget.M(500))
	assertMoney(t, "expense", v.Stats.TotalExpense, budget.M(40))
	assertMoney(t, "balance", v.Stats.Balance, budget.M(400))
	// 140 + 500 - 40 - 60
	assertMoney(t, "liquidity", v.Liquidity, budget.M(540))
	if len(v.Transactions) != 2 || v.Transactions[0].Type != budget.Expense {
		t.Errorf("transactions = %v, want the expense first", v.Transactions)
	}
}

func TestDashboard_RejectedInputWritesNothing(t *testing.T) {
	ctx := context.Background()
	d, s := open(t)

	if _, ok, err := d.AddTransaction(ctx, budget.M(0), budget.Expense, "c3", date.Today(), "", budget.Cash); ok || err != nil {
		t.Errorf("AddTransaction(0) = %v, %v, want a silent rejection", ok, err)
	}
	if _, ok, err := d.AddTransaction(ctx, budget.M(10), budget.Expense, "", date.Today(), "", budget.Cash); ok || err != nil {
		t.Errorf("AddTransaction(no category) = %v, %v, want a silent rejection", ok, err)
	}
	if _, err := d.SetCurrentCash(ctx, "-5"); !errors.Is(err, budget.ErrNegativeAmount) {
		t.Errorf("SetCurrentCash(-5) error = %v, want ErrNegativeAmount", err)
	}
	if _, err := d.SetCurrentCash(ctx, "lots"); !errors.Is(err, budget.ErrInvalidAmount) {
		t.Errorf("SetCurrentCash(lots) error = %v, want ErrInvalidAmount", err)
	}
	if _, ok, _ := d.AddAllocationItem(ctx, jan, " ", budget.M(10)); ok {
		t.Errorf("AddAllocationItem(blank label) succeeded")
	}
	if _, ok, _ := d.AddInvestment(ctx, "", budget.Gold, budget.M(10), date.Today()); ok {
		t.Errorf("AddInvestment(no name) succeeded")
	}
	if s.saves != 0 {
		t.Errorf("%d writes, want none", s.saves)
	}
}

func TestDashboard_DeleteTransaction(t *testing.T) {
	ctx := context.Background()
	d, _ := open(t)
	tx := addTx(t, d, 40, budget.Expense, budget.Cash, "2024-01-06")

	found, err := d.DeleteTransaction(ctx, "missing")
	if err != nil || found {
		t.Errorf("DeleteTransaction(missing) = %v, %v", found, err)
	}
	found, err = d.DeleteTransaction(ctx, tx.ID)
	if err != nil || !found {
		t.Fatalf("DeleteTransaction() = %v, %v", found, err)
	}
	if len(d.View().Transactions) != 0 {
		t.Errorf("view still shows %v", d.View().Transactions)
	}
	assertMoney(t, "cash", d.View().Cash, budget.Zero)
}

func TestDashboard_DeleteTransactionOfAnotherUser(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	records := store.NewRecords(s)
	alice, _ := Open(ctx, records, "alice", jan)
	bob, _ := Open(ctx, records, "bob", jan)

	tx := addTx(t, alice, 40, budget.Expense, budget.Cash, "2024-01-06")
	if found, _ := bob.DeleteTransaction(ctx, tx.ID); found {
		t.Errorf("bob deleted alice's transaction")
	}
	if err := alice.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	if len(alice.View().Transactions) != 1 {
		t.Errorf("alice has %d transactions, want 1", len(alice.View().Transactions))
	}
}

func TestDashboard_AllocationItems(t *testing.T) {
	ctx := context.Background()
	d, _ := open(t)

	item, _, err := d.AddAllocationItem(ctx, jan, "Gift", budget.M(50))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := d.AddAllocationItem(ctx, jan, "Trip", budget.M(30)); err != nil {
		t.Fatal(err)
	}
	assertMoney(t, "special total", d.View().SpecialTotal, budget.M(80))

	if found, _ := d.DeleteAllocationItem(ctx, jan.Add(1), item.ID); found {
		t.Errorf("deleted an item from the wrong month")
	}
	if found, err := d.DeleteAllocationItem(ctx, jan, item.ID); err != nil || !found {
		t.Fatalf("DeleteAllocationItem() = %v, %v", found, err)
	}
	assertMoney(t, "special total", d.View().SpecialTotal, budget.M(30))
	assertMoney(t, "liquidity", d.View().Liquidity, budget.M(-30))

	// the other month does not see january's items
	if err := d.SetMonth(ctx, jan.Add(1)); err != nil {
		t.Fatal(err)
	}
	assertMoney(t, "february special", d.View().SpecialTotal, budget.Zero)
	assertMoney(t, "february liquidity", d.View().Liquidity, budget.M(-30))
}

func TestDashboard_Investments(t *testing.T) {
	ctx := context.Background()
	d, _ := open(t)

	inv, ok, err := d.AddInvestment(ctx, "Index fund", budget.MutualFund, budget.M(5000), date.Date{})
	if err != nil || !ok {
		t.Fatalf("AddInvestment() = %v, %v", ok, err)
	}
	if inv.Date != date.Today() {
		t.Errorf("investment date = %s, want today", inv.Date)
	}
	assertMoney(t, "portfolio", d.View().Portfolio, budget.M(5000))
	assertMoney(t, "liquidity", d.View().Liquidity, budget.Zero)
	if len(d.View().Transactions) != 0 {
		t.Errorf("an investment created a transaction")
	}

	if found, err := d.DeleteInvestment(ctx, inv.ID); err != nil || !found {
		t.Fatalf("DeleteInvestment() = %v, %v", found, err)
	}
	assertMoney(t, "portfolio", d.View().Portfolio, budget.Zero)
}

func TestDashboard_WriteFailure(t *testing.T) {
	ctx := context.Background()
	d, s := open(t)
	s.fail = errors.New("disk full")

	_, ok, err := d.AddTransaction(ctx, budget.M(10), budget.Expense, "c3", date.Today(), "", budget.Cash)
	if ok || !errors.Is(err, s.fail) {
		t.Errorf("AddTransaction() = %v, %v, want the store error", ok, err)
	}
	if _, err := d.SetCurrentCash(ctx, "10"); !errors.Is(err, s.fail) {
		t.Errorf("SetCurrentCash() error = %v, want the store error", err)
	}
}

func TestDashboard_Categories(t *testing.T) {
	d, _ := open(t)
	got, err := d.Categories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(budget.DefaultCategories) {
		t.Errorf("Categories() = %d categories, want the %d defaults", len(got), len(budget.DefaultCategories))
	}
}

func TestDashboard_At(t *testing.T) {
	ctx := context.Background()
	d, _ := open(t)
	addTx(t, d, 40, budget.Expense, budget.Cash, "2024-02-06")

	v, err := d.At(ctx, jan.Add(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Transactions) != 1 {
		t.Errorf("At(february) has %d transactions, want 1", len(v.Transactions))
	}
	if d.Month() != jan || len(d.View().Transactions) != 0 {
		t.Errorf("At() changed the reporting month")
	}
}
