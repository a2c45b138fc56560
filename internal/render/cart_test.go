package render

import (
	"testing"

	"donatecart/internal/cart"
	"donatecart/internal/infra"
	"donatecart/internal/money"
	"donatecart/internal/storage"
	"donatecart/internal/ui"
	"donatecart/internal/ui/uitest"
)

type fixture struct {
	store *cart.Store
	r     *Cart
	badge *uitest.Text
	list  *uitest.List
	total *uitest.Text
	empty *uitest.Status
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: cart.NewStore(storage.NewMemStore(), infra.Nop(), nil),
		badge: &uitest.Text{},
		list:  &uitest.List{},
		total: &uitest.Text{},
		empty: &uitest.Status{},
	}
	hooks := &ui.Hooks{
		BadgeCount: f.badge,
		CartList:   f.list,
		CartTotal:  f.total,
		CartEmpty:  f.empty,
	}
	f.r = NewCart(f.store, money.NewFormatter("en-US", "$"), hooks)
	return f
}

func TestRenderEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.r.Render()

	if f.badge.Last() != "0" {
		t.Fatalf("badge: got %q want 0", f.badge.Last())
	}
	if len(f.list.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(f.list.Rows))
	}
	if !f.empty.Visible || f.empty.Text != "Your cart is empty." {
		t.Fatalf("empty state not shown: %+v", f.empty)
	}
	if f.total.Last() != "$0.00" {
		t.Fatalf("total: got %q want $0.00", f.total.Last())
	}
}

func TestRenderTracksMutations(t *testing.T) {
	f := newFixture(t)
	cancel := f.r.Attach()
	defer cancel()

	f.store.Add(cart.AddInput{Title: "Meal Kit", Price: 25})
	f.store.Add(cart.AddInput{Title: "Custom Donation", Price: 10.5, Custom: true})

	if f.badge.Last() != "2" {
		t.Fatalf("badge: got %q want 2", f.badge.Last())
	}
	if len(f.list.Rows) != 2 {
		t.Fatalf("rows: got %d want 2", len(f.list.Rows))
	}
	if f.list.Rows[0].Title != "Meal Kit" || f.list.Rows[0].Price != "$25.00" {
		t.Fatalf("row 0 mismatch: %+v", f.list.Rows[0])
	}
	if f.list.Rows[1].Detail != "Custom donation" {
		t.Fatalf("custom flag not rendered: %+v", f.list.Rows[1])
	}
	if f.total.Last() != "$35.50" {
		t.Fatalf("total: got %q want $35.50", f.total.Last())
	}
	if f.empty.Visible {
		t.Fatalf("empty state visible with items present")
	}

	// Row removal goes back through the store and re-renders.
	f.list.Remove(0)
	if f.badge.Last() != "1" {
		t.Fatalf("badge after remove: got %q want 1", f.badge.Last())
	}
	if f.total.Last() != "$10.50" {
		t.Fatalf("total after remove: got %q want $10.50", f.total.Last())
	}

	f.store.Clear()
	if f.badge.Last() != "0" || !f.empty.Visible {
		t.Fatalf("clear not reflected: badge=%q empty=%v", f.badge.Last(), f.empty.Visible)
	}
}

func TestRenderSkipsMissingHooks(t *testing.T) {
	store := cart.NewStore(storage.NewMemStore(), infra.Nop(), nil)
	r := NewCart(store, money.NewFormatter("en-US", "$"), &ui.Hooks{})
	cancel := r.Attach()
	defer cancel()
	store.Add(cart.AddInput{Title: "A", Price: 1})
}
