// Package render projects cart state into page hook points. It owns no
// state of its own; every render re-reads the store.
package render

import (
	"strconv"

	"donatecart/internal/cart"
	"donatecart/internal/money"
	"donatecart/internal/ui"
)

const emptyCartMessage = "Your cart is empty."

// Cart renders the header badge, the cart detail list, and the running
// total. Hook points absent from the current page are skipped.
type Cart struct {
	store  *cart.Store
	format *money.Formatter
	hooks  *ui.Hooks
}

// NewCart builds a renderer over store using hooks as its surface.
func NewCart(store *cart.Store, format *money.Formatter, hooks *ui.Hooks) *Cart {
	return &Cart{store: store, format: format, hooks: hooks}
}

// Attach wires the per-row remove controls and re-renders on every store
// change. The returned cancel detaches the subscription.
func (r *Cart) Attach() (cancel func()) {
	if r.hooks.CartList != nil {
		r.hooks.CartList.OnRemove(func(index int) {
			r.store.RemoveAt(index)
		})
	}
	r.Render()
	return r.store.Subscribe(r.Render)
}

// Render projects the current cart into every present hook point.
func (r *Cart) Render() {
	c := r.store.Load()

	if r.hooks.BadgeCount != nil {
		r.hooks.BadgeCount.SetText(strconv.Itoa(len(c)))
	}

	if r.hooks.CartList != nil {
		rows := make([]ui.Row, 0, len(c))
		for i, it := range c {
			detail := it.Note
			if it.Custom && detail == "" {
				detail = "Custom donation"
			}
			rows = append(rows, ui.Row{
				Index:  i,
				Title:  it.Title,
				Detail: detail,
				Price:  r.format.Format(it.Price),
			})
		}
		r.hooks.CartList.SetRows(rows)
	}

	if r.hooks.CartEmpty != nil {
		if len(c) == 0 {
			r.hooks.CartEmpty.Show(emptyCartMessage)
		} else {
			r.hooks.CartEmpty.Hide()
		}
	}

	if r.hooks.CartTotal != nil {
		r.hooks.CartTotal.SetText(r.format.Format(c.Total()))
	}
}
