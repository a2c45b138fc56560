// Package catalog wires the donation catalog's add-to-cart controls to the
// cart store.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"donatecart/internal/cart"
	"donatecart/internal/infra"
	"donatecart/internal/ui"
)

const (
	customTitle      = "Custom Donation"
	minCustomAmount  = 1
	invalidAmountMsg = "Enter a valid amount (minimum $1)"
)

// Binder attaches catalog triggers to the store. Bind may be called any
// number of times; each control is wired at most once.
type Binder struct {
	store *cart.Store
	hooks *ui.Hooks
	log   infra.Logger

	bound       map[any]bool
	customBound bool
}

// NewBinder builds a Binder over store using hooks as its surface.
func NewBinder(store *cart.Store, hooks *ui.Hooks, log infra.Logger) *Binder {
	return &Binder{store: store, hooks: hooks, log: log, bound: make(map[any]bool)}
}

// Bind wires every fixed-price trigger and the custom-amount control that
// the page exposes. Missing hook points are skipped.
func (b *Binder) Bind() {
	for _, trigger := range b.hooks.Triggers {
		if trigger == nil || b.bound[trigger] {
			continue
		}
		b.bound[trigger] = true
		tr := trigger
		tr.OnActivate(func() {
			title := resolveTitle(tr)
			price := resolvePrice(tr)
			b.store.Add(cart.AddInput{Title: title, Price: price})
		})
	}

	b.bindCustom()
}

func (b *Binder) bindCustom() {
	input, add := b.hooks.CustomInput, b.hooks.CustomAdd
	if input == nil || add == nil {
		b.log.Debug().Msg("catalog: custom donation controls not present, skipping")
		return
	}
	if b.customBound {
		return
	}
	b.customBound = true

	add.SetEnabled(validAmount(input.Value()))
	input.OnChange(func() {
		add.SetEnabled(validAmount(input.Value()))
	})
	add.OnActivate(func() {
		v, ok := parseAmount(input.Value())
		if !ok {
			b.hooks.Toast(invalidAmountMsg)
			return
		}
		b.store.Add(cart.AddInput{Title: customTitle, Price: v, Custom: true})
		input.SetValue("")
		add.SetEnabled(false)
	})
}

func resolveTitle(tr ui.Trigger) string {
	if t := strings.TrimSpace(tr.Title()); t != "" {
		return t
	}
	if t := strings.TrimSpace(tr.CardTitle()); t != "" {
		return t
	}
	return "Donation"
}

func resolvePrice(tr ui.Trigger) float64 {
	raw := tr.Price()
	if strings.TrimSpace(raw) == "" {
		raw = tr.CardPrice()
	}
	return parsePriceText(raw)
}

// parsePriceText extracts a number from arbitrary nearby content, e.g.
// "$25.00 / month" becomes 25. Unparseable content yields zero.
func parsePriceText(raw string) float64 {
	var sb strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < minCustomAmount {
		return 0, false
	}
	return v, true
}

func validAmount(raw string) bool {
	_, ok := parseAmount(raw)
	return ok
}
