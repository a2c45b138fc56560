// Package ui declares the capability surface a page must expose for the cart
// and checkout logic to attach to. Each interface is one named hook point;
// the core never talks to a concrete widget toolkit. A page that lacks a
// hook leaves the corresponding Hooks field nil and that feature silently
// does nothing.
package ui

// TextRegion is a render target for a single piece of text.
type TextRegion interface {
	SetText(s string)
}

// StatusRegion is a render target that can also be hidden entirely.
type StatusRegion interface {
	Show(s string)
	Hide()
}

// Row is one rendered cart line. Index addresses the item for removal.
type Row struct {
	Index  int
	Title  string
	Detail string
	Price  string
}

// ListRegion displays cart rows and surfaces per-row remove activations.
type ListRegion interface {
	SetRows(rows []Row)
	OnRemove(fn func(index int))
}

// Input exposes a free-form text input.
type Input interface {
	Value() string
	SetValue(s string)
	OnChange(fn func())
}

// Control is an activatable control such as a button.
type Control interface {
	SetEnabled(enabled bool)
	OnActivate(fn func())
}

// Trigger is one fixed-price "add to cart" control together with the
// explicit attributes and nearby content a title and price can be resolved
// from. Any accessor may return the empty string.
type Trigger interface {
	Control
	Title() string
	Price() string
	CardTitle() string
	CardPrice() string
}

// Modal is the checkout dialog. OnDismiss fires for both the cancel control
// and a click outside the modal content.
type Modal interface {
	Open()
	Close()
	OnDismiss(fn func())
}

// ChoiceGroup is a fixed set of options with exactly one active at a time.
type ChoiceGroup interface {
	SetActive(option string)
	OnSelect(fn func(option string))
}

// DonorForm collects the payer identity on the checkout modal.
type DonorForm interface {
	Name() string
	Email() string
	Reset()
	OnSubmit(fn func())
}

// Notifier shows transient auto-dismissing notices.
type Notifier interface {
	Toast(msg string)
}

// Navigator moves the user to another page.
type Navigator interface {
	Goto(page string)
}

// Hooks aggregates every hook point a page may expose. All fields are
// optional.
type Hooks struct {
	// Header / cart view.
	BadgeCount TextRegion
	CartList   ListRegion
	CartTotal  TextRegion
	CartEmpty  StatusRegion

	// Catalog.
	Triggers    []Trigger
	CustomInput Input
	CustomAdd   Control

	// Checkout.
	CheckoutTrigger Control
	CheckoutModal   Modal
	MethodGroup     ChoiceGroup
	MethodDetails   TextRegion
	Form            DonorForm
	Status          StatusRegion

	// Order views.
	InvoiceContent TextRegion
	TraceInput     Input
	TraceTrigger   Control
	TraceResult    TextRegion

	// Shared services.
	Notices   Notifier
	Navigator Navigator
}

// Toast forwards to the Notices hook when present.
func (h *Hooks) Toast(msg string) {
	if h != nil && h.Notices != nil {
		h.Notices.Toast(msg)
	}
}
