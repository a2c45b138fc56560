package orders

import (
	"strings"

	"donatecart/internal/money"
	"donatecart/internal/ui"
)

const (
	noInvoiceMessage = "No invoice found. Complete a donation to generate an invoice."
	noOrdersMessage  = "No orders found."
	noMatchMessage   = "No matching order found."
	emptyQueryMsg    = "Enter an order id or email."

	invoiceDateLayout = "Jan 2, 2006 15:04"
)

// Invoice is the read-only invoice projection.
type Invoice struct {
	store  *Store
	format *money.Formatter
	hooks  *ui.Hooks
}

// NewInvoice builds an invoice view over store.
func NewInvoice(store *Store, format *money.Formatter, hooks *ui.Hooks) *Invoice {
	return &Invoice{store: store, format: format, hooks: hooks}
}

// Render writes the retained order into the invoice hook, or the no-invoice
// message when none exists. Pages without the hook are skipped.
func (v *Invoice) Render() {
	target := v.hooks.InvoiceContent
	if target == nil {
		return
	}
	o, ok := v.store.MostRecent()
	if !ok {
		target.SetText(noInvoiceMessage)
		return
	}

	var sb strings.Builder
	sb.WriteString("Order ID: " + o.ID + "\n")
	sb.WriteString("Date: " + o.CreatedAt.Format(invoiceDateLayout) + "\n")
	for _, it := range o.Items {
		sb.WriteString(it.Title + "  " + v.format.Format(it.Price) + "\n")
	}
	sb.WriteString("Total: " + v.format.Format(o.Total) + "\n")
	sb.WriteString("Receipt saved for: " + o.Donor.Email)
	target.SetText(sb.String())
}

// Tracer answers free-text queries against the retained order. A query
// matches on the exact order id or the donor email ignoring letter case;
// anything else reports no match.
type Tracer struct {
	store *Store
	hooks *ui.Hooks
}

// NewTracer builds a tracing view over store.
func NewTracer(store *Store, hooks *ui.Hooks) *Tracer {
	return &Tracer{store: store, hooks: hooks}
}

// Attach binds the trace trigger. Pages without the query controls skip
// tracing entirely.
func (v *Tracer) Attach() {
	if v.hooks.TraceTrigger == nil || v.hooks.TraceInput == nil || v.hooks.TraceResult == nil {
		return
	}
	v.hooks.TraceTrigger.OnActivate(func() {
		v.hooks.TraceResult.SetText(v.Trace(v.hooks.TraceInput.Value()))
	})
}

// Trace resolves a query to a human-readable result line.
func (v *Tracer) Trace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return emptyQueryMsg
	}
	o, ok := v.store.MostRecent()
	if !ok {
		return noOrdersMessage
	}
	if query == o.ID || strings.EqualFold(query, o.Donor.Email) {
		return "Status: " + o.Status + "\nOrder ID: " + o.ID
	}
	return noMatchMessage
}
