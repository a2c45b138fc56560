// Package checkout implements the simulated payment flow: a short-lived
// state machine that collects payer identity and a pretend payment method,
// fabricates an order record, and empties the cart. No real payment system
// is involved at any point.
package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"donatecart/internal/cart"
	"donatecart/internal/domain"
	"donatecart/internal/infra"
	"donatecart/internal/orders"
	"donatecart/internal/ui"
)

// State enumerates the linear checkout progression.
type State int

const (
	StateIdle State = iota
	StateModalOpen
	StateMethodSelected
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateModalOpen:
		return "modal_open"
	case StateMethodSelected:
		return "method_selected"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

// Simulated payment methods.
const (
	MethodCard   = "card"
	MethodBank   = "bank"
	MethodWallet = "wallet"
)

const (
	emptyCartMsg    = "Your cart is empty"
	missingDonorMsg = "Please provide name and email"
	selectMethodMsg = "Select a payment method first"
	processingMsg   = "Processing payment…"
	successMsg      = "Payment successful. Thank you!"
	receiptToast    = "Payment completed. Receipt saved locally."
	orderIDPrefix   = "QF-"
	referenceLength = 7
)

// Options carries the tunable parts of the flow.
type Options struct {
	ProcessingDelay  time.Duration
	RedirectDelay    time.Duration
	ConfirmationPage string
}

// Flow drives one checkout attempt at a time. All methods must be called
// from the page's event goroutine; the scheduler delivers the two delayed
// steps back on whatever goroutine it owns, so hosts that care should pass a
// scheduler that re-enters their loop.
type Flow struct {
	cart   *cart.Store
	orders *orders.Store
	hooks  *ui.Hooks
	sched  Scheduler
	log    infra.Logger
	opts   Options
	now    func() time.Time

	state   State
	method  string
	pending []func()
}

// NewFlow builds an idle Flow.
func NewFlow(cartStore *cart.Store, orderStore *orders.Store, hooks *ui.Hooks, sched Scheduler, log infra.Logger, opts Options) *Flow {
	if opts.ConfirmationPage == "" {
		opts.ConfirmationPage = "thankyou"
	}
	return &Flow{
		cart:   cartStore,
		orders: orderStore,
		hooks:  hooks,
		sched:  sched,
		log:    log,
		opts:   opts,
		now:    time.Now,
	}
}

// State reports the current machine state.
func (f *Flow) State() State { return f.state }

// Attach binds the checkout trigger, modal dismissal, method selection, and
// form submission to the flow. Hook points the page lacks are skipped.
func (f *Flow) Attach() {
	if f.hooks.CheckoutTrigger != nil {
		f.hooks.CheckoutTrigger.OnActivate(f.Open)
	}
	if f.hooks.CheckoutModal != nil {
		f.hooks.CheckoutModal.OnDismiss(f.Cancel)
	}
	if f.hooks.MethodGroup != nil {
		f.hooks.MethodGroup.OnSelect(f.SelectMethod)
	}
	if f.hooks.Form != nil {
		f.hooks.Form.OnSubmit(f.Submit)
	}
}

// Open moves Idle to ModalOpen. An empty cart refuses with a notice and no
// state change.
func (f *Flow) Open() {
	if f.state != StateIdle {
		return
	}
	if len(f.cart.Load()) == 0 {
		f.hooks.Toast(emptyCartMsg)
		return
	}
	f.state = StateModalOpen
	if f.hooks.CheckoutModal != nil {
		f.hooks.CheckoutModal.Open()
	}
}

// SelectMethod marks one payment method active and swaps the details panel.
// A bank selection shows a freshly generated reference code; the code is for
// display only and is never persisted.
func (f *Flow) SelectMethod(method string) {
	if f.state != StateModalOpen && f.state != StateMethodSelected {
		return
	}
	switch method {
	case MethodCard, MethodBank, MethodWallet:
	default:
		f.log.Debug().Str("method", method).Msg("checkout: unknown payment method ignored")
		return
	}
	f.method = method
	f.state = StateMethodSelected
	if f.hooks.MethodGroup != nil {
		f.hooks.MethodGroup.SetActive(method)
	}
	if f.hooks.MethodDetails != nil {
		f.hooks.MethodDetails.SetText(methodDetails(method))
	}
}

// Submit moves MethodSelected to Submitting when the donor details are
// present, then schedules the simulated processing step.
func (f *Flow) Submit() {
	switch f.state {
	case StateModalOpen:
		f.hooks.Toast(selectMethodMsg)
		return
	case StateMethodSelected:
	default:
		return
	}
	if f.hooks.Form == nil {
		return
	}
	name := strings.TrimSpace(f.hooks.Form.Name())
	email := strings.TrimSpace(f.hooks.Form.Email())
	if name == "" || email == "" {
		f.hooks.Toast(missingDonorMsg)
		return
	}

	f.state = StateSubmitting
	if f.hooks.Status != nil {
		f.hooks.Status.Show(processingMsg)
	}
	f.schedule(f.opts.ProcessingDelay, func() {
		f.complete(domain.Donor{Name: name, Email: email})
	})
}

// Cancel aborts from ModalOpen or MethodSelected with no side effects. In
// any other state a dismiss attempt is ignored.
func (f *Flow) Cancel() {
	if f.state != StateModalOpen && f.state != StateMethodSelected {
		return
	}
	f.reset()
}

// Close drops every pending scheduled step and returns the flow to idle.
// Hosts call it when the page goes away so stale callbacks never run.
func (f *Flow) Close() {
	for _, cancel := range f.pending {
		cancel()
	}
	f.pending = nil
	f.state = StateIdle
	f.method = ""
}

func (f *Flow) complete(donor domain.Donor) {
	if f.state != StateSubmitting {
		return
	}
	items := f.cart.Load()
	order := domain.Order{
		ID:        orderIDPrefix + randomCode(referenceLength),
		Items:     items,
		Donor:     donor,
		Total:     items.Total(),
		Status:    domain.StatusPaid,
		CreatedAt: f.now(),
	}
	f.orders.Record(order)
	f.cart.Save(domain.Cart{})
	f.log.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("checkout: simulated payment recorded")

	f.state = StateSuccess
	if f.hooks.Status != nil {
		f.hooks.Status.Show(successMsg)
	}
	f.hooks.Toast(receiptToast)

	f.schedule(f.opts.RedirectDelay, f.finish)
}

func (f *Flow) finish() {
	if f.state != StateSuccess {
		return
	}
	f.reset()
	if f.hooks.Navigator != nil {
		f.hooks.Navigator.Goto(f.opts.ConfirmationPage)
	}
}

func (f *Flow) reset() {
	f.state = StateIdle
	f.method = ""
	if f.hooks.CheckoutModal != nil {
		f.hooks.CheckoutModal.Close()
	}
	if f.hooks.Status != nil {
		f.hooks.Status.Hide()
	}
	if f.hooks.Form != nil {
		f.hooks.Form.Reset()
	}
}

func (f *Flow) schedule(d time.Duration, fn func()) {
	f.pending = append(f.pending, f.sched.After(d, fn))
}

func methodDetails(method string) string {
	switch method {
	case MethodCard:
		return "Card number: 4242 4242 4242 4242 (demo)"
	case MethodBank:
		return "Bank transfer reference: " + randomCode(referenceLength)
	default:
		return "Enter your mobile number at the payment step"
	}
}

// randomCode derives a short human-readable code from a fresh uuid.
func randomCode(n int) string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if n > len(code) {
		n = len(code)
	}
	return code[:n]
}
