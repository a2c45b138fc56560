// Command demo walks the whole donation flow headlessly: catalog add,
// custom amount, cart rendering, simulated checkout, invoice, and order
// tracing, printed to the terminal. With SYNC_URL set it uses a running
// syncd as its storage layer and mirrors changes like a second tab.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"donatecart/internal/cart"
	"donatecart/internal/catalog"
	"donatecart/internal/checkout"
	"donatecart/internal/infra"
	"donatecart/internal/money"
	"donatecart/internal/orders"
	"donatecart/internal/render"
	"donatecart/internal/storage"
	"donatecart/internal/syncfeed"
	"donatecart/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	kv, cleanup, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}
	defer cleanup()

	hooks, form, done := buildHooks()
	cartStore := cart.NewStore(kv, logger, hooks.Notices)
	orderStore := orders.NewStore(kv, logger)
	format := money.NewFormatter(cfg.Locale, "$")

	renderer := render.NewCart(cartStore, format, hooks)
	detach := renderer.Attach()
	defer detach()

	binder := catalog.NewBinder(cartStore, hooks, logger)
	binder.Bind()

	flow := checkout.NewFlow(cartStore, orderStore, hooks, checkout.NewTimerScheduler(), logger, checkout.Options{
		ProcessingDelay:  cfg.ProcessingDelay,
		RedirectDelay:    cfg.RedirectDelay,
		ConfirmationPage: cfg.ConfirmationPage,
	})
	flow.Attach()
	defer flow.Close()

	// Catalog: one fixed-price card, one custom amount.
	fmt.Println("== donate page ==")
	hooks.Triggers[0].(*demoTrigger).Activate()
	hooks.CustomInput.(*demoInput).Type("10")
	hooks.CustomAdd.(*demoControl).Activate()

	// Checkout.
	fmt.Println("== checkout ==")
	hooks.CheckoutTrigger.(*demoControl).Activate()
	hooks.MethodGroup.(*demoChoices).Select(checkout.MethodCard)
	form.name, form.email = "A. Donor", "a@x.com"
	form.Submit()

	select {
	case <-done:
	case <-time.After(cfg.ProcessingDelay + cfg.RedirectDelay + 5*time.Second):
		logger.Fatal().Msg("checkout never completed")
	}

	// Invoice and tracing, as the confirmation pages would show them.
	fmt.Println("== invoice page ==")
	orders.NewInvoice(orderStore, format, hooks).Render()

	fmt.Println("== tracing page ==")
	tracer := orders.NewTracer(orderStore, hooks)
	if order, ok := orderStore.MostRecent(); ok {
		fmt.Println(tracer.Trace(order.ID))
		fmt.Println(tracer.Trace(order.Donor.Email))
	}
	fmt.Println(tracer.Trace("no-such-order"))
}

// openStore picks the shared sync server when SYNC_URL is set, a local file
// store otherwise.
func openStore(cfg *infra.Config, logger infra.Logger) (storage.Store, func(), error) {
	if base := os.Getenv("SYNC_URL"); base != "" {
		ctx, cancel := context.WithCancel(context.Background())
		client := syncfeed.NewClient(base, cfg.SyncPollInterval, logger)
		go client.Run(ctx, func(key string) {
			logger.Info().Str("key", key).Msg("remote change observed")
		})
		return syncfeed.NewRemoteStore(base), cancel, nil
	}
	kv, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return kv, func() {}, nil
}

func buildHooks() (*ui.Hooks, *demoForm, chan struct{}) {
	done := make(chan struct{})
	form := &demoForm{}
	hooks := &ui.Hooks{
		BadgeCount: &demoRegion{label: "cart badge"},
		CartList:   &demoList{},
		CartTotal:  &demoRegion{label: "cart total"},
		CartEmpty:  &demoStatus{label: "cart"},
		Triggers: []ui.Trigger{&demoTrigger{
			demoControl:   demoControl{enabled: true},
			titleAttr:     "Meal Kit",
			priceAttr:     "25",
			cardTitleText: "Meal Kit",
			cardPriceText: "$25.00",
		}},
		CustomInput:     &demoInput{},
		CustomAdd:       &demoControl{},
		CheckoutTrigger: &demoControl{enabled: true},
		CheckoutModal:   &demoModal{},
		MethodGroup:     &demoChoices{},
		MethodDetails:   &demoRegion{label: "payment details"},
		Form:            form,
		Status:          &demoStatus{label: "checkout"},
		InvoiceContent:  &demoRegion{label: "invoice"},
		Notices:         demoToasts{},
		Navigator:       demoNav{done: done},
	}
	return hooks, form, done
}

// Terminal hook implementations.

type demoRegion struct{ label string }

func (r *demoRegion) SetText(s string) { fmt.Printf("[%s] %s\n", r.label, s) }

type demoStatus struct{ label string }

func (s *demoStatus) Show(text string) { fmt.Printf("[%s] %s\n", s.label, text) }
func (s *demoStatus) Hide() {}

type demoList struct {
	onRemove func(index int)
}

func (l *demoList) SetRows(rows []ui.Row) {
	for _, row := range rows {
		detail := row.Detail
		if detail != "" {
			detail = " (" + detail + ")"
		}
		fmt.Printf("  %d. %s%s  %s\n", row.Index+1, row.Title, detail, row.Price)
	}
}

func (l *demoList) OnRemove(fn func(index int)) { l.onRemove = fn }

type demoInput struct {
	value    string
	onChange func()
}

func (i *demoInput) Value() string { return i.value }
func (i *demoInput) SetValue(s string) { i.value = s }
func (i *demoInput) OnChange(fn func()) { i.onChange = fn }

func (i *demoInput) Type(s string) {
	i.value = s
	if i.onChange != nil {
		i.onChange()
	}
}

type demoControl struct {
	enabled    bool
	onActivate func()
}

func (c *demoControl) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *demoControl) OnActivate(fn func()) { c.onActivate = fn }

func (c *demoControl) Activate() {
	if c.onActivate != nil {
		c.onActivate()
	}
}

type demoTrigger struct {
	demoControl
	titleAttr     string
	priceAttr     string
	cardTitleText string
	cardPriceText string
}

func (t *demoTrigger) Title() string { return t.titleAttr }
func (t *demoTrigger) Price() string { return t.priceAttr }
func (t *demoTrigger) CardTitle() string { return t.cardTitleText }
func (t *demoTrigger) CardPrice() string { return t.cardPriceText }

type demoModal struct {
	onDismiss func()
}

func (m *demoModal) Open() { fmt.Println("[modal] open") }
func (m *demoModal) Close() { fmt.Println("[modal] closed") }
func (m *demoModal) OnDismiss(fn func()) { m.onDismiss = fn }

type demoChoices struct {
	onSelect func(option string)
}

func (c *demoChoices) SetActive(option string) { fmt.Printf("[method] %s\n", option) }
func (c *demoChoices) OnSelect(fn func(option string)) { c.onSelect = fn }

func (c *demoChoices) Select(option string) {
	if c.onSelect != nil {
		c.onSelect(option)
	}
}

type demoForm struct {
	name     string
	email    string
	onSubmit func()
}

func (f *demoForm) Name() string { return f.name }
func (f *demoForm) Email() string { return f.email }
func (f *demoForm) Reset() { f.name, f.email = "", "" }
func (f *demoForm) OnSubmit(fn func()) { f.onSubmit = fn }

func (f *demoForm) Submit() {
	if f.onSubmit != nil {
		f.onSubmit()
	}
}

type demoToasts struct{}

func (demoToasts) Toast(msg string) { fmt.Printf("[toast] %s\n", msg) }

type demoNav struct {
	done chan struct{}
}

func (n demoNav) Goto(page string) {
	fmt.Printf("[navigate] %s\n", page)
	close(n.done)
}
