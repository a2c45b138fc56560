// Package uitest provides in-memory hook-point implementations for tests
// and headless harnesses.
package uitest

import "donatecart/internal/ui"

// Text records the last value written to a TextRegion.
type Text struct {
	Texts []string
}

func (t *Text) SetText(s string) { t.Texts = append(t.Texts, s) }

// Last returns the most recent text, or "" when nothing was rendered.
func (t *Text) Last() string {
	if len(t.Texts) == 0 {
		return ""
	}
	return t.Texts[len(t.Texts)-1]
}

// Status records Show/Hide calls on a StatusRegion.
type Status struct {
	Visible bool
	Text    string
}

func (s *Status) Show(text string) { s.Visible, s.Text = true, text }
func (s *Status) Hide() { s.Visible = false }

// List records rendered rows and lets tests fire row removals.
type List struct {
	Rows     []ui.Row
	onRemove func(index int)
}

func (l *List) SetRows(rows []ui.Row) { l.Rows = rows }
func (l *List) OnRemove(fn func(index int)) { l.onRemove = fn }

// Remove simulates the user activating a row's remove control.
func (l *List) Remove(index int) {
	if l.onRemove != nil {
		l.onRemove(index)
	}
}

// Input is a scriptable text input.
type Input struct {
	value    string
	onChange func()
}

func (i *Input) Value() string { return i.value }
func (i *Input) SetValue(s string) { i.value = s }
func (i *Input) OnChange(fn func()) { i.onChange = fn }

// Type sets the value and fires the change callback, like a keystroke.
func (i *Input) Type(s string) {
	i.value = s
	if i.onChange != nil {
		i.onChange()
	}
}

// Control is a scriptable button.
type Control struct {
	Enabled    bool
	Binds      int
	onActivate func()
}

func (c *Control) SetEnabled(enabled bool) { c.Enabled = enabled }

func (c *Control) OnActivate(fn func()) {
	c.Binds++
	c.onActivate = fn
}

// Activate simulates the user pressing the control.
func (c *Control) Activate() {
	if c.onActivate != nil {
		c.onActivate()
	}
}

// Trigger is a fixed-price add-to-cart control with scriptable attributes.
type Trigger struct {
	Control
	TitleAttr     string
	PriceAttr     string
	CardTitleText string
	CardPriceText string
}

func (t *Trigger) Title() string { return t.TitleAttr }
func (t *Trigger) Price() string { return t.PriceAttr }
func (t *Trigger) CardTitle() string { return t.CardTitleText }
func (t *Trigger) CardPrice() string { return t.CardPriceText }

// Modal tracks open state and lets tests fire a dismiss.
type Modal struct {
	Opened    bool
	OpenCount int
	onDismiss func()
}

func (m *Modal) Open() { m.Opened = true; m.OpenCount++ }
func (m *Modal) Close() { m.Opened = false }
func (m *Modal) OnDismiss(fn func()) { m.onDismiss = fn }

// Dismiss simulates cancel or a backdrop click.
func (m *Modal) Dismiss() {
	if m.onDismiss != nil {
		m.onDismiss()
	}
}

// Choices is a scriptable payment-method group.
type Choices struct {
	Active   string
	onSelect func(option string)
}

func (c *Choices) SetActive(option string) { c.Active = option }
func (c *Choices) OnSelect(fn func(option string)) { c.onSelect = fn }

// Select simulates the user picking an option.
func (c *Choices) Select(option string) {
	if c.onSelect != nil {
		c.onSelect(option)
	}
}

// Form is a scriptable donor-details form.
type Form struct {
	NameValue  string
	EmailValue string
	Resets     int
	onSubmit   func()
}

func (f *Form) Name() string { return f.NameValue }
func (f *Form) Email() string { return f.EmailValue }
func (f *Form) Reset() { f.Resets++ }
func (f *Form) OnSubmit(fn func()) { f.onSubmit = fn }

// Submit simulates the user submitting the form.
func (f *Form) Submit() {
	if f.onSubmit != nil {
		f.onSubmit()
	}
}

// Toasts records transient notices.
type Toasts struct {
	Msgs []string
}

func (t *Toasts) Toast(msg string) { t.Msgs = append(t.Msgs, msg) }

// Last returns the most recent toast, or "".
func (t *Toasts) Last() string {
	if len(t.Msgs) == 0 {
		return ""
	}
	return t.Msgs[len(t.Msgs)-1]
}

// Nav records page navigations.
type Nav struct {
	Pages []string
}

func (n *Nav) Goto(page string) { n.Pages = append(n.Pages, page) }
