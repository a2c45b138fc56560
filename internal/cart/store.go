// Package cart owns the persisted cart value. All other components read the
// cart through Load and mutate it through Add, RemoveAt and Clear; none of
// them touch the underlying storage key directly.
package cart

import (
	"encoding/json"
	"sync"
	"time"

	"donatecart/internal/domain"
	"donatecart/internal/infra"
	"donatecart/internal/storage"
	"donatecart/internal/ui"
)

// AddInput is the caller-facing shape of a new cart line.
type AddInput struct {
	Title  string
	Price  float64
	Note   string
	Custom bool
}

// Store reads and writes the cart under the well-known storage key. Every
// successful save notifies all in-process subscribers; cross-process
// observers watch the same key through the external change feed.
type Store struct {
	kv      storage.Store
	log     infra.Logger
	notices ui.Notifier
	now     func() time.Time

	mu        sync.Mutex
	nextSub   int
	listeners map[int]func()
}

// NewStore builds a Store over kv. notices may be nil.
func NewStore(kv storage.Store, log infra.Logger, notices ui.Notifier) *Store {
	return &Store{
		kv:        kv,
		log:       log,
		notices:   notices,
		now:       time.Now,
		listeners: make(map[int]func()),
	}
}

// Load returns the persisted cart. A missing or malformed value yields an
// empty cart, never an error; corruption heals on the next save.
func (s *Store) Load() domain.Cart {
	raw, ok, err := s.kv.Get(storage.KeyCart)
	if err != nil {
		s.log.Warn().Err(err).Msg("cart: load failed")
		return domain.Cart{}
	}
	if !ok {
		return domain.Cart{}
	}
	var c domain.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		s.log.Debug().Err(err).Msg("cart: malformed persisted cart, treating as empty")
		return domain.Cart{}
	}
	if c == nil {
		c = domain.Cart{}
	}
	return c
}

// Save persists the cart and notifies subscribers. A persist failure is
// logged and otherwise ignored; in-memory consumers keep going and the next
// successful save converges persisted state.
func (s *Store) Save(c domain.Cart) {
	raw, err := json.Marshal(c)
	if err != nil {
		s.log.Warn().Err(err).Msg("cart: marshal failed")
		return
	}
	if err := s.kv.Set(storage.KeyCart, raw); err != nil {
		s.log.Warn().Err(err).Msg("cart: save failed")
	}
	s.notify()
}

// Add appends a normalized item and persists.
func (s *Store) Add(in AddInput) {
	title := in.Title
	if title == "" {
		title = "Donation"
	}
	item := domain.CartItem{
		Title:   title,
		Price:   domain.NormalizePrice(in.Price),
		Note:    in.Note,
		Custom:  in.Custom,
		AddedAt: s.now(),
	}
	c := append(s.Load(), item)
	s.Save(c)
	s.toast("Added to cart: " + title)
}

// RemoveAt deletes the item at index. Out-of-range indexes are a no-op.
func (s *Store) RemoveAt(index int) {
	c := s.Load()
	if index < 0 || index >= len(c) {
		s.log.Debug().Int("index", index).Msg("cart: remove index out of range")
		return
	}
	removed := c[index]
	c = append(c[:index], c[index+1:]...)
	s.Save(c)
	s.toast("Removed: " + removed.Title)
}

// Clear empties the cart and touches the cleared-signal key so external
// observers see a change even when the cart value was already empty.
func (s *Store) Clear() {
	s.Save(domain.Cart{})
	if err := s.kv.Set(storage.KeyCartCleared, []byte(s.now().UTC().Format(time.RFC3339Nano))); err != nil {
		s.log.Debug().Err(err).Msg("cart: cleared signal write failed")
	} else if err := s.kv.Delete(storage.KeyCartCleared); err != nil {
		s.log.Debug().Err(err).Msg("cart: cleared signal delete failed")
	}
	s.toast("Cart cleared")
}

// Subscribe registers fn to run after every save. The returned cancel
// removes the subscription.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetClock overrides the timestamp source, for tests.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Store) toast(msg string) {
	if s.notices != nil {
		s.notices.Toast(msg)
	}
}
