// Package orders retains the single most-recent simulated order and projects
// it into the invoice and tracing pages.
package orders

import (
	"encoding/json"

	"donatecart/internal/domain"
	"donatecart/internal/infra"
	"donatecart/internal/storage"
)

// Store persists at most one order. Each Record overwrites the previous
// value; there is no order history in this demo.
type Store struct {
	kv  storage.Store
	log infra.Logger
}

// NewStore builds a Store over kv.
func NewStore(kv storage.Store, log infra.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Record persists o as the retained order. A persist failure is logged and
// swallowed; the checkout flow proceeds regardless.
func (s *Store) Record(o domain.Order) {
	raw, err := json.Marshal(o)
	if err != nil {
		s.log.Warn().Err(err).Msg("orders: marshal failed")
		return
	}
	if err := s.kv.Set(storage.KeyLastOrder, raw); err != nil {
		s.log.Warn().Err(err).Str("order_id", o.ID).Msg("orders: save failed")
	}
}

// MostRecent returns the retained order. Absent or malformed values report
// no order rather than an error.
func (s *Store) MostRecent() (domain.Order, bool) {
	raw, ok, err := s.kv.Get(storage.KeyLastOrder)
	if err != nil {
		s.log.Warn().Err(err).Msg("orders: load failed")
		return domain.Order{}, false
	}
	if !ok {
		return domain.Order{}, false
	}
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		s.log.Debug().Err(err).Msg("orders: malformed persisted order")
		return domain.Order{}, false
	}
	return o, true
}
