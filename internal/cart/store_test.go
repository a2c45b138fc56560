package cart

import (
	"errors"
	"testing"
	"time"

	"donatecart/internal/domain"
	"donatecart/internal/infra"
	"donatecart/internal/storage"
)

type toastRecorder struct {
	msgs []string
}

func (r *toastRecorder) Toast(msg string) { r.msgs = append(r.msgs, msg) }

func newTestStore(t *testing.T) (*Store, *storage.MemStore, *toastRecorder) {
	t.Helper()
	kv := storage.NewMemStore()
	toasts := &toastRecorder{}
	s := NewStore(kv, infra.Nop(), toasts)
	s.SetClock(func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) })
	return s, kv, toasts
}

func TestLoadEmptyAndCorrupt(t *testing.T) {
	s, kv, _ := newTestStore(t)

	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty cart on missing key, got %d items", len(got))
	}

	if err := kv.Set(storage.KeyCart, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty cart on corrupt value, got %d items", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _, _ := newTestStore(t)

	want := domain.Cart{
		{Title: "Meal Kit", Price: 25, AddedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		{Title: "Custom Donation", Price: 10, Custom: true, AddedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	s.Save(want)
	got := s.Load()
	if len(got) != len(want) {
		t.Fatalf("round trip length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestAddNormalizes(t *testing.T) {
	s, _, toasts := newTestStore(t)

	s.Add(AddInput{Title: "", Price: -5})
	got := s.Load()
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Title != "Donation" {
		t.Fatalf("empty title not defaulted: %q", got[0].Title)
	}
	if got[0].Price != 0 {
		t.Fatalf("negative price not coerced: %v", got[0].Price)
	}
	if got[0].AddedAt.IsZero() {
		t.Fatalf("AddedAt not stamped")
	}
	if len(toasts.msgs) != 1 || toasts.msgs[0] != "Added to cart: Donation" {
		t.Fatalf("unexpected toasts: %v", toasts.msgs)
	}
}

func TestRemoveAt(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add(AddInput{Title: "A", Price: 1})
	s.Add(AddInput{Title: "B", Price: 2})
	s.Add(AddInput{Title: "C", Price: 3})

	s.RemoveAt(1)
	got := s.Load()
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "C" {
		t.Fatalf("unexpected cart after remove: %+v", got)
	}

	for _, idx := range []int{-1, 2, 99} {
		s.RemoveAt(idx)
		if c := s.Load(); len(c) != 2 {
			t.Fatalf("RemoveAt(%d) changed the cart: %d items", idx, len(c))
		}
	}
}

func TestClearNotifiesAndSignals(t *testing.T) {
	s, kv, toasts := newTestStore(t)
	s.Add(AddInput{Title: "A", Price: 1})

	var fired int
	cancel := s.Subscribe(func() { fired++ })
	defer cancel()

	s.Clear()
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("cart not empty after Clear: %d items", len(got))
	}
	if fired == 0 {
		t.Fatalf("Clear did not notify subscribers")
	}
	if _, ok, _ := kv.Get(storage.KeyCartCleared); ok {
		t.Fatalf("cleared signal key should be transient")
	}
	last := toasts.msgs[len(toasts.msgs)-1]
	if last != "Cart cleared" {
		t.Fatalf("unexpected toast: %q", last)
	}
}

func TestSubscribeCancel(t *testing.T) {
	s, _, _ := newTestStore(t)

	var a, b int
	cancelA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	s.Save(domain.Cart{})
	cancelA()
	s.Save(domain.Cart{})

	if a != 1 {
		t.Fatalf("cancelled subscriber still firing: %d", a)
	}
	if b != 2 {
		t.Fatalf("active subscriber missed saves: %d", b)
	}
}

func TestPersistFailureProceeds(t *testing.T) {
	s, kv, toasts := newTestStore(t)
	kv.FailWrites = errors.New("quota exceeded")

	var fired int
	s.Subscribe(func() { fired++ })

	s.Add(AddInput{Title: "A", Price: 1})
	if fired == 0 {
		t.Fatalf("subscribers should be notified even when the persist fails")
	}
	if len(toasts.msgs) == 0 {
		t.Fatalf("toast should still be shown on persist failure")
	}
}
