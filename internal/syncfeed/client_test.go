package syncfeed_test

import (
	"context"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"donatecart/internal/http/handlers"
	"donatecart/internal/http/httpapi"
	"donatecart/internal/infra"
	"donatecart/internal/storage"
	"donatecart/internal/syncfeed"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := handlers.NewApp(storage.NewMemStore(), syncfeed.NewLog(), infra.Nop())
	srv := httptest.NewServer(httpapi.NewRouter(app, infra.Nop(), 10000))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteStoreRoundTrip(t *testing.T) {
	srv := newServer(t)
	store := syncfeed.NewRemoteStore(srv.URL)

	if _, ok, err := store.Get(storage.KeyCart); err != nil || ok {
		t.Fatalf("get absent: ok=%v err=%v", ok, err)
	}

	payload := []byte(`[{"title":"Meal Kit","price":25}]`)
	if err := store.Set(storage.KeyCart, payload); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.Get(storage.KeyCart)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Fatalf("value mismatch: %s", got)
	}

	if err := store.Delete(storage.KeyCart); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(storage.KeyCart); ok {
		t.Fatalf("value survived delete")
	}
}

func TestClientPollAdvancesCursor(t *testing.T) {
	srv := newServer(t)
	store := syncfeed.NewRemoteStore(srv.URL)
	client := syncfeed.NewClient(srv.URL, time.Millisecond, infra.Nop())
	ctx := context.Background()

	keys, err := client.Poll(ctx)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("fresh feed returned keys: %v", keys)
	}

	if err := store.Set(storage.KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(storage.KeyLastOrder, []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	keys, err = client.Poll(ctx)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{storage.KeyCart, storage.KeyLastOrder}) {
		t.Fatalf("keys = %v", keys)
	}

	// Nothing new: the cursor advanced past the writes already seen.
	keys, err = client.Poll(ctx)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("cursor did not advance: %v", keys)
	}
}

func TestClientRunInvokesCallback(t *testing.T) {
	srv := newServer(t)
	store := syncfeed.NewRemoteStore(srv.URL)
	client := syncfeed.NewClient(srv.URL, 5*time.Millisecond, infra.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 8)
	go client.Run(ctx, func(key string) { changed <- key })

	if err := store.Set(storage.KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case key := <-changed:
		if key != storage.KeyCart {
			t.Fatalf("changed key = %q, want cart", key)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no change delivered before timeout")
	}
}
