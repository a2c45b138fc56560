package storage

import (
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, ok, err := s.Get(KeyCart); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	payload := []byte(`[{"title":"Meal Kit","price":25}]`)
	if err := s.Set(KeyCart, payload); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(KeyCart)
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Fatalf("value mismatch: got %s want %s", got, payload)
	}

	if err := s.Set(KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Get(KeyCart)
	if string(got) != `[]` {
		t.Fatalf("overwrite not visible: got %s", got)
	}

	if err := s.Delete(KeyCart); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(KeyCart); ok {
		t.Fatalf("key still present after Delete")
	}
	if err := s.Delete(KeyCart); err != nil {
		t.Fatalf("Delete of absent key should be a no-op: %v", err)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	for _, key := range []string{"", "  ", "../outside", "a/b", "..", "nested/../../etc"} {
		if err := s.Set(key, []byte("x")); err == nil {
			t.Fatalf("Set(%q) accepted an invalid key", key)
		}
	}
}

func TestNewFileStoreRequiresBasePath(t *testing.T) {
	if _, err := NewFileStore("  "); err == nil {
		t.Fatalf("expected error for blank base path")
	}
}
