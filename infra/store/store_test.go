package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestPutGet(t *testing.T) {
	a, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	if err := a.Put(42, []byte("record")); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := a.Get(42)
	if err != nil || !bytes.Equal(got, []byte("record")) {
		t.Fatalf("get = %q (%v)", got, err)
	}

	if _, err := a.Get(43); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: %v", err)
	}
}
