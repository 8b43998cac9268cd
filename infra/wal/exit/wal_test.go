package exit

import (
	"testing"
)

func openTest(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestAppendGet(t *testing.T) {
	o := openTest(t)

	if err := o.Append(7, []byte("hello")); err != nil {
		t.Fatalf("append: %v", err)
	}
	rec, err := o.Get(7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Seq != 7 || rec.State != StateNew || string(rec.Payload) != "hello" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestStateTransitions(t *testing.T) {
	o := openTest(t)
	_ = o.Append(1, []byte("x"))

	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := o.Get(1)
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("after sent = %+v", rec)
	}

	// A second send attempt bumps the retry count.
	_ = o.MarkSent(1)
	rec, _ = o.Get(1)
	if rec.Retries != 2 {
		t.Fatalf("retries = %d, want 2", rec.Retries)
	}

	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = o.Get(1)
	if rec.State != StateAcked {
		t.Fatalf("after ack = %+v", rec)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	o := openTest(t)
	_ = o.Append(1, []byte("a"))
	_ = o.Append(2, []byte("b"))
	_ = o.Append(3, []byte("c"))
	_ = o.MarkSent(2)
	_ = o.MarkAcked(3)

	var seqs []uint64
	err := o.ScanPending(func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	// NEW and SENT are pending (a SENT survivor means the publish outcome
	// is unknown); ACKED is not. Order is by sequence.
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Fatalf("pending = %v, want [1 2]", seqs)
	}
}

func TestDelete(t *testing.T) {
	o := openTest(t)
	_ = o.Append(1, []byte("a"))
	_ = o.MarkAcked(1)

	if err := o.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := o.Get(1); err == nil {
		t.Fatal("deleted record still present")
	}
}
