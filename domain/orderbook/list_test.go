package orderbook

import "testing"

func collect(l *List) []uint64 {
	var out []uint64
	for k := l.Head(); k != NilKey; k = l.Next(k) {
		out = append(out, k)
	}
	return out
}

func expectOrder(t *testing.T, l *List, want []uint64) {
	t.Helper()
	got := collect(l)
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestListPushPop(t *testing.T) {
	l := NewList()

	l.Push(10, false)
	l.Push(20, false)
	l.Push(5, true)
	expectOrder(t, l, []uint64{5, 10, 20})

	if l.Head() != 5 || l.Tail() != 20 {
		t.Fatalf("head/tail = %d/%d", l.Head(), l.Tail())
	}

	l.Pop(true)
	l.Pop(false)
	expectOrder(t, l, []uint64{10})

	l.Pop(true)
	if l.Size() != 0 || l.Head() != NilKey || l.Tail() != NilKey {
		t.Fatalf("list not empty after pops")
	}

	// Pops on empty are no-ops.
	l.Pop(true)
	l.Pop(false)
}

func TestListInsertRelative(t *testing.T) {
	l := NewList()

	if !l.Insert(NilKey, 50, true) {
		t.Fatal("insert into empty list with nil anchor failed")
	}
	if l.Insert(NilKey, 60, true) {
		t.Fatal("nil anchor must be rejected on a non-empty list")
	}
	if !l.Insert(50, 70, true) {
		t.Fatal("insert after failed")
	}
	if !l.Insert(50, 40, false) {
		t.Fatal("insert before failed")
	}
	if !l.Insert(50, 60, true) {
		t.Fatal("insert between failed")
	}
	expectOrder(t, l, []uint64{40, 50, 60, 70})

	if l.Insert(50, 60, true) {
		t.Fatal("duplicate insert must fail")
	}
	if l.Insert(99, 80, true) {
		t.Fatal("missing anchor must fail")
	}
	// Failed inserts leave the list untouched.
	expectOrder(t, l, []uint64{40, 50, 60, 70})
}

func TestListNeighbors(t *testing.T) {
	l := NewList()
	for _, k := range []uint64{1, 2, 3} {
		l.Push(k, false)
	}

	ok, prev, next := l.GetNode(2)
	if !ok || prev != 1 || next != 3 {
		t.Fatalf("GetNode(2) = %v %d %d", ok, prev, next)
	}
	if l.Prev(1) != NilKey || l.Next(3) != NilKey {
		t.Fatal("boundary neighbors must be NilKey")
	}
	if ok, _ := l.GetAdjacent(9, true); ok {
		t.Fatal("GetAdjacent on missing key must report absent")
	}
	if l.Next(9) != NilKey {
		t.Fatal("Next on missing key must be NilKey")
	}
}

func TestListRemoveAndReuse(t *testing.T) {
	l := NewList()
	for k := uint64(1); k <= 5; k++ {
		l.Push(k, false)
	}

	l.Remove(3)
	expectOrder(t, l, []uint64{1, 2, 4, 5})
	l.Remove(1)
	l.Remove(5)
	expectOrder(t, l, []uint64{2, 4})

	// Removing an absent key is a no-op.
	l.Remove(99)

	// Freed slots are recycled; the arena must not grow.
	before := len(l.nodes)
	l.Push(6, false)
	l.Push(7, false)
	l.Push(8, false)
	if len(l.nodes) != before {
		t.Fatalf("arena grew from %d to %d despite free slots", before, len(l.nodes))
	}
	expectOrder(t, l, []uint64{2, 4, 6, 7, 8})
}

func TestListRejectsSentinelAndDuplicates(t *testing.T) {
	l := NewList()
	l.Push(NilKey, false)
	if l.Size() != 0 {
		t.Fatal("NilKey must never be stored")
	}
	l.Push(7, false)
	l.Push(7, true)
	if l.Size() != 1 {
		t.Fatal("duplicate push must be ignored")
	}
}
