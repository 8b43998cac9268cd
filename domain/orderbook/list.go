package orderbook

// NilKey is the null sentinel for list keys. It is never stored and is
// returned in place of a missing neighbor.
const NilKey uint64 = 0

const none = int32(-1)

type listNode struct {
	key  uint64
	prev int32
	next int32
}

// List is a bidirectional ordered collection of opaque uint64 keys.
//
// Nodes live in an arena of integer-indexed slots with explicit prev/next
// slot references and a free list for removed slots, so no node ever holds
// a Go pointer to another node. A map provides key -> slot lookup.
//
// The list itself imposes no ordering; callers position keys relative to an
// anchor, so any sort order is an invariant of the insertion algorithm.
type List struct {
	nodes []listNode
	index map[uint64]int32
	free  []int32
	head  int32
	tail  int32
}

func NewList() *List {
	return &List{
		index: make(map[uint64]int32),
		head:  none,
		tail:  none,
	}
}

func (l *List) Size() int { return len(l.index) }

func (l *List) Exists(key uint64) bool {
	_, ok := l.index[key]
	return ok
}

// Head returns the first key, or NilKey when the list is empty.
func (l *List) Head() uint64 {
	if l.head == none {
		return NilKey
	}
	return l.nodes[l.head].key
}

// Tail returns the last key, or NilKey when the list is empty.
func (l *List) Tail() uint64 {
	if l.tail == none {
		return NilKey
	}
	return l.nodes[l.tail].key
}

// GetNode reports whether key exists along with its neighbors.
// Missing neighbors are reported as NilKey.
func (l *List) GetNode(key uint64) (bool, uint64, uint64) {
	i, ok := l.index[key]
	if !ok {
		return false, NilKey, NilKey
	}
	return true, l.keyAt(l.nodes[i].prev), l.keyAt(l.nodes[i].next)
}

// GetAdjacent returns the neighbor of key in the given direction
// (forward=true walks head to tail).
func (l *List) GetAdjacent(key uint64, forward bool) (bool, uint64) {
	i, ok := l.index[key]
	if !ok {
		return false, NilKey
	}
	if forward {
		return true, l.keyAt(l.nodes[i].next)
	}
	return true, l.keyAt(l.nodes[i].prev)
}

// Next returns the key after key, or NilKey at the tail or when key is absent.
func (l *List) Next(key uint64) uint64 {
	_, n := l.GetAdjacent(key, true)
	return n
}

// Prev returns the key before key, or NilKey at the head or when key is absent.
func (l *List) Prev(key uint64) uint64 {
	_, p := l.GetAdjacent(key, false)
	return p
}

// Insert links key adjacent to anchor in the given direction. It succeeds
// only when key is not already present and anchor exists; the NilKey anchor
// is accepted for an empty list only. On failure it returns false without
// mutating state, so callers branch instead of handling an error.
func (l *List) Insert(anchor, key uint64, forward bool) bool {
	if key == NilKey || l.Exists(key) {
		return false
	}
	if anchor == NilKey {
		if len(l.index) != 0 {
			return false
		}
		l.Push(key, true)
		return true
	}
	ai, ok := l.index[anchor]
	if !ok {
		return false
	}

	i := l.alloc(key)
	if forward {
		next := l.nodes[ai].next
		l.nodes[i].prev = ai
		l.nodes[i].next = next
		l.nodes[ai].next = i
		if next == none {
			l.tail = i
		} else {
			l.nodes[next].prev = i
		}
	} else {
		prev := l.nodes[ai].prev
		l.nodes[i].next = ai
		l.nodes[i].prev = prev
		l.nodes[ai].prev = i
		if prev == none {
			l.head = i
		} else {
			l.nodes[prev].next = i
		}
	}
	return true
}

// Push inserts key at the head or tail. Duplicate and sentinel keys are
// ignored.
func (l *List) Push(key uint64, toHead bool) {
	if key == NilKey || l.Exists(key) {
		return
	}
	i := l.alloc(key)
	if l.head == none {
		l.head, l.tail = i, i
		return
	}
	if toHead {
		l.nodes[i].next = l.head
		l.nodes[l.head].prev = i
		l.head = i
	} else {
		l.nodes[i].prev = l.tail
		l.nodes[l.tail].next = i
		l.tail = i
	}
}

// Pop removes the current head or tail. It is a no-op on an empty list.
func (l *List) Pop(fromHead bool) {
	if fromHead {
		if l.head != none {
			l.unlink(l.head)
		}
		return
	}
	if l.tail != none {
		l.unlink(l.tail)
	}
}

// Remove deletes key from the list; removing an absent key is a no-op.
func (l *List) Remove(key uint64) {
	if i, ok := l.index[key]; ok {
		l.unlink(i)
	}
}

func (l *List) keyAt(i int32) uint64 {
	if i == none {
		return NilKey
	}
	return l.nodes[i].key
}

func (l *List) alloc(key uint64) int32 {
	var i int32
	if n := len(l.free); n > 0 {
		i = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.nodes = append(l.nodes, listNode{})
		i = int32(len(l.nodes) - 1)
	}
	l.nodes[i] = listNode{key: key, prev: none, next: none}
	l.index[key] = i
	return i
}

func (l *List) unlink(i int32) {
	n := l.nodes[i]
	if n.prev == none {
		l.head = n.next
	} else {
		l.nodes[n.prev].next = n.next
	}
	if n.next == none {
		l.tail = n.prev
	} else {
		l.nodes[n.next].prev = n.prev
	}
	delete(l.index, n.key)
	l.nodes[i] = listNode{prev: none, next: none}
	l.free = append(l.free, i)
}
