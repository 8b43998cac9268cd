package orderbook

// Book is one side of a pair's order book: a price sequence kept in side
// order (bids descending, asks ascending) and a FIFO queue of order ids per
// price. Both structures are ordered-index lists, so sort order and arrival
// order are invariants of the insertion paths below, not of the container.
//
// The book stores ids only; order quantities live in the registry and are
// resolved through a callback where needed.
type Book struct {
	side   Side
	prices *List
	queues map[uint64]*List
}

func NewBook(side Side) *Book {
	return &Book{
		side:   side,
		prices: NewList(),
		queues: make(map[uint64]*List),
	}
}

func (b *Book) Side() Side { return b.side }

// BestPrice returns the head-of-book price, 0 when the side is empty.
func (b *Book) BestPrice() int64 { return int64(b.prices.Head()) }

func (b *Book) Levels() int { return b.prices.Size() }

func (b *Book) Empty() bool { return b.prices.Size() == 0 }

// better reports whether price a sorts ahead of price b on this side.
func (b *Book) better(a, p uint64) bool {
	if b.side == Buy {
		return a > p
	}
	return a < p
}

// Add appends id to the FIFO queue at price, creating and positioning the
// level by neighbor comparison when it does not exist yet.
func (b *Book) Add(price int64, id uint64) {
	key := uint64(price)
	q, ok := b.queues[key]
	if !ok {
		b.insertLevel(key)
		q = NewList()
		b.queues[key] = q
	}
	q.Push(id, false)
}

// Remove unlinks id from the queue at price and drops the level when its
// queue empties. Unknown prices and ids are no-ops.
func (b *Book) Remove(price int64, id uint64) {
	key := uint64(price)
	q, ok := b.queues[key]
	if !ok {
		return
	}
	q.Remove(id)
	if q.Size() == 0 {
		b.prices.Remove(key)
		delete(b.queues, key)
	}
}

// FirstAt returns the oldest order id resting at price, NilKey when none.
func (b *Book) FirstAt(price int64) uint64 {
	if q, ok := b.queues[uint64(price)]; ok {
		return q.Head()
	}
	return NilKey
}

// OrdersAt returns the queue length at price.
func (b *Book) OrdersAt(price int64) int {
	if q, ok := b.queues[uint64(price)]; ok {
		return q.Size()
	}
	return 0
}

// WalkLevels visits levels best-first until fn returns false.
func (b *Book) WalkLevels(fn func(price int64, queue *List) bool) {
	for key := b.prices.Head(); key != NilKey; key = b.prices.Next(key) {
		if !fn(int64(key), b.queues[key]) {
			return
		}
	}
}

func (b *Book) insertLevel(key uint64) {
	cur := b.prices.Head()
	if cur == NilKey {
		b.prices.Push(key, true)
		return
	}
	for cur != NilKey && b.better(cur, key) {
		cur = b.prices.Next(cur)
	}
	if cur == NilKey {
		b.prices.Push(key, false)
		return
	}
	b.prices.Insert(cur, key, false)
}

// Page is one chunk of a resumable depth snapshot. Quantities aggregate the
// remaining quantity of the orders visited; when a level is split across
// calls the same price appears again in the next page and callers sum the
// entries. The terminal cursor is (0, 0).
type Page struct {
	Prices     []int64
	Quantities []int64
	NextPrice  int64
	NextOrder  uint64
}

// PageFrom walks up to maxLevels levels and maxOrders orders per level from
// the continuation cursor, resolving per-order remaining quantity through
// remaining. Repeated calls with the returned cursor terminate for books of
// any depth.
func (b *Book) PageFrom(maxLevels, maxOrders int, cursorPrice int64, cursorOrder uint64, remaining func(id uint64) int64) Page {
	pg := Page{}
	if maxLevels <= 0 || maxOrders <= 0 {
		return pg
	}

	level := b.resumeLevel(uint64(cursorPrice))
	resumed := cursorOrder != NilKey

	for level != NilKey && len(pg.Prices) < maxLevels {
		q := b.queues[level]

		id := q.Head()
		if resumed {
			resumed = false
			if q.Exists(cursorOrder) {
				id = q.Next(cursorOrder)
			} else {
				// Cursor order gone since the last page. Level queues are
				// FIFO over ids issued in order, so everything at or below
				// the cursor id was already reported.
				for id != NilKey && id <= cursorOrder {
					id = q.Next(id)
				}
			}
		}

		var qty int64
		var visited int
		var last uint64
		for id != NilKey && visited < maxOrders {
			qty += remaining(id)
			last = id
			visited++
			id = q.Next(id)
		}
		pg.Prices = append(pg.Prices, int64(level))
		pg.Quantities = append(pg.Quantities, qty)

		if id != NilKey {
			// Level not exhausted: resume it on the next call.
			pg.NextPrice = int64(level)
			pg.NextOrder = last
			return pg
		}
		level = b.prices.Next(level)
	}

	if level != NilKey {
		pg.NextPrice = int64(level)
	}
	return pg
}

// resumeLevel maps a cursor price to the level to continue from: the head
// for a zero cursor, the level itself when it still exists, otherwise the
// first level sorting after it.
func (b *Book) resumeLevel(cursor uint64) uint64 {
	if cursor == NilKey {
		return b.prices.Head()
	}
	if b.prices.Exists(cursor) {
		return cursor
	}
	level := b.prices.Head()
	for level != NilKey && b.better(level, cursor) {
		level = b.prices.Next(level)
	}
	return level
}
