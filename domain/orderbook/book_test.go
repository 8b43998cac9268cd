package orderbook

import "testing"

func constQty(q int64) func(uint64) int64 {
	return func(uint64) int64 { return q }
}

func TestBookLevelOrdering(t *testing.T) {
	bids := NewBook(Buy)
	for i, price := range []int64{100, 300, 200, 250} {
		bids.Add(price, uint64(i+1))
	}
	if bids.BestPrice() != 300 {
		t.Fatalf("best bid = %d, want 300", bids.BestPrice())
	}

	var prices []int64
	bids.WalkLevels(func(p int64, _ *List) bool {
		prices = append(prices, p)
		return true
	})
	want := []int64{300, 250, 200, 100}
	for i := range want {
		if prices[i] != want[i] {
			t.Fatalf("bid levels = %v, want %v", prices, want)
		}
	}

	asks := NewBook(Sell)
	for i, price := range []int64{100, 300, 200, 250} {
		asks.Add(price, uint64(i+10))
	}
	if asks.BestPrice() != 100 {
		t.Fatalf("best ask = %d, want 100", asks.BestPrice())
	}
}

func TestBookFIFOWithinLevel(t *testing.T) {
	b := NewBook(Sell)
	b.Add(100, 1)
	b.Add(100, 2)
	b.Add(100, 3)

	if b.FirstAt(100) != 1 {
		t.Fatalf("first = %d, want 1", b.FirstAt(100))
	}
	b.Remove(100, 1)
	if b.FirstAt(100) != 2 {
		t.Fatalf("first after remove = %d, want 2", b.FirstAt(100))
	}
	if b.OrdersAt(100) != 2 {
		t.Fatalf("orders at level = %d, want 2", b.OrdersAt(100))
	}
}

func TestBookLevelDropsWhenEmpty(t *testing.T) {
	b := NewBook(Buy)
	b.Add(100, 1)
	b.Add(200, 2)
	b.Remove(200, 2)
	if b.Levels() != 1 || b.BestPrice() != 100 {
		t.Fatalf("levels=%d best=%d after emptying a level", b.Levels(), b.BestPrice())
	}
	// Unknown price and id removals are no-ops.
	b.Remove(999, 1)
	b.Remove(100, 42)
	if b.Levels() != 1 {
		t.Fatal("no-op removals changed the book")
	}
}

func TestBookPageWholeBook(t *testing.T) {
	b := NewBook(Sell)
	b.Add(100, 1)
	b.Add(100, 2)
	b.Add(200, 3)

	pg := b.PageFrom(10, 10, 0, 0, constQty(5))
	if len(pg.Prices) != 2 {
		t.Fatalf("levels = %d, want 2", len(pg.Prices))
	}
	if pg.Prices[0] != 100 || pg.Quantities[0] != 10 {
		t.Fatalf("level 0 = %d/%d, want 100/10", pg.Prices[0], pg.Quantities[0])
	}
	if pg.Prices[1] != 200 || pg.Quantities[1] != 5 {
		t.Fatalf("level 1 = %d/%d, want 200/5", pg.Prices[1], pg.Quantities[1])
	}
	if pg.NextPrice != 0 || pg.NextOrder != 0 {
		t.Fatalf("cursor = (%d,%d), want terminal (0,0)", pg.NextPrice, pg.NextOrder)
	}
}

func TestBookPageResumesAcrossLevels(t *testing.T) {
	b := NewBook(Buy)
	for i := 0; i < 5; i++ {
		b.Add(int64(100+i*10), uint64(i+1))
	}

	var total int
	cp, co := int64(0), uint64(0)
	for {
		pg := b.PageFrom(2, 10, cp, co, constQty(1))
		total += len(pg.Prices)
		if pg.NextPrice == 0 && pg.NextOrder == 0 {
			break
		}
		cp, co = pg.NextPrice, pg.NextOrder
	}
	if total != 5 {
		t.Fatalf("visited %d levels across pages, want 5", total)
	}
}

func TestBookPageSplitsDeepLevel(t *testing.T) {
	b := NewBook(Sell)
	for id := uint64(1); id <= 5; id++ {
		b.Add(100, id)
	}
	b.Add(200, 9)

	pg := b.PageFrom(10, 2, 0, 0, constQty(1))
	if len(pg.Prices) != 1 || pg.Prices[0] != 100 || pg.Quantities[0] != 2 {
		t.Fatalf("first chunk = %v/%v", pg.Prices, pg.Quantities)
	}
	if pg.NextPrice != 100 || pg.NextOrder != 2 {
		t.Fatalf("cursor = (%d,%d), want (100,2)", pg.NextPrice, pg.NextOrder)
	}

	// Resuming re-emits the same price; callers sum the chunks.
	pg = b.PageFrom(10, 2, pg.NextPrice, pg.NextOrder, constQty(1))
	if pg.Prices[0] != 100 || pg.Quantities[0] != 2 {
		t.Fatalf("second chunk = %v/%v", pg.Prices, pg.Quantities)
	}
	if pg.NextPrice != 100 || pg.NextOrder != 4 {
		t.Fatalf("cursor = (%d,%d), want (100,4)", pg.NextPrice, pg.NextOrder)
	}

	pg = b.PageFrom(10, 2, pg.NextPrice, pg.NextOrder, constQty(1))
	if len(pg.Prices) != 2 || pg.Quantities[0] != 1 || pg.Prices[1] != 200 {
		t.Fatalf("final chunk = %v/%v", pg.Prices, pg.Quantities)
	}
	if pg.NextPrice != 0 || pg.NextOrder != 0 {
		t.Fatalf("cursor = (%d,%d), want terminal", pg.NextPrice, pg.NextOrder)
	}
}

func TestBookPageCursorSurvivesRemovedLevel(t *testing.T) {
	b := NewBook(Sell)
	b.Add(100, 1)
	b.Add(200, 2)
	b.Add(300, 3)

	pg := b.PageFrom(1, 10, 0, 0, constQty(1))
	if pg.NextPrice != 200 {
		t.Fatalf("cursor price = %d, want 200", pg.NextPrice)
	}

	// The cursor level vanishes between calls; paging continues at the
	// next level that sorts after it.
	b.Remove(200, 2)
	pg = b.PageFrom(10, 10, pg.NextPrice, pg.NextOrder, constQty(1))
	if len(pg.Prices) != 1 || pg.Prices[0] != 300 {
		t.Fatalf("resumed page = %v, want [300]", pg.Prices)
	}
}

func TestBookPageCursorSurvivesCanceledCursorOrder(t *testing.T) {
	b := NewBook(Sell)
	for id := uint64(1); id <= 4; id++ {
		b.Add(100, id)
	}
	qty := func(id uint64) int64 { return int64(id) }

	pg := b.PageFrom(1, 2, 0, 0, qty)
	if pg.Quantities[0] != 1+2 || pg.NextPrice != 100 || pg.NextOrder != 2 {
		t.Fatalf("first chunk = %v cursor (%d,%d)", pg.Quantities, pg.NextPrice, pg.NextOrder)
	}

	// The cursor order is canceled between calls; the resumed chunk must
	// pick up after its old position, not recount the level head.
	b.Remove(100, 2)
	pg = b.PageFrom(1, 2, pg.NextPrice, pg.NextOrder, qty)
	if len(pg.Prices) != 1 || pg.Quantities[0] != 3+4 {
		t.Fatalf("resumed chunk = %v/%v", pg.Prices, pg.Quantities)
	}
	if pg.NextPrice != 0 || pg.NextOrder != 0 {
		t.Fatalf("cursor = (%d,%d), want terminal", pg.NextPrice, pg.NextOrder)
	}
}
