package engine

import (
	"testing"

	"vulcan/domain/orderbook"
)

func TestAccumulationHoldsCrossedOrders(t *testing.T) {
	e, sink := newTestEngine(ModeOpen)

	mustAdd(t, e, 1, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000)
	mustAdd(t, e, 2, "s", orderbook.Sell, orderbook.Limit, 3000, 80_000)

	if len(sink.execs) != 0 {
		t.Fatal("no matching during accumulation")
	}
	if !e.Crossed() {
		t.Fatal("book must report crossed")
	}
	// Only limit orders enter an auction book.
	if _, err := e.AddOrder(3, "b", orderbook.Buy, orderbook.Market, 0, 100_000); CodeOf(err) != CodeTypeNotAllowed {
		t.Fatalf("market during auction: %v", err)
	}
	if _, err := e.AddOrder(3, "b", orderbook.Buy, orderbook.IOC, 6000, 100_000); CodeOf(err) != CodeTypeNotAllowed {
		t.Fatalf("ioc during auction: %v", err)
	}
}

func TestAuctionPriceGating(t *testing.T) {
	e, _ := newTestEngine(ModeLiveTrading)

	if err := e.SetAuctionPrice(4500, 10_000); CodeOf(err) != CodeAuctionLiveMode {
		t.Fatalf("price in live mode: %v", err)
	}

	if err := e.SetMode(ModeOpen); err != nil {
		t.Fatalf("to OPEN: %v", err)
	}
	if err := e.SetAuctionPrice(4550, 10_000); CodeOf(err) != CodePricePrecision {
		t.Fatalf("off-tick auction price: %v", err)
	}
	if err := e.SetAuctionPrice(4500, 0); CodeOf(err) != CodeAuctionBounds {
		t.Fatalf("zero percentage: %v", err)
	}

	if err := e.SetAuctionBounds(4000, 5000); err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if err := e.SetAuctionPrice(3900, 10_000); CodeOf(err) != CodeAuctionBounds {
		t.Fatalf("below lower bound: %v", err)
	}
	if err := e.SetAuctionPrice(5100, 10_000); CodeOf(err) != CodeAuctionBounds {
		t.Fatalf("above upper bound: %v", err)
	}
	if err := e.SetAuctionPrice(4500, 10_000); err != nil {
		t.Fatalf("valid price rejected: %v", err)
	}
}

func TestMatchAuctionRequiresMatchingModeAndPrice(t *testing.T) {
	e, _ := newTestEngine(ModeOpen)

	if _, _, err := e.MatchAuctionOrders(10); CodeOf(err) != CodeAuctionNotMatch {
		t.Fatalf("matching outside MATCHING: %v", err)
	}
	if err := e.SetMode(ModeMatching); err != nil {
		t.Fatalf("to MATCHING: %v", err)
	}
	if _, _, err := e.MatchAuctionOrders(10); CodeOf(err) != CodeAuctionPriceZero {
		t.Fatalf("matching without price: %v", err)
	}
}

func TestMatchingModeLocksEntry(t *testing.T) {
	e, _ := newTestEngine(ModeOpen)
	mustAdd(t, e, 1, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000)

	if err := e.SetMode(ModeMatching); err != nil {
		t.Fatalf("to MATCHING: %v", err)
	}
	if _, err := e.AddOrder(2, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000); CodeOf(err) != CodeAddBlocked {
		t.Fatalf("add during matching: %v", err)
	}
	if _, err := e.Cancel("b", 1); CodeOf(err) != CodeCancelBlocked {
		t.Fatalf("cancel during matching: %v", err)
	}
	if _, err := e.CancelReplace("b", 1, 6000, 100_000); CodeOf(err) != CodeAddBlocked {
		t.Fatalf("replace during matching: %v", err)
	}
	if _, err := e.CancelAll("b", []uint64{1}); CodeOf(err) != CodeCancelAllBlocked {
		t.Fatalf("cancel-all during matching: %v", err)
	}
}

func TestPausedModeBlocksMutations(t *testing.T) {
	e, _ := newTestEngine(ModeOpen)
	mustAdd(t, e, 1, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000)

	if err := e.SetMode(ModePaused); err != nil {
		t.Fatalf("to PAUSED: %v", err)
	}
	if _, err := e.AddOrder(2, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000); CodeOf(err) != CodeAddBlocked {
		t.Fatalf("add while paused: %v", err)
	}
	if _, err := e.Cancel("b", 1); CodeOf(err) != CodeCancelBlocked {
		t.Fatalf("cancel while paused: %v", err)
	}
}

func TestClosingT2LocksRestingOrders(t *testing.T) {
	e, _ := newTestEngine(ModeOpen)
	mustAdd(t, e, 1, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000)

	if err := e.SetMode(ModeClosingT2); err != nil {
		t.Fatalf("to CLOSINGT2: %v", err)
	}
	// New orders still enter, but resting orders can no longer leave.
	mustAdd(t, e, 2, "b", orderbook.Buy, orderbook.Limit, 5000, 100_000)
	if _, err := e.Cancel("b", 1); CodeOf(err) != CodeCancelBlocked {
		t.Fatalf("cancel in closing phase two: %v", err)
	}
}

func TestAuctionClearingAndResume(t *testing.T) {
	e, sink := newTestEngine(ModeOpen)

	mustAdd(t, e, 1, "b1", orderbook.Buy, orderbook.Limit, 6000, 100_000)
	mustAdd(t, e, 2, "b2", orderbook.Buy, orderbook.Limit, 4000, 50_000)
	mustAdd(t, e, 3, "s1", orderbook.Sell, orderbook.Limit, 3000, 80_000)
	mustAdd(t, e, 4, "s2", orderbook.Sell, orderbook.Limit, 5000, 60_000)

	if err := e.SetMode(ModeMatching); err != nil {
		t.Fatalf("to MATCHING: %v", err)
	}
	if err := e.SetAuctionPrice(4500, 10_000); err != nil {
		t.Fatalf("auction price: %v", err)
	}

	matched, done, err := e.MatchAuctionOrders(10)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	// Only b1 x s1 clears: s2 asks above the clearing price.
	if matched != 1 || !done {
		t.Fatalf("matched=%d done=%v, want 1 true", matched, done)
	}
	ex := sink.execs[0]
	if ex.Price != 4500 || ex.Qty != 80_000 || !ex.Auction {
		t.Fatalf("clearing execution = %+v", ex)
	}
	// Auction fills pay the maker rate on both sides.
	if ex.BuyFee != feeOf(80_000, 10) || ex.SellFee != feeOf(ex.QuoteAmount, 10) {
		t.Fatalf("auction fees = %d/%d", ex.BuyFee, ex.SellFee)
	}

	// Best bid 6000 still crosses s2's 5000: continuous trading may not
	// resume until a further clearing pass uncrosses the book.
	if err := e.SetMode(ModeLiveTrading); CodeOf(err) != CodeCrossedBook {
		t.Fatalf("resume while crossed: %v", err)
	}

	if err := e.SetAuctionPrice(5000, 10_000); err != nil {
		t.Fatalf("second auction price: %v", err)
	}
	matched, done, err = e.MatchAuctionOrders(10)
	if err != nil || matched != 1 || !done {
		t.Fatalf("second pass = %d %v %v", matched, done, err)
	}
	b1, _ := e.GetOrder(1)
	if b1.Status != orderbook.Filled {
		t.Fatalf("b1 = %s, want FILLED", b1.Status)
	}

	if err := e.SetMode(ModeLiveTrading); err != nil {
		t.Fatalf("resume after clearing: %v", err)
	}
	// Residual book: b2 resting at 4000, s2 remainder at 5000.
	if e.BestBid() != 4000 || e.BestAsk() != 5000 {
		t.Fatalf("residual book = %d/%d", e.BestBid(), e.BestAsk())
	}
	s2, _ := e.GetOrder(4)
	if s2.Remaining() != 40_000 {
		t.Fatalf("s2 remaining = %d, want 40000", s2.Remaining())
	}
}

func TestAuctionClearingChunked(t *testing.T) {
	e, _ := newTestEngine(ModeOpen)

	var id uint64
	for i := 0; i < 4; i++ {
		id++
		mustAdd(t, e, id, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000)
		id++
		mustAdd(t, e, id, "s", orderbook.Sell, orderbook.Limit, 3000, 100_000)
	}

	if err := e.SetMode(ModeMatching); err != nil {
		t.Fatalf("to MATCHING: %v", err)
	}
	if err := e.SetAuctionPrice(4500, 10_000); err != nil {
		t.Fatalf("price: %v", err)
	}

	matched, done, err := e.MatchAuctionOrders(3)
	if err != nil || matched != 3 || done {
		t.Fatalf("first chunk = %d %v %v", matched, done, err)
	}
	matched, done, err = e.MatchAuctionOrders(3)
	if err != nil || matched != 1 || !done {
		t.Fatalf("second chunk = %d %v %v", matched, done, err)
	}
	if err := e.SetMode(ModeOff); err != nil {
		t.Fatalf("off after full clearing: %v", err)
	}
}

func TestAuctionPercentageSplit(t *testing.T) {
	e, sink := newTestEngine(ModeOpen)

	mustAdd(t, e, 1, "b", orderbook.Buy, orderbook.Limit, 6000, 100_000)
	mustAdd(t, e, 2, "s", orderbook.Sell, orderbook.Limit, 3000, 100_000)

	if err := e.SetMode(ModeMatching); err != nil {
		t.Fatalf("to MATCHING: %v", err)
	}
	if err := e.SetAuctionPrice(4500, 4000); err != nil {
		t.Fatalf("price: %v", err)
	}

	matched, done, err := e.MatchAuctionOrders(10)
	if err != nil || matched != 1 || !done {
		t.Fatalf("match = %d %v %v", matched, done, err)
	}

	// 40% of the quantity clears at the auction price, the rest at the
	// resting sell's limit; both fills belong to the same match.
	if len(sink.execs) != 2 {
		t.Fatalf("executions = %d, want 2", len(sink.execs))
	}
	limit, clearing := sink.execs[0], sink.execs[1]
	if limit.Qty != 60_000 || limit.Price != 3000 {
		t.Fatalf("limit leg = %+v", limit)
	}
	if clearing.Qty != 40_000 || clearing.Price != 4500 {
		t.Fatalf("clearing leg = %+v", clearing)
	}

	b, _ := e.GetOrder(1)
	s, _ := e.GetOrder(2)
	if b.Status != orderbook.Filled || s.Status != orderbook.Filled {
		t.Fatalf("statuses = %s/%s", b.Status, s.Status)
	}
	wantQuote := int64(60_000*3000/1000 + 40_000*4500/1000)
	if b.AmountTraded != wantQuote {
		t.Fatalf("buyer cost = %d, want %d", b.AmountTraded, wantQuote)
	}
}

func TestWithdrawalAllowedOnlyWhenOff(t *testing.T) {
	e, _ := newTestEngine(ModeOff)
	if !e.WithdrawalAllowed() {
		t.Fatal("OFF must allow withdrawals")
	}
	for _, m := range []AuctionMode{
		ModeLiveTrading, ModeOpen, ModeClosing, ModePaused,
		ModeMatching, ModeClosingT2, ModeRestricted,
	} {
		e.mode = m
		if e.WithdrawalAllowed() {
			t.Fatalf("%s must block withdrawals", m)
		}
	}
}

func TestInvalidModeRejected(t *testing.T) {
	e, _ := newTestEngine(ModeOff)
	if err := e.SetMode(AuctionMode(9)); CodeOf(err) != CodeInvalidMode {
		t.Fatalf("invalid mode: %v", err)
	}
}
