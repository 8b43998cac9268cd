package portfolio

import (
	"testing"

	"vulcan/domain/engine"
)

func TestDepositWithdraw(t *testing.T) {
	l := NewLedger()
	l.Deposit("alice", "USDC", 1000)

	if got := l.Available("alice", "USDC"); got != 1000 {
		t.Fatalf("available = %d, want 1000", got)
	}
	if err := l.Withdraw("alice", "USDC", 400); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got := l.Available("alice", "USDC"); got != 600 {
		t.Fatalf("available = %d, want 600", got)
	}

	err := l.Withdraw("alice", "USDC", 700)
	if engine.CodeOf(err) != engine.CodeInsufficient {
		t.Fatalf("overdraft withdraw: %v", err)
	}
	if err := l.Withdraw("alice", "USDC", 0); err == nil {
		t.Fatal("zero withdraw must fail")
	}
}

func TestLockUnlock(t *testing.T) {
	l := NewLedger()
	l.Deposit("alice", "USDC", 1000)

	l.Lock("alice", "USDC", 300)
	if l.Available("alice", "USDC") != 700 || l.Locked("alice", "USDC") != 300 {
		t.Fatalf("after lock = %d/%d", l.Available("alice", "USDC"), l.Locked("alice", "USDC"))
	}
	l.Unlock("alice", "USDC", 300)
	if l.Available("alice", "USDC") != 1000 || l.Locked("alice", "USDC") != 0 {
		t.Fatalf("after unlock = %d/%d", l.Available("alice", "USDC"), l.Locked("alice", "USDC"))
	}
}

// Buyer locked at 1.03 for 180.0 base; the fill prints at 1.00, so the
// difference returns to available. Quantities use 3 base decimals, prices
// and amounts 4 quote decimals.
func TestSettleRefundsPriceImprovement(t *testing.T) {
	l := NewLedger()
	l.Deposit("bob", "USDC", 2_000_000)
	l.Deposit("alice", "AUC", 200_000)

	l.Lock("bob", "USDC", engine.QuoteAmount(10300, 180_000, 3)) // 1_854_000
	l.Lock("alice", "AUC", 180_000)

	l.Settle(engine.Execution{
		Price:       10000,
		Qty:         180_000,
		QuoteAmount: 1_800_000,
		BuyTrader:   "bob",
		SellTrader:  "alice",
		BuyPrice:    10300,
		SellPrice:   10000,
		BuyFilled:   180_000,
		BuyFee:      360,  // base
		SellFee:     1800, // quote
	}, "AUC", "USDC", 3)

	// Bob spent 1_800_000 of the 1_854_000 locked; 54_000 came back.
	if got := l.Available("bob", "USDC"); got != 2_000_000-1_800_000 {
		t.Fatalf("bob USDC = %d", got)
	}
	if got := l.Locked("bob", "USDC"); got != 0 {
		t.Fatalf("bob locked USDC = %d", got)
	}
	if got := l.Available("bob", "AUC"); got != 180_000-360 {
		t.Fatalf("bob AUC = %d", got)
	}

	if got := l.Locked("alice", "AUC"); got != 0 {
		t.Fatalf("alice locked AUC = %d", got)
	}
	if got := l.Available("alice", "USDC"); got != 1_800_000-1800 {
		t.Fatalf("alice USDC = %d", got)
	}

	if l.Fees("AUC") != 360 || l.Fees("USDC") != 1800 {
		t.Fatalf("fees = %d/%d", l.Fees("AUC"), l.Fees("USDC"))
	}
}

// A market taker never locked; settlement debits available directly.
func TestSettleMarketTaker(t *testing.T) {
	l := NewLedger()
	l.Deposit("bob", "USDC", 1_100_000)
	l.Deposit("alice", "AUC", 100_000)
	l.Lock("alice", "AUC", 100_000)

	l.Settle(engine.Execution{
		Price:       10300,
		Qty:         100_000,
		QuoteAmount: 1_030_000,
		BuyTrader:   "bob",
		SellTrader:  "alice",
		BuyPrice:    0, // market order
		SellPrice:   10300,
		BuyFilled:   100_000,
		BuyFee:      200,
		SellFee:     1030,
	}, "AUC", "USDC", 3)

	if got := l.Available("bob", "USDC"); got != 70_000 {
		t.Fatalf("bob USDC = %d", got)
	}
	if got := l.Available("bob", "AUC"); got != 100_000-200 {
		t.Fatalf("bob AUC = %d", got)
	}
}

// Per-fill quote costs are floored, so two fills of an odd-priced buy cost
// less than the single floor locked up front. Settlement consumes the lock
// as differences of cumulative floors, so the hold drains to exactly zero
// and the remainder lands back in available.
func TestSettleReleasesLockDust(t *testing.T) {
	l := NewLedger()
	l.Deposit("bob", "USDC", 20_000)
	l.Deposit("alice", "AUC", 1000)

	l.Lock("bob", "USDC", engine.QuoteAmount(10001, 1000, 3)) // 10001
	l.Lock("alice", "AUC", 1000)

	fills := []struct{ qty, filled int64 }{
		{501, 501},
		{499, 1000},
	}
	for _, f := range fills {
		l.Settle(engine.Execution{
			Price:       10001,
			Qty:         f.qty,
			QuoteAmount: engine.QuoteAmount(10001, f.qty, 3),
			BuyTrader:   "bob",
			SellTrader:  "alice",
			BuyPrice:    10001,
			SellPrice:   10001,
			BuyFilled:   f.filled,
		}, "AUC", "USDC", 3)
	}

	if got := l.Locked("bob", "USDC"); got != 0 {
		t.Fatalf("bob locked USDC = %d, want 0", got)
	}
	// Actual cost was 5010 + 4990; the flooring dust returns to available.
	if got := l.Available("bob", "USDC"); got != 20_000-10_000 {
		t.Fatalf("bob USDC = %d", got)
	}
	if got := l.Locked("alice", "AUC"); got != 0 {
		t.Fatalf("alice locked AUC = %d", got)
	}
}
