// Package portfolio tracks trader balances against the matching core. It is
// a bookkeeping mirror of external custody, not the custody itself, so it
// tolerates balances the chain would refuse and reconciliation happens
// out of band.
package portfolio

import (
	"fmt"
	"sync"

	"vulcan/domain/engine"
)

// Portfolio is the balance surface the exchange service settles against.
type Portfolio interface {
	Deposit(trader, symbol string, amount int64)
	Withdraw(trader, symbol string, amount int64) error
	Available(trader, symbol string) int64
	Locked(trader, symbol string) int64
	Lock(trader, symbol string, amount int64)
	Unlock(trader, symbol string, amount int64)
	Settle(ex engine.Execution, base, quote string, baseDecimals uint8)
	Fees(symbol string) int64
}

type balance struct {
	available int64
	locked    int64
}

// Ledger is the in-memory Portfolio. All methods are safe for concurrent
// use; settlement arrives serialized per pair but reads come from anywhere.
type Ledger struct {
	mu   sync.Mutex
	accs map[string]*balance
	fees map[string]int64
}

func NewLedger() *Ledger {
	return &Ledger{
		accs: make(map[string]*balance),
		fees: make(map[string]int64),
	}
}

func acctKey(trader, symbol string) string { return trader + "/" + symbol }

func (l *Ledger) acct(trader, symbol string) *balance {
	k := acctKey(trader, symbol)
	b, ok := l.accs[k]
	if !ok {
		b = &balance{}
		l.accs[k] = b
	}
	return b
}

func (l *Ledger) Deposit(trader, symbol string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acct(trader, symbol).available += amount
}

// Withdraw debits available funds. Unlike the trading paths it refuses to
// go negative: a withdrawal leaves the system, so there is nothing left to
// reconcile against.
func (l *Ledger) Withdraw(trader, symbol string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.acct(trader, symbol)
	if amount <= 0 || b.available < amount {
		return &engine.Error{
			Kind: engine.KindValidation,
			Code: engine.CodeInsufficient,
			Msg:  fmt.Sprintf("%s has %d %s available", trader, b.available, symbol),
		}
	}
	b.available -= amount
	return nil
}

func (l *Ledger) Available(trader, symbol string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct(trader, symbol).available
}

func (l *Ledger) Locked(trader, symbol string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct(trader, symbol).locked
}

// Lock moves funds from available to locked to back an open order.
func (l *Ledger) Lock(trader, symbol string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.acct(trader, symbol)
	b.available -= amount
	b.locked += amount
}

// Unlock releases a previously locked amount back to available.
func (l *Ledger) Unlock(trader, symbol string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.acct(trader, symbol)
	b.locked -= amount
	b.available += amount
}

// Settle applies one execution. The seller's base and the buyer's quote were
// locked at order limit prices; the buyer locked at its own price, so when
// the fill prints lower the difference is refunded to available. The buyer's
// lock is consumed as a difference of cumulative floored notionals: each
// fill takes lock(filled) - lock(filled-qty), so after the final fill the
// releases sum to exactly the amount locked and no flooring dust strands in
// locked. A zero BuyPrice marks a market taker that never locked, paying
// from available directly. Fees accrue to the exchange: the buyer's in
// base, the seller's in quote.
func (l *Ledger) Settle(ex engine.Execution, base, quote string, baseDecimals uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()

	buyer := l.acct(ex.BuyTrader, quote)
	if ex.BuyPrice > 0 {
		lockedCost := engine.QuoteAmount(ex.BuyPrice, ex.BuyFilled, baseDecimals) -
			engine.QuoteAmount(ex.BuyPrice, ex.BuyFilled-ex.Qty, baseDecimals)
		buyer.locked -= lockedCost
		buyer.available += lockedCost - ex.QuoteAmount
	} else {
		buyer.available -= ex.QuoteAmount
	}
	l.acct(ex.BuyTrader, base).available += ex.Qty - ex.BuyFee

	seller := l.acct(ex.SellTrader, base)
	if ex.SellPrice > 0 {
		seller.locked -= ex.Qty
	} else {
		seller.available -= ex.Qty
	}
	l.acct(ex.SellTrader, quote).available += ex.QuoteAmount - ex.SellFee

	l.fees[base] += ex.BuyFee
	l.fees[quote] += ex.SellFee
}

// Fees returns the exchange's accrued fees in one symbol.
func (l *Ledger) Fees(symbol string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fees[symbol]
}
