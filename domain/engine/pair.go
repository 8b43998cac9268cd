package engine

import (
	"math/big"

	"vulcan/domain/orderbook"
)

// TypeSet is the allow-list of order types for a pair. Limit is always
// allowed; other types are opted in per pair.
type TypeSet uint8

func NewTypeSet(types ...orderbook.OrderType) TypeSet {
	s := TypeSet(1 << orderbook.Limit)
	for _, t := range types {
		s |= 1 << t
	}
	return s
}

func (s TypeSet) Has(t orderbook.OrderType) bool { return s&(1<<t) != 0 }

func (s *TypeSet) Add(t orderbook.OrderType) { *s |= 1 << t }

func (s *TypeSet) Drop(t orderbook.OrderType) {
	if t != orderbook.Limit {
		*s &^= 1 << t
	}
}

// PairConfig is the static configuration of one trading pair. Prices are
// scaled to QuoteDecimals, quantities to BaseDecimals; the display decimals
// bound how many fractional digits submitted values may carry. Trade amount
// bounds are quote units; fee rates and slippage are basis points.
type PairConfig struct {
	ID                   string
	BaseSymbol           string
	QuoteSymbol          string
	BaseDecimals         uint8
	QuoteDecimals        uint8
	BaseDisplayDecimals  uint8
	QuoteDisplayDecimals uint8
	MinTradeAmount       int64
	MaxTradeAmount       int64
	MakerRateBps         int64
	TakerRateBps         int64
	MaxSlippageBps       int64
	AllowedTypes         TypeSet
}

// priceTick returns the smallest price increment permitted by the quote
// display precision.
func (c *PairConfig) priceTick() int64 {
	return pow10(c.QuoteDecimals - c.QuoteDisplayDecimals)
}

// qtyTick returns the smallest quantity increment permitted by the base
// display precision.
func (c *PairConfig) qtyTick() int64 {
	return pow10(c.BaseDecimals - c.BaseDisplayDecimals)
}

var pow10Table = [...]int64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000,
	1_000_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000,
	10_000_000_000_000, 100_000_000_000_000, 1_000_000_000_000_000,
	10_000_000_000_000_000, 100_000_000_000_000_000, 1_000_000_000_000_000_000,
}

func pow10(d uint8) int64 {
	if int(d) >= len(pow10Table) {
		return pow10Table[len(pow10Table)-1]
	}
	return pow10Table[d]
}

const bpsDenominator = 10_000

// quoteAmount converts a (price, quantity) pair into quote units:
// price * qty / 10^baseDecimals, floored. The intermediate product can
// exceed 64 bits, so it goes through big.Int; rounding is floor at every
// arithmetic step so outcomes never depend on evaluation order.
func quoteAmount(price, qty int64, baseDecimals uint8) int64 {
	n := new(big.Int).Mul(big.NewInt(price), big.NewInt(qty))
	n.Quo(n, big.NewInt(pow10(baseDecimals)))
	return n.Int64()
}

// QuoteAmount is the exported form of quoteAmount for settlement callers.
func QuoteAmount(price, qty int64, baseDecimals uint8) int64 {
	return quoteAmount(price, qty, baseDecimals)
}

// feeOf applies a basis-point rate to an amount, floored.
func feeOf(amount, rateBps int64) int64 {
	n := new(big.Int).Mul(big.NewInt(amount), big.NewInt(rateBps))
	n.Quo(n, big.NewInt(bpsDenominator))
	return n.Int64()
}

// bpsOf returns amount * bps / 10000, floored.
func bpsOf(amount, bps int64) int64 {
	return feeOf(amount, bps)
}
