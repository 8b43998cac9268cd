package engine

import "vulcan/domain/orderbook"

// AuctionMode is the lifecycle state of a pair. The numeric values are part
// of the wire and storage contract and must not be reordered.
type AuctionMode uint8

const (
	ModeOff         AuctionMode = 0 // continuous trading, no auction scheduled
	ModeLiveTrading AuctionMode = 1 // continuous trading, auction framework enabled
	ModeOpen        AuctionMode = 2 // accumulation, no matching
	ModeClosing     AuctionMode = 3 // accumulation, close imminent
	ModePaused      AuctionMode = 4 // halted, no mutations
	ModeMatching    AuctionMode = 5 // batch clearing in progress
	ModeClosingT2   AuctionMode = 6 // accumulation, resting orders locked
	ModeRestricted  AuctionMode = 7 // continuous trading, restricted entry
)

func (m AuctionMode) String() string {
	switch m {
	case ModeOff:
		return "OFF"
	case ModeLiveTrading:
		return "LIVETRADING"
	case ModeOpen:
		return "OPEN"
	case ModeClosing:
		return "CLOSING"
	case ModePaused:
		return "PAUSED"
	case ModeMatching:
		return "MATCHING"
	case ModeClosingT2:
		return "CLOSINGT2"
	case ModeRestricted:
		return "RESTRICTED"
	default:
		return "UNKNOWN"
	}
}

func (m AuctionMode) valid() bool { return m <= ModeRestricted }

func (e *Engine) Mode() AuctionMode { return e.mode }

// SetMode transitions the pair to a new auction mode. Transitions into a
// continuous-trading mode are refused while the book is crossed; the book
// must be cleared through MatchAuctionOrders first.
func (e *Engine) SetMode(m AuctionMode) error {
	if !m.valid() {
		return errValidation(CodeInvalidMode, "auction mode %d", m)
	}
	switch m {
	case ModeOff, ModeLiveTrading, ModeRestricted:
		if e.Crossed() {
			return errState(CodeCrossedBook, "book is crossed, run auction matching first")
		}
	}
	e.mode = m
	return nil
}

// SetAuctionPrice fixes the clearing price and the share of each match, in
// basis points, that executes at it; the complement executes at the resting
// sell order's limit price. It is refused while the pair trades
// continuously.
func (e *Engine) SetAuctionPrice(price, pctBps int64) error {
	switch e.mode {
	case ModeOff, ModeLiveTrading, ModeRestricted:
		return errState(CodeAuctionLiveMode, "auction price cannot be set in %s", e.mode)
	}
	if price <= 0 {
		return errValidation(CodeInvalidPrice, "auction price must be positive")
	}
	if price%e.cfg.priceTick() != 0 {
		return errValidation(CodePricePrecision, "auction price exceeds %d display decimals", e.cfg.QuoteDisplayDecimals)
	}
	if pctBps <= 0 || pctBps > bpsDenominator {
		return errValidation(CodeAuctionBounds, "auction percentage %d out of (0, %d]", pctBps, bpsDenominator)
	}
	if e.auctionLower > 0 && price < e.auctionLower {
		return errValidation(CodeAuctionBounds, "auction price %d below lower bound %d", price, e.auctionLower)
	}
	if e.auctionUpper > 0 && price > e.auctionUpper {
		return errValidation(CodeAuctionBounds, "auction price %d above upper bound %d", price, e.auctionUpper)
	}
	e.auctionPrice = price
	e.auctionPct = pctBps
	return nil
}

// SetAuctionBounds restricts the range SetAuctionPrice will accept. A zero
// bound disables that end of the range.
func (e *Engine) SetAuctionBounds(lower, upper int64) error {
	if lower < 0 || upper < 0 || (upper > 0 && lower > upper) {
		return errValidation(CodeAuctionBounds, "bounds [%d, %d]", lower, upper)
	}
	e.auctionLower = lower
	e.auctionUpper = upper
	return nil
}

func (e *Engine) AuctionPrice() (price, pctBps int64) { return e.auctionPrice, e.auctionPct }

// WithdrawalAllowed reports whether traders may withdraw the pair's base
// asset. Any active auction state keeps custody locked.
func (e *Engine) WithdrawalAllowed() bool { return e.mode == ModeOff }

// MatchAuctionOrders clears the crossed book at the auction price, at most
// maxMatches fills per call so a single clearing can span several calls.
// It reports how many fills were applied and whether the book is fully
// uncrossed at the clearing price.
//
// Each fill is split: the configured share of its quantity executes at the
// clearing price and the remainder at the resting sell's limit price, which
// never exceeds it. Both sides pay the maker rate; nobody took liquidity.
func (e *Engine) MatchAuctionOrders(maxMatches int) (int, bool, error) {
	if e.mode != ModeMatching {
		return 0, false, errState(CodeAuctionNotMatch, "mode is %s", e.mode)
	}
	if e.auctionPrice <= 0 {
		return 0, false, errState(CodeAuctionPriceZero, "auction price is not set")
	}

	matched := 0
	for matched < maxMatches && e.auctionCrossed() {
		buyID := e.buy.FirstAt(e.buy.BestPrice())
		sellID := e.sell.FirstAt(e.sell.BestPrice())
		buy, sell := e.orders[buyID], e.orders[sellID]

		qty := buy.Remaining()
		if r := sell.Remaining(); r < qty {
			qty = r
		}
		makerSide := orderbook.Buy
		if sell.ID < buy.ID {
			makerSide = orderbook.Sell
		}

		clearQty := bpsOf(qty, e.auctionPct)
		if rest := qty - clearQty; rest > 0 {
			e.execute(buy, sell, sell.Price, rest, makerSide, true)
		}
		if clearQty > 0 {
			e.execute(buy, sell, e.auctionPrice, clearQty, makerSide, true)
		}

		if buy.Remaining() == 0 {
			e.buy.Remove(buy.Price, buy.ID)
		}
		if sell.Remaining() == 0 {
			e.sell.Remove(sell.Price, sell.ID)
		}
		matched++
	}
	return matched, !e.auctionCrossed(), nil
}

// auctionCrossed reports whether a fill at the auction price is still
// possible: the best bid at or above it and the best ask at or below it.
func (e *Engine) auctionCrossed() bool {
	bid, ask := e.buy.BestPrice(), e.sell.BestPrice()
	return bid >= e.auctionPrice && ask > 0 && ask <= e.auctionPrice
}
