package engine

import (
	"time"

	"vulcan/domain/orderbook"
)

// Engine is the matching core for one trading pair: order registry, both
// book sides, and the auction state machine. It is single-writer and
// deterministic; the owning service serializes all calls per pair and
// supplies monotone order ids.
type Engine struct {
	cfg  PairConfig
	mode AuctionMode

	auctionPrice  int64
	auctionPct    int64
	auctionLower  int64
	auctionUpper  int64
	lastPrice     int64
	pauseTrading  bool
	pauseAddOrder bool
	pausePair     bool

	buy    *orderbook.Book
	sell   *orderbook.Book
	orders map[uint64]*orderbook.Order

	sink Sink
	now  func() int64
}

func New(cfg PairConfig, mode AuctionMode, sink Sink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	return &Engine{
		cfg:        cfg,
		mode:       mode,
		auctionPct: bpsDenominator,
		buy:        orderbook.NewBook(orderbook.Buy),
		sell:       orderbook.NewBook(orderbook.Sell),
		orders:     make(map[uint64]*orderbook.Order),
		sink:       sink,
		now:        func() int64 { return time.Now().UnixNano() },
	}
}

func (e *Engine) Config() PairConfig { return e.cfg }

func (e *Engine) SetClock(now func() int64) { e.now = now }

// Pause flags: all trading, add-order only, and this pair only. They gate
// submission independently; cancels stay possible under an add-order pause.
func (e *Engine) SetPauseTrading(v bool)  { e.pauseTrading = v }
func (e *Engine) SetPauseAddOrder(v bool) { e.pauseAddOrder = v }
func (e *Engine) SetPausePair(v bool)     { e.pausePair = v }

// UpdateRates changes the maker/taker fee rates.
func (e *Engine) UpdateRates(makerBps, takerBps int64) {
	e.cfg.MakerRateBps = makerBps
	e.cfg.TakerRateBps = takerBps
}

// AllowOrderType opts an order type into the pair's allow-list.
func (e *Engine) AllowOrderType(t orderbook.OrderType) { e.cfg.AllowedTypes.Add(t) }

// LastPrice returns the price of the most recent execution, 0 before any.
func (e *Engine) LastPrice() int64 { return e.lastPrice }

func (e *Engine) bookFor(s orderbook.Side) *orderbook.Book {
	if s == orderbook.Buy {
		return e.buy
	}
	return e.sell
}

// Crossed reports whether best bid >= best ask with both sides populated.
func (e *Engine) Crossed() bool {
	bid, ask := e.buy.BestPrice(), e.sell.BestPrice()
	return bid > 0 && ask > 0 && bid >= ask
}

// ---------------- Submission ----------------

// AddOrder validates and processes a new order under the current auction
// mode. A returned error means nothing was mutated. The returned record is
// a snapshot taken after matching and remainder disposition.
func (e *Engine) AddOrder(id uint64, trader string, side orderbook.Side, typ orderbook.OrderType, price, qty int64) (orderbook.Order, error) {
	if err := e.gateAdd(); err != nil {
		return orderbook.Order{}, err
	}
	if typ == orderbook.Market {
		price = 0
	}
	if err := e.validateNew(typ, price, qty); err != nil {
		return orderbook.Order{}, err
	}

	o := &orderbook.Order{
		ID:        id,
		Trader:    trader,
		Pair:      e.cfg.ID,
		Side:      side,
		Type:      typ,
		Price:     price,
		Qty:       qty,
		Status:    orderbook.New,
		CreatedAt: e.now(),
	}

	// Rejections return an error and emit the would-be record with status
	// REJECTED; they never register the order or touch the book.
	if e.matchingLive() {
		if typ == orderbook.FOK && e.availableAgainst(o) < qty {
			return e.reject(o, errState(CodeFOKNotFilled, "fill-or-kill order %d cannot be fully filled", id))
		}
		if typ == orderbook.PostOnly && e.wouldCross(o) {
			return e.reject(o, errState(CodePostOnlyCross, "post-only order %d would cross the book", id))
		}
	}

	e.orders[id] = o
	e.emitOrder(ReasonAccepted, o)

	if e.matchingLive() {
		e.matchIncoming(o)
	}
	e.disposeRemainder(o)
	return *o, nil
}

func (e *Engine) reject(o *orderbook.Order, err *Error) (orderbook.Order, error) {
	o.Status = orderbook.Rejected
	e.emitOrder(ReasonRejected, o)
	return orderbook.Order{}, err
}

// matchingLive reports whether incoming orders match immediately; in the
// accumulation and halt modes they do not.
func (e *Engine) matchingLive() bool {
	switch e.mode {
	case ModeOff, ModeLiveTrading, ModeRestricted:
		return true
	default:
		return false
	}
}

func (e *Engine) gateAdd() error {
	switch e.mode {
	case ModeMatching:
		return errState(CodeAddBlocked, "auction matching in progress")
	case ModePaused:
		return errState(CodeAddBlocked, "pair is paused")
	default:
		return nil
	}
}

func (e *Engine) gateCancel(code string) error {
	switch e.mode {
	case ModeMatching:
		return errState(code, "auction matching in progress")
	case ModePaused:
		return errState(code, "pair is paused")
	case ModeClosingT2:
		return errState(code, "closing phase two locks resting orders")
	default:
		return nil
	}
}

func (e *Engine) validateNew(typ orderbook.OrderType, price, qty int64) error {
	if e.pauseTrading {
		return errValidation(CodeTradingPaused, "all trading is paused")
	}
	if e.pausePair {
		return errValidation(CodePairPaused, "pair %s is paused", e.cfg.ID)
	}
	if e.pauseAddOrder {
		return errValidation(CodeAddOrderPaused, "order submission is paused")
	}
	if !e.cfg.AllowedTypes.Has(typ) {
		return errValidation(CodeTypeNotAllowed, "type %s not enabled for %s", typ, e.cfg.ID)
	}
	if !e.matchingLive() && typ != orderbook.Limit {
		return errValidation(CodeTypeNotAllowed, "only limit orders are accepted during an auction")
	}
	if qty <= 0 {
		return errValidation(CodeInvalidQty, "quantity must be positive")
	}
	if qty%e.cfg.qtyTick() != 0 {
		return errValidation(CodeQtyPrecision, "quantity exceeds %d display decimals", e.cfg.BaseDisplayDecimals)
	}
	if typ == orderbook.Market {
		return nil
	}
	if price <= 0 {
		return errValidation(CodeInvalidPrice, "price must be positive")
	}
	if price%e.cfg.priceTick() != 0 {
		return errValidation(CodePricePrecision, "price exceeds %d display decimals", e.cfg.QuoteDisplayDecimals)
	}
	amount := quoteAmount(price, qty, e.cfg.BaseDecimals)
	if amount < e.cfg.MinTradeAmount {
		return errValidation(CodeBelowMinTrade, "notional %d below minimum %d", amount, e.cfg.MinTradeAmount)
	}
	if e.cfg.MaxTradeAmount > 0 && amount > e.cfg.MaxTradeAmount {
		return errValidation(CodeAboveMaxTrade, "notional %d above maximum %d", amount, e.cfg.MaxTradeAmount)
	}
	return nil
}

// ---------------- Matching ----------------

// crosses reports whether the incoming order trades at the given opposite
// best price. Market orders cross unconditionally up to their slippage
// bound from the last trade price.
func (e *Engine) crosses(o *orderbook.Order, best int64) bool {
	if o.Type == orderbook.Market {
		if bound := e.marketBound(o.Side); bound > 0 {
			if o.Side == orderbook.Buy {
				return best <= bound
			}
			return best >= bound
		}
		return true
	}
	if o.Side == orderbook.Buy {
		return o.Price >= best
	}
	return o.Price <= best
}

// marketBound is the worst acceptable price for a market order, derived
// from the last trade price and the pair's slippage allowance. Zero means
// unbounded (no trades yet or slippage disabled).
func (e *Engine) marketBound(side orderbook.Side) int64 {
	if e.lastPrice == 0 || e.cfg.MaxSlippageBps <= 0 {
		return 0
	}
	slip := bpsOf(e.lastPrice, e.cfg.MaxSlippageBps)
	if side == orderbook.Buy {
		return e.lastPrice + slip
	}
	return e.lastPrice - slip
}

func (e *Engine) wouldCross(o *orderbook.Order) bool {
	opp := e.bookFor(o.Side.Opposite())
	return !opp.Empty() && e.crosses(o, opp.BestPrice())
}

// availableAgainst sums the opposite-side quantity the order could consume;
// used for the fill-or-kill dry run.
func (e *Engine) availableAgainst(o *orderbook.Order) int64 {
	opp := e.bookFor(o.Side.Opposite())
	var total int64
	opp.WalkLevels(func(price int64, q *orderbook.List) bool {
		if !e.crosses(o, price) {
			return false
		}
		for id := q.Head(); id != orderbook.NilKey; id = q.Next(id) {
			total += e.orders[id].Remaining()
		}
		return total < o.Qty
	})
	return total
}

// matchIncoming crosses the taker against the opposite book under strict
// price-time priority. The resting order's price always governs.
func (e *Engine) matchIncoming(taker *orderbook.Order) {
	opp := e.bookFor(taker.Side.Opposite())
	for taker.Remaining() > 0 && !opp.Empty() {
		best := opp.BestPrice()
		if !e.crosses(taker, best) {
			return
		}
		makerID := opp.FirstAt(best)
		maker := e.orders[makerID]

		qty := taker.Remaining()
		if r := maker.Remaining(); r < qty {
			qty = r
		}
		if taker.Side == orderbook.Buy {
			e.execute(taker, maker, best, qty, maker.Side, false)
		} else {
			e.execute(maker, taker, best, qty, maker.Side, false)
		}
		if maker.Remaining() == 0 {
			opp.Remove(best, makerID)
		}
	}
}

// execute applies one fill to both sides and emits the execution plus an
// order event per side. The buyer's fee is charged in base, the seller's in
// quote; makers pay the maker rate, takers the taker rate, and auction
// fills pay the maker rate on both sides.
func (e *Engine) execute(buy, sell *orderbook.Order, price, qty int64, makerSide orderbook.Side, auction bool) {
	quote := quoteAmount(price, qty, e.cfg.BaseDecimals)

	buyRate, sellRate := e.cfg.TakerRateBps, e.cfg.TakerRateBps
	if auction {
		buyRate, sellRate = e.cfg.MakerRateBps, e.cfg.MakerRateBps
	} else if makerSide == orderbook.Buy {
		buyRate = e.cfg.MakerRateBps
	} else {
		sellRate = e.cfg.MakerRateBps
	}
	buyFee := feeOf(qty, buyRate)
	sellFee := feeOf(quote, sellRate)

	for _, o := range [2]*orderbook.Order{buy, sell} {
		o.Filled += qty
		o.AmountTraded += quote
		if o.Remaining() == 0 {
			o.Status = orderbook.Filled
		} else {
			o.Status = orderbook.Partial
		}
	}
	buy.FeeCharged += buyFee
	sell.FeeCharged += sellFee
	e.lastPrice = price

	e.sink.OnExecution(Execution{
		Pair:        e.cfg.ID,
		Price:       price,
		Qty:         qty,
		QuoteAmount: quote,
		BuyOrder:    buy.ID,
		SellOrder:   sell.ID,
		BuyTrader:   buy.Trader,
		SellTrader:  sell.Trader,
		BuyPrice:    buy.Price,
		SellPrice:   sell.Price,
		BuyFilled:   buy.Filled,
		BuyFee:      buyFee,
		SellFee:     sellFee,
		MakerSide:   makerSide,
		Auction:     auction,
	})
	e.emitOrder(ReasonTrade, buy)
	e.emitOrder(ReasonTrade, sell)
}

// disposeRemainder rests or cancels whatever is left of a processed order.
func (e *Engine) disposeRemainder(o *orderbook.Order) {
	if o.Remaining() == 0 {
		return
	}
	if o.Type.Rests() {
		e.bookFor(o.Side).Add(o.Price, o.ID)
		e.emitOrder(ReasonRested, o)
		return
	}
	o.Status = orderbook.Canceled
	e.emitOrder(ReasonCanceled, o)
}

// ---------------- Cancellation ----------------

// Cancel removes an open order from the book. Only the owner may cancel,
// and only in modes that permit it.
func (e *Engine) Cancel(trader string, id uint64) (orderbook.Order, error) {
	if err := e.gateCancel(CodeCancelBlocked); err != nil {
		return orderbook.Order{}, err
	}
	o, ok := e.orders[id]
	if !ok {
		return orderbook.Order{}, errNotFound(CodeOrderNotFound, "order %d", id)
	}
	if o.Trader != trader {
		return orderbook.Order{}, errAuthorization(CodeNotOwner, "order %d belongs to another trader", id)
	}
	if !o.IsOpen() {
		return orderbook.Order{}, errState(CodeOrderNotOpen, "order %d is %s", id, o.Status)
	}
	e.bookFor(o.Side).Remove(o.Price, o.ID)
	o.Status = orderbook.Canceled
	e.emitOrder(ReasonCanceled, o)
	return *o, nil
}

// CancelReplace atomically cancels an open order and resubmits it under the
// same id with a new price and quantity. The replacement is validated
// first, so a failure leaves the original untouched; the replacement loses
// its time priority and may match immediately.
func (e *Engine) CancelReplace(trader string, id uint64, newPrice, newQty int64) (orderbook.Order, error) {
	if err := e.gateAdd(); err != nil {
		return orderbook.Order{}, err
	}
	if err := e.gateCancel(CodeReplaceBlocked); err != nil {
		return orderbook.Order{}, err
	}
	o, ok := e.orders[id]
	if !ok {
		return orderbook.Order{}, errNotFound(CodeOrderNotFound, "order %d", id)
	}
	if o.Trader != trader {
		return orderbook.Order{}, errAuthorization(CodeNotOwner, "order %d belongs to another trader", id)
	}
	if !o.IsOpen() {
		return orderbook.Order{}, errState(CodeOrderNotOpen, "order %d is %s", id, o.Status)
	}
	if err := e.validateNew(o.Type, newPrice, newQty); err != nil {
		return orderbook.Order{}, err
	}

	e.bookFor(o.Side).Remove(o.Price, o.ID)
	o.Status = orderbook.Canceled
	e.emitOrder(ReasonReplaced, o)

	repl := &orderbook.Order{
		ID:        id,
		Trader:    trader,
		Pair:      e.cfg.ID,
		Side:      o.Side,
		Type:      o.Type,
		Price:     newPrice,
		Qty:       newQty,
		Status:    orderbook.New,
		CreatedAt: e.now(),
	}
	e.orders[id] = repl
	e.emitOrder(ReasonAccepted, repl)

	if e.matchingLive() {
		e.matchIncoming(repl)
	}
	e.disposeRemainder(repl)
	return *repl, nil
}

// CancelAll cancels each id independently; one failure does not stop the
// rest. The returned slice is aligned with ids.
func (e *Engine) CancelAll(trader string, ids []uint64) ([]error, error) {
	if err := e.gateCancel(CodeCancelAllBlocked); err != nil {
		return nil, err
	}
	errs := make([]error, len(ids))
	for i, id := range ids {
		_, errs[i] = e.Cancel(trader, id)
	}
	return errs, nil
}

// ---------------- Queries ----------------

func (e *Engine) GetOrder(id uint64) (orderbook.Order, error) {
	o, ok := e.orders[id]
	if !ok {
		return orderbook.Order{}, errNotFound(CodeOrderNotFound, "order %d", id)
	}
	return *o, nil
}

// BookPage returns a resumable depth snapshot of one side.
func (e *Engine) BookPage(side orderbook.Side, maxLevels, maxOrders int, cursorPrice int64, cursorOrder uint64) orderbook.Page {
	return e.bookFor(side).PageFrom(maxLevels, maxOrders, cursorPrice, cursorOrder, func(id uint64) int64 {
		return e.orders[id].Remaining()
	})
}

// BestBid and BestAsk return 0 for an empty side.
func (e *Engine) BestBid() int64 { return e.buy.BestPrice() }
func (e *Engine) BestAsk() int64 { return e.sell.BestPrice() }

func (e *Engine) emitOrder(reason EventReason, o *orderbook.Order) {
	e.sink.OnOrderEvent(OrderEvent{Pair: e.cfg.ID, Reason: reason, Order: *o})
}
