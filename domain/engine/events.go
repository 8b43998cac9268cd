package engine

import "vulcan/domain/orderbook"

// EventReason says why an order event fired.
type EventReason uint8

const (
	ReasonAccepted EventReason = iota
	ReasonTrade
	ReasonRested
	ReasonCanceled
	ReasonRejected
	ReasonReplaced
)

func (r EventReason) String() string {
	switch r {
	case ReasonAccepted:
		return "accepted"
	case ReasonTrade:
		return "trade"
	case ReasonRested:
		return "rested"
	case ReasonCanceled:
		return "canceled"
	case ReasonRejected:
		return "rejected"
	case ReasonReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// OrderEvent carries the full order record at the moment of a status or fill
// change. The Order field is a copy; sinks may retain it.
type OrderEvent struct {
	Pair   string
	Reason EventReason
	Order  orderbook.Order
}

// Execution is one fill between a buy and a sell order. Quantities are base
// units, Price and QuoteAmount quote units. BuyFee is charged in base (what
// the buyer receives), SellFee in quote. BuyFilled is the buyer's cumulative
// filled quantity including this fill; settlement releases the buyer's lock
// as a difference of cumulative floored notionals, which only works against
// the running total. MakerSide tells which side rested; during auction
// clearing both sides rested and MakerSide reports the side whose price
// would have governed in continuous trading.
type Execution struct {
	Pair        string
	Price       int64
	Qty         int64
	QuoteAmount int64
	BuyOrder    uint64
	SellOrder   uint64
	BuyTrader   string
	SellTrader  string
	BuyPrice    int64
	SellPrice   int64
	BuyFilled   int64
	BuyFee      int64
	SellFee     int64
	MakerSide   orderbook.Side
	Auction     bool
}

// Sink receives engine output synchronously, in mutation order, while the
// pair lock is held. Implementations must not call back into the engine.
type Sink interface {
	OnOrderEvent(ev OrderEvent)
	OnExecution(ex Execution)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) OnOrderEvent(OrderEvent) {}
func (NopSink) OnExecution(Execution)   {}
