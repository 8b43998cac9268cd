package service

import (
	"context"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"

	"vulcan/api/pb"
	"vulcan/domain/engine"
	"vulcan/domain/orderbook"
	"vulcan/infra/memory"
)

// pairSink receives engine output while the pair lock is held. It keeps the
// ledger in step with the book and stages every event in the outbox; trades
// additionally go straight to the feed producer.
type pairSink struct {
	ex  *Exchange
	cfg engine.PairConfig
}

var tradePool = memory.NewPool(func() *pb.Trade { return new(pb.Trade) })

func (s *pairSink) OnOrderEvent(ev engine.OrderEvent) {
	o := ev.Order
	switch ev.Reason {
	case engine.ReasonAccepted:
		s.lockFor(&o, 1)
	case engine.ReasonCanceled, engine.ReasonReplaced:
		s.lockFor(&o, -1)
	}

	if s.ex.replaying {
		return
	}

	seq := s.ex.eventSeq.Next()
	msg := &pb.OrderEvent{
		Seq:    seq,
		Pair:   ev.Pair,
		Reason: ev.Reason.String(),
		Order:  OrderToPB(o),
	}
	payload, err := proto.Marshal(protoadapt.MessageV2Of(msg))
	if err != nil {
		s.ex.log.Error("order event encode failed", "order", o.ID, "err", err)
		return
	}
	if err := s.ex.outbox.Append(seq, payload); err != nil {
		s.ex.log.Error("outbox append failed", "seq", seq, "err", err)
	}

	if s.ex.archive != nil && !o.IsOpen() {
		raw, err := proto.Marshal(protoadapt.MessageV2Of(OrderToPB(o)))
		if err == nil {
			err = s.ex.archive.Put(o.ID, raw)
		}
		if err != nil {
			s.ex.log.Error("order archive failed", "order", o.ID, "err", err)
		}
	}
}

// lockFor places (dir +1) or releases (dir -1) the ledger hold backing an
// order. Buy holds are quote notional computed as a difference of cumulative
// floored notionals, the same arithmetic settlement consumes them with, so
// fills plus the final release always add back up to the original hold.
// Sell holds are the base quantity, which is exact. Market orders carry no
// price and are never held.
func (s *pairSink) lockFor(o *orderbook.Order, dir int64) {
	if o.Price <= 0 {
		return
	}
	var symbol string
	var amount int64
	if o.Side == orderbook.Buy {
		symbol = s.cfg.QuoteSymbol
		amount = engine.QuoteAmount(o.Price, o.Qty, s.cfg.BaseDecimals) -
			engine.QuoteAmount(o.Price, o.Filled, s.cfg.BaseDecimals)
	} else {
		symbol = s.cfg.BaseSymbol
		amount = o.Remaining()
	}
	if amount == 0 {
		return
	}
	if dir > 0 {
		s.ex.ledger.Lock(o.Trader, symbol, amount)
	} else {
		s.ex.ledger.Unlock(o.Trader, symbol, amount)
	}
}

func (s *pairSink) OnExecution(ex engine.Execution) {
	s.ex.ledger.Settle(ex, s.cfg.BaseSymbol, s.cfg.QuoteSymbol, s.cfg.BaseDecimals)

	if s.ex.replaying {
		return
	}

	seq := s.ex.eventSeq.Next()
	msg := tradePool.Get()
	*msg = pb.Trade{
		Seq:         seq,
		Pair:        ex.Pair,
		Price:       ex.Price,
		Qty:         ex.Qty,
		QuoteAmount: ex.QuoteAmount,
		BuyOrder:    ex.BuyOrder,
		SellOrder:   ex.SellOrder,
		BuyTrader:   ex.BuyTrader,
		SellTrader:  ex.SellTrader,
		MakerSide:   pb.Side(ex.MakerSide),
		Auction:     ex.Auction,
		ExecutedAt:  time.Now().UnixNano(),
	}
	payload, err := proto.Marshal(protoadapt.MessageV2Of(msg))
	tradePool.Put(msg)
	if err != nil {
		s.ex.log.Error("trade encode failed", "buy", ex.BuyOrder, "sell", ex.SellOrder, "err", err)
		return
	}

	if err := s.ex.outbox.Append(seq, payload); err != nil {
		s.ex.log.Error("outbox append failed", "seq", seq, "err", err)
	}
	if s.ex.trades != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := s.ex.trades.Send(ctx, []byte(ex.Pair), payload)
		cancel()
		if err != nil {
			// The outbox copy still reaches the bus through the broadcaster.
			s.ex.log.Warn("trade feed publish failed", "seq", seq, "err", err)
		}
	}
}

func decodeArchived(raw []byte) (orderbook.Order, error) {
	var m pb.Order
	if err := proto.Unmarshal(raw, protoadapt.MessageV2Of(&m)); err != nil {
		return orderbook.Order{}, err
	}
	return OrderFromPB(&m), nil
}
