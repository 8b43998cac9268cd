package service

import (
	"fmt"

	entrywal "vulcan/infra/wal/entry"
)

// Replay rebuilds all in-memory state from the command journal. It must run
// before the exchange accepts traffic. Commands that failed validation when
// first applied fail identically on replay; those errors are expected and
// skipped. The outbox is durable on its own and is not replayed.
func (e *Exchange) Replay(dir string) error {
	e.replaying = true
	defer func() { e.replaying = false }()

	lastSeq, err := entrywal.Replay(dir, e.applyRecord)
	if err != nil {
		return err
	}

	e.orderSeq.Reset(lastSeq)
	e.log.Info("journal replay complete", "last_seq", lastSeq, "pairs", len(e.pairs))
	return nil
}

func (e *Exchange) applyRecord(rec *entrywal.Record) error {
	switch rec.Type {
	case entrywal.RecordAddPair:
		cfg, mode, err := parsePair(rec.Data)
		if err != nil {
			return err
		}
		_ = e.addPair(cfg, mode)
		return nil

	case entrywal.RecordAddOrder:
		trader, pair, side, typ, price, qty, err := parseAddOrder(rec.Data)
		if err != nil {
			return err
		}
		a, perr := e.actor(pair)
		if perr != nil {
			return perr
		}
		// The order id is the journal seq of its AddOrder record, so
		// replay reassigns the same ids the live run did.
		_, _ = e.applyAdd(a, rec.Seq, trader, pair, side, typ, price, qty)
		return nil

	case entrywal.RecordCancel:
		trader, id, err := parseCancel(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actorForOrder(id); perr == nil {
			_, _ = a.eng.Cancel(trader, id)
		}
		return nil

	case entrywal.RecordCancelReplace:
		trader, id, price, qty, err := parseCancelReplace(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actorForOrder(id); perr == nil {
			_, _ = a.eng.CancelReplace(trader, id, price, qty)
		}
		return nil

	case entrywal.RecordCancelAll:
		trader, ids, err := parseCancelAll(rec.Data)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if a, perr := e.actorForOrder(id); perr == nil {
				_, _ = a.eng.Cancel(trader, id)
			}
		}
		return nil

	case entrywal.RecordSetMode:
		pair, mode, err := parseSetMode(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actor(pair); perr == nil {
			_ = a.eng.SetMode(mode)
		}
		return nil

	case entrywal.RecordSetAuctionPrice:
		pair, price, pctBps, err := parseAuctionPrice(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actor(pair); perr == nil {
			_ = a.eng.SetAuctionPrice(price, pctBps)
		}
		return nil

	case entrywal.RecordSetAuctionBounds:
		pair, lower, upper, err := parseAuctionBounds(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actor(pair); perr == nil {
			_ = a.eng.SetAuctionBounds(lower, upper)
		}
		return nil

	case entrywal.RecordMatchAuction:
		pair, maxMatches, err := parseMatchAuction(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actor(pair); perr == nil {
			_, _, _ = a.eng.MatchAuctionOrders(maxMatches)
		}
		return nil

	case entrywal.RecordUpdateRates:
		pair, makerBps, takerBps, err := parseUpdateRates(rec.Data)
		if err != nil {
			return err
		}
		if a, perr := e.actor(pair); perr == nil {
			a.eng.UpdateRates(makerBps, takerBps)
		}
		return nil

	case entrywal.RecordPause:
		scope, pair, on, err := parsePause(rec.Data)
		if err != nil {
			return err
		}
		_ = e.applyPause(scope, pair, on)
		return nil

	default:
		return fmt.Errorf("unknown journal record type %d", rec.Type)
	}
}
