// Package service is the only write entry point into the exchange. Every
// command is journaled before it touches an engine, and all engine output
// flows through the per-pair sink into the outbox, the ledger and the
// trade feed.
package service

import (
	"log/slog"
	"sync"
	"time"

	"vulcan/access"
	"vulcan/domain/engine"
	"vulcan/domain/orderbook"
	"vulcan/infra/kafka"
	"vulcan/infra/sequence"
	"vulcan/infra/store"
	entrywal "vulcan/infra/wal/entry"
	exitwal "vulcan/infra/wal/exit"
	"vulcan/portfolio"
)

// Exchange coordinates engines, custody and durability. Each pair is a
// single-writer actor: one mutex serializes all mutations of that pair, so
// engines stay lock-free inside.
type Exchange struct {
	log    *slog.Logger
	auth   access.Authorizer
	ledger portfolio.Portfolio

	journal *entrywal.WAL
	outbox  *exitwal.Outbox
	trades  *kafka.Producer
	archive *store.Archive

	orderSeq *sequence.Sequencer
	eventSeq *sequence.Sequencer

	// jmu orders journal appends across pairs so file order stays monotone.
	jmu sync.Mutex

	mu        sync.RWMutex
	pairs     map[string]*pairActor
	orderPair map[uint64]string

	pauseTrading  bool
	pauseAddOrder bool

	replaying bool
}

type pairActor struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// Options carries the optional infrastructure. Nil members disable the
// corresponding output; the journal and outbox are mandatory.
type Options struct {
	Trades  *kafka.Producer
	Archive *store.Archive
}

func NewExchange(log *slog.Logger, auth access.Authorizer, ledger portfolio.Portfolio, journal *entrywal.WAL, outbox *exitwal.Outbox, opts Options) *Exchange {
	return &Exchange{
		log:       log,
		auth:      auth,
		ledger:    ledger,
		journal:   journal,
		outbox:    outbox,
		trades:    opts.Trades,
		archive:   opts.Archive,
		orderSeq:  sequence.New(0),
		eventSeq:  sequence.New(uint64(time.Now().UnixNano())),
		pairs:     make(map[string]*pairActor),
		orderPair: make(map[uint64]string),
	}
}

func (e *Exchange) Ledger() portfolio.Portfolio { return e.ledger }

func (e *Exchange) actor(pair string) (*pairActor, error) {
	e.mu.RLock()
	a, ok := e.pairs[pair]
	e.mu.RUnlock()
	if !ok {
		return nil, &engine.Error{Kind: engine.KindNotFound, Code: engine.CodePairNotFound, Msg: pair}
	}
	return a, nil
}

// actorForOrder resolves the pair actor that owns an order id.
func (e *Exchange) actorForOrder(id uint64) (*pairActor, error) {
	e.mu.RLock()
	pair, ok := e.orderPair[id]
	e.mu.RUnlock()
	if !ok {
		return nil, &engine.Error{Kind: engine.KindNotFound, Code: engine.CodeOrderNotFound}
	}
	return e.actor(pair)
}

func (e *Exchange) append(t entrywal.RecordType, data []byte) (uint64, error) {
	e.jmu.Lock()
	defer e.jmu.Unlock()
	seq := e.orderSeq.Next()
	if err := e.journal.Append(entrywal.NewRecord(t, seq, data)); err != nil {
		return 0, err
	}
	return seq, nil
}

// ---------------- Pair management ----------------

// AddPair registers a trading pair. The existence check runs before the
// journal append: a restart re-registers every configured pair, and a
// duplicate must be refused without leaving a record that would fail the
// next boot's replay.
func (e *Exchange) AddPair(cfg engine.PairConfig, mode engine.AuctionMode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.pairs[cfg.ID]; ok {
		return &engine.Error{Kind: engine.KindState, Code: engine.CodePairExists, Msg: cfg.ID}
	}
	if _, err := e.append(entrywal.RecordAddPair, encodePair(cfg, mode)); err != nil {
		return err
	}
	e.registerPair(cfg, mode)
	return nil
}

// addPair is the replay path: no journaling, same duplicate refusal.
func (e *Exchange) addPair(cfg engine.PairConfig, mode engine.AuctionMode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.pairs[cfg.ID]; ok {
		return &engine.Error{Kind: engine.KindState, Code: engine.CodePairExists, Msg: cfg.ID}
	}
	e.registerPair(cfg, mode)
	return nil
}

func (e *Exchange) registerPair(cfg engine.PairConfig, mode engine.AuctionMode) {
	eng := engine.New(cfg, mode, &pairSink{ex: e, cfg: cfg})
	eng.SetPauseTrading(e.pauseTrading)
	eng.SetPauseAddOrder(e.pauseAddOrder)
	e.pairs[cfg.ID] = &pairActor{eng: eng}
	e.log.Info("pair added", "pair", cfg.ID, "mode", mode.String())
}

// Pairs returns the registered pair ids.
func (e *Exchange) Pairs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.pairs))
	for id := range e.pairs {
		out = append(out, id)
	}
	return out
}

// ---------------- Trading ----------------

func (e *Exchange) AddOrder(trader, pair string, side orderbook.Side, typ orderbook.OrderType, price, qty int64) (orderbook.Order, error) {
	a, err := e.actor(pair)
	if err != nil {
		return orderbook.Order{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := e.append(entrywal.RecordAddOrder, encodeAddOrder(trader, pair, side, typ, price, qty))
	if err != nil {
		return orderbook.Order{}, err
	}
	return e.applyAdd(a, id, trader, pair, side, typ, price, qty)
}

func (e *Exchange) applyAdd(a *pairActor, id uint64, trader, pair string, side orderbook.Side, typ orderbook.OrderType, price, qty int64) (orderbook.Order, error) {
	o, err := a.eng.AddOrder(id, trader, side, typ, price, qty)
	if err != nil {
		return orderbook.Order{}, err
	}
	e.mu.Lock()
	e.orderPair[id] = pair
	e.mu.Unlock()
	return o, nil
}

func (e *Exchange) CancelOrder(trader, pair string, id uint64) (orderbook.Order, error) {
	a, err := e.actor(pair)
	if err != nil {
		return orderbook.Order{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordCancel, encodeCancel(trader, id)); err != nil {
		return orderbook.Order{}, err
	}
	return a.eng.Cancel(trader, id)
}

func (e *Exchange) CancelReplace(trader, pair string, id uint64, price, qty int64) (orderbook.Order, error) {
	a, err := e.actor(pair)
	if err != nil {
		return orderbook.Order{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordCancelReplace, encodeCancelReplace(trader, id, price, qty)); err != nil {
		return orderbook.Order{}, err
	}
	return a.eng.CancelReplace(trader, id, price, qty)
}

func (e *Exchange) CancelAll(trader, pair string, ids []uint64) ([]error, error) {
	a, err := e.actor(pair)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordCancelAll, encodeCancelAll(trader, ids)); err != nil {
		return nil, err
	}
	return a.eng.CancelAll(trader, ids)
}

// ---------------- Queries ----------------

// GetOrder resolves an order anywhere in its lifecycle: open and recently
// closed orders from the engine registry, older terminal orders from the
// archive.
func (e *Exchange) GetOrder(id uint64) (orderbook.Order, error) {
	e.mu.RLock()
	pair, ok := e.orderPair[id]
	e.mu.RUnlock()
	if ok {
		if a, err := e.actor(pair); err == nil {
			a.mu.Lock()
			o, err := a.eng.GetOrder(id)
			a.mu.Unlock()
			if err == nil {
				return o, nil
			}
		}
	}
	if e.archive != nil {
		if raw, err := e.archive.Get(id); err == nil {
			return decodeArchived(raw)
		}
	}
	return orderbook.Order{}, &engine.Error{Kind: engine.KindNotFound, Code: engine.CodeOrderNotFound}
}

func (e *Exchange) BookPage(pair string, side orderbook.Side, maxLevels, maxOrders int, cursorPrice int64, cursorOrder uint64) (orderbook.Page, error) {
	a, err := e.actor(pair)
	if err != nil {
		return orderbook.Page{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.BookPage(side, maxLevels, maxOrders, cursorPrice, cursorOrder), nil
}

func (e *Exchange) PairMode(pair string) (engine.AuctionMode, error) {
	a, err := e.actor(pair)
	if err != nil {
		return 0, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.Mode(), nil
}

// ---------------- Auction administration ----------------

func (e *Exchange) requireAdmin(admin string) error {
	if !e.auth.IsAuctionAdmin(admin) {
		return &engine.Error{Kind: engine.KindAuthorization, Code: engine.CodeNotAdmin, Msg: admin}
	}
	return nil
}

func (e *Exchange) SetAuctionMode(admin, pair string, mode engine.AuctionMode) error {
	if err := e.requireAdmin(admin); err != nil {
		return err
	}
	a, err := e.actor(pair)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordSetMode, encodeSetMode(pair, mode)); err != nil {
		return err
	}
	if err := a.eng.SetMode(mode); err != nil {
		return err
	}
	e.log.Info("auction mode set", "pair", pair, "mode", mode.String())
	return nil
}

func (e *Exchange) SetAuctionPrice(admin, pair string, price, pctBps int64) error {
	if err := e.requireAdmin(admin); err != nil {
		return err
	}
	a, err := e.actor(pair)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordSetAuctionPrice, encodeAuctionPrice(pair, price, pctBps)); err != nil {
		return err
	}
	return a.eng.SetAuctionPrice(price, pctBps)
}

func (e *Exchange) SetAuctionBounds(admin, pair string, lower, upper int64) error {
	if err := e.requireAdmin(admin); err != nil {
		return err
	}
	a, err := e.actor(pair)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordSetAuctionBounds, encodeAuctionBounds(pair, lower, upper)); err != nil {
		return err
	}
	return a.eng.SetAuctionBounds(lower, upper)
}

func (e *Exchange) MatchAuctionOrders(admin, pair string, maxMatches int) (int, bool, error) {
	if err := e.requireAdmin(admin); err != nil {
		return 0, false, err
	}
	a, err := e.actor(pair)
	if err != nil {
		return 0, false, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordMatchAuction, encodeMatchAuction(pair, maxMatches)); err != nil {
		return 0, false, err
	}
	matched, done, err := a.eng.MatchAuctionOrders(maxMatches)
	if err == nil {
		e.log.Info("auction matching pass", "pair", pair, "matched", matched, "done", done)
	}
	return matched, done, err
}

func (e *Exchange) UpdateRates(admin, pair string, makerBps, takerBps int64) error {
	if err := e.requireAdmin(admin); err != nil {
		return err
	}
	a, err := e.actor(pair)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := e.append(entrywal.RecordUpdateRates, encodeUpdateRates(pair, makerBps, takerBps)); err != nil {
		return err
	}
	a.eng.UpdateRates(makerBps, takerBps)
	return nil
}

// Pause scopes recognized by PauseScope.
const (
	PauseTrading  = "trading"
	PauseAddOrder = "addorder"
	PausePair     = "pair"
)

// PauseScope toggles one of the three pause switches. The global scopes
// ignore the pair argument and fan out to every engine.
func (e *Exchange) PauseScope(admin, scope, pair string, on bool) error {
	if err := e.requireAdmin(admin); err != nil {
		return err
	}
	if _, err := e.append(entrywal.RecordPause, encodePause(scope, pair, on)); err != nil {
		return err
	}
	return e.applyPause(scope, pair, on)
}

func (e *Exchange) applyPause(scope, pair string, on bool) error {
	switch scope {
	case PauseTrading, PauseAddOrder:
		e.mu.Lock()
		if scope == PauseTrading {
			e.pauseTrading = on
		} else {
			e.pauseAddOrder = on
		}
		actors := make([]*pairActor, 0, len(e.pairs))
		for _, a := range e.pairs {
			actors = append(actors, a)
		}
		e.mu.Unlock()
		for _, a := range actors {
			a.mu.Lock()
			if scope == PauseTrading {
				a.eng.SetPauseTrading(on)
			} else {
				a.eng.SetPauseAddOrder(on)
			}
			a.mu.Unlock()
		}
		return nil
	case PausePair:
		a, err := e.actor(pair)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.eng.SetPausePair(on)
		a.mu.Unlock()
		return nil
	default:
		return &engine.Error{Kind: engine.KindValidation, Code: engine.CodeInvalidMode, Msg: scope}
	}
}

// ---------------- Custody ----------------

func (e *Exchange) Deposit(trader, symbol string, amount int64) {
	e.ledger.Deposit(trader, symbol, amount)
}

// Withdraw releases funds back to the trader. A symbol that is the base of
// any pair currently in an auction state cannot leave until that pair is
// fully off auction.
func (e *Exchange) Withdraw(trader, symbol string, amount int64) error {
	e.mu.RLock()
	actors := make([]*pairActor, 0, len(e.pairs))
	for _, a := range e.pairs {
		actors = append(actors, a)
	}
	e.mu.RUnlock()

	for _, a := range actors {
		a.mu.Lock()
		blocked := a.eng.Config().BaseSymbol == symbol && !a.eng.WithdrawalAllowed()
		a.mu.Unlock()
		if blocked {
			return &engine.Error{Kind: engine.KindState, Code: engine.CodeWithdrawBlocked, Msg: symbol}
		}
	}
	return e.ledger.Withdraw(trader, symbol, amount)
}

// Close flushes and closes the durable layers. The engines are in-memory
// and need no teardown.
func (e *Exchange) Close() error {
	err := e.journal.Close()
	if cerr := e.outbox.Close(); err == nil {
		err = cerr
	}
	if e.archive != nil {
		if cerr := e.archive.Close(); err == nil {
			err = cerr
		}
	}
	if e.trades != nil {
		if cerr := e.trades.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
