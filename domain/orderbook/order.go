package orderbook

type Side uint8
type OrderType uint8
type Status uint8

const (
	Buy Side = iota
	Sell
)

const (
	Market OrderType = iota
	Limit
	IOC
	FOK
	PostOnly
)

const (
	New Status = iota
	Partial
	Filled
	Canceled
	Rejected
)

func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (t OrderType) String() string {
	switch t {
	case Market:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case IOC:
		return "IOC"
	case FOK:
		return "FOK"
	case PostOnly:
		return "POSTONLY"
	default:
		return "UNKNOWN"
	}
}

// Rests reports whether an unfilled remainder of this type may stay in the
// book. Non-resting types have their remainder canceled after matching.
func (t OrderType) Rests() bool {
	return t == Limit || t == PostOnly
}

func (s Status) String() string {
	switch s {
	case New:
		return "NEW"
	case Partial:
		return "PARTIAL"
	case Filled:
		return "FILLED"
	case Canceled:
		return "CANCELED"
	case Rejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Order is a single order record. Prices are scaled to the pair's quote
// decimals, quantities to the base decimals; AmountTraded is in quote units
// and FeeCharged in the asset the owning side receives.
type Order struct {
	ID           uint64
	Trader       string
	Pair         string
	Side         Side
	Type         OrderType
	Price        int64
	Qty          int64
	Filled       int64
	AmountTraded int64
	FeeCharged   int64
	Status       Status
	CreatedAt    int64
}

func (o *Order) Remaining() int64 { return o.Qty - o.Filled }

// IsOpen reports whether the order can still trade or be canceled.
func (o *Order) IsOpen() bool { return o.Status == New || o.Status == Partial }
