package entry

import "time"

// RecordType tags the command a journal record carries. Values are part of
// the on-disk format; append only.
type RecordType uint8

const (
	RecordAddOrder RecordType = iota
	RecordCancel
	RecordCancelReplace
	RecordCancelAll
	RecordSetMode
	RecordSetAuctionPrice
	RecordSetAuctionBounds
	RecordMatchAuction
	RecordAddPair
	RecordUpdateRates
	RecordPause
)

// Record is one journaled command. Data is the command payload, opaque to
// the journal.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
