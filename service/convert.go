package service

import (
	"vulcan/api/pb"
	"vulcan/domain/orderbook"
)

// OrderToPB maps a domain order onto its wire form. Enum values are aligned
// by construction, so the casts are direct.
func OrderToPB(o orderbook.Order) *pb.Order {
	return &pb.Order{
		Id:           o.ID,
		Trader:       o.Trader,
		Pair:         o.Pair,
		Side:         pb.Side(o.Side),
		Type:         pb.OrderType(o.Type),
		Price:        o.Price,
		Qty:          o.Qty,
		Filled:       o.Filled,
		AmountTraded: o.AmountTraded,
		FeeCharged:   o.FeeCharged,
		Status:       pb.Status(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func OrderFromPB(m *pb.Order) orderbook.Order {
	return orderbook.Order{
		ID:           m.GetId(),
		Trader:       m.GetTrader(),
		Pair:         m.GetPair(),
		Side:         orderbook.Side(m.GetSide()),
		Type:         orderbook.OrderType(m.GetType()),
		Price:        m.GetPrice(),
		Qty:          m.GetQty(),
		Filled:       m.GetFilled(),
		AmountTraded: m.GetAmountTraded(),
		FeeCharged:   m.GetFeeCharged(),
		Status:       orderbook.Status(m.GetStatus()),
		CreatedAt:    m.GetCreatedAt(),
	}
}
