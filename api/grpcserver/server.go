// Package grpcserver adapts the exchange service onto the generated gRPC
// surface. It does no business logic: requests map to service calls and
// engine errors map to status codes.
package grpcserver

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vulcan/api/pb"
	"vulcan/domain/engine"
	"vulcan/domain/orderbook"
	"vulcan/service"
)

type Server struct {
	pb.UnimplementedEngineServer

	ex  *service.Exchange
	log *slog.Logger
}

func New(ex *service.Exchange, log *slog.Logger) *Server {
	return &Server{ex: ex, log: log}
}

func (s *Server) AddOrder(ctx context.Context, req *pb.AddOrderRequest) (*pb.OrderResponse, error) {
	o, err := s.ex.AddOrder(
		req.GetTrader(),
		req.GetPair(),
		orderbook.Side(req.GetSide()),
		orderbook.OrderType(req.GetType()),
		req.GetPrice(),
		req.GetQty(),
	)
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.OrderResponse{Order: service.OrderToPB(o)}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.OrderResponse, error) {
	pair, err := s.pairOf(req.GetId())
	if err != nil {
		return nil, rpcError(err)
	}
	o, err := s.ex.CancelOrder(req.GetTrader(), pair, req.GetId())
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.OrderResponse{Order: service.OrderToPB(o)}, nil
}

func (s *Server) CancelReplace(ctx context.Context, req *pb.CancelReplaceRequest) (*pb.OrderResponse, error) {
	pair, err := s.pairOf(req.GetId())
	if err != nil {
		return nil, rpcError(err)
	}
	o, err := s.ex.CancelReplace(req.GetTrader(), pair, req.GetId(), req.GetPrice(), req.GetQty())
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.OrderResponse{Order: service.OrderToPB(o)}, nil
}

func (s *Server) CancelAll(ctx context.Context, req *pb.CancelAllRequest) (*pb.CancelAllResponse, error) {
	ids := req.GetIds()
	if len(ids) == 0 {
		return &pb.CancelAllResponse{}, nil
	}
	pair, err := s.pairOf(ids[0])
	if err != nil {
		return nil, rpcError(err)
	}
	errs, err := s.ex.CancelAll(req.GetTrader(), pair, ids)
	if err != nil {
		return nil, rpcError(err)
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		if e != nil {
			out[i] = e.Error()
		}
	}
	return &pb.CancelAllResponse{Errors: out}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.OrderResponse, error) {
	o, err := s.ex.GetOrder(req.GetId())
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.OrderResponse{Order: service.OrderToPB(o)}, nil
}

func (s *Server) GetBookPage(ctx context.Context, req *pb.BookPageRequest) (*pb.BookPageResponse, error) {
	page, err := s.ex.BookPage(
		req.GetPair(),
		orderbook.Side(req.GetSide()),
		int(req.GetMaxLevels()),
		int(req.GetMaxOrders()),
		req.GetCursorPrice(),
		req.GetCursorOrder(),
	)
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.BookPageResponse{
		Prices:     page.Prices,
		Quantities: page.Quantities,
		NextPrice:  page.NextPrice,
		NextOrder:  page.NextOrder,
	}, nil
}

func (s *Server) SetAuctionMode(ctx context.Context, req *pb.SetAuctionModeRequest) (*pb.Ack, error) {
	err := s.ex.SetAuctionMode(req.GetAdmin(), req.GetPair(), engine.AuctionMode(req.GetMode()))
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.Ack{}, nil
}

func (s *Server) SetAuctionPrice(ctx context.Context, req *pb.SetAuctionPriceRequest) (*pb.Ack, error) {
	err := s.ex.SetAuctionPrice(req.GetAdmin(), req.GetPair(), req.GetPrice(), req.GetPctBps())
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.Ack{}, nil
}

func (s *Server) MatchAuctionOrders(ctx context.Context, req *pb.MatchAuctionOrdersRequest) (*pb.MatchAuctionOrdersResponse, error) {
	matched, done, err := s.ex.MatchAuctionOrders(req.GetAdmin(), req.GetPair(), int(req.GetMaxMatches()))
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.MatchAuctionOrdersResponse{Matched: uint32(matched), Done: done}, nil
}

// pairOf resolves the pair owning an order so cancel requests do not need
// to carry it. An unknown id surfaces as order-not-found, not as a pair
// lookup failure.
func (s *Server) pairOf(id uint64) (string, error) {
	o, err := s.ex.GetOrder(id)
	if err != nil {
		return "", err
	}
	return o.Pair, nil
}

func rpcError(err error) error {
	switch engine.KindOf(err) {
	case engine.KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case engine.KindAuthorization:
		return status.Error(codes.PermissionDenied, err.Error())
	case engine.KindState:
		return status.Error(codes.FailedPrecondition, err.Error())
	case engine.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
