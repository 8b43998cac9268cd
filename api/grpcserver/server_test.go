package grpcserver

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vulcan/access"
	"vulcan/api/pb"
	entrywal "vulcan/infra/wal/entry"
	exitwal "vulcan/infra/wal/exit"
	"vulcan/portfolio"
	"vulcan/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	journal, err := entrywal.Open(entrywal.Config{
		Dir:         filepath.Join(dir, "journal"),
		SegmentSize: 1 << 20,
	})
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	outbox, err := exitwal.Open(filepath.Join(dir, "outbox"))
	if err != nil {
		t.Fatalf("outbox: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ex := service.NewExchange(log, access.NewRoleMap(nil), portfolio.NewLedger(), journal, outbox, service.Options{})
	t.Cleanup(func() { _ = ex.Close() })
	return New(ex, log)
}

// Id-based operations on an id the exchange has never seen must report the
// missing order, not a failed pair lookup.
func TestUnknownOrderIdMapsToNotFound(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.CancelOrder(ctx, &pb.CancelOrderRequest{Trader: "a", Id: 99})
	if status.Code(err) != codes.NotFound || !strings.Contains(err.Error(), "order-not-found") {
		t.Fatalf("cancel unknown id: %v", err)
	}

	_, err = s.CancelReplace(ctx, &pb.CancelReplaceRequest{Trader: "a", Id: 99, Price: 100, Qty: 100})
	if status.Code(err) != codes.NotFound || !strings.Contains(err.Error(), "order-not-found") {
		t.Fatalf("replace unknown id: %v", err)
	}

	_, err = s.CancelAll(ctx, &pb.CancelAllRequest{Trader: "a", Ids: []uint64{99}})
	if status.Code(err) != codes.NotFound || !strings.Contains(err.Error(), "order-not-found") {
		t.Fatalf("cancel-all unknown id: %v", err)
	}
}
