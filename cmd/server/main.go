package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"vulcan/access"
	"vulcan/api/grpcserver"
	"vulcan/api/pb"
	"vulcan/config"
	"vulcan/infra/kafka"
	"vulcan/infra/store"
	entrywal "vulcan/infra/wal/entry"
	exitwal "vulcan/infra/wal/exit"
	"vulcan/jobs/broadcaster"
	"vulcan/portfolio"
	"vulcan/service"
)

func main() {
	cfgPath := flag.String("config", "vulcan.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := config.NewLogger(cfg.Logging)

	// ---------------- Durability ----------------

	journal, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.Journal.Dir,
		SegmentSize: cfg.Journal.SegmentSize,
	})
	if err != nil {
		log.Error("journal open failed", "err", err)
		os.Exit(1)
	}

	outbox, err := exitwal.Open(cfg.Outbox.Dir)
	if err != nil {
		log.Error("outbox open failed", "err", err)
		os.Exit(1)
	}

	opts := service.Options{}
	if cfg.Archive.Enabled {
		archive, err := store.Open(cfg.Archive.Dir)
		if err != nil {
			log.Error("archive open failed", "err", err)
			os.Exit(1)
		}
		opts.Archive = archive
	}
	if cfg.Kafka.Enabled {
		opts.Trades = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TradesTopic)
	}

	// ---------------- Service ----------------

	auth := access.NewRoleMap(cfg.AuctionAdmins)
	ledger := portfolio.NewLedger()
	ex := service.NewExchange(log, auth, ledger, journal, outbox, opts)

	// ---------------- Journal replay ----------------

	if err := ex.Replay(cfg.Journal.Dir); err != nil {
		log.Error("journal replay failed", "err", err)
		os.Exit(1)
	}

	// Pairs from config; already-replayed pairs report pair-exists, which
	// is the normal case on restart.
	for i := range cfg.Pairs {
		pc, mode, err := cfg.Pairs[i].Engine()
		if err != nil {
			log.Error("pair config invalid", "pair", cfg.Pairs[i].ID, "err", err)
			os.Exit(1)
		}
		if err := ex.AddPair(pc, mode); err != nil {
			log.Info("pair already present", "pair", pc.ID)
		}
	}

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Enabled {
		bc, err := broadcaster.New(outbox, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic, log)
		if err != nil {
			log.Error("broadcaster init failed", "err", err)
			os.Exit(1)
		}
		defer bc.Close()
		bc.Start(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Error("listen failed", "addr", cfg.Server.GRPCAddr, "err", err)
		os.Exit(1)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.New(ex, log))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		grpcSrv.GracefulStop()
		cancel()
		_ = ex.Close()
	}()

	log.Info("vulcan engine listening", "addr", cfg.Server.GRPCAddr, "pairs", ex.Pairs())

	if err := grpcSrv.Serve(lis); err != nil {
		log.Error("grpc server exited", "err", err)
		os.Exit(1)
	}
}
