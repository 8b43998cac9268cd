// Package broadcaster drains the event outbox to the message bus. Delivery
// is at-least-once: an entry is marked SENT before publish and ACKED after,
// so a crash between the two replays the publish.
package broadcaster

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	exitwal "vulcan/infra/wal/exit"
)

type Broadcaster struct {
	outbox   *exitwal.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *slog.Logger
}

func New(outbox *exitwal.Outbox, brokers []string, topic string, log *slog.Logger) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: 250 * time.Millisecond,
		log:      log,
	}, nil
}

func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("broadcaster started", "topic", b.topic, "interval", b.interval)

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(rec *exitwal.Record) error {
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// Left in SENT; the next tick retries it.
			b.log.Warn("publish failed", "seq", rec.Seq, "err", err)
			return nil
		}

		if err := b.outbox.MarkAcked(rec.Seq); err != nil {
			return err
		}
		return b.outbox.Delete(rec.Seq)
	})
	if err != nil {
		b.log.Error("outbox drain failed", "err", err)
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
