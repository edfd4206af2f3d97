package kafka

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что нужно консьюмеру от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageHandler — разбор и применение одной команды избранного.
type messageHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}

type outcome int

const (
	outcomeApplied outcome = iota // коммит
	outcomeSkipped                // мусор: коммит без повтора
	outcomeRetry                  // временная ошибка: без коммита
)

// Consumer — читает команды избранного из топика и применяет их через handler.
type Consumer struct {
	reader         reader
	handler        messageHandler
	log            ports.Logger
	processTimeout time.Duration
	retryPause     time.Duration
	fetchBackoff   *backoff
	closeOnce      sync.Once
}

func NewConsumer(cfg *ConsumerConfig, handler messageHandler, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newConsumer(kafka.NewReader(c.ReaderConfig()), handler, log, c, rnd)
}

func newConsumer(r reader, handler messageHandler, log ports.Logger, cfg ConsumerConfig, rnd *rand.Rand) *Consumer {
	cfg = cfg.withDefaults()
	return &Consumer{
		reader:         r,
		handler:        handler,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		retryPause:     min(cfg.RetryInitial, 500*time.Millisecond),
		fetchBackoff:   newBackoff(cfg.RetryInitial, cfg.RetryMax, rnd),
	}
}

// Run — цикл до отмены ctx. Ошибки брокера повторяются с backoff,
// оффсет коммитится только после применения команды или её отбраковки.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "favorites consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.fetchBackoff.next()
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, wait)
			if !sleepCtx(ctx, wait) {
				return ctx.Err()
			}
			continue
		}
		c.fetchBackoff.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		switch c.process(ctx, rc.Topic, msg) {
		case outcomeApplied, outcomeSkipped:
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
			}
		case outcomeRetry:
			_ = sleepCtx(ctx, c.fetchBackoff.jitter(c.retryPause))
		}
	}
}

func (c *Consumer) process(ctx context.Context, topic string, msg kafka.Message) outcome {
	pctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	err := c.handler.HandleMessage(pctx, msg.Value)
	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeApplied
	case errors.Is(err, ErrInvalidCommand):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "command skipped partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return outcomeSkipped
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		// следующий коммит в партиции сдвинет оффсет и за это сообщение:
		// повтор будет только после рестарта или ребаланса до такого коммита
		c.log.Warnf(ctx, "command not applied partition=%d offset=%d: %v (not committed, redelivered only after restart/rebalance)", msg.Partition, msg.Offset, err)
		return outcomeRetry
	}
}

// Close — закрывает reader один раз; повторные вызовы возвращают nil.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
