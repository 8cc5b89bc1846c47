// Package event consumes transaction intake messages from Kafka and
// records them through the ledger.
package event

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
	"github.com/iho/gowallet/internal/usecase"
)

// messageReader abstracts kafka.Reader for tests.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads transaction intake messages and feeds them to the
// ledger. Messages that can never succeed are committed and logged;
// transient failures leave the offset uncommitted so the message is
// redelivered.
type Consumer struct {
	reader   messageReader
	ledgerUC *usecase.LedgerUseCase
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// ConsumerConfig for Consumer.
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	LedgerUC *usecase.LedgerUseCase
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

// NewConsumer creates a new Consumer reading from the intake topic.
func NewConsumer(cfg ConsumerConfig) *Consumer {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
			GroupID: cfg.GroupID,
		}),
		ledgerUC: cfg.LedgerUC,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Start consumes messages until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("intake consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Info("intake consumer stopping")
				return nil
			}
			return err
		}

		if err := c.handleMessage(ctx, msg); err != nil {
			// Offset stays uncommitted, the message will be redelivered.
			c.logger.Error("intake message failed, will retry",
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit failed", "offset", msg.Offset, "error", err)
		}
	}
}

// handleMessage decodes and records a single intake message. It returns
// nil for messages that must not be redelivered, including malformed
// and permanently rejected ones.
func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	var req dto.RecordTransactionRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		c.logger.Error("dropping malformed intake message",
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err)
		c.countOutcome("malformed")
		return nil
	}

	_, err := c.ledgerUC.RecordTransaction(ctx, req.ToUseCaseInput())
	switch {
	case err == nil:
		c.countOutcome("recorded")
		return nil
	case errors.Is(err, domain.ErrDuplicateTransaction):
		// Redelivery after a commit failure lands here.
		c.logger.Info("skipping duplicate intake transaction",
			"transaction_id", req.TransactionID)
		c.countOutcome("duplicate")
		return nil
	case isPermanent(err):
		c.logger.Error("dropping rejected intake transaction",
			"transaction_id", req.TransactionID,
			"customer_id", req.CustomerID,
			"error", err)
		c.countOutcome("rejected")
		return nil
	default:
		c.countOutcome("retried")
		return err
	}
}

func (c *Consumer) countOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.QueueMessages.WithLabelValues(outcome).Inc()
	}
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

func isPermanent(err error) bool {
	for _, sentinel := range []error{
		domain.ErrInvalidCustomerID,
		domain.ErrInvalidTransactionID,
		domain.ErrInvalidDirection,
		domain.ErrInvalidAmount,
		domain.ErrInvalidDescription,
		domain.ErrTransactionInFuture,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
