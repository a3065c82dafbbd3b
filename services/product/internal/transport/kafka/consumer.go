package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	pkgdomain "github.com/MamangRust/simple-microservice-ecommerce-go/pkg/domain"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/kafka"
	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
	"github.com/MamangRust/simple-microservice-ecommerce-go/services/product/internal/service"
)

var errEmptyPayload = errors.New("empty message payload")

// Consumer subscribes to the order lifecycle topics and drives the stock
// adjuster. Every message is acknowledged exactly once regardless of
// processing outcome: malformed or failed messages are logged and skipped,
// never retried or dead-lettered.
type Consumer struct {
	adjuster *service.StockAdjuster
	logger   *zap.Logger
}

func NewConsumer(adjuster *service.StockAdjuster, logger *zap.Logger) *Consumer {
	return &Consumer{adjuster: adjuster, logger: logger}
}

// Start blocks until ctx is cancelled, resubscribing with the given backoff
// after every stream error.
func (c *Consumer) Start(ctx context.Context, brokers []string, groupID string, backoff time.Duration) {
	group := kafka.NewConsumerGroup(
		brokers,
		groupID,
		[]string{
			pkgdomain.TopicOrderCreated,
			pkgdomain.TopicOrderUpdated,
			pkgdomain.TopicOrderDeleted,
		},
		c.ProcessMessage,
		c.logger,
		backoff,
	)

	group.Run(ctx)
}

func (c *Consumer) ProcessMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	if len(msg.Value) == 0 {
		logx.Error(
			ctx,
			c.logger,
			"Dropping message with empty payload",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
		)

		return errEmptyPayload
	}

	event, err := pkgdomain.DecodeOrderEvent(msg.Value)
	if err != nil {
		logx.Error(
			ctx,
			c.logger,
			"Dropping undecodable message",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)

		return err
	}

	// The transport key is advisory only; the embedded order id is
	// authoritative even when they disagree.
	if keyID, err := strconv.ParseInt(string(msg.Key), 10, 64); err == nil && keyID != event.OrderID {
		logx.Warn(
			ctx,
			c.logger,
			"Message key does not match embedded order id",
			zap.Int64("key_order_id", keyID),
			zap.Int64("order_id", event.OrderID),
		)
	}

	logx.Info(
		ctx,
		c.logger,
		"Processing order event",
		zap.String("topic", msg.Topic),
		zap.String("type", event.Type),
		zap.Int64("order_id", event.OrderID),
	)

	return c.adjuster.Apply(ctx, event)
}
