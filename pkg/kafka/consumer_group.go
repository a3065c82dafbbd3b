package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/logx"
)

// HandlerFunc processes one consumed message. A non-nil error is logged but
// the message offset still advances: there is no redelivery and no
// dead-letter path on this pipeline.
type HandlerFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// runState drives the supervision loop:
//
//	Subscribing -> Running -> (Error|Cancelled) -> Backoff -> Subscribing
//
// Cancelled exits the loop; everything else circles back through Backoff to
// a fresh subscription.
type runState int

const (
	stateSubscribing runState = iota
	stateRunning
	stateBackoff
	stateCancelled
)

type ConsumerGroup struct {
	brokers []string
	groupID string
	topics  []string
	handler HandlerFunc
	logger  *zap.Logger
	backoff time.Duration

	group sarama.ConsumerGroup
}

const DefaultBackoff = 5 * time.Second

func NewConsumerGroup(
	brokers []string,
	groupID string,
	topics []string,
	handler HandlerFunc,
	logger *zap.Logger,
	backoff time.Duration,
) *ConsumerGroup {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	return &ConsumerGroup{
		brokers: brokers,
		groupID: groupID,
		topics:  topics,
		handler: handler,
		logger:  logger,
		backoff: backoff,
	}
}

// Run blocks until ctx is cancelled, resubscribing after every stream error.
// Auto-commit is enabled and the offset reset policy is "latest": events
// published while the group is offline are not replayed on restart.
func (c *ConsumerGroup) Run(ctx context.Context) {
	state := stateSubscribing

	for {
		switch state {
		case stateSubscribing:
			state = c.subscribe(ctx)
		case stateRunning:
			state = c.consume(ctx)
		case stateBackoff:
			state = c.wait(ctx)
		case stateCancelled:
			c.closeGroup(ctx)
			logx.Info(ctx, c.logger, "Consumer group stopped", zap.String("group_id", c.groupID))
			return
		}
	}
}

func (c *ConsumerGroup) subscribe(ctx context.Context) runState {
	if ctx.Err() != nil {
		return stateCancelled
	}

	config := sarama.NewConfig()
	config.Version = sarama.V3_0_0_0
	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Offsets.AutoCommit.Enable = true
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRoundRobin}

	group, err := sarama.NewConsumerGroup(c.brokers, c.groupID, config)
	if err != nil {
		logx.Error(ctx, c.logger, "Failed to create consumer group", zap.Error(err))
		return stateBackoff
	}

	c.group = group

	logx.Info(
		ctx,
		c.logger,
		"Consumer group subscribed",
		zap.String("group_id", c.groupID),
		zap.Strings("topics", c.topics),
	)

	return stateRunning
}

func (c *ConsumerGroup) consume(ctx context.Context) runState {
	// Consume blocks for the lifetime of one session; the cancellation race
	// against the next receive happens inside sarama, which never preempts a
	// handler call already in flight.
	err := c.group.Consume(ctx, c.topics, &saramaHandler{handler: c.handler, logger: c.logger})

	if ctx.Err() != nil {
		return stateCancelled
	}

	if err != nil {
		logx.Error(ctx, c.logger, "Consumer stream error", zap.Error(err))
		c.closeGroup(ctx)
		return stateBackoff
	}

	// Rebalance: rejoin immediately with the same group handle.
	return stateRunning
}

func (c *ConsumerGroup) wait(ctx context.Context) runState {
	select {
	case <-ctx.Done():
		return stateCancelled
	case <-time.After(c.backoff):
		return stateSubscribing
	}
}

func (c *ConsumerGroup) closeGroup(ctx context.Context) {
	if c.group == nil {
		return
	}

	if err := c.group.Close(); err != nil {
		logx.Error(ctx, c.logger, "Error closing consumer group", zap.Error(err))
	}
	c.group = nil
}

type saramaHandler struct {
	handler HandlerFunc
	logger  *zap.Logger
}

func (h *saramaHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *saramaHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *saramaHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		ctx, span := h.extractTracing(session.Context(), msg)

		if err := h.handler(ctx, msg); err != nil {
			logx.Error(
				ctx,
				h.logger,
				"Failed to process message",
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		span.End()

		// The offset advances even on handler failure; the message is gone.
		session.MarkMessage(msg, "")
	}

	return nil
}

func (h *saramaHandler) extractTracing(ctx context.Context, msg *sarama.ConsumerMessage) (context.Context, trace.Span) {
	carrier := propagation.MapCarrier{}
	for _, header := range msg.Headers {
		carrier[string(header.Key)] = string(header.Value)
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("pkg/kafka/consumer")
	return tracer.Start(ctx, "kafka_process",
		trace.WithSpanKind(trace.SpanKindConsumer),
	)
}
