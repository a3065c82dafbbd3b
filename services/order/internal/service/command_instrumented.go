package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MamangRust/simple-microservice-ecommerce-go/services/order/internal/domain"
)

var (
	commandRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_command_requests_total",
		Help: "Order command operations by outcome.",
	}, []string{"operation", "status"})

	commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_command_duration_seconds",
		Help:    "Order command operation latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// instrumentedCommandService applies the span and metric boilerplate once
// for every operation instead of hand-duplicating it per method.
type instrumentedCommandService struct {
	next   CommandService
	tracer trace.Tracer
}

func NewInstrumentedCommandService(next CommandService) CommandService {
	return &instrumentedCommandService{
		next:   next,
		tracer: otel.Tracer("order/command_service"),
	}
}

func instrument[T any](
	ctx context.Context,
	s *instrumentedCommandService,
	operation string,
	attrs []attribute.KeyValue,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	ctx, span := s.tracer.Start(ctx, "OrderCommandService."+operation)
	defer span.End()

	span.SetAttributes(attrs...)

	start := time.Now()
	result, err := fn(ctx)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	commandRequests.WithLabelValues(operation, status).Inc()
	commandDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	return result, err
}

func (s *instrumentedCommandService) CreateOrder(ctx context.Context, userID int64, lines []domain.OrderLineInput) (*domain.Order, error) {
	return instrument(ctx, s, "CreateOrder",
		[]attribute.KeyValue{
			attribute.Int64("user_id", userID),
			attribute.Int("lines", len(lines)),
		},
		func(ctx context.Context) (*domain.Order, error) {
			return s.next.CreateOrder(ctx, userID, lines)
		})
}

func (s *instrumentedCommandService) UpdateOrder(ctx context.Context, orderID, userID int64, lines []domain.OrderLineInput) (*domain.Order, error) {
	return instrument(ctx, s, "UpdateOrder",
		[]attribute.KeyValue{
			attribute.Int64("order_id", orderID),
			attribute.Int64("user_id", userID),
			attribute.Int("lines", len(lines)),
		},
		func(ctx context.Context) (*domain.Order, error) {
			return s.next.UpdateOrder(ctx, orderID, userID, lines)
		})
}

func (s *instrumentedCommandService) TrashOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return instrument(ctx, s, "TrashOrder",
		[]attribute.KeyValue{attribute.Int64("order_id", id)},
		func(ctx context.Context) (*domain.Order, error) {
			return s.next.TrashOrder(ctx, id)
		})
}

func (s *instrumentedCommandService) RestoreOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return instrument(ctx, s, "RestoreOrder",
		[]attribute.KeyValue{attribute.Int64("order_id", id)},
		func(ctx context.Context) (*domain.Order, error) {
			return s.next.RestoreOrder(ctx, id)
		})
}

func (s *instrumentedCommandService) DeleteOrder(ctx context.Context, id int64) error {
	_, err := instrument(ctx, s, "DeleteOrder",
		[]attribute.KeyValue{attribute.Int64("order_id", id)},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.next.DeleteOrder(ctx, id)
		})
	return err
}

func (s *instrumentedCommandService) RestoreAllOrders(ctx context.Context) (int64, error) {
	return instrument(ctx, s, "RestoreAllOrders", nil,
		func(ctx context.Context) (int64, error) {
			return s.next.RestoreAllOrders(ctx)
		})
}

func (s *instrumentedCommandService) DeleteAllOrders(ctx context.Context) (int64, error) {
	return instrument(ctx, s, "DeleteAllOrders", nil,
		func(ctx context.Context) (int64, error) {
			return s.next.DeleteAllOrders(ctx)
		})
}
